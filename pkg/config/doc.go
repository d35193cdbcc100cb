// Package config loads configuration structs from environment variables.
//
// Configuration is entirely environment-driven: struct fields are annotated
// with `env` tags (and `envDefault` for fallbacks), values come from the
// process environment, and a .env file is picked up once per process for
// local development. This keeps deployment identical across development,
// staging and production, with credentials handled by the environment or a
// secret manager rather than config files.
//
// LoadWithPrefix supports running several instances of the same
// configuration type side by side, such as connections to two different
// MongoDB deployments distinguished by an environment prefix.
package config
