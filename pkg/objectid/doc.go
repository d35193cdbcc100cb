// Package objectid validates and casts MongoDB ObjectID hex strings.
//
// IsValid double-checks candidate strings: a strict 24-character lowercase
// hex pattern, re-validated against the driver's own parser so the
// predicate can never accept a value the driver would later reject. Cast
// converts a validated string into bson.ObjectID and fails with a typed
// *InvalidIDError that embeds the offending value.
package objectid
