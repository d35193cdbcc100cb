package objectid

import "fmt"

// InvalidIDError reports a string that does not parse as an ObjectID. The
// offending value is embedded so callers can surface it.
type InvalidIDError struct {
	Value string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("objectid: %q is not a valid ObjectID", e.Value)
}
