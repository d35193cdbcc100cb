package objectid

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// hexPattern matches the 24 lowercase hex digits of a serialized ObjectID.
var hexPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// IsValid reports whether s is a well-formed ObjectID in hex form: 24
// lowercase hex digits that the driver itself also accepts.
func IsValid(s string) bool {
	if !hexPattern.MatchString(s) {
		return false
	}
	_, err := bson.ObjectIDFromHex(s)
	return err == nil
}

// Cast converts a validated hex string into the driver's native ObjectID.
// It returns *InvalidIDError for any string that fails IsValid.
func Cast(s string) (bson.ObjectID, error) {
	if !IsValid(s) {
		return bson.NilObjectID, &InvalidIDError{Value: s}
	}
	return bson.ObjectIDFromHex(s)
}

// MustCast works like Cast but panics on invalid input. Use it for IDs that
// are known-good by construction, such as compile-time constants.
func MustCast(s string) bson.ObjectID {
	id, err := Cast(s)
	if err != nil {
		panic(err)
	}
	return id
}
