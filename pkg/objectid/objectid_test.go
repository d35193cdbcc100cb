package objectid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/mongokit/pkg/objectid"
)

func TestIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, objectid.IsValid("507f1f77bcf86cd799439011"))

	for _, s := range []string{
		"",
		"not-an-id",
		"507F1F77BCF86CD799439011",   // uppercase hex
		"507f1f77bcf86cd79943901",    // 23 chars
		"507f1f77bcf86cd7994390111",  // 25 chars
		"507f1f77bcf86cd79943901g",   // non-hex digit
		" 507f1f77bcf86cd799439011 ", // surrounding whitespace
	} {
		assert.False(t, objectid.IsValid(s), "input %q", s)
	}
}

func TestCast(t *testing.T) {
	t.Parallel()

	id, err := objectid.Cast("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	want, err := bson.ObjectIDFromHex("507f1f77bcf86cd799439011")
	require.NoError(t, err)
	assert.Equal(t, want, id)
}

func TestCastInvalid(t *testing.T) {
	t.Parallel()

	id, err := objectid.Cast("not-an-id")
	assert.Equal(t, bson.NilObjectID, id)

	var invalidErr *objectid.InvalidIDError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "not-an-id", invalidErr.Value)
	assert.Contains(t, err.Error(), "not-an-id")
}

func TestMustCast(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		objectid.MustCast("507f1f77bcf86cd799439011")
	})
	assert.Panics(t, func() {
		objectid.MustCast("nope")
	})
}
