package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseObjectID(t *testing.T) {
	id := primitive.NewObjectID()

	parsed, err := ParseObjectID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseObjectID("not-hex")
	assert.Error(t, err)

	_, err = ParseObjectID("")
	assert.Error(t, err)
}

func TestIsValidObjectID(t *testing.T) {
	assert.True(t, IsValidObjectID(primitive.NewObjectID().Hex()))
	assert.False(t, IsValidObjectID("abc"))
}
