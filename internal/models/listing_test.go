package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func keysOf(t *testing.T, l Listing) []string {
	t.Helper()
	raw, err := bson.Marshal(l)
	require.NoError(t, err)
	elems, err := bson.Raw(raw).Elements()
	require.NoError(t, err)

	keys := make([]string, len(elems))
	for i, e := range elems {
		keys[i] = e.Key()
	}
	return keys
}

func TestOwnerRef(t *testing.T) {
	oid := primitive.NewObjectID()

	assert.Equal(t, oid, OwnerRef(oid.Hex()))
	assert.Equal(t, "U1", OwnerRef("U1"))
	// 24 caracteres pero no hex
	assert.Equal(t, "zzzzzzzzzzzzzzzzzzzzzzzz", OwnerRef("zzzzzzzzzzzzzzzzzzzzzzzz"))
}

func TestListingWith(t *testing.T) {
	src := Listing{{Key: "title", Value: "Cozy Beachfront Cottage"}, {Key: "owner", Value: "U_OLD"}, {Key: "price", Value: 1500}}

	cp := src.With(OwnerField, "U1")

	owner, ok := src.Owner()
	require.True(t, ok)
	assert.Equal(t, "U_OLD", owner, "With no toca el original")

	owner, ok = cp.Owner()
	require.True(t, ok)
	assert.Equal(t, "U1", owner)
	assert.Equal(t, []string{"title", "owner", "price"}, keysOf(t, cp))
}

func TestListingWithAppendsNewField(t *testing.T) {
	src := Listing{{Key: "title", Value: "A"}, {Key: "price", Value: 100}}

	cp := src.With(OwnerField, "U1")

	assert.Len(t, src, 2)
	assert.Equal(t, []string{"title", "price", "owner"}, keysOf(t, cp))
}

func TestListingMarshalKeepsFieldOrder(t *testing.T) {
	l := Listing{
		{Key: "title", Value: "A"},
		{Key: "description", Value: "d"},
		{Key: "image", Value: bson.D{{Key: "filename", Value: "listingimage"}}},
		{Key: "price", Value: 100},
		{Key: "location", Value: "Malibu"},
		{Key: "country", Value: "United States"},
	}

	// varias veces: con un map el orden cambiaría entre corridas
	for i := 0; i < 5; i++ {
		assert.Equal(t, []string{"title", "description", "image", "price", "location", "country"}, keysOf(t, l))
	}
}
