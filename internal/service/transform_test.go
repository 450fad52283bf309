package service

import (
	"testing"

	"wanderlust-seed/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// listing arma un documento a partir de pares key, value.
func listing(kv ...any) models.Listing {
	l := make(models.Listing, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		l = append(l, bson.E{Key: kv[i].(string), Value: kv[i+1]})
	}
	return l
}

func field(l models.Listing, key string) any {
	v, _ := l.Get(key)
	return v
}

func keys(l models.Listing) []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = e.Key
	}
	return out
}

func TestAttachOwnerSetsOwnerOnEveryRecord(t *testing.T) {
	src := []models.Listing{
		listing("title", "A", "price", 100),
		listing("title", "B", "price", 200),
		listing("title", "C", "price", 300),
	}

	out := AttachOwner(src, "U1")

	require.Len(t, out, 3)
	for i, l := range out {
		assert.Equal(t, "U1", field(l, "owner"))
		assert.Equal(t, field(src[i], "title"), field(l, "title"), "orden o campos alterados")
		assert.Equal(t, field(src[i], "price"), field(l, "price"))
		assert.Equal(t, []string{"title", "price", "owner"}, keys(l))
	}
}

func TestAttachOwnerOverwritesExistingOwner(t *testing.T) {
	src := []models.Listing{listing("title", "A", "owner", "U_OLD", "price", 100)}

	out := AttachOwner(src, "U1")

	require.Len(t, out, 1)
	assert.Equal(t, "U1", field(out[0], "owner"))
	assert.Equal(t, []string{"title", "owner", "price"}, keys(out[0]), "no se duplica ni se mueve el campo")
}

func TestAttachOwnerDoesNotMutateInput(t *testing.T) {
	src := []models.Listing{listing("title", "A"), listing("title", "B", "owner", "U_OLD")}

	_ = AttachOwner(src, "U1")

	_, ok := src[0].Owner()
	assert.False(t, ok)
	assert.Len(t, src[0], 1)
	assert.Equal(t, "U_OLD", field(src[1], "owner"))
}

func TestAttachOwnerEmpty(t *testing.T) {
	assert.Empty(t, AttachOwner(nil, "U1"))
}
