package service

import (
	"context"
	"testing"

	"estatehub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWishlistAdd(t *testing.T) {
	wishlist := newFakeWishlistRepo()
	properties := newFakePropertyRepo()
	svc := NewWishlistService(wishlist, properties)

	p := seedProperty(t, properties, "agent@x.com")

	saved, err := svc.Add(context.Background(), &model.WishlistEntry{
		PropertyID: p.ID.Hex(),
		UserEmail:  "buyer@x.com",
	})
	require.NoError(t, err)
	assert.False(t, saved.AddedAt.IsZero())
	assert.Len(t, wishlist.entries, 1)
}

func TestWishlistAddDuplicateConflicts(t *testing.T) {
	wishlist := newFakeWishlistRepo()
	properties := newFakePropertyRepo()
	svc := NewWishlistService(wishlist, properties)

	p := seedProperty(t, properties, "agent@x.com")

	_, err := svc.Add(context.Background(), &model.WishlistEntry{
		PropertyID: p.ID.Hex(),
		UserEmail:  "buyer@x.com",
	})
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), &model.WishlistEntry{
		PropertyID: p.ID.Hex(),
		UserEmail:  "buyer@x.com",
	})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Len(t, wishlist.entries, 1, "duplicate save must not insert a second entry")

	// The same property saved by a different user is fine.
	_, err = svc.Add(context.Background(), &model.WishlistEntry{
		PropertyID: p.ID.Hex(),
		UserEmail:  "other@x.com",
	})
	require.NoError(t, err)
	assert.Len(t, wishlist.entries, 2)
}

func TestWishlistAddUnknownProperty(t *testing.T) {
	svc := NewWishlistService(newFakeWishlistRepo(), newFakePropertyRepo())

	_, err := svc.Add(context.Background(), &model.WishlistEntry{
		PropertyID: primitive.NewObjectID().Hex(),
		UserEmail:  "buyer@x.com",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWishlistAddMissingFields(t *testing.T) {
	svc := NewWishlistService(newFakeWishlistRepo(), newFakePropertyRepo())

	_, err := svc.Add(context.Background(), &model.WishlistEntry{PropertyID: primitive.NewObjectID().Hex()})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Add(context.Background(), &model.WishlistEntry{UserEmail: "buyer@x.com"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestWishlistRemove(t *testing.T) {
	wishlist := newFakeWishlistRepo()
	properties := newFakePropertyRepo()
	svc := NewWishlistService(wishlist, properties)

	p := seedProperty(t, properties, "agent@x.com")
	saved, err := svc.Add(context.Background(), &model.WishlistEntry{
		PropertyID: p.ID.Hex(),
		UserEmail:  "buyer@x.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), saved.ID.Hex()))
	assert.Empty(t, wishlist.entries)

	err = svc.Remove(context.Background(), saved.ID.Hex())
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Remove(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, ErrValidation)
}
