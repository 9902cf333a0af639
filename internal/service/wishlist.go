package service

import (
	"context"
	"fmt"
	"time"

	"estatehub/internal/model"
	"estatehub/internal/repository"
	"estatehub/pkg/util"
)

// WishlistService handles saved-property business logic
type WishlistService struct {
	wishlist   repository.IWishlistRepository
	properties repository.IPropertyRepository
}

func NewWishlistService(wishlist repository.IWishlistRepository, properties repository.IPropertyRepository) *WishlistService {
	return &WishlistService{wishlist: wishlist, properties: properties}
}

func (s *WishlistService) ListByUser(ctx context.Context, email string) ([]*model.WishlistEntry, error) {
	return s.wishlist.FindByUser(ctx, email)
}

func (s *WishlistService) Get(ctx context.Context, id string) (*model.WishlistEntry, error) {
	oid, err := util.ParseObjectID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	entry, err := s.wishlist.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: wishlist entry %s", ErrNotFound, id)
	}
	return entry, nil
}

// Add saves a property for a user. The referenced property must resolve, and
// the same (propertyId, userEmail) pair can only be saved once. The existence
// check and insert are separate store calls; a racing duplicate slips through.
func (s *WishlistService) Add(ctx context.Context, entry *model.WishlistEntry) (*model.WishlistEntry, error) {
	if entry.UserEmail == "" || entry.PropertyID == "" {
		return nil, fmt.Errorf("%w: propertyId and userEmail are required", ErrValidation)
	}
	propertyOID, err := util.ParseObjectID(entry.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	exists, err := s.properties.ExistsByID(ctx, propertyOID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve property: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: property %s", ErrNotFound, entry.PropertyID)
	}

	saved, err := s.wishlist.ExistsForUser(ctx, entry.PropertyID, entry.UserEmail)
	if err != nil {
		return nil, err
	}
	if saved {
		return nil, fmt.Errorf("%w: property already in wishlist", ErrConflict)
	}

	entry.AddedAt = time.Now().UTC()
	return s.wishlist.Insert(ctx, entry)
}

func (s *WishlistService) Remove(ctx context.Context, id string) error {
	oid, err := util.ParseObjectID(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	deleted, err := s.wishlist.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: wishlist entry %s", ErrNotFound, id)
	}
	return nil
}
