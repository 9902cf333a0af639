package service

import (
	"context"
	"fmt"
	"time"

	"estatehub/internal/model"
	"estatehub/internal/repository"
	"estatehub/pkg/util"
)

// DefaultLatestReviews is how many reviews the landing page shows.
const DefaultLatestReviews = 4

// ReviewService handles review business logic
type ReviewService struct {
	reviews    repository.IReviewRepository
	properties repository.IPropertyRepository
}

func NewReviewService(reviews repository.IReviewRepository, properties repository.IPropertyRepository) *ReviewService {
	return &ReviewService{reviews: reviews, properties: properties}
}

func (s *ReviewService) List(ctx context.Context, propertyID string) ([]*model.Review, error) {
	return s.reviews.Find(ctx, propertyID)
}

func (s *ReviewService) ByReviewer(ctx context.Context, email string) ([]*model.Review, error) {
	return s.reviews.FindByReviewer(ctx, email)
}

func (s *ReviewService) Latest(ctx context.Context, limit int64) ([]*model.Review, error) {
	if limit <= 0 {
		limit = DefaultLatestReviews
	}
	return s.reviews.Latest(ctx, limit)
}

// Create inserts a review after resolving the referenced property.
func (s *ReviewService) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	propertyOID, err := util.ParseObjectID(review.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	exists, err := s.properties.ExistsByID(ctx, propertyOID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve property: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: property %s", ErrNotFound, review.PropertyID)
	}

	review.CreatedAt = time.Now().UTC()
	return s.reviews.Insert(ctx, review)
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	oid, err := util.ParseObjectID(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	deleted, err := s.reviews.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: review %s", ErrNotFound, id)
	}
	return nil
}
