package repository

import (
	"context"

	"estatehub/internal/model"
	"estatehub/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IReviewRepository defines review persistence
type IReviewRepository interface {
	Find(ctx context.Context, propertyID string) ([]*model.Review, error)
	FindByReviewer(ctx context.Context, email string) ([]*model.Review, error)
	Latest(ctx context.Context, limit int64) ([]*model.Review, error)
	Insert(ctx context.Context, review *model.Review) (*model.Review, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// ReviewRepository implements review persistence
type ReviewRepository struct {
	generic.MongoBaseRepository[model.Review]
}

func NewReviewRepository(db *mongo.Database) IReviewRepository {
	return &ReviewRepository{generic.NewBaseRepository[model.Review](db.Collection("reviews"))}
}

func (r *ReviewRepository) Find(ctx context.Context, propertyID string) ([]*model.Review, error) {
	filter := bson.M{}
	if propertyID != "" {
		filter["propertyId"] = propertyID
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.MongoBaseRepository.Find(ctx, filter, opts)
}

func (r *ReviewRepository) FindByReviewer(ctx context.Context, email string) ([]*model.Review, error) {
	return r.MongoBaseRepository.Find(ctx, bson.M{"reviewer_email": email})
}

func (r *ReviewRepository) Latest(ctx context.Context, limit int64) ([]*model.Review, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return r.MongoBaseRepository.Find(ctx, bson.M{}, opts)
}

func (r *ReviewRepository) Insert(ctx context.Context, review *model.Review) (*model.Review, error) {
	id, err := r.InsertOne(ctx, review)
	if err != nil {
		return nil, err
	}
	review.ID = id
	return review, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.DeleteByID(ctx, id)
}
