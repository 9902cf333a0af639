package repository

import (
	"context"

	"estatehub/internal/model"
	"estatehub/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IWishlistRepository defines wishlist persistence. The (propertyId, userEmail)
// pair is unique by check-then-insert only; there is no store constraint.
type IWishlistRepository interface {
	FindByUser(ctx context.Context, email string) ([]*model.WishlistEntry, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.WishlistEntry, error)
	ExistsForUser(ctx context.Context, propertyID, email string) (bool, error)
	Insert(ctx context.Context, entry *model.WishlistEntry) (*model.WishlistEntry, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// WishlistRepository implements wishlist persistence
type WishlistRepository struct {
	generic.MongoBaseRepository[model.WishlistEntry]
}

func NewWishlistRepository(db *mongo.Database) IWishlistRepository {
	return &WishlistRepository{generic.NewBaseRepository[model.WishlistEntry](db.Collection("wishlist"))}
}

func (r *WishlistRepository) FindByUser(ctx context.Context, email string) ([]*model.WishlistEntry, error) {
	return r.Find(ctx, bson.M{"userEmail": email})
}

func (r *WishlistRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.WishlistEntry, error) {
	return r.FindOne(ctx, bson.M{"_id": id})
}

func (r *WishlistRepository) ExistsForUser(ctx context.Context, propertyID, email string) (bool, error) {
	return r.Exists(ctx, bson.M{"propertyId": propertyID, "userEmail": email})
}

func (r *WishlistRepository) Insert(ctx context.Context, entry *model.WishlistEntry) (*model.WishlistEntry, error) {
	id, err := r.InsertOne(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return entry, nil
}

func (r *WishlistRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.DeleteByID(ctx, id)
}
