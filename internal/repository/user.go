package repository

import (
	"context"
	"time"

	"estatehub/internal/model"
	"estatehub/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// IUserRepository defines user account persistence. Email is the lookup key;
// uniqueness is application-level only (lookup before insert).
type IUserRepository interface {
	FindAll(ctx context.Context) ([]*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Insert(ctx context.Context, user *model.User) (*model.User, error)
	TouchLastLogin(ctx context.Context, email string, at time.Time) (int64, error)
	SetRole(ctx context.Context, email, role string) (int64, error)
	UpdateProfile(ctx context.Context, email string, fields map[string]interface{}) (int64, error)
	MarkFraud(ctx context.Context, email string) (int64, error)
	Delete(ctx context.Context, email string) (int64, error)
}

// UserRepository implements user persistence over the users collection
type UserRepository struct {
	generic.MongoBaseRepository[model.User]
}

func NewUserRepository(db *mongo.Database) IUserRepository {
	return &UserRepository{generic.NewBaseRepository[model.User](db.Collection("users"))}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	return r.Find(ctx, bson.M{})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.FindOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) Insert(ctx context.Context, user *model.User) (*model.User, error) {
	id, err := r.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return user, nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, email string, at time.Time) (int64, error) {
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"last_log_in": at}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *UserRepository) SetRole(ctx context.Context, email, role string) (int64, error) {
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, email string, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *UserRepository) MarkFraud(ctx context.Context, email string) (int64, error) {
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"status": model.UserStatusFraud}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *UserRepository) Delete(ctx context.Context, email string) (int64, error) {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
