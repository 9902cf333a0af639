package repository

import (
	"context"
	"regexp"
	"time"

	"estatehub/internal/model"
	"estatehub/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PropertySearch carries the list-endpoint query knobs. SortBy outside
// {minPrice, maxPrice} or SortDir outside {asc, desc} leaves store order.
type PropertySearch struct {
	Search  string
	SortBy  string
	SortDir string
}

// IPropertyRepository defines listing persistence
type IPropertyRepository interface {
	Search(ctx context.Context, q PropertySearch) ([]*model.Property, error)
	FindAdvertised(ctx context.Context) ([]*model.Property, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Property, error)
	FindByAgent(ctx context.Context, email string) ([]*model.Property, error)
	Insert(ctx context.Context, p *model.Property) (*model.Property, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (int64, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error)
	Advertise(ctx context.Context, id primitive.ObjectID, at time.Time) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteByAgent(ctx context.Context, email string) (int64, error)
	ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// PropertyRepository implements listing persistence over the properties collection
type PropertyRepository struct {
	generic.MongoBaseRepository[model.Property]
}

func NewPropertyRepository(db *mongo.Database) IPropertyRepository {
	return &PropertyRepository{generic.NewBaseRepository[model.Property](db.Collection("properties"))}
}

func (r *PropertyRepository) Search(ctx context.Context, q PropertySearch) ([]*model.Property, error) {
	filter := bson.M{}
	if q.Search != "" {
		// Case-insensitive substring match on location; the user input is
		// quoted so regex metacharacters cannot widen the match.
		filter["location"] = bson.M{"$regex": regexp.QuoteMeta(q.Search), "$options": "i"}
	}

	opts := options.Find()
	if q.SortBy == "minPrice" || q.SortBy == "maxPrice" {
		switch q.SortDir {
		case "asc":
			opts.SetSort(bson.D{{Key: q.SortBy, Value: 1}})
		case "desc":
			opts.SetSort(bson.D{{Key: q.SortBy, Value: -1}})
		}
	}
	return r.Find(ctx, filter, opts)
}

func (r *PropertyRepository) FindAdvertised(ctx context.Context) ([]*model.Property, error) {
	opts := options.Find().SetSort(bson.D{{Key: "advertisedAt", Value: -1}})
	return r.Find(ctx, bson.M{"isAdvertised": true}, opts)
}

func (r *PropertyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Property, error) {
	return r.FindOne(ctx, bson.M{"_id": id})
}

func (r *PropertyRepository) FindByAgent(ctx context.Context, email string) ([]*model.Property, error) {
	return r.Find(ctx, bson.M{"agent_email": email})
}

func (r *PropertyRepository) Insert(ctx context.Context, p *model.Property) (*model.Property, error) {
	id, err := r.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

func (r *PropertyRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *PropertyRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error) {
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *PropertyRepository) Advertise(ctx context.Context, id primitive.ObjectID, at time.Time) (int64, error) {
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isAdvertised": true, "advertisedAt": at}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.DeleteByID(ctx, id)
}

func (r *PropertyRepository) DeleteByAgent(ctx context.Context, email string) (int64, error) {
	res, err := r.Collection.DeleteMany(ctx, bson.M{"agent_email": email})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *PropertyRepository) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.Exists(ctx, bson.M{"_id": id})
}
