package repository

import (
	"context"
	"time"

	"estatehub/internal/model"
	"estatehub/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IOfferRepository defines offer persistence. All state transitions are
// conditional updates so a lost race surfaces as matched == 0 instead of a
// silent overwrite.
type IOfferRepository interface {
	Find(ctx context.Context, agentEmail, buyerEmail string) ([]*model.Offer, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Offer, error)
	Insert(ctx context.Context, offer *model.Offer) (*model.Offer, error)
	AcceptIfPending(ctx context.Context, id primitive.ObjectID, at time.Time) (bool, error)
	RejectPendingSiblings(ctx context.Context, propertyID string, except primitive.ObjectID) (int64, error)
	RejectIfNotBought(ctx context.Context, id primitive.ObjectID) (bool, error)
	MarkBoughtIfAccepted(ctx context.Context, id primitive.ObjectID, transactionID string, paidAt time.Time) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// OfferRepository implements offer persistence over the makeOffer collection
type OfferRepository struct {
	generic.MongoBaseRepository[model.Offer]
}

func NewOfferRepository(db *mongo.Database) IOfferRepository {
	return &OfferRepository{generic.NewBaseRepository[model.Offer](db.Collection("makeOffer"))}
}

func (r *OfferRepository) Find(ctx context.Context, agentEmail, buyerEmail string) ([]*model.Offer, error) {
	filter := bson.M{}
	if agentEmail != "" {
		filter["agent_email"] = agentEmail
	}
	if buyerEmail != "" {
		filter["buyerEmail"] = buyerEmail
	}
	return r.MongoBaseRepository.Find(ctx, filter)
}

func (r *OfferRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Offer, error) {
	return r.FindOne(ctx, bson.M{"_id": id})
}

func (r *OfferRepository) Insert(ctx context.Context, offer *model.Offer) (*model.Offer, error) {
	id, err := r.InsertOne(ctx, offer)
	if err != nil {
		return nil, err
	}
	offer.ID = id
	return offer, nil
}

// AcceptIfPending transitions pending -> accepted. Returns false when the
// offer is no longer pending, which means another accept won the race.
func (r *OfferRepository) AcceptIfPending(ctx context.Context, id primitive.ObjectID, at time.Time) (bool, error) {
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": id, "status": model.OfferStatusPending},
		bson.M{"$set": bson.M{"status": model.OfferStatusAccepted, "decisionAt": at}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// RejectPendingSiblings fans rejection out to every other pending offer on
// the same property. Bought and already-rejected siblings are untouched.
func (r *OfferRepository) RejectPendingSiblings(ctx context.Context, propertyID string, except primitive.ObjectID) (int64, error) {
	res, err := r.Collection.UpdateMany(ctx,
		bson.M{
			"propertyId": propertyID,
			"_id":        bson.M{"$ne": except},
			"status":     model.OfferStatusPending,
		},
		bson.M{"$set": bson.M{"status": model.OfferStatusRejected}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// RejectIfNotBought rejects an offer unless the purchase already completed.
func (r *OfferRepository) RejectIfNotBought(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": id, "status": bson.M{"$ne": model.OfferStatusBought}},
		bson.M{"$set": bson.M{"status": model.OfferStatusRejected}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// MarkBoughtIfAccepted transitions accepted -> bought with the payment
// transaction id and timestamp.
func (r *OfferRepository) MarkBoughtIfAccepted(ctx context.Context, id primitive.ObjectID, transactionID string, paidAt time.Time) (bool, error) {
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": id, "status": model.OfferStatusAccepted},
		bson.M{"$set": bson.M{
			"status":         model.OfferStatusBought,
			"transaction_Id": transactionID,
			"paidAt":         paidAt,
		}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *OfferRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.DeleteByID(ctx, id)
}
