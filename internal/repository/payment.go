package repository

import (
	"context"

	"estatehub/internal/model"
	"estatehub/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaymentFilter narrows the payment-history listing.
type PaymentFilter struct {
	BuyerEmail string
	PropertyID string
	OfferID    string
}

// IPaymentRepository defines payment record persistence. Records are keyed
// by transaction id so a retried confirmation cannot duplicate them.
type IPaymentRepository interface {
	Find(ctx context.Context, f PaymentFilter) ([]*model.Payment, error)
	FindByTransaction(ctx context.Context, transactionID string) (*model.Payment, error)
	UpsertByTransaction(ctx context.Context, payment *model.Payment) error
}

// PaymentRepository implements payment persistence
type PaymentRepository struct {
	generic.MongoBaseRepository[model.Payment]
}

func NewPaymentRepository(db *mongo.Database) IPaymentRepository {
	return &PaymentRepository{generic.NewBaseRepository[model.Payment](db.Collection("payments"))}
}

func (r *PaymentRepository) Find(ctx context.Context, f PaymentFilter) ([]*model.Payment, error) {
	filter := bson.M{}
	if f.BuyerEmail != "" {
		filter["buyerEmail"] = f.BuyerEmail
	}
	if f.PropertyID != "" {
		filter["propertyId"] = f.PropertyID
	}
	if f.OfferID != "" {
		filter["offerId"] = f.OfferID
	}
	opts := options.Find().SetSort(bson.D{{Key: "paidAt", Value: -1}})
	return r.MongoBaseRepository.Find(ctx, filter, opts)
}

func (r *PaymentRepository) FindByTransaction(ctx context.Context, transactionID string) (*model.Payment, error) {
	return r.FindOne(ctx, bson.M{"transaction_Id": transactionID})
}

// UpsertByTransaction records a payment exactly once per transaction id.
func (r *PaymentRepository) UpsertByTransaction(ctx context.Context, payment *model.Payment) error {
	update := bson.M{"$setOnInsert": bson.M{
		"transaction_Id": payment.TransactionID,
		"offerId":        payment.OfferID,
		"propertyId":     payment.PropertyID,
		"title":          payment.Title,
		"agent_name":     payment.AgentName,
		"buyerEmail":     payment.BuyerEmail,
		"buyerName":      payment.BuyerName,
		"offerAmount":    payment.OfferAmount,
		"paidAt":         payment.PaidAt,
	}}
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"transaction_Id": payment.TransactionID},
		update,
		options.Update().SetUpsert(true))
	return err
}
