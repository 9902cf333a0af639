package service

import (
	"context"
	"testing"

	"estatehub/internal/model"
	"estatehub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMarkPaidCompletesPurchase(t *testing.T) {
	payments := newFakePaymentRepo()
	offers := newFakeOfferRepo()
	svc := NewPaymentService(payments, offers, &fakeGateway{})

	offer := seedOffer(t, offers, primitive.NewObjectID().Hex(), "buyer@x.com", model.OfferStatusAccepted)

	paid, err := svc.MarkPaid(context.Background(), offer.ID.Hex(), model.MarkPaidRequest{
		TransactionID: "tx1",
	})
	require.NoError(t, err)
	assert.Equal(t, "tx1", paid.TransactionID)
	assert.Equal(t, offer.ID.Hex(), paid.OfferID)
	assert.Equal(t, "buyer@x.com", paid.BuyerEmail)
	assert.False(t, paid.PaidAt.IsZero())

	stored := offers.get(offer.ID)
	assert.Equal(t, model.OfferStatusBought, stored.Status)
	assert.Equal(t, "tx1", stored.TransactionID)
	assert.Len(t, payments.payments, 1)
}

func TestMarkPaidRetryConverges(t *testing.T) {
	payments := newFakePaymentRepo()
	offers := newFakeOfferRepo()
	svc := NewPaymentService(payments, offers, &fakeGateway{})

	offer := seedOffer(t, offers, primitive.NewObjectID().Hex(), "buyer@x.com", model.OfferStatusAccepted)

	first, err := svc.MarkPaid(context.Background(), offer.ID.Hex(), model.MarkPaidRequest{TransactionID: "tx1"})
	require.NoError(t, err)

	// The client retries the same confirmation after a dropped response.
	second, err := svc.MarkPaid(context.Background(), offer.ID.Hex(), model.MarkPaidRequest{TransactionID: "tx1"})
	require.NoError(t, err)
	assert.Equal(t, first.TransactionID, second.TransactionID)
	assert.Equal(t, first.PaidAt, second.PaidAt)

	assert.Len(t, payments.payments, 1, "a retried confirmation must not duplicate the record")
	assert.Equal(t, model.OfferStatusBought, offers.get(offer.ID).Status)
}

func TestMarkPaidRecoversFromPartialFailure(t *testing.T) {
	payments := newFakePaymentRepo()
	offers := newFakeOfferRepo()
	svc := NewPaymentService(payments, offers, &fakeGateway{})

	offer := seedOffer(t, offers, primitive.NewObjectID().Hex(), "buyer@x.com", model.OfferStatusAccepted)

	// First attempt: offer flips to bought, then the record write fails.
	payments.upsertErr = assert.AnError
	_, err := svc.MarkPaid(context.Background(), offer.ID.Hex(), model.MarkPaidRequest{TransactionID: "tx1"})
	require.Error(t, err)
	assert.Equal(t, model.OfferStatusBought, offers.get(offer.ID).Status)
	assert.Empty(t, payments.payments)

	// The retry finds the offer already bought with the same id and
	// finishes the record half.
	payments.upsertErr = nil
	paid, err := svc.MarkPaid(context.Background(), offer.ID.Hex(), model.MarkPaidRequest{TransactionID: "tx1"})
	require.NoError(t, err)
	assert.Equal(t, "tx1", paid.TransactionID)
	assert.Len(t, payments.payments, 1)
}

func TestMarkPaidRejectsNonAcceptedOffer(t *testing.T) {
	payments := newFakePaymentRepo()
	offers := newFakeOfferRepo()
	svc := NewPaymentService(payments, offers, &fakeGateway{})

	pending := seedOffer(t, offers, primitive.NewObjectID().Hex(), "buyer@x.com", model.OfferStatusPending)

	_, err := svc.MarkPaid(context.Background(), pending.ID.Hex(), model.MarkPaidRequest{TransactionID: "tx1"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, model.OfferStatusPending, offers.get(pending.ID).Status)
	assert.Empty(t, payments.payments)
}

func TestMarkPaidDifferentTransactionConflicts(t *testing.T) {
	payments := newFakePaymentRepo()
	offers := newFakeOfferRepo()
	svc := NewPaymentService(payments, offers, &fakeGateway{})

	offer := seedOffer(t, offers, primitive.NewObjectID().Hex(), "buyer@x.com", model.OfferStatusAccepted)

	_, err := svc.MarkPaid(context.Background(), offer.ID.Hex(), model.MarkPaidRequest{TransactionID: "tx1"})
	require.NoError(t, err)

	_, err = svc.MarkPaid(context.Background(), offer.ID.Hex(), model.MarkPaidRequest{TransactionID: "tx2"})
	assert.ErrorIs(t, err, ErrConflict, "a second transaction for a bought offer is not a retry")
	assert.Len(t, payments.payments, 1)
}

func TestMarkPaidUnknownOffer(t *testing.T) {
	svc := NewPaymentService(newFakePaymentRepo(), newFakeOfferRepo(), &fakeGateway{})

	_, err := svc.MarkPaid(context.Background(), primitive.NewObjectID().Hex(), model.MarkPaidRequest{TransactionID: "tx1"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.MarkPaid(context.Background(), "not-a-hex-id", model.MarkPaidRequest{TransactionID: "tx1"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateIntentDerivesIdempotencyKey(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewPaymentService(newFakePaymentRepo(), newFakeOfferRepo(), gw)

	secret, err := svc.CreateIntent(context.Background(), model.PaymentIntentRequest{
		AmountInCents: 15000,
		ParcelID:      "abc123",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_secret", secret)

	require.Len(t, gw.requests, 1)
	assert.EqualValues(t, 15000, gw.requests[0].AmountInCents)
	assert.Equal(t, "parcel-abc123-15000", gw.requests[0].IdempotencyKey)
}

func TestCreateIntentWithoutParcelOmitsKey(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewPaymentService(newFakePaymentRepo(), newFakeOfferRepo(), gw)

	_, err := svc.CreateIntent(context.Background(), model.PaymentIntentRequest{AmountInCents: 500})
	require.NoError(t, err)
	require.Len(t, gw.requests, 1)
	assert.Empty(t, gw.requests[0].IdempotencyKey)
}

func TestCreateIntentRejectsNonPositiveAmount(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewPaymentService(newFakePaymentRepo(), newFakeOfferRepo(), gw)

	_, err := svc.CreateIntent(context.Background(), model.PaymentIntentRequest{AmountInCents: 0})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, gw.requests)
}

func TestPaymentHistoryFiltersByBuyer(t *testing.T) {
	payments := newFakePaymentRepo()
	svc := NewPaymentService(payments, newFakeOfferRepo(), &fakeGateway{})

	require.NoError(t, payments.UpsertByTransaction(context.Background(), &model.Payment{
		TransactionID: "tx1", BuyerEmail: "a@x.com",
	}))
	require.NoError(t, payments.UpsertByTransaction(context.Background(), &model.Payment{
		TransactionID: "tx2", BuyerEmail: "b@x.com",
	}))

	mine, err := svc.History(context.Background(), repository.PaymentFilter{BuyerEmail: "a@x.com"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "tx1", mine[0].TransactionID)
}
