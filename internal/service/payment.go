package service

import (
	"context"
	"fmt"
	"time"

	"estatehub/internal/gateway"
	"estatehub/internal/model"
	"estatehub/internal/repository"
	"estatehub/pkg/timer"
	"estatehub/pkg/util"
)

// PaymentService records completed purchases and creates payment intents.
type PaymentService struct {
	payments repository.IPaymentRepository
	offers   repository.IOfferRepository
	gateway  gateway.PaymentGateway
}

func NewPaymentService(payments repository.IPaymentRepository, offers repository.IOfferRepository, gw gateway.PaymentGateway) *PaymentService {
	return &PaymentService{payments: payments, offers: offers, gateway: gw}
}

func (s *PaymentService) History(ctx context.Context, f repository.PaymentFilter) ([]*model.Payment, error) {
	return s.payments.Find(ctx, f)
}

// CreateIntent asks the processor for a client secret. The idempotency key
// is derived from the parcel and amount so client retries reuse the intent.
func (s *PaymentService) CreateIntent(ctx context.Context, req model.PaymentIntentRequest) (string, error) {
	if req.AmountInCents <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	var key string
	if req.ParcelID != "" {
		key = fmt.Sprintf("parcel-%s-%d", req.ParcelID, req.AmountInCents)
	}
	return s.gateway.CreateIntent(ctx, gateway.IntentRequest{
		AmountInCents:  req.AmountInCents,
		IdempotencyKey: key,
	})
}

// MarkPaid completes a purchase: the offer moves accepted -> bought with the
// transaction id, then a denormalized payment record is upserted keyed by
// that id. The two calls are still separate, but both halves are idempotent,
// so a retry after partial failure converges instead of duplicating.
func (s *PaymentService) MarkPaid(ctx context.Context, offerID string, req model.MarkPaidRequest) (*model.Payment, error) {
	sw := timer.NewStopwatch()

	oid, err := util.ParseObjectID(offerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	offer, err := s.offers.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, fmt.Errorf("%w: offer %s", ErrNotFound, offerID)
	}

	paidAt := req.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	bought, err := s.offers.MarkBoughtIfAccepted(ctx, oid, req.TransactionID, paidAt)
	if err != nil {
		return nil, fmt.Errorf("failed to mark offer bought: %w", err)
	}
	if !bought {
		// A retry of the same confirmation lands here after the offer
		// update committed; only then is it safe to continue.
		alreadyDone := offer.Status == model.OfferStatusBought && offer.TransactionID == req.TransactionID
		if !alreadyDone {
			return nil, fmt.Errorf("%w: offer %s is not accepted", ErrConflict, offerID)
		}
		paidAt = offer.PaidAt
	}
	sw.Lap("mark-offer-bought")

	payment := &model.Payment{
		TransactionID: req.TransactionID,
		OfferID:       offerID,
		PropertyID:    offer.PropertyID,
		Title:         offer.Title,
		AgentName:     offer.AgentName,
		BuyerEmail:    offer.BuyerEmail,
		BuyerName:     offer.BuyerName,
		OfferAmount:   offer.OfferAmount,
		PaidAt:        paidAt,
	}
	if payment.Title == "" {
		payment.Title = req.Title
	}
	if payment.AgentName == "" {
		payment.AgentName = req.AgentName
	}

	if err := s.payments.UpsertByTransaction(ctx, payment); err != nil {
		return nil, fmt.Errorf("offer marked bought but payment record failed, retry required: %w", err)
	}
	sw.Lap("record-payment")

	return payment, nil
}
