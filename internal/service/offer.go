package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"estatehub/internal/model"
	"estatehub/internal/repository"
	"estatehub/pkg/timer"
	"estatehub/pkg/util"
)

// OfferService orchestrates the offer lifecycle:
// pending -> accepted -> bought, or pending -> rejected.
type OfferService struct {
	offers     repository.IOfferRepository
	properties repository.IPropertyRepository
}

func NewOfferService(offers repository.IOfferRepository, properties repository.IPropertyRepository) *OfferService {
	return &OfferService{offers: offers, properties: properties}
}

func (s *OfferService) List(ctx context.Context, agentEmail, buyerEmail string) ([]*model.Offer, error) {
	return s.offers.Find(ctx, agentEmail, buyerEmail)
}

func (s *OfferService) Get(ctx context.Context, id string) (*model.Offer, error) {
	oid, err := util.ParseObjectID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	offer, err := s.offers.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, fmt.Errorf("%w: offer %s", ErrNotFound, id)
	}
	return offer, nil
}

// Create inserts a new offer. Status is forced to pending server-side and the
// referenced property must resolve.
func (s *OfferService) Create(ctx context.Context, offer *model.Offer) (*model.Offer, error) {
	propertyOID, err := util.ParseObjectID(offer.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	exists, err := s.properties.ExistsByID(ctx, propertyOID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve property: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: property %s", ErrNotFound, offer.PropertyID)
	}

	offer.Status = model.OfferStatusPending
	offer.TransactionID = ""
	return s.offers.Insert(ctx, offer)
}

// Accept resolves the winning offer for a property. The pending -> accepted
// transition is a single conditional update, so of two racing accepts only
// one can match; the loser gets a conflict. Sibling rejection is a
// best-effort follow-up limited to offers still pending: it never downgrades
// a bought or rejected sibling, and a failure is logged rather than rolled
// back, leaving pending siblings for the next accept or reject to clean up.
func (s *OfferService) Accept(ctx context.Context, id string) (*model.Offer, error) {
	sw := timer.NewStopwatch()

	oid, err := util.ParseObjectID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	offer, err := s.offers.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, fmt.Errorf("%w: offer %s", ErrNotFound, id)
	}

	decidedAt := time.Now().UTC()
	accepted, err := s.offers.AcceptIfPending(ctx, oid, decidedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to accept offer: %w", err)
	}
	if !accepted {
		return nil, fmt.Errorf("%w: offer %s is no longer pending", ErrConflict, id)
	}
	offer.Status = model.OfferStatusAccepted
	offer.DecisionAt = decidedAt
	sw.Lap("accept-offer")

	rejected, err := s.offers.RejectPendingSiblings(ctx, offer.PropertyID, oid)
	if err != nil {
		log.Printf("[accept] sibling rejection failed for property %s: %v", offer.PropertyID, err)
	} else {
		log.Printf("[accept] offer %s accepted, %d sibling offers rejected", id, rejected)
	}
	sw.Lap("reject-siblings")

	return offer, nil
}

// Reject declines an offer. A bought offer is terminal and cannot be
// rejected after the fact.
func (s *OfferService) Reject(ctx context.Context, id string) error {
	oid, err := util.ParseObjectID(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	offer, err := s.offers.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if offer == nil {
		return fmt.Errorf("%w: offer %s", ErrNotFound, id)
	}
	rejected, err := s.offers.RejectIfNotBought(ctx, oid)
	if err != nil {
		return fmt.Errorf("failed to reject offer: %w", err)
	}
	if !rejected {
		return fmt.Errorf("%w: offer %s is already bought", ErrConflict, id)
	}
	return nil
}

// Delete removes an offer by its own identifier.
func (s *OfferService) Delete(ctx context.Context, id string) error {
	oid, err := util.ParseObjectID(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	deleted, err := s.offers.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: offer %s", ErrNotFound, id)
	}
	return nil
}
