package service

import (
	"context"
	"fmt"
	"time"

	"estatehub/internal/model"
	"estatehub/internal/repository"
	"estatehub/pkg/util"
)

// PropertyService handles listing business logic
type PropertyService struct {
	properties repository.IPropertyRepository
	users      repository.IUserRepository
}

func NewPropertyService(properties repository.IPropertyRepository, users repository.IUserRepository) *PropertyService {
	return &PropertyService{properties: properties, users: users}
}

func (s *PropertyService) List(ctx context.Context, q repository.PropertySearch) ([]*model.Property, error) {
	return s.properties.Search(ctx, q)
}

func (s *PropertyService) Advertised(ctx context.Context) ([]*model.Property, error) {
	return s.properties.FindAdvertised(ctx)
}

func (s *PropertyService) Get(ctx context.Context, id string) (*model.Property, error) {
	oid, err := util.ParseObjectID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	property, err := s.properties.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, fmt.Errorf("%w: property %s", ErrNotFound, id)
	}
	return property, nil
}

func (s *PropertyService) ByAgent(ctx context.Context, email string) ([]*model.Property, error) {
	return s.properties.FindByAgent(ctx, email)
}

// Create inserts a listing after checking the owning agent is a known,
// non-fraud account. New listings start pending.
func (s *PropertyService) Create(ctx context.Context, property *model.Property) (*model.Property, error) {
	agent, err := s.users.FindByEmail(ctx, property.AgentEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to look up agent: %w", err)
	}
	if agent == nil || agent.IsFraud() {
		return nil, fmt.Errorf("%w: fraud agents can't add properties", ErrForbidden)
	}
	if property.Status == "" {
		property.Status = model.PropertyStatusPending
	}
	return s.properties.Insert(ctx, property)
}

// Update merges only whitelisted fields; status, ownership and advertising
// have their own endpoints.
func (s *PropertyService) Update(ctx context.Context, id string, req model.PropertyUpdateRequest) error {
	oid, err := util.ParseObjectID(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.MinPrice != nil {
		fields["minPrice"] = float64(*req.MinPrice)
	}
	if req.MaxPrice != nil {
		fields["maxPrice"] = float64(*req.MaxPrice)
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: no updatable fields provided", ErrValidation)
	}
	matched, err := s.properties.UpdateFields(ctx, oid, fields)
	if err != nil {
		return err
	}
	if matched == 0 {
		return fmt.Errorf("%w: property %s", ErrNotFound, id)
	}
	return nil
}

func (s *PropertyService) SetStatus(ctx context.Context, id, status string) error {
	switch status {
	case model.PropertyStatusPending, model.PropertyStatusVerified, model.PropertyStatusRejected:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	oid, err := util.ParseObjectID(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	matched, err := s.properties.SetStatus(ctx, oid, status)
	if err != nil {
		return err
	}
	if matched == 0 {
		return fmt.Errorf("%w: property %s", ErrNotFound, id)
	}
	return nil
}

func (s *PropertyService) Verify(ctx context.Context, id string) error {
	return s.SetStatus(ctx, id, model.PropertyStatusVerified)
}

func (s *PropertyService) Reject(ctx context.Context, id string) error {
	return s.SetStatus(ctx, id, model.PropertyStatusRejected)
}

func (s *PropertyService) Advertise(ctx context.Context, id string) error {
	oid, err := util.ParseObjectID(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	matched, err := s.properties.Advertise(ctx, oid, time.Now().UTC())
	if err != nil {
		return err
	}
	if matched == 0 {
		return fmt.Errorf("%w: property %s", ErrNotFound, id)
	}
	return nil
}

func (s *PropertyService) Delete(ctx context.Context, id string) error {
	oid, err := util.ParseObjectID(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	deleted, err := s.properties.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: property %s", ErrNotFound, id)
	}
	return nil
}
