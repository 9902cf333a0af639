package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"estatehub/internal/model"
	"estatehub/internal/repository"
	"estatehub/pkg/timer"
)

// UserService handles account business logic, including the fraud cascade
// across the properties collection.
type UserService struct {
	users      repository.IUserRepository
	properties repository.IPropertyRepository
}

func NewUserService(users repository.IUserRepository, properties repository.IPropertyRepository) *UserService {
	return &UserService{users: users, properties: properties}
}

func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
	}
	return user, nil
}

// GetRole returns the user's role, defaulting to "user" when unset.
func (s *UserService) GetRole(ctx context.Context, email string) (string, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user.Role == "" {
		return model.RoleUser, nil
	}
	return user.Role, nil
}

// RecordLogin upserts the account on authentication: a known email only gets
// its last_log_in refreshed; a new one is inserted with created_at equal to
// last_log_in. The lookup and insert are separate store calls, so two racing
// first logins can still duplicate an email.
func (s *UserService) RecordLogin(ctx context.Context, user *model.User) (*model.User, bool, error) {
	now := time.Now().UTC()

	existing, err := s.users.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		if _, err := s.users.TouchLastLogin(ctx, user.Email, now); err != nil {
			return nil, false, fmt.Errorf("failed to update last login: %w", err)
		}
		existing.LastLogIn = now
		return existing, false, nil
	}

	user.CreatedAt = now
	user.LastLogIn = now
	created, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return created, true, nil
}

func (s *UserService) SetRole(ctx context.Context, email, role string) error {
	switch role {
	case model.RoleUser, model.RoleAgent, model.RoleAdmin:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	matched, err := s.users.SetRole(ctx, email, role)
	if err != nil {
		return err
	}
	if matched == 0 {
		return fmt.Errorf("%w: user %s", ErrNotFound, email)
	}
	return nil
}

// UpdateProfile merges only whitelisted fields; role and status are not
// reachable from here.
func (s *UserService) UpdateProfile(ctx context.Context, email string, req model.UserUpdateRequest) error {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.PhotoURL != nil {
		fields["photoURL"] = *req.PhotoURL
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: no updatable fields provided", ErrValidation)
	}
	matched, err := s.users.UpdateProfile(ctx, email, fields)
	if err != nil {
		return err
	}
	if matched == 0 {
		return fmt.Errorf("%w: user %s", ErrNotFound, email)
	}
	return nil
}

// MarkFraud flags the user and deletes every property they own. The two
// store calls are not transactional: if the deletion fails the user stays
// flagged with residual listings, and the call must be retried.
func (s *UserService) MarkFraud(ctx context.Context, email string) (int64, error) {
	sw := timer.NewStopwatch()

	matched, err := s.users.MarkFraud(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("failed to flag user: %w", err)
	}
	if matched == 0 {
		return 0, fmt.Errorf("%w: user %s", ErrNotFound, email)
	}
	sw.Lap("flag-user")

	removed, err := s.properties.DeleteByAgent(ctx, email)
	if err != nil {
		log.Printf("[fraud] property cascade failed for %s, retry required: %v", email, err)
		return 0, fmt.Errorf("user flagged but property removal failed: %w", err)
	}
	sw.Lap("remove-properties")
	log.Printf("[fraud] %s flagged, %d properties removed", email, removed)
	return removed, nil
}

func (s *UserService) Delete(ctx context.Context, email string) error {
	deleted, err := s.users.Delete(ctx, email)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: user %s", ErrNotFound, email)
	}
	return nil
}
