package auth

import "context"

// Principal is the verified identity attached to a request.
type Principal struct {
	UID   string
	Email string
}

// Verifier validates bearer credentials against the external identity
// provider and manages provider-side accounts.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Principal, error)
	DeleteAccount(ctx context.Context, uid string) error
}
