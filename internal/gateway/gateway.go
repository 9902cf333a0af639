package gateway

import "context"

// IntentRequest describes a payment to be collected out-of-band by the
// client. Amount is in minor currency units.
type IntentRequest struct {
	AmountInCents  int64
	Currency       string
	IdempotencyKey string
}

// PaymentGateway creates payment intents with the external processor and
// returns the client-usable secret.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (string, error)
}
