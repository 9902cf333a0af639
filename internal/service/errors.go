package service

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers. Services wrap
// them with context via fmt.Errorf("%w: ...").
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("invalid input")
)
