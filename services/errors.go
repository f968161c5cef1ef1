// services/errors.go - Domain error taxonomy
package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidKey         = errors.New("invalid or revoked API key")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyOwned       = errors.New("already purchased")
	ErrNotOwned           = errors.New("style not owned")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// InsufficientPointsError reports a purchase the user cannot afford,
// carrying both the price and the current balance.
type InsufficientPointsError struct {
	Required  int
	Available int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("not enough points: need %d, have %d", e.Required, e.Available)
}

// wrapStorage tags unexpected database errors as ErrStorageUnavailable
// at the service boundary. Domain errors pass through untouched so
// callers keep matching them with errors.Is / errors.As.
func wrapStorage(err error) error {
	if err == nil {
		return nil
	}
	var insufficient *InsufficientPointsError
	switch {
	case errors.As(err, &insufficient),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUnauthenticated),
		errors.Is(err, ErrInvalidKey),
		errors.Is(err, ErrUsernameTaken),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrAlreadyOwned),
		errors.Is(err, ErrNotOwned):
		return err
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
