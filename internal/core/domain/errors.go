package domain

import "errors"

var (
	// ErrNotFound reports an absent snapshot key or record.
	ErrNotFound = errors.New("not found")

	// ErrProductNotFound reports an unknown catalog product id.
	ErrProductNotFound = errors.New("product not found")

	// ErrEmptySelection reports a checkout submit that resolved
	// to zero items.
	ErrEmptySelection = errors.New("checkout selection is empty")

	// ErrUnknownUser reports a login for which no profile is stored.
	ErrUnknownUser = errors.New("unknown user")
)
