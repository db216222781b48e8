package domain

import "errors"

// All domain failures are expected, typed outcomes. Controllers map
// them to HTTP statuses; nothing here is fatal.
var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrReplacementNotFound     = errors.New("replacement request not found")
	ErrItemNotFound            = errors.New("item not found in order")
	ErrNotYetDelivered         = errors.New("order has not been delivered yet")
	ErrWindowExpired           = errors.New("replacement window has expired")
	ErrInvalidReason           = errors.New("replacement reason is required")
	ErrInvalidTransition       = errors.New("invalid replacement status transition")
	ErrOrderCancelled          = errors.New("order is cancelled")
	ErrActiveReplacementExists = errors.New("an active replacement request already exists for this item")
)
