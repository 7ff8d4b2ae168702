package services

import "errors"

// Error taxonomy shared by all services. Controllers match with errors.Is
// and map onto HTTP statuses; services wrap these with context via
// fmt.Errorf("%w: ...").
var (
	// client-supplied data failed validation; nothing was changed
	ErrInvalidInput = errors.New("invalid input")

	// a referenced id did not resolve; nothing was changed
	ErrNotFound = errors.New("not found")

	// checkout payload failed validation (empty cart, bad quantity/price)
	ErrInvalidOrderInput = errors.New("invalid order input")

	ErrOrderNotFound = errors.New("order not found")

	// transient: number allocation exhausted its retries or storage was
	// unavailable; the caller may resubmit the whole checkout
	ErrOrderCreationFailed = errors.New("order creation failed")
)
