package domain

import "errors"

var (
	// ErrStoreUnavailable wraps any transient ledger failure. Callers must
	// treat the affected state as unknown, never as empty.
	ErrStoreUnavailable = errors.New("ledger store unavailable")

	ErrInvalidItemNumber  = errors.New("item number out of range")
	ErrSellerNameRequired = errors.New("seller name required")
	ErrBuyerNameRequired  = errors.New("buyer name required")
	ErrNotReserved        = errors.New("item is not reserved")
	ErrNotYourReservation = errors.New("reservation held by another seller")
	ErrAlreadyReserved    = errors.New("item already reserved")
	ErrAlreadySold        = errors.New("item already sold")
)
