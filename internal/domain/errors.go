package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("not found")

var (
	ErrItemNotFound        = fmt.Errorf("item %w", ErrNotFound)
	ErrSlotNotFound        = fmt.Errorf("slot %w", ErrNotFound)
	ErrReservationNotFound = fmt.Errorf("reservation %w", ErrNotFound)
	ErrCartNotFound        = fmt.Errorf("cart %w", ErrNotFound)
	ErrCartItemNotFound    = fmt.Errorf("cart item %w", ErrNotFound)
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
)

var (
	ErrSlotUnavailable        = errors.New("time slot is full")
	ErrInsufficientCapacity   = errors.New("insufficient capacity")
	ErrInvalidStateTransition = errors.New("invalid reservation state transition")
	ErrHoldConflict           = errors.New("another hold for this slot is being placed")
	ErrConsistency            = errors.New("ledger consistency violated")
)

var (
	ErrInvalidTier          = errors.New("invalid pricing tier")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrValidation           = errors.New("validation error")
	ErrUsernameTaken        = errors.New("username is already taken")
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// ConsistencyError reports a ledger mutation that would break 0 <= remaining <= total_capacity.
type ConsistencyError struct {
	ItemID        string
	Date          time.Time
	Time          TimeOfDay
	Delta         int
	Remaining     int
	TotalCapacity int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf(
		"%s: item %s slot %s %s delta %+d remaining %d capacity %d",
		ErrConsistency, e.ItemID, e.Date.Format(time.DateOnly), e.Time,
		e.Delta, e.Remaining, e.TotalCapacity,
	)
}

func (e *ConsistencyError) Is(target error) bool {
	return target == ErrConsistency
}
