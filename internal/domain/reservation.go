package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusHeld      ReservationStatus = "held"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusReleased  ReservationStatus = "released"
)

// DeductingStatuses are the statuses whose quantity is mirrored by a ledger deduction.
var DeductingStatuses = []ReservationStatus{ReservationStatusHeld, ReservationStatusConfirmed}

func (s ReservationStatus) Terminal() bool {
	return s == ReservationStatusConfirmed || s == ReservationStatusReleased
}

// CanTransition reports whether a reservation may move from s to next.
// Held is the only non-terminal state.
func (s ReservationStatus) CanTransition(next ReservationStatus) bool {
	if s != ReservationStatusHeld {
		return false
	}
	return next == ReservationStatusConfirmed || next == ReservationStatusReleased
}

// Reservation is one cart item's hold on a ledger entry.
type Reservation struct {
	ID        string            `json:"id"`
	CartID    string            `json:"cart_id"`
	UserID    string            `json:"user_id"`
	ItemID    string            `json:"item_id"`
	Date      time.Time         `json:"date"`
	Time      TimeOfDay         `json:"time"`
	Quantity  int               `json:"quantity"`
	Tier      Tier              `json:"tier"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (r *Reservation) Key() LedgerKey {
	return NewLedgerKey(r.ItemID, r.Date, r.Time)
}

type ReserveInput struct {
	CartID   string
	UserID   string
	ItemID   string
	Date     time.Time
	Time     TimeOfDay
	Quantity int
	Tier     Tier
}

func (in ReserveInput) Key() LedgerKey {
	return NewLedgerKey(in.ItemID, in.Date, in.Time)
}
