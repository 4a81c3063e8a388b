package domain

import "time"

type ReservationEventType string

const (
	ReservationHeld      ReservationEventType = "reservation.held"
	ReservationConfirmed ReservationEventType = "reservation.confirmed"
	ReservationReleased  ReservationEventType = "reservation.released"
)

type ReservationEvent struct {
	Type          ReservationEventType `json:"type"`
	ReservationID string               `json:"reservation_id"`
	CartID        string               `json:"cart_id"`
	UserID        string               `json:"user_id"`
	ItemID        string               `json:"item_id"`
	Date          string               `json:"date"`
	Time          string               `json:"time"`
	Quantity      int                  `json:"quantity"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

func NewReservationEvent(t ReservationEventType, r *Reservation) ReservationEvent {
	return ReservationEvent{
		Type:          t,
		ReservationID: r.ID,
		CartID:        r.CartID,
		UserID:        r.UserID,
		ItemID:        r.ItemID,
		Date:          r.Date.Format(time.DateOnly),
		Time:          r.Time.String(),
		Quantity:      r.Quantity,
		OccurredAt:    time.Now().UTC(),
	}
}
