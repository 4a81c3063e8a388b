package domain

import "time"

type Cart struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type AddCartItemInput struct {
	ItemID   string
	Date     time.Time
	Time     TimeOfDay
	Quantity int
	Tier     Tier
}

// CartItemView is a reservation joined with its item and priced for the reservation's tier.
type CartItemView struct {
	ID        string
	ItemID    string
	ItemKind  ItemKind
	ItemName  string
	Date      time.Time
	Time      TimeOfDay
	Quantity  int
	Tier      Tier
	UnitPrice int64
	Total     int64
	Status    ReservationStatus
	CreatedAt time.Time
}
