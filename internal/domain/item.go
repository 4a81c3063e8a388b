package domain

import "time"

type ItemKind string

const (
	ItemKindTour      ItemKind = "tour"
	ItemKindTransport ItemKind = "transport"
)

func (k ItemKind) Valid() bool {
	return k == ItemKindTour || k == ItemKindTransport
}

// BookableItem is a tour or a transport with daily operating hours and a per-slot capacity.
type BookableItem struct {
	ID          string    `json:"id"`
	Kind        ItemKind  `json:"kind"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartTime   TimeOfDay `json:"start_time"`
	EndTime     TimeOfDay `json:"end_time"`
	Capacity    int       `json:"capacity"`
	Prices      Prices    `json:"prices"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) Contains(d time.Time) bool {
	d = DateOnly(d)
	return !d.Before(DateOnly(r.From)) && !d.After(DateOnly(r.To))
}

type CreateItemInput struct {
	Kind         ItemKind
	Name         string
	Description  string
	StartTime    TimeOfDay
	EndTime      TimeOfDay
	Capacity     int
	Prices       Prices
	Availability *DateRange
}

// UpdateItemInput replaces an item's mutable fields. Ledger entries that already
// exist keep their capacity until their dates are regenerated.
type UpdateItemInput struct {
	Name        string
	Description string
	StartTime   TimeOfDay
	EndTime     TimeOfDay
	Capacity    int
	Prices      Prices
}
