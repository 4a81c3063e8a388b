package domain

import "time"

type LedgerKey struct {
	ItemID string
	Date   time.Time
	Time   TimeOfDay
}

func NewLedgerKey(itemID string, date time.Time, t TimeOfDay) LedgerKey {
	return LedgerKey{ItemID: itemID, Date: DateOnly(date), Time: t}
}

func (k LedgerKey) Slot() Slot {
	return Slot{Date: k.Date, Time: k.Time}
}

// LedgerEntry is the capacity counter of one (item, date, slot).
type LedgerEntry struct {
	ItemID        string    `json:"item_id"`
	Date          time.Time `json:"date"`
	Time          TimeOfDay `json:"time"`
	TotalCapacity int       `json:"total_capacity"`
	Remaining     int       `json:"remaining"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (e LedgerEntry) Key() LedgerKey {
	return NewLedgerKey(e.ItemID, e.Date, e.Time)
}

func (e LedgerEntry) IsOpen() bool {
	return e.Remaining > 0
}

// Held is the number of units currently deducted by Held and Confirmed reservations.
func (e LedgerEntry) Held() int {
	return e.TotalCapacity - e.Remaining
}

// AvailabilityChange summarizes a ledger rebuild for one item and date range.
type AvailabilityChange struct {
	Released int `json:"released"`
	Purged   int `json:"purged"`
	Seeded   int `json:"seeded"`
}
