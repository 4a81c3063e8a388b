package domain

import "fmt"

type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

var Tiers = []Tier{TierA, TierB, TierC}

func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTier, s)
	}
	return t, nil
}

func (t Tier) Valid() bool {
	switch t {
	case TierA, TierB, TierC:
		return true
	default:
		return false
	}
}

// Prices holds the three precomputed price levels of an item, in minor currency units.
type Prices struct {
	A int64 `json:"price_a"`
	B int64 `json:"price_b"`
	C int64 `json:"price_c"`
}

func (p Prices) For(t Tier) (int64, error) {
	switch t {
	case TierA:
		return p.A, nil
	case TierB:
		return p.B, nil
	case TierC:
		return p.C, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTier, t)
	}
}
