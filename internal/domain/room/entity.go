package room

import "errors"

var (
	ErrInvalidCategory = errors.New("invalid room category")
	ErrInvalidRate     = errors.New("nightly rate cannot be negative")
)

type Category string

const (
	CategoryStandard  Category = "standard"
	CategoryDeluxe    Category = "deluxe"
	CategorySuite     Category = "suite"
	CategorySignature Category = "signature"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryStandard, CategoryDeluxe, CategorySuite, CategorySignature:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Room is a catalog entry. The catalog is read-only; rooms are seeded at
// startup and never mutated, so plain exported fields are enough.
type Room struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         Category `json:"category"`
	Description      string   `json:"description"`
	Image            string   `json:"image"`
	NightlyRateCents int64    `json:"nightly_rate_cents"`
	MaxGuests        int      `json:"max_guests"`
	SizeSqm          int      `json:"size_sqm"`
	Amenities        []string `json:"amenities"`
}

func (r *Room) Validate() error {
	if !r.Category.IsValid() {
		return ErrInvalidCategory
	}
	if r.NightlyRateCents < 0 {
		return ErrInvalidRate
	}
	return nil
}

func (r *Room) Fits(guests int) bool {
	return guests > 0 && guests <= r.MaxGuests
}
