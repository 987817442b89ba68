package booking

import "time"

// Rates are fixed product decisions; the cleaning fee is configuration
// (see config.BookingConfig) and passed in by the caller.
const (
	serviceFeeRatePercent = 5
	taxRatePercent        = 15
)

// Breakdown is derived from room rate, nights and the cleaning fee. It is
// recomputed on every mutation that touches the room or the dates; stored
// copies are snapshots of the last computation, never an independent source.
type Breakdown struct {
	BasePriceCents   int64 `json:"base_price_cents"`
	Nights           int   `json:"nights"`
	SubtotalCents    int64 `json:"subtotal_cents"`
	CleaningFeeCents int64 `json:"cleaning_fee_cents"`
	ServiceFeeCents  int64 `json:"service_fee_cents"`
	TaxCents         int64 `json:"tax_cents"`
	TotalCents       int64 `json:"total_cents"`
}

// CalculatePricing is pure. Callers guarantee nights >= 1 and
// basePriceCents >= 0.
func CalculatePricing(basePriceCents int64, nights int, cleaningFeeCents int64) Breakdown {
	subtotal := basePriceCents * int64(nights)
	serviceFee := roundPercent(subtotal, serviceFeeRatePercent)
	tax := roundPercent(subtotal, taxRatePercent)

	return Breakdown{
		BasePriceCents:   basePriceCents,
		Nights:           nights,
		SubtotalCents:    subtotal,
		CleaningFeeCents: cleaningFeeCents,
		ServiceFeeCents:  serviceFee,
		TaxCents:         tax,
		TotalCents:       subtotal + cleaningFeeCents + serviceFee + tax,
	}
}

// roundPercent applies an integer percentage with half-up rounding in cents.
func roundPercent(amountCents int64, percent int64) int64 {
	return (amountCents*percent + 50) / 100
}

// NightsBetween returns the number of nights in the stay: the ceiling of the
// checkIn→checkOut distance in days, never less than 1.
func NightsBetween(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	nights := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		nights++
	}
	if nights < 1 {
		nights = 1
	}
	return nights
}
