// Package payment holds the gateway adapter. There is no real processor
// behind it; the adapter simulates authorization latency and a configurable
// decline rate so the booking flow exercises both outcomes. The usecase layer
// only sees the Gateway port, so swapping in a real PSP is a bootstrap change.
package payment

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"lumiere-guest-api/internal/domain/booking"
	"lumiere-guest-api/internal/pkg/config"
	"lumiere-guest-api/internal/usecase/commands"
)

type SimulatedGateway struct {
	delay       time.Duration
	declineRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulatedGateway(cfg config.BookingConfig) *SimulatedGateway {
	return &SimulatedGateway{
		delay:       cfg.PaymentDelay,
		declineRate: cfg.PaymentDeclineRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Charge blocks for the simulated authorization latency, honouring ctx, then
// either declines or returns the masked card record for the booking.
func (g *SimulatedGateway) Charge(ctx context.Context, amountCents int64, card commands.CardInput) (booking.CardInfo, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return booking.CardInfo{}, ctx.Err()
		case <-timer.C:
		}
	}

	if g.roll() < g.declineRate {
		return booking.CardInfo{}, commands.ErrChargeDeclined
	}

	return booking.MaskCard(card.Number), nil
}

func (g *SimulatedGateway) roll() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}
