package payment

import (
	"context"
	"time"

	"mesob-delivery/order-svc/internal/domain"
)

// SimulatedGateway stands in for a real payment processor: it waits out a
// fixed processing delay and approves everything unless a decline rule is
// installed.
type SimulatedGateway struct {
	Delay   time.Duration
	Decline func(amount float64, method domain.PaymentMethod) bool
}

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{Delay: 2 * time.Second}
}

func (g *SimulatedGateway) ProcessPayment(ctx context.Context, amount float64, method domain.PaymentMethod) (bool, error) {
	if g.Delay > 0 {
		select {
		case <-time.After(g.Delay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}

	if g.Decline != nil && g.Decline(amount, method) {
		return false, nil
	}
	return true, nil
}
