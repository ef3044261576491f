package service

import (
	"context"
	"log"
	"time"

	"mesob-delivery/order-svc/internal/domain"
)

const (
	// delay before a fresh order starts progressing
	initialAdvanceDelay = 10 * time.Second

	// bounds for the random delay between status hops
	minAdvanceDelay = 30 * time.Second
	maxAdvanceDelay = 120 * time.Second
)

func nextStatus(current domain.OrderStatus) (domain.OrderStatus, bool) {
	for i, status := range domain.StatusFlow {
		if status == current && i+1 < len(domain.StatusFlow) {
			return domain.StatusFlow[i+1], true
		}
	}
	return current, false
}

// advanceOrderStatus moves the order one step along the status flow and
// reschedules itself until the order is delivered. The terminal check is
// mandatory: a pending timer must not resurrect a cancelled order.
func (e *OrderEngine) advanceOrderStatus(orderID string) {
	e.mu.Lock()

	idx := e.orderIndexLocked(orderID)
	if idx < 0 || e.orders[idx].Status.Terminal() {
		e.mu.Unlock()
		return
	}

	next, ok := nextStatus(e.orders[idx].Status)
	if !ok {
		e.mu.Unlock()
		return
	}

	if next == domain.StatusOutForDelivery && e.orders[idx].DeliveryPersonID == "" {
		e.assignCourierLocked(idx)
	}

	e.orders[idx].Status = next
	e.orders[idx].UpdatedAt = e.clock.Now()

	if next == domain.StatusDelivered {
		e.orders[idx].ActualDeliveryTime = e.orders[idx].EstimatedDeliveryTime - e.rng.Intn(10)
		if e.activeOrderID == orderID {
			e.activeOrderID = ""
		}
	}

	updated := e.orders[idx]
	e.persistLocked()

	var delay time.Duration
	if next != domain.StatusDelivered {
		delay = minAdvanceDelay + time.Duration(e.rng.Int63n(int64(maxAdvanceDelay-minAdvanceDelay)))
	}
	e.mu.Unlock()

	e.publish(domain.OrderEvent{
		Type:      "status_changed",
		OrderID:   updated.ID,
		UserID:    updated.UserID,
		Status:    updated.Status,
		Timestamp: updated.UpdatedAt,
	})

	if next != domain.StatusDelivered {
		e.scheduler.AfterFunc(delay, func() {
			e.advanceOrderStatus(orderID)
		})
	}
}

// assignCourierLocked copies the first available courier onto the order.
// When nobody is free the order still goes out, just without a courier;
// assignment is not retried.
func (e *OrderEngine) assignCourierLocked(idx int) {
	if e.roster == nil {
		return
	}
	courier, err := e.roster.FirstAvailable(context.Background())
	if err != nil {
		log.Printf("[order-svc] courier lookup failed for %s: %v", e.orders[idx].ID, err)
		return
	}
	if courier == nil {
		return
	}
	e.orders[idx].DeliveryPersonID = courier.ID
	loc := courier.CurrentLocation
	e.orders[idx].DeliveryPersonLocation = &loc
}
