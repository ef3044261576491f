package service

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"mesob-delivery/order-svc/internal/domain"
)

var (
	ErrNotAuthenticated = errors.New("user must be logged in to create an order")
	ErrEmptyCart        = errors.New("cart empty or no restaurant selected")
	ErrPaymentFailed    = errors.New("payment failed")
	ErrOrderNotFound    = errors.New("order not found")
)

const (
	taxRate            = 0.10
	defaultDeliveryFee = 50.0

	// minutes, used when the catalog has no better estimate
	defaultEstimatedDeliveryTime = 45
)

// OrderEngine owns the cart and every order created during the session.
// All state lives behind one mutex; scheduler callbacks and the location
// feed run on their own goroutines.
type OrderEngine struct {
	mu                   sync.Mutex
	cart                 []domain.CartItem
	orders               []domain.Order
	activeOrderID        string
	selectedRestaurantID string

	identity    IdentityProvider
	gateway     PaymentGateway
	roster      DeliveryRoster
	restaurants RestaurantInfo
	store       StateStore
	publisher   EventPublisher
	scheduler   Scheduler
	clock       Clock
	rng         *rand.Rand
}

func NewOrderEngine(
	identity IdentityProvider,
	gateway PaymentGateway,
	roster DeliveryRoster,
	restaurants RestaurantInfo,
	store StateStore,
	publisher EventPublisher,
	scheduler Scheduler,
	clock Clock,
) *OrderEngine {
	return &OrderEngine{
		identity:    identity,
		gateway:     gateway,
		roster:      roster,
		restaurants: restaurants,
		store:       store,
		publisher:   publisher,
		scheduler:   scheduler,
		clock:       clock,
		rng:         rand.New(rand.NewSource(clock.Now().UnixNano())),
	}
}

// Load rehydrates cart and orders from the state store. The selected
// restaurant is re-derived from the stored cart; the active-order pointer
// is intentionally not persisted.
func (e *OrderEngine) Load(ctx context.Context) error {
	cart, err := e.store.LoadCart(ctx)
	if err != nil {
		return err
	}
	orders, err := e.store.LoadOrders(ctx)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.cart = cart
	e.orders = orders
	e.selectedRestaurantID = ""
	if len(cart) > 0 {
		e.selectedRestaurantID = cart[0].MenuItem.RestaurantID
	}
	return nil
}

// CreateOrder charges the gateway, freezes the cart into a new pending
// order and kicks off the delivery simulation. The cart survives a failed
// payment so the user can retry.
func (e *OrderEngine) CreateOrder(ctx context.Context, address domain.Location, method domain.PaymentMethod, instructions string, tip float64) (*domain.Order, error) {
	userID, err := e.identity.CurrentUserID(ctx)
	if err != nil || userID == "" {
		return nil, ErrNotAuthenticated
	}

	e.mu.Lock()
	if len(e.cart) == 0 || e.selectedRestaurantID == "" {
		e.mu.Unlock()
		return nil, ErrEmptyCart
	}

	restaurantID := e.selectedRestaurantID
	subtotal := e.cartTotalLocked()
	fee := e.deliveryFeeLocked(ctx)
	tax := e.taxAmountLocked()
	items := make([]domain.CartItem, len(e.cart))
	copy(items, e.cart)
	e.mu.Unlock()

	// No client-side timeout: a hung gateway blocks creation.
	ok, err := e.gateway.ProcessPayment(ctx, subtotal+fee+tax+tip, method)
	if err != nil || !ok {
		return nil, ErrPaymentFailed
	}

	now := e.clock.Now()
	order := domain.Order{
		ID:                    "order-" + uuid.NewString(),
		UserID:                userID,
		RestaurantID:          restaurantID,
		Items:                 items,
		Status:                domain.StatusPending,
		Subtotal:              subtotal,
		DeliveryFee:           fee,
		Tax:                   tax,
		Tip:                   tip,
		Total:                 subtotal + fee + tax + tip,
		PaymentMethod:         method,
		PaymentStatus:         domain.PaymentStatusCompleted,
		DeliveryAddress:       address,
		DeliveryInstructions:  instructions,
		EstimatedDeliveryTime: defaultEstimatedDeliveryTime,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	ordered := make(map[string]bool, len(items))
	for _, item := range items {
		ordered[item.ID] = true
	}

	e.mu.Lock()
	e.orders = append([]domain.Order{order}, e.orders...)
	e.activeOrderID = order.ID
	// Only the snapshotted lines leave the cart: anything added while the
	// gateway was processing stays for the next order.
	var remaining []domain.CartItem
	for _, item := range e.cart {
		if !ordered[item.ID] {
			remaining = append(remaining, item)
		}
	}
	e.cart = remaining
	if len(e.cart) == 0 {
		e.selectedRestaurantID = ""
	} else {
		e.selectedRestaurantID = e.cart[0].MenuItem.RestaurantID
	}
	e.persistLocked()
	e.mu.Unlock()

	e.publish(domain.OrderEvent{
		Type:      "order_created",
		OrderID:   order.ID,
		UserID:    order.UserID,
		Status:    order.Status,
		Timestamp: now,
	})

	orderID := order.ID
	e.scheduler.AfterFunc(initialAdvanceDelay, func() {
		e.advanceOrderStatus(orderID)
	})

	return &order, nil
}

// CancelOrder marks the order cancelled. Already-terminal orders are left
// untouched so a delivered order can never flip to cancelled.
func (e *OrderEngine) CancelOrder(ctx context.Context, orderID string) {
	var cancelled *domain.Order

	e.mu.Lock()
	idx := e.orderIndexLocked(orderID)
	if idx >= 0 && !e.orders[idx].Status.Terminal() {
		e.orders[idx].Status = domain.StatusCancelled
		e.orders[idx].UpdatedAt = e.clock.Now()
		if e.activeOrderID == orderID {
			e.activeOrderID = ""
		}
		o := e.orders[idx]
		cancelled = &o
		e.persistLocked()
	}
	e.mu.Unlock()

	if cancelled != nil {
		e.publish(domain.OrderEvent{
			Type:      "order_cancelled",
			OrderID:   cancelled.ID,
			UserID:    cancelled.UserID,
			Status:    cancelled.Status,
			Timestamp: cancelled.UpdatedAt,
		})
	}
}

// OrderByID returns a copy of the order, or nil when unknown. Absence is
// not an error.
func (e *OrderEngine) OrderByID(orderID string) *domain.Order {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.orderIndexLocked(orderID)
	if idx < 0 {
		return nil
	}
	o := e.orders[idx]
	return &o
}

// UserOrders returns the current user's orders, most recent first.
// An unauthenticated caller simply gets an empty list.
func (e *OrderEngine) UserOrders(ctx context.Context) []domain.Order {
	userID, err := e.identity.CurrentUserID(ctx)
	if err != nil || userID == "" {
		return []domain.Order{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	orders := []domain.Order{}
	for _, o := range e.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders
}

func (e *OrderEngine) ActiveOrder() *domain.Order {
	e.mu.Lock()
	activeID := e.activeOrderID
	e.mu.Unlock()

	if activeID == "" {
		return nil
	}
	return e.OrderByID(activeID)
}

// UpdateDeliveryPersonLocation overwrites the courier position pushed by
// the external location feed.
func (e *OrderEngine) UpdateDeliveryPersonLocation(orderID string, loc domain.Location) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.orderIndexLocked(orderID)
	if idx < 0 {
		return
	}
	e.orders[idx].DeliveryPersonLocation = &loc
	e.orders[idx].UpdatedAt = e.clock.Now()
	e.persistLocked()
}

func (e *OrderEngine) DeliveryPersonLocation(orderID string) *domain.Location {
	order := e.OrderByID(orderID)
	if order == nil || order.DeliveryPersonID == "" {
		return nil
	}
	return order.DeliveryPersonLocation
}

func (e *OrderEngine) orderIndexLocked(orderID string) int {
	for i := range e.orders {
		if e.orders[i].ID == orderID {
			return i
		}
	}
	return -1
}

// persistLocked saves the current state best-effort. Failures are logged
// and never surfaced: the in-memory state is the source of truth.
func (e *OrderEngine) persistLocked() {
	if e.store == nil {
		return
	}
	ctx := context.Background()
	if err := e.store.SaveCart(ctx, e.cart); err != nil {
		log.Printf("[order-svc] failed to persist cart: %v", err)
	}
	if err := e.store.SaveOrders(ctx, e.orders); err != nil {
		log.Printf("[order-svc] failed to persist orders: %v", err)
	}
}

func (e *OrderEngine) publish(event domain.OrderEvent) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.PublishOrderEvent(context.Background(), event); err != nil {
		log.Printf("[order-svc] failed to publish %s event for %s: %v", event.Type, event.OrderID, err)
	}
}
