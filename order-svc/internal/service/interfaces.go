package service

import (
	"context"

	"mesob-delivery/order-svc/internal/domain"
)

// OrderEngineInterface is the surface the HTTP layer (and the location feed
// consumer) program against.
type OrderEngineInterface interface {
	AddToCart(item domain.MenuItem, quantity int, selectedOptions []domain.SelectedOption, specialInstructions string)
	RemoveFromCart(cartItemID string)
	UpdateCartItemQuantity(cartItemID string, quantity int)
	ClearCart()

	Cart() []domain.CartItem
	SelectedRestaurantID() string
	CartTotal() float64
	CartItemCount() int
	DeliveryFee() float64
	TaxAmount() float64
	OrderTotal() float64

	CreateOrder(ctx context.Context, address domain.Location, method domain.PaymentMethod, instructions string, tip float64) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID string)
	OrderByID(orderID string) *domain.Order
	UserOrders(ctx context.Context) []domain.Order
	ActiveOrder() *domain.Order

	UpdateDeliveryPersonLocation(orderID string, loc domain.Location)
	DeliveryPersonLocation(orderID string) *domain.Location
}

// IdentityProvider resolves the acting user for the current request.
type IdentityProvider interface {
	CurrentUserID(ctx context.Context) (string, error)
}

// PaymentGateway is an opaque charge oracle. A false result with a nil error
// means the charge was declined.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, amount float64, method domain.PaymentMethod) (bool, error)
}

// DeliveryRoster supplies couriers for assignment. FirstAvailable returns
// nil when nobody is free.
type DeliveryRoster interface {
	FirstAvailable(ctx context.Context) (*domain.DeliveryPerson, error)
}

// RestaurantInfo exposes per-restaurant delivery fees from the catalog.
// found reports whether the catalog actually knows the restaurant; a found
// fee of 0 means free delivery, not absence.
type RestaurantInfo interface {
	DeliveryFee(ctx context.Context, restaurantID string) (fee float64, found bool, err error)
}

// StateStore persists the engine state between sessions. Saves are
// best-effort; the in-memory state stays the source of truth.
type StateStore interface {
	SaveCart(ctx context.Context, cart []domain.CartItem) error
	SaveOrders(ctx context.Context, orders []domain.Order) error
	LoadCart(ctx context.Context) ([]domain.CartItem, error)
	LoadOrders(ctx context.Context) ([]domain.Order, error)
}

// EventPublisher emits order lifecycle events to the broker.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// QRCache stores rendered pickup QR codes.
type QRCache interface {
	QRCode(ctx context.Context, orderID string) ([]byte, error)
	SaveQRCode(ctx context.Context, orderID string, png []byte) error
}

type PickupServiceInterface interface {
	QRCode(ctx context.Context, orderID string) ([]byte, error)
}

var (
	_ OrderEngineInterface   = (*OrderEngine)(nil)
	_ PickupServiceInterface = (*PickupService)(nil)
)
