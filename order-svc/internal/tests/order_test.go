package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"mesob-delivery/order-svc/internal/domain"
	"mesob-delivery/order-svc/internal/mocks"
	"mesob-delivery/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type orderFixture struct {
	engine    *service.OrderEngine
	gateway   *mocks.PaymentGateway
	roster    *mocks.DeliveryRoster
	publisher *mocks.EventPublisher
	store     *memStore
	scheduler *fakeScheduler
	clock     *fakeClock
}

func newOrderFixture(t *testing.T, userID string) *orderFixture {
	f := &orderFixture{
		gateway:   mocks.NewPaymentGateway(t),
		roster:    mocks.NewDeliveryRoster(t),
		publisher: mocks.NewEventPublisher(t),
		store:     &memStore{},
		scheduler: &fakeScheduler{},
		clock:     newFakeClock(),
	}
	f.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.engine = service.NewOrderEngine(
		staticIdentity{userID: userID},
		f.gateway,
		f.roster,
		nil,
		f.store,
		f.publisher,
		f.scheduler,
		f.clock,
	)
	return f
}

var addis = domain.Location{Latitude: 9.0054, Longitude: 38.7636, Address: "Bole Road, Addis Ababa"}

func TestCreateOrder_Success(t *testing.T) {
	f := newOrderFixture(t, "user1")
	f.engine.AddToCart(menuItem("item1", "restaurant1", 100), 2, nil, "")

	// subtotal 200 + fee 50 + tax 20 + tip 20
	f.gateway.On("ProcessPayment", mock.Anything, 290.0, domain.PaymentCreditCard).Return(true, nil).Once()

	order, err := f.engine.CreateOrder(context.Background(), addis, domain.PaymentCreditCard, "call on arrival", 20)
	assert.NoError(t, err)

	assert.Equal(t, "user1", order.UserID)
	assert.Equal(t, "restaurant1", order.RestaurantID)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, domain.PaymentStatusCompleted, order.PaymentStatus)
	assert.Equal(t, 200.0, order.Subtotal)
	assert.Equal(t, 50.0, order.DeliveryFee)
	assert.Equal(t, 20.0, order.Tax)
	assert.Equal(t, 20.0, order.Tip)
	assert.Equal(t, 290.0, order.Total)
	assert.Equal(t, order.Subtotal+order.DeliveryFee+order.Tax+order.Tip, order.Total)
	assert.Equal(t, 45, order.EstimatedDeliveryTime)
	assert.Equal(t, addis, order.DeliveryAddress)
	assert.Equal(t, "call on arrival", order.DeliveryInstructions)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, f.clock.Now(), order.CreatedAt)
	assert.Equal(t, f.clock.Now(), order.UpdatedAt)

	// cart is gone, order is active, simulation chain is armed
	assert.Empty(t, f.engine.Cart())
	assert.Empty(t, f.engine.SelectedRestaurantID())
	active := f.engine.ActiveOrder()
	assert.NotNil(t, active)
	assert.Equal(t, order.ID, active.ID)
	assert.Equal(t, 1, f.scheduler.Pending())
}

func TestCreateOrder_NotAuthenticated(t *testing.T) {
	f := newOrderFixture(t, "")
	f.engine.AddToCart(menuItem("item1", "restaurant1", 100), 1, nil, "")

	order, err := f.engine.CreateOrder(context.Background(), addis, domain.PaymentCash, "", 0)

	assert.ErrorIs(t, err, service.ErrNotAuthenticated)
	assert.Nil(t, order)
	f.gateway.AssertNotCalled(t, "ProcessPayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	f := newOrderFixture(t, "user1")

	order, err := f.engine.CreateOrder(context.Background(), addis, domain.PaymentCash, "", 0)

	assert.ErrorIs(t, err, service.ErrEmptyCart)
	assert.Nil(t, order)
}

func TestCreateOrder_KeepsItemsAddedDuringPayment(t *testing.T) {
	f := newOrderFixture(t, "user1")
	f.engine.AddToCart(menuItem("item1", "restaurant1", 100), 2, nil, "")

	// The gateway call runs outside the engine lock, so another request can
	// add to the cart mid-payment. That line must survive the post-payment
	// clear.
	f.gateway.On("ProcessPayment", mock.Anything, 270.0, domain.PaymentCreditCard).
		Run(func(args mock.Arguments) {
			f.engine.AddToCart(menuItem("item2", "restaurant1", 80), 1, nil, "")
		}).
		Return(true, nil).Once()

	order, err := f.engine.CreateOrder(context.Background(), addis, domain.PaymentCreditCard, "", 0)
	assert.NoError(t, err)

	// only the snapshotted line was ordered and charged
	assert.Len(t, order.Items, 1)
	assert.Equal(t, "item1", order.Items[0].MenuItem.ID)
	assert.Equal(t, 200.0, order.Subtotal)

	// the mid-payment addition stays in the cart for the next order
	cart := f.engine.Cart()
	assert.Len(t, cart, 1)
	assert.Equal(t, "item2", cart[0].MenuItem.ID)
	assert.Equal(t, "restaurant1", f.engine.SelectedRestaurantID())
}

func TestCreateOrder_PaymentDeclinedKeepsCart(t *testing.T) {
	f := newOrderFixture(t, "user1")
	f.engine.AddToCart(menuItem("item1", "restaurant1", 100), 1, nil, "")

	f.gateway.On("ProcessPayment", mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()

	order, err := f.engine.CreateOrder(context.Background(), addis, domain.PaymentMobileMoney, "", 0)

	assert.ErrorIs(t, err, service.ErrPaymentFailed)
	assert.Nil(t, order)
	// cart untouched so the user can retry with another method
	assert.Len(t, f.engine.Cart(), 1)
	assert.Equal(t, "restaurant1", f.engine.SelectedRestaurantID())
	assert.Empty(t, f.engine.UserOrders(context.Background()))
	assert.Equal(t, 0, f.scheduler.Pending())
}

func TestCreateOrder_GatewayErrorKeepsCart(t *testing.T) {
	f := newOrderFixture(t, "user1")
	f.engine.AddToCart(menuItem("item1", "restaurant1", 100), 1, nil, "")

	f.gateway.On("ProcessPayment", mock.Anything, mock.Anything, mock.Anything).
		Return(false, errors.New("gateway unreachable")).Once()

	_, err := f.engine.CreateOrder(context.Background(), addis, domain.PaymentDebitCard, "", 0)

	assert.ErrorIs(t, err, service.ErrPaymentFailed)
	assert.Len(t, f.engine.Cart(), 1)
}

func TestCreateOrder_TotalNeverDrifts(t *testing.T) {
	f := newOrderFixture(t, "user1")
	f.engine.AddToCart(menuItem("item1", "restaurant1", 100), 2, nil, "")
	f.gateway.On("ProcessPayment", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	order, err := f.engine.CreateOrder(context.Background(), addis, domain.PaymentCash, "", 0)
	assert.NoError(t, err)

	// later cart activity must not touch the frozen order
	f.engine.AddToCart(menuItem("item9", "restaurant9", 999), 5, nil, "")

	stored := f.engine.OrderByID(order.ID)
	assert.Equal(t, 270.0, stored.Total)
	assert.Equal(t, stored.Subtotal+stored.DeliveryFee+stored.Tax+stored.Tip, stored.Total)
	assert.Len(t, stored.Items, 1)
}

func TestOrderByID_UnknownReturnsNil(t *testing.T) {
	f := newOrderFixture(t, "user1")
	assert.Nil(t, f.engine.OrderByID("order-unknown"))
}

func TestUserOrders_MostRecentFirst(t *testing.T) {
	f := newOrderFixture(t, "user1")
	f.gateway.On("ProcessPayment", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	f.engine.AddToCart(menuItem("item1", "restaurant1", 100), 1, nil, "")
	first, err := f.engine.CreateOrder(context.Background(), addis, domain.PaymentCash, "", 0)
	assert.NoError(t, err)

	f.clock.Advance(time.Minute)
	f.engine.AddToCart(menuItem("item2", "restaurant2", 80), 1, nil, "")
	second, err := f.engine.CreateOrder(context.Background(), addis, domain.PaymentCash, "", 0)
	assert.NoError(t, err)

	orders := f.engine.UserOrders(context.Background())
	assert.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestUserOrders_UnauthenticatedGetsEmptyList(t *testing.T) {
	f := newOrderFixture(t, "")
	assert.Empty(t, f.engine.UserOrders(context.Background()))
}

func TestActiveOrder_NoneReturnsNil(t *testing.T) {
	f := newOrderFixture(t, "user1")
	assert.Nil(t, f.engine.ActiveOrder())
}

func TestLoad_RehydratesStateAndDerivesRestaurant(t *testing.T) {
	store := &memStore{}
	seed := service.NewOrderEngine(
		staticIdentity{userID: "user1"},
		nil, nil, nil,
		store, nil,
		&fakeScheduler{}, newFakeClock(),
	)
	seed.AddToCart(menuItem("item1", "restaurant7", 120), 2, nil, "")

	restarted := service.NewOrderEngine(
		staticIdentity{userID: "user1"},
		nil, nil, nil,
		store, nil,
		&fakeScheduler{}, newFakeClock(),
	)
	assert.NoError(t, restarted.Load(context.Background()))

	assert.Len(t, restarted.Cart(), 1)
	assert.Equal(t, "restaurant7", restarted.SelectedRestaurantID())
	// the active-order pointer is session state and never persisted
	assert.Nil(t, restarted.ActiveOrder())
}
