package tests

import (
	"errors"
	"testing"

	"mesob-delivery/order-svc/internal/domain"
	"mesob-delivery/order-svc/internal/mocks"
	"mesob-delivery/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCartEngine() (*service.OrderEngine, *memStore) {
	store := &memStore{}
	engine := service.NewOrderEngine(
		staticIdentity{userID: "user1"},
		nil, nil, nil,
		store, nil,
		&fakeScheduler{}, newFakeClock(),
	)
	return engine, store
}

func TestAddToCart_ComputesTotalWithOptions(t *testing.T) {
	engine, _ := newCartEngine()

	engine.AddToCart(menuItemWithOptions("item1", "restaurant1", 180), 2, []domain.SelectedOption{
		{OptionID: "opt-spice", ChoiceIDs: []string{"choice-hot"}},
		{OptionID: "opt-extras", ChoiceIDs: []string{"choice-injera", "choice-ayib"}},
	}, "extra spicy please")

	cart := engine.Cart()
	assert.Len(t, cart, 1)
	// 2 x (180 + 10 + 25 + 15)
	assert.Equal(t, 460.0, cart[0].TotalPrice)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, "extra spicy please", cart[0].SpecialInstructions)
	assert.Equal(t, "restaurant1", engine.SelectedRestaurantID())
	assert.NotEmpty(t, cart[0].ID)
}

func TestAddToCart_UnknownOptionRefsContributeNothing(t *testing.T) {
	engine, _ := newCartEngine()

	engine.AddToCart(menuItemWithOptions("item1", "restaurant1", 100), 1, []domain.SelectedOption{
		{OptionID: "opt-missing", ChoiceIDs: []string{"choice-hot"}},
		{OptionID: "opt-spice", ChoiceIDs: []string{"choice-unknown"}},
	}, "")

	cart := engine.Cart()
	assert.Len(t, cart, 1)
	assert.Equal(t, 100.0, cart[0].TotalPrice)
}

func TestAddToCart_SwitchingRestaurantClearsCart(t *testing.T) {
	engine, _ := newCartEngine()

	engine.AddToCart(menuItem("item1", "restaurant1", 100), 2, nil, "")
	assert.Equal(t, 200.0, engine.CartTotal())

	engine.AddToCart(menuItem("item2", "restaurant2", 150), 1, nil, "")

	cart := engine.Cart()
	assert.Len(t, cart, 1)
	assert.Equal(t, "item2", cart[0].MenuItem.ID)
	assert.Equal(t, "restaurant2", engine.SelectedRestaurantID())
	assert.Equal(t, 150.0, engine.CartTotal())
}

func TestAddToCart_SameRestaurantAppends(t *testing.T) {
	engine, _ := newCartEngine()

	engine.AddToCart(menuItem("item1", "restaurant1", 100), 1, nil, "")
	engine.AddToCart(menuItem("item2", "restaurant1", 80), 3, nil, "")

	assert.Len(t, engine.Cart(), 2)
	assert.Equal(t, 340.0, engine.CartTotal())
	assert.Equal(t, 4, engine.CartItemCount())

	for _, item := range engine.Cart() {
		assert.Equal(t, engine.SelectedRestaurantID(), item.MenuItem.RestaurantID)
	}
}

func TestAddToCart_InvalidQuantityIsNoOp(t *testing.T) {
	engine, _ := newCartEngine()

	engine.AddToCart(menuItem("item1", "restaurant1", 100), 0, nil, "")

	assert.Empty(t, engine.Cart())
	assert.Empty(t, engine.SelectedRestaurantID())
}

func TestRemoveFromCart(t *testing.T) {
	engine, _ := newCartEngine()

	engine.AddToCart(menuItem("item1", "restaurant1", 100), 1, nil, "")
	engine.AddToCart(menuItem("item2", "restaurant1", 80), 1, nil, "")

	itemID := engine.Cart()[0].ID
	engine.RemoveFromCart(itemID)

	cart := engine.Cart()
	assert.Len(t, cart, 1)
	assert.Equal(t, "item2", cart[0].MenuItem.ID)
	assert.Equal(t, "restaurant1", engine.SelectedRestaurantID())
}

func TestRemoveFromCart_UnknownIDIsNoOp(t *testing.T) {
	engine, _ := newCartEngine()

	engine.AddToCart(menuItem("item1", "restaurant1", 100), 1, nil, "")
	engine.RemoveFromCart("nonexistent")

	assert.Len(t, engine.Cart(), 1)
}

func TestRemoveFromCart_LastItemResetsRestaurant(t *testing.T) {
	engine, _ := newCartEngine()

	engine.AddToCart(menuItem("item1", "restaurant1", 100), 1, nil, "")
	engine.RemoveFromCart(engine.Cart()[0].ID)

	assert.Empty(t, engine.Cart())
	assert.Empty(t, engine.SelectedRestaurantID())
}

func TestUpdateCartItemQuantity(t *testing.T) {
	engine, _ := newCartEngine()

	engine.AddToCart(menuItem("item1", "restaurant1", 100), 2, nil, "")
	itemID := engine.Cart()[0].ID

	engine.UpdateCartItemQuantity(itemID, 3)

	cart := engine.Cart()
	assert.Equal(t, 3, cart[0].Quantity)
	assert.Equal(t, 300.0, cart[0].TotalPrice)
}

func TestUpdateCartItemQuantity_PreservesOptionSurcharge(t *testing.T) {
	engine, _ := newCartEngine()

	engine.AddToCart(menuItemWithOptions("item1", "restaurant1", 100), 1, []domain.SelectedOption{
		{OptionID: "opt-extras", ChoiceIDs: []string{"choice-injera"}},
	}, "")
	itemID := engine.Cart()[0].ID
	assert.Equal(t, 125.0, engine.Cart()[0].TotalPrice)

	engine.UpdateCartItemQuantity(itemID, 4)

	cart := engine.Cart()
	assert.Equal(t, 500.0, cart[0].TotalPrice)
	// per-unit price implied by the original computation survives
	assert.Equal(t, 125.0, cart[0].TotalPrice/float64(cart[0].Quantity))
}

func TestUpdateCartItemQuantity_ZeroRemovesItem(t *testing.T) {
	engine, _ := newCartEngine()

	engine.AddToCart(menuItem("item1", "restaurant1", 100), 2, nil, "")
	engine.UpdateCartItemQuantity(engine.Cart()[0].ID, 0)

	assert.Empty(t, engine.Cart())
	assert.Empty(t, engine.SelectedRestaurantID())
}

func TestClearCart(t *testing.T) {
	engine, _ := newCartEngine()

	engine.AddToCart(menuItem("item1", "restaurant1", 100), 2, nil, "")
	engine.ClearCart()

	assert.Empty(t, engine.Cart())
	assert.Empty(t, engine.SelectedRestaurantID())
	assert.Equal(t, 0.0, engine.CartTotal())
	assert.Equal(t, 0, engine.CartItemCount())
}

func TestCartTotals(t *testing.T) {
	engine, _ := newCartEngine()

	engine.AddToCart(menuItem("item1", "restaurant1", 100), 2, nil, "")

	assert.Equal(t, 200.0, engine.CartTotal())
	assert.Equal(t, 50.0, engine.DeliveryFee())
	assert.Equal(t, 20.0, engine.TaxAmount())
	assert.Equal(t, 270.0, engine.OrderTotal())
}

func TestTaxAmount_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		expected float64
	}{
		{"rounds_down", 204, 20},
		{"rounds_half_up", 205, 21},
		{"rounds_up", 209, 21},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			engine, _ := newCartEngine()
			engine.AddToCart(menuItem("item1", "restaurant1", testCase.price), 1, nil, "")
			assert.Equal(t, testCase.expected, engine.TaxAmount())
		})
	}
}

func TestDeliveryFee_EmptyCartHasNoFee(t *testing.T) {
	engine, _ := newCartEngine()
	assert.Equal(t, 0.0, engine.DeliveryFee())
}

func TestDeliveryFee_UsesRestaurantSpecificFee(t *testing.T) {
	restaurants := mocks.NewRestaurantInfo(t)
	restaurants.On("DeliveryFee", mock.Anything, "restaurant1").Return(75.0, true, nil)

	engine := service.NewOrderEngine(
		staticIdentity{userID: "user1"},
		nil, nil, restaurants,
		&memStore{}, nil,
		&fakeScheduler{}, newFakeClock(),
	)
	engine.AddToCart(menuItem("item1", "restaurant1", 100), 1, nil, "")

	assert.Equal(t, 75.0, engine.DeliveryFee())
}

func TestDeliveryFee_HonorsFreeDelivery(t *testing.T) {
	restaurants := mocks.NewRestaurantInfo(t)
	restaurants.On("DeliveryFee", mock.Anything, "restaurant1").Return(0.0, true, nil)

	engine := service.NewOrderEngine(
		staticIdentity{userID: "user1"},
		nil, nil, restaurants,
		&memStore{}, nil,
		&fakeScheduler{}, newFakeClock(),
	)
	engine.AddToCart(menuItem("item1", "restaurant1", 100), 1, nil, "")

	// A known fee of 0 is free delivery, not absence.
	assert.Equal(t, 0.0, engine.DeliveryFee())
	assert.Equal(t, 110.0, engine.OrderTotal())
}

func TestDeliveryFee_FallsBackWhenRestaurantUnknown(t *testing.T) {
	restaurants := mocks.NewRestaurantInfo(t)
	restaurants.On("DeliveryFee", mock.Anything, "restaurant1").Return(0.0, false, nil)

	engine := service.NewOrderEngine(
		staticIdentity{userID: "user1"},
		nil, nil, restaurants,
		&memStore{}, nil,
		&fakeScheduler{}, newFakeClock(),
	)
	engine.AddToCart(menuItem("item1", "restaurant1", 100), 1, nil, "")

	assert.Equal(t, 50.0, engine.DeliveryFee())
}

func TestDeliveryFee_FallsBackToFlatDefault(t *testing.T) {
	restaurants := mocks.NewRestaurantInfo(t)
	restaurants.On("DeliveryFee", mock.Anything, "restaurant1").Return(0.0, false, errors.New("restaurant not found"))

	engine := service.NewOrderEngine(
		staticIdentity{userID: "user1"},
		nil, nil, restaurants,
		&memStore{}, nil,
		&fakeScheduler{}, newFakeClock(),
	)
	engine.AddToCart(menuItem("item1", "restaurant1", 100), 1, nil, "")

	assert.Equal(t, 50.0, engine.DeliveryFee())
}
