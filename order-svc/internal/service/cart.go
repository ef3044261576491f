package service

import (
	"context"
	"math"

	"github.com/google/uuid"

	"mesob-delivery/order-svc/internal/domain"
)

// AddToCart appends a line for the given menu item. Adding from a different
// restaurant than the current selection discards the cart first: switching
// restaurants starts a new order. Option references that don't resolve
// against the item contribute nothing.
func (e *OrderEngine) AddToCart(item domain.MenuItem, quantity int, selectedOptions []domain.SelectedOption, specialInstructions string) {
	if quantity < 1 {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.cart) > 0 && e.selectedRestaurantID != item.RestaurantID {
		e.cart = nil
	}

	unitPrice := item.Price
	for _, selected := range selectedOptions {
		group := findOption(item.Options, selected.OptionID)
		if group == nil {
			continue
		}
		for _, choiceID := range selected.ChoiceIDs {
			if choice := findChoice(group.Choices, choiceID); choice != nil {
				unitPrice += choice.Price
			}
		}
	}

	e.cart = append(e.cart, domain.CartItem{
		ID:                  uuid.NewString(),
		MenuItem:            item,
		Quantity:            quantity,
		SelectedOptions:     selectedOptions,
		SpecialInstructions: specialInstructions,
		TotalPrice:          unitPrice * float64(quantity),
	})
	e.selectedRestaurantID = item.RestaurantID
	e.persistLocked()
}

// RemoveFromCart drops the matching line; unknown IDs are a no-op. An
// emptied cart resets the restaurant selection.
func (e *OrderEngine) RemoveFromCart(cartItemID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	kept := e.cart[:0]
	for _, item := range e.cart {
		if item.ID != cartItemID {
			kept = append(kept, item)
		}
	}
	e.cart = kept
	if len(e.cart) == 0 {
		e.cart = nil
		e.selectedRestaurantID = ""
	}
	e.persistLocked()
}

// UpdateCartItemQuantity rescales the line total from the implied per-unit
// price, so option surcharges carry over without re-resolving them.
// A quantity of zero or less removes the line.
func (e *OrderEngine) UpdateCartItemQuantity(cartItemID string, quantity int) {
	if quantity <= 0 {
		e.RemoveFromCart(cartItemID)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.cart {
		if e.cart[i].ID != cartItemID {
			continue
		}
		unitPrice := e.cart[i].TotalPrice / float64(e.cart[i].Quantity)
		e.cart[i].Quantity = quantity
		e.cart[i].TotalPrice = unitPrice * float64(quantity)
		break
	}
	e.persistLocked()
}

func (e *OrderEngine) ClearCart() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cart = nil
	e.selectedRestaurantID = ""
	e.persistLocked()
}

// Cart returns a copy of the pending lines.
func (e *OrderEngine) Cart() []domain.CartItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	cart := make([]domain.CartItem, len(e.cart))
	copy(cart, e.cart)
	return cart
}

func (e *OrderEngine) SelectedRestaurantID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selectedRestaurantID
}

func (e *OrderEngine) CartTotal() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cartTotalLocked()
}

func (e *OrderEngine) CartItemCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := 0
	for _, item := range e.cart {
		count += item.Quantity
	}
	return count
}

// DeliveryFee is the selected restaurant's fee, or the flat default when
// the catalog has nothing better. An empty cart carries no fee.
func (e *OrderEngine) DeliveryFee() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.deliveryFeeLocked(context.Background())
}

// TaxAmount is 10% of the cart total, rounded half-up to the nearest
// whole currency unit.
func (e *OrderEngine) TaxAmount() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.taxAmountLocked()
}

// OrderTotal is cart total plus fee plus tax. Tip is applied at order
// creation, not here.
func (e *OrderEngine) OrderTotal() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cartTotalLocked() + e.deliveryFeeLocked(context.Background()) + e.taxAmountLocked()
}

func (e *OrderEngine) cartTotalLocked() float64 {
	total := 0.0
	for _, item := range e.cart {
		total += item.TotalPrice
	}
	return total
}

func (e *OrderEngine) taxAmountLocked() float64 {
	return math.Round(e.cartTotalLocked() * taxRate)
}

func (e *OrderEngine) deliveryFeeLocked(ctx context.Context) float64 {
	if e.selectedRestaurantID == "" {
		return 0
	}
	if e.restaurants != nil {
		if fee, found, err := e.restaurants.DeliveryFee(ctx, e.selectedRestaurantID); err == nil && found {
			return fee
		}
	}
	return defaultDeliveryFee
}

func findOption(options []domain.MenuItemOption, optionID string) *domain.MenuItemOption {
	for i := range options {
		if options[i].ID == optionID {
			return &options[i]
		}
	}
	return nil
}

func findChoice(choices []domain.OptionChoice, choiceID string) *domain.OptionChoice {
	for i := range choices {
		if choices[i].ID == choiceID {
			return &choices[i]
		}
	}
	return nil
}
