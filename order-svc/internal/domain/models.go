package domain

import "time"

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusReadyForPickup OrderStatus = "ready_for_pickup"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// StatusFlow is the forward progression an order walks through.
// StatusCancelled sits outside the flow and is terminal.
var StatusFlow = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReadyForPickup,
	StatusOutForDelivery,
	StatusDelivered,
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type PaymentMethod string

const (
	PaymentCreditCard  PaymentMethod = "credit_card"
	PaymentDebitCard   PaymentMethod = "debit_card"
	PaymentCash        PaymentMethod = "cash"
	PaymentMobileMoney PaymentMethod = "mobile_money"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

type OptionChoice struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type MenuItemOption struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Choices     []OptionChoice `json:"choices"`
	Required    bool           `json:"required"`
	MultiSelect bool           `json:"multi_select"`
}

type MenuItem struct {
	ID           string           `json:"id"`
	RestaurantID string           `json:"restaurant_id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	ImageURL     string           `json:"image_url"`
	Price        float64          `json:"price"`
	Category     string           `json:"category"`
	IsAvailable  bool             `json:"is_available"`
	IsPopular    bool             `json:"is_popular,omitempty"`
	Options      []MenuItemOption `json:"options,omitempty"`
}

// SelectedOption records the caller's picks inside one option group.
// ChoiceIDs holds more than one entry only for multi-select groups.
type SelectedOption struct {
	OptionID  string   `json:"option_id"`
	ChoiceIDs []string `json:"choice_ids"`
}

// CartItem is one pending line in the cart. TotalPrice is derived:
// quantity x (item price + chosen option prices). It is recomputed on
// every mutation, never set independently.
type CartItem struct {
	ID                  string           `json:"id"`
	MenuItem            MenuItem         `json:"menu_item"`
	Quantity            int              `json:"quantity"`
	SelectedOptions     []SelectedOption `json:"selected_options,omitempty"`
	SpecialInstructions string           `json:"special_instructions,omitempty"`
	TotalPrice          float64          `json:"total_price"`
}

// Order is created only by the engine and immutable afterwards except for
// status, courier fields, actual delivery time and UpdatedAt.
type Order struct {
	ID                    string        `json:"id"`
	UserID                string        `json:"user_id"`
	RestaurantID          string        `json:"restaurant_id"`
	Items                 []CartItem    `json:"items"`
	Status                OrderStatus   `json:"status"`
	Subtotal              float64       `json:"subtotal"`
	DeliveryFee           float64       `json:"delivery_fee"`
	Tax                   float64       `json:"tax"`
	Tip                   float64       `json:"tip,omitempty"`
	Total                 float64       `json:"total"`
	PaymentMethod         PaymentMethod `json:"payment_method"`
	PaymentStatus         PaymentStatus `json:"payment_status"`
	DeliveryAddress       Location      `json:"delivery_address"`
	DeliveryInstructions  string        `json:"delivery_instructions,omitempty"`
	EstimatedDeliveryTime int           `json:"estimated_delivery_time"` // minutes
	ActualDeliveryTime    int           `json:"actual_delivery_time,omitempty"`
	DeliveryPersonID      string        `json:"delivery_person_id,omitempty"`
	DeliveryPersonLocation *Location    `json:"delivery_person_location,omitempty"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

type DeliveryPerson struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Phone               string   `json:"phone,omitempty"`
	Avatar              string   `json:"avatar,omitempty"`
	CurrentLocation     Location `json:"current_location"`
	IsAvailable         bool     `json:"is_available"`
	Rating              float64  `json:"rating"`
	CompletedDeliveries int      `json:"completed_deliveries"`
}

// OrderEvent is published to the order-events topic on every lifecycle
// change.
type OrderEvent struct {
	Type      string      `json:"type"`
	OrderID   string      `json:"order_id"`
	UserID    string      `json:"user_id,omitempty"`
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

// CourierLocationUpdate is the payload pushed by the external location feed.
type CourierLocationUpdate struct {
	OrderID   string  `json:"order_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}
