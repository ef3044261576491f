package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"mesob-delivery/order-svc/internal/domain"
	"mesob-delivery/order-svc/internal/service"
)

type Handler struct {
	Orders service.OrderEngineInterface
	Pickup service.PickupServiceInterface
}

func NewHandler(orders service.OrderEngineInterface, pickup service.PickupServiceInterface) *Handler {
	return &Handler{Orders: orders, Pickup: pickup}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addToCart).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{id}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getUserOrders).Methods("GET")
	r.HandleFunc("/api/orders/active", h.getActiveOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/cancel", h.cancelOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/location", h.getCourierLocation).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getPickupQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

type addToCartRequest struct {
	MenuItem            domain.MenuItem         `json:"menu_item"`
	Quantity            int                     `json:"quantity"`
	SelectedOptions     []domain.SelectedOption `json:"selected_options"`
	SpecialInstructions string                  `json:"special_instructions"`
}

type cartResponse struct {
	Items                []domain.CartItem `json:"items"`
	SelectedRestaurantID string            `json:"selected_restaurant_id,omitempty"`
	ItemCount            int               `json:"item_count"`
	Subtotal             float64           `json:"subtotal"`
	DeliveryFee          float64           `json:"delivery_fee"`
	Tax                  float64           `json:"tax"`
	Total                float64           `json:"total"`
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.MenuItem.ID == "" || req.Quantity < 1 {
		http.Error(w, "Invalid cart payload", http.StatusBadRequest)
		return
	}

	h.Orders.AddToCart(req.MenuItem, req.Quantity, req.SelectedOptions, req.SpecialInstructions)
	h.writeCart(w, http.StatusCreated)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, http.StatusOK)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.Orders.UpdateCartItemQuantity(mux.Vars(r)["id"], req.Quantity)
	h.writeCart(w, http.StatusOK)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	h.Orders.RemoveFromCart(mux.Vars(r)["id"])
	h.writeCart(w, http.StatusOK)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Orders.ClearCart()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeCart(w http.ResponseWriter, code int) {
	response := cartResponse{
		Items:                h.Orders.Cart(),
		SelectedRestaurantID: h.Orders.SelectedRestaurantID(),
		ItemCount:            h.Orders.CartItemCount(),
		Subtotal:             h.Orders.CartTotal(),
		DeliveryFee:          h.Orders.DeliveryFee(),
		Tax:                  h.Orders.TaxAmount(),
		Total:                h.Orders.OrderTotal(),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

type createOrderRequest struct {
	DeliveryAddress      domain.Location      `json:"delivery_address"`
	PaymentMethod        domain.PaymentMethod `json:"payment_method"`
	DeliveryInstructions string               `json:"delivery_instructions"`
	Tip                  float64              `json:"tip"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.CreateOrder(r.Context(), req.DeliveryAddress, req.PaymentMethod, req.DeliveryInstructions, req.Tip)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			http.Error(w, err.Error(), http.StatusUnauthorized)
		case errors.Is(err, service.ErrEmptyCart):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrPaymentFailed):
			http.Error(w, err.Error(), http.StatusPaymentRequired)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) getUserOrders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Orders.UserOrders(r.Context()))
}

func (h *Handler) getActiveOrder(w http.ResponseWriter, r *http.Request) {
	order := h.Orders.ActiveOrder()
	if order == nil {
		http.Error(w, "No active order", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order := h.Orders.OrderByID(mux.Vars(r)["id"])
	if order == nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	h.Orders.CancelOrder(r.Context(), mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getCourierLocation(w http.ResponseWriter, r *http.Request) {
	loc := h.Orders.DeliveryPersonLocation(mux.Vars(r)["id"])
	if loc == nil {
		http.Error(w, "No courier location", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(loc)
}

func (h *Handler) getPickupQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Pickup.QRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
