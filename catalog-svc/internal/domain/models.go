package domain

import "time"

type Restaurant struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url"`
	CoverImageURL string    `json:"cover_image_url,omitempty"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"review_count"`
	DeliveryTime  string    `json:"delivery_time"`
	DeliveryFee   float64   `json:"delivery_fee"`
	MinimumOrder  float64   `json:"minimum_order"`
	CuisineTypes  []string  `json:"cuisine_types"`
	IsOpen        bool      `json:"is_open"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
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
	CreatedAt    time.Time        `json:"created_at"`
}
