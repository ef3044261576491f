package domain

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Ingredient struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit,omitempty"`
}

type Step struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
}

type Comment struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserAvatar string    `json:"user_avatar,omitempty"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

type Recipe struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	ImageURL      string       `json:"image_url"`
	PrepTime      int          `json:"prep_time"` // minutes
	CookTime      int          `json:"cook_time"` // minutes
	Servings      int          `json:"servings"`
	Difficulty    Difficulty   `json:"difficulty"`
	Ingredients   []Ingredient `json:"ingredients"`
	Steps         []Step       `json:"steps"`
	Region        string       `json:"region,omitempty"`
	Tags          []string     `json:"tags"`
	AuthorID      string       `json:"author_id"`
	AuthorName    string       `json:"author_name"`
	AuthorAvatar  string       `json:"author_avatar,omitempty"`
	RestaurantID  string       `json:"restaurant_id,omitempty"`
	Likes         int          `json:"likes"`
	AverageRating float64      `json:"average_rating"`
	Comments      []Comment    `json:"comments,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// RecipeFilter narrows a listing. Zero values mean "no constraint".
type RecipeFilter struct {
	Tag          string
	Region       string
	Query        string
	RestaurantID string
}
