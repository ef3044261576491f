package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"mesob-delivery/catalog-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	if rest.ID == "" {
		rest.ID = uuid.NewString()
	}
	return r.DB.QueryRow(`
		INSERT INTO restaurants (id, name, description, image_url, cover_image_url, rating, review_count,
			delivery_time, delivery_fee, minimum_order, cuisine_types, is_open, latitude, longitude, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at`,
		rest.ID, rest.Name, rest.Description, rest.ImageURL, rest.CoverImageURL, rest.Rating, rest.ReviewCount,
		rest.DeliveryTime, rest.DeliveryFee, rest.MinimumOrder, pq.Array(rest.CuisineTypes), rest.IsOpen,
		rest.Latitude, rest.Longitude, rest.Address,
	).Scan(&rest.CreatedAt)
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(description, ''), COALESCE(image_url, ''), COALESCE(cover_image_url, ''),
			rating, review_count, COALESCE(delivery_time, ''), delivery_fee, minimum_order,
			cuisine_types, is_open, latitude, longitude, COALESCE(address, ''), created_at
		FROM restaurants
		ORDER BY rating DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			log.Printf("[catalog-svc] restaurant scan error: %v", err)
			continue
		}
		restaurants = append(restaurants, *rest)
	}
	return restaurants, nil
}

func (r *PostgresRepository) GetRestaurant(id string) (*domain.Restaurant, error) {
	row := r.DB.QueryRow(`
		SELECT id, name, COALESCE(description, ''), COALESCE(image_url, ''), COALESCE(cover_image_url, ''),
			rating, review_count, COALESCE(delivery_time, ''), delivery_fee, minimum_order,
			cuisine_types, is_open, latitude, longitude, COALESCE(address, ''), created_at
		FROM restaurants
		WHERE id = $1`, id)
	return scanRestaurant(row)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	if err := row.Scan(&rest.ID, &rest.Name, &rest.Description, &rest.ImageURL, &rest.CoverImageURL,
		&rest.Rating, &rest.ReviewCount, &rest.DeliveryTime, &rest.DeliveryFee, &rest.MinimumOrder,
		pq.Array(&rest.CuisineTypes), &rest.IsOpen, &rest.Latitude, &rest.Longitude, &rest.Address,
		&rest.CreatedAt); err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(`
		UPDATE restaurants
		SET name=$1, description=$2, delivery_time=$3, delivery_fee=$4, minimum_order=$5,
			cuisine_types=$6, latitude=$7, longitude=$8, address=$9
		WHERE id=$10
		RETURNING rating, review_count, is_open, COALESCE(image_url, ''), COALESCE(cover_image_url, ''), created_at`,
		rest.Name, rest.Description, rest.DeliveryTime, rest.DeliveryFee, rest.MinimumOrder,
		pq.Array(rest.CuisineTypes), rest.Latitude, rest.Longitude, rest.Address, rest.ID).
		Scan(&rest.Rating, &rest.ReviewCount, &rest.IsOpen, &rest.ImageURL, &rest.CoverImageURL, &rest.CreatedAt)
}

func (r *PostgresRepository) DeleteRestaurant(id string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM restaurants WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SetRestaurantOpen(id string, open bool) error {
	result, err := r.DB.Exec("UPDATE restaurants SET is_open=$1 WHERE id=$2", open, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	options, err := json.Marshal(item.Options)
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}
	return r.DB.QueryRow(`
		INSERT INTO menu_items (id, restaurant_id, name, description, image_url, price, category,
			is_available, is_popular, options)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`,
		item.ID, item.RestaurantID, item.Name, item.Description, item.ImageURL, item.Price,
		item.Category, item.IsAvailable, item.IsPopular, options,
	).Scan(&item.CreatedAt)
}

func (r *PostgresRepository) ListMenu(restaurantID string) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), COALESCE(image_url, ''),
			price, COALESCE(category, ''), is_available, is_popular, options, created_at
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY category, name`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			log.Printf("[catalog-svc] menu item scan error: %v", err)
			continue
		}
		items = append(items, *item)
	}
	return items, nil
}

func (r *PostgresRepository) GetMenuItem(restaurantID, itemID string) (*domain.MenuItem, error) {
	row := r.DB.QueryRow(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), COALESCE(image_url, ''),
			price, COALESCE(category, ''), is_available, is_popular, options, created_at
		FROM menu_items
		WHERE id = $1 AND restaurant_id = $2`, itemID, restaurantID)
	return scanMenuItem(row)
}

func scanMenuItem(row rowScanner) (*domain.MenuItem, error) {
	var item domain.MenuItem
	var options []byte
	if err := row.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.ImageURL,
		&item.Price, &item.Category, &item.IsAvailable, &item.IsPopular, &options, &item.CreatedAt); err != nil {
		return nil, err
	}
	if len(options) > 0 {
		if err := json.Unmarshal(options, &item.Options); err != nil {
			return nil, fmt.Errorf("unmarshal options: %w", err)
		}
	}
	return &item, nil
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) error {
	options, err := json.Marshal(item.Options)
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}
	return r.DB.QueryRow(`
		UPDATE menu_items
		SET name=$1, description=$2, price=$3, category=$4, is_available=$5, is_popular=$6, options=$7
		WHERE id=$8 AND restaurant_id=$9
		RETURNING COALESCE(image_url, ''), created_at`,
		item.Name, item.Description, item.Price, item.Category, item.IsAvailable, item.IsPopular,
		options, item.ID, item.RestaurantID).
		Scan(&item.ImageURL, &item.CreatedAt)
}

func (r *PostgresRepository) DeleteMenuItem(restaurantID, itemID string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id=$1 AND restaurant_id=$2", itemID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			image_url TEXT,
			cover_image_url TEXT,
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			review_count INTEGER NOT NULL DEFAULT 0,
			delivery_time TEXT,
			delivery_fee DOUBLE PRECISION NOT NULL DEFAULT 0,
			minimum_order DOUBLE PRECISION NOT NULL DEFAULT 0,
			cuisine_types TEXT[] NOT NULL DEFAULT '{}',
			is_open BOOLEAN NOT NULL DEFAULT TRUE,
			latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
			longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
			address TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT,
			image_url TEXT,
			price DOUBLE PRECISION NOT NULL,
			category TEXT,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			is_popular BOOLEAN NOT NULL DEFAULT FALSE,
			options JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
