package storage

import (
	"context"
	"database/sql"

	"mesob-delivery/order-svc/internal/domain"
)

// PostgresRepository reads the collaborator tables the engine consults:
// the courier roster and per-restaurant delivery fees.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// FirstAvailable returns the first free courier by rating, or nil when
// the whole roster is busy.
func (r *PostgresRepository) FirstAvailable(ctx context.Context) (*domain.DeliveryPerson, error) {
	var dp domain.DeliveryPerson
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(phone, ''), COALESCE(avatar, ''),
		       latitude, longitude, COALESCE(address, ''),
		       is_available, rating, completed_deliveries
		FROM couriers
		WHERE is_available = TRUE
		ORDER BY rating DESC, completed_deliveries DESC
		LIMIT 1`).
		Scan(&dp.ID, &dp.Name, &dp.Phone, &dp.Avatar,
			&dp.CurrentLocation.Latitude, &dp.CurrentLocation.Longitude, &dp.CurrentLocation.Address,
			&dp.IsAvailable, &dp.Rating, &dp.CompletedDeliveries)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dp, nil
}

// DeliveryFee distinguishes "restaurant known, fee is 0" (free delivery)
// from "no data": an unknown restaurant or a NULL fee reports found=false.
func (r *PostgresRepository) DeliveryFee(ctx context.Context, restaurantID string) (float64, bool, error) {
	var fee sql.NullFloat64
	err := r.DB.QueryRowContext(ctx,
		"SELECT delivery_fee FROM restaurants WHERE id = $1",
		restaurantID).Scan(&fee)

	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if !fee.Valid {
		return 0, false, nil
	}
	return fee.Float64, true, nil
}
