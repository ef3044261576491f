package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"mesob-delivery/order-svc/internal/domain"
)

const (
	cartKey   = "order-storage:cart"
	ordersKey = "order-storage:orders"
	qrPrefix  = "order-storage:qr:"

	qrTTL = 24 * time.Hour
)

// RedisStateStore keeps the engine state as JSON blobs under namespaced
// keys, so a restarted session rehydrates where it left off.
type RedisStateStore struct {
	Client *redis.Client
}

func NewRedisStateStore(client *redis.Client) *RedisStateStore {
	return &RedisStateStore{Client: client}
}

func (s *RedisStateStore) SaveCart(ctx context.Context, cart []domain.CartItem) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, cartKey, payload, 0).Err()
}

func (s *RedisStateStore) SaveOrders(ctx context.Context, orders []domain.Order) error {
	payload, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, ordersKey, payload, 0).Err()
}

func (s *RedisStateStore) LoadCart(ctx context.Context) ([]domain.CartItem, error) {
	raw, err := s.Client.Get(ctx, cartKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cart []domain.CartItem
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *RedisStateStore) LoadOrders(ctx context.Context) ([]domain.Order, error) {
	raw, err := s.Client.Get(ctx, ordersKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *RedisStateStore) QRCode(ctx context.Context, orderID string) ([]byte, error) {
	png, err := s.Client.Get(ctx, qrPrefix+orderID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return png, err
}

func (s *RedisStateStore) SaveQRCode(ctx context.Context, orderID string, png []byte) error {
	return s.Client.Set(ctx, qrPrefix+orderID, png, qrTTL).Err()
}
