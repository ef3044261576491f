package tests

import (
	"context"
	"errors"
	"sync"
	"time"

	"mesob-delivery/order-svc/internal/domain"
)

// fakeClock hands out a pinned time that tests advance explicitly.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeScheduler queues callbacks instead of arming real timers, so tests
// drive the simulation chain one hop at a time.
type fakeScheduler struct {
	mu    sync.Mutex
	queue []scheduledCall
}

type scheduledCall struct {
	delay time.Duration
	fn    func()
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, scheduledCall{delay: d, fn: f})
}

func (s *fakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

func (s *fakeScheduler) LastDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return 0
	}
	return s.queue[len(s.queue)-1].delay
}

// RunNext pops and executes the oldest scheduled callback.
func (s *fakeScheduler) RunNext() bool {
	s.mu.Lock()
	if len(s.queue) == 0 {
		s.mu.Unlock()
		return false
	}
	call := s.queue[0]
	s.queue = s.queue[1:]
	s.mu.Unlock()

	call.fn()
	return true
}

// memStore is an in-memory StateStore standing in for Redis.
type memStore struct {
	mu     sync.Mutex
	cart   []domain.CartItem
	orders []domain.Order
	saves  int
}

func (s *memStore) SaveCart(ctx context.Context, cart []domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = append([]domain.CartItem(nil), cart...)
	s.saves++
	return nil
}

func (s *memStore) SaveOrders(ctx context.Context, orders []domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]domain.Order(nil), orders...)
	s.saves++
	return nil
}

func (s *memStore) LoadCart(ctx context.Context) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.cart...), nil
}

func (s *memStore) LoadOrders(ctx context.Context) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Order(nil), s.orders...), nil
}

// staticIdentity resolves every request to one user, or errors when empty.
type staticIdentity struct {
	userID string
}

func (i staticIdentity) CurrentUserID(ctx context.Context) (string, error) {
	if i.userID == "" {
		return "", errors.New("no user in request context")
	}
	return i.userID, nil
}

func menuItem(id, restaurantID string, price float64) domain.MenuItem {
	return domain.MenuItem{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         "Special Kitfo",
		Price:        price,
		Category:     "Main Dishes",
		IsAvailable:  true,
	}
}

func menuItemWithOptions(id, restaurantID string, price float64) domain.MenuItem {
	item := menuItem(id, restaurantID, price)
	item.Options = []domain.MenuItemOption{
		{
			ID:   "opt-spice",
			Name: "Spice Level",
			Choices: []domain.OptionChoice{
				{ID: "choice-mild", Name: "Mild", Price: 0},
				{ID: "choice-hot", Name: "Hot", Price: 10},
			},
			Required: true,
		},
		{
			ID:   "opt-extras",
			Name: "Extras",
			Choices: []domain.OptionChoice{
				{ID: "choice-injera", Name: "Extra Injera", Price: 25},
				{ID: "choice-ayib", Name: "Ayib Cheese", Price: 15},
			},
			MultiSelect: true,
		},
	}
	return item
}
