package service

import (
	"errors"

	"mesob-delivery/catalog-svc/internal/domain"
)

var (
	ErrInvalidRestaurant = errors.New("invalid restaurant payload")
	ErrInvalidMenuItem   = errors.New("invalid menu item payload")
)

type RestaurantRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id string) (*domain.Restaurant, error)
	UpdateRestaurant(rest *domain.Restaurant) error
	DeleteRestaurant(id string) (int64, error)
	SetRestaurantOpen(id string, open bool) error
}

type MenuRepository interface {
	CreateMenuItem(item *domain.MenuItem) error
	ListMenu(restaurantID string) ([]domain.MenuItem, error)
	GetMenuItem(restaurantID, itemID string) (*domain.MenuItem, error)
	UpdateMenuItem(item *domain.MenuItem) error
	DeleteMenuItem(restaurantID, itemID string) (int64, error)
}

type RestaurantServiceInterface interface {
	Create(rest *domain.Restaurant) error
	List() ([]domain.Restaurant, error)
	Get(id string) (*domain.Restaurant, error)
	Update(rest *domain.Restaurant) error
	Delete(id string) (int64, error)
	SetOpen(id string, open bool) error
}

type MenuServiceInterface interface {
	Create(item *domain.MenuItem) error
	List(restaurantID string) ([]domain.MenuItem, error)
	Get(restaurantID, itemID string) (*domain.MenuItem, error)
	Update(item *domain.MenuItem) error
	Delete(restaurantID, itemID string) (int64, error)
}

type RestaurantService struct {
	repo RestaurantRepository
}

func NewRestaurantService(repo RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

func (s *RestaurantService) Create(rest *domain.Restaurant) error {
	if rest.Name == "" || rest.DeliveryFee < 0 || rest.MinimumOrder < 0 {
		return ErrInvalidRestaurant
	}
	return s.repo.CreateRestaurant(rest)
}

func (s *RestaurantService) List() ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants()
}

func (s *RestaurantService) Get(id string) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(id)
}

func (s *RestaurantService) Update(rest *domain.Restaurant) error {
	if rest.ID == "" || rest.Name == "" {
		return ErrInvalidRestaurant
	}
	return s.repo.UpdateRestaurant(rest)
}

func (s *RestaurantService) Delete(id string) (int64, error) {
	return s.repo.DeleteRestaurant(id)
}

func (s *RestaurantService) SetOpen(id string, open bool) error {
	return s.repo.SetRestaurantOpen(id, open)
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) Create(item *domain.MenuItem) error {
	if item.RestaurantID == "" || item.Name == "" || item.Price < 0 {
		return ErrInvalidMenuItem
	}
	if err := validateOptions(item.Options); err != nil {
		return err
	}
	return s.repo.CreateMenuItem(item)
}

func (s *MenuService) List(restaurantID string) ([]domain.MenuItem, error) {
	return s.repo.ListMenu(restaurantID)
}

func (s *MenuService) Get(restaurantID, itemID string) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(restaurantID, itemID)
}

func (s *MenuService) Update(item *domain.MenuItem) error {
	if item.ID == "" || item.RestaurantID == "" || item.Name == "" || item.Price < 0 {
		return ErrInvalidMenuItem
	}
	if err := validateOptions(item.Options); err != nil {
		return err
	}
	return s.repo.UpdateMenuItem(item)
}

func (s *MenuService) Delete(restaurantID, itemID string) (int64, error) {
	return s.repo.DeleteMenuItem(restaurantID, itemID)
}

// Every option group needs an id and at least one priced choice, otherwise
// carts cannot resolve the customer's picks against it.
func validateOptions(options []domain.MenuItemOption) error {
	for _, option := range options {
		if option.ID == "" || len(option.Choices) == 0 {
			return ErrInvalidMenuItem
		}
		for _, choice := range option.Choices {
			if choice.ID == "" || choice.Price < 0 {
				return ErrInvalidMenuItem
			}
		}
	}
	return nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
