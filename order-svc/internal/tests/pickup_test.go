package tests

import (
	"context"
	"testing"

	"mesob-delivery/order-svc/internal/domain"
	"mesob-delivery/order-svc/internal/mocks"
	"mesob-delivery/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPickupService_QRCode(t *testing.T) {
	order := &domain.Order{ID: "order-1", Status: domain.StatusReadyForPickup}

	tests := []struct {
		name          string
		orderID       string
		prepareMocks  func(orders *mocks.OrderEngineInterface, generator *mocks.QRGenerator, cache *mocks.QRCache)
		expectedPNG   []byte
		expectedError error
	}{
		{
			name:    "cache_hit",
			orderID: "order-1",
			prepareMocks: func(orders *mocks.OrderEngineInterface, generator *mocks.QRGenerator, cache *mocks.QRCache) {
				orders.On("OrderByID", "order-1").Return(order).Once()
				cache.On("QRCode", mock.Anything, "order-1").Return([]byte("cached-png"), nil).Once()
			},
			expectedPNG: []byte("cached-png"),
		},
		{
			name:    "cache_miss_generates_and_saves",
			orderID: "order-1",
			prepareMocks: func(orders *mocks.OrderEngineInterface, generator *mocks.QRGenerator, cache *mocks.QRCache) {
				orders.On("OrderByID", "order-1").Return(order).Once()
				cache.On("QRCode", mock.Anything, "order-1").Return(nil, nil).Once()
				generator.On("Generate", "order-1").Return([]byte("fresh-png"), nil).Once()
				cache.On("SaveQRCode", mock.Anything, "order-1", []byte("fresh-png")).Return(nil).Once()
			},
			expectedPNG: []byte("fresh-png"),
		},
		{
			name:    "unknown_order",
			orderID: "order-missing",
			prepareMocks: func(orders *mocks.OrderEngineInterface, generator *mocks.QRGenerator, cache *mocks.QRCache) {
				orders.On("OrderByID", "order-missing").Return(nil).Once()
			},
			expectedError: service.ErrOrderNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderEngineInterface(t)
			generator := mocks.NewQRGenerator(t)
			cache := mocks.NewQRCache(t)
			testCase.prepareMocks(orders, generator, cache)

			svc := service.NewPickupService(orders, generator, cache)
			png, err := svc.QRCode(context.Background(), testCase.orderID)

			assert.ErrorIs(t, err, testCase.expectedError)
			assert.Equal(t, testCase.expectedPNG, png)
		})
	}
}

func TestDefaultQRGenerator_ProducesPNG(t *testing.T) {
	generator := service.DefaultQRGenerator{BaseURL: "http://localhost"}

	png, err := generator.Generate("order-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, png[:4])
}
