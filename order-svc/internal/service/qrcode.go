package service

import (
	"context"
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/pickup.html?order_id=%s", g.BaseURL, orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

// PickupService renders the QR a courier or customer scans at pickup,
// caching the PNG per order.
type PickupService struct {
	orders    OrderEngineInterface
	generator QRGenerator
	cache     QRCache
}

func NewPickupService(orders OrderEngineInterface, generator QRGenerator, cache QRCache) *PickupService {
	return &PickupService{orders: orders, generator: generator, cache: cache}
}

func (s *PickupService) QRCode(ctx context.Context, orderID string) ([]byte, error) {
	if s.orders.OrderByID(orderID) == nil {
		return nil, ErrOrderNotFound
	}

	if s.cache != nil {
		if png, err := s.cache.QRCode(ctx, orderID); err == nil && len(png) > 0 {
			return png, nil
		}
	}

	png, err := s.generator.Generate(orderID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SaveQRCode(ctx, orderID, png)
	}
	return png, nil
}
