package storage

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"mesob-delivery/order-svc/internal/domain"
	"mesob-delivery/order-svc/internal/service"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}

// LocationFeedConsumer drains the courier GPS topic and pushes each fix
// onto the matching order.
type LocationFeedConsumer struct {
	Reader *kafka.Reader
	Engine service.OrderEngineInterface
}

func NewLocationFeedConsumer(reader *kafka.Reader, engine service.OrderEngineInterface) *LocationFeedConsumer {
	return &LocationFeedConsumer{Reader: reader, Engine: engine}
}

func (c *LocationFeedConsumer) Start(ctx context.Context) {
	log.Println("[order-svc] starting courier location feed consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[order-svc] error reading location message: %v", err)
			continue
		}

		var update domain.CourierLocationUpdate
		if err := json.Unmarshal(message.Value, &update); err != nil {
			log.Printf("[order-svc] error unmarshaling location message: %v", err)
			continue
		}

		c.Process(update)
	}
}

func (c *LocationFeedConsumer) Process(update domain.CourierLocationUpdate) {
	if update.OrderID == "" {
		return
	}
	c.Engine.UpdateDeliveryPersonLocation(update.OrderID, domain.Location{
		Latitude:  update.Latitude,
		Longitude: update.Longitude,
		Address:   update.Address,
	})
}
