package main

import (
	"context"
	"log"
	"os"

	"mesob-delivery/config"
	httpapi "mesob-delivery/order-svc/internal/api/http"
	"mesob-delivery/order-svc/internal/identity"
	"mesob-delivery/order-svc/internal/payment"
	"mesob-delivery/order-svc/internal/service"
	"mesob-delivery/order-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	eventWriter := config.NewKafkaWriter("order-events")
	defer eventWriter.Close()

	locationReader := config.NewKafkaReader("courier-locations", "order-svc-consumer")
	defer locationReader.Close()

	repo := storage.NewPostgresRepository(db)
	stateStore := storage.NewRedisStateStore(rdb)
	publisher := storage.NewKafkaPublisher(eventWriter)

	engine := service.NewOrderEngine(
		identity.ContextProvider{},
		payment.NewSimulatedGateway(),
		repo,
		repo,
		stateStore,
		publisher,
		service.TimerScheduler{},
		service.SystemClock{},
	)

	if err := engine.Load(context.Background()); err != nil {
		log.Printf("[order-svc] failed to rehydrate state, starting empty: %v", err)
	}

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost"
	}
	pickup := service.NewPickupService(engine, service.DefaultQRGenerator{BaseURL: baseURL}, stateStore)

	feed := storage.NewLocationFeedConsumer(locationReader, engine)
	go feed.Start(context.Background())

	handler := httpapi.NewHandler(engine, pickup)
	httpapi.StartServer(":8083", httpapi.NewRouter(handler))
}
