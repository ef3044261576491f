package main

import (
	"log"

	httpapi "mesob-delivery/catalog-svc/internal/api/http"
	"mesob-delivery/catalog-svc/internal/service"
	"mesob-delivery/catalog-svc/internal/storage"
	"mesob-delivery/config"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	handler := httpapi.NewHandler(
		service.NewRestaurantService(repo),
		service.NewMenuService(repo),
	)

	httpapi.StartServer(":8081", httpapi.NewRouter(handler))
}
