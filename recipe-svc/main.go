package main

import (
	"log"

	httpapi "mesob-delivery/recipe-svc/internal/api/http"
	"mesob-delivery/recipe-svc/internal/service"
	"mesob-delivery/recipe-svc/internal/storage"
	"mesob-delivery/config"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	handler := httpapi.NewHandler(service.NewRecipeService(repo))

	httpapi.StartServer(":8084", httpapi.NewRouter(handler))
}
