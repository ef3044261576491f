package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"mesob-delivery/order-svc/internal/identity"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(identity.Middleware)
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("Order Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
