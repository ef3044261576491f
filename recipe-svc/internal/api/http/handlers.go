package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"mesob-delivery/recipe-svc/internal/domain"
	"mesob-delivery/recipe-svc/internal/service"
)

type Handler struct {
	Recipes service.RecipeServiceInterface
}

func NewHandler(recipeSvc service.RecipeServiceInterface) *Handler {
	return &Handler{Recipes: recipeSvc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/recipes", h.createRecipe).Methods("POST")
	r.HandleFunc("/api/recipes", h.getRecipes).Methods("GET")
	r.HandleFunc("/api/recipes/{id}", h.getRecipe).Methods("GET")
	r.HandleFunc("/api/recipes/{id}", h.updateRecipe).Methods("PUT")
	r.HandleFunc("/api/recipes/{id}", h.deleteRecipe).Methods("DELETE")
	r.HandleFunc("/api/recipes/{id}/like", h.toggleLike).Methods("POST")
	r.HandleFunc("/api/recipes/{id}/save", h.toggleSave).Methods("POST")
	r.HandleFunc("/api/recipes/{id}/comments", h.addComment).Methods("POST")
	r.HandleFunc("/api/recipes/{id}/comments/{commentId}", h.deleteComment).Methods("DELETE")
	r.HandleFunc("/api/recipes/{id}/rating", h.rateRecipe).Methods("PUT")
}

// requireUser pulls the caller identity forwarded by the gateway.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		http.Error(w, "Missing X-User-ID header", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "recipe-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var recipe domain.Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	recipe.AuthorID = userID
	if err := h.Recipes.Create(&recipe); err != nil {
		if errors.Is(err, service.ErrInvalidRecipe) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(recipe)
}

func (h *Handler) getRecipes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.RecipeFilter{
		Tag:          query.Get("tag"),
		Region:       query.Get("region"),
		Query:        query.Get("q"),
		RestaurantID: query.Get("restaurant_id"),
	}
	recipes, err := h.Recipes.List(filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recipes)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.Recipes.Get(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recipe)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var recipe domain.Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	recipe.ID = mux.Vars(r)["id"]
	recipe.AuthorID = userID
	if err := h.Recipes.Update(&recipe); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRecipe):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, sql.ErrNoRows):
			http.Error(w, "Recipe not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recipe)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	rows, err := h.Recipes.Delete(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rows == 0 {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	liked, likes, err := h.Recipes.ToggleLike(mux.Vars(r)["id"], userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"liked": liked,
		"likes": likes,
	})
}

func (h *Handler) toggleSave(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	saved, err := h.Recipes.ToggleSave(mux.Vars(r)["id"], userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"saved": saved})
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var comment domain.Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	comment.UserID = userID
	if err := h.Recipes.AddComment(mux.Vars(r)["id"], &comment); err != nil {
		if errors.Is(err, service.ErrEmptyComment) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(comment)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	rows, err := h.Recipes.DeleteComment(vars["id"], vars["commentId"], userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rows == 0 {
		http.Error(w, "Comment not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) rateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req struct {
		Value int `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	average, err := h.Recipes.Rate(mux.Vars(r)["id"], userID, req.Value)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRating) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]float64{"average_rating": average})
}
