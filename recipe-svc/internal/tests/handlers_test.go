package tests

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "mesob-delivery/recipe-svc/internal/api/http"
	"mesob-delivery/recipe-svc/internal/domain"
	"mesob-delivery/recipe-svc/internal/mocks"
	"mesob-delivery/recipe-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(recipes *mocks.RecipeServiceInterface) *mux.Router {
	handler := httpapi.NewHandler(recipes)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_getRecipes_ForwardsFilter(t *testing.T) {
	recipes := mocks.NewRecipeServiceInterface(t)
	recipes.On("List", domain.RecipeFilter{Tag: "stew", Region: "Amhara", Query: "doro"}).
		Return([]domain.Recipe{{ID: "recipe1", Title: "Doro Wat"}}, nil).Once()
	router := setupTestRouter(recipes)

	req := httptest.NewRequest("GET", "/api/recipes?tag=stew&region=Amhara&q=doro", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var list []domain.Recipe
	json.NewDecoder(recorder.Body).Decode(&list)
	assert.Len(t, list, 1)
	assert.Equal(t, "Doro Wat", list[0].Title)
}

func TestHandler_getRecipes_ByRestaurant(t *testing.T) {
	recipes := mocks.NewRecipeServiceInterface(t)
	recipes.On("List", domain.RecipeFilter{RestaurantID: "restaurant1"}).
		Return([]domain.Recipe{}, nil).Once()
	router := setupTestRouter(recipes)

	req := httptest.NewRequest("GET", "/api/recipes?restaurant_id=restaurant1", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_getRecipe_NotFound(t *testing.T) {
	recipes := mocks.NewRecipeServiceInterface(t)
	recipes.On("Get", "recipe-missing").Return(nil, sql.ErrNoRows).Once()
	router := setupTestRouter(recipes)

	req := httptest.NewRequest("GET", "/api/recipes/recipe-missing", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_createRecipe(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		userID       string
		prepareMocks func(recipes *mocks.RecipeServiceInterface)
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"title":"Doro Wat","servings":4,"difficulty":"medium"}`,
			userID:  "user1",
			prepareMocks: func(recipes *mocks.RecipeServiceInterface) {
				recipes.On("Create", mock.MatchedBy(func(recipe *domain.Recipe) bool {
					return recipe.AuthorID == "user1" && recipe.Title == "Doro Wat"
				})).Return(nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "missing identity",
			payload:      `{"title":"Doro Wat"}`,
			userID:       "",
			prepareMocks: func(recipes *mocks.RecipeServiceInterface) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid json",
			payload:      `bad json`,
			userID:       "user1",
			prepareMocks: func(recipes *mocks.RecipeServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "rejected payload",
			payload: `{"title":""}`,
			userID:  "user1",
			prepareMocks: func(recipes *mocks.RecipeServiceInterface) {
				recipes.On("Create", mock.Anything).Return(service.ErrInvalidRecipe).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			recipes := mocks.NewRecipeServiceInterface(t)
			testCase.prepareMocks(recipes)
			router := setupTestRouter(recipes)

			req := httptest.NewRequest("POST", "/api/recipes", bytes.NewBufferString(testCase.payload))
			if testCase.userID != "" {
				req.Header.Set("X-User-ID", testCase.userID)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_toggleLike(t *testing.T) {
	recipes := mocks.NewRecipeServiceInterface(t)
	recipes.On("ToggleLike", "recipe1", "user1").Return(true, 13, nil).Once()
	router := setupTestRouter(recipes)

	req := httptest.NewRequest("POST", "/api/recipes/recipe1/like", nil)
	req.Header.Set("X-User-ID", "user1")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var resp struct {
		Liked bool `json:"liked"`
		Likes int  `json:"likes"`
	}
	json.NewDecoder(recorder.Body).Decode(&resp)
	assert.True(t, resp.Liked)
	assert.Equal(t, 13, resp.Likes)
}

func TestHandler_toggleLike_RequiresIdentity(t *testing.T) {
	recipes := mocks.NewRecipeServiceInterface(t)
	router := setupTestRouter(recipes)

	req := httptest.NewRequest("POST", "/api/recipes/recipe1/like", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_addComment(t *testing.T) {
	recipes := mocks.NewRecipeServiceInterface(t)
	recipes.On("AddComment", "recipe1", mock.MatchedBy(func(comment *domain.Comment) bool {
		return comment.UserID == "user1" && comment.Text == "Loved the berbere kick"
	})).Return(nil).Once()
	router := setupTestRouter(recipes)

	payload := `{"text":"Loved the berbere kick","user_name":"Saba"}`
	req := httptest.NewRequest("POST", "/api/recipes/recipe1/comments", bytes.NewBufferString(payload))
	req.Header.Set("X-User-ID", "user1")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestHandler_deleteComment(t *testing.T) {
	recipes := mocks.NewRecipeServiceInterface(t)
	recipes.On("DeleteComment", "recipe1", "comment1", "user1").Return(int64(1), nil).Once()
	recipes.On("DeleteComment", "recipe1", "comment-missing", "user1").Return(int64(0), nil).Once()
	router := setupTestRouter(recipes)

	req := httptest.NewRequest("DELETE", "/api/recipes/recipe1/comments/comment1", nil)
	req.Header.Set("X-User-ID", "user1")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	req = httptest.NewRequest("DELETE", "/api/recipes/recipe1/comments/comment-missing", nil)
	req.Header.Set("X-User-ID", "user1")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_rateRecipe(t *testing.T) {
	recipes := mocks.NewRecipeServiceInterface(t)
	recipes.On("Rate", "recipe1", "user1", 4).Return(4.3, nil).Once()
	router := setupTestRouter(recipes)

	req := httptest.NewRequest("PUT", "/api/recipes/recipe1/rating", bytes.NewBufferString(`{"value":4}`))
	req.Header.Set("X-User-ID", "user1")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "4.3")
}

func TestHandler_rateRecipe_RejectsOutOfRange(t *testing.T) {
	recipes := mocks.NewRecipeServiceInterface(t)
	recipes.On("Rate", "recipe1", "user1", 9).Return(0.0, service.ErrInvalidRating).Once()
	router := setupTestRouter(recipes)

	req := httptest.NewRequest("PUT", "/api/recipes/recipe1/rating", bytes.NewBufferString(`{"value":9}`))
	req.Header.Set("X-User-ID", "user1")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
