package tests

import (
	"testing"

	"mesob-delivery/recipe-svc/internal/domain"
	"mesob-delivery/recipe-svc/internal/mocks"
	"mesob-delivery/recipe-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validRecipe() *domain.Recipe {
	return &domain.Recipe{
		Title:      "Doro Wat",
		Servings:   4,
		Difficulty: domain.DifficultyMedium,
		AuthorID:   "user1",
		Ingredients: []domain.Ingredient{
			{ID: "ing1", Name: "Berbere", Amount: "3", Unit: "tbsp"},
		},
		Steps: []domain.Step{
			{ID: "step1", Description: "Simmer the onions until golden"},
		},
		Tags:   []string{"stew", "chicken"},
		Region: "Amhara",
	}
}

func TestRecipeService_Create(t *testing.T) {
	repo := mocks.NewRecipeRepository(t)
	svc := service.NewRecipeService(repo)
	repo.On("CreateRecipe", mock.Anything).Return(nil).Once()

	err := svc.Create(validRecipe())
	assert.NoError(t, err)
}

func TestRecipeService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(recipe *domain.Recipe)
	}{
		{name: "missing title", mutate: func(r *domain.Recipe) { r.Title = "" }},
		{name: "missing author", mutate: func(r *domain.Recipe) { r.AuthorID = "" }},
		{name: "zero servings", mutate: func(r *domain.Recipe) { r.Servings = 0 }},
		{name: "unknown difficulty", mutate: func(r *domain.Recipe) { r.Difficulty = "brutal" }},
		{name: "no ingredients", mutate: func(r *domain.Recipe) { r.Ingredients = nil }},
		{name: "no steps", mutate: func(r *domain.Recipe) { r.Steps = nil }},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewRecipeRepository(t)
			svc := service.NewRecipeService(repo)

			recipe := validRecipe()
			testCase.mutate(recipe)

			err := svc.Create(recipe)
			assert.ErrorIs(t, err, service.ErrInvalidRecipe)
		})
	}
}

func TestRecipeService_Update_RequiresID(t *testing.T) {
	repo := mocks.NewRecipeRepository(t)
	svc := service.NewRecipeService(repo)

	recipe := validRecipe()
	err := svc.Update(recipe)
	assert.ErrorIs(t, err, service.ErrInvalidRecipe)
}

func TestRecipeService_AddComment_RejectsEmptyText(t *testing.T) {
	repo := mocks.NewRecipeRepository(t)
	svc := service.NewRecipeService(repo)

	err := svc.AddComment("recipe1", &domain.Comment{UserID: "user1"})
	assert.ErrorIs(t, err, service.ErrEmptyComment)
}

func TestRecipeService_Rate(t *testing.T) {
	repo := mocks.NewRecipeRepository(t)
	svc := service.NewRecipeService(repo)
	repo.On("UpsertRating", "recipe1", "user1", 5).Return(4.6, nil).Once()

	average, err := svc.Rate("recipe1", "user1", 5)
	assert.NoError(t, err)
	assert.Equal(t, 4.6, average)
}

func TestRecipeService_Rate_RejectsOutOfRange(t *testing.T) {
	repo := mocks.NewRecipeRepository(t)
	svc := service.NewRecipeService(repo)

	for _, value := range []int{0, 6, -1} {
		_, err := svc.Rate("recipe1", "user1", value)
		assert.ErrorIs(t, err, service.ErrInvalidRating)
	}
}

func TestRecipeService_ToggleLike_PassesThrough(t *testing.T) {
	repo := mocks.NewRecipeRepository(t)
	svc := service.NewRecipeService(repo)
	repo.On("ToggleLike", "recipe1", "user1").Return(true, 13, nil).Once()

	liked, likes, err := svc.ToggleLike("recipe1", "user1")
	assert.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 13, likes)
}
