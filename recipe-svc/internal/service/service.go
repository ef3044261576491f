package service

import (
	"errors"

	"mesob-delivery/recipe-svc/internal/domain"
)

var (
	ErrInvalidRecipe = errors.New("invalid recipe payload")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrEmptyComment  = errors.New("comment cannot be empty")
)

type RecipeRepository interface {
	CreateRecipe(recipe *domain.Recipe) error
	ListRecipes(filter domain.RecipeFilter) ([]domain.Recipe, error)
	GetRecipe(id string) (*domain.Recipe, error)
	UpdateRecipe(recipe *domain.Recipe) error
	DeleteRecipe(id string) (int64, error)
	ToggleLike(recipeID, userID string) (bool, int, error)
	ToggleSave(recipeID, userID string) (bool, error)
	AddComment(recipeID string, comment *domain.Comment) error
	DeleteComment(recipeID, commentID, userID string) (int64, error)
	UpsertRating(recipeID, userID string, value int) (float64, error)
}

type RecipeServiceInterface interface {
	Create(recipe *domain.Recipe) error
	List(filter domain.RecipeFilter) ([]domain.Recipe, error)
	Get(id string) (*domain.Recipe, error)
	Update(recipe *domain.Recipe) error
	Delete(id string) (int64, error)
	ToggleLike(recipeID, userID string) (bool, int, error)
	ToggleSave(recipeID, userID string) (bool, error)
	AddComment(recipeID string, comment *domain.Comment) error
	DeleteComment(recipeID, commentID, userID string) (int64, error)
	Rate(recipeID, userID string, value int) (float64, error)
}

type RecipeService struct {
	repo RecipeRepository
}

func NewRecipeService(repo RecipeRepository) *RecipeService {
	return &RecipeService{repo: repo}
}

func validDifficulty(d domain.Difficulty) bool {
	return d == domain.DifficultyEasy || d == domain.DifficultyMedium || d == domain.DifficultyHard
}

func validateRecipe(recipe *domain.Recipe) error {
	if recipe.Title == "" || recipe.AuthorID == "" || recipe.Servings < 1 {
		return ErrInvalidRecipe
	}
	if !validDifficulty(recipe.Difficulty) {
		return ErrInvalidRecipe
	}
	if len(recipe.Ingredients) == 0 || len(recipe.Steps) == 0 {
		return ErrInvalidRecipe
	}
	return nil
}

func (s *RecipeService) Create(recipe *domain.Recipe) error {
	if err := validateRecipe(recipe); err != nil {
		return err
	}
	return s.repo.CreateRecipe(recipe)
}

func (s *RecipeService) List(filter domain.RecipeFilter) ([]domain.Recipe, error) {
	return s.repo.ListRecipes(filter)
}

func (s *RecipeService) Get(id string) (*domain.Recipe, error) {
	return s.repo.GetRecipe(id)
}

func (s *RecipeService) Update(recipe *domain.Recipe) error {
	if recipe.ID == "" {
		return ErrInvalidRecipe
	}
	if err := validateRecipe(recipe); err != nil {
		return err
	}
	return s.repo.UpdateRecipe(recipe)
}

func (s *RecipeService) Delete(id string) (int64, error) {
	return s.repo.DeleteRecipe(id)
}

func (s *RecipeService) ToggleLike(recipeID, userID string) (bool, int, error) {
	return s.repo.ToggleLike(recipeID, userID)
}

func (s *RecipeService) ToggleSave(recipeID, userID string) (bool, error) {
	return s.repo.ToggleSave(recipeID, userID)
}

func (s *RecipeService) AddComment(recipeID string, comment *domain.Comment) error {
	if comment.Text == "" {
		return ErrEmptyComment
	}
	return s.repo.AddComment(recipeID, comment)
}

func (s *RecipeService) DeleteComment(recipeID, commentID, userID string) (int64, error) {
	return s.repo.DeleteComment(recipeID, commentID, userID)
}

func (s *RecipeService) Rate(recipeID, userID string, value int) (float64, error) {
	if value < 1 || value > 5 {
		return 0, ErrInvalidRating
	}
	return s.repo.UpsertRating(recipeID, userID, value)
}

var _ RecipeServiceInterface = (*RecipeService)(nil)
