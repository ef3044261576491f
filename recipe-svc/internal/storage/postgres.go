package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"mesob-delivery/recipe-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const recipeColumns = `r.id, r.title, COALESCE(r.description, ''), COALESCE(r.image_url, ''),
	r.prep_time, r.cook_time, r.servings, r.difficulty,
	r.ingredients, r.steps, COALESCE(r.region, ''), r.tags,
	r.author_id, COALESCE(r.author_name, ''), COALESCE(r.author_avatar, ''),
	COALESCE(r.restaurant_id, ''),
	(SELECT COUNT(*) FROM recipe_likes l WHERE l.recipe_id = r.id),
	COALESCE((SELECT ROUND(AVG(value)::numeric, 1) FROM recipe_ratings rt WHERE rt.recipe_id = r.id), 0),
	r.created_at`

func (r *PostgresRepository) CreateRecipe(recipe *domain.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return fmt.Errorf("marshal ingredients: %w", err)
	}
	steps, err := json.Marshal(recipe.Steps)
	if err != nil {
		return fmt.Errorf("marshal steps: %w", err)
	}
	return r.DB.QueryRow(`
		INSERT INTO recipes (id, title, description, image_url, prep_time, cook_time, servings,
			difficulty, ingredients, steps, region, tags, author_id, author_name, author_avatar, restaurant_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NULLIF($16, ''))
		RETURNING created_at`,
		recipe.ID, recipe.Title, recipe.Description, recipe.ImageURL, recipe.PrepTime, recipe.CookTime,
		recipe.Servings, recipe.Difficulty, ingredients, steps, recipe.Region, pq.Array(recipe.Tags),
		recipe.AuthorID, recipe.AuthorName, recipe.AuthorAvatar, recipe.RestaurantID,
	).Scan(&recipe.CreatedAt)
}

func (r *PostgresRepository) ListRecipes(filter domain.RecipeFilter) ([]domain.Recipe, error) {
	query := "SELECT " + recipeColumns + " FROM recipes r"
	var clauses []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Tag != "" {
		clauses = append(clauses, "r.tags @> ARRAY["+arg(filter.Tag)+"]")
	}
	if filter.Region != "" {
		clauses = append(clauses, "r.region = "+arg(filter.Region))
	}
	if filter.RestaurantID != "" {
		clauses = append(clauses, "r.restaurant_id = "+arg(filter.RestaurantID))
	}
	if filter.Query != "" {
		pattern := arg("%" + filter.Query + "%")
		clauses = append(clauses, "(r.title ILIKE "+pattern+" OR r.description ILIKE "+pattern+")")
	}

	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY r.created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			log.Printf("[recipe-svc] recipe scan error: %v", err)
			continue
		}
		recipes = append(recipes, *recipe)
	}
	return recipes, nil
}

func (r *PostgresRepository) GetRecipe(id string) (*domain.Recipe, error) {
	row := r.DB.QueryRow("SELECT "+recipeColumns+" FROM recipes r WHERE r.id = $1", id)
	recipe, err := scanRecipe(row)
	if err != nil {
		return nil, err
	}

	comments, err := r.DB.Query(`
		SELECT id, user_id, COALESCE(user_name, ''), COALESCE(user_avatar, ''), text, created_at
		FROM recipe_comments
		WHERE recipe_id = $1
		ORDER BY created_at DESC`, id)
	if err != nil {
		return recipe, err
	}
	defer comments.Close()

	for comments.Next() {
		var c domain.Comment
		if err := comments.Scan(&c.ID, &c.UserID, &c.UserName, &c.UserAvatar, &c.Text, &c.CreatedAt); err != nil {
			log.Printf("[recipe-svc] comment scan error: %v", err)
			continue
		}
		recipe.Comments = append(recipe.Comments, c)
	}
	return recipe, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecipe(row rowScanner) (*domain.Recipe, error) {
	var recipe domain.Recipe
	var ingredients, steps []byte
	if err := row.Scan(&recipe.ID, &recipe.Title, &recipe.Description, &recipe.ImageURL,
		&recipe.PrepTime, &recipe.CookTime, &recipe.Servings, &recipe.Difficulty,
		&ingredients, &steps, &recipe.Region, pq.Array(&recipe.Tags),
		&recipe.AuthorID, &recipe.AuthorName, &recipe.AuthorAvatar, &recipe.RestaurantID,
		&recipe.Likes, &recipe.AverageRating, &recipe.CreatedAt); err != nil {
		return nil, err
	}
	if len(ingredients) > 0 {
		if err := json.Unmarshal(ingredients, &recipe.Ingredients); err != nil {
			return nil, fmt.Errorf("unmarshal ingredients: %w", err)
		}
	}
	if len(steps) > 0 {
		if err := json.Unmarshal(steps, &recipe.Steps); err != nil {
			return nil, fmt.Errorf("unmarshal steps: %w", err)
		}
	}
	return &recipe, nil
}

func (r *PostgresRepository) UpdateRecipe(recipe *domain.Recipe) error {
	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return fmt.Errorf("marshal ingredients: %w", err)
	}
	steps, err := json.Marshal(recipe.Steps)
	if err != nil {
		return fmt.Errorf("marshal steps: %w", err)
	}
	return r.DB.QueryRow(`
		UPDATE recipes
		SET title=$1, description=$2, image_url=$3, prep_time=$4, cook_time=$5, servings=$6,
			difficulty=$7, ingredients=$8, steps=$9, region=$10, tags=$11
		WHERE id=$12
		RETURNING author_id, created_at`,
		recipe.Title, recipe.Description, recipe.ImageURL, recipe.PrepTime, recipe.CookTime,
		recipe.Servings, recipe.Difficulty, ingredients, steps, recipe.Region,
		pq.Array(recipe.Tags), recipe.ID).
		Scan(&recipe.AuthorID, &recipe.CreatedAt)
}

func (r *PostgresRepository) DeleteRecipe(id string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM recipes WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// ToggleLike flips the user's like and reports the new state plus the
// resulting like count.
func (r *PostgresRepository) ToggleLike(recipeID, userID string) (bool, int, error) {
	result, err := r.DB.Exec(
		"DELETE FROM recipe_likes WHERE recipe_id=$1 AND user_id=$2", recipeID, userID)
	if err != nil {
		return false, 0, err
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return false, 0, err
	}

	liked := removed == 0
	if liked {
		if _, err := r.DB.Exec(
			"INSERT INTO recipe_likes (recipe_id, user_id) VALUES ($1, $2)", recipeID, userID); err != nil {
			return false, 0, err
		}
	}

	var likes int
	if err := r.DB.QueryRow(
		"SELECT COUNT(*) FROM recipe_likes WHERE recipe_id=$1", recipeID).Scan(&likes); err != nil {
		return liked, 0, err
	}
	return liked, likes, nil
}

func (r *PostgresRepository) ToggleSave(recipeID, userID string) (bool, error) {
	result, err := r.DB.Exec(
		"DELETE FROM recipe_saves WHERE recipe_id=$1 AND user_id=$2", recipeID, userID)
	if err != nil {
		return false, err
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if removed > 0 {
		return false, nil
	}

	_, err = r.DB.Exec(
		"INSERT INTO recipe_saves (recipe_id, user_id) VALUES ($1, $2)", recipeID, userID)
	return err == nil, err
}

func (r *PostgresRepository) AddComment(recipeID string, comment *domain.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	return r.DB.QueryRow(`
		INSERT INTO recipe_comments (id, recipe_id, user_id, user_name, user_avatar, text)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		comment.ID, recipeID, comment.UserID, comment.UserName, comment.UserAvatar, comment.Text,
	).Scan(&comment.CreatedAt)
}

// DeleteComment removes the comment only when it belongs to the caller.
func (r *PostgresRepository) DeleteComment(recipeID, commentID, userID string) (int64, error) {
	result, err := r.DB.Exec(
		"DELETE FROM recipe_comments WHERE id=$1 AND recipe_id=$2 AND user_id=$3",
		commentID, recipeID, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// UpsertRating replaces the user's previous rating and returns the new
// average, rounded to one decimal.
func (r *PostgresRepository) UpsertRating(recipeID, userID string, value int) (float64, error) {
	if _, err := r.DB.Exec(`
		INSERT INTO recipe_ratings (recipe_id, user_id, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (recipe_id, user_id) DO UPDATE SET value = EXCLUDED.value`,
		recipeID, userID, value); err != nil {
		return 0, err
	}

	var average float64
	err := r.DB.QueryRow(
		"SELECT COALESCE(ROUND(AVG(value)::numeric, 1), 0) FROM recipe_ratings WHERE recipe_id=$1",
		recipeID).Scan(&average)
	return average, err
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS recipes (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			image_url TEXT,
			prep_time INTEGER NOT NULL DEFAULT 0,
			cook_time INTEGER NOT NULL DEFAULT 0,
			servings INTEGER NOT NULL DEFAULT 1,
			difficulty TEXT NOT NULL,
			ingredients JSONB NOT NULL DEFAULT '[]',
			steps JSONB NOT NULL DEFAULT '[]',
			region TEXT,
			tags TEXT[] NOT NULL DEFAULT '{}',
			author_id TEXT NOT NULL,
			author_name TEXT,
			author_avatar TEXT,
			restaurant_id TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS recipe_likes (
			recipe_id TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
			user_id TEXT NOT NULL,
			PRIMARY KEY (recipe_id, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS recipe_saves (
			recipe_id TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
			user_id TEXT NOT NULL,
			PRIMARY KEY (recipe_id, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS recipe_comments (
			id TEXT PRIMARY KEY,
			recipe_id TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
			user_id TEXT NOT NULL,
			user_name TEXT,
			user_avatar TEXT,
			text TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS recipe_ratings (
			recipe_id TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
			user_id TEXT NOT NULL,
			value INTEGER NOT NULL,
			PRIMARY KEY (recipe_id, user_id)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
