package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateRecipe = "Recipe created!"
	MessageSuccessUpdateRecipe = "Recipe updated successfully"
	MessageSuccessDeleteRecipe = "Recipe delete successfully"

	MessageFailedCreateRecipe = "Failed to create recipe"
	MessageFailedFetchRecipes = "Failed to fetch recipes"
	MessageFailedUpdateRecipe = "Update failed"
	MessageFailedDeleteRecipe = "Failed to delete recipe"
	MessageFailedToggleRoster = "Roster toggle failed"
	MessageFailedFetchRoster  = "Internal Server Error during roster fetch"
	MessageRecipeNotFound     = "Recipe not found"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	IngredientRequest struct {
		Name   string  `json:"name" validate:"required"`
		Amount float64 `json:"amount" validate:"min=0"`
		Unit   string  `json:"unit"`
	}

	InstructionRequest struct {
		StepNumber      int    `json:"step_number" validate:"min=1"`
		InstructionText string `json:"instruction_text"`
	}

	// SaveRecipeRequest is the composite document accepted by both create and
	// update. Update is a full replace: whatever sub-collections are submitted
	// become the recipe's new sub-collections, omitted items are dropped.
	SaveRecipeRequest struct {
		Title              string               `json:"title" validate:"required"`
		CookingTimeMinutes int                  `json:"cooking_time_minutes" validate:"min=0"`
		Servings           float64              `json:"servings" validate:"required,gt=0"`
		ImageURL           string               `json:"image_url"`
		Rating             float64              `json:"rating" validate:"min=0,max=5"`
		SourceURL          string               `json:"source_url"`
		Notes              string               `json:"notes"`
		Ingredients        []IngredientRequest  `json:"ingredients" validate:"dive"`
		Instructions       []InstructionRequest `json:"instructions" validate:"dive"`
		Tags               []string             `json:"tags"`
	}

	IngredientLine struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
		Unit   string  `json:"unit"`
	}

	InstructionLine struct {
		StepNumber      int    `json:"step_number"`
		InstructionText string `json:"instruction_text"`
	}

	Recipe struct {
		ID                 int       `json:"id"`
		Title              string    `json:"title"`
		CookingTimeMinutes int       `json:"cooking_time_minutes"`
		Servings           float64   `json:"servings"`
		ImageURL           string    `json:"image_url"`
		Rating             float64   `json:"rating"`
		SourceURL          string    `json:"source_url"`
		Notes              string    `json:"notes"`
		CreatedAt          time.Time `json:"created_at"`
	}

	RecipeDetail struct {
		Recipe
		Ingredients  []IngredientLine  `json:"ingredients"`
		Instructions []InstructionLine `json:"instructions"`
		Tags         []string          `json:"tags"`
	}

	RecipeListItem struct {
		Recipe
		InRoster    bool             `json:"in_roster"`
		Ingredients []IngredientLine `json:"ingredients"`
		Tags        []string         `json:"tags"`
	}

	// RosterRecipe carries ingredients only: the roster view feeds grocery
	// list generation and never renders steps or tags.
	RosterRecipe struct {
		Recipe
		InRoster    bool             `json:"in_roster"`
		Ingredients []IngredientLine `json:"ingredients"`
	}

	GroceryItem struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
		Unit   string  `json:"unit"`
	}

	CreateRecipeResponse struct {
		Message  string `json:"message"`
		RecipeID int    `json:"recipeId"`
	}

	ToggleRosterResponse struct {
		InRoster bool `json:"in_roster"`
	}
)
