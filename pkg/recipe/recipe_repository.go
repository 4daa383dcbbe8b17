package recipe

import (
	"Recipe-Catalog-Backend/domain"
	"Recipe-Catalog-Backend/entities"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []domain.IngredientRequest, instructions []domain.InstructionRequest, tags []string) error
		UpdateRecipe(ctx context.Context, id int, recipe *entities.Recipe, ingredients []domain.IngredientRequest, instructions []domain.InstructionRequest, tags []string) error
		DeleteRecipe(ctx context.Context, id int) error

		GetRecipeByID(ctx context.Context, id int) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, search string) ([]RecipeRow, error)
		GetRosterRecipes(ctx context.Context) ([]RecipeRow, error)
		GetRecipeIngredients(ctx context.Context, recipeID int) ([]domain.IngredientLine, error)
		GetRecipeInstructions(ctx context.Context, recipeID int) ([]domain.InstructionLine, error)
		GetRecipeTags(ctx context.Context, recipeID int) ([]string, error)

		ToggleRoster(ctx context.Context, recipeID int) (bool, error)
	}

	// RecipeRow is a recipes row annotated with roster membership, scanned
	// from the list queries.
	RecipeRow struct {
		ID                 int
		Title              string
		CookingTimeMinutes int
		Servings           float64
		ImageURL           string
		Rating             float64
		SourceURL          string
		Notes              string
		CreatedAt          time.Time
		InRoster           bool
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []domain.IngredientRequest, instructions []domain.InstructionRequest, tags []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		return insertRecipeRelations(tx, recipe.ID, ingredients, instructions, tags)
	})
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, id int, recipe *entities.Recipe, ingredients []domain.IngredientRequest, instructions []domain.InstructionRequest, tags []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Updates via map so zero values (rating 0, cleared notes) are
		// written too, keeping update a full replace.
		result := tx.Model(&entities.Recipe{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":                recipe.Title,
			"cooking_time_minutes": recipe.CookingTimeMinutes,
			"servings":             recipe.Servings,
			"image_url":            recipe.ImageURL,
			"rating":               recipe.Rating,
			"source_url":           recipe.SourceURL,
			"notes":                recipe.Notes,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrRecipeNotFound
		}

		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Instruction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeTag{}).Error; err != nil {
			return err
		}

		return insertRecipeRelations(tx, id, ingredients, instructions, tags)
	})
}

// insertRecipeRelations writes the full submitted sub-collections for a
// recipe id. Vocabulary names arrive already lowercased from the service;
// FirstOrCreate returns the existing row's id when the name is known, so a
// name maps to exactly one vocabulary row no matter how many recipes use it.
func insertRecipeRelations(tx *gorm.DB, recipeID int, ingredients []domain.IngredientRequest, instructions []domain.InstructionRequest, tags []string) error {
	for _, step := range instructions {
		instruction := entities.Instruction{
			RecipeID:        recipeID,
			StepNumber:      step.StepNumber,
			InstructionText: step.InstructionText,
		}
		if err := tx.Create(&instruction).Error; err != nil {
			return err
		}
	}

	for _, ing := range ingredients {
		var vocab entities.Ingredient
		if err := tx.FirstOrCreate(&vocab, entities.Ingredient{Name: ing.Name}).Error; err != nil {
			return err
		}
		link := entities.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: vocab.ID,
			Amount:       ing.Amount,
			Unit:         ing.Unit,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}

	for _, name := range tags {
		var vocab entities.Tag
		if err := tx.FirstOrCreate(&vocab, entities.Tag{Name: name}).Error; err != nil {
			return err
		}
		if err := tx.Create(&entities.RecipeTag{RecipeID: recipeID, TagID: vocab.ID}).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Instruction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RosterEntry{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&entities.Recipe{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrRecipeNotFound
		}
		return nil
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id int) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, search string) ([]RecipeRow, error) {
	var rows []RecipeRow

	query := r.db.WithContext(ctx).
		Table("recipes").
		Select("recipes.*, CASE WHEN roster.recipe_id IS NOT NULL THEN TRUE ELSE FALSE END AS in_roster").
		Joins("LEFT JOIN roster ON recipes.id = roster.recipe_id")

	if search != "" {
		query = query.Where("LOWER(recipes.title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	if err := query.Order("recipes.id DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recipeRepository) GetRosterRecipes(ctx context.Context) ([]RecipeRow, error) {
	var rows []RecipeRow

	if err := r.db.WithContext(ctx).
		Table("recipes").
		Select("recipes.*, TRUE AS in_roster").
		Joins("INNER JOIN roster ON recipes.id = roster.recipe_id").
		Order("recipes.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recipeRepository) GetRecipeIngredients(ctx context.Context, recipeID int) ([]domain.IngredientLine, error) {
	var lines []domain.IngredientLine

	if err := r.db.WithContext(ctx).
		Table("ingredients").
		Select("ingredients.name, recipe_ingredients.amount, recipe_ingredients.unit").
		Joins("JOIN recipe_ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id = ?", recipeID).
		Order("recipe_ingredients.id").
		Scan(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *recipeRepository) GetRecipeInstructions(ctx context.Context, recipeID int) ([]domain.InstructionLine, error) {
	var lines []domain.InstructionLine

	if err := r.db.WithContext(ctx).
		Model(&entities.Instruction{}).
		Select("step_number, instruction_text").
		Where("recipe_id = ?", recipeID).
		Order("step_number").
		Scan(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *recipeRepository) GetRecipeTags(ctx context.Context, recipeID int) ([]string, error) {
	var names []string

	if err := r.db.WithContext(ctx).
		Table("tags").
		Joins("JOIN recipe_tags ON tags.id = recipe_tags.tag_id").
		Where("recipe_tags.recipe_id = ?", recipeID).
		Order("recipe_tags.id").
		Pluck("tags.name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// ToggleRoster is check-then-act: concurrent toggles on the same id race and
// the last writer wins. Acceptable for single-user usage.
func (r *recipeRepository) ToggleRoster(ctx context.Context, recipeID int) (bool, error) {
	var entry entities.RosterEntry
	err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).First(&entry).Error
	if err == nil {
		if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&entities.RosterEntry{}).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	// The foreign key rejects ids with no recipes row, so the roster can
	// never hold orphaned entries.
	if err := r.db.WithContext(ctx).Create(&entities.RosterEntry{RecipeID: recipeID}).Error; err != nil {
		return false, err
	}
	return true, nil
}
