package recipe_test

import (
	migration "Recipe-Catalog-Backend/cmd/database/migrate"
	"Recipe-Catalog-Backend/domain"
	"Recipe-Catalog-Backend/entities"
	"Recipe-Catalog-Backend/pkg/recipe"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_fk=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every statement on the same in-memory
	// database for the lifetime of the test.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migration.Migrate(db))
	return db
}

func soupDocument() (*entities.Recipe, []domain.IngredientRequest, []domain.InstructionRequest, []string) {
	rec := &entities.Recipe{
		Title:              "Soup",
		CookingTimeMinutes: 20,
		Servings:           4,
		Rating:             4.5,
		Notes:              "grandma's version",
	}
	ingredients := []domain.IngredientRequest{
		{Name: "carrot", Amount: 2, Unit: "pcs"},
		{Name: "salt", Amount: 1, Unit: "tsp"},
	}
	instructions := []domain.InstructionRequest{
		{StepNumber: 1, InstructionText: "Boil"},
		{StepNumber: 2, InstructionText: "Season"},
	}
	return rec, ingredients, instructions, []string{"easy", "dinner"}
}

func TestCreateRecipe_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := recipe.NewRecipeRepository(db)
	ctx := context.Background()

	rec, ingredients, instructions, tags := soupDocument()
	require.NoError(t, repo.CreateRecipe(ctx, rec, ingredients, instructions, tags))
	require.NotZero(t, rec.ID)

	got, err := repo.GetRecipeByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Soup", got.Title)
	assert.Equal(t, 20, got.CookingTimeMinutes)
	assert.Equal(t, 4.0, got.Servings)
	assert.False(t, got.CreatedAt.IsZero())

	gotIngredients, err := repo.GetRecipeIngredients(ctx, rec.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.IngredientLine{
		{Name: "carrot", Amount: 2, Unit: "pcs"},
		{Name: "salt", Amount: 1, Unit: "tsp"},
	}, gotIngredients)

	gotInstructions, err := repo.GetRecipeInstructions(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.InstructionLine{
		{StepNumber: 1, InstructionText: "Boil"},
		{StepNumber: 2, InstructionText: "Season"},
	}, gotInstructions)

	gotTags, err := repo.GetRecipeTags(ctx, rec.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"easy", "dinner"}, gotTags)
}

func TestCreateRecipe_VocabularyReuse(t *testing.T) {
	db := setupTestDB(t)
	repo := recipe.NewRecipeRepository(db)
	ctx := context.Background()

	first := &entities.Recipe{Title: "Bread", Servings: 2}
	require.NoError(t, repo.CreateRecipe(ctx, first,
		[]domain.IngredientRequest{{Name: "flour", Amount: 500, Unit: "g"}},
		nil, []string{"baking"}))

	second := &entities.Recipe{Title: "Cake", Servings: 8}
	require.NoError(t, repo.CreateRecipe(ctx, second,
		[]domain.IngredientRequest{{Name: "flour", Amount: 300, Unit: "g"}},
		nil, []string{"baking"}))

	var ingredientCount, tagCount int64
	require.NoError(t, db.Model(&entities.Ingredient{}).Count(&ingredientCount).Error)
	require.NoError(t, db.Model(&entities.Tag{}).Count(&tagCount).Error)
	assert.EqualValues(t, 1, ingredientCount)
	assert.EqualValues(t, 1, tagCount)

	// both recipes link to the same vocabulary row
	var linked []entities.RecipeIngredient
	require.NoError(t, db.Find(&linked).Error)
	require.Len(t, linked, 2)
	assert.Equal(t, linked[0].IngredientID, linked[1].IngredientID)

	// per-recipe amounts are not shared
	assert.NotEqual(t, linked[0].Amount, linked[1].Amount)
}

func TestCreateRecipe_RollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&entities.RecipeTag{}))

	repo := recipe.NewRecipeRepository(db)
	ctx := context.Background()

	rec, ingredients, instructions, tags := soupDocument()
	err := repo.CreateRecipe(ctx, rec, ingredients, instructions, tags)
	require.Error(t, err)

	// nothing from the failed write may be visible
	var recipes, steps, links int64
	require.NoError(t, db.Model(&entities.Recipe{}).Count(&recipes).Error)
	require.NoError(t, db.Model(&entities.Instruction{}).Count(&steps).Error)
	require.NoError(t, db.Model(&entities.RecipeIngredient{}).Count(&links).Error)
	assert.Zero(t, recipes)
	assert.Zero(t, steps)
	assert.Zero(t, links)
}

func TestUpdateRecipe_FullReplace(t *testing.T) {
	db := setupTestDB(t)
	repo := recipe.NewRecipeRepository(db)
	ctx := context.Background()

	rec, ingredients, instructions, tags := soupDocument()
	require.NoError(t, repo.CreateRecipe(ctx, rec, ingredients, instructions, tags))

	updated := &entities.Recipe{
		Title:              "Stew",
		CookingTimeMinutes: 45,
		Servings:           6,
	}
	require.NoError(t, repo.UpdateRecipe(ctx, rec.ID, updated,
		[]domain.IngredientRequest{{Name: "beef", Amount: 400, Unit: "g"}},
		[]domain.InstructionRequest{{StepNumber: 1, InstructionText: "Brown the beef"}},
		nil))

	got, err := repo.GetRecipeByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stew", got.Title)
	assert.Equal(t, 45, got.CookingTimeMinutes)
	// zero values overwrite too: rating and notes were cleared
	assert.Zero(t, got.Rating)
	assert.Empty(t, got.Notes)

	gotIngredients, err := repo.GetRecipeIngredients(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.IngredientLine{{Name: "beef", Amount: 400, Unit: "g"}}, gotIngredients)

	gotInstructions, err := repo.GetRecipeInstructions(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.InstructionLine{{StepNumber: 1, InstructionText: "Brown the beef"}}, gotInstructions)

	// omitted tags were dropped, not merged
	gotTags, err := repo.GetRecipeTags(ctx, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, gotTags)
}

func TestUpdateRecipe_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := recipe.NewRecipeRepository(db)
	ctx := context.Background()

	err := repo.UpdateRecipe(ctx, 999, &entities.Recipe{Title: "Ghost", Servings: 1},
		[]domain.IngredientRequest{{Name: "ectoplasm", Amount: 1, Unit: "cup"}},
		nil, nil)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	// the aborted transaction must not have inserted anything
	var links int64
	require.NoError(t, db.Model(&entities.RecipeIngredient{}).Count(&links).Error)
	assert.Zero(t, links)
}

func TestDeleteRecipe_CleansUp(t *testing.T) {
	db := setupTestDB(t)
	repo := recipe.NewRecipeRepository(db)
	ctx := context.Background()

	rec, ingredients, instructions, tags := soupDocument()
	require.NoError(t, repo.CreateRecipe(ctx, rec, ingredients, instructions, tags))

	inRoster, err := repo.ToggleRoster(ctx, rec.ID)
	require.NoError(t, err)
	require.True(t, inRoster)

	require.NoError(t, repo.DeleteRecipe(ctx, rec.ID))

	_, err = repo.GetRecipeByID(ctx, rec.ID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	var steps, links, tagLinks, roster int64
	require.NoError(t, db.Model(&entities.Instruction{}).Where("recipe_id = ?", rec.ID).Count(&steps).Error)
	require.NoError(t, db.Model(&entities.RecipeIngredient{}).Where("recipe_id = ?", rec.ID).Count(&links).Error)
	require.NoError(t, db.Model(&entities.RecipeTag{}).Where("recipe_id = ?", rec.ID).Count(&tagLinks).Error)
	require.NoError(t, db.Model(&entities.RosterEntry{}).Where("recipe_id = ?", rec.ID).Count(&roster).Error)
	assert.Zero(t, steps)
	assert.Zero(t, links)
	assert.Zero(t, tagLinks)
	assert.Zero(t, roster)

	// the vocabulary survives recipe deletion
	var vocab int64
	require.NoError(t, db.Model(&entities.Ingredient{}).Count(&vocab).Error)
	assert.EqualValues(t, 2, vocab)
}

func TestDeleteRecipe_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := recipe.NewRecipeRepository(db)

	err := repo.DeleteRecipe(context.Background(), 12345)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetRecipes_OrderAndRosterFlag(t *testing.T) {
	db := setupTestDB(t)
	repo := recipe.NewRecipeRepository(db)
	ctx := context.Background()

	var ids []int
	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		rec := &entities.Recipe{Title: title, Servings: 2}
		require.NoError(t, repo.CreateRecipe(ctx, rec, nil, nil, nil))
		ids = append(ids, rec.ID)
	}

	_, err := repo.ToggleRoster(ctx, ids[1])
	require.NoError(t, err)

	rows, err := repo.GetRecipes(ctx, "")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// newest first
	assert.Equal(t, "Gamma", rows[0].Title)
	assert.Equal(t, "Beta", rows[1].Title)
	assert.Equal(t, "Alpha", rows[2].Title)

	assert.False(t, rows[0].InRoster)
	assert.True(t, rows[1].InRoster)
	assert.False(t, rows[2].InRoster)
}

func TestGetRecipes_SearchFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := recipe.NewRecipeRepository(db)
	ctx := context.Background()

	for _, title := range []string{"Chicken Soup", "Beef Stew", "Chicken Curry"} {
		require.NoError(t, repo.CreateRecipe(ctx, &entities.Recipe{Title: title, Servings: 2}, nil, nil, nil))
	}

	rows, err := repo.GetRecipes(ctx, "chickEN")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Chicken Curry", rows[0].Title)
	assert.Equal(t, "Chicken Soup", rows[1].Title)
}

func TestGetRosterRecipes(t *testing.T) {
	db := setupTestDB(t)
	repo := recipe.NewRecipeRepository(db)
	ctx := context.Background()

	planned := &entities.Recipe{Title: "Planned", Servings: 2}
	require.NoError(t, repo.CreateRecipe(ctx, planned,
		[]domain.IngredientRequest{{Name: "rice", Amount: 200, Unit: "g"}}, nil, nil))
	unplanned := &entities.Recipe{Title: "Unplanned", Servings: 2}
	require.NoError(t, repo.CreateRecipe(ctx, unplanned, nil, nil, nil))

	_, err := repo.ToggleRoster(ctx, planned.ID)
	require.NoError(t, err)

	rows, err := repo.GetRosterRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Planned", rows[0].Title)
	assert.True(t, rows[0].InRoster)
}

func TestToggleRoster_Flip(t *testing.T) {
	db := setupTestDB(t)
	repo := recipe.NewRecipeRepository(db)
	ctx := context.Background()

	rec := &entities.Recipe{Title: "Flip", Servings: 1}
	require.NoError(t, repo.CreateRecipe(ctx, rec, nil, nil, nil))

	for i, want := range []bool{true, false, true} {
		got, err := repo.ToggleRoster(ctx, rec.ID)
		require.NoError(t, err, "toggle %d", i)
		assert.Equal(t, want, got, "toggle %d", i)
	}
}

func TestToggleRoster_UnknownRecipeRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := recipe.NewRecipeRepository(db)

	_, err := repo.ToggleRoster(context.Background(), 4242)
	assert.Error(t, err)

	var roster int64
	require.NoError(t, db.Model(&entities.RosterEntry{}).Count(&roster).Error)
	assert.Zero(t, roster)
}
