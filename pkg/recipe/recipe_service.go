package recipe

import (
	"Recipe-Catalog-Backend/domain"
	"Recipe-Catalog-Backend/entities"
	"context"
	"strings"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.SaveRecipeRequest) (int, error)
		UpdateRecipe(ctx context.Context, id int, req domain.SaveRecipeRequest) error
		DeleteRecipe(ctx context.Context, id int) error

		GetRecipeDetail(ctx context.Context, id int) (*domain.RecipeDetail, error)
		GetRecipes(ctx context.Context, search string) ([]domain.RecipeListItem, error)
		GetRoster(ctx context.Context) ([]domain.RosterRecipe, error)
		GetGroceryList(ctx context.Context) ([]domain.GroceryItem, error)

		ToggleRoster(ctx context.Context, id int) (bool, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.SaveRecipeRequest) (int, error) {
	recipe := coreEntity(req)

	err := s.recipeRepository.CreateRecipe(ctx, recipe, foldIngredients(req.Ingredients), req.Instructions, foldTags(req.Tags))
	if err != nil {
		return 0, err
	}
	return recipe.ID, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id int, req domain.SaveRecipeRequest) error {
	return s.recipeRepository.UpdateRecipe(ctx, id, coreEntity(req), foldIngredients(req.Ingredients), req.Instructions, foldTags(req.Tags))
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id int) error {
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id int) (*domain.RecipeDetail, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ingredients, err := s.recipeRepository.GetRecipeIngredients(ctx, id)
	if err != nil {
		return nil, err
	}
	instructions, err := s.recipeRepository.GetRecipeInstructions(ctx, id)
	if err != nil {
		return nil, err
	}
	tags, err := s.recipeRepository.GetRecipeTags(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.RecipeDetail{
		Recipe:       coreDocument(recipe),
		Ingredients:  nonNilIngredients(ingredients),
		Instructions: nonNilInstructions(instructions),
		Tags:         nonNilTags(tags),
	}, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, search string) ([]domain.RecipeListItem, error) {
	rows, err := s.recipeRepository.GetRecipes(ctx, search)
	if err != nil {
		return nil, err
	}

	recipes := make([]domain.RecipeListItem, 0, len(rows))
	for _, row := range rows {
		ingredients, err := s.recipeRepository.GetRecipeIngredients(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		tags, err := s.recipeRepository.GetRecipeTags(ctx, row.ID)
		if err != nil {
			return nil, err
		}

		recipes = append(recipes, domain.RecipeListItem{
			Recipe:      rowDocument(row),
			InRoster:    row.InRoster,
			Ingredients: nonNilIngredients(ingredients),
			Tags:        nonNilTags(tags),
		})
	}
	return recipes, nil
}

func (s *recipeService) GetRoster(ctx context.Context) ([]domain.RosterRecipe, error) {
	rows, err := s.recipeRepository.GetRosterRecipes(ctx)
	if err != nil {
		return nil, err
	}

	recipes := make([]domain.RosterRecipe, 0, len(rows))
	for _, row := range rows {
		ingredients, err := s.recipeRepository.GetRecipeIngredients(ctx, row.ID)
		if err != nil {
			return nil, err
		}

		recipes = append(recipes, domain.RosterRecipe{
			Recipe:      rowDocument(row),
			InRoster:    true,
			Ingredients: nonNilIngredients(ingredients),
		})
	}
	return recipes, nil
}

// GetGroceryList flattens the roster recipes' ingredient lines and sums
// amounts grouped by name and unit, in first-appearance order.
func (s *recipeService) GetGroceryList(ctx context.Context) ([]domain.GroceryItem, error) {
	roster, err := s.GetRoster(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]domain.GroceryItem, 0)
	index := make(map[string]int)
	for _, recipe := range roster {
		for _, line := range recipe.Ingredients {
			key := line.Name + "\x00" + line.Unit
			if i, ok := index[key]; ok {
				items[i].Amount += line.Amount
				continue
			}
			index[key] = len(items)
			items = append(items, domain.GroceryItem{
				Name:   line.Name,
				Amount: line.Amount,
				Unit:   line.Unit,
			})
		}
	}
	return items, nil
}

func (s *recipeService) ToggleRoster(ctx context.Context, id int) (bool, error) {
	return s.recipeRepository.ToggleRoster(ctx, id)
}

func coreEntity(req domain.SaveRecipeRequest) *entities.Recipe {
	return &entities.Recipe{
		Title:              req.Title,
		CookingTimeMinutes: req.CookingTimeMinutes,
		Servings:           req.Servings,
		ImageURL:           req.ImageURL,
		Rating:             req.Rating,
		SourceURL:          req.SourceURL,
		Notes:              req.Notes,
	}
}

func coreDocument(recipe *entities.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:                 recipe.ID,
		Title:              recipe.Title,
		CookingTimeMinutes: recipe.CookingTimeMinutes,
		Servings:           recipe.Servings,
		ImageURL:           recipe.ImageURL,
		Rating:             recipe.Rating,
		SourceURL:          recipe.SourceURL,
		Notes:              recipe.Notes,
		CreatedAt:          recipe.CreatedAt,
	}
}

func rowDocument(row RecipeRow) domain.Recipe {
	return domain.Recipe{
		ID:                 row.ID,
		Title:              row.Title,
		CookingTimeMinutes: row.CookingTimeMinutes,
		Servings:           row.Servings,
		ImageURL:           row.ImageURL,
		Rating:             row.Rating,
		SourceURL:          row.SourceURL,
		Notes:              row.Notes,
		CreatedAt:          row.CreatedAt,
	}
}

// foldIngredients lowercases vocabulary names before storage. Deduplication
// is by the folded form, so "Flour" and "flour" share one vocabulary row.
func foldIngredients(ingredients []domain.IngredientRequest) []domain.IngredientRequest {
	folded := make([]domain.IngredientRequest, len(ingredients))
	for i, ing := range ingredients {
		ing.Name = strings.ToLower(ing.Name)
		folded[i] = ing
	}
	return folded
}

func foldTags(tags []string) []string {
	folded := make([]string, len(tags))
	for i, tag := range tags {
		folded[i] = strings.ToLower(tag)
	}
	return folded
}

func nonNilIngredients(lines []domain.IngredientLine) []domain.IngredientLine {
	if lines == nil {
		return []domain.IngredientLine{}
	}
	return lines
}

func nonNilInstructions(lines []domain.InstructionLine) []domain.InstructionLine {
	if lines == nil {
		return []domain.InstructionLine{}
	}
	return lines
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
