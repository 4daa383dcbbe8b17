package handlers

import (
	"Recipe-Catalog-Backend/domain"
	"Recipe-Catalog-Backend/internal/api/presenters"
	"Recipe-Catalog-Backend/pkg/recipe"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		GetRoster(c *fiber.Ctx) error
		GetGroceryList(c *fiber.Ctx) error
		ToggleRoster(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	search := c.Query("search", "")

	recipes, err := h.recipeService.GetRecipes(c.Context(), search)
	if err != nil {
		return presenters.Error(c, fiber.StatusInternalServerError, domain.MessageFailedFetchRecipes)
	}

	return c.JSON(recipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, domain.MessageInvalidRecipeID)
	}

	detail, err := h.recipeService.GetRecipeDetail(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.Error(c, fiber.StatusNotFound, domain.MessageRecipeNotFound)
		}
		return presenters.Error(c, fiber.StatusInternalServerError, domain.MessageFailedFetchRecipes)
	}

	return c.JSON(detail)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.SaveRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe)
	}

	recipeID, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return presenters.Error(c, fiber.StatusInternalServerError, domain.MessageFailedCreateRecipe)
	}

	return c.Status(fiber.StatusCreated).JSON(domain.CreateRecipeResponse{
		Message:  domain.MessageSuccessCreateRecipe,
		RecipeID: recipeID,
	})
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, domain.MessageInvalidRecipeID)
	}

	req := new(domain.SaveRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe)
	}

	if err := h.recipeService.UpdateRecipe(c.Context(), id, *req); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.Error(c, fiber.StatusNotFound, domain.MessageRecipeNotFound)
		}
		return presenters.Error(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateRecipe)
	}

	return presenters.Message(c, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, domain.MessageInvalidRecipeID)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.Error(c, fiber.StatusNotFound, domain.MessageRecipeNotFound)
		}
		return presenters.Error(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteRecipe)
	}

	return presenters.Message(c, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) GetRoster(c *fiber.Ctx) error {
	recipes, err := h.recipeService.GetRoster(c.Context())
	if err != nil {
		return presenters.Error(c, fiber.StatusInternalServerError, domain.MessageFailedFetchRoster)
	}

	return c.JSON(recipes)
}

func (h *recipeHandler) GetGroceryList(c *fiber.Ctx) error {
	items, err := h.recipeService.GetGroceryList(c.Context())
	if err != nil {
		return presenters.Error(c, fiber.StatusInternalServerError, domain.MessageFailedFetchRoster)
	}

	return c.JSON(items)
}

func (h *recipeHandler) ToggleRoster(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.Error(c, fiber.StatusBadRequest, domain.MessageInvalidRecipeID)
	}

	inRoster, err := h.recipeService.ToggleRoster(c.Context(), id)
	if err != nil {
		return presenters.Error(c, fiber.StatusInternalServerError, domain.MessageFailedToggleRoster)
	}

	return c.JSON(domain.ToggleRosterResponse{InRoster: inRoster})
}
