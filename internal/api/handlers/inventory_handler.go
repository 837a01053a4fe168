package handlers

import (
	"Pantry-Inventory/domain"
	"Pantry-Inventory/internal/api/presenters"
	"Pantry-Inventory/pkg/inventory"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	InventoryHandler interface {
		AddIngredient(c *fiber.Ctx) error
		DeleteIngredient(c *fiber.Ctx) error
		GetIngredients(c *fiber.Ctx) error
		GetExpiringSoon(c *fiber.Ctx) error
		GetDashboardStats(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
		now              func() time.Time
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService, validator *validator.Validate) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		validator:        validator,
		now:              time.Now,
	}
}

func (h *inventoryHandler) AddIngredient(c *fiber.Ctx) error {
	userID := c.Params("userId")
	req := new(domain.AddIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.ErrInvalidRequestBody)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddIngredient, err)
	}

	res, err := h.inventoryService.AddIngredient(c.UserContext(), userID, *req)
	if err != nil {
		return h.failure(c, domain.MessageFailedAddIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddIngredient)
}

func (h *inventoryHandler) DeleteIngredient(c *fiber.Ctx) error {
	userID := c.Params("userId")
	ingredientID := c.Params("ingredientId")

	if err := h.inventoryService.DeleteIngredient(c.UserContext(), userID, ingredientID); err != nil {
		return h.failure(c, domain.MessageFailedDeleteIngredient, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteIngredient)
}

func (h *inventoryHandler) GetIngredients(c *fiber.Ctx) error {
	items, err := h.inventoryService.GetIngredients(c.UserContext(), c.Params("userId"))
	if err != nil {
		return h.failure(c, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *inventoryHandler) GetExpiringSoon(c *fiber.Ctx) error {
	items, err := h.inventoryService.GetExpiringSoon(c.UserContext(), c.Params("userId"), h.now())
	if err != nil {
		return h.failure(c, domain.MessageFailedGetExpiringSoon, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetExpiringSoon)
}

func (h *inventoryHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.inventoryService.GetDashboardStats(c.UserContext(), c.Params("userId"), h.now())
	if err != nil {
		return h.failure(c, domain.MessageFailedGetDashboardStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDashboardStats)
}

// failure answers invalid input with 400 and anything else, storage errors
// included, with 500.
func (h *inventoryHandler) failure(c *fiber.Ctx, message string, err error) error {
	if domain.IsInvalidInput(err) {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	}

	log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	return presenters.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
}
