package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/badassgarage/inventory-api/internal/application/dto"
	appinv "github.com/badassgarage/inventory-api/internal/application/inventory"
	"github.com/badassgarage/inventory-api/internal/domain"
)

// InventoryHandler expone la vista del catálogo y el canal de edit intents.
type InventoryHandler struct {
	presenter *appinv.Presenter
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(p *appinv.Presenter) *InventoryHandler {
	return &InventoryHandler{presenter: p}
}

// List godoc
// @Summary      Listar el inventario anotado con stock bajo
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.InventoryResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.presenter.Response())
}

// RequestEdit godoc
// @Summary      Señalar intención de editar un item
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del item"
// @Success      202  {object}  dto.EditIntentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/edit-intent [post]
func (h *InventoryHandler) RequestEdit(c *fiber.Ctx) error {
	itemID := c.Params("id")
	intent, err := h.presenter.RequestEdit(c.UserContext(), itemID, GetSessionID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "el item no existe"})
		case errors.Is(err, domain.ErrEditorUnavailable):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "EDITOR_UNAVAILABLE", Message: domain.ErrEditorUnavailable.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.EditIntentResponse{IntentID: intent.ID, ItemID: intent.Item.ID})
}
