package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/olionece/gestione-olio/internal/application/dto"
	"github.com/olionece/gestione-olio/internal/application/usecase"
)

// WarehouseHandler lectura de magazzini (protegido).
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// List godoc
// @Summary      Listar magazzini
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.WarehouseResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, dto.WarehouseResponse{ID: w.ID, Name: w.Name})
	}
	return c.JSON(items)
}
