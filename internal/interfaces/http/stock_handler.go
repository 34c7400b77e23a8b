package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/olionece/gestione-olio/internal/application/dto"
	"github.com/olionece/gestione-olio/internal/application/stock"
)

// StockHandler lectura de giacenze (protegido).
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Giacenze por variante (total o por magazzino)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Vacío o 'all' = suma sobre todos los magazzini"
// @Param        vintage       query  int     false  "Annata"
// @Param        lot           query  string  false  "Lote (A/B/C)"
// @Param        size          query  string  false  "Formato (etiqueta)"
// @Success      200  {object}  dto.StockListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	filter := stock.Filter{
		Vintage:   c.QueryInt("vintage", 0),
		LotCode:   c.Query("lot"),
		SizeLabel: c.Query("size"),
	}
	warehouseID := c.Query("warehouse_id")
	if warehouseID == "all" {
		// Centinela heredado del selector de la pantalla: equivale a "todos".
		warehouseID = ""
	}
	rows, totals, err := h.uc.List(c.Context(), warehouseID, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	items := make([]dto.StockRowResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ToStockRowResponse(r))
	}
	return c.JSON(dto.StockListResponse{
		Items: items,
		Totals: dto.StockTotalsResponse{
			Liters:   totals.Liters,
			Units:    totals.Units,
			Variants: totals.Variants,
		},
	})
}
