package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/olionece/gestione-olio/internal/application/dto"
	"github.com/olionece/gestione-olio/internal/application/usecase"
)

// VariantHandler lectura de variantes y opciones del formulario (protegido).
type VariantHandler struct {
	uc *usecase.VariantUseCase
}

// NewVariantHandler construye el handler.
func NewVariantHandler(uc *usecase.VariantUseCase) *VariantHandler {
	return &VariantHandler{uc: uc}
}

// List godoc
// @Summary      Listar variantes (annata × lote × formato)
// @Tags         variants
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.VariantResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/variants [get]
func (h *VariantHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.VariantResponse, 0, len(list))
	for _, v := range list {
		items = append(items, dto.VariantResponse{
			VariantID:   v.VariantID,
			LotID:       v.LotID,
			LotCode:     v.LotCode,
			Vintage:     v.Vintage,
			SizeID:      v.SizeID,
			SizeLabel:   v.SizeLabel,
			ML:          v.ML,
			UnitsOnHand: v.UnitsOnHand,
		})
	}
	return c.JSON(items)
}

// Options godoc
// @Summary      Opciones en cascada annata → lote → formato
// @Description  Una combinación sin variantes devuelve opciones vacías, no 404.
// @Tags         variants
// @Security     Bearer
// @Produce      json
// @Param        vintage  query  int     false  "Annata elegida (0 = todas)"
// @Param        lot      query  string  false  "Lote elegido"
// @Success      200  {object}  dto.VariantOptionsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/variants/options [get]
func (h *VariantHandler) Options(c *fiber.Ctx) error {
	opts, err := h.uc.Options(c.Context(), c.QueryInt("vintage", 0), c.Query("lot"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.VariantOptionsResponse{
		Vintages: opts.Vintages,
		Lots:     opts.Lots,
		Sizes:    opts.Sizes,
	})
}
