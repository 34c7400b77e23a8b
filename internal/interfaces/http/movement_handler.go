package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/olionece/gestione-olio/internal/application/dto"
	"github.com/olionece/gestione-olio/internal/application/movement"
	"github.com/olionece/gestione-olio/internal/domain"
	"github.com/olionece/gestione-olio/internal/domain/entity"
)

// MovementPDFGenerator contrato del render PDF del histórico.
type MovementPDFGenerator interface {
	Generate(ctx context.Context, rows []entity.MovementRow, generatedAt time.Time) ([]byte, error)
}

// ExportOptions presentación de las exportaciones del histórico.
type ExportOptions struct {
	DateLayout string
	Location   *time.Location
}

// MovementHandler maneja registro, histórico y exportación de movimientos (protegido).
type MovementHandler struct {
	recorder *movement.Recorder
	engine   *movement.QueryEngine
	pdf      MovementPDFGenerator
	export   ExportOptions
}

// NewMovementHandler construye el handler.
func NewMovementHandler(recorder *movement.Recorder, engine *movement.QueryEngine, pdf MovementPDFGenerator, export ExportOptions) *MovementHandler {
	return &MovementHandler{recorder: recorder, engine: engine, pdf: pdf, export: export}
}

// Record godoc
// @Summary      Registrar movimiento de inventario
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "variant_id, warehouse_id, movement (in|out|adjust), quantity, note"
// @Success      201   {object}  dto.RecordMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	kind, err := entity.ParseMovementKind(in.Movement)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "movement debe ser in, out o adjust"})
	}

	// Normalización final antes de enviar: el input libre puede traer estados
	// transitorios (vacío, solo "-", texto no numérico).
	qty := movement.NormalizeQuantity(in.Quantity, kind)

	id, err := h.recorder.Record(c.Context(), movement.RecordInput{
		VariantID:     in.VariantID,
		WarehouseID:   in.WarehouseID,
		Kind:          kind,
		QuantityUnits: qty,
		Note:          in.Note,
		ActorID:       userID,
		ActorRoles:    GetRoles(c),
	})
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordMovementResponse{ID: id})
}

// List godoc
// @Summary      Histórico de movimientos filtrado y paginado
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        type          query  string  false  "in | out | adjust"
// @Param        warehouse_id  query  string  false  "Filtrar por magazzino"
// @Param        vintage       query  int     false  "Annata"
// @Param        lot           query  string  false  "Lote (A/B/C)"
// @Param        size          query  string  false  "Formato (etiqueta)"
// @Param        q             query  string  false  "Búsqueda en nota u operador (literal, sin comodines)"
// @Param        page          query  int     false  "Página 1-indexada (tamaño fijo 50)"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	filter, err := parseMovementFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	page := c.QueryInt("page", 1)

	res, err := h.engine.Query(c.Context(), filter, page, movement.PageSize)
	if err != nil {
		return movementError(c, err)
	}

	items := make([]dto.MovementRowResponse, 0, len(res.Rows))
	for _, r := range res.Rows {
		items = append(items, dto.ToMovementRowResponse(r))
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page: dto.PageResponse{
			Page:       res.Page,
			PageSize:   res.PageSize,
			Total:      res.Total,
			TotalPages: res.TotalPages,
		},
	})
}

// ExportCSV godoc
// @Summary      Exportar la página actual del histórico como CSV
// @Description  Exporta solo la página pedida, no el resultado filtrado completo.
// @Tags         movements
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string  "movimenti.csv"
// @Router       /api/movements/export [get]
func (h *MovementHandler) ExportCSV(c *fiber.Ctx) error {
	rows, err := h.exportPage(c)
	if err != nil {
		return movementError(c, err)
	}
	data := movement.ExportCSV(rows, movement.CSVOptions{
		DateLayout: h.export.DateLayout,
		Location:   h.export.Location,
	})
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimenti.csv"`)
	return c.Send(data)
}

// ExportPDF godoc
// @Summary      Exportar la página actual del histórico como PDF
// @Tags         movements
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {string}  string  "movimenti.pdf"
// @Router       /api/movements/export.pdf [get]
func (h *MovementHandler) ExportPDF(c *fiber.Ctx) error {
	rows, err := h.exportPage(c)
	if err != nil {
		return movementError(c, err)
	}
	data, err := h.pdf.Generate(c.Context(), rows, time.Now())
	if err != nil {
		return movementError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimenti.pdf"`)
	return c.Send(data)
}

// exportPage resuelve la misma página que vería el histórico con esos filtros.
func (h *MovementHandler) exportPage(c *fiber.Ctx) ([]entity.MovementRow, error) {
	filter, err := parseMovementFilter(c)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	page := c.QueryInt("page", 1)
	res, err := h.engine.Query(c.Context(), filter, page, movement.PageSize)
	if err != nil {
		return nil, err
	}
	return res.Rows, nil
}

func parseMovementFilter(c *fiber.Ctx) (entity.MovementFilter, error) {
	var f entity.MovementFilter
	if t := c.Query("type"); t != "" {
		kind, err := entity.ParseMovementKind(t)
		if err != nil {
			return f, err
		}
		f.Kind = kind
	}
	f.WarehouseID = c.Query("warehouse_id")
	f.Vintage = c.QueryInt("vintage", 0)
	f.LotCode = c.Query("lot")
	f.SizeLabel = c.Query("size")
	f.Search = c.Query("q")
	return f, nil
}

// movementError mapea errores de dominio a códigos HTTP. Los fallos del store
// se devuelven con su mensaje tal cual, para que el usuario distinga una
// denegación de una pérdida de conectividad.
func movementError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "variante o magazzino no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere rol operator o admin"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
