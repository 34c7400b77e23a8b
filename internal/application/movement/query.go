package movement

import (
	"context"

	"github.com/olionece/gestione-olio/internal/domain/entity"
	"github.com/olionece/gestione-olio/internal/domain/repository"
)

// PageSize tamaño fijo de página del histórico.
const PageSize = 50

// Result página del histórico con el total pre-paginación.
type Result struct {
	Rows       []entity.MovementRow
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// QueryEngine lectura filtrada, ordenada y paginada del libro de movimientos.
type QueryEngine struct {
	movements repository.MovementRepository
}

// NewQueryEngine construye el motor de consulta.
func NewQueryEngine(movements repository.MovementRepository) *QueryEngine {
	return &QueryEngine{movements: movements}
}

// Query devuelve la página pedida (1-indexada) del histórico, ordenada por
// created_at DESC. page < 1 se normaliza a 1; pageSize <= 0 usa PageSize.
// TotalPages es como mínimo 1 aunque el total sea 0.
func (e *QueryEngine) Query(ctx context.Context, filter entity.MovementFilter, page, pageSize int) (Result, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = PageSize
	}
	total, err := e.movements.Count(ctx, filter)
	if err != nil {
		return Result{}, err
	}
	offset := (page - 1) * pageSize
	var rows []entity.MovementRow
	if offset < total {
		rows, err = e.movements.List(ctx, filter, pageSize, offset)
		if err != nil {
			return Result{}, err
		}
	}
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	return Result{
		Rows:       rows,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
