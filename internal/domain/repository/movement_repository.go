package repository

import (
	"context"

	"github.com/olionece/gestione-olio/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia del libro de movimientos.
// El libro es append-only: no existe Update ni Delete.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// List lee la vista desnormalizada v_movements_detailed ordenada por
	// created_at DESC (único orden soportado).
	List(ctx context.Context, filter entity.MovementFilter, limit, offset int) ([]entity.MovementRow, error)
	// Count devuelve el total de filas que casan con el filtro, pre-paginación.
	Count(ctx context.Context, filter entity.MovementFilter) (int, error)
}
