package repository

import (
	"context"

	"github.com/olionece/gestione-olio/internal/domain/entity"
)

// WarehouseRepository puerto de lectura de magazzini (referencia externa, solo lectura).
type WarehouseRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	// List devuelve los magazzini ordenados por nombre.
	List(ctx context.Context) ([]entity.Warehouse, error)
}
