package repository

import (
	"context"

	"github.com/olionece/gestione-olio/internal/domain/entity"
)

// VariantRepository puerto de lectura de variantes (v_stock_units).
type VariantRepository interface {
	GetByID(ctx context.Context, variantID string) (*entity.Variant, error)
	// List devuelve todas las variantes ordenadas por annata DESC, lote ASC, ml ASC.
	List(ctx context.Context) ([]entity.Variant, error)
}
