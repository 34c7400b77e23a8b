package repository

import (
	"context"

	"github.com/olionece/gestione-olio/internal/domain/entity"
)

// StockViewRepository puerto de lectura de las giacenze materializadas por el store.
// La proyección la calcula la base (vistas v_stock_detailed_sum / v_stock_detailed_wh);
// este puerto solo la lee ya ordenada según el contrato de presentación.
type StockViewRepository interface {
	// ListTotal suma única por variante sobre todos los magazzini.
	ListTotal(ctx context.Context) ([]entity.StockRow, error)
	// ListByWarehouse suma particionada por magazzino; warehouseID vacío = todos.
	ListByWarehouse(ctx context.Context, warehouseID string) ([]entity.StockRow, error)
}
