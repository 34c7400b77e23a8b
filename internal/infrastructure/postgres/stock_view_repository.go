package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/olionece/gestione-olio/internal/domain/entity"
	"github.com/olionece/gestione-olio/internal/domain/repository"
)

var _ repository.StockViewRepository = (*StockViewRepo)(nil)

// StockViewRepo lectura de las vistas de giacenze materializadas por la base:
// v_stock_detailed_sum (total por variante) y v_stock_detailed_wh (por magazzino).
// El orden de presentación (annata DESC, lote ASC, ml ASC) viene de la consulta.
type StockViewRepo struct {
	q Querier
}

// NewStockViewRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockViewRepository(q Querier) *StockViewRepo {
	return &StockViewRepo{q: q}
}

// ListTotal giacenze sumadas sobre todos los magazzini.
func (r *StockViewRepo) ListTotal(ctx context.Context) ([]entity.StockRow, error) {
	query := `
		SELECT variant_id, lot_id, lot_code, vintage, size_id, size_label, ml,
		       units_on_hand, liters_on_hand
		FROM v_stock_detailed_sum
		ORDER BY vintage DESC, lot_code ASC, ml ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock total: %w", err)
	}
	defer rows.Close()
	return scanStockRows(rows, false)
}

// ListByWarehouse giacenze por magazzino; warehouseID vacío devuelve todos.
func (r *StockViewRepo) ListByWarehouse(ctx context.Context, warehouseID string) ([]entity.StockRow, error) {
	query := `
		SELECT variant_id, lot_id, lot_code, vintage, size_id, size_label, ml,
		       units_on_hand, liters_on_hand, warehouse_id, warehouse_name
		FROM v_stock_detailed_wh`
	args := []any{}
	if warehouseID != "" {
		query += " WHERE warehouse_id = $1"
		args = append(args, warehouseID)
	}
	query += " ORDER BY vintage DESC, lot_code ASC, ml ASC, warehouse_name ASC"
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock by warehouse: %w", err)
	}
	defer rows.Close()
	return scanStockRows(rows, true)
}

func scanStockRows(rows pgx.Rows, withWarehouse bool) ([]entity.StockRow, error) {
	var list []entity.StockRow
	for rows.Next() {
		var s entity.StockRow
		var err error
		if withWarehouse {
			err = rows.Scan(&s.VariantID, &s.LotID, &s.LotCode, &s.Vintage,
				&s.SizeID, &s.SizeLabel, &s.ML, &s.UnitsOnHand, &s.LitersOnHand,
				&s.WarehouseID, &s.WarehouseName)
		} else {
			err = rows.Scan(&s.VariantID, &s.LotID, &s.LotCode, &s.Vintage,
				&s.SizeID, &s.SizeLabel, &s.ML, &s.UnitsOnHand, &s.LitersOnHand)
		}
		if err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
