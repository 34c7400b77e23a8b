package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/olionece/gestione-olio/internal/domain/entity"
	"github.com/olionece/gestione-olio/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo lectura de variantes vía la vista v_stock_units.
type VariantRepo struct {
	q Querier
}

// NewVariantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

// GetByID obtiene una variante por ID; (nil, nil) si no existe.
func (r *VariantRepo) GetByID(ctx context.Context, variantID string) (*entity.Variant, error) {
	query := `
		SELECT variant_id, lot_id, lot_code, vintage, size_id, size_label, ml, units_on_hand
		FROM v_stock_units WHERE variant_id = $1`
	var v entity.Variant
	err := r.q.QueryRow(ctx, query, variantID).Scan(
		&v.VariantID, &v.LotID, &v.LotCode, &v.Vintage,
		&v.SizeID, &v.SizeLabel, &v.ML, &v.UnitsOnHand,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant: %w", err)
	}
	return &v, nil
}

// List todas las variantes en el orden de presentación del formulario.
func (r *VariantRepo) List(ctx context.Context) ([]entity.Variant, error) {
	query := `
		SELECT variant_id, lot_id, lot_code, vintage, size_id, size_label, ml, units_on_hand
		FROM v_stock_units
		ORDER BY vintage DESC, lot_code ASC, ml ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()

	var list []entity.Variant
	for rows.Next() {
		var v entity.Variant
		if err := rows.Scan(&v.VariantID, &v.LotID, &v.LotCode, &v.Vintage,
			&v.SizeID, &v.SizeLabel, &v.ML, &v.UnitsOnHand); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
