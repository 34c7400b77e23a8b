package stock

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/olionece/gestione-olio/internal/domain/entity"
	"github.com/olionece/gestione-olio/internal/domain/repository"
)

// Filter filtros de presentación sobre las giacenze ya materializadas.
// Se aplican en memoria sobre las filas de la vista, como hacía la pantalla
// original; el cero/"" significa "todos".
type Filter struct {
	Vintage   int
	LotCode   string
	SizeLabel string
}

// UseCase lectura de giacenze para la pantalla principal.
type UseCase struct {
	views repository.StockViewRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(views repository.StockViewRepository) *UseCase {
	return &UseCase{views: views}
}

// List devuelve las giacenze (modo total o por magazzino según warehouseID)
// con los filtros aplicados y los totales litri/unità/varianti del resultado.
// Un resultado vacío es un estado válido, no un error.
func (uc *UseCase) List(ctx context.Context, warehouseID string, f Filter) ([]entity.StockRow, entity.StockTotals, error) {
	var rows []entity.StockRow
	var err error
	if warehouseID == "" {
		rows, err = uc.views.ListTotal(ctx)
	} else {
		rows, err = uc.views.ListByWarehouse(ctx, warehouseID)
	}
	if err != nil {
		return nil, entity.StockTotals{}, err
	}
	rows = ApplyFilter(rows, f)
	return rows, Totals(rows), nil
}

// ApplyFilter filtra las filas en memoria (AND de los criterios presentes).
func ApplyFilter(rows []entity.StockRow, f Filter) []entity.StockRow {
	out := make([]entity.StockRow, 0, len(rows))
	for _, r := range rows {
		if f.Vintage != 0 && r.Vintage != f.Vintage {
			continue
		}
		if f.LotCode != "" && r.LotCode != f.LotCode {
			continue
		}
		if f.SizeLabel != "" && r.SizeLabel != f.SizeLabel {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Totals agrega litros, unidades y número de variantes del conjunto filtrado.
func Totals(rows []entity.StockRow) entity.StockTotals {
	t := entity.StockTotals{Liters: decimal.Zero, Variants: len(rows)}
	for _, r := range rows {
		t.Liters = t.Liters.Add(r.LitersOnHand)
		t.Units += r.UnitsOnHand
	}
	return t
}
