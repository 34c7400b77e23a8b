package stock

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olionece/gestione-olio/internal/domain/entity"
)

type fakeStockView struct {
	total  []entity.StockRow
	byWh   map[string][]entity.StockRow
	err    error
	lastWh string
}

func (f *fakeStockView) ListTotal(_ context.Context) ([]entity.StockRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.total, nil
}

func (f *fakeStockView) ListByWarehouse(_ context.Context, warehouseID string) ([]entity.StockRow, error) {
	f.lastWh = warehouseID
	if f.err != nil {
		return nil, f.err
	}
	return f.byWh[warehouseID], nil
}

func stockRow(variantID string, vintage int, lot, size string, units, ml int) entity.StockRow {
	return entity.StockRow{
		VariantID:    variantID,
		Vintage:      vintage,
		LotCode:      lot,
		SizeLabel:    size,
		ML:           ml,
		UnitsOnHand:  units,
		LitersOnHand: Liters(units, ml),
	}
}

// warehouseID vacío lee las giacenze totales; con id lee el modo por-magazzino.
func TestStockList_EligeLaVista(t *testing.T) {
	view := &fakeStockView{
		total: []entity.StockRow{stockRow("v1", 2025, "A", "0,5 L", 10, 500)},
		byWh: map[string][]entity.StockRow{
			"wh-1": {stockRow("v1", 2025, "A", "0,5 L", 4, 500)},
		},
	}
	uc := NewUseCase(view)
	ctx := context.Background()

	rows, _, err := uc.List(ctx, "", Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 10, rows[0].UnitsOnHand)

	rows, _, err = uc.List(ctx, "wh-1", Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0].UnitsOnHand)
	assert.Equal(t, "wh-1", view.lastWh)
}

// Los filtros son un AND en memoria; los totales reflejan el conjunto filtrado.
func TestStockList_FiltrosYTotales(t *testing.T) {
	view := &fakeStockView{total: []entity.StockRow{
		stockRow("v1", 2025, "A", "0,5 L", 10, 500),
		stockRow("v2", 2025, "B", "0,5 L", 4, 500),
		stockRow("v3", 2024, "A", "0,75 L", 6, 750),
	}}
	uc := NewUseCase(view)

	rows, totals, err := uc.List(context.Background(), "", Filter{Vintage: 2025})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, 14, totals.Units)
	assert.Equal(t, 2, totals.Variants)
	assert.Equal(t, "7", totals.Liters.String())

	rows, totals, err = uc.List(context.Background(), "", Filter{Vintage: 2025, LotCode: "B"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "v2", rows[0].VariantID)
	assert.Equal(t, 1, totals.Variants)
}

// Sin coincidencias: filas vacías y totales a cero, nunca un error.
func TestStockList_SinCoincidencias(t *testing.T) {
	view := &fakeStockView{total: []entity.StockRow{
		stockRow("v1", 2025, "A", "0,5 L", 10, 500),
	}}
	uc := NewUseCase(view)

	rows, totals, err := uc.List(context.Background(), "", Filter{Vintage: 1999})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, entity.StockTotals{Liters: decimal.Zero}, totals)
}

func TestStockList_ErrorDelStore(t *testing.T) {
	storeErr := errors.New("timeout")
	uc := NewUseCase(&fakeStockView{err: storeErr})

	_, _, err := uc.List(context.Background(), "", Filter{})
	assert.ErrorIs(t, err, storeErr)
}
