package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olionece/gestione-olio/internal/domain/entity"
)

type fakeWarehouseRepo struct {
	list []entity.Warehouse
	err  error
}

func (f *fakeWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	for _, w := range f.list {
		if w.ID == id {
			return &w, nil
		}
	}
	return nil, nil
}

func (f *fakeWarehouseRepo) List(_ context.Context) ([]entity.Warehouse, error) {
	return f.list, f.err
}

type fakeStockView struct {
	rows []entity.StockRow
	err  error
}

func (f *fakeStockView) ListTotal(_ context.Context) ([]entity.StockRow, error) {
	return nil, f.err
}

func (f *fakeStockView) ListByWarehouse(_ context.Context, _ string) ([]entity.StockRow, error) {
	return f.rows, f.err
}

// El orden es alfabético italiano, insensible a mayúsculas y acentos.
func TestWarehouseList_OrdenItaliano(t *testing.T) {
	repo := &fakeWarehouseRepo{list: []entity.Warehouse{
		{ID: "3", Name: "deposito nord"},
		{ID: "1", Name: "Àncora"},
		{ID: "2", Name: "Cantina"},
	}}
	uc := NewWarehouseUseCase(repo, &fakeStockView{})

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Àncora", list[0].Name)
	assert.Equal(t, "Cantina", list[1].Name)
	assert.Equal(t, "deposito nord", list[2].Name)
}

// Tabla vacía: la lista se deduce de los magazzini distintos de las giacenze.
func TestWarehouseList_FallbackDesdeGiacenze(t *testing.T) {
	view := &fakeStockView{rows: []entity.StockRow{
		{VariantID: "v1", WarehouseID: "wh-2", WarehouseName: "Magazzino principale"},
		{VariantID: "v2", WarehouseID: "wh-1", WarehouseName: "Cantina"},
		{VariantID: "v3", WarehouseID: "wh-2", WarehouseName: "Magazzino principale"},
	}}
	uc := NewWarehouseUseCase(&fakeWarehouseRepo{}, view)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2, "los magazzini repetidos se deduplican")
	assert.Equal(t, "Cantina", list[0].Name)
	assert.Equal(t, "Magazzino principale", list[1].Name)
}

func TestWarehouseList_ErrorDelStore(t *testing.T) {
	storeErr := errors.New("permission denied")
	uc := NewWarehouseUseCase(&fakeWarehouseRepo{err: storeErr}, &fakeStockView{})

	_, err := uc.List(context.Background())
	assert.ErrorIs(t, err, storeErr)
}
