package usecase

import (
	"context"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/olionece/gestione-olio/internal/domain/entity"
	"github.com/olionece/gestione-olio/internal/domain/repository"
)

// WarehouseUseCase lectura de magazzini para filtros y formulario.
type WarehouseUseCase struct {
	repo  repository.WarehouseRepository
	stock repository.StockViewRepository
	coll  *collate.Collator
}

// NewWarehouseUseCase construye el caso de uso. La ordenación por nombre usa
// colación italiana, como el localeCompare de la pantalla original.
func NewWarehouseUseCase(repo repository.WarehouseRepository, stock repository.StockViewRepository) *WarehouseUseCase {
	return &WarehouseUseCase{
		repo:  repo,
		stock: stock,
		coll:  collate.New(language.Italian),
	}
}

// List devuelve los magazzini ordenados por nombre. Si la tabla no devuelve
// filas (p. ej. RLS bloquea la lectura directa), deduce la lista de los
// magazzini distintos presentes en la vista de giacenze por magazzino.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]entity.Warehouse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		list, err = uc.fromStockView(ctx)
		if err != nil {
			return nil, err
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return uc.coll.CompareString(list[i].Name, list[j].Name) < 0
	})
	return list, nil
}

// fromStockView deduce magazzini únicos de v_stock_detailed_wh.
func (uc *WarehouseUseCase) fromStockView(ctx context.Context) ([]entity.Warehouse, error) {
	rows, err := uc.stock.ListByWarehouse(ctx, "")
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var list []entity.Warehouse
	for _, r := range rows {
		if r.WarehouseID == "" || seen[r.WarehouseID] {
			continue
		}
		seen[r.WarehouseID] = true
		list = append(list, entity.Warehouse{ID: r.WarehouseID, Name: r.WarehouseName})
	}
	return list, nil
}
