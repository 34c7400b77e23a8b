// Package stock implementa la proyección de giacenze: el pliegue del libro de
// movimientos en cantidades actuales por variante (y por variante × magazzino).
package stock

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/olionece/gestione-olio/internal/domain/entity"
)

// GroupMode modo de agrupación de la proyección.
type GroupMode int

const (
	// ByVariant una fila por variante, sumada sobre todos los magazzini.
	ByVariant GroupMode = iota
	// ByVariantWarehouse una fila por variante y magazzino.
	ByVariantWarehouse
)

// Project pliega el libro de movimientos en giacenze actuales.
//
// La suma es conmutativa y asociativa sobre quantity_units, así que el orden
// de los movimientos de entrada es irrelevante. Una variante sin movimientos
// no produce fila: ausencia significa "sin actividad", no "stock cero".
// Un libro vacío produce una proyección vacía, nunca un error.
//
// Orden de presentación: annata DESC, lote ASC, ml ASC (y nombre de magazzino
// para desempatar en modo por-magazzino).
func Project(
	movements []entity.Movement,
	variants map[string]entity.Variant,
	warehouses map[string]entity.Warehouse,
	mode GroupMode,
) []entity.StockRow {
	type key struct {
		variantID   string
		warehouseID string
	}
	sums := make(map[key]int)
	for _, m := range movements {
		k := key{variantID: m.VariantID}
		if mode == ByVariantWarehouse {
			k.warehouseID = m.WarehouseID
		}
		sums[k] += m.QuantityUnits
	}

	rows := make([]entity.StockRow, 0, len(sums))
	for k, units := range sums {
		v, ok := variants[k.variantID]
		if !ok {
			// Movimiento huérfano: la variante ya no está en el set de referencia.
			continue
		}
		row := entity.StockRow{
			VariantID:    v.VariantID,
			LotID:        v.LotID,
			LotCode:      v.LotCode,
			Vintage:      v.Vintage,
			SizeID:       v.SizeID,
			SizeLabel:    v.SizeLabel,
			ML:           v.ML,
			UnitsOnHand:  units,
			LitersOnHand: Liters(units, v.ML),
		}
		if mode == ByVariantWarehouse {
			row.WarehouseID = k.warehouseID
			if w, ok := warehouses[k.warehouseID]; ok {
				row.WarehouseName = w.Name
			}
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Vintage != b.Vintage {
			return a.Vintage > b.Vintage
		}
		if a.LotCode != b.LotCode {
			return a.LotCode < b.LotCode
		}
		if a.ML != b.ML {
			return a.ML < b.ML
		}
		return a.WarehouseName < b.WarehouseName
	})
	return rows
}

// Liters convierte unidades enteras a litros: units * ml / 1000.
func Liters(units, ml int) decimal.Decimal {
	return decimal.NewFromInt(int64(units) * int64(ml)).Div(decimal.NewFromInt(1000))
}
