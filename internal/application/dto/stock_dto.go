package dto

import (
	"github.com/shopspring/decimal"

	"github.com/olionece/gestione-olio/internal/domain/entity"
)

// StockRowResponse fila de giacenza para la UI.
type StockRowResponse struct {
	VariantID    string          `json:"variant_id"`
	LotID        string          `json:"lot_id"`
	LotCode      string          `json:"lot_code"`
	Vintage      int             `json:"vintage"`
	SizeID       string          `json:"size_id"`
	SizeLabel    string          `json:"size_label"`
	ML           int             `json:"ml"`
	UnitsOnHand  int             `json:"units_on_hand"`
	LitersOnHand decimal.Decimal `json:"liters_on_hand"`
	WarehouseID  string          `json:"warehouse_id,omitempty"`
	Warehouse    string          `json:"warehouse_name,omitempty"`
}

// StockTotalsResponse agregados del conjunto filtrado.
type StockTotalsResponse struct {
	Liters   decimal.Decimal `json:"liters"`
	Units    int             `json:"units"`
	Variants int             `json:"variants"`
}

// StockListResponse respuesta de GET /api/stock.
type StockListResponse struct {
	Items  []StockRowResponse  `json:"items"`
	Totals StockTotalsResponse `json:"totals"`
}

// ToStockRowResponse mapea la entidad a su representación JSON.
func ToStockRowResponse(r entity.StockRow) StockRowResponse {
	return StockRowResponse{
		VariantID:    r.VariantID,
		LotID:        r.LotID,
		LotCode:      r.LotCode,
		Vintage:      r.Vintage,
		SizeID:       r.SizeID,
		SizeLabel:    r.SizeLabel,
		ML:           r.ML,
		UnitsOnHand:  r.UnitsOnHand,
		LitersOnHand: r.LitersOnHand,
		WarehouseID:  r.WarehouseID,
		Warehouse:    r.WarehouseName,
	}
}
