package dto

import (
	"time"

	"github.com/olionece/gestione-olio/internal/domain/entity"
)

// RecordMovementRequest body de POST /api/movements.
// La cantidad llega como texto libre: la normalización admite estados
// transitorios del input (vacío, solo "-", no numérico).
type RecordMovementRequest struct {
	VariantID   string `json:"variant_id"`
	WarehouseID string `json:"warehouse_id"`
	Movement    string `json:"movement"` // in | out | adjust
	Quantity    string `json:"quantity"`
	Note        string `json:"note,omitempty"`
}

// RecordMovementResponse respuesta de creación.
type RecordMovementResponse struct {
	ID string `json:"id"`
}

// MovementRowResponse fila del histórico.
type MovementRowResponse struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Movement      string    `json:"movement"`
	QuantityUnits int       `json:"quantity_units"`
	Note          string    `json:"note,omitempty"`
	VariantID     string    `json:"variant_id"`
	Vintage       int       `json:"vintage"`
	LotCode       string    `json:"lot_code"`
	SizeLabel     string    `json:"size_label"`
	ML            int       `json:"ml"`
	WarehouseID   string    `json:"warehouse_id"`
	Warehouse     string    `json:"warehouse_name"`
	OperatorEmail string    `json:"operator_email,omitempty"`
}

// MovementListResponse respuesta de GET /api/movements.
type MovementListResponse struct {
	Items []MovementRowResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ToMovementRowResponse mapea la fila desnormalizada a JSON.
func ToMovementRowResponse(r entity.MovementRow) MovementRowResponse {
	return MovementRowResponse{
		ID:            r.ID,
		CreatedAt:     r.CreatedAt,
		Movement:      string(r.Kind),
		QuantityUnits: r.QuantityUnits,
		Note:          r.Note,
		VariantID:     r.VariantID,
		Vintage:       r.Vintage,
		LotCode:       r.LotCode,
		SizeLabel:     r.SizeLabel,
		ML:            r.ML,
		WarehouseID:   r.WarehouseID,
		Warehouse:     r.WarehouseName,
		OperatorEmail: r.OperatorEmail,
	}
}

// VariantResponse fila de v_stock_units para el formulario.
type VariantResponse struct {
	VariantID   string `json:"variant_id"`
	LotID       string `json:"lot_id"`
	LotCode     string `json:"lot_code"`
	Vintage     int    `json:"vintage"`
	SizeID      string `json:"size_id"`
	SizeLabel   string `json:"size_label"`
	ML          int    `json:"ml"`
	UnitsOnHand int    `json:"units_on_hand"`
}

// VariantOptionsResponse cascada annata → lote → formato.
type VariantOptionsResponse struct {
	Vintages []int    `json:"vintages"`
	Lots     []string `json:"lots"`
	Sizes    []string `json:"sizes"`
}

// WarehouseResponse magazzino visible.
type WarehouseResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
