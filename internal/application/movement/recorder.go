package movement

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/olionece/gestione-olio/internal/domain"
	"github.com/olionece/gestione-olio/internal/domain/entity"
	"github.com/olionece/gestione-olio/internal/domain/repository"
)

// Recorder valida y registra un movimiento en el libro.
//
// Garantías: a lo sumo un movimiento por llamada exitosa; sin deduplicación
// (repetir la llamada crea una fila nueva, porque cada envío representa un
// evento real); nunca se reintenta automáticamente un fallo de escritura.
type Recorder struct {
	movements  repository.MovementRepository
	variants   repository.VariantRepository
	warehouses repository.WarehouseRepository
}

// NewRecorder construye el registrador.
func NewRecorder(
	movements repository.MovementRepository,
	variants repository.VariantRepository,
	warehouses repository.WarehouseRepository,
) *Recorder {
	return &Recorder{movements: movements, variants: variants, warehouses: warehouses}
}

// RecordInput intención de movimiento ya autenticada.
// ActorID y ActorRoles vienen de la sesión, nunca del cuerpo de la petición.
type RecordInput struct {
	VariantID     string
	WarehouseID   string
	Kind          entity.MovementKind
	QuantityUnits int
	Note          string
	ActorID       string
	ActorRoles    []string
}

// Record valida la intención y añade exactamente un movimiento inmutable.
// Devuelve el ID asignado. El signo definitivo de la cantidad lo fija el tipo
// (in suma, out resta, adjust conserva el suyo) justo antes de persistir.
func (r *Recorder) Record(ctx context.Context, in RecordInput) (string, error) {
	if !in.Kind.Valid() {
		return "", domain.ErrInvalidInput
	}
	if in.VariantID == "" || in.WarehouseID == "" {
		return "", domain.ErrInvalidInput
	}
	if in.Kind == entity.MovementAdjust && in.QuantityUnits == 0 {
		return "", domain.ErrInvalidInput
	}
	if !entity.CanInsert(in.ActorRoles) {
		return "", domain.ErrForbidden
	}

	variant, err := r.variants.GetByID(ctx, in.VariantID)
	if err != nil {
		return "", err
	}
	if variant == nil {
		return "", domain.ErrNotFound
	}
	warehouse, err := r.warehouses.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return "", err
	}
	if warehouse == nil {
		return "", domain.ErrNotFound
	}

	units := in.QuantityUnits
	if units == 0 {
		units = 1 // in/out: el mínimo registrable es una unidad
	}
	mov := &entity.Movement{
		ID:            uuid.New().String(),
		CreatedAt:     time.Now(),
		VariantID:     in.VariantID,
		WarehouseID:   in.WarehouseID,
		Kind:          in.Kind,
		QuantityUnits: SignedUnits(units, in.Kind),
		Note:          in.Note,
		CreatedBy:     in.ActorID,
	}
	if err := r.movements.Create(ctx, mov); err != nil {
		// El libro queda intacto; el error del store se propaga tal cual
		// para que el usuario distinga denegación de conectividad.
		return "", err
	}
	return mov.ID, nil
}
