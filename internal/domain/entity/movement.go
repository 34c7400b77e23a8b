package entity

import (
	"fmt"
	"time"
)

// MovementKind tipo de movimiento del libro. Enumeración cerrada: cualquier
// otro valor se rechaza en la frontera (ParseMovementKind), nunca se propaga.
type MovementKind string

const (
	MovementIn     MovementKind = "in"     // ingresso
	MovementOut    MovementKind = "out"    // uscita
	MovementAdjust MovementKind = "adjust" // rettifica firmada
)

// ParseMovementKind valida una cadena externa contra la enumeración.
func ParseMovementKind(s string) (MovementKind, error) {
	switch k := MovementKind(s); k {
	case MovementIn, MovementOut, MovementAdjust:
		return k, nil
	}
	return "", fmt.Errorf("tipo de movimiento desconocido: %q", s)
}

// Valid reporta si el tipo pertenece a la enumeración.
func (k MovementKind) Valid() bool {
	switch k {
	case MovementIn, MovementOut, MovementAdjust:
		return true
	}
	return false
}

// Movement entrada del libro append-only. QuantityUnits se guarda ya firmado:
// positivo para in, negativo para out y con el signo que traiga el adjust.
// El stock es la suma simple de estas cantidades por variante (y magazzino).
type Movement struct {
	ID            string
	CreatedAt     time.Time
	VariantID     string
	WarehouseID   string
	Kind          MovementKind
	QuantityUnits int
	Note          string
	CreatedBy     string // id del usuario que registró; vacío si no se conoce
}

// MovementRow fila desnormalizada del histórico (v_movements_detailed):
// el movimiento más los atributos de variante, magazzino y operador que
// la presentación necesita sin joins adicionales.
type MovementRow struct {
	ID            string
	CreatedAt     time.Time
	Kind          MovementKind
	QuantityUnits int
	Note          string
	VariantID     string
	Vintage       int
	LotCode       string
	SizeLabel     string
	ML            int
	WarehouseID   string
	WarehouseName string
	CreatedBy     string
	OperatorEmail string
}

// MovementFilter criterios del histórico, combinados en AND. El valor cero
// de cada campo significa "sin filtrar". Search busca una subcadena literal
// en nota y email del operador.
type MovementFilter struct {
	Kind        MovementKind
	WarehouseID string
	Vintage     int
	LotCode     string
	SizeLabel   string
	Search      string
}
