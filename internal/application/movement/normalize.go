// Package movement implementa el registro, consulta, exportación y
// presentación del libro de movimientos de inventario.
package movement

import (
	"strconv"
	"strings"

	"github.com/olionece/gestione-olio/internal/domain/entity"
)

// NormalizeQuantity convierte la entrada libre del usuario en una cantidad válida.
//
// La entrada de texto puede pasar por estados transitorios inválidos (cadena
// vacía, solo un signo menos, caracteres no numéricos), así que la
// normalización corre en cada edición y otra vez justo antes de enviar.
//
//   - in/out: entero >= 1; si no parsea o es < 1, se fuerza a 1. La dirección
//     la da el tipo de movimiento, no el signo.
//   - adjust: cualquier entero con signo distinto de cero; si no parsea o es 0,
//     se fuerza a -1 (una rettifica de cero no tiene sentido y el caso más
//     común es un pequeño descarte).
func NormalizeQuantity(raw string, kind entity.MovementKind) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if kind == entity.MovementAdjust {
		if err != nil || n == 0 {
			return -1
		}
		return n
	}
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// SignedUnits fija el signo definitivo que entra al libro según el tipo:
// in suma, out resta, adjust conserva su signo.
func SignedUnits(units int, kind entity.MovementKind) int {
	abs := units
	if abs < 0 {
		abs = -abs
	}
	switch kind {
	case entity.MovementIn:
		return abs
	case entity.MovementOut:
		return -abs
	case entity.MovementAdjust:
		return units
	}
	return units
}
