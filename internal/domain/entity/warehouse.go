package entity

import "time"

// Warehouse representa un magazzino donde se almacena el aceite embotellado.
// Lo crea/renombra un proceso admin externo; para este núcleo es solo lectura.
type Warehouse struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
