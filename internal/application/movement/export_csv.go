package movement

import (
	"strconv"
	"strings"
	"time"

	"github.com/olionece/gestione-olio/internal/domain/entity"
)

// DefaultDateLayout formato de fecha italiano usado en la exportación.
// Es una elección de presentación, no un contrato de formato: dos exports de
// los mismos datos con locale distinto pueden diferir textualmente.
const DefaultDateLayout = "02/01/2006, 15:04:05"

// csvHeader orden determinista de columnas del export.
var csvHeader = []string{
	"Data", "Tipo", "Magazzino", "Annata", "Lotto",
	"Formato", "Qtà", "Nota", "Operatore", "Variante",
}

// CSVOptions presentación de la exportación.
type CSVOptions struct {
	DateLayout string         // vacío = DefaultDateLayout
	Location   *time.Location // nil = zona local del proceso
}

// ExportCSV serializa las filas recibidas como CSV.
//
// Cada campo va entre comillas y las comillas internas se duplican (`"` → `""`).
// Opera solo sobre las filas que recibe: exportar la página cargada, no el
// resultado filtrado completo, es una limitación de alcance deliberada.
func ExportCSV(rows []entity.MovementRow, opts CSVOptions) []byte {
	layout := opts.DateLayout
	if layout == "" {
		layout = DefaultDateLayout
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	var b strings.Builder
	writeLine(&b, csvHeader)
	for _, r := range rows {
		writeLine(&b, []string{
			r.CreatedAt.In(loc).Format(layout),
			string(r.Kind),
			r.WarehouseName,
			strconv.Itoa(r.Vintage),
			r.LotCode,
			r.SizeLabel,
			strconv.Itoa(r.QuantityUnits),
			r.Note,
			r.OperatorEmail,
			r.VariantID,
		})
	}
	return []byte(b.String())
}

func writeLine(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
