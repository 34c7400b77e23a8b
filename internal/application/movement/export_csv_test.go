package movement

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olionece/gestione-olio/internal/domain/entity"
)

func sampleRow() entity.MovementRow {
	return entity.MovementRow{
		ID:            "mov-1",
		CreatedAt:     time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		Kind:          entity.MovementOut,
		QuantityUnits: -6,
		Note:          "vendita mercato",
		VariantID:     "var-1",
		Vintage:       2025,
		LotCode:       "A",
		SizeLabel:     "0,5 L",
		ML:            500,
		WarehouseID:   "wh-1",
		WarehouseName: "Magazzino principale",
		OperatorEmail: "operatore@gestioneolio.local",
	}
}

// La cabecera y el orden de columnas son fijos; cada campo va entre comillas.
func TestExportCSV_CabeceraYOrdenDeColumnas(t *testing.T) {
	out := string(ExportCSV([]entity.MovementRow{sampleRow()}, CSVOptions{Location: time.UTC}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t,
		`"Data","Tipo","Magazzino","Annata","Lotto","Formato","Qtà","Nota","Operatore","Variante"`,
		lines[0])
	assert.Equal(t,
		`"15/03/2026, 10:30:00","out","Magazzino principale","2025","A","0,5 L","-6","vendita mercato","operatore@gestioneolio.local","var-1"`,
		lines[1])
}

// Las comillas internas se duplican; la coma dentro de un campo entrecomillado
// no parte la columna.
func TestExportCSV_EscapaComillasInternas(t *testing.T) {
	row := sampleRow()
	row.Note = `He said "ok"`
	out := string(ExportCSV([]entity.MovementRow{row}, CSVOptions{Location: time.UTC}))

	assert.Contains(t, out, `"He said ""ok"""`)
	// "0,5 L" tiene coma: debe seguir siendo un único campo.
	assert.Contains(t, out, `"0,5 L"`)
}

// Sin filas: solo la cabecera, con salto de línea final.
func TestExportCSV_SinFilas(t *testing.T) {
	out := string(ExportCSV(nil, CSVOptions{}))
	assert.Equal(t,
		"\"Data\",\"Tipo\",\"Magazzino\",\"Annata\",\"Lotto\",\"Formato\",\"Qtà\",\"Nota\",\"Operatore\",\"Variante\"\n",
		out)
}

// El layout y la zona horaria son presentación configurable, no contrato.
func TestExportCSV_LayoutYZonaHoraria(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	require.NoError(t, err)

	row := sampleRow() // 10:30 UTC = 11:30 en Roma (CET, marzo antes del cambio horario)
	out := string(ExportCSV([]entity.MovementRow{row}, CSVOptions{
		DateLayout: "2006-01-02 15:04",
		Location:   rome,
	}))
	assert.Contains(t, out, `"2026-03-15 11:30"`)
}
