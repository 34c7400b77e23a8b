// Package pdf implementa la exportación del histórico de movimientos como
// tabla A4 (Maroto v2), espejo en papel de la página del histórico.
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/olionece/gestione-olio/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 120, Green: 83, Blue: 25} // ámbar oscuro
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// movementKindLabels etiquetas italianas de presentación.
var movementKindLabels = map[entity.MovementKind]string{
	entity.MovementIn:     "Ingresso",
	entity.MovementOut:    "Uscita",
	entity.MovementAdjust: "Rettifica",
}

// MovementsPDFGenerator render de la página del histórico con Maroto v2.
type MovementsPDFGenerator struct {
	dateLayout string
	location   *time.Location
}

// NewMovementsPDFGenerator construye el generador con la presentación de fechas dada.
func NewMovementsPDFGenerator(dateLayout string, location *time.Location) *MovementsPDFGenerator {
	if dateLayout == "" {
		dateLayout = "02/01/2006, 15:04:05"
	}
	if location == nil {
		location = time.Local
	}
	return &MovementsPDFGenerator{dateLayout: dateLayout, location: location}
}

// Generate genera el PDF y devuelve sus bytes. Opera solo sobre las filas
// recibidas (la página cargada), igual que la exportación CSV.
func (g *MovementsPDFGenerator) Generate(_ context.Context, rows []entity.MovementRow, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Movimenti di magazzino", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt.In(g.location).Format(g.dateLayout), len(rows)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(g.detailRow(r))
	}
	if len(rows) == 0 {
		m.AddRows(row.New(6).Add(
			text.NewCol(12, "Nessun movimento per i filtri selezionati.",
				props.Text{Size: 8, Color: colorGray, Align: align.Left}),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow título + fecha de generación y número de filas exportadas.
func headerRow(generated string, count int) core.Row {
	return row.New(10).Add(
		text.NewCol(8, "Gestione Olio — Movimenti di magazzino",
			props.Text{Size: 12, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Left}),
		text.NewCol(4, fmt.Sprintf("%s · %d righe", generated, count),
			props.Text{Size: 8, Color: colorGray, Align: align.Right}),
	)
}

func tableHeaderRow() core.Row {
	bold := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	boldRight := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	return row.New(6).Add(
		text.NewCol(2, "Data", bold),
		text.NewCol(1, "Tipo", bold),
		text.NewCol(2, "Magazzino", bold),
		text.NewCol(1, "Annata", bold),
		text.NewCol(1, "Lotto", bold),
		text.NewCol(1, "Formato", bold),
		text.NewCol(1, "Qtà", boldRight),
		text.NewCol(2, "Nota", bold),
		text.NewCol(1, "Operatore", bold),
	)
}

func (g *MovementsPDFGenerator) detailRow(r entity.MovementRow) core.Row {
	left := props.Text{Size: 7, Align: align.Left}
	right := props.Text{Size: 7, Align: align.Right}
	return row.New(5).Add(
		text.NewCol(2, r.CreatedAt.In(g.location).Format(g.dateLayout), left),
		text.NewCol(1, movementKindLabels[r.Kind], left),
		text.NewCol(2, r.WarehouseName, left),
		text.NewCol(1, strconv.Itoa(r.Vintage), left),
		text.NewCol(1, r.LotCode, left),
		text.NewCol(1, r.SizeLabel, left),
		text.NewCol(1, strconv.Itoa(r.QuantityUnits), right),
		text.NewCol(2, r.Note, left),
		text.NewCol(1, r.OperatorEmail, left),
	)
}
