// Package export implementa los escritores del reporte de movimientos
// (XLSX vía excelize, PDF vía Maroto v2).
package export

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/cleanstock-api/internal/application/transactions"
	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
)

var _ transactions.ReportWriter = (*PDFReportWriter)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PDFReportWriter genera el reporte de movimientos como tabla A4 con Maroto v2.
type PDFReportWriter struct{}

// NewPDFReportWriter construye el escritor PDF.
func NewPDFReportWriter() *PDFReportWriter {
	return &PDFReportWriter{}
}

// Write renderiza el encabezado del período y una fila por movimiento.
func (w *PDFReportWriter) Write(rows []*entity.TransactionLogDetail, start, end time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte de movimientos de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(start, end, len(rows)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, t := range rows {
		m.AddRows(tableDetailRow(t))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del reporte (izq) y período + total (der).
func headerRow(start, end time.Time, total int) core.Row {
	period := start.Format("02/01/2006") + " — " + end.Format("02/01/2006")
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Movimientos de inventario", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(period, props.Text{
				Size: 9, Top: 1, Align: align.Right,
			}),
			text.New(fmt.Sprintf("%d movimientos", total), props.Text{
				Size: 8, Top: 7, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 8}
	boldRight := props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}
	return row.New(7).Add(
		col.New(2).Add(text.New("Fecha", bold)),
		col.New(1).Add(text.New("Tipo", bold)),
		col.New(3).Add(text.New("Artículo", bold)),
		col.New(1).Add(text.New("Cant.", boldRight)),
		col.New(2).Add(text.New("Serie", bold)),
		col.New(2).Add(text.New("Solicitante", bold)),
		col.New(1).Add(text.New("Área", bold)),
	)
}

func tableDetailRow(t *entity.TransactionLogDetail) core.Row {
	cell := props.Text{Size: 8}
	qty := "—"
	if t.Quantity != nil {
		qty = fmt.Sprintf("%d %s", *t.Quantity, t.Item.Unit)
	}
	serial := "—"
	if t.Asset != nil {
		serial = t.Asset.Serial
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(t.RequestedAt.Format("02/01/2006 15:04"), cell)),
		col.New(1).Add(text.New(string(t.Type), cell)),
		col.New(3).Add(text.New(t.Item.Name, cell)),
		col.New(1).Add(text.New(qty, props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(serial, cell)),
		col.New(2).Add(text.New(t.Requester, cell)),
		col.New(1).Add(text.New(t.Area, cell)),
	)
}
