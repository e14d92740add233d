package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/cleanstock-api/internal/application/transactions"
	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
)

var _ transactions.ReportWriter = (*ExcelReportWriter)(nil)

// ExcelReportWriter genera el reporte de movimientos como libro XLSX.
type ExcelReportWriter struct{}

// NewExcelReportWriter construye el escritor XLSX.
func NewExcelReportWriter() *ExcelReportWriter {
	return &ExcelReportWriter{}
}

// Write arma una hoja con una fila por movimiento del rango.
func (w *ExcelReportWriter) Write(rows []*entity.TransactionLogDetail, start, end time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"fecha_solicitud",
		"tipo",
		"kode_barang",
		"articulo",
		"categoria",
		"cantidad",
		"unidad",
		"nro_serie",
		"solicitante",
		"area",
		"registrado_por",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}

	rowNum := 2
	for _, t := range rows {
		var qty interface{}
		if t.Quantity != nil {
			qty = *t.Quantity
		}
		var serial string
		if t.Asset != nil {
			serial = t.Asset.Serial
		}
		excelRow := []interface{}{
			t.RequestedAt.Format("2006-01-02 15:04"),
			string(t.Type),
			t.Item.Code,
			t.Item.Name,
			string(t.Item.Category),
			qty,
			t.Item.Unit,
			serial,
			t.Requester,
			t.Area,
			t.User.Name,
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", rowNum, err)
		}
		rowNum++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
