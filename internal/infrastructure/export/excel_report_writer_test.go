package export_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/cleanstock-api/internal/infrastructure/export"
	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
)

func sampleRows() []*entity.TransactionLogDetail {
	qty := 4
	when := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	consumable := &entity.TransactionLogDetail{
		TransactionLog: entity.TransactionLog{
			RequestedAt: when,
			Requester:   "Juan Pérez",
			Area:        "Piso 3",
			Quantity:    &qty,
			Type:        entity.MovementOUT,
		},
		Item: entity.Item{Code: "KB001", Name: "Desengrasante", Category: entity.CategoryChemical, Unit: "litro"},
		User: entity.User{Name: "María López"},
	}
	machine := &entity.TransactionLogDetail{
		TransactionLog: entity.TransactionLog{
			RequestedAt: when.Add(time.Hour),
			Requester:   "Ana Ruiz",
			Area:        "Recepción",
			Type:        entity.MovementOUT,
		},
		Item:  entity.Item{Code: "MS001", Name: "Aspiradora", Category: entity.CategoryMachine, Unit: "unidad"},
		Asset: &entity.Asset{Serial: "VC001"},
		User:  entity.User{Name: "María López"},
	}
	return []*entity.TransactionLogDetail{consumable, machine}
}

func TestExcelWrite_LibroLegible(t *testing.T) {
	w := export.NewExcelReportWriter()

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	content, err := w.Write(sampleRows(), start, end)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	// El resultado debe poder abrirse de nuevo con excelize.
	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	cells, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, cells, 3, "encabezado + dos movimientos")

	assert.Equal(t, "fecha_solicitud", cells[0][0])
	assert.Equal(t, "KB001", cells[1][2])
	assert.Equal(t, "4", cells[1][5], "el consumible lleva cantidad")
	assert.Equal(t, "VC001", cells[2][7], "la máquina lleva número de serie")
	assert.Empty(t, strings.TrimSpace(cells[2][5]), "la máquina no lleva cantidad")
}

func TestExcelWrite_SinFilas(t *testing.T) {
	w := export.NewExcelReportWriter()

	content, err := w.Write(nil, time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	cells, err := f.GetRows(sheet)
	require.NoError(t, err)
	assert.Len(t, cells, 1, "solo el encabezado")
}

func TestPDFWrite_DocumentoValido(t *testing.T) {
	w := export.NewPDFReportWriter()

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	content, err := w.Write(sampleRows(), start, end)
	require.NoError(t, err)
	require.NotEmpty(t, content)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")), "debe empezar con la firma PDF")
}
