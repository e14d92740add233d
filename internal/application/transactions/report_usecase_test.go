package transactions_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cleanstock-api/internal/application/transactions"
	"github.com/tu-usuario/cleanstock-api/internal/domain"
	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
)

// rangeLogRepo registra el rango consultado y devuelve filas fijas.
type rangeLogRepo struct {
	memLogRepo
	rows     []*entity.TransactionLogDetail
	gotStart time.Time
	gotEnd   time.Time
}

func (r *rangeLogRepo) ListByDateRange(start, end time.Time) ([]*entity.TransactionLogDetail, error) {
	r.gotStart, r.gotEnd = start, end
	return r.rows, nil
}

// captureWriter guarda lo recibido y devuelve contenido fijo.
type captureWriter struct {
	gotRows []*entity.TransactionLogDetail
	content []byte
}

func (w *captureWriter) Write(rows []*entity.TransactionLogDetail, _, _ time.Time) ([]byte, error) {
	w.gotRows = rows
	return w.content, nil
}

func TestExport_XLSX(t *testing.T) {
	rows := []*entity.TransactionLogDetail{{}, {}}
	repo := &rangeLogRepo{rows: rows}
	xlsx := &captureWriter{content: []byte("xlsx-bytes")}
	uc := transactions.NewReportUseCase(repo, xlsx, &captureWriter{})

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	file, err := uc.Export(start, end, transactions.FormatXLSX)
	require.NoError(t, err)

	assert.Equal(t, "transacciones_20250301_20250331.xlsx", file.Name)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)
	assert.Equal(t, []byte("xlsx-bytes"), file.Content)
	assert.Len(t, xlsx.gotRows, 2, "el writer recibe las filas del rango")
	assert.Equal(t, start, repo.gotStart)
	assert.Equal(t, end, repo.gotEnd)
}

func TestExport_PDF(t *testing.T) {
	repo := &rangeLogRepo{}
	pdf := &captureWriter{content: []byte("%PDF-...")}
	uc := transactions.NewReportUseCase(repo, &captureWriter{}, pdf)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	file, err := uc.Export(start, end, transactions.FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "transacciones_20250301_20250331.pdf", file.Name)
	assert.Equal(t, "application/pdf", file.ContentType)
}

func TestExport_FormatoDesconocido(t *testing.T) {
	uc := transactions.NewReportUseCase(&rangeLogRepo{}, &captureWriter{}, &captureWriter{})

	_, err := uc.Export(time.Now().Add(-time.Hour), time.Now(), "csv")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExport_RangoInvertido(t *testing.T) {
	uc := transactions.NewReportUseCase(&rangeLogRepo{}, &captureWriter{}, &captureWriter{})

	start := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Export(start, end, transactions.FormatXLSX)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecent_DefaultCinco(t *testing.T) {
	repo := &countingLogRepo{}
	uc := transactions.NewQueryUseCase(repo)

	_, err := uc.Recent(0)
	require.NoError(t, err)
	assert.Equal(t, 5, repo.gotN, "sin límite explícito se piden 5 entradas")

	_, err = uc.Recent(12)
	require.NoError(t, err)
	assert.Equal(t, 12, repo.gotN)
}

type countingLogRepo struct {
	memLogRepo
	gotN int
}

func (r *countingLogRepo) ListRecent(n int) ([]*entity.TransactionLogDetail, error) {
	r.gotN = n
	return nil, nil
}
