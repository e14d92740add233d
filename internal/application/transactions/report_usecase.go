package transactions

import (
	"fmt"
	"time"

	"github.com/tu-usuario/cleanstock-api/internal/domain"
	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
	"github.com/tu-usuario/cleanstock-api/internal/domain/repository"
)

// Formatos de reporte soportados.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ReportWriter renderiza el reporte de movimientos de un rango de fechas.
// Implementaciones: XLSX (excelize) y PDF (maroto) en infrastructure/export.
type ReportWriter interface {
	Write(rows []*entity.TransactionLogDetail, start, end time.Time) ([]byte, error)
}

// ReportFile reporte listo para descarga.
type ReportFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// ReportUseCase genera el reporte descargable del historial por rango de fechas.
type ReportUseCase struct {
	logRepo repository.TransactionLogRepository
	writers map[string]ReportWriter
}

// NewReportUseCase construye el caso de uso con los escritores por formato.
func NewReportUseCase(logRepo repository.TransactionLogRepository, xlsx, pdf ReportWriter) *ReportUseCase {
	return &ReportUseCase{
		logRepo: logRepo,
		writers: map[string]ReportWriter{
			FormatXLSX: xlsx,
			FormatPDF:  pdf,
		},
	}
}

// Export genera el reporte del rango [start, end] en el formato pedido.
func (uc *ReportUseCase) Export(start, end time.Time, format string) (*ReportFile, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	writer, ok := uc.writers[format]
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	rows, err := uc.logRepo.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	content, err := writer.Write(rows, start, end)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("transacciones_%s_%s.%s",
		start.Format("20060102"), end.Format("20060102"), format)
	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if format == FormatPDF {
		contentType = "application/pdf"
	}
	return &ReportFile{Name: name, ContentType: contentType, Content: content}, nil
}
