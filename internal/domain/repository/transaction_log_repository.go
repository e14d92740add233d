package repository

import (
	"time"

	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
)

// TransactionLogRepository define el puerto del historial de movimientos.
// El historial es append-only: no existe Update ni Delete.
type TransactionLogRepository interface {
	// Create inserta una entrada. Solo la invoca el motor de transacciones.
	Create(log *entity.TransactionLog) error
	// List devuelve todo el historial unido con item, activo y usuario,
	// ordenado por tanggal_permintaan descendente.
	List() ([]*entity.TransactionLogDetail, error)
	// ListRecent devuelve las últimas n entradas (mismo orden que List).
	ListRecent(n int) ([]*entity.TransactionLogDetail, error)
	// ListByDateRange devuelve las entradas con tanggal_permintaan dentro
	// del rango [start, end], ambos inclusive.
	ListByDateRange(start, end time.Time) ([]*entity.TransactionLogDetail, error)
}
