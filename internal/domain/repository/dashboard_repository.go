package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
)

// DashboardStatsResult contadores crudos del dashboard.
// Los produce la DB; el use case los convierte en DTO.
type DashboardStatsResult struct {
	TotalItems          int
	AssetsOnLoan        int
	CriticalStock       int
	MonthlyTransactions int // entradas con tanggal_permintaan en el mes calendario actual
}

// TrendPoint conteo de salidas (OUT) de un día concreto.
// Solo aparecen los días con al menos un movimiento; el use case rellena los ceros.
type TrendPoint struct {
	Date  time.Time
	Count int
}

// CompositionPoint conteo de items de una categoría.
type CompositionPoint struct {
	Category entity.Category
	Count    int
}

// DashboardRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type DashboardRepository interface {
	// GetStats devuelve los contadores agregados del dashboard; now fija
	// el mes calendario para MonthlyTransactions.
	GetStats(ctx context.Context, now time.Time) (*DashboardStatsResult, error)
	// GetUsageTrend devuelve conteos diarios de movimientos OUT con
	// tanggal_permintaan >= since, agrupados por fecha calendario ascendente.
	GetUsageTrend(ctx context.Context, since time.Time) ([]TrendPoint, error)
	// GetComposition devuelve el conteo de items por categoría.
	GetComposition(ctx context.Context) ([]CompositionPoint, error)
}
