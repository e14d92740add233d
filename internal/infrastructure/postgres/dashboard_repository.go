package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
	"github.com/tu-usuario/cleanstock-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el dashboard.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador del dashboard.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// GetStats devuelve los contadores agregados en una sola consulta.
// El conteo mensual cubre el mes calendario de `now` según tanggal_permintaan.
func (r *DashboardRepo) GetStats(ctx context.Context, now time.Time) (*repository.DashboardStatsResult, error) {
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	const query = `
	SELECT
	    (SELECT COUNT(*) FROM items)                                              AS total_items,
	    (SELECT COUNT(*) FROM assets WHERE status = 'ON_LOAN')                    AS assets_on_loan,
	    (SELECT COUNT(*) FROM items
	     WHERE stok <= batas_minimum_stok
	       AND kategori IN ('CHEMICAL', 'EQUIPMENT'))                             AS critical_stock,
	    (SELECT COUNT(*) FROM transaction_logs
	     WHERE tanggal_permintaan >= $1)                                          AS monthly_transactions`

	var res repository.DashboardStatsResult
	err := r.pool.QueryRow(ctx, query, startOfMonth).Scan(
		&res.TotalItems, &res.AssetsOnLoan, &res.CriticalStock, &res.MonthlyTransactions,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetStats: %w", err)
	}
	return &res, nil
}

// GetUsageTrend devuelve conteos diarios de salidas (OUT) desde `since`.
// Solo aparecen los días con movimientos; el use case rellena los ceros.
func (r *DashboardRepo) GetUsageTrend(ctx context.Context, since time.Time) ([]repository.TrendPoint, error) {
	const query = `
	SELECT DATE(tanggal_permintaan) AS day, COUNT(*) AS cnt
	FROM transaction_logs
	WHERE tanggal_permintaan >= $1
	  AND tipe = 'OUT'
	GROUP BY DATE(tanggal_permintaan)
	ORDER BY DATE(tanggal_permintaan)`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetUsageTrend: %w", err)
	}
	defer rows.Close()

	var points []repository.TrendPoint
	for rows.Next() {
		var p repository.TrendPoint
		if err := rows.Scan(&p.Date, &p.Count); err != nil {
			return nil, fmt.Errorf("dashboard.GetUsageTrend scan: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// GetComposition devuelve el conteo de items por categoría.
func (r *DashboardRepo) GetComposition(ctx context.Context) ([]repository.CompositionPoint, error) {
	const query = `
	SELECT kategori, COUNT(*) AS cnt
	FROM items
	GROUP BY kategori
	ORDER BY kategori`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetComposition: %w", err)
	}
	defer rows.Close()

	var points []repository.CompositionPoint
	for rows.Next() {
		var p repository.CompositionPoint
		var category string
		if err := rows.Scan(&category, &p.Count); err != nil {
			return nil, fmt.Errorf("dashboard.GetComposition scan: %w", err)
		}
		p.Category = entity.Category(category)
		points = append(points, p)
	}
	return points, rows.Err()
}
