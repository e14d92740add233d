package analytics

import (
	"context"
	"time"

	"github.com/tu-usuario/cleanstock-api/internal/application/dto"
	"github.com/tu-usuario/cleanstock-api/internal/domain/repository"
)

// DashboardUseCase vistas derivadas de solo lectura sobre catálogo e historial.
type DashboardUseCase struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: time.Now}
}

// Stats devuelve los contadores agregados del dashboard. El conteo mensual
// cubre el mes calendario en curso según tanggal_permintaan.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	res, err := uc.repo.GetStats(ctx, uc.now())
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStatsDTO{
		TotalItems:          res.TotalItems,
		AssetsOnLoan:        res.AssetsOnLoan,
		CriticalStock:       res.CriticalStock,
		MonthlyTransactions: res.MonthlyTransactions,
	}, nil
}

// UsageTrend devuelve los conteos diarios de salidas (OUT) de los últimos
// `days` días, incluyendo hoy. La serie se rellena con ceros para que la
// gráfica sea continua aunque la consulta devuelva filas dispersas.
func (uc *DashboardUseCase) UsageTrend(ctx context.Context, days int) ([]dto.TrendPointDTO, error) {
	if days <= 0 {
		days = 30
	}
	today := uc.now().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(days - 1))

	points, err := uc.repo.GetUsageTrend(ctx, since)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]int, len(points))
	for _, p := range points {
		byDate[p.Date.Format("2006-01-02")] = p.Count
	}

	out := make([]dto.TrendPointDTO, 0, days)
	for d := since; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		out = append(out, dto.TrendPointDTO{Date: key, Count: byDate[key]})
	}
	return out, nil
}

// Composition devuelve el conteo de items por categoría.
func (uc *DashboardUseCase) Composition(ctx context.Context) ([]dto.CompositionPointDTO, error) {
	points, err := uc.repo.GetComposition(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompositionPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.CompositionPointDTO{Category: string(p.Category), Count: p.Count})
	}
	return out, nil
}
