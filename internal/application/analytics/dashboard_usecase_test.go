package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
	"github.com/tu-usuario/cleanstock-api/internal/domain/repository"
)

// fakeDashboardRepo devuelve respuestas fijas y registra el since recibido.
type fakeDashboardRepo struct {
	stats       *repository.DashboardStatsResult
	trend       []repository.TrendPoint
	composition []repository.CompositionPoint
	gotSince    time.Time
}

func (f *fakeDashboardRepo) GetStats(_ context.Context, _ time.Time) (*repository.DashboardStatsResult, error) {
	return f.stats, nil
}
func (f *fakeDashboardRepo) GetUsageTrend(_ context.Context, since time.Time) ([]repository.TrendPoint, error) {
	f.gotSince = since
	return f.trend, nil
}
func (f *fakeDashboardRepo) GetComposition(_ context.Context) ([]repository.CompositionPoint, error) {
	return f.composition, nil
}

func fixedNow() time.Time {
	// 15 de marzo, mediodía UTC.
	return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
}

func TestStats_MapeaContadores(t *testing.T) {
	repo := &fakeDashboardRepo{stats: &repository.DashboardStatsResult{
		TotalItems:          42,
		AssetsOnLoan:        3,
		CriticalStock:       5,
		MonthlyTransactions: 17,
	}}
	uc := NewDashboardUseCase(repo)
	uc.now = fixedNow

	out, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, out.TotalItems)
	assert.Equal(t, 3, out.AssetsOnLoan)
	assert.Equal(t, 5, out.CriticalStock)
	assert.Equal(t, 17, out.MonthlyTransactions)
}

func TestUsageTrend_RellenaDiasSinMovimiento(t *testing.T) {
	repo := &fakeDashboardRepo{trend: []repository.TrendPoint{
		{Date: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), Count: 4},
		{Date: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), Count: 2},
	}}
	uc := NewDashboardUseCase(repo)
	uc.now = fixedNow

	out, err := uc.UsageTrend(context.Background(), 7)
	require.NoError(t, err)

	// 7 días terminando hoy (2025-03-15): del 9 al 15 inclusive.
	require.Len(t, out, 7)
	assert.Equal(t, "2025-03-09", out[0].Date)
	assert.Equal(t, 4, out[0].Count)
	assert.Equal(t, "2025-03-10", out[1].Date)
	assert.Equal(t, 0, out[1].Count, "un día sin filas debe aparecer con cero")
	assert.Equal(t, "2025-03-12", out[3].Date)
	assert.Equal(t, 2, out[3].Count)
	assert.Equal(t, "2025-03-15", out[6].Date, "la serie termina hoy")

	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), repo.gotSince,
		"since debe ser el primer día de la ventana")
}

func TestUsageTrend_DiasInvalidos_UsaDefault30(t *testing.T) {
	repo := &fakeDashboardRepo{}
	uc := NewDashboardUseCase(repo)
	uc.now = fixedNow

	out, err := uc.UsageTrend(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, out, 30)

	out, err = uc.UsageTrend(context.Background(), -5)
	require.NoError(t, err)
	assert.Len(t, out, 30)
}

func TestComposition_MapeaCategorias(t *testing.T) {
	repo := &fakeDashboardRepo{composition: []repository.CompositionPoint{
		{Category: entity.CategoryChemical, Count: 12},
		{Category: entity.CategoryMachine, Count: 4},
	}}
	uc := NewDashboardUseCase(repo)
	uc.now = fixedNow

	out, err := uc.Composition(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "CHEMICAL", out[0].Category)
	assert.Equal(t, 12, out[0].Count)
	assert.Equal(t, "MACHINE", out[1].Category)
}
