package dto

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	TotalItems          int `json:"totalItems"`
	AssetsOnLoan        int `json:"assetsOnLoan"`
	CriticalStock       int `json:"criticalStock"`
	MonthlyTransactions int `json:"monthlyTransactions"`
}

// TrendPointDTO un punto de la serie de uso diario (salidas OUT).
type TrendPointDTO struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// CompositionPointDTO conteo de items de una categoría.
type CompositionPointDTO struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
