package transactions

import (
	"time"

	"github.com/tu-usuario/cleanstock-api/internal/application/dto"
	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
	"github.com/tu-usuario/cleanstock-api/internal/domain/repository"
)

// QueryUseCase lecturas del historial de movimientos para listados.
type QueryUseCase struct {
	logRepo repository.TransactionLogRepository
}

// NewQueryUseCase construye el caso de uso de consulta.
func NewQueryUseCase(logRepo repository.TransactionLogRepository) *QueryUseCase {
	return &QueryUseCase{logRepo: logRepo}
}

// List devuelve el historial completo, más reciente primero.
func (uc *QueryUseCase) List() ([]dto.TransactionDetailResponse, error) {
	rows, err := uc.logRepo.List()
	if err != nil {
		return nil, err
	}
	return toDetailResponses(rows), nil
}

// Recent devuelve las últimas n entradas.
func (uc *QueryUseCase) Recent(n int) ([]dto.TransactionDetailResponse, error) {
	if n <= 0 {
		n = 5
	}
	rows, err := uc.logRepo.ListRecent(n)
	if err != nil {
		return nil, err
	}
	return toDetailResponses(rows), nil
}

// ByDateRange devuelve las entradas con fecha de solicitud dentro de
// [start, end], ambos inclusive.
func (uc *QueryUseCase) ByDateRange(start, end time.Time) ([]dto.TransactionDetailResponse, error) {
	rows, err := uc.logRepo.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return toDetailResponses(rows), nil
}

// ── Mapeo entidad → DTO ───────────────────────────────────────────────────────

// ToResponse convierte una entrada de historial a DTO.
func ToResponse(t *entity.TransactionLog) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          t.ID,
		RequestedAt: t.RequestedAt,
		Requester:   t.Requester,
		Area:        t.Area,
		Quantity:    t.Quantity,
		Type:        string(t.Type),
		ItemID:      t.ItemID,
		AssetID:     t.AssetID,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
	}
}

func toDetailResponses(rows []*entity.TransactionLogDetail) []dto.TransactionDetailResponse {
	out := make([]dto.TransactionDetailResponse, 0, len(rows))
	for _, r := range rows {
		d := dto.TransactionDetailResponse{
			TransactionResponse: ToResponse(&r.TransactionLog),
			Item: dto.ItemResponse{
				ID:        r.Item.ID,
				Code:      r.Item.Code,
				Name:      r.Item.Name,
				Category:  string(r.Item.Category),
				Stock:     r.Item.Stock,
				Unit:      r.Item.Unit,
				MinStock:  r.Item.MinStock,
				CreatedAt: r.Item.CreatedAt,
				UpdatedAt: r.Item.UpdatedAt,
			},
			User: dto.UserResponse{
				ID:        r.User.ID,
				Email:     r.User.Email,
				Name:      r.User.Name,
				Role:      r.User.Role,
				CreatedAt: r.User.CreatedAt,
			},
		}
		if r.Asset != nil {
			d.Asset = &dto.AssetResponse{
				ID:        r.Asset.ID,
				Serial:    r.Asset.Serial,
				Status:    string(r.Asset.Status),
				ItemID:    r.Asset.ItemID,
				CreatedAt: r.Asset.CreatedAt,
				UpdatedAt: r.Asset.UpdatedAt,
			}
		}
		out = append(out, d)
	}
	return out
}
