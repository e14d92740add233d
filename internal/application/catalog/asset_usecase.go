package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/cleanstock-api/internal/application/dto"
	"github.com/tu-usuario/cleanstock-api/internal/domain"
	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
	"github.com/tu-usuario/cleanstock-api/internal/domain/repository"
)

// AssetUseCase CRUD de activos serializados. El ciclo AVAILABLE ⇄ ON_LOAN lo
// maneja el motor de transacciones; aquí solo la gestión de catálogo
// (alta, baja, UNDER_REPAIR).
type AssetUseCase struct {
	repo     repository.AssetRepository
	itemRepo repository.ItemRepository
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(repo repository.AssetRepository, itemRepo repository.ItemRepository) *AssetUseCase {
	return &AssetUseCase{repo: repo, itemRepo: itemRepo}
}

// Create crea un activo en estado AVAILABLE. El item debe existir y ser MACHINE.
func (uc *AssetUseCase) Create(in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if in.Serial == "" || in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkMachineItem(in.ItemID); err != nil {
		return nil, err
	}
	now := time.Now()
	asset := &entity.Asset{
		ID:        uuid.New().String(),
		Serial:    in.Serial,
		Status:    entity.AssetAvailable,
		ItemID:    in.ItemID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(asset); err != nil {
		return nil, err
	}
	return toAssetResponse(asset), nil
}

// GetByID obtiene un activo. nil si no existe.
func (uc *AssetUseCase) GetByID(id string) (*dto.AssetResponse, error) {
	asset, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, nil
	}
	return toAssetResponse(asset), nil
}

// List devuelve todos los activos.
func (uc *AssetUseCase) List() ([]dto.AssetResponse, error) {
	assets, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, *toAssetResponse(a))
	}
	return out, nil
}

// Update actualización parcial. Cambiar status aquí es la única vía para
// marcar UNDER_REPAIR (el motor nunca lo fija).
func (uc *AssetUseCase) Update(id string, in dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	if in.Serial != nil {
		asset.Serial = *in.Serial
	}
	if in.Status != nil {
		status := entity.AssetStatus(*in.Status)
		if !status.Valid() {
			return nil, domain.ErrInvalidInput
		}
		asset.Status = status
	}
	if in.ItemID != nil {
		if err := uc.checkMachineItem(*in.ItemID); err != nil {
			return nil, err
		}
		asset.ItemID = *in.ItemID
	}
	asset.UpdatedAt = time.Now()
	if err := uc.repo.Update(asset); err != nil {
		return nil, err
	}
	return toAssetResponse(asset), nil
}

// Delete elimina un activo. ErrNotFound si el id no existe.
func (uc *AssetUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ListAvailableByItem devuelve los activos AVAILABLE de un item.
func (uc *AssetUseCase) ListAvailableByItem(itemID string) ([]dto.AssetResponse, error) {
	assets, err := uc.repo.ListAvailableByItem(itemID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, *toAssetResponse(a))
	}
	return out, nil
}

// checkMachineItem valida que el item exista y sea de categoría MACHINE.
func (uc *AssetUseCase) checkMachineItem(itemID string) error {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrItemNotFound
	}
	if item.Category != entity.CategoryMachine {
		return domain.ErrInvalidInput
	}
	return nil
}

func toAssetResponse(a *entity.Asset) *dto.AssetResponse {
	return &dto.AssetResponse{
		ID:        a.ID,
		Serial:    a.Serial,
		Status:    string(a.Status),
		ItemID:    a.ItemID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
