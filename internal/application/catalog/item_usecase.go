package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/cleanstock-api/internal/application/dto"
	"github.com/tu-usuario/cleanstock-api/internal/domain"
	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
	"github.com/tu-usuario/cleanstock-api/internal/domain/repository"
)

// ItemUseCase CRUD de artículos del catálogo. El stock solo cambia aquí por
// edición administrativa; los movimientos pasan por el motor de transacciones.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un artículo. kodeBarang debe ser único.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	category := entity.Category(in.Category)
	if in.Code == "" || in.Name == "" || in.Unit == "" || !category.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.Item{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		Category:  category,
		Stock:     in.Stock,
		Unit:      in.Unit,
		MinStock:  in.MinStock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo. nil si no existe.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// List devuelve todos los artículos.
func (uc *ItemUseCase) List() ([]dto.ItemResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// Update actualización parcial. kodeBarang es inmutable.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		category := entity.Category(*in.Category)
		if !category.Valid() {
			return nil, domain.ErrInvalidInput
		}
		item.Category = category
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Stock = *in.Stock
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.MinStock = *in.MinStock
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un artículo. ErrNotFound si el id no existe.
func (uc *ItemUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ListCritical devuelve los consumibles en o bajo su umbral mínimo.
func (uc *ItemUseCase) ListCritical() ([]dto.ItemResponse, error) {
	items, err := uc.repo.ListCritical()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:        i.ID,
		Code:      i.Code,
		Name:      i.Name,
		Category:  string(i.Category),
		Stock:     i.Stock,
		Unit:      i.Unit,
		MinStock:  i.MinStock,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
