package repository

import "github.com/tu-usuario/cleanstock-api/internal/domain/entity"

// AssetRepository define el puerto de persistencia para Asset (DIP).
type AssetRepository interface {
	Create(asset *entity.Asset) error
	GetByID(id string) (*entity.Asset, error)
	List() ([]*entity.Asset, error)
	// Update persiste la fila completa. Devuelve domain.ErrNotFound si el id no existe.
	Update(asset *entity.Asset) error
	Delete(id string) error
	// ListAvailableByItem devuelve los activos AVAILABLE de un item.
	ListAvailableByItem(itemID string) ([]*entity.Asset, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Asset, error)
	// UpdateStatus actualiza únicamente el estado (usado por el motor de transacciones).
	UpdateStatus(id string, status entity.AssetStatus) error
}
