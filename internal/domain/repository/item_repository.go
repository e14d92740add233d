package repository

import "github.com/tu-usuario/cleanstock-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
// Sin validación de negocio: eso corresponde al motor de transacciones
// y a los casos de uso de catálogo.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByCode(code string) (*entity.Item, error)
	List() ([]*entity.Item, error)
	// Update persiste la fila completa. Devuelve domain.ErrNotFound si el id no existe.
	Update(item *entity.Item) error
	Delete(id string) error
	// ListCritical devuelve los consumibles con stok <= batas_minimum_stok.
	// Excluye MACHINE sin importar su campo stock.
	ListCritical() ([]*entity.Item, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Item, error)
	// UpdateStock actualiza únicamente el stock (usado por el motor de transacciones).
	UpdateStock(id string, stock int) error
}
