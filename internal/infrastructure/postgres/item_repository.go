package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cleanstock-api/internal/domain"
	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
	"github.com/tu-usuario/cleanstock-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
// Las columnas conservan los nombres del esquema original (kode_barang, stok, ...).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, kode_barang, nama_barang, kategori, stok, satuan, batas_minimum_stok, created_at, updated_at`

// Create persiste un nuevo item.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, kode_barang, nama_barang, kategori, stok, satuan, batas_minimum_stok, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Name, item.Category, item.Stock, item.Unit,
		item.MinStock, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID. nil si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.get(`SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
}

// GetByCode obtiene un item por kode_barang. nil si no existe.
func (r *ItemRepo) GetByCode(code string) (*entity.Item, error) {
	return r.get(`SELECT `+itemColumns+` FROM items WHERE kode_barang = $1`, code)
}

// GetForUpdate obtiene un item y bloquea la fila (SELECT FOR UPDATE) para el
// motor de transacciones.
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.get(`SELECT `+itemColumns+` FROM items WHERE id = $1 FOR UPDATE`, id)
}

func (r *ItemRepo) get(query, arg string) (*entity.Item, error) {
	var i entity.Item
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&i.ID, &i.Code, &i.Name, &i.Category, &i.Stock, &i.Unit,
		&i.MinStock, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// List devuelve todos los items, más recientes primero.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	return r.list(`SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC`)
}

// ListCritical devuelve los consumibles con stok <= batas_minimum_stok.
// Excluye MACHINE sin importar su campo stok.
func (r *ItemRepo) ListCritical() ([]*entity.Item, error) {
	return r.list(`
		SELECT ` + itemColumns + `
		FROM items
		WHERE stok <= batas_minimum_stok
		  AND kategori IN ('CHEMICAL', 'EQUIPMENT')
		ORDER BY stok - batas_minimum_stok ASC`)
}

func (r *ItemRepo) list(query string) ([]*entity.Item, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var items []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.Code, &i.Name, &i.Category, &i.Stock, &i.Unit,
			&i.MinStock, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, &i)
	}
	return items, rows.Err()
}

// Update persiste la fila completa. kode_barang no se toca: es inmutable.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET nama_barang = $2, kategori = $3, stok = $4, satuan = $5, batas_minimum_stok = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Stock, item.Unit, item.MinStock, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock actualiza solo el stock (usado por el motor de transacciones).
func (r *ItemRepo) UpdateStock(id string, stock int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE items SET stok = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update item stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// Delete elimina un item por ID. ErrNotFound si no existe.
func (r *ItemRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
