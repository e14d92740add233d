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

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo implementación del puerto AssetRepository sobre PostgreSQL (usable con pool o tx).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador de persistencia para activos. Pasar pool o tx (Querier).
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

const assetColumns = `id, nomor_seri, status, barang_id, created_at, updated_at`

// Create persiste un nuevo activo.
func (r *AssetRepo) Create(asset *entity.Asset) error {
	query := `
		INSERT INTO assets (id, nomor_seri, status, barang_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.Serial, asset.Status, asset.ItemID, asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetByID obtiene un activo por ID. nil si no existe.
func (r *AssetRepo) GetByID(id string) (*entity.Asset, error) {
	return r.get(`SELECT ` + assetColumns + ` FROM assets WHERE id = $1`, id)
}

// GetForUpdate obtiene un activo y bloquea la fila (SELECT FOR UPDATE) para el
// motor de transacciones.
func (r *AssetRepo) GetForUpdate(id string) (*entity.Asset, error) {
	return r.get(`SELECT `+assetColumns+` FROM assets WHERE id = $1 FOR UPDATE`, id)
}

func (r *AssetRepo) get(query, arg string) (*entity.Asset, error) {
	var a entity.Asset
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.Serial, &a.Status, &a.ItemID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return &a, nil
}

// List devuelve todos los activos, más recientes primero.
func (r *AssetRepo) List() ([]*entity.Asset, error) {
	return r.list(`SELECT ` + assetColumns + ` FROM assets ORDER BY created_at DESC`)
}

// ListAvailableByItem devuelve los activos AVAILABLE de un item.
func (r *AssetRepo) ListAvailableByItem(itemID string) ([]*entity.Asset, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+assetColumns+` FROM assets WHERE barang_id = $1 AND status = 'AVAILABLE' ORDER BY nomor_seri`,
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("list available assets: %w", err)
	}
	return scanAssets(rows)
}

func (r *AssetRepo) list(query string) ([]*entity.Asset, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return scanAssets(rows)
}

func scanAssets(rows pgx.Rows) ([]*entity.Asset, error) {
	defer rows.Close()
	var assets []*entity.Asset
	for rows.Next() {
		var a entity.Asset
		if err := rows.Scan(&a.ID, &a.Serial, &a.Status, &a.ItemID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		assets = append(assets, &a)
	}
	return assets, rows.Err()
}

// Update persiste la fila completa. ErrNotFound si el id no existe.
func (r *AssetRepo) Update(asset *entity.Asset) error {
	query := `
		UPDATE assets
		SET nomor_seri = $2, status = $3, barang_id = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.Serial, asset.Status, asset.ItemID, asset.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update asset: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus actualiza solo el estado (usado por el motor de transacciones).
func (r *AssetRepo) UpdateStatus(id string, status entity.AssetStatus) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE assets SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update asset status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

// Delete elimina un activo por ID. ErrNotFound si no existe.
func (r *AssetRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
