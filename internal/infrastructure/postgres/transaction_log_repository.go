package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
	"github.com/tu-usuario/cleanstock-api/internal/domain/repository"
)

var _ repository.TransactionLogRepository = (*TransactionLogRepo)(nil)

// TransactionLogRepo implementación append-only del historial sobre PostgreSQL.
// Este adaptador no tiene UPDATE ni DELETE a propósito: el historial es inmutable.
type TransactionLogRepo struct {
	q Querier
}

// NewTransactionLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionLogRepository(q Querier) *TransactionLogRepo {
	return &TransactionLogRepo{q: q}
}

// Create inserta una entrada del historial. Solo lo invoca el motor de transacciones.
func (r *TransactionLogRepo) Create(log *entity.TransactionLog) error {
	query := `
		INSERT INTO transaction_logs (id, tanggal_permintaan, nama_peminta, area_kebutuhan, jumlah, tipe, barang_id, aset_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.RequestedAt, log.Requester, log.Area, log.Quantity,
		log.Type, log.ItemID, log.AssetID, log.UserID, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction log: %w", err)
	}
	return nil
}

const detailQuery = `
	SELECT t.id, t.tanggal_permintaan, t.nama_peminta, t.area_kebutuhan, t.jumlah, t.tipe,
	       t.barang_id, t.aset_id, t.user_id, t.created_at,
	       i.id, i.kode_barang, i.nama_barang, i.kategori, i.stok, i.satuan, i.batas_minimum_stok, i.created_at, i.updated_at,
	       a.id, a.nomor_seri, a.status, a.barang_id, a.created_at, a.updated_at,
	       u.id, u.email, u.name, u.role, u.created_at, u.updated_at
	FROM transaction_logs t
	JOIN items i      ON i.id = t.barang_id
	LEFT JOIN assets a ON a.id = t.aset_id
	JOIN users u      ON u.id = t.user_id`

// List devuelve el historial completo unido con item, activo y usuario.
func (r *TransactionLogRepo) List() ([]*entity.TransactionLogDetail, error) {
	rows, err := r.q.Query(context.Background(),
		detailQuery+` ORDER BY t.tanggal_permintaan DESC`)
	if err != nil {
		return nil, fmt.Errorf("list transaction logs: %w", err)
	}
	return scanDetails(rows)
}

// ListRecent devuelve las últimas n entradas.
func (r *TransactionLogRepo) ListRecent(n int) ([]*entity.TransactionLogDetail, error) {
	rows, err := r.q.Query(context.Background(),
		detailQuery+` ORDER BY t.tanggal_permintaan DESC LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("list recent transaction logs: %w", err)
	}
	return scanDetails(rows)
}

// ListByDateRange devuelve las entradas dentro de [start, end], ambos inclusive.
func (r *TransactionLogRepo) ListByDateRange(start, end time.Time) ([]*entity.TransactionLogDetail, error) {
	rows, err := r.q.Query(context.Background(),
		detailQuery+` WHERE t.tanggal_permintaan BETWEEN $1 AND $2 ORDER BY t.tanggal_permintaan DESC`,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("list transaction logs by range: %w", err)
	}
	return scanDetails(rows)
}

func scanDetails(rows pgx.Rows) ([]*entity.TransactionLogDetail, error) {
	defer rows.Close()
	var list []*entity.TransactionLogDetail
	for rows.Next() {
		var d entity.TransactionLogDetail
		// Columnas del activo: anulables por el LEFT JOIN.
		var (
			assetID, assetSerial, assetStatus, assetItemID *string
			assetCreated, assetUpdated                     *time.Time
		)
		if err := rows.Scan(
			&d.ID, &d.RequestedAt, &d.Requester, &d.Area, &d.Quantity, &d.Type,
			&d.ItemID, &d.AssetID, &d.UserID, &d.CreatedAt,
			&d.Item.ID, &d.Item.Code, &d.Item.Name, &d.Item.Category, &d.Item.Stock,
			&d.Item.Unit, &d.Item.MinStock, &d.Item.CreatedAt, &d.Item.UpdatedAt,
			&assetID, &assetSerial, &assetStatus, &assetItemID, &assetCreated, &assetUpdated,
			&d.User.ID, &d.User.Email, &d.User.Name, &d.User.Role, &d.User.CreatedAt, &d.User.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction log: %w", err)
		}
		if assetID != nil {
			d.Asset = &entity.Asset{
				ID:        *assetID,
				Serial:    *assetSerial,
				Status:    entity.AssetStatus(*assetStatus),
				ItemID:    *assetItemID,
				CreatedAt: *assetCreated,
				UpdatedAt: *assetUpdated,
			}
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
