package transactions

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/cleanstock-api/internal/domain"
	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
	"github.com/tu-usuario/cleanstock-api/internal/domain/repository"
	"github.com/tu-usuario/cleanstock-api/pkg/metrics"
)

// PostTransactionUseCase registra un movimiento (salida o retorno) de forma
// transaccional: bloquea la fila del item/activo (SELECT FOR UPDATE), valida
// contra ese estado, aplica la mutación y anota el historial con Commit o
// Rollback. Sin entrada de historial no hay mutación y viceversa.
type PostTransactionUseCase struct {
	txRunner TxRunner
}

// NewPostTransactionUseCase construye el caso de uso.
func NewPostTransactionUseCase(txRunner TxRunner) *PostTransactionUseCase {
	return &PostTransactionUseCase{txRunner: txRunner}
}

// PostInput entrada para registrar un movimiento. UserID viene del token,
// nunca de estado ambiente.
type PostInput struct {
	Requester string
	Area      string
	Quantity  *int // requerido > 0 para consumibles; ignorado para máquinas
	Type      entity.MovementType
	ItemID    string
	AssetID   *string // requerido para máquinas; ignorado para consumibles
	UserID    string
}

// Post valida y registra el movimiento. Devuelve la entrada de historial creada.
//
// Reglas por categoría del item:
//   - consumible + OUT: jumlah > 0 y stok >= jumlah; stok -= jumlah
//   - consumible + IN:  jumlah > 0; stok += jumlah (sin tope superior)
//   - máquina + OUT: activo del item en estado AVAILABLE; pasa a ON_LOAN
//   - máquina + IN:  activo del item, cualquier estado; pasa a AVAILABLE
func (uc *PostTransactionUseCase) Post(ctx context.Context, input PostInput) (*entity.TransactionLog, error) {
	if input.Requester == "" || input.Area == "" || input.ItemID == "" || input.UserID == "" {
		metrics.TransactionsRejected.WithLabelValues("invalid_input").Inc()
		return nil, domain.ErrInvalidInput
	}
	if !input.Type.Valid() {
		metrics.TransactionsRejected.WithLabelValues("invalid_input").Inc()
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	entry := &entity.TransactionLog{
		ID:          uuid.New().String(),
		RequestedAt: now,
		Requester:   input.Requester,
		Area:        input.Area,
		Type:        input.Type,
		ItemID:      input.ItemID,
		UserID:      input.UserID,
		CreatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		assetRepo repository.AssetRepository,
		logRepo repository.TransactionLogRepository,
	) error {
		// Bloquea la fila del item; la validación corre contra este snapshot.
		item, err := itemRepo.GetForUpdate(input.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}

		switch item.Category.Kind() {
		case entity.KindConsumable:
			if err := uc.applyConsumable(itemRepo, item, input, entry); err != nil {
				return err
			}
		case entity.KindMachine:
			if err := uc.applyMachine(assetRepo, item, input, entry); err != nil {
				return err
			}
		}

		return logRepo.Create(entry)
	})
	if err != nil {
		metrics.TransactionsRejected.WithLabelValues(rejectionReason(err)).Inc()
		return nil, err
	}

	metrics.TransactionsPosted.WithLabelValues(string(input.Type)).Inc()
	return entry, nil
}

// applyConsumable maneja CHEMICAL y EQUIPMENT: movimiento por stock agregado.
func (uc *PostTransactionUseCase) applyConsumable(
	itemRepo repository.ItemRepository,
	item *entity.Item,
	input PostInput,
	entry *entity.TransactionLog,
) error {
	if input.Quantity == nil || *input.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	qty := *input.Quantity

	newStock := item.Stock
	switch input.Type {
	case entity.MovementOUT:
		if item.Stock < qty {
			return domain.ErrInsufficientStock
		}
		newStock -= qty
	case entity.MovementIN:
		// Los retornos no tienen tope: pueden superar lo emitido.
		newStock += qty
	}

	if err := itemRepo.UpdateStock(item.ID, newStock); err != nil {
		return err
	}
	entry.Quantity = &qty
	return nil
}

// applyMachine maneja MACHINE: movimiento por unidad serializada (Asset).
// jumlah se persiste NULL aunque el caller lo envíe.
func (uc *PostTransactionUseCase) applyMachine(
	assetRepo repository.AssetRepository,
	item *entity.Item,
	input PostInput,
	entry *entity.TransactionLog,
) error {
	if input.AssetID == nil || *input.AssetID == "" {
		return domain.ErrAssetNotFound
	}
	asset, err := assetRepo.GetForUpdate(*input.AssetID)
	if err != nil {
		return err
	}
	if asset == nil || asset.ItemID != item.ID {
		return domain.ErrAssetNotFound
	}

	switch input.Type {
	case entity.MovementOUT:
		if asset.Status != entity.AssetAvailable {
			return domain.ErrAssetUnavailable
		}
		if err := assetRepo.UpdateStatus(asset.ID, entity.AssetOnLoan); err != nil {
			return err
		}
	case entity.MovementIN:
		// El retorno acepta cualquier estado previo.
		if err := assetRepo.UpdateStatus(asset.ID, entity.AssetAvailable); err != nil {
			return err
		}
	}

	entry.AssetID = &asset.ID
	return nil
}

// rejectionReason etiqueta de métrica para un error del motor.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return "item_not_found"
	case errors.Is(err, domain.ErrAssetNotFound):
		return "asset_not_found"
	case errors.Is(err, domain.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrAssetUnavailable):
		return "asset_unavailable"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}
