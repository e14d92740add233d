package transactions

import (
	"context"

	"github.com/tu-usuario/cleanstock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor:
// validar, mutar stock/estado y anotar el historial es todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		assetRepo repository.AssetRepository,
		logRepo repository.TransactionLogRepository,
	) error) error
}
