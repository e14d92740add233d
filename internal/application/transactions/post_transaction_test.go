package transactions_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cleanstock-api/internal/application/transactions"
	"github.com/tu-usuario/cleanstock-api/internal/domain"
	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
	"github.com/tu-usuario/cleanstock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: estado compartido + TxRunner con rollback por snapshot
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	items  map[string]*entity.Item
	assets map[string]*entity.Asset
	logs   []*entity.TransactionLog
}

func newMemState() *memState {
	return &memState{
		items:  map[string]*entity.Item{},
		assets: map[string]*entity.Asset{},
	}
}

func (s *memState) snapshot() *memState {
	cp := newMemState()
	for id, it := range s.items {
		c := *it
		cp.items[id] = &c
	}
	for id, a := range s.assets {
		c := *a
		cp.assets[id] = &c
	}
	cp.logs = append([]*entity.TransactionLog(nil), s.logs...)
	return cp
}

func (s *memState) restore(from *memState) {
	s.items = from.items
	s.assets = from.assets
	s.logs = from.logs
}

type memItemRepo struct{ s *memState }

func (r *memItemRepo) Create(item *entity.Item) error { r.s.items[item.ID] = item; return nil }
func (r *memItemRepo) GetByID(id string) (*entity.Item, error) {
	if it, ok := r.s.items[id]; ok {
		c := *it
		return &c, nil
	}
	return nil, nil
}
func (r *memItemRepo) GetByCode(string) (*entity.Item, error)     { return nil, nil }
func (r *memItemRepo) List() ([]*entity.Item, error)              { return nil, nil }
func (r *memItemRepo) Update(*entity.Item) error                  { return nil }
func (r *memItemRepo) Delete(string) error                        { return nil }
func (r *memItemRepo) ListCritical() ([]*entity.Item, error)      { return nil, nil }
func (r *memItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.GetByID(id)
}
func (r *memItemRepo) UpdateStock(id string, stock int) error {
	it, ok := r.s.items[id]
	if !ok {
		return domain.ErrItemNotFound
	}
	it.Stock = stock
	return nil
}

type memAssetRepo struct{ s *memState }

func (r *memAssetRepo) Create(a *entity.Asset) error { r.s.assets[a.ID] = a; return nil }
func (r *memAssetRepo) GetByID(id string) (*entity.Asset, error) {
	if a, ok := r.s.assets[id]; ok {
		c := *a
		return &c, nil
	}
	return nil, nil
}
func (r *memAssetRepo) List() ([]*entity.Asset, error)                    { return nil, nil }
func (r *memAssetRepo) Update(*entity.Asset) error                        { return nil }
func (r *memAssetRepo) Delete(string) error                               { return nil }
func (r *memAssetRepo) ListAvailableByItem(string) ([]*entity.Asset, error) { return nil, nil }
func (r *memAssetRepo) GetForUpdate(id string) (*entity.Asset, error) {
	return r.GetByID(id)
}
func (r *memAssetRepo) UpdateStatus(id string, status entity.AssetStatus) error {
	a, ok := r.s.assets[id]
	if !ok {
		return domain.ErrAssetNotFound
	}
	a.Status = status
	return nil
}

type memLogRepo struct{ s *memState }

func (r *memLogRepo) Create(log *entity.TransactionLog) error {
	r.s.logs = append(r.s.logs, log)
	return nil
}
func (r *memLogRepo) List() ([]*entity.TransactionLogDetail, error)       { return nil, nil }
func (r *memLogRepo) ListRecent(int) ([]*entity.TransactionLogDetail, error) { return nil, nil }
func (r *memLogRepo) ListByDateRange(time.Time, time.Time) ([]*entity.TransactionLogDetail, error) {
	return nil, nil
}

// memTxRunner emula la semántica Commit/Rollback: si fn falla se restaura
// el snapshot previo, igual que una transacción real de PostgreSQL.
type memTxRunner struct{ s *memState }

func (tr *memTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	assetRepo repository.AssetRepository,
	logRepo repository.TransactionLogRepository,
) error) error {
	snap := tr.s.snapshot()
	err := fn(&memItemRepo{s: tr.s}, &memAssetRepo{s: tr.s}, &memLogRepo{s: tr.s})
	if err != nil {
		tr.s.restore(snap)
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID  = "00000000-0000-0000-0000-0000000000aa"
	chemicalID  = "10000000-0000-0000-0000-000000000001"
	machineID   = "10000000-0000-0000-0000-000000000002"
	vacuumID    = "20000000-0000-0000-0000-000000000001"
	otherItemID = "10000000-0000-0000-0000-000000000099"
)

// seedState crea un desengrasante (KB001, stock 10) y una aspiradora con
// una unidad serializada VC001 disponible.
func seedState() *memState {
	s := newMemState()
	s.items[chemicalID] = &entity.Item{
		ID: chemicalID, Code: "KB001", Name: "Desengrasante industrial",
		Category: entity.CategoryChemical, Stock: 10, Unit: "litro", MinStock: 3,
	}
	s.items[machineID] = &entity.Item{
		ID: machineID, Code: "MS001", Name: "Aspiradora industrial",
		Category: entity.CategoryMachine, Stock: 0, Unit: "unidad",
	}
	s.assets[vacuumID] = &entity.Asset{
		ID: vacuumID, Serial: "VC001", Status: entity.AssetAvailable, ItemID: machineID,
	}
	return s
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func baseInput() transactions.PostInput {
	return transactions.PostInput{
		Requester: "Juan Pérez",
		Area:      "Piso 3 - Oficinas",
		UserID:    testUserID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Consumibles
// ──────────────────────────────────────────────────────────────────────────────

func TestPost_ConsumibleOUT_DescuentaStock(t *testing.T) {
	s := seedState()
	uc := transactions.NewPostTransactionUseCase(&memTxRunner{s: s})

	in := baseInput()
	in.Type = entity.MovementOUT
	in.ItemID = chemicalID
	in.Quantity = intPtr(4)

	entry, err := uc.Post(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 6, s.items[chemicalID].Stock, "stock debe bajar de 10 a 6")
	require.NotNil(t, entry.Quantity)
	assert.Equal(t, 4, *entry.Quantity)
	assert.Nil(t, entry.AssetID, "un consumible no referencia activo")
	assert.NotEmpty(t, entry.ID)
	require.Len(t, s.logs, 1, "debe quedar exactamente una entrada de historial")
}

func TestPost_ConsumibleOUT_StockInsuficiente_Rollback(t *testing.T) {
	s := seedState()
	uc := transactions.NewPostTransactionUseCase(&memTxRunner{s: s})

	in := baseInput()
	in.Type = entity.MovementOUT
	in.ItemID = chemicalID
	in.Quantity = intPtr(11) // stock es 10

	_, err := uc.Post(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, s.items[chemicalID].Stock, "el stock no debe cambiar")
	assert.Empty(t, s.logs, "una transacción rechazada no deja historial")
}

func TestPost_ConsumibleOUT_StockExacto_QuedaEnCero(t *testing.T) {
	s := seedState()
	uc := transactions.NewPostTransactionUseCase(&memTxRunner{s: s})

	in := baseInput()
	in.Type = entity.MovementOUT
	in.ItemID = chemicalID
	in.Quantity = intPtr(10)

	_, err := uc.Post(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 0, s.items[chemicalID].Stock)
}

func TestPost_ConsumibleIN_SumaStockSinTope(t *testing.T) {
	s := seedState()
	uc := transactions.NewPostTransactionUseCase(&memTxRunner{s: s})

	in := baseInput()
	in.Type = entity.MovementIN
	in.ItemID = chemicalID
	in.Quantity = intPtr(500) // el retorno puede superar lo emitido

	_, err := uc.Post(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 510, s.items[chemicalID].Stock)
}

func TestPost_Consumible_CantidadInvalida(t *testing.T) {
	cases := []struct {
		name string
		qty  *int
	}{
		{"sin jumlah", nil},
		{"jumlah cero", intPtr(0)},
		{"jumlah negativo", intPtr(-3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := seedState()
			uc := transactions.NewPostTransactionUseCase(&memTxRunner{s: s})

			in := baseInput()
			in.Type = entity.MovementOUT
			in.ItemID = chemicalID
			in.Quantity = tc.qty

			_, err := uc.Post(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
			assert.Empty(t, s.logs)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquinas serializadas
// ──────────────────────────────────────────────────────────────────────────────

func TestPost_MaquinaOUT_PrestaActivo(t *testing.T) {
	s := seedState()
	uc := transactions.NewPostTransactionUseCase(&memTxRunner{s: s})

	in := baseInput()
	in.Type = entity.MovementOUT
	in.ItemID = machineID
	in.AssetID = strPtr(vacuumID)
	in.Quantity = intPtr(1) // el motor lo ignora para máquinas

	entry, err := uc.Post(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, entity.AssetOnLoan, s.assets[vacuumID].Status)
	require.NotNil(t, entry.AssetID)
	assert.Equal(t, vacuumID, *entry.AssetID)
	assert.Nil(t, entry.Quantity, "jumlah se persiste NULL para máquinas")
}

func TestPost_MaquinaOUT_ActivoEnPrestamo_Rechaza(t *testing.T) {
	s := seedState()
	s.assets[vacuumID].Status = entity.AssetOnLoan
	uc := transactions.NewPostTransactionUseCase(&memTxRunner{s: s})

	in := baseInput()
	in.Type = entity.MovementOUT
	in.ItemID = machineID
	in.AssetID = strPtr(vacuumID)

	_, err := uc.Post(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrAssetUnavailable)
	assert.Equal(t, entity.AssetOnLoan, s.assets[vacuumID].Status, "el estado no debe cambiar")
	assert.Empty(t, s.logs)
}

func TestPost_MaquinaOUT_ActivoEnReparacion_Rechaza(t *testing.T) {
	s := seedState()
	s.assets[vacuumID].Status = entity.AssetUnderRepair
	uc := transactions.NewPostTransactionUseCase(&memTxRunner{s: s})

	in := baseInput()
	in.Type = entity.MovementOUT
	in.ItemID = machineID
	in.AssetID = strPtr(vacuumID)

	_, err := uc.Post(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrAssetUnavailable)
}

func TestPost_MaquinaOUT_SinAssetID(t *testing.T) {
	s := seedState()
	uc := transactions.NewPostTransactionUseCase(&memTxRunner{s: s})

	in := baseInput()
	in.Type = entity.MovementOUT
	in.ItemID = machineID

	_, err := uc.Post(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestPost_MaquinaOUT_ActivoDeOtroItem(t *testing.T) {
	s := seedState()
	s.items[otherItemID] = &entity.Item{
		ID: otherItemID, Code: "MS002", Name: "Pulidora",
		Category: entity.CategoryMachine, Unit: "unidad",
	}
	uc := transactions.NewPostTransactionUseCase(&memTxRunner{s: s})

	// El activo VC001 pertenece a la aspiradora, no a la pulidora.
	in := baseInput()
	in.Type = entity.MovementOUT
	in.ItemID = otherItemID
	in.AssetID = strPtr(vacuumID)

	_, err := uc.Post(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
	assert.Equal(t, entity.AssetAvailable, s.assets[vacuumID].Status)
}

func TestPost_MaquinaIN_DevuelveActivo(t *testing.T) {
	for _, prev := range []entity.AssetStatus{entity.AssetOnLoan, entity.AssetUnderRepair, entity.AssetAvailable} {
		t.Run(string(prev), func(t *testing.T) {
			s := seedState()
			s.assets[vacuumID].Status = prev
			uc := transactions.NewPostTransactionUseCase(&memTxRunner{s: s})

			in := baseInput()
			in.Type = entity.MovementIN
			in.ItemID = machineID
			in.AssetID = strPtr(vacuumID)

			entry, err := uc.Post(context.Background(), in)
			require.NoError(t, err)
			assert.Equal(t, entity.AssetAvailable, s.assets[vacuumID].Status,
				"el retorno deja el activo disponible sin importar el estado previo")
			assert.Nil(t, entry.Quantity)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones generales
// ──────────────────────────────────────────────────────────────────────────────

func TestPost_ItemInexistente(t *testing.T) {
	s := seedState()
	uc := transactions.NewPostTransactionUseCase(&memTxRunner{s: s})

	in := baseInput()
	in.Type = entity.MovementOUT
	in.ItemID = "99999999-0000-0000-0000-000000000000"
	in.Quantity = intPtr(1)

	_, err := uc.Post(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestPost_CamposObligatorios(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*transactions.PostInput)
	}{
		{"sin solicitante", func(in *transactions.PostInput) { in.Requester = "" }},
		{"sin área", func(in *transactions.PostInput) { in.Area = "" }},
		{"sin item", func(in *transactions.PostInput) { in.ItemID = "" }},
		{"sin usuario", func(in *transactions.PostInput) { in.UserID = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := seedState()
			uc := transactions.NewPostTransactionUseCase(&memTxRunner{s: s})

			in := baseInput()
			in.Type = entity.MovementOUT
			in.ItemID = chemicalID
			in.Quantity = intPtr(1)
			tc.mutate(&in)

			_, err := uc.Post(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestPost_TipoInvalido(t *testing.T) {
	s := seedState()
	uc := transactions.NewPostTransactionUseCase(&memTxRunner{s: s})

	in := baseInput()
	in.Type = entity.MovementType("TRANSFER")
	in.ItemID = chemicalID
	in.Quantity = intPtr(1)

	_, err := uc.Post(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
