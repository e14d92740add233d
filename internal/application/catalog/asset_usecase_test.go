package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cleanstock-api/internal/application/catalog"
	"github.com/tu-usuario/cleanstock-api/internal/application/dto"
	"github.com/tu-usuario/cleanstock-api/internal/domain"
	"github.com/tu-usuario/cleanstock-api/internal/domain/entity"
)

type stubAssetRepo struct {
	assets map[string]*entity.Asset
}

func newStubAssetRepo() *stubAssetRepo {
	return &stubAssetRepo{assets: map[string]*entity.Asset{}}
}

func (r *stubAssetRepo) Create(a *entity.Asset) error { r.assets[a.ID] = a; return nil }
func (r *stubAssetRepo) GetByID(id string) (*entity.Asset, error) {
	if a, ok := r.assets[id]; ok {
		c := *a
		return &c, nil
	}
	return nil, nil
}
func (r *stubAssetRepo) List() ([]*entity.Asset, error) {
	out := make([]*entity.Asset, 0, len(r.assets))
	for _, a := range r.assets {
		out = append(out, a)
	}
	return out, nil
}
func (r *stubAssetRepo) Update(a *entity.Asset) error {
	if _, ok := r.assets[a.ID]; !ok {
		return domain.ErrNotFound
	}
	r.assets[a.ID] = a
	return nil
}
func (r *stubAssetRepo) Delete(id string) error {
	if _, ok := r.assets[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.assets, id)
	return nil
}
func (r *stubAssetRepo) ListAvailableByItem(itemID string) ([]*entity.Asset, error) {
	var out []*entity.Asset
	for _, a := range r.assets {
		if a.ItemID == itemID && a.Status == entity.AssetAvailable {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *stubAssetRepo) GetForUpdate(id string) (*entity.Asset, error) { return r.GetByID(id) }
func (r *stubAssetRepo) UpdateStatus(id string, status entity.AssetStatus) error {
	a, ok := r.assets[id]
	if !ok {
		return domain.ErrAssetNotFound
	}
	a.Status = status
	return nil
}

// seedCatalog deja una máquina y un químico en el repo de items.
func seedCatalog(t *testing.T) (*catalog.AssetUseCase, *stubAssetRepo, string, string) {
	t.Helper()
	itemRepo := newStubItemRepo()
	itemRepo.items["machine-1"] = &entity.Item{
		ID: "machine-1", Code: "MS001", Name: "Aspiradora industrial",
		Category: entity.CategoryMachine, Unit: "unidad",
	}
	itemRepo.items["chem-1"] = &entity.Item{
		ID: "chem-1", Code: "KB001", Name: "Cloro",
		Category: entity.CategoryChemical, Stock: 10, Unit: "litro",
	}
	assetRepo := newStubAssetRepo()
	return catalog.NewAssetUseCase(assetRepo, itemRepo), assetRepo, "machine-1", "chem-1"
}

func TestAssetCreate_NaceDisponible(t *testing.T) {
	uc, _, machineID, _ := seedCatalog(t)

	out, err := uc.Create(dto.CreateAssetRequest{Serial: "VC001", ItemID: machineID})
	require.NoError(t, err)

	assert.Equal(t, "VC001", out.Serial)
	assert.Equal(t, "AVAILABLE", out.Status, "todo activo nuevo nace AVAILABLE")
	assert.Equal(t, machineID, out.ItemID)
}

func TestAssetCreate_ItemNoEsMaquina(t *testing.T) {
	uc, _, _, chemID := seedCatalog(t)

	_, err := uc.Create(dto.CreateAssetRequest{Serial: "VC001", ItemID: chemID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"solo los items MACHINE pueden tener activos serializados")
}

func TestAssetCreate_ItemInexistente(t *testing.T) {
	uc, _, _, _ := seedCatalog(t)

	_, err := uc.Create(dto.CreateAssetRequest{Serial: "VC001", ItemID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestAssetUpdate_MarcaEnReparacion(t *testing.T) {
	uc, repo, machineID, _ := seedCatalog(t)

	created, err := uc.Create(dto.CreateAssetRequest{Serial: "VC001", ItemID: machineID})
	require.NoError(t, err)

	status := "UNDER_REPAIR"
	out, err := uc.Update(created.ID, dto.UpdateAssetRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, "UNDER_REPAIR", out.Status)
	assert.Equal(t, entity.AssetUnderRepair, repo.assets[created.ID].Status)
}

func TestAssetUpdate_EstadoInvalido(t *testing.T) {
	uc, _, machineID, _ := seedCatalog(t)

	created, err := uc.Create(dto.CreateAssetRequest{Serial: "VC001", ItemID: machineID})
	require.NoError(t, err)

	status := "BROKEN"
	_, err = uc.Update(created.ID, dto.UpdateAssetRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssetListAvailableByItem_FiltraPorEstado(t *testing.T) {
	uc, repo, machineID, _ := seedCatalog(t)

	a, err := uc.Create(dto.CreateAssetRequest{Serial: "VC001", ItemID: machineID})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateAssetRequest{Serial: "VC002", ItemID: machineID})
	require.NoError(t, err)
	repo.assets[a.ID].Status = entity.AssetOnLoan

	out, err := uc.ListAvailableByItem(machineID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "VC002", out[0].Serial)
}
