package entity

import "time"

// AssetStatus estado de una unidad física de máquina.
type AssetStatus string

// Estados válidos para Asset. AVAILABLE ⇄ ON_LOAN lo maneja el motor de
// transacciones; UNDER_REPAIR solo se fija desde la gestión de catálogo.
const (
	AssetAvailable   AssetStatus = "AVAILABLE"
	AssetOnLoan      AssetStatus = "ON_LOAN"
	AssetUnderRepair AssetStatus = "UNDER_REPAIR"
)

// Valid reporta si el estado es uno de los conocidos.
func (s AssetStatus) Valid() bool {
	switch s {
	case AssetAvailable, AssetOnLoan, AssetUnderRepair:
		return true
	}
	return false
}

// Asset representa una unidad física serializada de un Item de categoría MACHINE.
type Asset struct {
	ID        string
	Serial    string // nomor_seri, único
	Status    AssetStatus
	ItemID    string // barang_id, siempre referencia un Item MACHINE
	CreatedAt time.Time
	UpdatedAt time.Time
}
