package entity

import "time"

// MovementType sentido de un movimiento de inventario.
type MovementType string

// Tipos de movimiento. En el API se aceptan también los alias históricos
// KELUAR (salida) y MASUK (retorno) del sistema anterior.
const (
	MovementOUT MovementType = "OUT" // salida / préstamo
	MovementIN  MovementType = "IN"  // retorno
)

// Valid reporta si el tipo es OUT o IN.
func (m MovementType) Valid() bool {
	return m == MovementOUT || m == MovementIN
}

// TransactionLog es una entrada del historial de movimientos. Es inmutable:
// el repositorio solo expone inserción y lecturas, nunca UPDATE ni DELETE.
type TransactionLog struct {
	ID          string
	RequestedAt time.Time // tanggal_permintaan
	Requester   string    // nama_peminta
	Area        string    // area_kebutuhan
	Quantity    *int      // jumlah; solo consumibles, NULL para máquinas
	Type        MovementType
	ItemID      string
	AssetID     *string // solo movimientos de máquinas
	UserID      string  // usuario que registró el movimiento
	CreatedAt   time.Time
}

// TransactionLogDetail entrada del historial unida con sus referencias,
// para listados y reportes.
type TransactionLogDetail struct {
	TransactionLog
	Item  Item
	Asset *Asset
	User  User
}
