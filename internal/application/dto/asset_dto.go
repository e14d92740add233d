package dto

import "time"

// CreateAssetRequest entrada para crear un activo. El item referido debe
// ser de categoría MACHINE; el estado inicial siempre es AVAILABLE.
type CreateAssetRequest struct {
	Serial string `json:"nomorSeri" validate:"required,min=1,max=100"`
	ItemID string `json:"barangId" validate:"required,uuid"`
}

// UpdateAssetRequest entrada para actualización parcial de un activo.
// status permite marcar UNDER_REPAIR desde la gestión de catálogo.
type UpdateAssetRequest struct {
	Serial *string `json:"nomorSeri"`
	Status *string `json:"status"`
	ItemID *string `json:"barangId"`
}

// AssetResponse salida de un activo.
type AssetResponse struct {
	ID        string    `json:"id"`
	Serial    string    `json:"nomorSeri"`
	Status    string    `json:"status"`
	ItemID    string    `json:"barangId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
