package dto

import "time"

// Los nombres JSON conservan el contrato del sistema anterior
// (kodeBarang, namaBarang, ...) para no romper el frontend existente.

// CreateItemRequest entrada para crear un artículo.
type CreateItemRequest struct {
	Code     string `json:"kodeBarang" validate:"required,min=1,max=100"`
	Name     string `json:"namaBarang" validate:"required,min=1,max=255"`
	Category string `json:"kategori" validate:"required,oneof=CHEMICAL EQUIPMENT MACHINE"`
	Stock    int    `json:"stok" validate:"min=0"`
	Unit     string `json:"satuan" validate:"required,max=50"`
	MinStock int    `json:"batasMinimumStok" validate:"min=0"`
}

// UpdateItemRequest entrada para actualización parcial de un artículo.
// kodeBarang es inmutable y no se acepta aquí.
type UpdateItemRequest struct {
	Name     *string `json:"namaBarang"`
	Category *string `json:"kategori"`
	Stock    *int    `json:"stok"`
	Unit     *string `json:"satuan"`
	MinStock *int    `json:"batasMinimumStok"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"kodeBarang"`
	Name      string    `json:"namaBarang"`
	Category  string    `json:"kategori"`
	Stock     int       `json:"stok"`
	Unit      string    `json:"satuan"`
	MinStock  int       `json:"batasMinimumStok"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
