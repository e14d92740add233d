package dto

import "time"

// PostTransactionRequest body para POST /api/transactions.
// tipe acepta OUT/IN y los alias históricos KELUAR/MASUK.
type PostTransactionRequest struct {
	Requester string `json:"namaPeminta" validate:"required,min=1,max=255"`
	Area      string `json:"areaKebutuhan" validate:"required,min=1,max=255"`
	Quantity  *int   `json:"jumlah,omitempty"`
	Type      string `json:"tipe" validate:"required"`
	ItemID    string `json:"barangId" validate:"required,uuid"`
	AssetID   *string `json:"asetId,omitempty"`
}

// TransactionResponse salida de una entrada del historial.
type TransactionResponse struct {
	ID          string    `json:"id"`
	RequestedAt time.Time `json:"tanggalPermintaan"`
	Requester   string    `json:"namaPeminta"`
	Area        string    `json:"areaKebutuhan"`
	Quantity    *int      `json:"jumlah"`
	Type        string    `json:"tipe"`
	ItemID      string    `json:"barangId"`
	AssetID     *string   `json:"asetId"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TransactionDetailResponse entrada del historial con sus referencias
// resueltas, para listados y reportes.
type TransactionDetailResponse struct {
	TransactionResponse
	Item  ItemResponse   `json:"item"`
	Asset *AssetResponse `json:"asset,omitempty"`
	User  UserResponse   `json:"user"`
}
