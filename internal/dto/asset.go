package dto

// CreateAssetRequest represents the payload for creating an asset
type CreateAssetRequest struct {
	AssetName    string  `json:"asset_name" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Brand        string  `json:"brand" binding:"required"`
	SerialNumber *string `json:"serial_number"`
	IMEI2        *string `json:"imei_2"`
	Condition    string  `json:"condition" binding:"required"`
	Status       string  `json:"status" binding:"required"`
	Remarks      string  `json:"remarks"`
}

// UpdateAssetRequest represents a partial asset update
type UpdateAssetRequest struct {
	AssetName    *string `json:"asset_name"`
	Category     *string `json:"category"`
	Brand        *string `json:"brand"`
	SerialNumber *string `json:"serial_number"`
	IMEI2        *string `json:"imei_2"`
	Condition    *string `json:"condition"`
	Status       *string `json:"status"`
	Remarks      *string `json:"remarks"`
}
