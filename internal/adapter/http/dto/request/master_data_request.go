package request

// VendorRequest is the payload for creating or updating a vendor.
type VendorRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Mobile    string `json:"mobile"`
	GSTNumber string `json:"gst_number"`
	Address   string `json:"address"`
}

// ItemRequest is the payload for creating or updating an item.
type ItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
	UOM         string  `json:"uom"`
	HSNCode     string  `json:"hsn_code"`
}
