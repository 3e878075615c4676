package request

// CreatePORequest is the payload for issuing a purchase order against an LOA.
type CreatePORequest struct {
	PONumber string  `json:"po_number" binding:"required"`
	LOAID    string  `json:"loa_id" binding:"required"`
	VendorID string  `json:"vendor_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"gte=0"`
}
