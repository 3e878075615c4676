package request

// CreateLOARequest is the payload for creating a letter of acceptance.
type CreateLOARequest struct {
	LOANumber       string  `json:"loa_number" binding:"required"`
	VendorID        string  `json:"vendor_id" binding:"required"`
	WorkDescription string  `json:"work_description"`
	Amount          float64 `json:"amount" binding:"gte=0"`
}
