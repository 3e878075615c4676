package request

// CreateOfferRequest is the payload for creating a budgetary offer.
type CreateOfferRequest struct {
	Subject         string  `json:"subject" binding:"required"`
	ToAuthority     string  `json:"to_authority" binding:"required"`
	WorkDescription string  `json:"work_description"`
	Amount          float64 `json:"amount" binding:"gte=0"`
}
