package request

import "time"

// CreateEMDRequest is the payload for recording an earnest-money deposit.
// Dates are RFC3339 timestamps.
type CreateEMDRequest struct {
	OfferID      string    `json:"offer_id" binding:"required"`
	FDRNumber    string    `json:"fdr_number" binding:"required"`
	BankName     string    `json:"bank_name" binding:"required"`
	Amount       float64   `json:"amount" binding:"gte=0"`
	IssueDate    time.Time `json:"issue_date" binding:"required"`
	MaturityDate time.Time `json:"maturity_date" binding:"required"`
}

// ExtractFDRRequest carries the OCR text of a fixed-deposit receipt.
type ExtractFDRRequest struct {
	Text string `json:"text" binding:"required"`
}
