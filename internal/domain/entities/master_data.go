package entities

import "time"

// Vendor is procurement master data. Vendors carry no workflow status.
type Vendor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	GSTNumber string    `json:"gst_number"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Item is procurement master data for orderable goods.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UnitPrice   float64   `json:"unit_price"`
	UOM         string    `json:"uom"`
	HSNCode     string    `json:"hsn_code"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FDRDetails are the structured fields extracted from a fixed-deposit
// receipt document.
type FDRDetails struct {
	BankName     string    `json:"bank_name"`
	FDRNumber    string    `json:"fdr_number"`
	Amount       float64   `json:"amount"`
	IssueDate    time.Time `json:"issue_date"`
	MaturityDate time.Time `json:"maturity_date"`
}
