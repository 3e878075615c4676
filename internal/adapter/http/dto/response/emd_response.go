package response

import (
	"time"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/usecase"
)

type EMDResponse struct {
	ID            string                 `json:"id"`
	OfferID       string                 `json:"offer_id"`
	FDRNumber     string                 `json:"fdr_number"`
	BankName      string                 `json:"bank_name"`
	Amount        float64                `json:"amount"`
	Status        string                 `json:"status"`
	StatusMeta    entities.StatusMeta    `json:"status_meta"`
	DerivedStatus string                 `json:"derived_status,omitempty"`
	ExpiringSoon  bool                   `json:"expiring_soon"`
	Overdue       bool                   `json:"overdue"`
	IssueDate     time.Time              `json:"issue_date"`
	MaturityDate  time.Time              `json:"maturity_date"`
	History       []HistoryEntryResponse `json:"status_history"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func FromEMD(e entities.EMD) EMDResponse {
	return EMDResponse{
		ID:           e.ID,
		OfferID:      e.OfferID,
		FDRNumber:    e.FDRNumber,
		BankName:     e.BankName,
		Amount:       e.Amount,
		Status:       string(e.Status),
		StatusMeta:   entities.EMDStatusMeta[e.Status],
		IssueDate:    e.IssueDate,
		MaturityDate: e.MaturityDate,
		History:      fromHistory(e.History),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func FromEMDView(v usecase.EMDView) EMDResponse {
	resp := FromEMD(v.EMD)
	resp.DerivedStatus = string(v.DerivedStatus)
	resp.ExpiringSoon = v.Expiry.ExpiringSoon
	resp.Overdue = v.Expiry.Overdue
	return resp
}

func FromEMDViews(views []usecase.EMDView) []EMDResponse {
	out := make([]EMDResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromEMDView(v))
	}
	return out
}

type FDRDetailsResponse struct {
	BankName     string    `json:"bank_name"`
	FDRNumber    string    `json:"fdr_number"`
	Amount       float64   `json:"amount"`
	IssueDate    time.Time `json:"issue_date"`
	MaturityDate time.Time `json:"maturity_date"`
}

func FromFDRDetails(d entities.FDRDetails) FDRDetailsResponse {
	return FDRDetailsResponse{
		BankName:     d.BankName,
		FDRNumber:    d.FDRNumber,
		Amount:       d.Amount,
		IssueDate:    d.IssueDate,
		MaturityDate: d.MaturityDate,
	}
}
