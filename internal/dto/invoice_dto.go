package dto

import (
	"time"

	"company-billing-backend/internal/models"
)

// InvoiceResponse is the raw invoice shape used by list/create responses.
type InvoiceResponse struct {
	ID       uint       `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

// InvoiceDetailResponse replaces comp_code with the full nested company.
type InvoiceDetailResponse struct {
	ID       uint            `json:"id"`
	Amt      float64         `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  CompanyResponse `json:"company"`
}

func FromInvoice(inv models.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}

func FromInvoices(invs []models.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, FromInvoice(inv))
	}
	return out
}

func FromInvoiceDetail(inv models.Invoice, c models.Company) InvoiceDetailResponse {
	return InvoiceDetailResponse{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
		Company:  FromCompany(c),
	}
}
