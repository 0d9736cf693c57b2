// Package dto holds the wire shapes. Persistence rows are mapped here and
// nowhere else; handlers only ever serialize these types.
package dto

import "company-billing-backend/internal/models"

type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func FromCompany(c models.Company) CompanyResponse {
	return CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

func FromCompanies(cs []models.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCompany(c))
	}
	return out
}
