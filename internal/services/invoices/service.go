// Package invoices implements the invoice store. Invoices reference a company
// by code; the store reads company rows for enrichment but never writes them.
package invoices

import (
	"context"
	"errors"
	"time"

	"company-billing-backend/internal/apierror"
	"company-billing-backend/internal/models"
	"company-billing-backend/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	invoices  repository.InvoiceRepository
	companies repository.CompanyRepository
	now       func() time.Time
}

func NewService(invoices repository.InvoiceRepository, companies repository.CompanyRepository) *Service {
	return &Service{
		invoices:  invoices,
		companies: companies,
		now:       time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]models.Invoice, error) {
	list, err := s.invoices.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return list, nil
}

// Get returns the invoice together with its company for the enriched detail
// response. A dangling comp_code cannot happen while the foreign key holds, so
// a missing company here is a storage consistency fault, not a 404.
func (s *Service) Get(ctx context.Context, id uint) (*models.Invoice, *models.Company, error) {
	inv, err := s.invoices.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, apierror.NotFound("can't find invoice with id of %d", id)
	}
	if err != nil {
		return nil, nil, apierror.Internal(err)
	}

	c, err := s.companies.FindByCode(ctx, inv.CompCode)
	if err != nil {
		return nil, nil, apierror.Internal(err)
	}
	return inv, c, nil
}

// Create inserts an unpaid invoice for an existing company. The company lookup
// runs first so a bad comp_code is a clean 404 and never leaves a row behind.
func (s *Service) Create(ctx context.Context, compCode string, amt float64) (*models.Invoice, error) {
	if _, err := s.companies.FindByCode(ctx, compCode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("can't find company with code of %s", compCode)
		}
		return nil, apierror.Internal(err)
	}

	inv := &models.Invoice{
		CompCode: compCode,
		Amt:      amt,
		Paid:     false,
		AddDate:  s.now(),
		PaidDate: nil,
	}
	if err := s.invoices.Create(ctx, inv); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apierror.NotFound("can't find company with code of %s", compCode)
		}
		return nil, apierror.Internal(err)
	}
	return inv, nil
}

// Update persists amt and paid, with paid_date resolved from the invoice's
// current state inside the same transaction that writes it back.
func (s *Service) Update(ctx context.Context, id uint, amt float64, paid bool) (*models.Invoice, error) {
	now := s.now()
	inv, err := s.invoices.UpdateAtomic(ctx, id, func(inv *models.Invoice) {
		inv.Amt = amt
		inv.PaidDate = ResolvePaidDate(inv.PaidDate, paid, now)
		inv.Paid = paid
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("can't find invoice with id of %d", id)
	}
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return inv, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	affected, err := s.invoices.Delete(ctx, id)
	if err != nil {
		return apierror.Internal(err)
	}
	if affected == 0 {
		return apierror.NotFound("can't find invoice with id of %d", id)
	}
	return nil
}
