// Package companies implements the company store: CRUD over company records
// with slug-derived codes. Companies are the leaf entity; the only cross-entity
// rule lives in Delete, which refuses to orphan invoices.
package companies

import (
	"context"
	"errors"

	"company-billing-backend/internal/apierror"
	"company-billing-backend/internal/models"
	"company-billing-backend/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	companies repository.CompanyRepository
	invoices  repository.InvoiceRepository
}

func NewService(companies repository.CompanyRepository, invoices repository.InvoiceRepository) *Service {
	return &Service{companies: companies, invoices: invoices}
}

func (s *Service) List(ctx context.Context) ([]models.Company, error) {
	list, err := s.companies.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, code string) (*models.Company, error) {
	c, err := s.companies.FindByCode(ctx, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("can't find company with code of %s", code)
	}
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return c, nil
}

// Create derives the code from the name unless an explicit code is supplied.
func (s *Service) Create(ctx context.Context, code, name, description string) (*models.Company, error) {
	if code == "" {
		code = DeriveCode(name)
	}

	if _, err := s.companies.FindByCode(ctx, code); err == nil {
		return nil, apierror.Conflict("company with code %s already exists", code)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}

	c := &models.Company{Code: code, Name: name, Description: description}
	if err := s.companies.Create(ctx, c); err != nil {
		// a racing create can still trip the primary key
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("company with code %s already exists", code)
		}
		return nil, apierror.Internal(err)
	}
	return c, nil
}

// Update overwrites name and description. The code is immutable.
func (s *Service) Update(ctx context.Context, code, name, description string) (*models.Company, error) {
	c, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	c.Name = name
	c.Description = description
	if err := s.companies.Update(ctx, c); err != nil {
		return nil, apierror.Internal(err)
	}
	return c, nil
}

// Delete refuses to remove a company that still has invoices; cascading would
// silently destroy billing records. The RESTRICT foreign key backs this up at
// the database, so a racing invoice creation surfaces as Conflict, never as an
// orphaned row.
func (s *Service) Delete(ctx context.Context, code string) error {
	count, err := s.invoices.CountByCompany(ctx, code)
	if err != nil {
		return apierror.Internal(err)
	}
	if count > 0 {
		return apierror.Conflict("company %s still has %d invoice(s)", code, count)
	}

	affected, err := s.companies.Delete(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apierror.Conflict("company %s still has invoices", code)
		}
		return apierror.Internal(err)
	}
	if affected == 0 {
		return apierror.NotFound("can't find company with code of %s", code)
	}
	return nil
}
