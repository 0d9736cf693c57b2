package repository

import (
	"context"

	"company-billing-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvoiceRepository interface {
	List(ctx context.Context) ([]models.Invoice, error)
	FindByID(ctx context.Context, id uint) (*models.Invoice, error)
	Create(ctx context.Context, inv *models.Invoice) error
	// UpdateAtomic reads the invoice, lets apply mutate it, and writes it back,
	// all inside one transaction so concurrent updates to the same id cannot
	// lose each other's writes.
	UpdateAtomic(ctx context.Context, id uint, apply func(*models.Invoice)) (*models.Invoice, error)
	Delete(ctx context.Context, id uint) (int64, error)
	CountByCompany(ctx context.Context, compCode string) (int64, error)
}

type invoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository { return &invoiceRepo{db: db} }

func (r *invoiceRepo) List(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).Order("id ASC").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepo) FindByID(ctx context.Context, id uint) (*models.Invoice, error) {
	var inv models.Invoice
	if err := r.db.WithContext(ctx).First(&inv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepo) Create(ctx context.Context, inv *models.Invoice) error {
	// The zero-valued Company association must not be upserted alongside.
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(inv).Error
}

func (r *invoiceRepo) UpdateAtomic(ctx context.Context, id uint, apply func(*models.Invoice)) (*models.Invoice, error) {
	var inv models.Invoice
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		// sqlite has no row locks; its single writer already serializes.
		if tx.Dialector.Name() != "sqlite" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&inv, "id = ?", id).Error; err != nil {
			return err
		}
		apply(&inv)
		return tx.Omit(clause.Associations).Save(&inv).Error
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepo) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Invoice{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *invoiceRepo) CountByCompany(ctx context.Context, compCode string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).Where("comp_code = ?", compCode).Count(&count).Error
	return count, err
}
