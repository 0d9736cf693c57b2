package repository

import (
	"context"

	"company-billing-backend/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	List(ctx context.Context) ([]models.Company, error)
	FindByCode(ctx context.Context, code string) (*models.Company, error)
	Create(ctx context.Context, c *models.Company) error
	Update(ctx context.Context, c *models.Company) error
	// Delete removes the company row and reports how many rows matched, so
	// callers can distinguish "gone" from "never existed".
	Delete(ctx context.Context, code string) (int64, error)
}

type companyRepo struct{ db *gorm.DB }

func NewCompanyRepository(db *gorm.DB) CompanyRepository { return &companyRepo{db: db} }

func (r *companyRepo) List(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	err := r.db.WithContext(ctx).Order("code ASC").Find(&companies).Error
	return companies, err
}

func (r *companyRepo) FindByCode(ctx context.Context, code string) (*models.Company, error) {
	var c models.Company
	if err := r.db.WithContext(ctx).First(&c, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *companyRepo) Create(ctx context.Context, c *models.Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *companyRepo) Update(ctx context.Context, c *models.Company) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *companyRepo) Delete(ctx context.Context, code string) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Company{}, "code = ?", code)
	return result.RowsAffected, result.Error
}
