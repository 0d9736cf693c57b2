package companies

import (
	"context"
	"testing"
	"time"

	"company-billing-backend/internal/apierror"
	"company-billing-backend/internal/models"
	"company-billing-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Company{}, &models.Invoice{}))

	return NewService(repository.NewCompanyRepository(db), repository.NewInvoiceRepository(db)), db
}

func requireKind(t *testing.T, err error, kind apierror.Kind) {
	t.Helper()
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, kind, apiErr.Kind)
}

func TestService_Create_DerivesCode(t *testing.T) {
	svc, _ := setupService(t)

	c, err := svc.Create(context.Background(), "", "Test Company", "For Testing.")
	require.NoError(t, err)
	assert.Equal(t, "test-company", c.Code)
	assert.Equal(t, "Test Company", c.Name)
	assert.Equal(t, "For Testing.", c.Description)
}

func TestService_Create_ExplicitCode(t *testing.T) {
	svc, _ := setupService(t)

	c, err := svc.Create(context.Background(), "tc", "Test Company", "")
	require.NoError(t, err)
	assert.Equal(t, "tc", c.Code)
}

func TestService_Create_DuplicateCode(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "", "Test Company", "")
	require.NoError(t, err)

	// same name derives the same code
	_, err = svc.Create(ctx, "", "Test Company", "again")
	requireKind(t, err, apierror.KindConflict)
}

func TestService_Get_NotFound(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Get(context.Background(), "ghost")
	requireKind(t, err, apierror.KindNotFound)
}

func TestService_Update(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "acme", "Acme", "old")
	require.NoError(t, err)

	c, err := svc.Update(ctx, "acme", "Acme Corp", "new")
	require.NoError(t, err)
	assert.Equal(t, "acme", c.Code)
	assert.Equal(t, "Acme Corp", c.Name)
	assert.Equal(t, "new", c.Description)
}

func TestService_Update_NotFound(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Update(context.Background(), "ghost", "X", "")
	requireKind(t, err, apierror.KindNotFound)
}

func TestService_Delete(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "acme", "Acme", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "acme"))
	requireKind(t, svc.Delete(ctx, "acme"), apierror.KindNotFound)
}

func TestService_Delete_WithInvoices(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "acme", "Acme", "")
	require.NoError(t, err)
	require.NoError(t, db.Omit("Company").Create(&models.Invoice{CompCode: "acme", Amt: 100, AddDate: time.Now()}).Error)

	requireKind(t, svc.Delete(ctx, "acme"), apierror.KindConflict)

	// the company is still there
	c, err := svc.Get(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "acme", c.Code)
}
