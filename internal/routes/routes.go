package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "company-billing-backend/internal/handlers"
	"company-billing-backend/internal/repository"
	"company-billing-backend/internal/services/companies"
	"company-billing-backend/internal/services/invoices"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	companyRepo := repository.NewCompanyRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	companySvc := companies.NewService(companyRepo, invoiceRepo)
	invoiceSvc := invoices.NewService(invoiceRepo, companyRepo)

	companyHandler := handler.NewCompanyHandler(companySvc)
	invoiceHandler := handler.NewInvoiceHandler(invoiceSvc)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	comps := r.Group("/companies")
	{
		comps.GET("", companyHandler.List)
		comps.GET("/:code", companyHandler.Get)
		comps.POST("", companyHandler.Create)
		comps.PUT("/:code", companyHandler.Update)
		comps.DELETE("/:code", companyHandler.Delete)
	}

	invs := r.Group("/invoices")
	{
		invs.GET("", invoiceHandler.List)
		invs.GET("/:id", invoiceHandler.Get)
		invs.POST("", invoiceHandler.Create)
		invs.PUT("/:id", invoiceHandler.Update)
		invs.DELETE("/:id", invoiceHandler.Delete)
	}
}
