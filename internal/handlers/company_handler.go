package handler

import (
	"net/http"

	"company-billing-backend/internal/dto"
	"company-billing-backend/internal/services/companies"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	svc *companies.Service
}

func NewCompanyHandler(svc *companies.Service) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

// List GET /companies
func (h *CompanyHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": dto.FromCompanies(list)})
}

// Get GET /companies/:code
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.svc.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": dto.FromCompany(*company)})
}

// Create POST /companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var payload struct {
		Code        string `json:"code"` // optional, derived from name if empty
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	company, err := h.svc.Create(c.Request.Context(), payload.Code, payload.Name, payload.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": dto.FromCompany(*company)})
}

// Update PUT /companies/:code
func (h *CompanyHandler) Update(c *gin.Context) {
	var payload struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if _, err := h.svc.Update(c.Request.Context(), c.Param("code"), payload.Name, payload.Description); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete DELETE /companies/:code
func (h *CompanyHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
