package handler

import (
	"net/http"
	"strconv"

	"company-billing-backend/internal/dto"
	"company-billing-backend/internal/services/invoices"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	svc *invoices.Service
}

func NewInvoiceHandler(svc *invoices.Service) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

// List GET /invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": dto.FromInvoices(list)})
}

// Get GET /invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	inv, company, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": dto.FromInvoiceDetail(*inv, *company)})
}

// Create POST /invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload struct {
		CompCode string  `json:"comp_code" binding:"required"`
		Amt      float64 `json:"amt" binding:"required"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	inv, err := h.svc.Create(c.Request.Context(), payload.CompCode, payload.Amt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"invoice": dto.FromInvoice(*inv)})
}

// Update PUT /invoices/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	var payload struct {
		Amt  float64 `json:"amt" binding:"required"`
		Paid bool    `json:"paid"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if _, err := h.svc.Update(c.Request.Context(), id, payload.Amt, payload.Paid); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete DELETE /invoices/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func invoiceID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return 0, false
	}
	return uint(id), true
}
