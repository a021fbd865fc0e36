package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	response "bizops/internal/adapter/http/dto/response"
	"bizops/internal/usecase"
	"bizops/pkg"
)

// InvoiceHandler handles HTTP requests for invoices, including the
// estimate-to-invoice conversion endpoint.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// ConvertEstimate handles POST /estimates/:id/convert.
func (h *InvoiceHandler) ConvertEstimate(c *gin.Context) {
	result, err := h.usecase.ConvertFromEstimate(c.Request.Context(), c.Param("id"), actorFrom(c))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.ConversionResponse{
		InvoiceID:     result.InvoiceID,
		InvoiceNumber: result.InvoiceNumber,
	})
}

// GetInvoice handles GET /invoices/:id.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// ListInvoicesByEstimate handles GET /estimates/:id/invoices.
func (h *InvoiceHandler) ListInvoicesByEstimate(c *gin.Context) {
	invs, err := h.usecase.ListByEstimateID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(invs))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotApproved):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_APPROVED", "Only approved estimates can be converted to invoices", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
