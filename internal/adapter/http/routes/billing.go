package routes

import (
	"github.com/gin-gonic/gin"

	"bizops/internal/adapter/http/handlers"
)

const (
	PathEstimates = "/estimates"
	PathInvoices  = "/invoices"
)

func addBillingRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, invoiceHandler *handlers.InvoiceHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/:id", estimateHandler.UpdateEstimate)
		estimates.POST("/:id/convert", invoiceHandler.ConvertEstimate)
		estimates.GET("/:id/invoices", invoiceHandler.ListInvoicesByEstimate)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/:id", invoiceHandler.GetInvoice)
	}
}
