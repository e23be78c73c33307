package routes

import (
	"cotizador3d/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/cotizaciones"
)

func addQuotationRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler) {
	quotations := rg.Group(PathQuotations)
	{
		// The operation is selected by the "action" query parameter.
		quotations.POST("", quotationHandler.Dispatch)
		quotations.GET("", quotationHandler.Dispatch)
	}
}
