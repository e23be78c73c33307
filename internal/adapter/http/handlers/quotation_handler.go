package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "cotizador3d/internal/adapter/http/dto/request"
	response "cotizador3d/internal/adapter/http/dto/response"
	"cotizador3d/internal/usecase"
	"cotizador3d/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
	errUnknownAction           = pkg.NewDomainErrorSimple("UNKNOWN_ACTION", "Unknown action", http.StatusBadRequest)
)

// QuotationHandler serves the action-dispatched quotation endpoint consumed
// by the legacy shop front-end: a single route whose behavior is selected by
// the `action` query parameter.
type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// Dispatch routes a quotation request by action.
//
// @Summary      Quotation operations
// @Description  Action-dispatched endpoint: create (quote a part), list, get and delete.
// @Tags         cotizaciones
// @Accept       json
// @Produce      json
// @Param        action  query  string  true   "create | list | get | delete"
// @Param        id      query  string  false  "quotation id (get/delete)"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /cotizaciones [post]
func (h *QuotationHandler) Dispatch(c *gin.Context) {
	switch strings.TrimSpace(c.Query("action")) {
	case "create":
		h.create(c)
	case "list":
		h.list(c)
	case "get":
		h.get(c)
	case "delete":
		h.delete(c)
	default:
		c.JSON(errUnknownAction.HTTPStatus, errUnknownAction.ToHTTPError())
	}
}

func (h *QuotationHandler) create(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	in, err := request.NormalizeQuotation(raw)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK(
		response.FromQuotation(res.Quotation, res.Breakdown), "Cotización creada"))
}

func (h *QuotationHandler) list(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromSummaries(items), ""))
}

func (h *QuotationHandler) get(c *gin.Context) {
	res, err := h.usecase.GetByID(c.Request.Context(), c.Query("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(
		response.FromQuotation(res.Quotation, res.Breakdown), ""))
}

func (h *QuotationHandler) delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Query("id")); err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(nil, "Cotización eliminada"))
}

func mapQuotationError(err error) *pkg.AppError {
	var verr *request.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", verr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuotationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFilamentProfileNotFound):
		return pkg.NewDomainErrorSimple("FILAMENT_PROFILE_NOT_FOUND", "Filament profile not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
