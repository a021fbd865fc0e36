package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "bizops/internal/adapter/http/dto/request"
	response "bizops/internal/adapter/http/dto/response"
	"bizops/internal/domain/entities"
	"bizops/internal/usecase"
	"bizops/pkg"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler handles HTTP requests for estimates.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// actorFrom resolves the acting user. Authentication is an upstream
// middleware concern; it either sets user_id on the context or forwards the
// identity header.
func actorFrom(c *gin.Context) string {
	if v := c.GetString("user_id"); v != "" {
		return v
	}
	if v := c.GetHeader("X-User-ID"); v != "" {
		return v
	}
	return "system"
}

// CreateEstimate handles POST /estimates.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cmd := usecase.CreateEstimateCommand{
		ClientID:    payload.ClientID,
		ProjectID:   payload.ProjectID,
		Title:       payload.Title,
		Description: payload.Description,
		LineItems:   toLineItemInputs(payload.LineItems),
		TaxRate:     payload.TaxRate,
		ValidUntil:  payload.ValidUntil,
		CreatedBy:   actorFrom(c),
	}

	est, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(est))
}

// GetEstimate handles GET /estimates/:id.
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	est, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(est))
}

// UpdateEstimate handles PATCH /estimates/:id.
func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.UpdateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	if payload.Empty() {
		appErr := pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Patch carries no changes", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	patch := usecase.EstimatePatch{
		Title:       payload.Title,
		Description: payload.Description,
		TaxRate:     payload.TaxRate,
		ValidUntil:  payload.ValidUntil,
	}
	if payload.LineItems != nil {
		patch.LineItems = toLineItemInputs(payload.LineItems)
	}
	if payload.Status != nil {
		status := entities.EstimateStatus(*payload.Status)
		patch.Status = &status
	}

	est, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch, actorFrom(c))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(est))
}

func toLineItemInputs(items []request.LineItemRequest) []usecase.LineItemInput {
	out := make([]usecase.LineItemInput, len(items))
	for i, it := range items {
		out[i] = usecase.LineItemInput{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}
	return out
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidTitle),
		errors.Is(err, usecase.ErrNoLineItems),
		errors.Is(err, usecase.ErrInvalidLineItem),
		errors.Is(err, usecase.ErrInvalidTaxRate),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateLocked):
		return pkg.NewDomainErrorSimple("ESTIMATE_LOCKED", "Cannot edit approved/rejected estimates", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
