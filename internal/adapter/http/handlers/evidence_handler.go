package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "troca_medidores/internal/adapter/http/dto/request"
	response "troca_medidores/internal/adapter/http/dto/response"
	"troca_medidores/internal/usecase"
	"troca_medidores/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEvidencePayload = pkg.NewDomainErrorSimple("INVALID_EVIDENCE_INPUT", "Invalid evidence payload", http.StatusBadRequest)

// EvidenceHandler exposes the evidence pass-through endpoints: the workflow
// only lists, counts, registers and removes references.

type EvidenceHandler struct {
	usecase usecase.IEvidenceUseCase
}

func NewEvidenceHandler(uc usecase.IEvidenceUseCase) *EvidenceHandler {
	return &EvidenceHandler{usecase: uc}
}

func (h *EvidenceHandler) ListByOrderID(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil || orderID <= 0 {
		c.JSON(errInvalidOrderIDParam.HTTPStatus, errInvalidOrderIDParam.ToHTTPError())
		return
	}

	items, err := h.usecase.ListByOrderID(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapEvidenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEvidenceItems(items))
}

func (h *EvidenceHandler) Create(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil || orderID <= 0 {
		c.JSON(errInvalidOrderIDParam.HTTPStatus, errInvalidOrderIDParam.ToHTTPError())
		return
	}

	var payload request.EvidenceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEvidencePayload.HTTPStatus, errInvalidEvidencePayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Add(c.Request.Context(), orderID, payload.ResolveMediaURL(), payload.IsVideo)
	if err != nil {
		appErr := mapEvidenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromEvidenceItem(item))
}

func (h *EvidenceHandler) Remove(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), c.Param("evidence_id")); err != nil {
		appErr := mapEvidenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapEvidenceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMediaURL):
		return pkg.NewDomainErrorSimple("INVALID_MEDIA_URL", "Invalid media url", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEvidenceID):
		return pkg.NewDomainErrorSimple("INVALID_EVIDENCE_ID", "Invalid evidence id", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
