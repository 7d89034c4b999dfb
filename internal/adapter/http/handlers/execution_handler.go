package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	request "troca_medidores/internal/adapter/http/dto/request"
	response "troca_medidores/internal/adapter/http/dto/response"
	"troca_medidores/internal/domain/entities"
	"troca_medidores/internal/usecase"
	"troca_medidores/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderIDParam  = pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)
	errInvalidFieldsPayload = pkg.NewDomainErrorSimple("INVALID_FIELDS_PAYLOAD", "Invalid field write payload", http.StatusBadRequest)
)

// ExecutionHandler drives the order-execution workflow over HTTP: session
// open/snapshot, field writes, step navigation and finalization.

type ExecutionHandler struct {
	usecase usecase.IExecutionUseCase
}

func NewExecutionHandler(uc usecase.IExecutionUseCase) *ExecutionHandler {
	return &ExecutionHandler{usecase: uc}
}

// OpenSession opens (or resumes) the execution session for an order, reading
// the current record from the Order Store.
func (h *ExecutionHandler) OpenSession(c *gin.Context) {
	h.withOrderID(c, func(ctx context.Context, orderID int64) (usecase.SessionState, error) {
		return h.usecase.OpenSession(ctx, orderID)
	}, http.StatusCreated)
}

func (h *ExecutionHandler) GetSession(c *gin.Context) {
	h.withOrderID(c, h.usecase.GetSession, http.StatusOK)
}

// PatchFields routes a field-write batch through the mutation queue.
func (h *ExecutionHandler) PatchFields(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var payload request.FieldsPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFieldsPayload.HTTPStatus, errInvalidFieldsPayload.ToHTTPError())
		return
	}
	writes := payload.ToFieldWrites()
	if len(writes) == 0 {
		c.JSON(errInvalidFieldsPayload.HTTPStatus, errInvalidFieldsPayload.ToHTTPError())
		return
	}

	state, err := h.usecase.SetFields(c.Request.Context(), orderID, writes)
	if err != nil {
		appErr := mapExecutionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

func (h *ExecutionHandler) Advance(c *gin.Context) {
	h.withOrderID(c, h.usecase.Advance, http.StatusOK)
}

func (h *ExecutionHandler) Back(c *gin.Context) {
	h.withOrderID(c, h.usecase.Back, http.StatusOK)
}

// Finalize runs the finalization validator. Validation failures come back as
// 422 with the specific missing item; the session snapshot after an
// "incomplete installation data" failure already points at the Installation
// step.
func (h *ExecutionHandler) Finalize(c *gin.Context) {
	h.withOrderID(c, h.usecase.Finalize, http.StatusOK)
}

func (h *ExecutionHandler) withOrderID(
	c *gin.Context,
	op func(ctx context.Context, orderID int64) (usecase.SessionState, error),
	okStatus int,
) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	state, err := op(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapExecutionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(okStatus, response.FromSessionState(state))
}

func orderIDParam(c *gin.Context) (int64, bool) {
	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil || orderID <= 0 {
		c.JSON(errInvalidOrderIDParam.HTTPStatus, errInvalidOrderIDParam.ToHTTPError())
		return 0, false
	}
	return orderID, true
}

func mapExecutionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownField):
		return pkg.NewDomainErrorSimple("UNKNOWN_FIELD", "Unknown record field", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidFieldValue):
		return pkg.NewDomainErrorSimple("INVALID_FIELD_VALUE", "Invalid field value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotOpen):
		return pkg.NewDomainErrorSimple("SESSION_NOT_OPEN", "Execution session not open", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderReadOnly):
		return pkg.NewDomainErrorSimple("ORDER_READ_ONLY", "Order is closed and read-only", http.StatusConflict)
	case errors.Is(err, usecase.ErrIncompleteInstallation):
		return pkg.NewDomainErrorSimple("INCOMPLETE_INSTALLATION_DATA", "Incomplete installation data", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissingClosureMotive):
		return pkg.NewDomainErrorSimple("MISSING_CLOSURE_MOTIVE", "Missing closure motive", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInsufficientEvidence):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_EVIDENCE", "Insufficient evidence", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSignatureRequired):
		return pkg.NewDomainErrorSimple("SIGNATURE_REQUIRED", "Signature required", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrFlushFailed):
		return pkg.NewDomainError("SAVE_FAILED", "Pending changes could not be saved", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrStatusTransitionFailed):
		return pkg.NewDomainError("STATUS_TRANSITION_FAILED", "Order status transition failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
