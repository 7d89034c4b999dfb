package handlers

import (
	"net/http"

	response "troca_medidores/internal/adapter/http/dto/response"
	"troca_medidores/internal/usecase"
	"troca_medidores/pkg"

	"github.com/gin-gonic/gin"
)

// MotiveHandler serves the closure-motive catalog for the manual override
// selector.

type MotiveHandler struct {
	usecase usecase.IMotiveUseCase
}

func NewMotiveHandler(uc usecase.IMotiveUseCase) *MotiveHandler {
	return &MotiveHandler{usecase: uc}
}

func (h *MotiveHandler) List(c *gin.Context) {
	motives, err := h.usecase.ListMotives(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMotives(motives))
}
