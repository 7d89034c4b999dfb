package routes

import (
	"troca_medidores/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathEvidence = "/evidence"
	PathMotives  = "/motives"
)

func addExecutionRoutes(
	rg *gin.RouterGroup,
	executionHandler *handlers.ExecutionHandler,
	evidenceHandler *handlers.EvidenceHandler,
	motiveHandler *handlers.MotiveHandler,
) {
	orders := rg.Group(PathOrders)
	{
		// Execution session lifecycle for the field agent screen.
		orders.POST("/:order_id/session", executionHandler.OpenSession)
		orders.GET("/:order_id/session", executionHandler.GetSession)
		orders.PATCH("/:order_id/fields", executionHandler.PatchFields)
		orders.POST("/:order_id/advance", executionHandler.Advance)
		orders.POST("/:order_id/back", executionHandler.Back)
		orders.POST("/:order_id/finalize", executionHandler.Finalize)

		// Evidence pass-through scoped to an order.
		orders.GET("/:order_id/evidence", evidenceHandler.ListByOrderID)
		orders.POST("/:order_id/evidence", evidenceHandler.Create)
	}

	evidence := rg.Group(PathEvidence)
	{
		evidence.DELETE("/:evidence_id", evidenceHandler.Remove)
	}

	motives := rg.Group(PathMotives)
	{
		motives.GET("", motiveHandler.List)
	}
}
