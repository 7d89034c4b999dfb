package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "troca_medidores/docs" // This will be auto-generated
	"troca_medidores/internal/adapter/http/handlers"
	"troca_medidores/internal/adapter/persistence/repository"
	"troca_medidores/internal/infrastructure/database"
	"troca_medidores/internal/infrastructure/geo"
	"troca_medidores/internal/usecase"
	"troca_medidores/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderStore := repository.NewOrderDynamoRepository(ddb)
	evidenceStore := repository.NewEvidenceDynamoRepository(ddb)
	motiveCatalog := repository.NewMotiveDynamoRepository(ddb)

	var geoProvider interfaces.IGeolocationProvider
	geoClient, err := geo.NewGeoGatewayClient(os.Getenv("GEO_GATEWAY_URL"))
	if err != nil {
		log.Printf("Geolocation gateway not configured: %v", err)
	} else {
		geoProvider = geoClient
	}

	executionUseCase := usecase.NewExecutionUseCase(
		orderStore,
		evidenceStore,
		geoProvider,
		envDuration("FLUSH_WINDOW_MS", usecase.DefaultFlushWindow),
		envDuration("GEO_TIMEOUT_MS", usecase.DefaultGeoTimeout),
	)
	evidenceUseCase := usecase.NewEvidenceUseCase(evidenceStore)
	motiveUseCase := usecase.NewMotiveUseCase(motiveCatalog)

	executionHandler := handlers.NewExecutionHandler(executionUseCase)
	evidenceHandler := handlers.NewEvidenceHandler(evidenceUseCase)
	motiveHandler := handlers.NewMotiveHandler(motiveUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addExecutionRoutes(v1, executionHandler, evidenceHandler, motiveHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		log.Printf("Ignoring invalid %s=%q", key, v)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
