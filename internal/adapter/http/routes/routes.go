package routes

import (
	"strconv"

	_ "cotizador3d/docs" // Swagger docs, generated by swag init
	"cotizador3d/internal/adapter/http/handlers"
	"cotizador3d/internal/adapter/persistence/repository"
	"cotizador3d/internal/infrastructure/database"
	"cotizador3d/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
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

	quotationRepo := repository.NewQuotationDynamoRepository(ddb)
	settingsRepo := repository.NewSettingsDynamoRepository(ddb)
	profileRepo := repository.NewFilamentProfileDynamoRepository(ddb)

	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, settingsRepo, profileRepo)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)

	// Rutas públicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotationRoutes(v1, quotationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(corsMiddleware())
}

// The quotation endpoint is consumed directly by a browser front-end.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
