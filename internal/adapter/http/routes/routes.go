package routes

import (
	"log"
	"os"
	"strconv"

	_ "renomatch/docs" // This will be auto-generated
	"renomatch/internal/adapter/http/handlers"
	repository2 "renomatch/internal/adapter/persistence/repository"
	"renomatch/internal/infrastructure/database"
	"renomatch/internal/infrastructure/notifications"
	"renomatch/internal/usecase"
	"renomatch/internal/usecase/interfaces"

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

	requestRepo := repository2.NewQuoteRequestDynamoRepository(ddb)
	visitRepo := repository2.NewSiteVisitDynamoRepository(ddb)
	quoteRepo := repository2.NewContractorQuoteDynamoRepository(ddb)
	contractorRepo := repository2.NewContractorDynamoRepository(ddb)

	var notifier interfaces.INotificationSender
	pushGateway, err := notifications.NewPushGateway(os.Getenv("PUSH_GATEWAY_URL"))
	if err != nil {
		log.Printf("Push gateway not configured: %v", err)
		notifier = notifications.NewNoopSender()
	} else {
		notifier = pushGateway
	}

	requestUseCase := usecase.NewRequestUseCase(requestRepo, quoteRepo)
	visitUseCase := usecase.NewSiteVisitUseCase(visitRepo, requestRepo, contractorRepo)
	bidUseCase := usecase.NewBidUseCase(quoteRepo, visitRepo, requestRepo, contractorRepo)
	selectionUseCase := usecase.NewSelectionUseCase(requestRepo, quoteRepo, contractorRepo, notifier)
	dashboardUseCase := usecase.NewDashboardUseCase(requestRepo, visitRepo, quoteRepo)
	contractorUseCase := usecase.NewContractorUseCase(contractorRepo)

	requestHandler := handlers.NewQuoteRequestHandler(requestUseCase)
	visitHandler := handlers.NewSiteVisitHandler(visitUseCase)
	bidHandler := handlers.NewBidHandler(bidUseCase)
	selectionHandler := handlers.NewSelectionHandler(selectionUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	contractorHandler := handlers.NewContractorHandler(contractorUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, requestHandler, visitHandler, bidHandler, selectionHandler, dashboardHandler, contractorHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
