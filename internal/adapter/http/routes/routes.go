package routes

import (
	"log"
	_ "merenda_escolar/docs" // This will be auto-generated
	"merenda_escolar/internal/adapter/http/handlers"
	"merenda_escolar/internal/adapter/persistence/repository"
	"merenda_escolar/internal/infrastructure/cache"
	"merenda_escolar/internal/infrastructure/database"
	"merenda_escolar/internal/usecase"
	"strconv"

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

	foodRepo := repository.NewFoodDynamoRepository(ddb)
	menuRepo := repository.NewMenuDynamoRepository(ddb)
	institutionRepo := repository.NewInstitutionDynamoRepository(ddb)
	guideRepo := repository.NewGuideDynamoRepository(ddb)

	deduper := cache.NewMemoryDeduper(cache.DefaultDedupWindow)

	foodUseCase := usecase.NewFoodUseCase(foodRepo)
	perCapitaUseCase := usecase.NewPerCapitaUseCase(foodRepo)
	menuUseCase := usecase.NewMenuUseCase(menuRepo)
	institutionUseCase := usecase.NewInstitutionUseCase(institutionRepo)
	guideUseCase := usecase.NewGuideUseCase(guideRepo, institutionRepo, deduper)
	dashboardUseCase := usecase.NewDashboardUseCase(guideRepo)

	foodHandler := handlers.NewFoodHandler(foodUseCase)
	calculationHandler := handlers.NewCalculationHandler(perCapitaUseCase)
	menuHandler := handlers.NewMenuHandler(menuUseCase)
	institutionHandler := handlers.NewInstitutionHandler(institutionUseCase)
	guideHandler := handlers.NewGuideHandler(guideUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMerendaRoutes(v1, foodHandler, calculationHandler, menuHandler, institutionHandler, guideHandler, dashboardHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
