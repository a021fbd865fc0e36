package routes

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "bizops/docs" // This will be auto-generated
	"bizops/internal/adapter/http/handlers"
	repository2 "bizops/internal/adapter/persistence/repository"
	"bizops/internal/infrastructure/database"
	"bizops/internal/infrastructure/logging"
	"bizops/internal/usecase"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := PORT
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}

	err := router.Run(":" + strconv.Itoa(port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	logger := logging.NewLogger()

	db := database.ConnectPostgres(logger)
	if err := repository2.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	estimateRepo := repository2.NewEstimateGormRepository(db)
	invoiceRepo := repository2.NewInvoiceGormRepository(db)
	sequenceRepo := repository2.NewDocumentSequenceGormRepository(db)
	activityRepo := repository2.NewActivityGormRepository(db)
	txManager := repository2.NewGormTransactionManager(db)

	numbering := usecase.NewNumberingService(sequenceRepo)

	dueInDays := parseDueInDays(os.Getenv("INVOICE_DUE_DAYS"), logger)

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, activityRepo, numbering, txManager, logger)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, estimateRepo, activityRepo, numbering, txManager, dueInDays, logger)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, estimateHandler, invoiceHandler)
}

// parseDueInDays reads the invoice due-date offset. Zero means "use the
// usecase default"; a malformed or non-positive value is reported and ignored.
func parseDueInDays(value string, logger *zap.Logger) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		logger.Warn("ignoring invalid INVOICE_DUE_DAYS", zap.String("value", value))
		return 0
	}
	return n
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
