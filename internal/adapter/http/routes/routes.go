package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Prossima-Tech/emprise-order-tracking-system-sub002/docs" // This will be auto-generated
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/adapter/http/handlers"
	repository2 "github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/adapter/persistence/repository"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/infrastructure/database"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/infrastructure/extraction"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/infrastructure/logging"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/usecase"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/usecase/interfaces"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	logger, err := logging.NewLogger()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(logger)

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		logger.Fatal("failed to startup the application", zap.Error(err))
	}
}

func getRoutes(logger *zap.Logger) {
	ddb := database.ConnectDynamoDB(logger)

	offerRepo := repository2.NewOfferDynamoRepository(ddb)
	emdRepo := repository2.NewEMDDynamoRepository(ddb)
	loaRepo := repository2.NewLOADynamoRepository(ddb)
	poRepo := repository2.NewPurchaseOrderDynamoRepository(ddb)
	vendorRepo := repository2.NewVendorDynamoRepository(ddb)
	itemRepo := repository2.NewItemDynamoRepository(ddb)

	var extractor interfaces.IFDRExtractor
	gemini, err := extraction.NewGeminiFDRExtractor(context.Background(), os.Getenv("GEMINI_API_KEY"), logger)
	if err != nil {
		logger.Warn("fdr extractor not configured", zap.Error(err))
	} else {
		extractor = gemini
	}

	offerUseCase := usecase.NewOfferUseCase(offerRepo)
	emdUseCase := usecase.NewEMDUseCase(emdRepo, offerRepo, extractor, logger)
	vendorUseCase := usecase.NewVendorUseCase(vendorRepo)
	itemUseCase := usecase.NewItemUseCase(itemRepo)
	loaUseCase := usecase.NewLOAUseCase(loaRepo, vendorRepo)
	poUseCase := usecase.NewPurchaseOrderUseCase(poRepo, loaRepo)

	offerHandler := handlers.NewOfferHandler(offerUseCase)
	emdHandler := handlers.NewEMDHandler(emdUseCase)
	loaHandler := handlers.NewLOAHandler(loaUseCase)
	poHandler := handlers.NewPurchaseOrderHandler(poUseCase)
	vendorHandler := handlers.NewVendorHandler(vendorUseCase)
	itemHandler := handlers.NewItemHandler(itemUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProcurementRoutes(v1, offerHandler, emdHandler, loaHandler, poHandler)
	addMasterDataRoutes(v1, vendorHandler, itemHandler)
	addDashboardRoutes(v1, offerHandler, emdHandler, loaHandler, poHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
