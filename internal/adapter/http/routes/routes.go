package routes

import (
	"os"
	"strconv"

	_ "storefront/docs" // swag-generated documentation
	"storefront/internal/adapter/http/handlers"
	"storefront/internal/adapter/persistence/repository"
	"storefront/internal/infrastructure/database"
	"storefront/internal/infrastructure/fleetops"
	"storefront/internal/infrastructure/payments"
	"storefront/internal/metrics"
	"storefront/internal/usecase"
	"storefront/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	checkoutRepo := repository.NewCheckoutDynamoRepository(ddb)
	mpesaRepo := repository.NewMpesaTransactionDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	cartRepo := repository.NewCartDynamoRepository(ddb)
	storeRepo := repository.NewStoreDynamoRepository(ddb)
	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	quoteRepo := repository.NewServiceQuoteDynamoRepository(ddb)

	var mpesaClient interfaces.IMpesaClient
	client, err := payments.NewMpesaClient(payments.MpesaConfigFromEnv())
	if err != nil {
		log.WithError(err).Warn("[mpesa][routes] push payment gateway not configured")
	} else {
		mpesaClient = client
	}

	var cardGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.WithError(err).Warn("[payment][routes] card gateway not configured")
	} else {
		cardGateway = mpGateway
	}

	vendorClient := fleetops.NewIntegratedVendorClient(
		os.Getenv("INTEGRATED_VENDOR_API_URL"),
		os.Getenv("INTEGRATED_VENDOR_API_KEY"),
	)
	notifier := fleetops.NewWebhookNotifier(os.Getenv("ORDER_EVENTS_WEBHOOK_URL"))
	estimator := fleetops.NewHaversineEstimator()

	checkoutUseCase := usecase.NewCheckoutUseCase(
		checkoutRepo, cartRepo, customerRepo, quoteRepo, storeRepo,
		mpesaClient, mpesaRepo, cardGateway,
	)
	captureUseCase := usecase.NewCaptureUseCase(
		checkoutRepo, customerRepo, quoteRepo, storeRepo, orderRepo,
		mpesaRepo, vendorClient, estimator, notifier,
	)
	reconcilerUseCase := usecase.NewMpesaReconcilerUseCase(mpesaRepo, mpesaClient)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase, captureUseCase)
	mpesaHandler := handlers.NewMpesaHandler(reconcilerUseCase)

	v1 := router.Group("/v1")
	addHealthRoutes(v1)
	addCheckoutRoutes(v1, checkoutHandler, mpesaHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(metrics.PrometheusMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
