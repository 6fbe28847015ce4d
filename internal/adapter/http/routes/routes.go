package routes

import (
	"log"
	"os"
	"strconv"

	_ "stripe_billing/docs"
	"stripe_billing/internal/adapter/http/handlers"
	repository2 "stripe_billing/internal/adapter/persistence/repository"
	"stripe_billing/internal/infrastructure/database"
	"stripe_billing/internal/infrastructure/payments"
	"stripe_billing/internal/usecase"

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
	transactionRepo := repository2.NewTransactionDynamoRepository(ddb)

	gateway, err := payments.NewStripeGateway(os.Getenv("STRIPE_API_SECRET"),
		payments.WithBaseURL(getenvDefault("STRIPE_API_BASE_URL", "https://api.stripe.com")))
	if err != nil {
		log.Fatalf("Stripe gateway not configured: %v", err)
	}

	client := usecase.NewPaymentClient(gateway)
	transactionUseCase := usecase.NewTransactionUseCase(client, transactionRepo)

	chargeHandler := handlers.NewChargeHandler(transactionUseCase, client)
	subscriptionHandler := handlers.NewSubscriptionHandler(client)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, chargeHandler, subscriptionHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
