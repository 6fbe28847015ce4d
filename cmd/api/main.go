package main

import (
	"stripe_billing/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Stripe Billing Facade API
// @version         1.0
// @description     Payment facade over the Stripe API (charges, refunds, customers, subscriptions) with a DynamoDB transaction ledger.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
