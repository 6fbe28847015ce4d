package routes

import (
	"stripe_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCharges       = "/charges"
	PathCustomers     = "/customers"
	PathSubscriptions = "/subscriptions"
	PathPlans         = "/plans"
	PathCoupons       = "/coupons"
	PathTransactions  = "/transactions"
)

func addPaymentRoutes(rg *gin.RouterGroup, chargeHandler *handlers.ChargeHandler, subscriptionHandler *handlers.SubscriptionHandler) {
	charges := rg.Group(PathCharges)
	{
		charges.POST("", chargeHandler.CreateCharge)
		charges.GET("/:charge_id", chargeHandler.GetCharge)
		charges.POST("/:charge_id/refunds", chargeHandler.RefundCharge)
		charges.GET("/:charge_id/transactions", chargeHandler.ListChargeTransactions)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.POST("", subscriptionHandler.CreateCustomer)
		customers.GET("/:customer_id", subscriptionHandler.GetCustomer)
		customers.POST("/:customer_id/charges", chargeHandler.ChargeCustomer)
		customers.POST("/:customer_id/subscriptions", subscriptionHandler.SubscribeExisting)
	}

	rg.POST(PathSubscriptions, subscriptionHandler.Subscribe)
	rg.GET(PathPlans+"/:plan_id", subscriptionHandler.GetPlan)
	rg.GET(PathCoupons+"/:coupon_id", subscriptionHandler.GetCoupon)
	rg.GET(PathTransactions+"/:transaction_id", chargeHandler.GetTransaction)
}
