package main

import (
	"net/http"

	"capstack-api/internal/access"
	"capstack-api/internal/auth"
	"capstack-api/internal/finance"
	"capstack-api/internal/httpapi"
	"capstack-api/internal/savings"

	"github.com/gin-gonic/gin"
)

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers delegate to internal modules.
//
// Guard policy:
// - reads go through OptionalAuth + access.DemoOrReal (never 401)
// - writes go through RequireUser only (no demo variant exists)
func registerRoutes(r *gin.Engine, h httpapi.Handlers, m *auth.Manager) {
	r.Use(cors())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/guest", h.Guest)
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/verify", h.Verify)
	}

	optional := auth.OptionalAuth(m)
	required := auth.RequireUser(m)

	financeGroup := r.Group("/finance")
	financeGroup.Use(optional)
	{
		financeGroup.GET("/health-score", access.DemoOrReal(finance.DemoHealthScore, h.HealthScore))
		financeGroup.GET("/income-score", access.DemoOrReal(finance.DemoIncomeScore, h.IncomeScore))
		financeGroup.GET("/survival-estimate", access.DemoOrReal(finance.DemoSurvivalEstimate, h.SurvivalEstimate))
		financeGroup.GET("/insights", access.DemoOrReal(finance.DemoInsights, h.Insights))
		financeGroup.GET("/emergency-status", access.DemoOrReal(finance.DemoEmergencyStatus, h.EmergencyStatus))
		financeGroup.GET("/savings-projection", access.DemoOrReal(finance.DemoSavingsProjection, h.SavingsProjection))
		financeGroup.GET("/asset-allocation", access.DemoOrReal(finance.DemoAllocation, h.GetAllocation))
	}

	financeWrite := r.Group("/finance")
	financeWrite.Use(required)
	{
		financeWrite.POST("/asset-allocation/update", h.UpdateAllocation)
		financeWrite.POST("/profile/update", h.UpdateProfile)
	}

	savingsGroup := r.Group("/savings")
	savingsGroup.Use(optional)
	{
		savingsGroup.GET("/status", access.DemoOrReal(savings.DemoStatus, h.SavingsStatus))
		savingsGroup.GET("/transactions", access.DemoOrReal(savings.DemoTransactions, h.ListTransactions))
	}

	savingsWrite := r.Group("/savings")
	savingsWrite.Use(required)
	{
		savingsWrite.POST("/plan", h.CreatePlan)
		savingsWrite.POST("/lock", h.LockPlans)
		savingsWrite.POST("/unlock/:id", h.UnlockPlan)
		savingsWrite.POST("/transaction", h.AddTransaction)
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
