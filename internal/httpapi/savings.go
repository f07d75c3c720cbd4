package httpapi

import (
	"net/http"

	"capstack-api/internal/auth"
	"capstack-api/internal/savings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (h Handlers) SavingsStatus(c *gin.Context) {
	uid, err := auth.UserID(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	st, err := h.Savings.Status(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"isGuest":     false,
		"plans":       st.Plans,
		"totalSaved":  st.TotalSaved,
		"totalTarget": st.TotalTarget,
		"lockedCount": st.LockedCount,
	})
}

func (h Handlers) ListTransactions(c *gin.Context) {
	uid, err := auth.UserID(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	txs, err := h.Savings.ListTransactions(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isGuest": false, "transactions": txs})
}

type createPlanRequest struct {
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
}

func (h Handlers) CreatePlan(c *gin.Context) {
	uid, err := auth.UserID(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var req createPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := h.Savings.CreatePlan(c.Request.Context(), uid, req.Name, req.TargetAmount)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": p})
}

// LockPlans locks every plan the caller owns.
func (h Handlers) LockPlans(c *gin.Context) {
	uid, err := auth.UserID(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	n, err := h.Savings.LockAll(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locked": n})
}

func (h Handlers) UnlockPlan(c *gin.Context) {
	uid, err := auth.UserID(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	planID := c.Param("id")
	if planID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "plan id required"})
		return
	}
	if err := h.Savings.Unlock(c.Request.Context(), uid, planID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unlocked": planID})
}

type transactionRequest struct {
	PlanID string          `json:"planId"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note"`
}

func (h Handlers) AddTransaction(c *gin.Context) {
	uid, err := auth.UserID(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	tx, plan, err := h.Savings.AddTransaction(c.Request.Context(), uid, req.PlanID, savings.TransactionType(req.Type), req.Amount, req.Note)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	// Savings balances feed the derived metrics.
	h.Finance.InvalidateMetrics(c.Request.Context(), uid)
	c.JSON(http.StatusOK, gin.H{"transaction": tx, "plan": plan})
}
