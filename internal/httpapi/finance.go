package httpapi

import (
	"net/http"
	"strconv"

	"capstack-api/internal/auth"
	"capstack-api/internal/finance"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Real computation paths for the optionally-guarded finance reads. The
// demo branch never reaches these; identity is guaranteed authenticated.

func (h Handlers) HealthScore(c *gin.Context) {
	uid, err := auth.UserID(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	m, err := h.Finance.Metrics(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isGuest": false, "healthScore": m.HealthScore})
}

func (h Handlers) IncomeScore(c *gin.Context) {
	uid, err := auth.UserID(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	m, err := h.Finance.Metrics(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isGuest": false, "incomeScore": m.IncomeScore})
}

func (h Handlers) SurvivalEstimate(c *gin.Context) {
	uid, err := auth.UserID(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	m, err := h.Finance.Metrics(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isGuest": false, "survivalMonths": m.SurvivalMonths, "disposableIncome": m.DisposableIncome})
}

func (h Handlers) Insights(c *gin.Context) {
	uid, err := auth.UserID(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	insights, err := h.Finance.Insights(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isGuest": false, "insights": insights})
}

func (h Handlers) EmergencyStatus(c *gin.Context) {
	uid, err := auth.UserID(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	st, err := h.Finance.EmergencyStatus(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isGuest": false, "emergency": st})
}

// SavingsProjection estimates the savings trajectory; the horizon comes
// from an optional ?months= query parameter.
func (h Handlers) SavingsProjection(c *gin.Context) {
	uid, err := auth.UserID(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	months := 0
	if raw := c.Query("months"); raw != "" {
		months, err = strconv.Atoi(raw)
		if err != nil || months <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "months must be a positive integer"})
			return
		}
	}
	proj, err := h.Finance.SavingsProjection(c.Request.Context(), uid, months)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isGuest": false, "projection": proj})
}

func (h Handlers) GetAllocation(c *gin.Context) {
	uid, err := auth.UserID(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	a, err := h.Finance.Allocation(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isGuest": false, "allocation": a})
}

type updateAllocationRequest struct {
	Stocks     int `json:"stocks"`
	Bonds      int `json:"bonds"`
	Cash       int `json:"cash"`
	RealEstate int `json:"realEstate"`
}

// UpdateAllocation sits behind RequireUser; there is no demo variant.
func (h Handlers) UpdateAllocation(c *gin.Context) {
	uid, err := auth.UserID(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var req updateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	a, err := h.Finance.UpdateAllocation(c.Request.Context(), uid, finance.AssetAllocation{
		Stocks:     req.Stocks,
		Bonds:      req.Bonds,
		Cash:       req.Cash,
		RealEstate: req.RealEstate,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"allocation": a})
}

type updateProfileRequest struct {
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	TotalDebt       decimal.Decimal `json:"totalDebt"`
}

// UpdateProfile stores the income/expense/debt snapshot the metrics are
// derived from. Behind RequireUser.
func (h Handlers) UpdateProfile(c *gin.Context) {
	uid, err := auth.UserID(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := h.Finance.UpdateProfile(c.Request.Context(), uid, req.MonthlyIncome, req.MonthlyExpenses, req.TotalDebt); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}
