// Package httpapi holds the HTTP handlers. Keep these thin: parse and
// validate input, call internal services, map errors to status codes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"capstack-api/internal/auth"
	"capstack-api/internal/config"
	"capstack-api/internal/finance"
	"capstack-api/internal/savings"
	"capstack-api/internal/users"
	"capstack-api/pkg/logger"
	"capstack-api/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// Service interfaces are defined here, at the consumer, so handler tests
// can substitute fakes.

type UserService interface {
	Register(ctx context.Context, email, name, pin string) (users.User, error)
	Login(ctx context.Context, email, pin string) (users.User, error)
	CreateGuest(ctx context.Context) (users.User, error)
	GetByID(ctx context.Context, id string) (users.User, error)
}

type FinanceService interface {
	Metrics(ctx context.Context, userID string) (finance.Metrics, error)
	Insights(ctx context.Context, userID string) ([]string, error)
	EmergencyStatus(ctx context.Context, userID string) (finance.EmergencyStatus, error)
	SavingsProjection(ctx context.Context, userID string, months int) (finance.Projection, error)
	UpdateProfile(ctx context.Context, userID string, income, expenses, debt decimal.Decimal) error
	Allocation(ctx context.Context, userID string) (finance.AssetAllocation, error)
	UpdateAllocation(ctx context.Context, userID string, a finance.AssetAllocation) (finance.AssetAllocation, error)
	InvalidateMetrics(ctx context.Context, userID string)
}

type SavingsService interface {
	CreatePlan(ctx context.Context, userID, name string, target decimal.Decimal) (savings.Plan, error)
	Status(ctx context.Context, userID string) (savings.Status, error)
	LockAll(ctx context.Context, userID string) (int64, error)
	Unlock(ctx context.Context, userID, planID string) error
	AddTransaction(ctx context.Context, userID, planID string, kind savings.TransactionType, amount decimal.Decimal, note string) (savings.Transaction, savings.Plan, error)
	ListTransactions(ctx context.Context, userID string) ([]savings.Transaction, error)
}

// Handlers groups HTTP handlers for dependency injection.
type Handlers struct {
	Auth    *auth.Manager
	Users   UserService
	Finance FinanceService
	Savings SavingsService

	// RDB backs the guest-creation rate cap; nil disables the cap.
	RDB      *redis.Client
	GuestCfg config.GuestConfig
}

type sessionResponse struct {
	Token string     `json:"token"`
	User  users.User `json:"user"`
}

func (h Handlers) issueSession(c *gin.Context, u users.User) {
	tok, err := h.Auth.Issue(time.Now(), u.ID, u.Email, u.Name, u.IsGuest)
	if err != nil {
		writeInternal(c, "issuing token", err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse{Token: tok, User: u})
}

// --- Auth ---

type registerRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	PIN   string `json:"pin"`
}

func (h Handlers) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	u, err := h.Users.Register(c.Request.Context(), req.Email, req.Name, req.PIN)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.issueSession(c, u)
}

type loginRequest struct {
	Email string `json:"email"`
	PIN   string `json:"pin"`
}

func (h Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	u, err := h.Users.Login(c.Request.Context(), req.Email, req.PIN)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.issueSession(c, u)
}

// Guest creates a disposable guest account and issues its session token.
// The body is ignored; an empty POST is the expected call.
func (h Handlers) Guest(c *gin.Context) {
	ctx := c.Request.Context()

	if h.RDB != nil {
		key := "guest:rate:" + c.ClientIP()
		ok, err := utils.AllowRate(ctx, h.RDB, key, h.GuestCfg.RateLimit, h.GuestCfg.RateWindow)
		if err != nil {
			// Availability over strictness: a broken cap must not take
			// guest access down with it.
			logger.From(ctx).Warn("guest rate cap unavailable", "err", err)
		} else if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many guest sessions. Try again shortly."})
			return
		}
	}

	u, err := h.Users.CreateGuest(ctx)
	if err != nil {
		writeInternal(c, "creating guest", err)
		return
	}
	h.issueSession(c, u)
}

// Verify reports whether the presented token is valid, with its decoded
// payload. Unlike RequireUser it accepts guest tokens; it answers "is this
// session live", not "may this session write".
func (h Handlers) Verify(c *gin.Context) {
	raw := strings.TrimSpace(c.GetHeader("Authorization"))
	tok := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
	if raw == "" || !strings.HasPrefix(raw, "Bearer ") || tok == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"valid": false, "error": "Invalid token format"})
		return
	}

	claims, err := h.Auth.Verify(tok, time.Now())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"valid": false, "error": "Invalid or expired token"})
		return
	}

	// A decoded token can outlive its subject: guest accounts are swept
	// after they expire. Confirm the account still exists.
	if _, err := h.Users.GetByID(c.Request.Context(), claims.UserID); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"valid": false, "error": "Account no longer exists"})
			return
		}
		writeInternal(c, "looking up session account", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"payload": gin.H{
			"userId":  claims.UserID,
			"email":   claims.Email,
			"name":    claims.Name,
			"isGuest": claims.IsGuest,
		},
	})
}
