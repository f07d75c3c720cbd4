package finance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"capstack-api/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const metricsCacheTTL = 5 * time.Minute

// Service computes personalized financial metrics for authenticated users.
// Derived metrics are cached per user in Redis; the cache is best-effort
// and every failure falls back to a fresh computation.
type Service struct {
	db    *sql.DB
	cache *redis.Client
	clock func() time.Time
}

func NewService(db *sql.DB, cache *redis.Client) *Service {
	return &Service{db: db, cache: cache, clock: time.Now}
}

func metricsCacheKey(userID string) string {
	return "finance:metrics:" + userID
}

// Metrics returns the derived metrics for a user, computing and caching on miss.
func (s *Service) Metrics(ctx context.Context, userID string) (Metrics, error) {
	if userID == "" {
		return Metrics{}, ErrInvalidArgument
	}

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, metricsCacheKey(userID)).Bytes(); err == nil {
			var m Metrics
			if json.Unmarshal(raw, &m) == nil {
				return m, nil
			}
		}
	}

	p, err := getProfile(ctx, s.db, userID)
	if err != nil {
		return Metrics{}, err
	}
	m := ComputeMetrics(p)

	if s.cache != nil {
		if raw, err := json.Marshal(m); err == nil {
			if err := s.cache.Set(ctx, metricsCacheKey(userID), raw, metricsCacheTTL).Err(); err != nil {
				logger.From(ctx).Warn("metrics cache write failed", "err", err)
			}
		}
	}
	return m, nil
}

// InvalidateMetrics drops the cached metrics after any write that changes
// the underlying profile or savings balances.
func (s *Service) InvalidateMetrics(ctx context.Context, userID string) {
	if s.cache == nil || userID == "" {
		return
	}
	if err := s.cache.Del(ctx, metricsCacheKey(userID)).Err(); err != nil {
		logger.From(ctx).Warn("metrics cache invalidation failed", "err", err)
	}
}

// Insights returns human-readable observations about the user's profile.
func (s *Service) Insights(ctx context.Context, userID string) ([]string, error) {
	p, err := getProfile(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	return ComputeInsights(p), nil
}

// EmergencyStatus reports progress toward the six-month buffer.
func (s *Service) EmergencyStatus(ctx context.Context, userID string) (EmergencyStatus, error) {
	p, err := getProfile(ctx, s.db, userID)
	if err != nil {
		return EmergencyStatus{}, err
	}
	return ComputeEmergencyStatus(p), nil
}

// SavingsProjection estimates the user's savings trajectory over the given
// horizon, defaulting to twelve months.
func (s *Service) SavingsProjection(ctx context.Context, userID string, months int) (Projection, error) {
	if userID == "" {
		return Projection{}, ErrInvalidArgument
	}
	p, err := getProfile(ctx, s.db, userID)
	if err != nil {
		return Projection{}, err
	}
	return BuildProjection(p, months), nil
}

// UpdateProfile stores the user's income/expense/debt snapshot.
func (s *Service) UpdateProfile(ctx context.Context, userID string, income, expenses, debt decimal.Decimal) error {
	if userID == "" {
		return ErrInvalidArgument
	}
	if income.IsNegative() || expenses.IsNegative() || debt.IsNegative() {
		return ErrInvalidArgument
	}
	if err := upsertProfile(ctx, s.db, userID, income, expenses, debt, s.clock().UTC()); err != nil {
		return err
	}
	s.InvalidateMetrics(ctx, userID)
	return nil
}

// Allocation returns the stored asset allocation, or a conservative default
// when the user has never set one.
func (s *Service) Allocation(ctx context.Context, userID string) (AssetAllocation, error) {
	if userID == "" {
		return AssetAllocation{}, ErrInvalidArgument
	}
	a, err := getAllocation(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AssetAllocation{UserID: userID, Stocks: 40, Bonds: 30, Cash: 25, RealEstate: 5}, nil
		}
		return AssetAllocation{}, err
	}
	return a, nil
}

// UpdateAllocation validates and persists a new allocation split.
func (s *Service) UpdateAllocation(ctx context.Context, userID string, a AssetAllocation) (AssetAllocation, error) {
	if userID == "" {
		return AssetAllocation{}, ErrInvalidArgument
	}
	if err := a.Validate(); err != nil {
		return AssetAllocation{}, err
	}
	a.UserID = userID
	a.UpdatedAt = s.clock().UTC()
	if err := upsertAllocation(ctx, s.db, a); err != nil {
		return AssetAllocation{}, err
	}
	return a, nil
}
