package ratelimit

import (
	"context"
	"fmt"
	"strings"

	redis "github.com/redis/go-redis/v9"
	"github.com/stitchline/vestra/internal/config"
	"github.com/stitchline/vestra/internal/observability/metrics"
	"go.uber.org/zap"
)

const keyQuoteSubmit = "quote:submit:customer:%s"

// QuoteLimiter throttles quote submissions per customer. It fails open: when
// redis is unreachable the submission proceeds and the error is logged.
type QuoteLimiter struct {
	log        *zap.Logger
	bucket     *TokenBucket
	storefront *config.StorefrontConfigHolder
	metrics    *metrics.Metrics
}

func NewQuoteLimiter(cfg config.Config, storefront *config.StorefrontConfigHolder, log *zap.Logger, m *metrics.Metrics) *QuoteLimiter {
	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		return &QuoteLimiter{log: log.Named("ratelimit.quote"), storefront: storefront, metrics: m}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(cfg.RedisPassword),
		DB:       cfg.RedisDB,
	})

	return &QuoteLimiter{
		log:        log.Named("ratelimit.quote"),
		bucket:     NewTokenBucket(client),
		storefront: storefront,
		metrics:    m,
	}
}

// Allow reports whether the customer may submit another quote right now.
func (l *QuoteLimiter) Allow(ctx context.Context, customerID string) bool {
	if l == nil || l.bucket == nil {
		return true
	}

	limit := l.storefront.Current().QuoteRateLimit
	rate := float64(limit.RefillPerMinute) / 60.0
	if rate <= 0 || limit.Capacity <= 0 {
		return true
	}

	res, err := l.bucket.Allow(ctx, fmt.Sprintf(keyQuoteSubmit, customerID), rate, limit.Capacity)
	if err != nil {
		l.log.Warn("rate limit check failed, allowing", zap.Error(err))
		return true
	}

	if res.Allowed {
		l.metrics.RecordRateLimitAllowed("quote_submit")
	} else {
		l.metrics.RecordRateLimitDenied("quote_submit", "bucket_empty")
	}
	return res.Allowed
}
