package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	ginmiddleware "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
)

// NewLimiterStore keeps rate counters in redis when rdb is set and in process otherwise.
func NewLimiterStore(rdb *redis.Client, prefix string) (limiter.Store, error) {
	options := limiter.StoreOptions{
		Prefix:          prefix,
		MaxRetry:        3,
		CleanUpInterval: limiter.DefaultCleanUpInterval,
	}

	if rdb == nil {
		return memory.NewStoreWithOptions(options), nil
	}

	store, err := redisstore.NewStoreWithOptions(rdb, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
	}

	return store, nil
}

// RateLimit limits requests per authenticated user, or per client IP before
// authentication. rate uses the limiter format, e.g. "10-M".
func RateLimit(store limiter.Store, rate string) (gin.HandlerFunc, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit '%v': %w", rate, err)
	}

	return ginmiddleware.NewMiddleware(
		limiter.New(store, parsed),
		ginmiddleware.WithKeyGetter(func(c *gin.Context) string {
			if userID := c.GetString(UserIDKey); len(userID) != 0 {
				return userID
			}
			return c.ClientIP()
		}),
		ginmiddleware.WithLimitReachedHandler(func(c *gin.Context) {
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "too many booking attempts, please wait a moment"})
		}),
		ginmiddleware.WithErrorHandler(func(c *gin.Context, err error) {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to check rate limit"})
		}),
	), nil
}
