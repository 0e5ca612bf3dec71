package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/catalinarubies/field-booking/api"
	bk "github.com/catalinarubies/field-booking/booking"
	"github.com/catalinarubies/field-booking/config"
	"github.com/catalinarubies/field-booking/database"
	"github.com/catalinarubies/field-booking/events"
	"github.com/catalinarubies/field-booking/logging"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// fields served when running with STORE=memory
var devFields = []bk.Field{
	{ID: "1", Name: "Cancha Central", Sport: "football", Location: "Palermo", PricePerHour: 4000, Description: "5-a-side, synthetic grass", Available: true},
	{ID: "2", Name: "Court 2", Sport: "padel", Location: "Belgrano", PricePerHour: 3500, Description: "Covered glass court", Available: true},
	{ID: "3", Name: "Old Pitch", Sport: "football", Location: "Caballito", PricePerHour: 2000, Description: "Closed for maintenance", Available: false},
}

type store interface {
	bk.BookingRepository
	bk.FieldRepository
}

type eventNotifier interface {
	bk.Notifier
	bk.FieldNotifier
}

func main() {
	cfg, err := config.LoadServer()

	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	rootLogger, closeLog := logging.New(logging.Options{Format: cfg.LogFormat, File: cfg.LogFile})
	defer closeLog()
	slog.SetDefault(rootLogger)

	logger := slog.Default().With("component", "main")
	ctx := context.Background()

	var repo store

	switch cfg.Store {
	case config.StoreMemory:
		logger.Info("using in-memory booking store")
		repo = bk.NewMemoryRepository(devFields...)
	default:
		logger.Info("connecting to PostgreSQL database")
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)

		if err != nil {
			logger.Error("Unable to connect to database", "err", err)
			os.Exit(1)
		}

		defer pool.Close()

		_, err = pool.Exec(ctx, database.SetupSQL)
		if err != nil {
			logger.Error("failed to initialize tables", "err", err)
			os.Exit(1)
		} else {
			logger.Info("initialized database tables")
		}

		repo = bk.NewRepository(pool)
	}

	var notifier eventNotifier = events.Discard{}

	if len(cfg.RabbitMQURL) != 0 {
		publisher, err := events.NewPublisher(cfg.RabbitMQURL, events.Exchange)

		if err != nil {
			logger.Error("failed to connect to RabbitMQ", "err", err)
			os.Exit(1)
		}

		defer publisher.Close()
		notifier = publisher
	}

	var rdb *redis.Client

	if len(cfg.RedisURL) != 0 {
		opts, err := redis.ParseURL(cfg.RedisURL)

		if err != nil {
			logger.Error("invalid REDIS_URL", "err", err)
			os.Exit(1)
		}

		rdb = redis.NewClient(opts)
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Error("failed to connect to Redis", "err", err)
			os.Exit(1)
		}
	}

	limiterStore, err := api.NewLimiterStore(rdb, "field_booking:create")

	if err != nil {
		logger.Error("failed to create rate limiter store", "err", err)
		os.Exit(1)
	}

	rateLimit, err := api.RateLimit(limiterStore, cfg.RateLimit)

	if err != nil {
		logger.Error("failed to create rate limiter", "err", err)
		os.Exit(1)
	}

	bookingService := bk.NewService(repo, notifier, bk.ZonedClock{Location: cfg.Location()})
	fieldService := bk.NewFieldService(repo, notifier)
	auth := api.BearerAuth([]byte(cfg.JWTSecret))

	r := gin.Default()
	r.Use(api.CORS(cfg.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// FIELDS API

	fieldRouter := r.Group("/fields")
	fieldHandler := api.NewFieldHandler(fieldService)

	fieldHandler.Register(fieldRouter, auth)

	// BOOKING API

	bookingRouter := r.Group("/bookings")
	bookingRouter.Use(auth)
	bookingHandler := api.NewBookingHandler(bookingService)

	bookingHandler.Register(bookingRouter, rateLimit)

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
