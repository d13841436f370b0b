package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/mirtechlab/mt-analytics/core/config"
	"github.com/mirtechlab/mt-analytics/core/database"
	domainSales "github.com/mirtechlab/mt-analytics/domains/sales"
	"github.com/mirtechlab/mt-analytics/infrastructure/valkey"
	"github.com/mirtechlab/mt-analytics/pkg/timewindow"
	"github.com/mirtechlab/mt-analytics/pkg/utils"
	"github.com/mirtechlab/mt-analytics/querycache"
	"github.com/mirtechlab/mt-analytics/repository"
	"github.com/mirtechlab/mt-analytics/ui/rest"
	"github.com/mirtechlab/mt-analytics/ui/rest/middleware"
	"github.com/mirtechlab/mt-analytics/usecase"
)

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Serve the analytics API over http",
	Run:   restServer,
}

func init() {
	rootCmd.AddCommand(restCmd)
}

func restServer(_ *cobra.Command, _ []string) {
	cfg := config.Global

	db, err := database.NewDatabase(cfg)
	if err != nil {
		logrus.Fatalf("[REST] Database connection failed: %v", err)
	}
	if err := repository.Migrate(db); err != nil {
		logrus.Fatalf("[REST] Migration failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cache store: Valkey when configured, otherwise in-process
	var (
		store     querycache.Store
		backend   string
		cachePing func(ctx context.Context) error
		vkClient  *valkey.Client
	)
	if cfg.Cache.ValkeyURI != "" {
		vkConfig, err := valkey.ParseURI(cfg.Cache.ValkeyURI)
		if err != nil {
			logrus.Fatalf("[REST] Invalid VALKEY_URI: %v", err)
		}
		vkConfig.KeyPrefix = cfg.Cache.KeyPrefix

		vkClient, err = valkey.NewClient(vkConfig)
		if err != nil {
			logrus.Fatalf("[REST] Valkey connection failed: %v", err)
		}

		store = querycache.NewValkeyStore(vkClient)
		backend = "valkey"
		cachePing = vkClient.Ping
	} else {
		memStore := querycache.NewMemoryStore()
		memStore.StartCleanup(ctx, 5*time.Minute)
		store = memStore
		backend = "memory"
		logrus.Info("[REST] VALKEY_URI empty, using the in-process cache store")
	}

	cache := querycache.New(store, querycache.Policy{
		DefaultTTL: time.Duration(cfg.Cache.DefaultTTLSeconds) * time.Second,
	})

	// Repositories
	userRepo := repository.NewUserGormRepository(db)
	productRepo := repository.NewProductGormRepository(db)
	orderRepo := repository.NewOrderGormRepository(db)
	transactionRepo := repository.NewTransactionGormRepository(db)
	salesRepo := repository.NewSalesGormRepository(db)
	statsRepo := repository.NewStatsGormRepository(db)

	// Services
	appUsecase := usecase.NewAppService(cfg)
	healthUsecase := usecase.NewHealthService(db, cachePing)
	cacheUsecase := usecase.NewCacheService(cache, backend)
	userUsecase := usecase.NewUserService(userRepo, cache)
	productUsecase := usecase.NewProductService(productRepo, cache)
	orderUsecase := usecase.NewOrderService(orderRepo, cache)
	transactionUsecase := usecase.NewTransactionService(transactionRepo, cache)
	salesUsecase := usecase.NewSalesService(salesRepo, cache)
	statsUsecase := usecase.NewStatsService(statsRepo, cache)

	app := fiber.New(fiber.Config{
		AppName:      config.AppTitle,
		Network:      "tcp",
		ServerHeader: "Hidden",
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.Cors.AllowOrigins, ", "),
		AllowCredentials: cfg.Cors.AllowCredentials,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.Recovery())
	app.Use(limiter.New(limiter.Config{
		Max:        1000,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))
	if cfg.App.Debug {
		app.Use(logger.New())
	}

	apiGroup := app.Group(cfg.App.BasePath)

	rest.InitRestApp(apiGroup, appUsecase, healthUsecase)
	rest.InitRestSales(apiGroup, salesUsecase, cfg.Pagination.MaxLimit)
	rest.InitRestProduct(apiGroup, productUsecase, cfg.Pagination.DefaultLimit, cfg.Pagination.MaxLimit)
	rest.InitRestUser(apiGroup, userUsecase, cfg.Pagination.DefaultLimit, cfg.Pagination.MaxLimit)
	rest.InitRestOrder(apiGroup, orderUsecase, cfg.Pagination.DefaultLimit, cfg.Pagination.MaxLimit)
	rest.InitRestTransaction(apiGroup, transactionUsecase, cfg.Pagination.DefaultLimit, cfg.Pagination.MaxLimit)
	rest.InitRestStats(apiGroup, statsUsecase)
	rest.InitRestCache(apiGroup, cacheUsecase)

	apiGroup.All("/*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(utils.ResponseData{
			Status:  404,
			Code:    "NOT_FOUND",
			Message: "Endpoint not found: " + c.Path(),
		})
	})

	// Preloader with a dedicated session so warming never competes with
	// request-scoped statement state
	if cfg.Cache.PreloadEnabled {
		session := db.Session(&gorm.Session{NewDB: true})
		preloader := querycache.NewPreloader(cache, buildPreloadJobs(
			repository.NewSalesGormRepository(session),
			repository.NewStatsGormRepository(session),
		))
		go preloader.Run(ctx)
	}

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[REST] Termination signal received, shutting down gracefully...")
		cancel()
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("[REST] Error during shutdown: %v", err)
		}
		if vkClient != nil {
			vkClient.Close()
		}
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := app.Listen(":" + cfg.App.Port); err != nil {
		logrus.Fatalln("Failed to start: ", err.Error())
	}
}

// buildPreloadJobs describes the three query shapes warmed per long window.
// Each Params func reproduces, key for key, the parameter set the matching
// live endpoint derives, so warmed entries are hits for real requests.
func buildPreloadJobs(salesRepo repository.ISalesRepository, statsRepo repository.IStatsRepository) []querycache.PreloadJob {
	return []querycache.PreloadJob{
		{
			Endpoint:      "chart_stats",
			AlwaysRefresh: true,
			Params: func(window string) querycache.Params {
				return querycache.Params{"period": window}
			},
			Compute: func(ctx context.Context, window string) (any, error) {
				start, _ := timewindow.Start(time.Now().UTC(), window)
				return statsRepo.Charts(ctx, window, start)
			},
		},
		{
			Endpoint: "fact_sales",
			Params: func(window string) querycache.Params {
				return querycache.Params{
					"product_category":   nil,
					"order_status":       nil,
					"transaction_status": nil,
					"payment_method":     nil,
					"user_email":         nil,
					"min_price":          nil,
					"max_price":          nil,
					"min_quantity":       nil,
					"period":             window,
					"from_date":          nil,
					"skip":               0,
					"limit":              1000,
				}
			},
			Compute: func(ctx context.Context, window string) (any, error) {
				return salesRepo.Find(ctx, domainSales.Filter{
					Period: &window,
					Limit:  1000,
				})
			},
		},
		{
			Endpoint: "summary_stats",
			Params: func(window string) querycache.Params {
				return querycache.Params{"period": window}
			},
			Compute: func(ctx context.Context, window string) (any, error) {
				now := time.Now().UTC()
				start, _ := timewindow.Start(now, window)
				return statsRepo.SummaryWindow(ctx, window, start, now)
			},
		},
	}
}
