package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/TourBooker/internal/config"
	"github.com/stpnv0/TourBooker/internal/handler"
	"github.com/stpnv0/TourBooker/internal/middleware"
	"github.com/stpnv0/TourBooker/internal/notification"
	"github.com/stpnv0/TourBooker/internal/queue"
	"github.com/stpnv0/TourBooker/internal/ratelimit"
	"github.com/stpnv0/TourBooker/internal/repository"
	"github.com/stpnv0/TourBooker/internal/repository/memory"
	"github.com/stpnv0/TourBooker/internal/router"
	"github.com/stpnv0/TourBooker/internal/scheduler"
	"github.com/stpnv0/TourBooker/internal/service"
	"github.com/stpnv0/TourBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type publisher interface {
	ports.EventPublisher
	Close() error
}

type repositories struct {
	ledger       ports.LedgerRepo
	reservations ports.ReservationRepo
	items        ports.ItemRepo
	carts        ports.CartRepo
	users        ports.UserRepo
	tx           ports.Transactor
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	publisher  publisher
	limiter    *ratelimit.LocalLimiter
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"TourBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	repos, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(repos); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (repositories, error) {
	if a.cfg.Storage.Driver == "memory" {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "using in-memory storage, data is lost on restart")
		store := memory.New()
		return repositories{
			ledger:       store.Ledger(),
			reservations: store.Reservations(),
			items:        store.Items(),
			carts:        store.Carts(),
			users:        store.Users(),
			tx:           store,
		}, nil
	}

	if err := a.runMigrations(); err != nil {
		return repositories{}, fmt.Errorf("migrations: %w", err)
	}

	if err := a.initDB(); err != nil {
		return repositories{}, fmt.Errorf("init db: %w", err)
	}

	return repositories{
		ledger:       repository.NewLedgerRepo(a.db),
		reservations: repository.NewReservationRepo(a.db),
		items:        repository.NewItemRepo(a.db),
		carts:        repository.NewCartRepo(a.db),
		users:        repository.NewUserRepo(a.db),
		tx:           repository.NewTxManager(a.db),
	}, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initPublisher() error {
	if a.cfg.RabbitMQ.URL == "" {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "rabbitmq url is empty, reservation events disabled")
		a.publisher = queue.NopPublisher{Logger: a.log}
		return nil
	}

	p, err := queue.NewPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange, a.log)
	if err != nil {
		return err
	}
	a.publisher = p
	return nil
}

func (a *App) initRateLimit() ginext.HandlerFunc {
	rl := a.cfg.RateLimit
	if !rl.Enabled {
		return nil
	}

	var l ratelimit.Limiter
	if a.cfg.Redis.Addr != "" {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		l = ratelimit.NewRedisLimiter(a.redis, rl.Limiter())
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "rate limiter backed by redis", logger.String("addr", a.cfg.Redis.Addr))
	} else {
		a.limiter = ratelimit.NewLocalLimiter(rl.Limiter())
		l = a.limiter
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "rate limiter in process")
	}

	return middleware.RateLimit(l, rl.Capacity, a.log)
}

func (a *App) initServices(repos repositories) error {
	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	if err = a.initPublisher(); err != nil {
		return fmt.Errorf("init publisher: %w", err)
	}

	reservationService := service.NewReservationService(
		repos.ledger, repos.reservations, repos.tx, repos.items, repos.users,
		n, a.publisher, a.log,
		service.ReservationConfig{
			HoldTTL:     a.cfg.Reservation.HoldTTL,
			ExpireBatch: a.cfg.Reservation.ExpireBatch,
		},
	)
	itemService := service.NewItemService(
		repos.items, repos.ledger, repos.reservations, repos.tx, a.publisher, a.log,
		service.ItemConfig{
			IntervalMinutes: a.cfg.Slots.IntervalMinutes,
			MaxRangeDays:    a.cfg.Slots.MaxRangeDays,
		},
	)
	cartService := service.NewCartService(
		repos.carts, repos.reservations, reservationService, repos.items, repos.users, repos.tx,
		n, a.log, a.cfg.Pricing.Tier(),
	)
	userService := service.NewUserService(repos.users, a.cfg.Pricing.Tier())

	a.scheduler = scheduler.New(
		reservationService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(itemService, cartService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		router.Guards{
			Auth:      middleware.Auth(a.cfg.Auth.JWTSecret),
			Admin:     middleware.RequireRole(a.cfg.Auth.AdminRole),
			RateLimit: a.initRateLimit(),
		},
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)
	if a.limiter != nil {
		go a.limiter.Cleanup(ctx, time.Minute)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.publisher.Close(); err != nil {
		a.log.LogAttrs(context.Background(), logger.ErrorLevel, "close publisher", logger.String("error", err.Error()))
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.LogAttrs(context.Background(), logger.ErrorLevel, "close redis", logger.String("error", err.Error()))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "migrations applied successfully")
	return nil
}
