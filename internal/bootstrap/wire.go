package bootstrap

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/helpbridge/coord-service/internal/application/account"
	"github.com/helpbridge/coord-service/internal/application/coordination"
	"github.com/helpbridge/coord-service/internal/config"
	"github.com/helpbridge/coord-service/internal/infrastructure/db/postgres"
	"github.com/helpbridge/coord-service/internal/infrastructure/email"
	"github.com/helpbridge/coord-service/internal/infrastructure/memory"
	"github.com/helpbridge/coord-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/helpbridge/coord-service/internal/infrastructure/redis"
	"github.com/helpbridge/coord-service/internal/infrastructure/security"
	"github.com/helpbridge/coord-service/internal/logger"
	http_handlers "github.com/helpbridge/coord-service/internal/transport/http/handlers"
	"github.com/helpbridge/coord-service/internal/transport/http/middleware"
	"github.com/helpbridge/coord-service/internal/transport/http/response"
	"github.com/helpbridge/coord-service/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing.
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB   func(dsn string, debug bool) (*sql.DB, error)
	Migrate func(ctx context.Context, db *sql.DB) error

	NewRedis func(addr, password string, db int) RedisClient

	NewPublisher func(rabbitURL string) (account.Notifier, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

type RedisClient interface {
	Ping(ctx context.Context) error
	Close() error
}

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB:      config.NewDB,
		Migrate:    postgres.RunMigrations,
		NewRedis: func(addr, password string, db int) RedisClient {
			return redis.New(addr, password, db)
		},
		NewPublisher: func(rabbitURL string) (account.Notifier, error) {
			return rabbitmq.NewPublisher(rabbitURL)
		},
		NewRouter: router.New,
	}
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) db + schema
	db, err := deps.NewDB(cfg.DBAddr, cfg.DBDebug)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	if deps.Migrate != nil {
		if err := deps.Migrate(context.Background(), db); err != nil {
			runCleanup(cleanupFns)
			return nil, nil, err
		}
	}

	userRepo := postgres.NewUserRepo(db)
	requestRepo := postgres.NewRequestRepo(db)

	// 2) redis (best-effort; limiter fails open without it)
	var limiter *redis.FixedWindowLimiter
	if cfg.RedisAddr != "" && deps.NewRedis != nil {
		c := deps.NewRedis(cfg.RedisAddr, "", 0)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := c.Ping(ctx); err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; rate limiting disabled")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			if rc, ok := c.(*redis.Client); ok {
				limiter = redis.NewFixedWindowLimiter(rc)
			}
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
	}

	// 3) notifier per MAILER
	var notifier account.Notifier
	switch cfg.Mailer {
	case "rabbit":
		pub, err := deps.NewPublisher(cfg.RabbitURL)
		if err != nil {
			if cfg.Env == "dev" {
				logger.Logger.Warn().Err(err).Msg("rabbitmq unavailable; using noop notifier")
				pub = memory.NewNoopNotifier()
			} else {
				runCleanup(cleanupFns)
				return nil, nil, err
			}
		}
		if c, ok := pub.(interface{ Close() error }); ok {
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
		notifier = pub
	case "smtp":
		notifier = email.NewSMTPSender(email.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			Timeout:  10 * time.Second,
			Insecure: cfg.Env == "dev",
		}, logger.Logger)
	default:
		notifier = memory.NewNoopNotifier()
	}

	// 4) security
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, "coord-service")

	// 5) services
	accountSvc := account.NewService(userRepo, hasher, signer, notifier, account.Config{
		TokenTTL:           cfg.TokenTTL,
		VerifyEmailBaseURL: cfg.VerifyEmailBaseURL,
	})
	coordSvc := coordination.NewService(requestRepo, userRepo)

	// 6) transport
	writeErr := middleware.WriteErrFunc(response.WriteError)
	authMW := middleware.Auth(signer, writeErr)
	adminMW := middleware.RequireAdmin(writeErr)

	var registerLimitMW, loginLimitMW func(http.Handler) http.Handler
	if limiter != nil {
		registerLimitMW = middleware.RateLimitFixedWindow(limiter, middleware.FixedWindowConfig{
			RouteKey: "register",
			Limit:    10,
			Window:   time.Minute,
		}, writeErr)
		loginLimitMW = middleware.RateLimitFixedWindow(limiter, middleware.FixedWindowConfig{
			RouteKey: "login",
			Limit:    20,
			Window:   time.Minute,
		}, writeErr)
	}

	handler, err := deps.NewRouter(router.Deps{
		Health:          http_handlers.NewHealthHandler(db),
		Account:         http_handlers.NewAccountHandler(accountSvc, cfg.FrontendLoginURL),
		Coordination:    http_handlers.NewCoordinationHandler(coordSvc),
		AuthMW:          authMW,
		AdminMW:         adminMW,
		RegisterLimitMW: registerLimitMW,
		LoginLimitMW:    loginLimitMW,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() { runCleanup(cleanupFns) }
	return srv, cleanup, nil
}

func runCleanup(fns []func()) {
	// reverse order, like deferred teardown
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
