// Volunteer signup gateway – HTTP entry point.
//
// Start-up
// --------
//
//  1. Load configuration from the environment.
//  2. Start the zerolog logger (console output when LOG_PRETTY is set).
//  3. Connect Redis when REDIS_ADDR is set; otherwise guard submissions in
//     process.
//  4. Wire validator, volunteer backend client, and signup service.
//  5. Serve the echo router until SIGINT/SIGTERM, then drain.
//
// @title       Volunteer Signup Gateway API
// @version     1.0
// @description Validates volunteer signup forms and forwards them to the volunteer backend.
// @BasePath    /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/volunteer-ngo/signup-gateway/internal/api"
	"github.com/volunteer-ngo/signup-gateway/internal/core/ports"
	"github.com/volunteer-ngo/signup-gateway/internal/core/service"
	"github.com/volunteer-ngo/signup-gateway/internal/infrastructure/db/redis"
	"github.com/volunteer-ngo/signup-gateway/internal/infrastructure/guard"
	"github.com/volunteer-ngo/signup-gateway/internal/infrastructure/http/volunteer"
	"github.com/volunteer-ngo/signup-gateway/internal/pkg/config"
	"github.com/volunteer-ngo/signup-gateway/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "signup-gateway",
		Env:     cfg.Env,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.ServerURL() == "" {
		log.Warn().Msg("SERVER_URL is not set, signups will be refused")
	}

	//
	// ── 1.  Submit guard ────────────────────────────────────────────────
	//
	var (
		rdb         *goredis.Client
		submitGuard ports.SubmitGuard = guard.NewLocal()
	)
	redisCfg := redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB}
	if redisCfg.Enabled() {
		var err error
		rdb, err = redis.Connect(ctx, redisCfg)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis connect failed")
		}
		defer rdb.Close()
		submitGuard = redis.NewInflightGuard(rdb, cfg.Redis.InflightTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis online")
	}

	//
	// ── 2.  Signup service ──────────────────────────────────────────────
	//
	client := volunteer.NewClient(volunteer.Config{Timeout: cfg.Upstream.Timeout})
	signup := service.NewSignupService(
		service.NewSignupValidator(),
		client,
		submitGuard,
		cfg.ServerURL,
		logger.Component("signup"),
	)

	//
	// ── 3.  HTTP server ─────────────────────────────────────────────────
	//
	e := api.NewRouter(api.Deps{
		Signup:    signup,
		Redis:     rdb,
		ServerURL: cfg.ServerURL,
		Log:       logger.Component("http"),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
