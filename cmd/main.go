package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/bloodlink-bd/bloodlink-web/config"
	"github.com/bloodlink-bd/bloodlink-web/internal/container"
	"github.com/bloodlink-bd/bloodlink-web/internal/interface/middleware"
	"github.com/bloodlink-bd/bloodlink-web/internal/router"
	"github.com/bloodlink-bd/bloodlink-web/internal/session"
	"github.com/bloodlink-bd/bloodlink-web/internal/upstream"
	"github.com/bloodlink-bd/bloodlink-web/internal/view"
	"github.com/bloodlink-bd/bloodlink-web/pkg/helpers"
	"github.com/bloodlink-bd/bloodlink-web/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	// Redis (sessions and rate limits)
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()

	// Session cookie signing
	jwtManager := helpers.NewJWTManager(cfg.SessionSecret, cfg.SessionTTL)
	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)

	// Platform API client, avatar image host, and session store
	api := upstream.NewClient(cfg.APIBaseURL, logger)
	images := upstream.NewImageHost(cfg.ImageUploadURL, logger)
	sessions := session.NewStore(api, rdb, logger, cfg.SessionTTL)

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetRedis(rdb)
	container.SetJWT(jwtManager)
	container.SetCookies(cookies)
	container.SetAPI(api)
	container.SetImages(images)
	container.SetSessions(sessions)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	r.SetHTMLTemplate(view.Templates())

	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		corsCfg := cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}
		r.Use(cors.New(corsCfg))
	}
	if cfg.Env == "development" || cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	// Every route sees the visitor's session; guards come per-module
	r.Use(middleware.LoadSession(sessions, jwtManager))

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(http.ErrServerClosed, err) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
