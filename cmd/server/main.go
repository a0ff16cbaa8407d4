package main // Entry point package

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/devdynamic/studio-backend/internal/bootstrap"
	"github.com/devdynamic/studio-backend/internal/config"
	"github.com/devdynamic/studio-backend/internal/database"
	"github.com/devdynamic/studio-backend/internal/handler"
	"github.com/devdynamic/studio-backend/internal/middleware"
	"github.com/devdynamic/studio-backend/internal/queue"
	"github.com/devdynamic/studio-backend/internal/repository"
	"github.com/devdynamic/studio-backend/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("database: %v", err)
	}
	cancel()

	users := repository.NewUserRepo(db)
	projects := repository.NewProjectRepo(db)
	blogs := repository.NewBlogRepo(db)
	contacts := repository.NewContactRepo(db)

	// Explicit idempotent bootstrap, not an import side effect.
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	bootstrap.SeedAdmin(seedCtx, users, cfg)
	seedCancel()

	// Redis is optional: a nil client turns the cache and the auth
	// throttle into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, response cache and auth throttle disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	buster := &middleware.CacheBuster{Rdb: rdb, Prefix: cacheCfg.Prefix}

	authHandler := handler.NewAuthHandler(cfg, users)
	projectHandler := handler.NewProjectHandler(projects, buster)
	blogHandler := handler.NewBlogHandler(blogs, buster)
	contactHandler := handler.NewContactHandler(contacts)
	adminHandler := handler.NewAdminHandler(users, projects, blogs, contacts)

	// Inquiry notification consumer; reconnects forever in the background.
	go func() {
		if err := queue.StartContactConsumer(); err != nil {
			log.Printf("contact consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HTTPErrorHandler = router.NewHTTPErrorHandler()
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	router.RegisterRoutes(e)
	router.RegisterPublic(e, projectHandler, blogHandler, contactHandler, middleware.PublicCache(cacheCfg, rdb))
	router.RegisterAuth(e, authHandler, users, cfg.JWTSecret, middleware.AuthThrottle(config.LoadThrottleConfig(), rdb))
	router.RegisterAdmin(e, adminHandler, projectHandler, blogHandler, contactHandler, users, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
