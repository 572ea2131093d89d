package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/closetdev/wardrobe/internal/config"
	"github.com/closetdev/wardrobe/internal/es"
	"github.com/closetdev/wardrobe/internal/handlers"
	"github.com/closetdev/wardrobe/internal/logging"
	authmw "github.com/closetdev/wardrobe/internal/middleware/auth"
	"github.com/closetdev/wardrobe/internal/mykafka"
	"github.com/closetdev/wardrobe/internal/repo"
	"github.com/closetdev/wardrobe/internal/service/auth"
	"github.com/closetdev/wardrobe/internal/tokens"
	httpserver "github.com/closetdev/wardrobe/internal/transport/http"
)

const pruneInterval = time.Hour

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	jwtSecret := []byte(configuration.JWT_SECRET)
	gormRepo := repo.NewGormRepo(db)

	var prod *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		prod = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	itemHandler := &handlers.ItemHandler{Repo: gormRepo, Producer: prod, Index: "items"}
	var searchHandler *handlers.SearchHandler
	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		itemHandler.ES = esClient
		searchHandler = &handlers.SearchHandler{ES: esClient, Index: "items"}
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), logging.RequestLogger(logger))

	deps := httpserver.Deps{
		DB:   db,
		Auth: &authmw.Middleware{Repo: gormRepo, JWTSecret: jwtSecret},
		AuthHandler: &handlers.AuthHandler{
			Service:  &auth.Service{Repo: gormRepo, JWTSecret: jwtSecret, TokenTTL: tokens.DefaultTTL},
			Producer: prod,
		},
		ItemHandler:     itemHandler,
		CategoryHandler: &handlers.CategoryHandler{Repo: gormRepo},
		ImageHandler:    &handlers.ImageHandler{Repo: gormRepo},
		SearchHandler:   searchHandler,
	}
	httpserver.Register(e, &deps)

	pruneCtx, stopPrune := context.WithCancel(logging.IntoContext(context.Background(), logger))
	go pruneRevoked(pruneCtx, gormRepo)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	stopPrune()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	} else {
		logger.Error("db handle error", "error", err)
	}

	if prod != nil {
		if err := prod.Close(); err != nil {
			logger.Error("kafka close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

// pruneRevoked keeps the revocation table bounded: entries for tokens that
// have expired on their own are useless and get dropped.
func pruneRevoked(ctx context.Context, r *repo.GormRepo) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, err := r.PruneRevoked(ctx); err != nil {
				logging.FromContext(ctx).Error("revocation prune error", "error", err)
			} else if n > 0 {
				logging.FromContext(ctx).Info("revocations pruned", "count", n)
			}
		}
	}
}
