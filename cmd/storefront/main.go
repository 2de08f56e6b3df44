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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/ranchers-app/storefront/internal/account"
	"github.com/ranchers-app/storefront/internal/backend"
	"github.com/ranchers-app/storefront/internal/branches"
	"github.com/ranchers-app/storefront/internal/cache"
	"github.com/ranchers-app/storefront/internal/cart"
	"github.com/ranchers-app/storefront/internal/checkout"
	"github.com/ranchers-app/storefront/internal/config"
	h "github.com/ranchers-app/storefront/internal/http"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load(logger)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if level, errLevel := logrus.ParseLevel(cfg.LogLevel); errLevel == nil {
		logger.SetLevel(level)
	}

	ctx := context.Background()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	logger.Info("Redis ping succeeded")

	directory, err := branches.Load()
	if err != nil {
		log.Fatalf("Failed to load branch directory: %v", err)
	}

	api := backend.NewClient(cfg.DataAPIURL, cfg.DataAPIKey, cfg.RequestTimeout, logger)
	profileCache := cache.NewRedisCache(redisClient, cfg.ProfileCacheTTL)
	carts := cart.NewManager()
	accountService := account.NewService(api, profileCache, logger)
	checkoutService := checkout.NewService(carts, api, logger)

	authHandler := h.NewAuthHandler(api, accountService, carts, cfg.RequestTimeout)
	cartHandler := h.NewCartHandler(carts)
	checkoutHandler := h.NewCheckoutHandler(checkoutService, cfg.RequestTimeout)
	accountHandler := h.NewAccountHandler(accountService, cfg.RequestTimeout)
	branchHandler := h.NewBranchHandler(directory)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(h.RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(h.SessionTokenMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)
		r.Post("/auth/password", authHandler.ChangePassword)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Put("/", cartHandler.SetItems)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/items", cartHandler.AddItem)
			r.Delete("/items/{index}", cartHandler.RemoveItem)
		})

		r.Post("/checkout", checkoutHandler.Checkout)

		r.Get("/profile", accountHandler.GetProfile)
		r.Post("/feedback", accountHandler.SubmitFeedback)
		r.Post("/contact", accountHandler.SubmitQuery)
		r.Get("/orders", accountHandler.OrderHistory)

		r.Get("/cities", branchHandler.ListCities)
		r.Get("/branches", branchHandler.ListBranches)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Storefront service starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	logger.Info("server exited")
}
