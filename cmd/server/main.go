package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"velora-be/internal/cart"
	"velora-be/internal/config"
	"velora-be/internal/db"
	"velora-be/internal/httpapi"
	"velora-be/internal/logger"
	"velora-be/internal/order"
	"velora-be/internal/payment"
	"velora-be/internal/storage"
	"velora-be/internal/wishlist"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	snapshots, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatal("failed to open snapshot store", zap.String("dir", cfg.DataDir), zap.Error(err))
	}

	cartStore := cart.NewStore(snapshots)
	wishlistStore := wishlist.NewStore(snapshots)

	gateway := payment.NewKonnectGateway(payment.GatewayConfig{
		BaseURL:  cfg.PaymentBaseURL,
		APIKey:   cfg.PaymentAPIKey,
		WalletID: cfg.PaymentWalletID,
		Theme:    cfg.PaymentTheme,
		Bypass:   cfg.PaymentBypass,
	})

	// The Postgres archive is optional; the storefront keeps working
	// against the remote order API without it.
	var archive order.Repository
	if cfg.DBHost != "" {
		database, err := db.InitDB(cfg)
		if err != nil {
			log.Fatal("failed to connect order archive db", zap.Error(err))
		}
		defer database.Close()
		archive = order.NewRepository(database)
		log.Info("order archive enabled", zap.String("host", cfg.DBHost))
	} else {
		log.Info("order archive disabled, no DB_HOST configured")
	}

	orderAPI := order.NewClient(cfg.OrderAPIURL)
	orderSvc := order.NewService(orderAPI, gateway, archive, order.ServiceConfig{
		SuccessURL:    cfg.SuccessURL,
		FailURL:       cfg.FailURL,
		BypassPayment: cfg.PaymentBypass,
	})

	router := httpapi.NewRouter(httpapi.RouterConfig{
		Cart:              cartStore,
		Wishlist:          wishlistStore,
		Orders:            orderSvc,
		Archive:           archive,
		JWTSecret:         cfg.JWTSecret,
		AdminEmail:        cfg.AdminEmail,
		AdminPasswordHash: cfg.AdminPasswordHash,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("storefront server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
