package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"orders-api/internal/auth"
	"orders-api/internal/configs"
	httpdelivery "orders-api/internal/delivery/http"
	"orders-api/internal/repository"
	"orders-api/internal/repository/postgres"
	"orders-api/internal/service"
)

// @title orders API
// @version 1.0
// @description Multi-tenant order management service. Registered users own orders
// @description composed of order lines and follow-up tasks; every order endpoint is
// @description scoped to the authenticated owner.

// @host localhost:8081
// @basePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	logrus.Print("config parsed")

	db, err := postgres.ConnectURL(cfg.PgDSN())
	if err != nil {
		logrus.Fatalf("postgres connect: %s", err)
	}
	defer func() {
		if derr := db.Close(); derr != nil {
			logrus.Errorf("db close: %v", derr)
		}
	}()
	logrus.Print("connected to postgres")

	if err := postgres.Migrate(db); err != nil {
		logrus.Fatalf("migrate: %s", err)
	}
	logrus.Print("schema migrated")

	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMin)*time.Minute)

	repo := repository.NewRepository(db)
	svc := service.NewService(repo, tokens, cfg.BcryptCost)

	h := httpdelivery.NewHandler(svc, svc, tokens)
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("http run: %v", err)
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit
	logrus.Print("shutdown signal received")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}
	logrus.Print("service stopped")
}
