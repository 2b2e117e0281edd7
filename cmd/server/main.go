package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/kmazurek/orders-api/internal/config"
	"github.com/kmazurek/orders-api/internal/db"
	"github.com/kmazurek/orders-api/internal/events"
	"github.com/kmazurek/orders-api/internal/httpserver"
	"github.com/kmazurek/orders-api/internal/logging"
	"github.com/kmazurek/orders-api/internal/middleware/loggingmw"
	"github.com/kmazurek/orders-api/internal/repo"
	"github.com/kmazurek/orders-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	gormRepo := &repo.GormRepo{DB: database}
	customerSvc := &service.CustomerService{Repo: gormRepo}
	productSvc := &service.ProductService{Repo: gormRepo}
	orderSvc := &service.OrderService{Repo: gormRepo}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		CustomerHandler: &httpserver.CustomerHTTP{Svc: customerSvc, Orders: orderSvc, Producer: producer},
		ProductHandler:  &httpserver.ProductHTTP{Svc: productSvc, Producer: producer},
		OrderHandler:    &httpserver.OrderHTTP{Svc: orderSvc, Producer: producer},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("%s listening on %s", cfg.ServiceName, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Printf("%s stopped", cfg.ServiceName)
}
