package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/campus_connect/internal/app"
	"github.com/shenikar/campus_connect/internal/config"
	v1 "github.com/shenikar/campus_connect/internal/handler/http/v1"
	"github.com/shenikar/campus_connect/internal/service"
	"github.com/shenikar/campus_connect/internal/webhook"
	"github.com/shenikar/campus_connect/pkg/logger"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/campus_connect/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Campus Connect Gateway API
// @version 1.0
// @description Local gateway over the campus safety API: session, incidents, notices and feedback.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Хранилище сессии и соединения
	res, err := app.Open(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	defer res.Close()

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Клиент удаленного API
	apiClient := app.NewClient(cfg, res.Store, log, registry)

	// Вебхуки работают только при наличии очереди в Redis
	var publisher webhook.Publisher
	if res.Redis != nil && cfg.WebhookURL != "" {
		publisher = webhook.NewRedisPublisher(res.Redis)
		webhook.NewWorker(res.Redis, log, cfg).Start(ctx)
	}

	// Инициализация сервисов
	portalService := service.NewPortalService(apiClient, res.Store, log, cfg, publisher)

	// Инициализация хэндлеров
	handler := v1.NewHandler(portalService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики и Swagger UI
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithFields(logrus.Fields{
		"port":            cfg.HTTPPort,
		"api_base_url":    cfg.APIBaseURL,
		"session_backend": cfg.SessionBackend,
	}).Info("HTTP server started")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
