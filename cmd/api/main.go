package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/rafabene/pessoas-backend/internal/domain/ports"
	httphandlers "github.com/rafabene/pessoas-backend/internal/handlers/http"
	"github.com/rafabene/pessoas-backend/internal/handlers/middleware"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/config"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/i18n"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/logging"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/messaging"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/metrics"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/persistence/database"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/realtime"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/security"
	"github.com/rafabene/pessoas-backend/internal/services"
)

//	@title			Pessoas API
//	@version		1.0
//	@description	Cadastro de pessoas com login por cookie JWT.
//	@BasePath		/

//	@securityDefinitions.apikey	CookieAuth
//	@in							cookie
//	@name						jwt_token

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting pessoas backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := database.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	pessoaRepo := database.NewPessoaRepository(db)
	usuarioRepo := database.NewUsuarioRepository(db)
	uow := database.NewUnitOfWork(db)

	if cfg.Database.Seed {
		seeder := database.NewSeeder(uow, pessoaRepo, usuarioRepo, security.HashPassword, logger)
		if err := seeder.Seed(context.Background()); err != nil {
			logger.Error("failed to seed database", "error", err)
			log.Fatal(err)
		}
	}

	// Métricas
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	// Eventos: websocket, métricas e Kafka (opcional)
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	hub := realtime.NewHub(cfg.CORS.AllowedOrigins, logger)
	go hub.Run(ctx)

	publishers := messaging.Fanout{hub, collector}

	var kafka *messaging.KafkaPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafka, err = messaging.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		if err != nil {
			logger.Error("failed to create kafka publisher", "error", err)
			log.Fatal(err)
		}
		publishers = append(publishers, kafka)
		logger.Info("kafka publisher enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	// Inicializar services
	tokens := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	pessoaService := services.NewPessoaService(pessoaRepo, publishers, logger)
	authService := services.NewAuthService(usuarioRepo, tokens, logger)

	loginLimiter := middleware.NewRateLimiter(
		middleware.PerMinute(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst),
		logger,
	)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		Env:            cfg.Env,
		BaseURL:        cfg.Server.BaseURL,
		StaticDir:      cfg.Server.StaticDir,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Cookie: httphandlers.CookieConfig{
			Name:   cfg.JWT.CookieName,
			Secure: cfg.JWT.CookieSecure,
		},
	}, httphandlers.Dependencies{
		Pessoas:      pessoaService,
		Auth:         authService,
		I18n:         i18nService,
		Logger:       logger,
		Metrics:      collector,
		Gatherer:     registry,
		Hub:          hub,
		LoginLimiter: loginLimiter,
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	stop()
	loginLimiter.Stop()
	closeQuietly(logger, kafka)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server exited")
}

func closeQuietly(logger ports.Logger, kafka *messaging.KafkaPublisher) {
	if kafka == nil {
		return
	}
	if err := kafka.Close(); err != nil {
		logger.Warn("failed to close kafka publisher", "error", err)
	}
}
