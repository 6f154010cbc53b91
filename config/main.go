package config

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/arroyodev/illumibot-waitlist/config/router"
	"github.com/arroyodev/illumibot-waitlist/internal/log"
	"github.com/arroyodev/illumibot-waitlist/internal/mail"
	"github.com/arroyodev/illumibot-waitlist/internal/mirror"
	"github.com/arroyodev/illumibot-waitlist/internal/store"
	"github.com/arroyodev/illumibot-waitlist/pkg/constants"
)

// DefaultBaseURL is the public root used for QR code targets when BASE_URL
// is unset.
const DefaultBaseURL = "https://illumibot-waitlist--illumibot-waitlist.us-east4.hosted.app"

type ApplicationConfig struct {
	Store         *store.FileStore
	Mirror        mirror.Mirror
	Mailer        mail.Mailer
	RouterService *router.RouterService
	Logger        *log.Logger
	Config        *AppConfig
	TracingShutdown func(context.Context) error
}

type AppConfig struct {
	BaseURL           string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RequestTimeout    time.Duration
}

func NewAppConfig() *AppConfig {
	config := &AppConfig{
		BaseURL:           GetValueFromEnvironmentVariable("BASE_URL", DefaultBaseURL),
		RateLimitRequests: constants.DefaultRateLimitRequests,
		RateLimitWindow:   constants.DefaultRateLimitWindow(),
		RequestTimeout:    30 * time.Second,
	}

	if reqStr := os.Getenv("RATE_LIMIT_REQUESTS"); reqStr != "" {
		if parsed, err := strconv.Atoi(reqStr); err == nil && parsed > 0 {
			config.RateLimitRequests = parsed
		}
	}

	if winStr := os.Getenv("RATE_LIMIT_WINDOW"); winStr != "" {
		if parsed, err := time.ParseDuration(winStr); err == nil && parsed > 0 {
			config.RateLimitWindow = parsed
		}
	}

	if timeoutStr := os.Getenv("REQUEST_TIMEOUT"); timeoutStr != "" {
		if parsed, err := time.ParseDuration(timeoutStr); err == nil && parsed > 0 {
			config.RequestTimeout = parsed
		}
	}

	return config
}

func (ac *ApplicationConfig) Cleanup() {
	if ac.TracingShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := ac.TracingShutdown(ctx); err != nil {
			ac.Logger.Error("Failed to shutdown tracer provider", "error", err)
		}
	}

	if ac.RouterService != nil {
		ac.RouterService.Cleanup()
	}

	if ac.Mirror != nil {
		CloseMirror(ac.Mirror, ac.Logger)
	}

	ac.Logger.Info("Application cleanup completed")
}

func LoadApplicationConfiguration(logger *log.Logger) (*ApplicationConfig, error) {
	InitializeEnvFile(logger)

	tracingShutdown, err := SetupTracing(logger)
	if err != nil {
		return nil, err
	}

	fileStore, err := NewFileStore(logger)
	if err != nil {
		return nil, err
	}

	mailer, err := NewMailer(logger)
	if err != nil {
		return nil, err
	}

	appConfig := NewAppConfig()
	m := NewMirrorConfig().NewMirrorOrDisabled(logger)

	var mirrorClient router.RedisClientProvider
	if provider, ok := m.(mirror.RedisClientProvider); ok {
		mirrorClient = provider
	}

	routerService := router.CreateRouterService(logger, mirrorClient, &router.RouterConfig{
		RateLimitRequests: appConfig.RateLimitRequests,
		RateLimitWindow:   appConfig.RateLimitWindow,
		RequestTimeout:    appConfig.RequestTimeout,
	})

	logger.Info("Application configuration loaded successfully")

	return &ApplicationConfig{
		Store:           fileStore,
		Mirror:          m,
		Mailer:          mailer,
		RouterService:   routerService,
		Logger:          logger,
		Config:          appConfig,
		TracingShutdown: tracingShutdown,
	}, nil
}
