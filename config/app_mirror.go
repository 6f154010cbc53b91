package config

import (
	"os"

	"github.com/arroyodev/illumibot-waitlist/internal/log"
	"github.com/arroyodev/illumibot-waitlist/internal/mirror"
	"github.com/arroyodev/illumibot-waitlist/pkg/retry"
	"github.com/arroyodev/illumibot-waitlist/pkg/utils"
)

type MirrorConfig struct {
	Host     string
	Port     string
	Password string
}

func NewMirrorConfig() *MirrorConfig {
	return &MirrorConfig{
		Host:     os.Getenv("REDIS_HOST"),
		Port:     utils.GetEnvOrDefault("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
}

func (mc *MirrorConfig) IsConfigured() bool {
	return mc.Host != ""
}

// NewMirrorOrDisabled decides the mirror variant once at startup: a Redis
// mirror when the external store is configured and reachable (with a short
// startup backoff), the typed disabled variant otherwise. Per-request code
// never re-checks availability.
func (mc *MirrorConfig) NewMirrorOrDisabled(logger *log.Logger) mirror.Mirror {
	if !mc.IsConfigured() {
		logger.Info("Mirror store is not configured; mirroring disabled")
		return mirror.Disabled()
	}

	var m mirror.Mirror

	err := retry.NewExponentialBackoff(nil).Execute(func() error {
		var connErr error
		m, connErr = mirror.NewRedisMirror(&mirror.Config{
			Host:     mc.Host,
			Port:     mc.Port,
			Password: mc.Password,
		})
		return connErr
	})
	if err != nil {
		logger.Error("Mirror store unreachable; mirroring disabled", "error", err)
		return mirror.Disabled()
	}

	logger.Info("Mirror store connected", "host", mc.Host, "port", mc.Port)
	return m
}

func CloseMirror(m mirror.Mirror, logger *log.Logger) {
	if m == nil || !m.Enabled() {
		return
	}

	if err := m.Close(); err != nil {
		logger.Error("Failed to close mirror store", "error", err)
	} else {
		logger.Info("Mirror store connection closed")
	}
}
