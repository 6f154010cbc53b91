package mirror

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/arroyodev/illumibot-waitlist/internal/models"
	apperrors "github.com/arroyodev/illumibot-waitlist/pkg/errors"
)

const (
	waitlistCollection = "mirror:waitlist"
	contactCollection  = "mirror:contact_submissions"
)

type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type redisMirror struct {
	client *redis.Client
}

// NewRedisMirror connects to the external document store and verifies the
// connection. The caller decides what an unreachable store means; this
// package never falls back silently.
func NewRedisMirror(cfg *Config) (Mirror, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, apperrors.NewMirrorError("unable to reach mirror store", err)
	}

	return &redisMirror{client: client}, nil
}

func (m *redisMirror) WaitlistEntry(ctx context.Context, entry *models.WaitlistEntry) error {
	doc, err := json.Marshal(entry)
	if err != nil {
		return apperrors.NewMirrorError("unable to encode waitlist entry", err)
	}

	if err := m.client.RPush(ctx, waitlistCollection, doc).Err(); err != nil {
		return apperrors.NewMirrorError("waitlist mirror write failed", err)
	}

	return nil
}

func (m *redisMirror) ContactSubmission(ctx context.Context, email, submittedAt string) error {
	doc, err := json.Marshal(models.ContactSubmission{
		Email:       email,
		SubmittedAt: submittedAt,
	})
	if err != nil {
		return apperrors.NewMirrorError("unable to encode contact submission", err)
	}

	if err := m.client.RPush(ctx, contactCollection, doc).Err(); err != nil {
		return apperrors.NewMirrorError("contact mirror write failed", err)
	}

	return nil
}

func (m *redisMirror) Ping(ctx context.Context) error {
	return m.client.Ping(ctx).Err()
}

func (m *redisMirror) Close() error {
	return m.client.Close()
}

func (m *redisMirror) Enabled() bool { return true }

// GetClient exposes the underlying client for rate limiting.
func (m *redisMirror) GetClient() *redis.Client {
	return m.client
}
