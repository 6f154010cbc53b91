package mirror

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/arroyodev/illumibot-waitlist/internal/models"
)

// Mirror is the best-effort secondary write target for audit/analytics.
// Writes are advisory: a failed mirror write is logged by the caller and
// never fails the request, never rolls back the durable log, and is never
// retried. The external collection is write-only from this system's
// perspective.
type Mirror interface {
	// WaitlistEntry mirrors a persisted waitlist entry.
	WaitlistEntry(ctx context.Context, entry *models.WaitlistEntry) error
	// ContactSubmission mirrors the occurrence of a contact request.
	ContactSubmission(ctx context.Context, email, submittedAt string) error
	Ping(ctx context.Context) error
	Close() error
	// Enabled reports whether writes reach an external store at all.
	Enabled() bool
}

// RedisClientProvider is implemented by mirrors that expose their
// underlying Redis client, letting the router reuse the connection for
// distributed rate limiting.
type RedisClientProvider interface {
	GetClient() *redis.Client
}

// Disabled is the typed "unavailable" variant, selected once at startup
// when the external store is unconfigured or unreachable. Every write is a
// successful no-op.
func Disabled() Mirror {
	return disabledMirror{}
}

type disabledMirror struct{}

func (disabledMirror) WaitlistEntry(context.Context, *models.WaitlistEntry) error {
	return nil
}

func (disabledMirror) ContactSubmission(context.Context, string, string) error {
	return nil
}

func (disabledMirror) Ping(context.Context) error { return nil }

func (disabledMirror) Close() error { return nil }

func (disabledMirror) Enabled() bool { return false }
