package sentry

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/mentormatch-backend/pkg/config"
	sentrygo "github.com/getsentry/sentry-go"
)

const flushTimeout = 2 * time.Second

// Reporter forwards internal errors to Sentry. A zero Reporter is disabled.
type Reporter struct {
	hub *sentrygo.Hub
}

// New builds a reporter from configuration; without a DSN it stays disabled.
func New(cfg config.SentryConfig, environment string) (*Reporter, error) {
	if !cfg.Enabled() {
		return &Reporter{}, nil
	}
	client, err := sentrygo.NewClient(sentrygo.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      environment,
		TracesSampleRate: cfg.TracesSampleRate,
		AttachStacktrace: true,
	})
	if err != nil {
		return nil, fmt.Errorf("init sentry client: %w", err)
	}
	return &Reporter{hub: sentrygo.NewHub(client, sentrygo.NewScope())}, nil
}

func (r *Reporter) Enabled() bool {
	return r != nil && r.hub != nil
}

// Bind attaches a per-request hub to ctx so CaptureError can find it.
func (r *Reporter) Bind(ctx context.Context) context.Context {
	if !r.Enabled() {
		return ctx
	}
	return sentrygo.SetHubOnContext(ctx, r.hub.Clone())
}

// Close flushes buffered events.
func (r *Reporter) Close() error {
	if !r.Enabled() {
		return nil
	}
	if !r.hub.Flush(flushTimeout) {
		return fmt.Errorf("sentry flush timed out after %s", flushTimeout)
	}
	return nil
}

// CaptureError reports err through the hub bound to ctx, if any.
func CaptureError(ctx context.Context, err error, tags map[string]string) {
	if err == nil || ctx == nil {
		return
	}
	hub := sentrygo.GetHubFromContext(ctx)
	if hub == nil {
		return
	}
	hub.WithScope(func(scope *sentrygo.Scope) {
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}

// CapturePanic reports a recovered panic value.
func CapturePanic(ctx context.Context, recovered any) {
	if recovered == nil || ctx == nil {
		return
	}
	if hub := sentrygo.GetHubFromContext(ctx); hub != nil {
		hub.RecoverWithContext(ctx, recovered)
	}
}
