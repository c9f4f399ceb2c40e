// Package analytics wraps the PostHog client so callers can enqueue usage
// events without caring whether analytics is configured.
package analytics

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

const defaultEndpoint = "https://eu.i.posthog.com"

// Client enqueues usage events. A zero Client is valid and drops everything.
type Client struct {
	posthogClient posthog.Client
	logger        *slog.Logger
}

// NewClient returns a Client backed by PostHog, or a no-op Client when apiKey is empty.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	if apiKey == "" {
		logger.Warn("PostHog API key is empty, usage analytics disabled")
		return &Client{}
	}
	phClient, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: defaultEndpoint})
	if err != nil {
		logger.Error("Failed to initialize PostHog client, usage analytics disabled", slog.String("error", err.Error()))
		return &Client{}
	}
	logger.Info("PostHog client initialized")
	return &Client{posthogClient: phClient, logger: logger}
}

func (c *Client) IsInitialized() bool {
	return c != nil && c.posthogClient != nil
}

func (c *Client) Enqueue(distinctID, event string, properties map[string]any) {
	if !c.IsInitialized() {
		return
	}
	c.logger.Debug("Enqueueing analytics event", slog.String("distinct_id", distinctID), slog.String("event", event))
	if err := c.posthogClient.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	}); err != nil {
		c.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

func (c *Client) Close() {
	if !c.IsInitialized() {
		return
	}
	_ = c.posthogClient.Close()
}
