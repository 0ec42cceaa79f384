package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"xiv_market_sheets/internal/market"
	"xiv_market_sheets/internal/retry"

	"github.com/rs/zerolog/log"
)

// Client posts sync-pass summaries to an ntfy topic. Disabled clients are
// no-ops so callers never need to branch.
type Client struct {
	httpClient *http.Client
	baseURL    string
	topic      string
	enabled    bool
	retryCfg   retry.Config
}

func NewClient(baseURL, topic string, enabled bool) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		topic:   topic,
		enabled: enabled,
		retryCfg: retry.Config{
			MaxRetries: 2,
			BaseDelay:  1 * time.Second,
			MaxDelay:   10 * time.Second,
			Timeout:    10 * time.Second,
		},
	}
}

// NotifySyncSummary sends one message describing a finished pass. Delivery is
// best effort: failures are logged, never returned to the sync path.
func (c *Client) NotifySyncSummary(ctx context.Context, summary market.Summary) {
	if !c.enabled {
		log.Debug().Msg("Notifications disabled, skipping")
		return
	}

	message := formatSummary(summary)
	_, err := retry.WithRetry(ctx, c.retryCfg, "ntfy publish", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.publish(ctx, "Market data sync complete", message)
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to send sync summary notification")
		return
	}
	log.Debug().Str("topic", c.topic).Msg("Sent sync summary notification")
}

func (c *Client) publish(ctx context.Context, title, message string) error {
	url := fmt.Sprintf("%s/%s", c.baseURL, c.topic)
	req, err := http.NewRequestWithContext(ctx, "POST", url, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Title", title)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("ntfy request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func formatSummary(s market.Summary) string {
	return fmt.Sprintf(
		"%d rows written in %s: %d priced, %d without market data, %d unresolved names. %d API calls, %d failed batches.",
		s.Rows, s.Duration.Round(time.Second), s.Success, s.NoData, s.Unresolved, s.APICalls, s.FailedBatches)
}
