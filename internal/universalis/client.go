package universalis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultBaseURL = "https://universalis.app"

type Client struct {
	client       *http.Client
	baseURL      string
	apiCallCount int64
	apiCallMutex sync.Mutex
}

func NewClient() *Client {
	return NewClientWithBaseURL(DefaultBaseURL)
}

// NewClientWithBaseURL is used by tests to point the client at a fixture server.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// IncrementAPICall safely increments the API call counter
func (c *Client) IncrementAPICall() {
	c.apiCallMutex.Lock()
	c.apiCallCount++
	c.apiCallMutex.Unlock()
}

// GetAPICallCount returns the current API call count
func (c *Client) GetAPICallCount() int64 {
	c.apiCallMutex.Lock()
	defer c.apiCallMutex.Unlock()
	return c.apiCallCount
}

// ResetAPICallCount resets the API call counter to zero
func (c *Client) ResetAPICallCount() {
	c.apiCallMutex.Lock()
	c.apiCallCount = 0
	c.apiCallMutex.Unlock()
}

// GetAggregated fetches aggregated market data for up to 100 item ids on one
// data center. Callers batch ids well below that limit; see market.BatchSize.
func (c *Client) GetAggregated(ctx context.Context, dataCenter string, itemIDs []string) (*AggregatedResponse, error) {
	if len(itemIDs) == 0 {
		return &AggregatedResponse{}, nil
	}

	url := fmt.Sprintf("%s/api/v2/aggregated/%s/%s", c.baseURL, dataCenter, strings.Join(itemIDs, ","))

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Increment API call counter
	c.IncrementAPICall()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var aggResp AggregatedResponse
	if err := json.NewDecoder(resp.Body).Decode(&aggResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	log.Debug().
		Str("data_center", dataCenter).
		Int("requested", len(itemIDs)).
		Int("results", len(aggResp.Results)).
		Int("failed_items", len(aggResp.FailedItems)).
		Msg("Retrieved aggregated market data")

	return &aggResp, nil
}
