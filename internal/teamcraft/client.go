package teamcraft

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultItemsURL is the ffxiv-teamcraft reference dataset: a JSON object keyed
// by item id, each value carrying localized display names.
const DefaultItemsURL = "https://raw.githubusercontent.com/ffxiv-teamcraft/ffxiv-teamcraft/master/libs/data/src/lib/json/items.json"

// Item holds the localized display names of one reference item.
type Item struct {
	En string `json:"en"`
	De string `json:"de"`
	Fr string `json:"fr"`
	Ja string `json:"ja"`
}

// ItemData is the full reference dataset, keyed by item id.
type ItemData map[string]Item

type Client struct {
	client   *http.Client
	itemsURL string
}

func NewClient() *Client {
	return NewClientWithURL(DefaultItemsURL)
}

// NewClientWithURL is used by tests to point the client at a fixture server.
func NewClientWithURL(itemsURL string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
		itemsURL: itemsURL,
	}
}

// FetchItems downloads the reference dataset. The payload is several tens of
// thousands of entries; it is fetched once per pass and held in memory.
func (c *Client) FetchItems(ctx context.Context) (ItemData, error) {
	log.Debug().Str("url", c.itemsURL).Msg("Fetching reference item dataset")

	req, err := http.NewRequestWithContext(ctx, "GET", c.itemsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("dataset request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var items ItemData
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	log.Debug().Int("entries", len(items)).Msg("Loaded reference item dataset")
	return items, nil
}
