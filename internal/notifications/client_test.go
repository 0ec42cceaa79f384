package notifications

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"xiv_market_sheets/internal/market"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifySyncSummaryPublishes(t *testing.T) {
	var gotPath, gotTitle, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTitle = r.Header.Get("Title")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
	}))
	defer server.Close()

	client := NewClient(server.URL, "market-sync", true)
	client.NotifySyncSummary(context.Background(), market.Summary{
		Rows:          10,
		Success:       7,
		NoData:        2,
		Unresolved:    1,
		FailedBatches: 1,
		APICalls:      3,
		Duration:      90 * time.Second,
	})

	assert.Equal(t, "/market-sync", gotPath)
	assert.Equal(t, "Market data sync complete", gotTitle)
	assert.Equal(t, "10 rows written in 1m30s: 7 priced, 2 without market data, 1 unresolved names. 3 API calls, 1 failed batches.", gotBody)
}

func TestNotifySyncSummaryDisabledIsNoOp(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := NewClient(server.URL, "market-sync", false)
	client.NotifySyncSummary(context.Background(), market.Summary{})

	require.Zero(t, requests)
}
