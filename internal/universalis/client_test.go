package universalis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aggregatedFixture = `{
	"results": [
		{
			"itemId": 5,
			"nq": {
				"minListing": {"dc": {"price": 50, "worldId": 73}},
				"averageSalePrice": {"dc": {"price": 48.7}},
				"dailySaleVelocity": {"dc": {"quantity": 110.5}}
			},
			"hq": {
				"minListing": {"dc": {"price": null, "worldId": 40}}
			}
		},
		{
			"itemId": 7,
			"nq": {},
			"hq": {}
		}
	],
	"failedItems": [99999999]
}`

func TestGetAggregatedParsesResponse(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(aggregatedFixture))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	resp, err := client.GetAggregated(context.Background(), "Aether", []string{"5", "7", "99999999"})
	require.NoError(t, err)

	assert.Equal(t, "/api/v2/aggregated/Aether/5,7,99999999", gotPath)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, []int64{99999999}, resp.FailedItems)

	first := resp.Results[0]
	assert.Equal(t, int64(5), first.ItemID)
	nqListing := first.NQ.MinListingDC()
	require.NotNil(t, nqListing)
	require.NotNil(t, nqListing.Price)
	assert.Equal(t, 50.0, *nqListing.Price)
	require.NotNil(t, nqListing.WorldID)
	assert.Equal(t, int64(73), *nqListing.WorldID)

	// HQ listing is present but its price is null.
	hqListing := first.HQ.MinListingDC()
	require.NotNil(t, hqListing)
	assert.Nil(t, hqListing.Price)

	require.NotNil(t, first.NQ.AveragePriceDC())
	assert.Equal(t, 48.7, *first.NQ.AveragePriceDC())
	require.NotNil(t, first.NQ.SaleVelocityDC())
	assert.Equal(t, 110.5, *first.NQ.SaleVelocityDC())

	// Empty variants collapse to nil accessors.
	second := resp.Results[1]
	assert.Nil(t, second.NQ.MinListingDC())
	assert.Nil(t, second.HQ.AveragePriceDC())
	assert.Nil(t, second.HQ.SaleVelocityDC())
}

func TestGetAggregatedErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	_, err := client.GetAggregated(context.Background(), "Aether", []string{"5"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestGetAggregatedEmptyIDListSkipsRequest(t *testing.T) {
	client := NewClientWithBaseURL("http://unreachable.invalid")
	resp, err := client.GetAggregated(context.Background(), "Aether", nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Zero(t, client.GetAPICallCount())
}

func TestAPICallCounter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)
	for i := 0; i < 3; i++ {
		_, err := client.GetAggregated(context.Background(), "Aether", []string{"5"})
		require.NoError(t, err)
	}
	assert.Equal(t, int64(3), client.GetAPICallCount())

	client.ResetAPICallCount()
	assert.Zero(t, client.GetAPICallCount())
}
