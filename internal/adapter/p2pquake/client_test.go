package p2pquake

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kitsunebi/disaster-info-api/internal/config"
	"github.com/kitsunebi/disaster-info-api/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	cfg := &config.Config{
		P2PBaseURL: baseURL,
		APITimeout: 5 * time.Second,
	}
	return NewClient(cfg, observability.NewMetricsForTesting(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClient_RecentQuakes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/history", r.URL.Path)
		assert.Equal(t, "551", r.URL.Query().Get("codes"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))

		writeJSON(t, w, []map[string]any{
			{
				"id": "quake-1",
				"earthquake": map[string]any{
					"time":            "2024/03/11 14:46:00",
					"maxScale":        60,
					"domesticTsunami": "Warning",
					"hypocenter": map[string]any{
						"name":      "三陸沖",
						"magnitude": 8.1,
						"depth":     24,
						"latitude":  38.1,
						"longitude": 142.9,
					},
				},
			},
			{
				"id": "quake-2",
				"earthquake": map[string]any{
					"time":            "2024/03/10 08:00:00",
					"maxScale":        45,
					"domesticTsunami": "None",
					"hypocenter": map[string]any{
						"name":      "東京湾",
						"magnitude": 4.2,
						"depth":     30,
						"latitude":  35.5,
						"longitude": 139.9,
					},
				},
			},
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	quakes, err := c.RecentQuakes(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, quakes, 2)

	first := quakes[0]
	assert.Equal(t, "quake-1", first.ID)
	assert.Equal(t, "2024/03/11 14:46:00", first.Time)
	assert.Equal(t, "三陸沖", first.Location)
	assert.Equal(t, 8.1, first.Magnitude)
	assert.Equal(t, "6強", first.MaxIntensity)
	assert.Equal(t, 24, first.Depth)
	assert.Equal(t, 38.1, first.Latitude)
	assert.Equal(t, 142.9, first.Longitude)
	assert.Equal(t, "津波警報", first.TsunamiWarning)
	assert.Equal(t, "気象庁", first.Source)
	assert.Equal(t, "【地震情報】三陸沖で地震がありました。マグニチュード8.1、最大震度6強。震源の深さは約24km。津波情報：津波警報。", first.Message)

	second := quakes[1]
	assert.Equal(t, "5弱", second.MaxIntensity)
	assert.Equal(t, "なし", second.TsunamiWarning)
	assert.Equal(t, "【地震情報】東京湾で地震がありました。マグニチュード4.2、最大震度5弱。震源の深さは約30km。この地震による津波の心配はありません。", second.Message)
}

func TestClient_RecentQuakes_UnknownFieldsDegrade(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, []map[string]any{
			{
				"id": "quake-3",
				"earthquake": map[string]any{
					"time":            "2024/03/09 03:00:00",
					"maxScale":        -1,
					"domesticTsunami": "MajorWarning",
					"hypocenter":      map[string]any{},
				},
			},
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	quakes, err := c.RecentQuakes(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, quakes, 1)

	q := quakes[0]
	assert.Equal(t, "不明", q.MaxIntensity)
	assert.Equal(t, "不明", q.TsunamiWarning, "unmapped classifications degrade to unknown")
	assert.Equal(t, "不明", q.Location)
	assert.Contains(t, q.Message, "【地震情報】不明で地震がありました。")
	assert.Contains(t, q.Message, "津波情報：不明。")
}

func TestClient_RecentQuakes_EmptyTsunamiDefaultsToUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, []map[string]any{
			{
				"id": "quake-4",
				"earthquake": map[string]any{
					"time":     "2024/03/08 12:00:00",
					"maxScale": 10,
					"hypocenter": map[string]any{
						"name":      "千葉県北西部",
						"magnitude": 3.5,
						"depth":     60,
					},
				},
			},
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	quakes, err := c.RecentQuakes(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, quakes, 1)
	assert.Equal(t, "不明", quakes[0].TsunamiWarning)
	assert.Equal(t, "1", quakes[0].MaxIntensity)
}

func TestClient_RecentQuakes_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.RecentQuakes(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestClient_UserReports(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "555", r.URL.Query().Get("codes"))
		writeJSON(t, w, []map[string]any{
			{
				"id":   "report-1",
				"time": "2024/03/11 14:47:12",
				"areas": []map[string]any{
					{"id": 901, "peer": 12},
					{"id": 905, "peer": 3},
				},
			},
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	reports, err := c.UserReports(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	assert.Equal(t, "report-1", reports[0].ID)
	require.Len(t, reports[0].Areas, 2)
	assert.Equal(t, 901, reports[0].Areas[0].ID)
	assert.Equal(t, 12, reports[0].Areas[0].Peer)
}
