package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codeberg.org/veland/wearsyncd/internal/aggregate"
	"codeberg.org/veland/wearsyncd/internal/errors"
	"codeberg.org/veland/wearsyncd/internal/logger"
	"codeberg.org/veland/wearsyncd/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.Init(false, false, true)
}

func newClient(url string) remote.Client {
	return remote.NewClient(remote.Config{
		BaseURL: url,
		Token:   "test-token",
		Timeout: 2 * time.Second,
	})
}

func TestUploadSendsBatchWithBearerToken(t *testing.T) {
	var gotAuth string
	var gotBody struct {
		Data []aggregate.DailySummary `json:"data"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/apple-watch/sync", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]int{"daysSynced": 7})
	}))
	defer server.Close()

	steps := 4200
	summaries := []aggregate.DailySummary{
		{Date: "2024-01-01", Steps: &steps},
		{Date: "2024-01-02"},
	}

	days, err := newClient(server.URL).Upload(context.Background(), summaries)

	require.NoError(t, err)
	assert.Equal(t, 7, days)
	assert.Equal(t, "Bearer test-token", gotAuth)
	require.Len(t, gotBody.Data, 2)
	require.NotNil(t, gotBody.Data[0].Steps)
	assert.Equal(t, 4200, *gotBody.Data[0].Steps)
	assert.Nil(t, gotBody.Data[1].Steps, "null survives the wire, distinct from zero")
}

func TestUploadWithoutTokenShortCircuits(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
	}))
	defer server.Close()

	client := remote.NewClient(remote.Config{BaseURL: server.URL, Token: ""})

	_, err := client.Upload(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, remote.ErrNotAuthenticated))
	assert.Zero(t, requests, "a missing token never reaches the network")
}

func TestUploadUnauthorizedIsSessionExpired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newClient(server.URL).Upload(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, remote.ErrSessionExpired),
		"401 must be distinguishable from a generic upload failure")
	assert.False(t, errors.HasCode(err, remote.ErrUploadFailed))
}

func TestUploadServerErrorIsUploadFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newClient(server.URL).Upload(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, remote.ErrUploadFailed))
}

func TestAutoSyncDecodesCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/apple-watch/auto-sync", r.URL.Path)
		json.NewEncoder(w).Encode(remote.SyncCheck{SyncNeeded: true, Reason: "last sync 26h ago"})
	}))
	defer server.Close()

	check, err := newClient(server.URL).AutoSync(context.Background())

	require.NoError(t, err)
	assert.True(t, check.SyncNeeded)
	assert.Equal(t, "last sync 26h ago", check.Reason)
}

func TestStatusDecodesWeekSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/apple-watch/status", r.URL.Path)
		json.NewEncoder(w).Encode(remote.Status{
			Connected: true,
			WeekSummary: &remote.WeekSummary{
				AvgSleep:      7.2,
				AvgHRV:        52,
				AvgSteps:      8400,
				AvgRestingHR:  58,
				DataAvailable: true,
			},
		})
	}))
	defer server.Close()

	status, err := newClient(server.URL).Status(context.Background())

	require.NoError(t, err)
	assert.True(t, status.Connected)
	require.NotNil(t, status.WeekSummary)
	assert.InDelta(t, 7.2, status.WeekSummary.AvgSleep, 1e-9)
}

func TestDisconnect(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/apple-watch/disconnect", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		called = true
	}))
	defer server.Close()

	require.NoError(t, newClient(server.URL).Disconnect(context.Background()))
	assert.True(t, called)
}
