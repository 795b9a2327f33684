package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"codeberg.org/veland/wearsyncd/internal/aggregate"
	"codeberg.org/veland/wearsyncd/internal/errors"
	"codeberg.org/veland/wearsyncd/internal/logger"
)

const (
	syncPath       = "/apple-watch/sync"
	statusPath     = "/apple-watch/status"
	autoSyncPath   = "/apple-watch/auto-sync"
	summaryPath    = "/apple-watch/summary"
	disconnectPath = "/apple-watch/disconnect"
)

type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type httpClient struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) Client {
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type uploadRequest struct {
	Data []aggregate.DailySummary `json:"data"`
}

type uploadResponse struct {
	DaysSynced int `json:"daysSynced"`
}

func (c *httpClient) Upload(ctx context.Context, summaries []aggregate.DailySummary) (int, error) {
	errFactory := errors.New()

	var resp uploadResponse
	err := c.do(ctx, http.MethodPost, syncPath, uploadRequest{Data: summaries}, &resp)
	if err != nil {
		if errors.HasCode(err, ErrNotAuthenticated) || errors.HasCode(err, ErrSessionExpired) {
			return 0, err
		}

		return 0, errFactory.Wrap(ErrUploadFailed, err)
	}

	logger.Info().Int("days_synced", resp.DaysSynced).Msg("batch upload accepted")

	return resp.DaysSynced, nil
}

func (c *httpClient) Status(ctx context.Context) (*Status, error) {
	var status Status
	if err := c.do(ctx, http.MethodGet, statusPath, nil, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

func (c *httpClient) Summary(ctx context.Context) (*WeekSummary, error) {
	var summary WeekSummary
	if err := c.do(ctx, http.MethodGet, summaryPath, nil, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (c *httpClient) AutoSync(ctx context.Context) (*SyncCheck, error) {
	var check SyncCheck
	if err := c.do(ctx, http.MethodPost, autoSyncPath, nil, &check); err != nil {
		return nil, err
	}

	return &check, nil
}

func (c *httpClient) Disconnect(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, disconnectPath, nil, nil)
}

// do performs one authenticated request. A missing token fails locally with
// not_authenticated; a 401-class response maps to session_expired so the
// caller can trigger re-authentication instead of a blind retry.
func (c *httpClient) do(ctx context.Context, method, path string, body, out any) error {
	errFactory := errors.New()

	if c.cfg.Token == "" {
		return errFactory.New(ErrNotAuthenticated)
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errFactory.Wrap(ErrEncodeRequest, err)
		}
		reader = bytes.NewReader(encoded)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + path

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return errFactory.Wrap(ErrRequestFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errFactory.Wrap(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return errFactory.New(ErrSessionExpired)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errFactory.WithData(ErrRequestFailed, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errFactory.Wrap(ErrDecodeResponse, err)
		}
	}

	return nil
}
