package poscallback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jeffleon2/draftea-webhook-service/internal/models"
)

const maxErrorBody = 512

// HTTPClient delivers BackToPosRequests to the POS callback endpoint. Any 2xx is an ack.
type HTTPClient struct {
	CallbackURL string
	httpClient  *http.Client
}

func NewHTTPClient(callbackURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		CallbackURL: callbackURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Accept(ctx context.Context, req models.BackToPosRequest) error {
	if c.CallbackURL == "" {
		return fmt.Errorf("pos callback url not configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("pos callback encode: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.CallbackURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("pos callback request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Trace-Id", req.TraceID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("pos callback request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("pos callback failed: http=%d body=%s", resp.StatusCode, string(raw))
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
