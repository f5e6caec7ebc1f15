package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// upstreamClient is the shared HTTP plumbing for the four domain services.
// Every call is bounded by the client timeout; the services expect basic auth.
type upstreamClient struct {
	client   *http.Client
	user     string
	password string
}

func newUpstreamClient(timeout time.Duration, user, password string) upstreamClient {
	return upstreamClient{
		client:   &http.Client{Timeout: timeout},
		user:     user,
		password: password,
	}
}

// getJSON issues an authenticated GET and decodes the response body into out.
// Unknown fields are ignored; any non-200 status is an error.
func (c *upstreamClient) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.user, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
