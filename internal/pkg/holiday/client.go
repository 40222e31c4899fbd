package holiday

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
)

// Table maps YYYY-MM-DD keys to holiday names for one calendar year.
type Table map[string]string

// Source fetches the holiday table for a year.
type Source interface {
	FetchYear(ctx context.Context, year int) (Table, error)
}

// Client fetches the public-holiday JSON document, shaped
// {"YYYY-MM-DD": "<holiday name>", ...}. The url template carries a %d
// placeholder for the year.
type Client struct {
	urlTemplate string
	httpClient  *http.Client
}

func NewClient(urlTemplate string) *Client {
	return &Client{
		urlTemplate: urlTemplate,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) FetchYear(ctx context.Context, year int) (Table, error) {
	url := c.urlTemplate
	if strings.Contains(url, "%d") {
		url = fmt.Sprintf(c.urlTemplate, year)
	}

	var body []byte
	err := backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if reqErr != nil {
				return backoff.Permanent(reqErr)
			}

			resp, httpErr := c.httpClient.Do(req)
			if httpErr != nil {
				return fmt.Errorf("http.Get: %w", httpErr)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			body, httpErr = io.ReadAll(resp.Body)
			if httpErr != nil {
				return fmt.Errorf("read body: %w", httpErr)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(200*time.Millisecond), 3), ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("fetch holidays for %d: %w", year, err)
	}

	table := make(Table)
	if err = sonic.Unmarshal(body, &table); err != nil {
		return nil, fmt.Errorf("decode holidays for %d: %w", year, err)
	}

	return table, nil
}
