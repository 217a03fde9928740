// Package source implements the per-provider job board connectors.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Diogo1912/jobbi/pkg/models"
)

// descriptionCap bounds sanitized description text stored per posting.
const descriptionCap = 500

// Connector adapts one external job board to the RawJob shape. Fetch returns
// an error for transport, parse or non-2xx failures; the aggregator converts
// errors into an empty contribution so one provider never affects another.
type Connector interface {
	Name() string
	Fetch(ctx context.Context) ([]models.RawJob, error)
}

// All returns every built-in connector sharing one HTTP client.
func All(client *http.Client) []Connector {
	return []Connector{
		NewRemotive(client),
		NewArbeitnow(client),
		NewRemoteOK(client),
		NewAdzuna(client),
	}
}

// getBody performs a GET and returns the response body, treating any non-2xx
// status as an error.
func getBody(ctx context.Context, client *http.Client, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return body, nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}
