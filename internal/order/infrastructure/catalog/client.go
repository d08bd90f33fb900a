// Package catalog is the HTTP client for the book-service read path.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmehra2102/bookstore-services/internal/order/application"
)

type Client struct {
	log     *slog.Logger
	baseURL string
	hc      *http.Client
}

// NewClient builds a catalog client. baseURL is the service name URL, e.g.
// http://book-service:3000. The timeout bounds every lookup so a stalled
// catalog cannot hang the order workflow; a timeout classifies as
// unreachable, not as not-found.
func NewClient(log *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		log:     log,
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
	}
}

// GetBook resolves a book id against the catalog. Outcomes:
//   - 200: the decoded record
//   - 404: application.ErrBookNotFound
//   - anything else (transport error, timeout, other status, bad body):
//     a generic error, never ErrBookNotFound
func (c *Client) GetBook(ctx context.Context, id int64) (application.CatalogBook, error) {
	url := fmt.Sprintf("%s/api/books/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return application.CatalogBook{}, err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return application.CatalogBook{}, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return application.CatalogBook{}, application.ErrBookNotFound
	case resp.StatusCode != http.StatusOK:
		return application.CatalogBook{}, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var book application.CatalogBook
	if err := json.NewDecoder(resp.Body).Decode(&book); err != nil {
		return application.CatalogBook{}, fmt.Errorf("catalog response decode: %w", err)
	}
	return book, nil
}
