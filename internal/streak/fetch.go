package streak

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the public stats-rendering service.
const DefaultBaseURL = "https://streak-stats.demolab.com"

// Client fetches one user's rendered stats document per call. There is
// no retry; a failed attempt is final for the current aggregation.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		http: resty.New().SetBaseURL(baseURL),
	}
}

// Fetch retrieves and decodes the stats document for user. The returned
// record always carries the user identifier it was called with; nothing
// is derived from the response body except the two streak values.
func (c *Client) Fetch(ctx context.Context, user string) (Record, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("user", user).
		Get("/")
	if err != nil {
		return Record{}, fmt.Errorf("fetch %s: %w: %v", user, ErrTransport, err)
	}
	if !resp.IsSuccess() {
		return Record{}, fmt.Errorf("fetch %s: %w: unexpected status %s", user, ErrTransport, resp.Status())
	}

	current, longest, err := Extract(strings.NewReader(resp.String()))
	if err != nil {
		return Record{}, fmt.Errorf("fetch %s: %w", user, err)
	}

	return Record{User: user, Current: current, Longest: longest}, nil
}
