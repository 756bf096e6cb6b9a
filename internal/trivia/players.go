package trivia

import (
	"context"
	"fmt"
)

type serverStatus struct {
	Online *int `json:"online"`
}

// OnlinePlayerCount looks up how many players are currently on the
// MakerKing server.
func (c *Client) OnlinePlayerCount(ctx context.Context) (int, error) {
	var out serverStatus
	resp, err := c.makerking.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/status")
	if err != nil {
		return 0, fmt.Errorf("player count: %w", err)
	}
	if !resp.IsSuccess() {
		return 0, fmt.Errorf("player count: unexpected status %s", resp.Status())
	}

	if out.Online == nil {
		return 0, fmt.Errorf("player count: %w: no online field", ErrMalformedResponse)
	}

	return *out.Online, nil
}
