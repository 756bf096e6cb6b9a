package trivia

import (
	"context"
	"fmt"
	"strconv"
)

// ChannelStatistics is the subset of YouTube channel statistics the bot
// reports on.
type ChannelStatistics struct {
	Subscribers int64
	Views       int64
}

// The Data API returns the counts as JSON strings.
type channelListResponse struct {
	Items []struct {
		Statistics struct {
			SubscriberCount string `json:"subscriberCount"`
			ViewCount       string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// ChannelStatistics looks up a channel's subscriber and view counts via
// the YouTube Data API v3.
func (c *Client) ChannelStatistics(ctx context.Context, channelID string) (ChannelStatistics, error) {
	var out channelListResponse
	resp, err := c.youtube.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "statistics",
			"id":   channelID,
			"key":  c.apiKey,
		}).
		SetResult(&out).
		Get("/channels")
	if err != nil {
		return ChannelStatistics{}, fmt.Errorf("channel statistics: %w", err)
	}
	if !resp.IsSuccess() {
		return ChannelStatistics{}, fmt.Errorf("channel statistics: unexpected status %s", resp.Status())
	}

	if len(out.Items) == 0 {
		return ChannelStatistics{}, fmt.Errorf("channel statistics: %w: no items for channel %s", ErrMalformedResponse, channelID)
	}

	stats := out.Items[0].Statistics
	subscribers, err := strconv.ParseInt(stats.SubscriberCount, 10, 64)
	if err != nil {
		return ChannelStatistics{}, fmt.Errorf("channel statistics: %w: subscriberCount %q", ErrMalformedResponse, stats.SubscriberCount)
	}
	views, err := strconv.ParseInt(stats.ViewCount, 10, 64)
	if err != nil {
		return ChannelStatistics{}, fmt.Errorf("channel statistics: %w: viewCount %q", ErrMalformedResponse, stats.ViewCount)
	}

	return ChannelStatistics{Subscribers: subscribers, Views: views}, nil
}
