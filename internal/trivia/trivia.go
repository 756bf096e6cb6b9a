// Package trivia answers the bot's two single-field lookups: a YouTube
// channel's subscriber count and MakerKing's online player count, each
// classified into a fixed commentary band.
package trivia

import (
	"errors"

	"github.com/go-resty/resty/v2"
)

const (
	youtubeBaseURL   = "https://www.googleapis.com/youtube/v3"
	makerkingBaseURL = "https://makerkinggame.com"
)

// ErrMalformedResponse means a third-party JSON payload was missing the
// fields the lookup needs.
var ErrMalformedResponse = errors.New("malformed api response")

type Client struct {
	youtube   *resty.Client
	makerking *resty.Client
	apiKey    string
}

func NewClient(apiKey string) *Client {
	return &Client{
		youtube:   resty.New().SetBaseURL(youtubeBaseURL),
		makerking: resty.New().SetBaseURL(makerkingBaseURL),
		apiKey:    apiKey,
	}
}
