// Package bot runs the dispatch loop: one inbound message, at most one
// action, and silence on failure.
package bot

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"streakbot/internal/command"
	"streakbot/internal/metrics"
	"streakbot/internal/streak"
	"streakbot/internal/telegram"
	"streakbot/internal/trivia"
)

var log = logrus.StandardLogger().WithFields(logrus.Fields{
	"component": "bot",
})

type StreakFetcher interface {
	Fetch(ctx context.Context, user string) (streak.Record, error)
}

type Trivia interface {
	ChannelStatistics(ctx context.Context, channelID string) (trivia.ChannelStatistics, error)
	OnlinePlayerCount(ctx context.Context) (int, error)
}

type Telegram interface {
	SendMessage(chatID int64, text string) error
	SendDice(chatID int64) error
	SendVideo(chatID int64, path string) error
}

type Config struct {
	// Roster is the fixed ordered list of users on the leaderboard.
	Roster []string
	// ChannelID is the YouTube channel behind the subscriber trigger.
	ChannelID string
	// FallbackVideo is the file sent for unrecognized commands.
	FallbackVideo string
}

type Bot struct {
	streaks  StreakFetcher
	trivia   Trivia
	telegram Telegram
	router   *command.Router
	config   Config
}

func New(streaks StreakFetcher, trivia Trivia, telegram Telegram, router *command.Router, config Config) *Bot {
	return &Bot{
		streaks:  streaks,
		trivia:   trivia,
		telegram: telegram,
		router:   router,
		config:   config,
	}
}

// Listen processes messages until the channel closes. Every failure is
// local to its message: it is logged, no reply is sent, and the loop
// moves on.
func (b *Bot) Listen(messages <-chan telegram.Message) error {
	log.Info("ready to process Telegram messages")

	for msg := range messages {
		switch b.router.Route(msg.Text).(type) {
		case command.Leaderboard:
			b.handleLeaderboard(msg.ChatID)

		case command.Dice:
			b.handleDice(msg.ChatID)

		case command.Subscribers:
			b.handleSubscribers(msg.ChatID)

		case command.Players:
			b.handlePlayers(msg.ChatID)

		case command.Fallback:
			b.handleFallback(msg.ChatID)
		}
	}

	return nil
}

func (b *Bot) handleLeaderboard(chatID int64) {
	logger := log.WithFields(logrus.Fields{
		"chat_id": chatID,
		"handler": "leaderboard",
	})
	metrics.CommandsTotal.WithLabelValues("leaderboard").Inc()

	records, err := streak.Aggregate(context.Background(), b.streaks, b.config.Roster)
	if err != nil {
		metrics.StreakFetchFailures.Inc()
		logger.WithError(err).Error("roster aggregation failed")
		return
	}

	board := streak.Render(streak.Rank(records))
	if err := b.telegram.SendMessage(chatID, board); err != nil {
		logger.WithError(err).Error("failed to send message to Telegram chat")
	}
}

func (b *Bot) handleDice(chatID int64) {
	logger := log.WithFields(logrus.Fields{
		"chat_id": chatID,
		"handler": "dice",
	})
	metrics.CommandsTotal.WithLabelValues("dice").Inc()

	if err := b.telegram.SendDice(chatID); err != nil {
		logger.WithError(err).Error("failed to send dice to Telegram chat")
	}
}

func (b *Bot) handleSubscribers(chatID int64) {
	logger := log.WithFields(logrus.Fields{
		"chat_id": chatID,
		"handler": "subscribers",
	})
	metrics.CommandsTotal.WithLabelValues("subscribers").Inc()

	stats, err := b.trivia.ChannelStatistics(context.Background(), b.config.ChannelID)
	if err != nil {
		logger.WithError(err).Error("channel statistics lookup failed")
		return
	}

	reply := fmt.Sprintf("Cedric has %d subscribers. %s", stats.Subscribers, trivia.SubscriberCommentary(stats.Subscribers))
	if err := b.telegram.SendMessage(chatID, reply); err != nil {
		logger.WithError(err).Error("failed to send message to Telegram chat")
	}
}

func (b *Bot) handlePlayers(chatID int64) {
	logger := log.WithFields(logrus.Fields{
		"chat_id": chatID,
		"handler": "players",
	})
	metrics.CommandsTotal.WithLabelValues("players").Inc()

	count, err := b.trivia.OnlinePlayerCount(context.Background())
	if err != nil {
		logger.WithError(err).Error("player count lookup failed")
		return
	}

	reply := fmt.Sprintf("%d players online on MakerKing. %s", count, trivia.PlayerCommentary(count))
	if err := b.telegram.SendMessage(chatID, reply); err != nil {
		logger.WithError(err).Error("failed to send message to Telegram chat")
	}
}

func (b *Bot) handleFallback(chatID int64) {
	logger := log.WithFields(logrus.Fields{
		"chat_id": chatID,
		"handler": "fallback",
	})
	metrics.CommandsTotal.WithLabelValues("fallback").Inc()

	if err := b.telegram.SendVideo(chatID, b.config.FallbackVideo); err != nil {
		logger.WithError(err).Error("failed to send video to Telegram chat")
	}
}
