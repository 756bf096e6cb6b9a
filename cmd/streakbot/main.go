package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"streakbot/internal/bot"
	"streakbot/internal/command"
	"streakbot/internal/env"
	"streakbot/internal/metrics"
	"streakbot/internal/streak"
	"streakbot/internal/telegram"
	"streakbot/internal/trivia"
)

// The leaderboard roster, fixed at build time.
var roster = []string{
	"WinterAlexander",
	"MartensCedric",
	"RealWilliamWells",
	"Davidster",
}

func main() {
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx); err != nil {
		logrus.Fatalln(err)
	}
}

func run(ctx context.Context) error {
	token, err := env.Get("STREAKBOT_TELEGRAM_TOKEN", os.Getenv)
	if err != nil {
		return err
	}

	apiKey := os.Getenv("STREAKBOT_YOUTUBE_API_KEY")
	channelID := os.Getenv("STREAKBOT_YOUTUBE_CHANNEL_ID")
	listenHealth := os.Getenv("STREAKBOT_LISTEN_HEALTH")

	fallbackVideo := os.Getenv("STREAKBOT_FALLBACK_VIDEO")
	if fallbackVideo == "" {
		fallbackVideo = "wtf-marion.mp4"
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	logrus.WithField("bot", api.Self.UserName).Info("connected to Telegram")

	if listenHealth != "" {
		go func() {
			if err := metrics.ListenAndServe(listenHealth); err != nil {
				logrus.WithError(err).Error("health listener stopped")
			}
		}()
	}

	b := bot.New(
		streak.NewClient(streak.DefaultBaseURL),
		trivia.NewClient(apiKey),
		telegram.New(api),
		command.NewRouter(api.Self.UserName),
		bot.Config{
			Roster:        roster,
			ChannelID:     channelID,
			FallbackVideo: fallbackVideo,
		},
	)

	return b.Listen(telegram.Messages(ctx, api))
}
