package bot

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"streakbot/internal/command"
	"streakbot/internal/streak"
	"streakbot/internal/telegram"
	"streakbot/internal/telegram/telegramtest"
	"streakbot/internal/trivia"
)

type fetcherFunc func(ctx context.Context, user string) (streak.Record, error)

func (f fetcherFunc) Fetch(ctx context.Context, user string) (streak.Record, error) {
	return f(ctx, user)
}

type triviaStub struct {
	stats    trivia.ChannelStatistics
	statsErr error
	players  int
	playErr  error
}

func (t *triviaStub) ChannelStatistics(ctx context.Context, channelID string) (trivia.ChannelStatistics, error) {
	return t.stats, t.statsErr
}

func (t *triviaStub) OnlinePlayerCount(ctx context.Context) (int, error) {
	return t.players, t.playErr
}

var testStreaks = map[string]streak.Record{
	"A": {User: "A", Current: 5, Longest: 10},
	"B": {User: "B", Current: 5, Longest: 20},
	"C": {User: "C", Current: 3, Longest: 3},
	"D": {User: "D", Current: 7, Longest: 7},
}

func workingFetcher(ctx context.Context, user string) (streak.Record, error) {
	return testStreaks[user], nil
}

func listenOnce(t *testing.T, b *Bot, text string) {
	t.Helper()

	messages := make(chan telegram.Message, 1)
	messages <- telegram.Message{ChatID: 42, Text: text}
	close(messages)

	if err := b.Listen(messages); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func newTestBot(fetcher StreakFetcher, trivia Trivia) (*Bot, *telegramtest.ResponseRecorder) {
	recorder := telegramtest.NewResponseRecorder()
	b := New(fetcher, trivia, recorder, command.NewRouter("streakbot"), Config{
		Roster:        []string{"A", "B", "C", "D"},
		ChannelID:     "UC123",
		FallbackVideo: "wtf-marion.mp4",
	})
	return b, recorder
}

func TestListen(t *testing.T) {
	t.Run("it replies with the rendered leaderboard", func(t *testing.T) {
		b, recorder := newTestBot(fetcherFunc(workingFetcher), &triviaStub{})

		listenOnce(t, b, "@streakbot what's the commit streak?")

		if len(recorder.Responses) != 1 || recorder.Responses[0].Text == nil {
			t.Fatalf("got responses %+v, want one text reply", recorder.Responses)
		}

		want := "#1: D's commit streak: 7 (longest: 7)\n" +
			"#2: B's commit streak: 5 (longest: 20)\n" +
			"#3: A's commit streak: 5 (longest: 10)\n" +
			"#4: C's commit streak: 3 (longest: 3)\n"

		got := recorder.Responses[0].Text
		if got.ChatID != 42 || got.Body != want {
			t.Errorf("got %+v, want chat 42 with %q", got, want)
		}
	})

	t.Run("it sends nothing at all when one fetch fails", func(t *testing.T) {
		fetcher := fetcherFunc(func(ctx context.Context, user string) (streak.Record, error) {
			if user == "C" {
				return streak.Record{}, errors.New("boom")
			}
			return testStreaks[user], nil
		})
		b, recorder := newTestBot(fetcher, &triviaStub{})

		listenOnce(t, b, "@streakbot commit streak")

		if len(recorder.Responses) != 0 {
			t.Errorf("got responses %+v, want none", recorder.Responses)
		}
	})

	t.Run("it sends a dice", func(t *testing.T) {
		b, recorder := newTestBot(fetcherFunc(workingFetcher), &triviaStub{})

		listenOnce(t, b, "@streakbot throw a dice")

		if len(recorder.Responses) != 1 || recorder.Responses[0].Dice == nil {
			t.Fatalf("got responses %+v, want one dice reply", recorder.Responses)
		}
	})

	t.Run("commit streak wins over a dice in the same message", func(t *testing.T) {
		b, recorder := newTestBot(fetcherFunc(workingFetcher), &triviaStub{})

		listenOnce(t, b, "@streakbot throw a dice for the commit streak")

		if len(recorder.Responses) != 1 || recorder.Responses[0].Text == nil {
			t.Fatalf("got responses %+v, want exactly one text reply", recorder.Responses)
		}
	})

	t.Run("it replies with subscriber commentary", func(t *testing.T) {
		b, recorder := newTestBot(fetcherFunc(workingFetcher), &triviaStub{
			stats: trivia.ChannelStatistics{Subscribers: 1534},
		})

		listenOnce(t, b, "@streakbot how many subscribers does cedric have?")

		if len(recorder.Responses) != 1 || recorder.Responses[0].Text == nil {
			t.Fatalf("got responses %+v, want one text reply", recorder.Responses)
		}

		want := "Cedric has 1534 subscribers. " + trivia.SubscriberCommentary(1534)
		if got := recorder.Responses[0].Text.Body; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("it replies with player commentary", func(t *testing.T) {
		b, recorder := newTestBot(fetcherFunc(workingFetcher), &triviaStub{players: 3})

		listenOnce(t, b, "@streakbot how many players on makerking?")

		if len(recorder.Responses) != 1 || recorder.Responses[0].Text == nil {
			t.Fatalf("got responses %+v, want one text reply", recorder.Responses)
		}

		want := "3 players online on MakerKing. " + trivia.PlayerCommentary(3)
		if got := recorder.Responses[0].Text.Body; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("it stays silent when a trivia lookup fails", func(t *testing.T) {
		b, recorder := newTestBot(fetcherFunc(workingFetcher), &triviaStub{
			statsErr: errors.New("quota exceeded"),
			playErr:  errors.New("server offline"),
		})

		listenOnce(t, b, "@streakbot cedric subscribers?")
		listenOnce(t, b, "@streakbot makerking players?")

		if len(recorder.Responses) != 0 {
			t.Errorf("got responses %+v, want none", recorder.Responses)
		}
	})

	t.Run("it falls back to the video for anything else", func(t *testing.T) {
		b, recorder := newTestBot(fetcherFunc(workingFetcher), &triviaStub{})

		listenOnce(t, b, "@streakbot good morning")

		if len(recorder.Responses) != 1 || recorder.Responses[0].Video == nil {
			t.Fatalf("got responses %+v, want one video reply", recorder.Responses)
		}
		if got := recorder.Responses[0].Video.Path; got != "wtf-marion.mp4" {
			t.Errorf("got video %q, want wtf-marion.mp4", got)
		}
	})

	t.Run("it ignores messages that don't mention the bot", func(t *testing.T) {
		b, recorder := newTestBot(fetcherFunc(workingFetcher), &triviaStub{})

		listenOnce(t, b, "commit streak, anyone?")

		if len(recorder.Responses) != 0 {
			t.Errorf("got responses %+v, want none", recorder.Responses)
		}
	})

	t.Run("a failed message does not poison the next one", func(t *testing.T) {
		var calls atomic.Int32
		fetcher := fetcherFunc(func(ctx context.Context, user string) (streak.Record, error) {
			if calls.Add(1) <= 4 {
				return streak.Record{}, errors.New("flaky upstream")
			}
			return testStreaks[user], nil
		})
		b, recorder := newTestBot(fetcher, &triviaStub{})

		messages := make(chan telegram.Message, 2)
		messages <- telegram.Message{ChatID: 42, Text: "@streakbot commit streak"}
		messages <- telegram.Message{ChatID: 42, Text: "@streakbot commit streak"}
		close(messages)

		if err := b.Listen(messages); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}

		if len(recorder.Responses) != 1 || recorder.Responses[0].Text == nil {
			t.Errorf("got responses %+v, want one text reply from the second message", recorder.Responses)
		}
	})
}
