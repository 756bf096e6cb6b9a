package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Message is one inbound chat message.
type Message struct {
	ChatID int64
	Text   string
}

// Messages bridges the Telegram long-poll update stream to a channel.
// The channel closes when ctx is done or the update stream ends.
func Messages(ctx context.Context, api *tgbotapi.BotAPI) <-chan Message {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	ch := make(chan Message, 16)
	go func() {
		defer close(ch)

		for {
			select {
			case <-ctx.Done():
				api.StopReceivingUpdates()
				return
			case update, ok := <-updates:
				if !ok {
					return
				}
				if update.Message == nil {
					continue
				}

				// Ignore messages from self.
				if update.Message.From != nil && update.Message.From.UserName == api.Self.UserName {
					continue
				}

				msg := Message{
					ChatID: update.Message.Chat.ID,
					Text:   update.Message.Text,
				}

				select {
				case <-ctx.Done():
					api.StopReceivingUpdates()
					return
				case ch <- msg:
				}
			}
		}
	}()

	return ch
}
