// Package telegram wraps the Telegram Bot API behind the small surface
// the bot actually uses.
package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Telegram struct {
	api *tgbotapi.BotAPI
}

func New(api *tgbotapi.BotAPI) *Telegram {
	return &Telegram{api: api}
}

func (t *Telegram) SendMessage(chatID int64, text string) error {
	_, err := t.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (t *Telegram) SendDice(chatID int64) error {
	_, err := t.api.Send(tgbotapi.NewDice(chatID))
	return err
}

func (t *Telegram) SendVideo(chatID int64, path string) error {
	_, err := t.api.Send(tgbotapi.NewVideo(chatID, tgbotapi.FilePath(path)))
	return err
}
