package telegramtest

type Text struct {
	ChatID int64
	Body   string
}

type Dice struct {
	ChatID int64
}

type Video struct {
	ChatID int64
	Path   string
}

type Response struct {
	Text  *Text
	Dice  *Dice
	Video *Video
}

type ResponseRecorder struct {
	Responses []Response
}

func NewResponseRecorder() *ResponseRecorder {
	return new(ResponseRecorder)
}

func (r *ResponseRecorder) SendMessage(chatID int64, text string) error {
	r.Responses = append(r.Responses, Response{
		Text: &Text{
			ChatID: chatID,
			Body:   text,
		},
	})
	return nil
}

func (r *ResponseRecorder) SendDice(chatID int64) error {
	r.Responses = append(r.Responses, Response{
		Dice: &Dice{
			ChatID: chatID,
		},
	})
	return nil
}

func (r *ResponseRecorder) SendVideo(chatID int64, path string) error {
	r.Responses = append(r.Responses, Response{
		Video: &Video{
			ChatID: chatID,
			Path:   path,
		},
	})
	return nil
}
