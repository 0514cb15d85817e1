package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/content-scheduler/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go
type Client interface {
	GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)

	SendMessage(chatID int64, text string) (int, error)
	SendMessageWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) (int, error)
	EditMessageText(chatID int64, messageID int, newText string) error

	// SendMedia sends one photo or video with a caption
	SendMedia(chatID int64, media domain.MediaRef, caption string) error

	// SendMediaGroup sends a carousel; the caption goes on the first item
	SendMediaGroup(chatID int64, media []domain.MediaRef, caption string) error

	// SendMessageToUser notifies the configured operator
	SendMessageToUser(message string)
}
