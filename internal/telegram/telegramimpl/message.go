package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/content-scheduler/internal/domain"
)

// Telegram caps captions at 1024 characters
const maxCaption = 1024

// SendMessageToUser sends a text message to the configured user
func (tg *TelegramImpl) SendMessageToUser(message string) {
	if tg.Config.Telegram.User == 0 {
		tg.Logger.Warn("No operator configured, dropping notification", "message", message)
		return
	}

	msg := tgbotapi.NewMessage(tg.Config.Telegram.User, message)
	_, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending message to user",
			"userID", tg.Config.Telegram.User,
			"error", err)
		return
	}

	tg.Logger.Info("Message sent to user",
		"userID", tg.Config.Telegram.User)
}

// SendMessage sends a message to a specific chat ID
func (tg *TelegramImpl) SendMessage(chatID int64, text string) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	sentMsg, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending message",
			"chatID", chatID,
			"error", err)
		return 0, fmt.Errorf("failed to send message: %w", err)
	}

	tg.Logger.Debug("Message sent",
		"chatID", chatID,
		"messageID", sentMsg.MessageID)
	return sentMsg.MessageID, nil
}

// SendMessageWithKeyboard sends a message with inline buttons
func (tg *TelegramImpl) SendMessageWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard

	sentMsg, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending message with keyboard",
			"chatID", chatID,
			"error", err)
		return 0, fmt.Errorf("failed to send message: %w", err)
	}
	return sentMsg.MessageID, nil
}

func (tg *TelegramImpl) EditMessageText(chatID int64, messageID int, newText string) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, newText)
	if _, err := tg.TgBot.Send(edit); err != nil {
		tg.Logger.Error("Error editing message",
			"chatID", chatID,
			"messageID", messageID,
			"error", err)
		return fmt.Errorf("failed to edit message: %w", err)
	}
	return nil
}

// SendMedia sends one photo or video by URL
func (tg *TelegramImpl) SendMedia(chatID int64, media domain.MediaRef, caption string) error {
	file := tgbotapi.FileURL(media.URL)
	caption = truncateCaption(caption)

	var msg tgbotapi.Chattable
	if media.IsVideo() {
		video := tgbotapi.NewVideo(chatID, file)
		video.Caption = caption
		msg = video
	} else {
		photo := tgbotapi.NewPhoto(chatID, file)
		photo.Caption = caption
		msg = photo
	}

	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending media",
			"chatID", chatID,
			"url", media.URL,
			"type", media.Type,
			"error", err)
		return fmt.Errorf("failed to send %s: %w", media.Type, err)
	}
	return nil
}

// SendMediaGroup sends a carousel as one album
func (tg *TelegramImpl) SendMediaGroup(chatID int64, media []domain.MediaRef, caption string) error {
	group := MediaGroup(media, caption)
	if len(group) == 0 {
		return nil
	}

	if _, err := tg.TgBot.SendMediaGroup(tgbotapi.NewMediaGroup(chatID, group)); err != nil {
		tg.Logger.Error("Error sending media group",
			"chatID", chatID,
			"items", len(group),
			"error", err)
		return fmt.Errorf("failed to send media group: %w", err)
	}
	return nil
}

// MediaGroup builds the album items, putting the caption on the first one
func MediaGroup(media []domain.MediaRef, caption string) []interface{} {
	caption = truncateCaption(caption)
	group := make([]interface{}, 0, len(media))

	for i, m := range media {
		var file tgbotapi.RequestFileData = tgbotapi.FileURL(m.URL)

		if m.IsVideo() {
			video := tgbotapi.NewInputMediaVideo(file)
			if i == 0 {
				video.Caption = caption
			}
			group = append(group, video)
		} else {
			photo := tgbotapi.NewInputMediaPhoto(file)
			if i == 0 {
				photo.Caption = caption
			}
			group = append(group, photo)
		}
	}
	return group
}

func truncateCaption(caption string) string {
	runes := []rune(caption)
	if len(runes) <= maxCaption {
		return caption
	}
	return string(runes[:maxCaption-1]) + "…"
}
