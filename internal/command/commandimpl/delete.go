package commandimpl

import (
	"context"
	"encoding/json"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (c *CommandImpl) handleDelete(chatID int64, args string) error {
	id := strings.TrimSpace(args)
	if id == "" {
		_, err := c.Telegram.SendMessage(chatID, "Please provide an id: /delete <scheduler_id>")
		return err
	}

	preview, err := c.Planner.PrepareDelete(id)
	if err != nil {
		return c.replyError(chatID, err)
	}

	caption := renderPreview(preview)
	switch {
	case preview.IsCarousel():
		err = c.Telegram.SendMediaGroup(chatID, preview.Carousel, caption)
	case preview.Media != nil:
		err = c.Telegram.SendMedia(chatID, *preview.Media, caption)
	default:
		_, err = c.Telegram.SendMessage(chatID, caption)
	}
	if err != nil {
		c.Logger.Error("Failed to send delete preview, falling back to text", "id", id, "error", err)
		if _, err := c.Telegram.SendMessage(chatID, caption); err != nil {
			return err
		}
	}

	data, _ := json.Marshal(callbackData{Action: actionConfirmDelete, ID: id})
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Delete", string(data))),
	)
	_, err = c.Telegram.SendMessageWithKeyboard(chatID, "Confirm with the button or /confirm "+id, keyboard)
	return err
}

func (c *CommandImpl) handleConfirm(ctx context.Context, chatID int64, args string) error {
	id := strings.TrimSpace(args)
	if id == "" {
		_, err := c.Telegram.SendMessage(chatID, "Please provide an id: /confirm <scheduler_id>")
		return err
	}

	if err := c.Planner.ConfirmDelete(ctx, id); err != nil {
		return c.replyError(chatID, err)
	}

	_, err := c.Telegram.SendMessage(chatID, "🗑 Deleted "+id)
	return err
}
