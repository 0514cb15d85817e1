package commandimpl

import (
	"context"
	"encoding/json"
	"errors"
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/content-scheduler/internal/calendar"
	apperrors "github.com/orgball2608/content-scheduler/pkg/errors"
)

const helpMessage = `👋 Content scheduler

CALENDAR:
/month - Show the visible month.
/next, /prev - Move the visible month.
/day <YYYY-MM-DD> - Open or close the preview of a day.

SCHEDULING:
/schedule <post|reel|story> <content_id> <account_id> <YYYY-MM-DD> <HH:MM> - Schedule content.
/retry - Resubmit the last draft the server rejected.
/move <scheduler_id> <YYYY-MM-DD> <HH:MM> - Reschedule an item.
/delete <scheduler_id> - Preview an item before deleting it.
/confirm <scheduler_id> - Delete a previewed item.

CONNECTION:
/status - Show the realtime channel state.
/reconnect - Start a fresh connection cycle.

Times use 15-minute steps.`

const actionConfirmDelete = "confirm_delete"

type callbackData struct {
	Action string `json:"action"`
	ID     string `json:"id"`
}

func (c *CommandImpl) HandleCommand(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.Telegram.GetUpdatesChan(u)
	c.Logger.Info("Command handler started, listening for updates.")

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Command handler shutting down.")
			c.Telegram.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				c.Logger.Warn("Telegram updates channel closed unexpectedly.")
				return errors.New("telegram updates channel closed")
			}

			go func(u tgbotapi.Update) {
				defer func() {
					if r := recover(); r != nil {
						c.Logger.Error("Panic recovered while processing an update", "panic", r, "stack", string(debug.Stack()))
					}
				}()
				c.handleUpdate(ctx, u)
			}(update)
		}
	}
}

func (c *CommandImpl) handleUpdate(ctx context.Context, u tgbotapi.Update) {
	if u.CallbackQuery != nil {
		if !c.authorized(u.CallbackQuery.From) {
			return
		}
		c.handleCallback(ctx, u.CallbackQuery)
		return
	}

	if u.Message == nil || !u.Message.IsCommand() {
		return
	}
	if !c.authorized(u.Message.From) {
		c.Logger.Warn("Ignoring command from unknown user", "command", u.Message.Command())
		return
	}

	c.Logger.Info("Command received", "command", u.Message.Command(), "args", u.Message.CommandArguments())
	if err := c.processCommand(ctx, u); err != nil {
		c.Logger.Error("Error processing command",
			"command", u.Message.Command(),
			"error", err)
	}
}

// authorized accepts everyone when no operator is configured.
func (c *CommandImpl) authorized(from *tgbotapi.User) bool {
	operator := c.Config.Telegram.User
	return operator == 0 || (from != nil && from.ID == operator)
}

func (c *CommandImpl) processCommand(ctx context.Context, update tgbotapi.Update) error {
	command := update.Message.Command()
	args := update.Message.CommandArguments()
	chatID := update.Message.Chat.ID

	switch command {
	case "start", "help":
		_, err := c.Telegram.SendMessage(chatID, helpMessage)
		return err
	case "month":
		return c.handleMonth(chatID)
	case "next":
		return c.handleNavigate(chatID, calendar.Next)
	case "prev":
		return c.handleNavigate(chatID, calendar.Previous)
	case "day":
		return c.handleDay(chatID, args)
	case "schedule":
		return c.handleSchedule(ctx, chatID, args)
	case "retry":
		return c.handleRetry(ctx, chatID)
	case "move":
		return c.handleMove(ctx, chatID, args)
	case "delete":
		return c.handleDelete(chatID, args)
	case "confirm":
		return c.handleConfirm(ctx, chatID, args)
	case "status":
		return c.handleStatus(chatID)
	case "reconnect":
		return c.handleReconnect(chatID)
	default:
		_, err := c.Telegram.SendMessage(chatID, "Unknown command. Type /help to see the list of available commands.")
		return err
	}
}

func (c *CommandImpl) handleCallback(ctx context.Context, callbackQuery *tgbotapi.CallbackQuery) {
	// Acknowledge the callback to remove the loading animation on the button
	callback := tgbotapi.NewCallback(callbackQuery.ID, "")
	_, _ = c.Telegram.Request(callback)

	var data callbackData
	if err := json.Unmarshal([]byte(callbackQuery.Data), &data); err != nil {
		c.Logger.Error("Failed to unmarshal callback data", "error", err)
		return
	}
	if callbackQuery.Message == nil {
		return
	}

	switch data.Action {
	case actionConfirmDelete:
		if err := c.handleConfirm(ctx, callbackQuery.Message.Chat.ID, data.ID); err != nil {
			c.Logger.Error("Error confirming delete", "id", data.ID, "error", err)
		}
	default:
		c.Logger.Warn("Unknown callback action", "action", data.Action)
	}
}

// replyError tells the chat why a command failed. Gateway failures were already
// reported to the operator by the planner, so the operator's own chat is skipped.
func (c *CommandImpl) replyError(chatID int64, err error) error {
	operator := c.Config.Telegram.User
	if apperrors.IsGatewayFailure(err) && operator != 0 && chatID == operator {
		return err
	}
	_, sendErr := c.Telegram.SendMessage(chatID, "⚠️ "+apperrors.GetMessage(err))
	return sendErr
}
