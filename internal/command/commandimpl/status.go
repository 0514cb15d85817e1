package commandimpl

import (
	"fmt"

	"github.com/orgball2608/content-scheduler/internal/realtime"
)

func (c *CommandImpl) handleStatus(chatID int64) error {
	state := c.Session.State()
	text := fmt.Sprintf("Realtime channel: %s", state)
	if attempts := c.Session.Attempts(); attempts > 0 {
		text += fmt.Sprintf(" (failed attempts: %d)", attempts)
	}
	if state == realtime.StateGivingUp {
		text += "\nUse /reconnect to try again."
	}

	_, err := c.Telegram.SendMessage(chatID, text)
	return err
}

func (c *CommandImpl) handleReconnect(chatID int64) error {
	c.Session.Connect()
	_, err := c.Telegram.SendMessage(chatID, "Reconnecting…")
	return err
}
