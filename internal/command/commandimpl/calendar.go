package commandimpl

import (
	"strings"

	"github.com/orgball2608/content-scheduler/internal/calendar"
	"github.com/orgball2608/content-scheduler/internal/domain"
	"github.com/orgball2608/content-scheduler/pkg/errors"
)

func (c *CommandImpl) handleMonth(chatID int64) error {
	text := renderMonth(c.Planner.VisibleMonth(), c.Planner.VisibleEvents())
	_, err := c.Telegram.SendMessage(chatID, text)
	return err
}

func (c *CommandImpl) handleNavigate(chatID int64, dir calendar.Direction) error {
	c.Planner.Navigate(dir)
	return c.handleMonth(chatID)
}

func (c *CommandImpl) handleDay(chatID int64, args string) error {
	arg := strings.TrimSpace(args)
	if arg == "" {
		_, err := c.Telegram.SendMessage(chatID, "Please provide a date: /day <YYYY-MM-DD>")
		return err
	}

	day, err := domain.ParseDate(arg)
	if err != nil {
		return c.replyError(chatID, errors.WrapWithCode(err, errors.CodeInvalidInput, "Dates look like 2026-10-18"))
	}

	_, err = c.Telegram.SendMessage(chatID, renderDay(c.Planner.SelectDay(day)))
	return err
}
