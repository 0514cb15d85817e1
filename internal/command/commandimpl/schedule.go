package commandimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgball2608/content-scheduler/internal/domain"
	"github.com/orgball2608/content-scheduler/pkg/errors"
)

func (c *CommandImpl) handleSchedule(ctx context.Context, chatID int64, args string) error {
	fields := strings.Fields(args)
	if len(fields) != 5 {
		_, err := c.Telegram.SendMessage(chatID,
			"Usage: /schedule <post|reel|story> <content_id> <account_id> <YYYY-MM-DD> <HH:MM>")
		return err
	}

	date, t, err := parseSlot(fields[3], fields[4])
	if err != nil {
		return c.replyError(chatID, err)
	}

	item, err := c.Planner.Schedule(ctx, domain.ContentKind(strings.ToLower(fields[0])), fields[1], fields[2], date, t)
	if err != nil {
		return c.replyError(chatID, err)
	}

	_, err = c.Telegram.SendMessage(chatID, renderScheduled(item))
	return err
}

func (c *CommandImpl) handleRetry(ctx context.Context, chatID int64) error {
	item, err := c.Planner.Retry(ctx)
	if err != nil {
		return c.replyError(chatID, err)
	}

	_, err = c.Telegram.SendMessage(chatID, renderScheduled(item))
	return err
}

func (c *CommandImpl) handleMove(ctx context.Context, chatID int64, args string) error {
	fields := strings.Fields(args)
	if len(fields) != 3 {
		_, err := c.Telegram.SendMessage(chatID, "Usage: /move <scheduler_id> <YYYY-MM-DD> <HH:MM>")
		return err
	}

	date, t, err := parseSlot(fields[1], fields[2])
	if err != nil {
		return c.replyError(chatID, err)
	}

	item, err := c.Planner.Reschedule(ctx, fields[0], date, t)
	if err != nil {
		return c.replyError(chatID, err)
	}

	_, err = c.Telegram.SendMessage(chatID, fmt.Sprintf("✅ Moved to %s %s", item.ScheduledDate, item.ScheduledTime))
	return err
}

func parseSlot(dateArg, timeArg string) (domain.Date, domain.LocalTime, error) {
	date, err := domain.ParseDate(dateArg)
	if err != nil {
		return domain.Date{}, domain.LocalTime{}, errors.WrapWithCode(err, errors.CodeInvalidInput, "Dates look like 2026-10-18")
	}
	t, err := domain.ParseLocalTime(timeArg)
	if err != nil {
		return domain.Date{}, domain.LocalTime{}, errors.WrapWithCode(err, errors.CodeInvalidInput, "Times look like 14:45")
	}
	return date, t, nil
}
