package commandimpl

import (
	"fmt"
	"strings"
	"time"

	"github.com/orgball2608/content-scheduler/internal/calendar"
	"github.com/orgball2608/content-scheduler/internal/domain"
	"github.com/orgball2608/content-scheduler/internal/draft"
	"github.com/orgball2608/content-scheduler/pkg/formatter"
)

func renderMonth(month domain.Month, events []domain.CalendarEvent) string {
	label := formatter.MonthLabel(time.Date(month.Year, month.Month, 1, 0, 0, 0, 0, time.UTC))

	var b strings.Builder
	fmt.Fprintf(&b, "📅 %s: %d scheduled\n", label, len(events))
	for _, e := range events {
		fmt.Fprintf(&b, "\n%s %s  %s", e.Start.Format("Mon 02"), formatter.ClockLabel(e.Start), renderEvent(e))
	}
	return b.String()
}

func renderDay(preview calendar.Preview) string {
	if !preview.Active() {
		return "Day preview closed."
	}
	if preview.Count() == 0 {
		return fmt.Sprintf("🗓 %s\n\nNothing scheduled.", preview.Label)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🗓 %s: %d scheduled\n", preview.Label, preview.Count())
	for _, e := range preview.Events {
		fmt.Fprintf(&b, "\n%s-%s  %s", formatter.ClockLabel(e.Start), formatter.ClockLabel(e.End), renderEvent(e))
	}
	return b.String()
}

func renderEvent(e domain.CalendarEvent) string {
	title := e.Title
	if title == "" {
		title = "(untitled)"
	}
	line := fmt.Sprintf("[%s] %s", e.Content.Kind, title)
	if accounts := usernames(e.Accounts); accounts != "" {
		line += " → " + accounts
	}
	return line + "\n    id: " + e.ID
}

// renderPreview is the caption shown before a delete is confirmed.
func renderPreview(p draft.Preview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🗑 Delete this %s?\n\n", p.Kind)
	if p.Title != "" {
		b.WriteString(p.Title + "\n")
	}
	for _, line := range p.Lines {
		b.WriteString(line + "\n")
	}
	if p.Hashtags != "" {
		b.WriteString(p.Hashtags + "\n")
	}
	fmt.Fprintf(&b, "\n%s %s", p.ScheduledDate, p.ScheduledTime)
	if len(p.Accounts) > 0 {
		b.WriteString(" on @" + strings.Join(p.Accounts, ", @"))
	}
	return b.String()
}

func renderScheduled(item domain.ScheduledItem) string {
	return fmt.Sprintf("✅ %s %q scheduled for %s %s\nid: %s",
		item.Content.Kind, item.Content.Title, item.ScheduledDate, item.ScheduledTime, item.ID)
}

func usernames(accounts []domain.SocialMediaAccount) string {
	names := make([]string, 0, len(accounts))
	for _, a := range accounts {
		names = append(names, "@"+a.Username)
	}
	return strings.Join(names, ", ")
}
