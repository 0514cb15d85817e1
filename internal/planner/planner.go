package planner

import (
	"context"

	"github.com/orgball2608/content-scheduler/internal/calendar"
	"github.com/orgball2608/content-scheduler/internal/domain"
	"github.com/orgball2608/content-scheduler/internal/draft"
)

//go:generate go run go.uber.org/mock/mockgen -source=planner.go -destination=mocks/mock.go

// Notifier reaches the operator with user-visible failures.
type Notifier interface {
	SendMessageToUser(message string)
}

// Planner owns the calendar projection of one company and drives the scheduling
// workflows against the scheduler gateway.
type Planner interface {
	// Refresh refetches the collection and rebuilds the projection
	Refresh(ctx context.Context) error

	// HandlePush reacts to a push notification with a throttled refetch
	HandlePush(payload any)

	// ScheduleResync refetches periodically until ctx is done
	ScheduleResync(ctx context.Context) error

	SelectDay(day domain.Date) calendar.Preview
	Navigate(dir calendar.Direction) domain.Month
	VisibleMonth() domain.Month
	VisibleEvents() []domain.CalendarEvent
	Find(id string) (domain.ScheduledItem, bool)

	// Schedule composes and submits a create draft
	Schedule(ctx context.Context, kind domain.ContentKind, contentID, accountID string, date domain.Date, t domain.LocalTime) (domain.ScheduledItem, error)

	// Retry resubmits the draft kept after a failed Schedule
	Retry(ctx context.Context) (domain.ScheduledItem, error)

	// Draft returns the pending create draft
	Draft() domain.SchedulingDraft

	// Reschedule moves an item to a new slot
	Reschedule(ctx context.Context, id string, date domain.Date, t domain.LocalTime) (domain.ScheduledItem, error)

	// PrepareDelete returns the preview shown before a delete is confirmed
	PrepareDelete(id string) (draft.Preview, error)

	// ConfirmDelete removes an item previously passed to PrepareDelete
	ConfirmDelete(ctx context.Context, id string) error
}
