package plannerimpl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/content-scheduler/internal/calendar"
	"github.com/orgball2608/content-scheduler/internal/domain"
	mock_planner "github.com/orgball2608/content-scheduler/internal/planner/mocks"
	"github.com/orgball2608/content-scheduler/internal/ratelimit"
	"github.com/orgball2608/content-scheduler/internal/repositories/content"
	mock_content "github.com/orgball2608/content-scheduler/internal/repositories/content/mocks"
	"github.com/orgball2608/content-scheduler/internal/repositories/scheduler"
	mock_scheduler "github.com/orgball2608/content-scheduler/internal/repositories/scheduler/mocks"
	"github.com/orgball2608/content-scheduler/pkg/config"
	"github.com/orgball2608/content-scheduler/pkg/errors"
	"github.com/orgball2608/content-scheduler/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const companyID = "company-1"

type fixture struct {
	planner   *PlannerImpl
	schedules *mock_scheduler.MockRepository
	contents  *mock_content.MockRepository
	notifier  *mock_planner.MockNotifier
	clock     *clockwork.FakeClock
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.CompanyID = companyID
	cfg.Calendar.Timezone = "UTC"
	cfg.Calendar.ResyncInterval = time.Minute

	f := fixture{
		schedules: mock_scheduler.NewMockRepository(ctrl),
		contents:  mock_content.NewMockRepository(ctrl),
		notifier:  mock_planner.NewMockNotifier(ctrl),
		clock:     clockwork.NewFakeClockAt(time.Date(2026, time.October, 18, 10, 30, 0, 0, time.UTC)),
	}
	f.planner = New(Opts{
		Config:        cfg,
		Logger:        logger.Nop(),
		SchedulerRepo: f.schedules,
		ContentRepo:   f.contents,
		Notifier:      f.notifier,
		Limiter:       ratelimit.NewInMemoryLimiter(1, time.Hour, 1),
		Clock:         f.clock,
	})
	return f
}

func scheduled(id, date, clock string) domain.ScheduledItem {
	return domain.ScheduledItem{
		ID:            id,
		CompanyID:     companyID,
		Content:       domain.ContentItem{Kind: domain.ContentKindPost, ID: "post-" + id, Title: "Post " + id, Text: "Body"},
		Accounts:      []domain.SocialMediaAccount{{ID: "acc-1", Username: "brand"}},
		ScheduledDate: date,
		ScheduledTime: clock,
		Active:        true,
	}
}

func story() domain.ContentItem {
	return domain.ContentItem{Kind: domain.ContentKindStory, ID: "story-7", CompanyID: companyID, Title: "Teaser"}
}

func brand() domain.SocialMediaAccount {
	return domain.SocialMediaAccount{ID: "acc-3", Username: "brand", CompanyID: companyID}
}

func TestRefreshRebuildsProjection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.schedules.EXPECT().List(ctx, companyID).Return([]domain.ScheduledItem{
		scheduled("s1", "2026-10-20", "09:00:00"),
		scheduled("s2", "not-a-date", "09:00:00"),
		scheduled("s3", "2026-11-02", "12:00:00"),
	}, nil)

	require.NoError(t, f.planner.Refresh(ctx))

	events := f.planner.VisibleEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "s1", events[0].ID)

	_, ok := f.planner.Find("s3")
	assert.True(t, ok)

	f.planner.Navigate(calendar.Next)
	assert.Equal(t, domain.Month{Year: 2026, Month: time.November}, f.planner.VisibleMonth())
	assert.Len(t, f.planner.VisibleEvents(), 1)
}

func TestRefreshFailureKeepsProjection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.schedules.EXPECT().List(ctx, companyID).Return([]domain.ScheduledItem{scheduled("s1", "2026-10-20", "09:00:00")}, nil)
	require.NoError(t, f.planner.Refresh(ctx))

	f.schedules.EXPECT().List(ctx, companyID).Return(nil, errors.New("", "connection reset"))
	err := f.planner.Refresh(ctx)
	assert.True(t, errors.IsGatewayFailure(err))
	assert.Len(t, f.planner.VisibleEvents(), 1)
}

func TestSelectDayPreview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.schedules.EXPECT().List(ctx, companyID).Return([]domain.ScheduledItem{
		scheduled("s2", "2026-10-20", "15:00:00"),
		scheduled("s1", "2026-10-20", "09:00:00"),
	}, nil)
	require.NoError(t, f.planner.Refresh(ctx))

	day := domain.NewDate(2026, time.October, 20)
	preview := f.planner.SelectDay(day)
	require.True(t, preview.Active())
	require.Equal(t, 2, preview.Count())
	assert.Equal(t, "s1", preview.Events[0].ID)

	assert.False(t, f.planner.SelectDay(day).Active())
}

func TestScheduleSubmitsAndRefetches(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	want := domain.SchedulingRequest{
		ContentKind:           domain.ContentKindStory,
		ContentID:             "story-7",
		CompanyID:             companyID,
		SocialMediaAccountIDs: []string{"acc-3"},
		ScheduledDate:         "2026-10-19",
		ScheduledTime:         "09:15:00",
		Active:                true,
	}
	created := scheduled("s9", "2026-10-19", "09:15:00")

	gomock.InOrder(
		f.contents.EXPECT().GetContent(ctx, domain.ContentKindStory, "story-7").Return(story(), nil),
		f.contents.EXPECT().GetAccount(ctx, "acc-3").Return(brand(), nil),
		f.schedules.EXPECT().Create(ctx, want).Return(created, nil),
		f.schedules.EXPECT().List(ctx, companyID).Return([]domain.ScheduledItem{created}, nil),
	)

	item, err := f.planner.Schedule(ctx, domain.ContentKindStory, "story-7", "acc-3",
		domain.NewDate(2026, time.October, 19), domain.NewLocalTime(9, 15, 0))
	require.NoError(t, err)
	assert.Equal(t, "s9", item.ID)
	assert.Equal(t, domain.SchedulingDraft{}, f.planner.Draft())

	_, ok := f.planner.Find("s9")
	assert.True(t, ok)
}

func TestScheduleGatewayFailureRestoresDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.contents.EXPECT().GetContent(ctx, domain.ContentKindStory, "story-7").Return(story(), nil)
	f.contents.EXPECT().GetAccount(ctx, "acc-3").Return(brand(), nil)
	f.schedules.EXPECT().Create(ctx, gomock.Any()).Return(domain.ScheduledItem{}, errors.New("", "gateway timeout"))
	f.notifier.EXPECT().SendMessageToUser(gomock.Any()).Times(1)

	_, err := f.planner.Schedule(ctx, domain.ContentKindStory, "story-7", "acc-3",
		domain.NewDate(2026, time.October, 19), domain.NewLocalTime(9, 15, 0))
	require.Error(t, err)
	assert.True(t, errors.IsGatewayFailure(err))

	d := f.planner.Draft()
	require.True(t, d.Ready())
	assert.Equal(t, "story-7", d.Content.ID)
	assert.Equal(t, "09:15:00", d.Time.String())

	created := scheduled("s9", "2026-10-19", "09:15:00")
	f.schedules.EXPECT().Create(ctx, gomock.Any()).Return(created, nil)
	f.schedules.EXPECT().List(ctx, companyID).Return([]domain.ScheduledItem{created}, nil)

	item, err := f.planner.Retry(ctx)
	require.NoError(t, err)
	assert.Equal(t, "s9", item.ID)
	assert.False(t, f.planner.Draft().Ready())
}

func TestScheduleRejectsInvalidSlots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.contents.EXPECT().GetContent(ctx, domain.ContentKindStory, "story-7").Return(story(), nil).Times(2)
	f.contents.EXPECT().GetAccount(ctx, "acc-3").Return(brand(), nil).Times(2)

	_, err := f.planner.Schedule(ctx, domain.ContentKindStory, "story-7", "acc-3",
		domain.NewDate(2026, time.October, 18), domain.NewLocalTime(10, 15, 0))
	assert.True(t, errors.IsPastDateTime(err))

	_, err = f.planner.Schedule(ctx, domain.ContentKindStory, "story-7", "acc-3",
		domain.NewDate(2026, time.October, 19), domain.NewLocalTime(9, 10, 0))
	assert.True(t, errors.IsInvalidTimeGranularity(err))
	assert.Nil(t, f.planner.Draft().Time)
}

func TestScheduleUnknownContent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other := story()
	other.CompanyID = "company-2"
	f.contents.EXPECT().GetContent(ctx, domain.ContentKindStory, "story-7").Return(other, nil)

	_, err := f.planner.Schedule(ctx, domain.ContentKindStory, "story-7", "acc-3",
		domain.NewDate(2026, time.October, 19), domain.NewLocalTime(9, 15, 0))
	assert.True(t, errors.IsNotFound(err))

	_, err = f.planner.Schedule(ctx, domain.ContentKind("tweet"), "x", "acc-3",
		domain.NewDate(2026, time.October, 19), domain.NewLocalTime(9, 15, 0))
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestScheduleRefusesAccountOfAnotherCompany(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foreign := brand()
	foreign.CompanyID = "company-2"
	f.contents.EXPECT().GetContent(ctx, domain.ContentKindStory, "story-7").Return(story(), nil)
	f.contents.EXPECT().GetAccount(ctx, "acc-3").Return(foreign, nil)

	_, err := f.planner.Schedule(ctx, domain.ContentKindStory, "story-7", "acc-3",
		domain.NewDate(2026, time.October, 19), domain.NewLocalTime(9, 15, 0))
	assert.True(t, errors.IsNotFound(err))
	assert.True(t, errors.Is(err, content.ErrAccountNotFound))
	assert.Nil(t, f.planner.Draft().Account)
}

func TestReschedule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item := scheduled("s1", "2026-10-20", "09:00:00")
	f.schedules.EXPECT().List(ctx, companyID).Return([]domain.ScheduledItem{item}, nil)
	require.NoError(t, f.planner.Refresh(ctx))

	moved := scheduled("s1", "2026-10-22", "16:15:00")
	f.schedules.EXPECT().Update(ctx, domain.UpdateRequest{SchedulerID: "s1", ScheduledDate: "2026-10-22", ScheduledTime: "16:15:00"}).Return(moved, nil)
	f.schedules.EXPECT().List(ctx, companyID).Return([]domain.ScheduledItem{moved}, nil)

	got, err := f.planner.Reschedule(ctx, "s1", domain.NewDate(2026, time.October, 22), domain.NewLocalTime(16, 15, 0))
	require.NoError(t, err)
	assert.Equal(t, "2026-10-22", got.ScheduledDate)

	_, err = f.planner.Reschedule(ctx, "missing", domain.NewDate(2026, time.October, 22), domain.NewLocalTime(16, 15, 0))
	assert.True(t, errors.IsNotFound(err))
	assert.True(t, errors.Is(err, scheduler.ErrNotFound))
}

func TestDeleteNeedsPreviewAndKeepsItOnFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item := scheduled("s1", "2026-10-20", "09:00:00")
	f.schedules.EXPECT().List(ctx, companyID).Return([]domain.ScheduledItem{item}, nil)
	require.NoError(t, f.planner.Refresh(ctx))

	err := f.planner.ConfirmDelete(ctx, "s1")
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	preview, err := f.planner.PrepareDelete("s1")
	require.NoError(t, err)
	assert.Equal(t, "Post s1", preview.Title)
	assert.Equal(t, []string{"brand"}, preview.Accounts)

	f.schedules.EXPECT().Delete(ctx, domain.DeleteRequest{SchedulerID: "s1"}).Return(errors.New("", "gateway timeout"))
	f.notifier.EXPECT().SendMessageToUser(gomock.Any())
	assert.True(t, errors.IsGatewayFailure(f.planner.ConfirmDelete(ctx, "s1")))

	f.schedules.EXPECT().Delete(ctx, domain.DeleteRequest{SchedulerID: "s1"}).Return(nil)
	f.schedules.EXPECT().List(ctx, companyID).Return(nil, nil)
	require.NoError(t, f.planner.ConfirmDelete(ctx, "s1"))

	_, ok := f.planner.Find("s1")
	assert.False(t, ok)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(f.planner.ConfirmDelete(ctx, "s1")))
}

func TestConfirmDeleteOfRemovedItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.schedules.EXPECT().List(ctx, companyID).Return([]domain.ScheduledItem{
		scheduled("s1", "2026-10-20", "09:00:00"),
		scheduled("s2", "2026-10-21", "09:00:00"),
	}, nil)
	require.NoError(t, f.planner.Refresh(ctx))

	_, err := f.planner.PrepareDelete("s1")
	require.NoError(t, err)
	_, err = f.planner.PrepareDelete("s2")
	require.NoError(t, err)

	f.schedules.EXPECT().Delete(ctx, domain.DeleteRequest{SchedulerID: "s1"}).Return(scheduler.ErrNotFound)
	f.schedules.EXPECT().List(ctx, companyID).Return([]domain.ScheduledItem{scheduled("s2", "2026-10-21", "09:00:00")}, nil)

	err = f.planner.ConfirmDelete(ctx, "s1")
	assert.True(t, errors.IsNotFound(err))
	assert.False(t, errors.IsGatewayFailure(err))
	assert.Len(t, f.planner.deletes, 1)

	f.schedules.EXPECT().List(ctx, companyID).Return([]domain.ScheduledItem{scheduled("s3", "2026-10-22", "09:00:00")}, nil)
	require.NoError(t, f.planner.Refresh(ctx))

	_, err = f.planner.PrepareDelete("s3")
	require.NoError(t, err)
	assert.Len(t, f.planner.deletes, 1)
	assert.Contains(t, f.planner.deletes, "s3")
}

func TestStaleRefreshIsDiscarded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	f.schedules.EXPECT().List(ctx, companyID).DoAndReturn(
		func(context.Context, string) ([]domain.ScheduledItem, error) {
			close(started)
			<-release
			return []domain.ScheduledItem{scheduled("old", "2026-10-20", "09:00:00")}, nil
		})
	f.schedules.EXPECT().List(ctx, companyID).Return([]domain.ScheduledItem{scheduled("new", "2026-10-20", "10:00:00")}, nil)

	done := make(chan error, 1)
	go func() { done <- f.planner.Refresh(ctx) }()
	<-started

	require.NoError(t, f.planner.Refresh(ctx))
	close(release)
	require.NoError(t, <-done)

	_, ok := f.planner.Find("new")
	assert.True(t, ok)
	_, ok = f.planner.Find("old")
	assert.False(t, ok)
}

func TestHandlePushIsThrottled(t *testing.T) {
	f := newFixture(t)

	f.schedules.EXPECT().List(gomock.Any(), companyID).Return(nil, nil).Times(1)

	f.planner.HandlePush(map[string]any{"event": "scheduler.updated"})
	f.planner.HandlePush(map[string]any{"event": "scheduler.updated"})
}

func TestHandlePushIgnoresOtherCompanies(t *testing.T) {
	f := newFixture(t)

	f.planner.HandlePush(map[string]any{"company_id": "company-2"})
}

func TestScheduleResync(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	f.schedules.EXPECT().List(gomock.Any(), companyID).DoAndReturn(
		func(context.Context, string) ([]domain.ScheduledItem, error) {
			calls.Add(1)
			return nil, nil
		}).AnyTimes()

	require.NoError(t, f.planner.ScheduleResync(ctx))

	assert.Eventually(t, func() bool {
		f.clock.Advance(time.Minute)
		return calls.Load() > 0
	}, 2*time.Second, 10*time.Millisecond)
}
