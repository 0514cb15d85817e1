package commandimpl

import (
	"context"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/content-scheduler/internal/calendar"
	"github.com/orgball2608/content-scheduler/internal/domain"
	"github.com/orgball2608/content-scheduler/internal/draft"
	mock_planner "github.com/orgball2608/content-scheduler/internal/planner/mocks"
	"github.com/orgball2608/content-scheduler/internal/realtime"
	mock_realtime "github.com/orgball2608/content-scheduler/internal/realtime/mocks"
	mock_telegram "github.com/orgball2608/content-scheduler/internal/telegram/mocks"
	"github.com/orgball2608/content-scheduler/pkg/config"
	"github.com/orgball2608/content-scheduler/pkg/errors"
	"github.com/orgball2608/content-scheduler/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	chatID     int64 = 42
	operatorID int64 = 7
)

type fixture struct {
	cmd      *CommandImpl
	telegram *mock_telegram.MockClient
	planner  *mock_planner.MockPlanner
	session  *mock_realtime.MockSession
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	cfg := &config.Config{}
	cfg.Telegram.User = operatorID

	f := fixture{
		telegram: mock_telegram.NewMockClient(ctrl),
		planner:  mock_planner.NewMockPlanner(ctrl),
		session:  mock_realtime.NewMockSession(ctrl),
	}
	f.cmd = New(Opts{
		Telegram: f.telegram,
		Planner:  f.planner,
		Session:  f.session,
		Logger:   logger.Nop(),
		Config:   cfg,
	})
	return f
}

func commandFrom(from int64, text string) tgbotapi.Update {
	length := strings.IndexByte(text, ' ')
	if length < 0 {
		length = len(text)
	}
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Text:     text,
		Chat:     &tgbotapi.Chat{ID: chatID},
		From:     &tgbotapi.User{ID: from},
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}},
	}}
}

func operatorCommand(text string) tgbotapi.Update {
	return commandFrom(operatorID, text)
}

// privateCommand is sent from the operator's private chat, whose id is the user id.
func privateCommand(text string) tgbotapi.Update {
	update := operatorCommand(text)
	update.Message.Chat = &tgbotapi.Chat{ID: operatorID}
	return update
}

func TestUnknownUserIsIgnored(t *testing.T) {
	f := newFixture(t)

	f.cmd.handleUpdate(context.Background(), commandFrom(99, "/status"))
}

func TestScheduleCommand(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item := domain.ScheduledItem{
		ID:            "sched-1",
		Content:       domain.ContentItem{Kind: domain.ContentKindReel, Title: "Teaser"},
		ScheduledDate: "2026-10-19",
		ScheduledTime: "09:15:00",
	}
	f.planner.EXPECT().
		Schedule(ctx, domain.ContentKindReel, "reel-1", "acc-3", domain.NewDate(2026, time.October, 19), domain.NewLocalTime(9, 15, 0)).
		Return(item, nil)
	f.telegram.EXPECT().SendMessage(chatID, gomock.Any()).DoAndReturn(func(_ int64, text string) (int, error) {
		assert.Contains(t, text, "sched-1")
		assert.Contains(t, text, "2026-10-19 09:15:00")
		return 1, nil
	})

	f.cmd.handleUpdate(ctx, operatorCommand("/schedule REEL reel-1 acc-3 2026-10-19 09:15"))
}

func TestScheduleCommandValidationWarning(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.planner.EXPECT().Schedule(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ScheduledItem{}, errors.WrapWithCode(errors.ErrInvalidTimeGranularity, errors.CodeInvalidTimeGranularity, "Please choose a time in 15-minute steps"))
	f.telegram.EXPECT().SendMessage(chatID, "⚠️ Please choose a time in 15-minute steps").Return(1, nil)

	f.cmd.handleUpdate(ctx, operatorCommand("/schedule post p1 acc-3 2026-10-19 09:10"))
}

func TestScheduleCommandGatewayFailureNotRepeated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.planner.EXPECT().Schedule(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ScheduledItem{}, errors.WrapWithCode(errors.ErrGatewayFailure, errors.CodeGatewayFailure, "Scheduling failed"))

	f.cmd.handleUpdate(ctx, privateCommand("/schedule post p1 acc-3 2026-10-19 09:15"))
}

func TestScheduleCommandGatewayFailureRepliesInOtherChats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.planner.EXPECT().Schedule(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ScheduledItem{}, errors.WrapWithCode(errors.ErrGatewayFailure, errors.CodeGatewayFailure, "Scheduling failed"))
	f.telegram.EXPECT().SendMessage(chatID, gomock.Any()).DoAndReturn(func(_ int64, text string) (int, error) {
		assert.Contains(t, text, "Scheduling failed")
		return 1, nil
	})

	f.cmd.handleUpdate(ctx, operatorCommand("/schedule post p1 acc-3 2026-10-19 09:15"))
}

func TestScheduleCommandGatewayFailureWithoutOperator(t *testing.T) {
	f := newFixture(t)
	f.cmd.Config.Telegram.User = 0
	ctx := context.Background()

	f.planner.EXPECT().Schedule(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ScheduledItem{}, errors.WrapWithCode(errors.ErrGatewayFailure, errors.CodeGatewayFailure, "Scheduling failed"))
	f.telegram.EXPECT().SendMessage(chatID, gomock.Any()).DoAndReturn(func(_ int64, text string) (int, error) {
		assert.Contains(t, text, "Scheduling failed")
		return 1, nil
	})

	f.cmd.handleUpdate(ctx, commandFrom(99, "/schedule post p1 acc-3 2026-10-19 09:15"))
}

func TestScheduleCommandBadArguments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.telegram.EXPECT().SendMessage(chatID, gomock.Any()).Return(1, nil)
	f.cmd.handleUpdate(ctx, operatorCommand("/schedule post p1"))

	f.telegram.EXPECT().SendMessage(chatID, "⚠️ Times look like 14:45").Return(1, nil)
	f.cmd.handleUpdate(ctx, operatorCommand("/schedule post p1 acc-3 2026-10-19 noon"))
}

func TestMoveCommand(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.planner.EXPECT().Reschedule(ctx, "sched-1", domain.NewDate(2026, time.October, 22), domain.NewLocalTime(16, 15, 0)).
		Return(domain.ScheduledItem{ID: "sched-1", ScheduledDate: "2026-10-22", ScheduledTime: "16:15:00"}, nil)
	f.telegram.EXPECT().SendMessage(chatID, "✅ Moved to 2026-10-22 16:15:00").Return(1, nil)

	f.cmd.handleUpdate(ctx, operatorCommand("/move sched-1 2026-10-22 16:15"))
}

func TestDayCommandToggles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	day := domain.NewDate(2026, time.October, 20)

	start := time.Date(2026, time.October, 20, 9, 0, 0, 0, time.UTC)
	open := calendar.Preview{
		Day:   &day,
		Label: "Tuesday, 20 October 2026",
		Events: []domain.CalendarEvent{{
			ID: "sched-1", Title: "Launch", Start: start, End: start.Add(domain.EventDuration),
			Content:  domain.ContentItem{Kind: domain.ContentKindPost},
			Accounts: []domain.SocialMediaAccount{{Username: "brand"}},
		}},
	}

	gomock.InOrder(
		f.planner.EXPECT().SelectDay(day).Return(open),
		f.telegram.EXPECT().SendMessage(chatID, gomock.Any()).DoAndReturn(func(_ int64, text string) (int, error) {
			assert.Contains(t, text, "Tuesday, 20 October 2026: 1 scheduled")
			assert.Contains(t, text, "09:00-11:00  [post] Launch → @brand")
			return 1, nil
		}),
		f.planner.EXPECT().SelectDay(day).Return(calendar.Preview{}),
		f.telegram.EXPECT().SendMessage(chatID, "Day preview closed.").Return(2, nil),
	)

	f.cmd.handleUpdate(ctx, operatorCommand("/day 2026-10-20"))
	f.cmd.handleUpdate(ctx, operatorCommand("/day 2026-10-20"))
}

func TestNextCommand(t *testing.T) {
	f := newFixture(t)

	november := domain.Month{Year: 2026, Month: time.November}
	f.planner.EXPECT().Navigate(calendar.Next).Return(november)
	f.planner.EXPECT().VisibleMonth().Return(november)
	f.planner.EXPECT().VisibleEvents().Return([]domain.CalendarEvent{})
	f.telegram.EXPECT().SendMessage(chatID, "📅 November 2026: 0 scheduled\n").Return(1, nil)

	f.cmd.handleUpdate(context.Background(), operatorCommand("/next"))
}

func TestDeleteCommandSendsCarousel(t *testing.T) {
	f := newFixture(t)

	preview := draft.Preview{
		SchedulerID: "sched-1",
		Kind:        domain.ContentKindPost,
		Title:       "Launch",
		Carousel: []domain.MediaRef{
			{URL: "https://cdn.example/a.jpg", Type: domain.MediaTypeImage},
			{URL: "https://cdn.example/b.mp4", Type: domain.MediaTypeVideo},
		},
		Accounts:      []string{"brand"},
		ScheduledDate: "2026-10-20",
		ScheduledTime: "09:00:00",
	}

	f.planner.EXPECT().PrepareDelete("sched-1").Return(preview, nil)
	f.telegram.EXPECT().SendMediaGroup(chatID, preview.Carousel, gomock.Any()).DoAndReturn(
		func(_ int64, _ []domain.MediaRef, caption string) error {
			assert.Contains(t, caption, "Delete this post?")
			assert.Contains(t, caption, "2026-10-20 09:00:00 on @brand")
			return nil
		})
	f.telegram.EXPECT().SendMessageWithKeyboard(chatID, "Confirm with the button or /confirm sched-1", gomock.Any()).Return(3, nil)

	f.cmd.handleUpdate(context.Background(), operatorCommand("/delete sched-1"))
}

func TestDeleteCommandSingleMedia(t *testing.T) {
	f := newFixture(t)

	media := domain.MediaRef{URL: "https://cdn.example/a.jpg", Type: domain.MediaTypeImage}
	f.planner.EXPECT().PrepareDelete("sched-1").Return(draft.Preview{SchedulerID: "sched-1", Media: &media}, nil)
	f.telegram.EXPECT().SendMedia(chatID, media, gomock.Any()).Return(nil)
	f.telegram.EXPECT().SendMessageWithKeyboard(chatID, gomock.Any(), gomock.Any()).Return(3, nil)

	f.cmd.handleUpdate(context.Background(), operatorCommand("/delete sched-1"))
}

func TestConfirmViaCallback(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.telegram.EXPECT().Request(gomock.Any()).Return(&tgbotapi.APIResponse{Ok: true}, nil)
	f.planner.EXPECT().ConfirmDelete(ctx, "sched-1").Return(nil)
	f.telegram.EXPECT().SendMessage(chatID, "🗑 Deleted sched-1").Return(1, nil)

	f.cmd.handleUpdate(ctx, tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb-1",
		From:    &tgbotapi.User{ID: operatorID},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}},
		Data:    `{"action":"confirm_delete","id":"sched-1"}`,
	}})
}

func TestStatusCommand(t *testing.T) {
	f := newFixture(t)

	f.session.EXPECT().State().Return(realtime.StateGivingUp)
	f.session.EXPECT().Attempts().Return(6)
	f.telegram.EXPECT().SendMessage(chatID, "Realtime channel: giving_up (failed attempts: 6)\nUse /reconnect to try again.").Return(1, nil)

	f.cmd.handleUpdate(context.Background(), operatorCommand("/status"))
}

func TestReconnectCommand(t *testing.T) {
	f := newFixture(t)

	f.session.EXPECT().Connect()
	f.telegram.EXPECT().SendMessage(chatID, gomock.Any()).Return(1, nil)

	f.cmd.handleUpdate(context.Background(), operatorCommand("/reconnect"))
}

func TestHandleCommandStopsOnCancel(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	updates := make(chan tgbotapi.Update)
	f.telegram.EXPECT().GetUpdatesChan(gomock.Any()).Return(tgbotapi.UpdatesChannel(updates))
	f.telegram.EXPECT().StopReceivingUpdates()

	assert.ErrorIs(t, f.cmd.HandleCommand(ctx), context.Canceled)
}
