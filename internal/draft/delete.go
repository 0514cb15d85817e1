package draft

import (
	"github.com/orgball2608/content-scheduler/internal/domain"
	"github.com/orgball2608/content-scheduler/pkg/errors"
	"github.com/orgball2608/content-scheduler/pkg/formatter"
)

const previewLines = 3

// Preview is what the user sees before confirming a delete. Exactly one of Media
// and Carousel is set when the content has media.
type Preview struct {
	SchedulerID   string
	Kind          domain.ContentKind
	Title         string
	Lines         []string
	Hashtags      string
	Media         *domain.MediaRef
	Carousel      []domain.MediaRef
	Accounts      []string
	ScheduledDate string
	ScheduledTime string
}

func (p Preview) IsCarousel() bool {
	return len(p.Carousel) > 0
}

func NewPreview(item domain.ScheduledItem) Preview {
	p := Preview{
		SchedulerID:   item.ID,
		Kind:          item.Content.Kind,
		Title:         item.Content.Title,
		Lines:         formatter.FirstLines(item.Content.Text, previewLines),
		Hashtags:      item.Content.Hashtags,
		ScheduledDate: item.ScheduledDate,
		ScheduledTime: item.ScheduledTime,
	}

	switch {
	case item.Content.HasCarousel():
		p.Carousel = append([]domain.MediaRef(nil), item.Content.Media...)
	case len(item.Content.Media) == 1:
		m := item.Content.Media[0]
		p.Media = &m
	}

	for _, acc := range item.Accounts {
		p.Accounts = append(p.Accounts, acc.Username)
	}
	return p
}

// DeleteWorkflow confirms the removal of one scheduled item.
type DeleteWorkflow struct {
	schedulerID string
	preview     Preview
}

func NewDeleteWorkflow(item domain.ScheduledItem) *DeleteWorkflow {
	return &DeleteWorkflow{
		schedulerID: item.ID,
		preview:     NewPreview(item),
	}
}

func (w *DeleteWorkflow) SchedulerID() string {
	return w.schedulerID
}

func (w *DeleteWorkflow) Preview() Preview {
	return w.preview
}

func (w *DeleteWorkflow) Confirm() (domain.DeleteRequest, error) {
	if w.schedulerID == "" {
		return domain.DeleteRequest{}, errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeInvalidInput,
			"Nothing selected to delete")
	}
	return domain.DeleteRequest{SchedulerID: w.schedulerID}, nil
}
