package scheduler

import (
	"context"

	"github.com/orgball2608/content-scheduler/internal/domain"
	"github.com/orgball2608/content-scheduler/pkg/errors"
)

var (
	ErrNotFound       = errors.WrapWithCode(errors.ErrNotFound, errors.CodeNotFound, "Scheduled item not found")
	ErrUnknownContent = errors.WrapWithCode(errors.ErrNotFound, errors.CodeNotFound, "Content not found")
	ErrUnknownAccount = errors.WrapWithCode(errors.ErrNotFound, errors.CodeNotFound, "Social media account not found")
)

//go:generate go run go.uber.org/mock/mockgen -source=scheduler.go -destination=mocks/mock.go
type Repository interface {
	// List returns every scheduled item of the company
	List(ctx context.Context, companyID string) ([]domain.ScheduledItem, error)

	// Get returns one scheduled item by scheduler id
	Get(ctx context.Context, id string) (domain.ScheduledItem, error)

	// Create persists a new scheduled item and returns it as stored
	Create(ctx context.Context, req domain.SchedulingRequest) (domain.ScheduledItem, error)

	// Update moves an existing item to a new slot
	Update(ctx context.Context, req domain.UpdateRequest) (domain.ScheduledItem, error)

	// Delete removes a scheduled item
	Delete(ctx context.Context, req domain.DeleteRequest) error
}
