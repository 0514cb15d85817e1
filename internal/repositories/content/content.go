package content

import (
	"context"

	"github.com/orgball2608/content-scheduler/internal/domain"
	"github.com/orgball2608/content-scheduler/pkg/errors"
)

var (
	ErrContentNotFound = errors.WrapWithCode(errors.ErrNotFound, errors.CodeNotFound, "Content not found")
	ErrAccountNotFound = errors.WrapWithCode(errors.ErrNotFound, errors.CodeNotFound, "Social media account not found")
)

//go:generate go run go.uber.org/mock/mockgen -source=content.go -destination=mocks/mock.go
type Repository interface {
	// GetContent returns one content item of the given kind
	GetContent(ctx context.Context, kind domain.ContentKind, id string) (domain.ContentItem, error)

	// GetAccount returns one social media account
	GetAccount(ctx context.Context, id string) (domain.SocialMediaAccount, error)
}
