package content

import (
	"context"
	"encoding/json"
	stderrors "errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/content-scheduler/internal/domain"
	"github.com/orgball2608/content-scheduler/internal/repositories"
	"github.com/orgball2608/content-scheduler/pkg/logger"
)

var tables = map[domain.ContentKind]string{
	domain.ContentKindPost:  "posts",
	domain.ContentKindReel:  "reels",
	domain.ContentKindStory: "stories",
}

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("ContentRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// GetContent returns one content item of the given kind
func (p *Pgx) GetContent(ctx context.Context, kind domain.ContentKind, id string) (domain.ContentItem, error) {
	table, ok := tables[kind]
	if !ok {
		return domain.ContentItem{}, ErrContentNotFound
	}

	query, args, err := repositories.SqBuilder.
		Select("id", "company_id", "title", "body", "hashtags", "media").
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.ContentItem{}, repositories.ErrBadQuery
	}

	item := domain.ContentItem{Kind: kind}
	var media []byte
	err = p.pg.QueryRow(ctx, query, args...).
		Scan(&item.ID, &item.CompanyID, &item.Title, &item.Text, &item.Hashtags, &media)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return domain.ContentItem{}, ErrContentNotFound
		}
		return domain.ContentItem{}, err
	}

	if err := json.Unmarshal(media, &item.Media); err != nil {
		p.logger.Warn("Ignoring unreadable media list", "kind", kind, "id", id, "error", err)
		item.Media = nil
	}
	return item, nil
}

// GetAccount returns one social media account
func (p *Pgx) GetAccount(ctx context.Context, id string) (domain.SocialMediaAccount, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "platform_name", "platform_icon", "username", "profile_url", "company_id").
		From("social_media_accounts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.SocialMediaAccount{}, repositories.ErrBadQuery
	}

	var acc domain.SocialMediaAccount
	err = p.pg.QueryRow(ctx, query, args...).
		Scan(&acc.ID, &acc.Platform.Name, &acc.Platform.Icon, &acc.Username, &acc.ProfileURL, &acc.CompanyID)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return domain.SocialMediaAccount{}, ErrAccountNotFound
		}
		return domain.SocialMediaAccount{}, err
	}
	return acc, nil
}
