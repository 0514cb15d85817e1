package scheduler

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/content-scheduler/internal/domain"
	"github.com/orgball2608/content-scheduler/internal/repositories"
	"github.com/orgball2608/content-scheduler/pkg/logger"
)

// contentTables maps a content kind to the table owned by the content subsystem.
var contentTables = map[domain.ContentKind]string{
	domain.ContentKindPost:  "posts",
	domain.ContentKindReel:  "reels",
	domain.ContentKindStory: "stories",
}

var itemColumns = []string{
	"s.id::text",
	"s.company_id",
	"s.content_kind",
	"s.content_id",
	"to_char(s.scheduled_date, 'YYYY-MM-DD')",
	"to_char(s.scheduled_time, 'HH24:MI:SS')",
	"s.active",
	"COALESCE(p.title, r.title, st.title, '')",
	"COALESCE(p.body, r.body, st.body, '')",
	"COALESCE(p.hashtags, r.hashtags, st.hashtags, '')",
	"COALESCE(p.media, r.media, st.media, '[]'::jsonb)",
}

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("SchedulerRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// List returns every scheduled item of the company ordered by slot
func (p *Pgx) List(ctx context.Context, companyID string) ([]domain.ScheduledItem, error) {
	return p.selectItems(ctx, sq.Eq{"s.company_id": companyID})
}

// Get returns one scheduled item by scheduler id
func (p *Pgx) Get(ctx context.Context, id string) (domain.ScheduledItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ScheduledItem{}, ErrNotFound
	}

	items, err := p.selectItems(ctx, sq.Eq{"s.id": id})
	if err != nil {
		return domain.ScheduledItem{}, err
	}
	if len(items) == 0 {
		return domain.ScheduledItem{}, ErrNotFound
	}
	return items[0], nil
}

// Create persists a new scheduled item with its account links in one transaction
func (p *Pgx) Create(ctx context.Context, req domain.SchedulingRequest) (domain.ScheduledItem, error) {
	table, ok := contentTables[req.ContentKind]
	if !ok {
		return domain.ScheduledItem{}, ErrUnknownContent
	}
	if len(req.SocialMediaAccountIDs) == 0 {
		return domain.ScheduledItem{}, ErrUnknownAccount
	}

	id := uuid.New()
	now := time.Now()

	err := pgx.BeginFunc(ctx, p.pg, func(tx pgx.Tx) error {
		query, args, err := repositories.SqBuilder.
			Select("1").
			From(table).
			Where(sq.Eq{"id": req.ContentID, "company_id": req.CompanyID}).
			ToSql()
		if err != nil {
			return repositories.ErrBadQuery
		}
		var one int
		if err := tx.QueryRow(ctx, query, args...).Scan(&one); err != nil {
			if stderrors.Is(err, pgx.ErrNoRows) {
				return ErrUnknownContent
			}
			return err
		}

		query, args, err = repositories.SqBuilder.
			Select("count(*)").
			From("social_media_accounts").
			Where(sq.Eq{"id": req.SocialMediaAccountIDs, "company_id": req.CompanyID}).
			ToSql()
		if err != nil {
			return repositories.ErrBadQuery
		}
		var owned int
		if err := tx.QueryRow(ctx, query, args...).Scan(&owned); err != nil {
			return err
		}
		if owned != len(req.SocialMediaAccountIDs) {
			return ErrUnknownAccount
		}

		query, args, err = repositories.SqBuilder.
			Insert("schedulers").
			Columns("id", "company_id", "content_kind", "content_id", "scheduled_date", "scheduled_time", "active", "created_at", "updated_at").
			Values(id, req.CompanyID, string(req.ContentKind), req.ContentID, req.ScheduledDate, req.ScheduledTime, req.Active, now, now).
			ToSql()
		if err != nil {
			return repositories.ErrBadQuery
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}

		insert := repositories.SqBuilder.
			Insert("scheduler_accounts").
			Columns("scheduler_id", "account_id")
		for _, accountID := range req.SocialMediaAccountIDs {
			insert = insert.Values(id, accountID)
		}
		query, args, err = insert.ToSql()
		if err != nil {
			return repositories.ErrBadQuery
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			var pgErr *pgconn.PgError
			if stderrors.As(err, &pgErr) && pgErr.Code == repositories.PgForeignKeyViolation {
				return ErrUnknownAccount
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.ScheduledItem{}, err
	}

	p.logger.Info("Scheduled item created", "id", id.String(), "kind", req.ContentKind, "date", req.ScheduledDate, "time", req.ScheduledTime)
	return p.Get(ctx, id.String())
}

// Update moves an existing item to a new slot
func (p *Pgx) Update(ctx context.Context, req domain.UpdateRequest) (domain.ScheduledItem, error) {
	if _, err := uuid.Parse(req.SchedulerID); err != nil {
		return domain.ScheduledItem{}, ErrNotFound
	}

	query, args, err := repositories.SqBuilder.
		Update("schedulers").
		Set("scheduled_date", req.ScheduledDate).
		Set("scheduled_time", req.ScheduledTime).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": req.SchedulerID}).
		ToSql()
	if err != nil {
		return domain.ScheduledItem{}, repositories.ErrBadQuery
	}

	tag, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return domain.ScheduledItem{}, err
	}
	if tag.RowsAffected() == 0 {
		return domain.ScheduledItem{}, ErrNotFound
	}

	p.logger.Info("Scheduled item moved", "id", req.SchedulerID, "date", req.ScheduledDate, "time", req.ScheduledTime)
	return p.Get(ctx, req.SchedulerID)
}

// Delete removes a scheduled item; account links go with it
func (p *Pgx) Delete(ctx context.Context, req domain.DeleteRequest) error {
	if _, err := uuid.Parse(req.SchedulerID); err != nil {
		return ErrNotFound
	}

	query, args, err := repositories.SqBuilder.
		Delete("schedulers").
		Where(sq.Eq{"id": req.SchedulerID}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	tag, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	p.logger.Info("Scheduled item deleted", "id", req.SchedulerID)
	return nil
}

func (p *Pgx) selectItems(ctx context.Context, where sq.Sqlizer) ([]domain.ScheduledItem, error) {
	query, args, err := repositories.SqBuilder.
		Select(itemColumns...).
		From("schedulers s").
		LeftJoin("posts p ON s.content_kind = 'post' AND p.id = s.content_id").
		LeftJoin("reels r ON s.content_kind = 'reel' AND r.id = s.content_id").
		LeftJoin("stories st ON s.content_kind = 'story' AND st.id = s.content_id").
		Where(where).
		OrderBy("s.scheduled_date", "s.scheduled_time", "s.id").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		items []domain.ScheduledItem
		ids   []string
	)
	for rows.Next() {
		var (
			item  domain.ScheduledItem
			kind  string
			media []byte
		)
		if err := rows.Scan(
			&item.ID, &item.CompanyID, &kind, &item.Content.ID,
			&item.ScheduledDate, &item.ScheduledTime, &item.Active,
			&item.Content.Title, &item.Content.Text, &item.Content.Hashtags, &media,
		); err != nil {
			return nil, err
		}

		item.Content.Kind = domain.ContentKind(kind)
		item.Content.CompanyID = item.CompanyID
		if err := json.Unmarshal(media, &item.Content.Media); err != nil {
			p.logger.Warn("Ignoring unreadable media list", "id", item.ID, "error", err)
			item.Content.Media = nil
		}

		items = append(items, item)
		ids = append(ids, item.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	accounts, err := p.accountsOf(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Accounts = accounts[items[i].ID]
	}
	return items, nil
}

func (p *Pgx) accountsOf(ctx context.Context, schedulerIDs []string) (map[string][]domain.SocialMediaAccount, error) {
	query, args, err := repositories.SqBuilder.
		Select("sa.scheduler_id::text", "a.id", "a.platform_name", "a.platform_icon", "a.username", "a.profile_url", "a.company_id").
		From("scheduler_accounts sa").
		Join("social_media_accounts a ON a.id = sa.account_id").
		Where(sq.Eq{"sa.scheduler_id": schedulerIDs}).
		OrderBy("a.username").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make(map[string][]domain.SocialMediaAccount, len(schedulerIDs))
	for rows.Next() {
		var (
			schedulerID string
			acc         domain.SocialMediaAccount
		)
		if err := rows.Scan(&schedulerID, &acc.ID, &acc.Platform.Name, &acc.Platform.Icon, &acc.Username, &acc.ProfileURL, &acc.CompanyID); err != nil {
			return nil, err
		}
		accounts[schedulerID] = append(accounts[schedulerID], acc)
	}
	return accounts, rows.Err()
}
