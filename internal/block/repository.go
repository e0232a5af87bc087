package block

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Block) error
	GetByID(ctx context.Context, id string) (*Block, error)
	List(ctx context.Context, filter Filter) ([]*Block, int, error)
	Delete(ctx context.Context, id string) error

	// ListForSpace returns blocks on a space whose range touches the
	// inclusive window [from, to]. Boundary-adjacent blocks are included;
	// the strict conflict check makes the final decision.
	ListForSpace(ctx context.Context, spaceID string, from, to time.Time) ([]*Block, error)
	// ListWindow returns blocks across an organization's spaces touching
	// the inclusive window [from, to].
	ListWindow(ctx context.Context, orgID string, from, to time.Time) ([]*Block, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Block) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.blocks").
		Columns("space_id", "start_date", "end_date", "category", "reason").
		Values(b.SpaceID, b.StartDate, b.EndDate, b.Category, b.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create block query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrInvalidSpace
		}
		return fmt.Errorf("create block failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Block, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.space_id", "s.label", "b.start_date", "b.end_date",
		"b.category", "b.reason", "b.created_at",
	).
		From("public.blocks b").
		Join("public.spaces s ON b.space_id = s.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get block query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var b Block
	if err := row.Scan(
		&b.ID, &b.SpaceID, &b.SpaceLabel, &b.StartDate, &b.EndDate,
		&b.Category, &b.Reason, &b.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get block failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Block, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.space_id", "s.label", "b.start_date", "b.end_date",
		"b.category", "b.reason", "b.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.blocks b").
		Join("public.spaces s ON b.space_id = s.id").
		OrderBy("b.start_date ASC")

	if filter.SpaceID != "" {
		query = query.Where(squirrel.Eq{"b.space_id": filter.SpaceID})
	}
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"b.category": filter.Category})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list blocks query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list blocks failed: %w", err)
	}
	defer rows.Close()

	var blocks []*Block
	var total int

	for rows.Next() {
		var b Block
		if err := rows.Scan(
			&b.ID, &b.SpaceID, &b.SpaceLabel, &b.StartDate, &b.EndDate,
			&b.Category, &b.Reason, &b.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan block failed: %w", err)
		}
		blocks = append(blocks, &b)
	}

	return blocks, total, nil
}

func (r *pgxRepository) ListForSpace(ctx context.Context, spaceID string, from, to time.Time) ([]*Block, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.space_id", "s.label", "b.start_date", "b.end_date",
		"b.category", "b.reason", "b.created_at",
	).
		From("public.blocks b").
		Join("public.spaces s ON b.space_id = s.id").
		Where(squirrel.Eq{"b.space_id": spaceID}).
		Where(squirrel.LtOrEq{"b.start_date": to}).
		Where(squirrel.GtOrEq{"b.end_date": from})

	return r.queryBlocks(ctx, query)
}

func (r *pgxRepository) ListWindow(ctx context.Context, orgID string, from, to time.Time) ([]*Block, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.space_id", "s.label", "b.start_date", "b.end_date",
		"b.category", "b.reason", "b.created_at",
	).
		From("public.blocks b").
		Join("public.spaces s ON b.space_id = s.id").
		Where(squirrel.Eq{"s.organization_id": orgID}).
		Where(squirrel.LtOrEq{"b.start_date": to}).
		Where(squirrel.GtOrEq{"b.end_date": from})

	return r.queryBlocks(ctx, query)
}

func (r *pgxRepository) queryBlocks(ctx context.Context, query squirrel.SelectBuilder) ([]*Block, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build blocks query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query blocks failed: %w", err)
	}
	defer rows.Close()

	var blocks []*Block
	for rows.Next() {
		var b Block
		if err := rows.Scan(
			&b.ID, &b.SpaceID, &b.SpaceLabel, &b.StartDate, &b.EndDate,
			&b.Category, &b.Reason, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan block failed: %w", err)
		}
		blocks = append(blocks, &b)
	}

	return blocks, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete block query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete block failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
