package spacetype

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, st *SpaceType) error
	GetByID(ctx context.Context, id string) (*SpaceType, error)
	List(ctx context.Context, filter Filter) ([]*SpaceType, int, error)
	Update(ctx context.Context, st *SpaceType) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, st *SpaceType) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.space_types").
		Columns("organization_id", "name", "description").
		Values(st.OrganizationID, st.Name, st.Description).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create space type query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&st.ID, &st.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrInvalidOrgID
		}
		return fmt.Errorf("create space type failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*SpaceType, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"st.id", "st.organization_id", "o.name", "st.name", "st.description", "st.created_at",
	).
		From("public.space_types st").
		Join("public.organizations o ON st.organization_id = o.id").
		Where(squirrel.Eq{"st.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get space type query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var st SpaceType
	if err := row.Scan(&st.ID, &st.OrganizationID, &st.OrganizationName, &st.Name, &st.Description, &st.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get space type failed: %w", err)
	}
	return &st, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*SpaceType, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	queryBuilder := psql.Select(
		"st.id", "st.organization_id", "o.name", "st.name", "st.description", "st.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.space_types st").
		Join("public.organizations o ON st.organization_id = o.id").
		OrderBy("st.name ASC")

	if filter.OrganizationID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"st.organization_id": filter.OrganizationID})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	queryBuilder = queryBuilder.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list space types query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list space types failed: %w", err)
	}
	defer rows.Close()

	var types []*SpaceType
	var total int

	for rows.Next() {
		var st SpaceType
		if err := rows.Scan(&st.ID, &st.OrganizationID, &st.OrganizationName, &st.Name, &st.Description, &st.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan space type failed: %w", err)
		}
		types = append(types, &st)
	}

	return types, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, st *SpaceType) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.space_types").
		Set("name", st.Name).
		Set("description", st.Description).
		Where(squirrel.Eq{"id": st.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update space type query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update space type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.space_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete space type query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete space type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
