package space

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
	Create(ctx context.Context, sp *Space) error
	GetByID(ctx context.Context, id string) (*Space, error)
	List(ctx context.Context, filter Filter) ([]*Space, int, error)
	Update(ctx context.Context, sp *Space) error
	Delete(ctx context.Context, id string) error

	// ListByOrganization returns the full space inventory of an organization
	// ordered by label, without pagination. Used by the tape-chart window.
	ListByOrganization(ctx context.Context, orgID string) ([]*Space, error)
	// CountByOrganization returns the total space inventory size.
	CountByOrganization(ctx context.Context, orgID string) (int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const spaceColumns = "s.id, s.organization_id, s.space_type_id, st.name, s.label, s.zone_tag, s.status, s.created_at"

func (r *pgxRepository) Create(ctx context.Context, sp *Space) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.spaces").
		Columns("organization_id", "space_type_id", "label", "zone_tag", "status").
		Values(sp.OrganizationID, sp.SpaceTypeID, sp.Label, sp.ZoneTag, sp.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create space query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&sp.ID, &sp.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrInvalidSpaceType
		}
		return fmt.Errorf("create space failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Space, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(spaceColumns).
		From("public.spaces s").
		Join("public.space_types st ON s.space_type_id = st.id").
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get space query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var sp Space
	if err := row.Scan(
		&sp.ID, &sp.OrganizationID, &sp.SpaceTypeID, &sp.SpaceTypeName,
		&sp.Label, &sp.ZoneTag, &sp.Status, &sp.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get space failed: %w", err)
	}
	return &sp, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Space, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(spaceColumns, "count(*) OVER() as total_count").
		From("public.spaces s").
		Join("public.space_types st ON s.space_type_id = st.id").
		OrderBy("s.label ASC")

	if filter.OrganizationID != "" {
		query = query.Where(squirrel.Eq{"s.organization_id": filter.OrganizationID})
	}
	if filter.SpaceTypeID != "" {
		query = query.Where(squirrel.Eq{"s.space_type_id": filter.SpaceTypeID})
	}
	if filter.ZoneTag != "" {
		query = query.Where(squirrel.Eq{"s.zone_tag": filter.ZoneTag})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"s.status": filter.Status})
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
		return nil, 0, fmt.Errorf("build list spaces query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list spaces failed: %w", err)
	}
	defer rows.Close()

	var spaces []*Space
	var total int

	for rows.Next() {
		var sp Space
		if err := rows.Scan(
			&sp.ID, &sp.OrganizationID, &sp.SpaceTypeID, &sp.SpaceTypeName,
			&sp.Label, &sp.ZoneTag, &sp.Status, &sp.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan space failed: %w", err)
		}
		spaces = append(spaces, &sp)
	}

	return spaces, total, nil
}

func (r *pgxRepository) ListByOrganization(ctx context.Context, orgID string) ([]*Space, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(spaceColumns).
		From("public.spaces s").
		Join("public.space_types st ON s.space_type_id = st.id").
		Where(squirrel.Eq{"s.organization_id": orgID}).
		OrderBy("s.label ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list spaces by organization query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list spaces by organization failed: %w", err)
	}
	defer rows.Close()

	var spaces []*Space
	for rows.Next() {
		var sp Space
		if err := rows.Scan(
			&sp.ID, &sp.OrganizationID, &sp.SpaceTypeID, &sp.SpaceTypeName,
			&sp.Label, &sp.ZoneTag, &sp.Status, &sp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan space failed: %w", err)
		}
		spaces = append(spaces, &sp)
	}

	return spaces, nil
}

func (r *pgxRepository) CountByOrganization(ctx context.Context, orgID string) (int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select("count(*)").
		From("public.spaces").
		Where(squirrel.Eq{"organization_id": orgID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count spaces query failed: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count spaces failed: %w", err)
	}
	return count, nil
}

func (r *pgxRepository) Update(ctx context.Context, sp *Space) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.spaces").
		Set("label", sp.Label).
		Set("zone_tag", sp.ZoneTag).
		Set("status", sp.Status).
		Where(squirrel.Eq{"id": sp.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update space query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update space failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete space query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete space failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
