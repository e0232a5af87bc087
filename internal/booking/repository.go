package booking

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
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id string) error

	// ListWindow returns flattened, non-cancelled occurrences across an
	// organization's spaces whose interval touches the inclusive window
	// [from, to]. Boundary-adjacent bookings are over-included on purpose:
	// the tape chart displays them, and the strict conflict check makes
	// the final accept/reject decision.
	ListWindow(ctx context.Context, orgID string, from, to time.Time) ([]Occurrence, error)
	// ListForSpace returns flattened, non-cancelled occurrences on one
	// space touching the inclusive window [from, to].
	ListForSpace(ctx context.Context, spaceID string, from, to time.Time) ([]Occurrence, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking failed: %w", err)
	}
	defer tx.Rollback(ctx)

	var directID any
	if b.Spaces.direct != "" {
		directID = b.Spaces.direct
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("code", "occupant_name", "space_id", "check_in", "check_out", "status").
		Values(b.Code, b.OccupantName, directID, b.CheckIn, b.CheckOut, b.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	err = tx.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrSpaceNotFound
		}
		return fmt.Errorf("create booking failed: %w", err)
	}

	if err := r.replaceJoinRows(ctx, tx, b); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// replaceJoinRows synchronizes the booking_spaces join table with the
// booking's space reference. Direct references keep the join table empty.
func (r *pgxRepository) replaceJoinRows(ctx context.Context, tx pgx.Tx, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	del, delArgs, err := psql.Delete("public.booking_spaces").
		Where(squirrel.Eq{"booking_id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build clear booking spaces query failed: %w", err)
	}
	if _, err := tx.Exec(ctx, del, delArgs...); err != nil {
		return fmt.Errorf("clear booking spaces failed: %w", err)
	}

	if b.Spaces.direct != "" {
		return nil
	}

	ins := psql.Insert("public.booking_spaces").Columns("booking_id", "space_id")
	for _, spaceID := range b.Spaces.joined {
		ins = ins.Values(b.ID, spaceID)
	}
	sql, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("build insert booking spaces query failed: %w", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrSpaceNotFound
		}
		return fmt.Errorf("insert booking spaces failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "code", "occupant_name", "space_id",
		"check_in", "check_out", "status", "created_at", "updated_at",
	).
		From("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var b Booking
	var directID *string
	if err := row.Scan(
		&b.ID, &b.Code, &b.OccupantName, &directID,
		&b.CheckIn, &b.CheckOut, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}

	if err := r.resolveSpaceRef(ctx, &b, directID); err != nil {
		return nil, err
	}
	return &b, nil
}

// resolveSpaceRef materializes the space reference union: the direct
// space_id column wins; otherwise the join table must supply at least
// one space.
func (r *pgxRepository) resolveSpaceRef(ctx context.Context, b *Booking, directID *string) error {
	if directID != nil {
		b.Spaces = DirectSpaceRef(*directID)
		return nil
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select("space_id").
		From("public.booking_spaces").
		Where(squirrel.Eq{"booking_id": b.ID}).
		OrderBy("space_id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("build booking spaces query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("query booking spaces failed: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var spaceID string
		if err := rows.Scan(&spaceID); err != nil {
			return fmt.Errorf("scan booking space failed: %w", err)
		}
		ids = append(ids, spaceID)
	}

	ref, err := JoinedSpaceRef(ids)
	if err != nil {
		return fmt.Errorf("booking %s references no space: %w", b.ID, err)
	}
	b.Spaces = ref
	return nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.code", "b.occupant_name", "b.space_id",
		"b.check_in", "b.check_out", "b.status", "b.created_at", "b.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.bookings b")

	if filter.SpaceID != "" {
		query = query.Where(squirrel.Or{
			squirrel.Eq{"b.space_id": filter.SpaceID},
			squirrel.Expr("EXISTS (SELECT 1 FROM public.booking_spaces bs WHERE bs.booking_id = b.id AND bs.space_id = ?)", filter.SpaceID),
		})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	// Interval intersection with the requested window
	if filter.From != nil {
		query = query.Where(squirrel.GtOrEq{"b.check_out": filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.LtOrEq{"b.check_in": filter.To})
	}

	orderBy := "b.check_in"
	if filter.SortBy != "" {
		orderBy = "b." + filter.SortBy
	}
	query = query.OrderBy(orderBy + " ASC")

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
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var directs []*string
	var total int

	for rows.Next() {
		var b Booking
		var directID *string
		if err := rows.Scan(
			&b.ID, &b.Code, &b.OccupantName, &directID,
			&b.CheckIn, &b.CheckOut, &b.Status, &b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
		directs = append(directs, directID)
	}
	rows.Close()

	for i, b := range bookings {
		if err := r.resolveSpaceRef(ctx, b, directs[i]); err != nil {
			return nil, 0, err
		}
	}

	return bookings, total, nil
}

// occurrenceQuery builds the flattening query: one row per (booking, space)
// pair, the join table only contributing when the direct column is NULL.
func occurrenceQuery() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"b.id", "b.code", "b.occupant_name",
		"COALESCE(b.space_id, bs.space_id) AS space_id",
		"b.check_in", "b.check_out", "b.status",
	).
		From("public.bookings b").
		LeftJoin("public.booking_spaces bs ON bs.booking_id = b.id AND b.space_id IS NULL").
		Where(squirrel.NotEq{"b.status": StatusCancelled})
}

func (r *pgxRepository) ListWindow(ctx context.Context, orgID string, from, to time.Time) ([]Occurrence, error) {
	query := occurrenceQuery().
		Join("public.spaces s ON s.id = COALESCE(b.space_id, bs.space_id)").
		Where(squirrel.Eq{"s.organization_id": orgID}).
		Where(squirrel.LtOrEq{"b.check_in": to}).
		Where(squirrel.GtOrEq{"b.check_out": from})

	return r.queryOccurrences(ctx, query)
}

func (r *pgxRepository) ListForSpace(ctx context.Context, spaceID string, from, to time.Time) ([]Occurrence, error) {
	query := occurrenceQuery().
		Where(squirrel.Expr("COALESCE(b.space_id, bs.space_id) = ?", spaceID)).
		Where(squirrel.LtOrEq{"b.check_in": to}).
		Where(squirrel.GtOrEq{"b.check_out": from})

	return r.queryOccurrences(ctx, query)
}

func (r *pgxRepository) queryOccurrences(ctx context.Context, query squirrel.SelectBuilder) ([]Occurrence, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build occurrences query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query occurrences failed: %w", err)
	}
	defer rows.Close()

	var occs []Occurrence
	for rows.Next() {
		var o Occurrence
		if err := rows.Scan(
			&o.BookingID, &o.Code, &o.OccupantName, &o.SpaceID,
			&o.Start, &o.End, &o.Status,
		); err != nil {
			return nil, fmt.Errorf("scan occurrence failed: %w", err)
		}
		occs = append(occs, o)
	}

	return occs, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update booking failed: %w", err)
	}
	defer tx.Rollback(ctx)

	var directID any
	if b.Spaces.direct != "" {
		directID = b.Spaces.direct
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("occupant_name", b.OccupantName).
		Set("space_id", directID).
		Set("check_in", b.CheckIn).
		Set("check_out", b.CheckOut).
		Set("status", b.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := r.replaceJoinRows(ctx, tx, b); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
