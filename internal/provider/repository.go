package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tutorhive/tutor-booking-backend/internal/schedule"
)

type Repository interface {
	Create(ctx context.Context, p *Provider) error
	GetByID(ctx context.Context, id string) (*Provider, error)
	List(ctx context.Context, filter Filter) ([]*Provider, int, error)
	ListActive(ctx context.Context) ([]*Provider, error)
	Update(ctx context.Context, p *Provider) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, p *Provider) error {
	availability, err := p.Availability.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode availability failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.providers").
		Columns("display_name", "gender", "age_group", "status", "timezone", "availability", "photo_file_id").
		Values(p.DisplayName, p.Gender, p.AgeGroup, p.Status, p.Timezone, availability, p.PhotoFileID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create provider query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Provider, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "display_name", "gender", "age_group", "status",
		"timezone", "availability", "photo_file_id", "created_at", "updated_at",
	).
		From("public.providers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get provider query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	p, err := scanProvider(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get provider failed: %w", err)
	}
	return p, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Provider, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "display_name", "gender", "age_group", "status",
		"timezone", "availability", "photo_file_id", "created_at", "updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.providers")

	if filter.Gender != "" {
		query = query.Where(squirrel.Eq{"gender": filter.Gender})
	}
	if filter.AgeGroup != "" {
		query = query.Where(squirrel.Eq{"age_group": filter.AgeGroup})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}

	// Sorting
	orderBy := "display_name"
	if filter.SortBy != "" {
		orderBy = filter.SortBy
	}

	orderDir := "ASC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}

	query = query.OrderBy(orderBy + " " + orderDir)

	// Pagination
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
		return nil, 0, fmt.Errorf("build list providers query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list providers failed: %w", err)
	}
	defer rows.Close()

	var providers []*Provider
	var total int

	for rows.Next() {
		p, err := scanProviderWithTotal(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan provider failed: %w", err)
		}
		providers = append(providers, p)
	}

	return providers, total, nil
}

func (r *pgxRepository) ListActive(ctx context.Context) ([]*Provider, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(
		"id", "display_name", "gender", "age_group", "status",
		"timezone", "availability", "photo_file_id", "created_at", "updated_at",
	).
		From("public.providers").
		Where(squirrel.Eq{"status": StatusActive}).
		OrderBy("display_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list active providers query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list active providers failed: %w", err)
	}
	defer rows.Close()

	var providers []*Provider
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("scan provider failed: %w", err)
		}
		providers = append(providers, p)
	}

	return providers, nil
}

func (r *pgxRepository) Update(ctx context.Context, p *Provider) error {
	availability, err := p.Availability.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode availability failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.providers").
		Set("display_name", p.DisplayName).
		Set("gender", p.Gender).
		Set("age_group", p.AgeGroup).
		Set("status", p.Status).
		Set("timezone", p.Timezone).
		Set("availability", availability).
		Set("photo_file_id", p.PhotoFileID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update provider query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update provider failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.providers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete provider query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete provider failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProvider reads one provider row. The availability column is decoded
// through the tolerant parser so one provider's corrupt stored JSON drops
// the bad entries instead of failing the whole query.
func scanProvider(row rowScanner) (*Provider, error) {
	var p Provider
	var availability []byte

	if err := row.Scan(
		&p.ID, &p.DisplayName, &p.Gender, &p.AgeGroup, &p.Status,
		&p.Timezone, &availability, &p.PhotoFileID, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Availability = schedule.ParseAvailabilityJSON(availability)
	return &p, nil
}

func scanProviderWithTotal(row rowScanner, total *int) (*Provider, error) {
	var p Provider
	var availability []byte

	if err := row.Scan(
		&p.ID, &p.DisplayName, &p.Gender, &p.AgeGroup, &p.Status,
		&p.Timezone, &availability, &p.PhotoFileID, &p.CreatedAt, &p.UpdatedAt,
		total,
	); err != nil {
		return nil, err
	}

	p.Availability = schedule.ParseAvailabilityJSON(availability)
	return &p, nil
}
