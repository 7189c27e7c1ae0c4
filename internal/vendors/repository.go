package vendors

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound indicates the profile does not exist.
	ErrNotFound = errors.New("vendor not found")
	// ErrAlreadyExists indicates a profile with the same name already exists.
	ErrAlreadyExists = errors.New("vendor already exists")
)

// RepositoryPort defines data access for vendor profiles.
type RepositoryPort interface {
	Create(ctx context.Context, v Vendor) (*Vendor, error)
	Get(ctx context.Context, id int64) (*Vendor, error)
	List(ctx context.Context, req ListVendorsRequest) ([]Vendor, int, error)
	Update(ctx context.Context, v Vendor) (*Vendor, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository builds the pgx-backed repository.
func NewRepository(pool *pgxpool.Pool) RepositoryPort {
	return &repository{pool: pool}
}

const vendorColumns = `id, name, contact_person, emails, phones, address, country,
	tax_registration, services, payment_terms, notes, created_by, created_at, updated_at`

func (r *repository) Create(ctx context.Context, v Vendor) (*Vendor, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO vendors (name, contact_person, emails, phones, address, country,
			tax_registration, services, payment_terms, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+vendorColumns,
		v.Name, v.ContactPerson, v.Emails, v.Phones, v.Address, v.Country,
		v.TaxRegistration, v.Services, v.PaymentTerms, v.Notes, v.CreatedBy)
	created, err := scanVendor(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return created, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*Vendor, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id)
	v, err := scanVendor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *repository) List(ctx context.Context, req ListVendorsRequest) ([]Vendor, int, error) {
	where := ""
	args := []any{}
	if req.Search != "" {
		where = `WHERE name ILIKE $1
			OR array_to_string(emails, ' ') ILIKE $1
			OR array_to_string(phones, ' ') ILIKE $1
			OR services ILIKE $1`
		args = append(args, "%"+req.Search+"%")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM vendors `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`SELECT %s FROM vendors %s ORDER BY name LIMIT $%d OFFSET $%d`,
		vendorColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, req.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *v)
	}
	return out, total, rows.Err()
}

func (r *repository) Update(ctx context.Context, v Vendor) (*Vendor, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE vendors
		SET name = $2, contact_person = $3, emails = $4, phones = $5, address = $6,
			country = $7, tax_registration = $8, services = $9, payment_terms = $10,
			notes = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING `+vendorColumns,
		v.ID, v.Name, v.ContactPerson, v.Emails, v.Phones, v.Address, v.Country,
		v.TaxRegistration, v.Services, v.PaymentTerms, v.Notes)
	updated, err := scanVendor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanVendor(row pgx.Row) (*Vendor, error) {
	var v Vendor
	err := row.Scan(&v.ID, &v.Name, &v.ContactPerson, &v.Emails, &v.Phones, &v.Address,
		&v.Country, &v.TaxRegistration, &v.Services, &v.PaymentTerms, &v.Notes,
		&v.CreatedBy, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
