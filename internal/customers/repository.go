package customers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound indicates the profile does not exist.
	ErrNotFound = errors.New("customer not found")
	// ErrAlreadyExists indicates a profile with the same name already exists.
	ErrAlreadyExists = errors.New("customer already exists")
)

// RepositoryPort defines data access for customer profiles.
type RepositoryPort interface {
	Create(ctx context.Context, c Customer) (*Customer, error)
	Get(ctx context.Context, id int64) (*Customer, error)
	List(ctx context.Context, req ListCustomersRequest) ([]Customer, int, error)
	Update(ctx context.Context, c Customer) (*Customer, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository builds the pgx-backed repository.
func NewRepository(pool *pgxpool.Pool) RepositoryPort {
	return &repository{pool: pool}
}

const customerColumns = `id, name, contact_person, emails, phones, address, country,
	tax_registration, commodities, consignees, notes, created_by, created_at, updated_at`

func (r *repository) Create(ctx context.Context, c Customer) (*Customer, error) {
	consignees, err := json.Marshal(c.Consignees)
	if err != nil {
		return nil, fmt.Errorf("customers: marshal consignees: %w", err)
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO customers (name, contact_person, emails, phones, address, country,
			tax_registration, commodities, consignees, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+customerColumns,
		c.Name, c.ContactPerson, c.Emails, c.Phones, c.Address, c.Country,
		c.TaxRegistration, c.Commodities, consignees, c.Notes, c.CreatedBy)
	created, err := scanCustomer(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return created, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*Customer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *repository) List(ctx context.Context, req ListCustomersRequest) ([]Customer, int, error) {
	where := ""
	args := []any{}
	if req.Search != "" {
		where = `WHERE name ILIKE $1
			OR array_to_string(emails, ' ') ILIKE $1
			OR array_to_string(phones, ' ') ILIKE $1
			OR tax_registration ILIKE $1`
		args = append(args, "%"+req.Search+"%")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`SELECT %s FROM customers %s ORDER BY name LIMIT $%d OFFSET $%d`,
		customerColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, req.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *c)
	}
	return out, total, rows.Err()
}

func (r *repository) Update(ctx context.Context, c Customer) (*Customer, error) {
	consignees, err := json.Marshal(c.Consignees)
	if err != nil {
		return nil, fmt.Errorf("customers: marshal consignees: %w", err)
	}
	row := r.pool.QueryRow(ctx, `
		UPDATE customers
		SET name = $2, contact_person = $3, emails = $4, phones = $5, address = $6,
			country = $7, tax_registration = $8, commodities = $9, consignees = $10,
			notes = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING `+customerColumns,
		c.ID, c.Name, c.ContactPerson, c.Emails, c.Phones, c.Address, c.Country,
		c.TaxRegistration, c.Commodities, consignees, c.Notes)
	updated, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanCustomer(row pgx.Row) (*Customer, error) {
	var c Customer
	var consignees []byte
	err := row.Scan(&c.ID, &c.Name, &c.ContactPerson, &c.Emails, &c.Phones, &c.Address,
		&c.Country, &c.TaxRegistration, &c.Commodities, &consignees, &c.Notes,
		&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(consignees) > 0 {
		if err := json.Unmarshal(consignees, &c.Consignees); err != nil {
			return nil, fmt.Errorf("customers: unmarshal consignees: %w", err)
		}
	}
	if c.Consignees == nil {
		c.Consignees = []Consignee{}
	}
	return &c, nil
}
