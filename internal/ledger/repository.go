package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the entry does not exist.
var ErrNotFound = errors.New("ledger entry not found")

// RepositoryPort defines data access for ledger entries. Entries are
// append-only apart from Delete; there is no update path.
type RepositoryPort interface {
	Create(ctx context.Context, e Entry) (*Entry, error)
	Get(ctx context.Context, id int64) (*Entry, error)
	List(ctx context.Context, req ListEntriesRequest) ([]Entry, Totals, int, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository builds the pgx-backed repository.
func NewRepository(pool *pgxpool.Pool) RepositoryPort {
	return &repository{pool: pool}
}

const entryColumns = `id, date, party_type, party_id, debit, credit, type,
	description, reference, currency, created_by, created_at, updated_at`

func (r *repository) Create(ctx context.Context, e Entry) (*Entry, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO ledger_entries (date, party_type, party_id, debit, credit, type,
			description, reference, currency, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+entryColumns,
		e.Date, e.PartyType, e.PartyID, e.Debit, e.Credit, e.Type,
		e.Description, e.Reference, e.Currency, e.CreatedBy)
	return scanEntry(row)
}

func (r *repository) Get(ctx context.Context, id int64) (*Entry, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+entryColumns+` FROM ledger_entries WHERE id = $1`, id)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *repository) List(ctx context.Context, req ListEntriesRequest) ([]Entry, Totals, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if req.PartyType != "" {
		args = append(args, req.PartyType)
		where += fmt.Sprintf(` AND party_type = $%d`, len(args))
	}
	if req.PartyID > 0 {
		args = append(args, req.PartyID)
		where += fmt.Sprintf(` AND party_id = $%d`, len(args))
	}
	if req.Type != "" {
		args = append(args, req.Type)
		where += fmt.Sprintf(` AND type = $%d`, len(args))
	}
	if req.From != nil {
		args = append(args, *req.From)
		where += fmt.Sprintf(` AND date >= $%d`, len(args))
	}
	if req.To != nil {
		args = append(args, *req.To)
		where += fmt.Sprintf(` AND date <= $%d`, len(args))
	}

	var totals Totals
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0) FROM ledger_entries`+where,
		args...).Scan(&total, &totals.Debit, &totals.Credit)
	if err != nil {
		return nil, Totals{}, 0, fmt.Errorf("sum ledger entries: %w", err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit, req.Offset)
	rows, err := r.pool.Query(ctx, `SELECT `+entryColumns+` FROM ledger_entries`+where+
		fmt.Sprintf(` ORDER BY date DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, Totals{}, 0, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var items []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, Totals{}, 0, err
		}
		items = append(items, *e)
	}
	return items, totals, total, rows.Err()
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ledger_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ledger entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.Date, &e.PartyType, &e.PartyID, &e.Debit, &e.Credit, &e.Type,
		&e.Description, &e.Reference, &e.Currency, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
