package expenses

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the expense does not exist.
var ErrNotFound = errors.New("expense not found")

// RepositoryPort defines data access for expenses.
type RepositoryPort interface {
	Create(ctx context.Context, e Expense) (*Expense, error)
	Get(ctx context.Context, id int64) (*Expense, error)
	List(ctx context.Context, req ListExpensesRequest) ([]Expense, int, error)
	Update(ctx context.Context, e Expense) (*Expense, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository builds the pgx-backed repository.
func NewRepository(pool *pgxpool.Pool) RepositoryPort {
	return &repository{pool: pool}
}

const expenseColumns = `id, date, category, description, amount, currency, status,
	vendor_id, paid_at, created_by, created_at, updated_at`

func (r *repository) Create(ctx context.Context, e Expense) (*Expense, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO expenses (date, category, description, amount, currency, status, vendor_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+expenseColumns,
		e.Date, e.Category, e.Description, e.Amount, e.Currency, e.Status, e.VendorID, e.CreatedBy)
	return scanExpense(row)
}

func (r *repository) Get(ctx context.Context, id int64) (*Expense, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id)
	e, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *repository) List(ctx context.Context, req ListExpensesRequest) ([]Expense, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if req.Category != "" {
		args = append(args, req.Category)
		where += fmt.Sprintf(` AND category = $%d`, len(args))
	}
	if req.Status != "" {
		args = append(args, req.Status)
		where += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if req.From != nil {
		args = append(args, *req.From)
		where += fmt.Sprintf(` AND date >= $%d`, len(args))
	}
	if req.To != nil {
		args = append(args, *req.To)
		where += fmt.Sprintf(` AND date <= $%d`, len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM expenses`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count expenses: %w", err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit, req.Offset)
	rows, err := r.pool.Query(ctx, `SELECT `+expenseColumns+` FROM expenses`+where+
		fmt.Sprintf(` ORDER BY date DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var items []Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *e)
	}
	return items, total, rows.Err()
}

func (r *repository) Update(ctx context.Context, e Expense) (*Expense, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE expenses
		SET date = $2, category = $3, description = $4, amount = $5, currency = $6,
			status = $7, vendor_id = $8, paid_at = $9, updated_at = now()
		WHERE id = $1
		RETURNING `+expenseColumns,
		e.ID, e.Date, e.Category, e.Description, e.Amount, e.Currency, e.Status, e.VendorID, e.PaidAt)
	out, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanExpense(row pgx.Row) (*Expense, error) {
	var e Expense
	err := row.Scan(&e.ID, &e.Date, &e.Category, &e.Description, &e.Amount, &e.Currency,
		&e.Status, &e.VendorID, &e.PaidAt, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
