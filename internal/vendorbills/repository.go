package vendorbills

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound indicates the bill does not exist.
	ErrNotFound = errors.New("vendor bill not found")
	// ErrDuplicateNumber indicates the bill number is already recorded for
	// the vendor.
	ErrDuplicateNumber = errors.New("bill number already exists for vendor")
)

// RepositoryPort defines data access for vendor bills.
type RepositoryPort interface {
	Create(ctx context.Context, b VendorBill) (*VendorBill, error)
	Get(ctx context.Context, id int64) (*VendorBill, error)
	List(ctx context.Context, req ListVendorBillsRequest) ([]VendorBill, int, error)
	Update(ctx context.Context, b VendorBill) (*VendorBill, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository builds the pgx-backed repository.
func NewRepository(pool *pgxpool.Pool) RepositoryPort {
	return &repository{pool: pool}
}

const billColumns = `id, vendor_id, bill_number, date, due_date, category, description,
	amount, currency, status, paid_at, created_by, created_at, updated_at`

func (r *repository) Create(ctx context.Context, b VendorBill) (*VendorBill, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO vendor_bills (vendor_id, bill_number, date, due_date, category,
			description, amount, currency, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+billColumns,
		b.VendorID, b.BillNumber, b.Date, b.DueDate, b.Category,
		b.Description, b.Amount, b.Currency, b.Status, b.CreatedBy)
	out, err := scanBill(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateNumber
		}
		return nil, err
	}
	return out, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*VendorBill, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+billColumns+` FROM vendor_bills WHERE id = $1`, id)
	b, err := scanBill(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *repository) List(ctx context.Context, req ListVendorBillsRequest) ([]VendorBill, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if req.VendorID > 0 {
		args = append(args, req.VendorID)
		where += fmt.Sprintf(` AND vendor_id = $%d`, len(args))
	}
	if req.Status != "" {
		args = append(args, req.Status)
		where += fmt.Sprintf(` AND status = $%d`, len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM vendor_bills`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vendor bills: %w", err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit, req.Offset)
	rows, err := r.pool.Query(ctx, `SELECT `+billColumns+` FROM vendor_bills`+where+
		fmt.Sprintf(` ORDER BY due_date ASC, id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list vendor bills: %w", err)
	}
	defer rows.Close()

	var items []VendorBill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *b)
	}
	return items, total, rows.Err()
}

func (r *repository) Update(ctx context.Context, b VendorBill) (*VendorBill, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE vendor_bills
		SET vendor_id = $2, bill_number = $3, date = $4, due_date = $5, category = $6,
			description = $7, amount = $8, currency = $9, status = $10, paid_at = $11,
			updated_at = now()
		WHERE id = $1
		RETURNING `+billColumns,
		b.ID, b.VendorID, b.BillNumber, b.Date, b.DueDate, b.Category,
		b.Description, b.Amount, b.Currency, b.Status, b.PaidAt)
	out, err := scanBill(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM vendor_bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendor bill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBill(row pgx.Row) (*VendorBill, error) {
	var b VendorBill
	err := row.Scan(&b.ID, &b.VendorID, &b.BillNumber, &b.Date, &b.DueDate, &b.Category,
		&b.Description, &b.Amount, &b.Currency, &b.Status, &b.PaidAt, &b.CreatedBy,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
