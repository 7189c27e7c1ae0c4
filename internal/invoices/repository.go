package invoices

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freightdesk/freightdesk/internal/platform/db"
)

var (
	// ErrNotFound indicates the invoice does not exist.
	ErrNotFound = errors.New("invoice not found")
	// ErrDuplicateNumber indicates the invoice number is taken.
	ErrDuplicateNumber = errors.New("invoice number already exists")
)

// RepositoryPort defines data access for invoices and their lines. Create and
// Update persist the header and all lines in one transaction, so an invoice is
// never observable half-written.
type RepositoryPort interface {
	Create(ctx context.Context, inv Invoice) (*Invoice, error)
	Get(ctx context.Context, id int64) (*Invoice, error)
	List(ctx context.Context, req ListInvoicesRequest) ([]Invoice, int, error)
	Update(ctx context.Context, inv Invoice) (*Invoice, error)
	Delete(ctx context.Context, id int64) error
	NextNumber(ctx context.Context, partyType PartyType) (string, error)
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository builds the pgx-backed repository.
func NewRepository(pool *pgxpool.Pool) RepositoryPort {
	return &repository{pool: pool}
}

const invoiceColumns = `id, number, party_type, party_id, date, due_date, currency,
	subtotal, tax_rate, tax_amount, discount, total, paid_amount, status, notes,
	created_by, created_at, updated_at`

func (r *repository) Create(ctx context.Context, inv Invoice) (*Invoice, error) {
	var created *Invoice
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO invoices (number, party_type, party_id, date, due_date, currency,
				subtotal, tax_rate, tax_amount, discount, total, paid_amount, status,
				notes, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			RETURNING `+invoiceColumns,
			inv.Number, inv.PartyType, inv.PartyID, inv.Date, inv.DueDate, inv.Currency,
			inv.Subtotal, inv.TaxRate, inv.TaxAmount, inv.Discount, inv.Total,
			inv.PaidAmount, inv.Status, inv.Notes, inv.CreatedBy)
		stored, err := scanInvoice(row)
		if err != nil {
			return err
		}
		stored.LineItems, err = insertLines(ctx, tx, stored.ID, inv.LineItems)
		if err != nil {
			return err
		}
		created = stored
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "invoices_number_key" {
			return nil, ErrDuplicateNumber
		}
		return nil, err
	}
	return created, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*Invoice, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	inv.LineItems, err = r.loadLines(ctx, id)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *repository) List(ctx context.Context, req ListInvoicesRequest) ([]Invoice, int, error) {
	where := "WHERE 1=1"
	args := []any{}
	if req.PartyType != "" {
		args = append(args, req.PartyType)
		where += fmt.Sprintf(" AND party_type = $%d", len(args))
	}
	if req.PartyID != 0 {
		args = append(args, req.PartyID)
		where += fmt.Sprintf(" AND party_id = $%d", len(args))
	}
	if req.Status != "" {
		args = append(args, req.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 100
	}
	query := fmt.Sprintf(`SELECT %s FROM invoices %s ORDER BY date DESC, id DESC LIMIT $%d OFFSET $%d`,
		invoiceColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, req.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for i := range out {
		out[i].LineItems, err = r.loadLines(ctx, out[i].ID)
		if err != nil {
			return nil, 0, err
		}
	}
	return out, total, nil
}

func (r *repository) Update(ctx context.Context, inv Invoice) (*Invoice, error) {
	var updated *Invoice
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			UPDATE invoices
			SET date = $2, due_date = $3, currency = $4, subtotal = $5, tax_rate = $6,
				tax_amount = $7, discount = $8, total = $9, paid_amount = $10,
				status = $11, notes = $12, updated_at = NOW()
			WHERE id = $1
			RETURNING `+invoiceColumns,
			inv.ID, inv.Date, inv.DueDate, inv.Currency, inv.Subtotal, inv.TaxRate,
			inv.TaxAmount, inv.Discount, inv.Total, inv.PaidAmount, inv.Status, inv.Notes)
		stored, err := scanInvoice(row)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM invoice_lines WHERE invoice_id = $1`, inv.ID); err != nil {
			return err
		}
		stored.LineItems, err = insertLines(ctx, tx, inv.ID, inv.LineItems)
		if err != nil {
			return err
		}
		updated = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM invoice_lines WHERE invoice_id = $1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// NextNumber suggests the next document number, INV-00001 for customer
// invoices and BILL-00001 for vendor bills.
func (r *repository) NextNumber(ctx context.Context, partyType PartyType) (string, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM invoices WHERE party_type = $1`, partyType).Scan(&count)
	if err != nil {
		return "", err
	}
	prefix := "INV"
	if partyType == PartyVendor {
		prefix = "BILL"
	}
	return fmt.Sprintf("%s-%05d", prefix, count+1), nil
}

func (r *repository) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE invoices
		SET status = $1, updated_at = NOW()
		WHERE status IN ($2, $3) AND due_date < $4`,
		StatusOverdue, StatusSent, StatusPartiallyPaid, asOf)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *repository) loadLines(ctx context.Context, invoiceID int64) ([]LineItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, line_key, description, quantity, unit_price, amount
		FROM invoice_lines WHERE invoice_id = $1 ORDER BY id`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []LineItem{}
	for rows.Next() {
		var l LineItem
		if err := rows.Scan(&l.ID, &l.Key, &l.Description, &l.Quantity, &l.UnitPrice, &l.Amount); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func insertLines(ctx context.Context, tx pgx.Tx, invoiceID int64, lines []LineItem) ([]LineItem, error) {
	out := make([]LineItem, 0, len(lines))
	for _, l := range lines {
		var id int64
		err := tx.QueryRow(ctx, `
			INSERT INTO invoice_lines (invoice_id, line_key, description, quantity, unit_price, amount)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			invoiceID, l.Key, l.Description, l.Quantity, l.UnitPrice, l.Amount).Scan(&id)
		if err != nil {
			return nil, err
		}
		l.ID = id
		out = append(out, l)
	}
	return out, nil
}

func scanInvoice(row pgx.Row) (*Invoice, error) {
	var inv Invoice
	err := row.Scan(&inv.ID, &inv.Number, &inv.PartyType, &inv.PartyID, &inv.Date,
		&inv.DueDate, &inv.Currency, &inv.Subtotal, &inv.TaxRate, &inv.TaxAmount,
		&inv.Discount, &inv.Total, &inv.PaidAmount, &inv.Status, &inv.Notes,
		&inv.CreatedBy, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
