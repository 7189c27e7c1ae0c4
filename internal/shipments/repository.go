package shipments

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the shipment does not exist.
var ErrNotFound = errors.New("shipment not found")

// RepositoryPort defines data access for shipments.
type RepositoryPort interface {
	Create(ctx context.Context, s Shipment) (*Shipment, error)
	Get(ctx context.Context, id int64) (*Shipment, error)
	List(ctx context.Context, req ListShipmentsRequest) ([]Shipment, int, error)
	Update(ctx context.Context, s Shipment) (*Shipment, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository builds the pgx-backed repository.
func NewRepository(pool *pgxpool.Pool) RepositoryPort {
	return &repository{pool: pool}
}

const shipmentColumns = `id, direction, job_number, booking_number, bl_number, customer_id,
	shipper, consignee, vessel, voyage, port_of_loading, port_of_discharge, etd, eta,
	mode, commodity, packages, gross_weight, volume, container_number, container_type,
	freight, insurance, customs_duty, handling, documentation, other_charges,
	total_charges, invoice_value, currency, invoice_id, notes, created_by, created_at, updated_at`

func (r *repository) Create(ctx context.Context, s Shipment) (*Shipment, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO shipments (direction, job_number, booking_number, bl_number, customer_id,
			shipper, consignee, vessel, voyage, port_of_loading, port_of_discharge, etd, eta,
			mode, commodity, packages, gross_weight, volume, container_number, container_type,
			freight, insurance, customs_duty, handling, documentation, other_charges,
			total_charges, invoice_value, currency, invoice_id, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32)
		RETURNING `+shipmentColumns,
		s.Direction, s.JobNumber, s.BookingNumber, s.BLNumber, s.CustomerID,
		s.Shipper, s.Consignee, s.Vessel, s.Voyage, s.PortOfLoading, s.PortOfDischarge,
		s.ETD, s.ETA, s.Mode, s.Commodity, s.Packages, s.GrossWeight, s.Volume,
		s.ContainerNumber, s.ContainerType, s.Charges.Freight, s.Charges.Insurance,
		s.Charges.CustomsDuty, s.Charges.Handling, s.Charges.Documentation,
		s.Charges.Other, s.TotalCharges, s.InvoiceValue, s.Currency, s.InvoiceID,
		s.Notes, s.CreatedBy)
	return scanShipment(row)
}

func (r *repository) Get(ctx context.Context, id int64) (*Shipment, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE id = $1`, id)
	s, err := scanShipment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *repository) List(ctx context.Context, req ListShipmentsRequest) ([]Shipment, int, error) {
	where := "WHERE 1=1"
	args := []any{}
	if req.Direction != "" {
		args = append(args, req.Direction)
		where += fmt.Sprintf(" AND direction = $%d", len(args))
	}
	if req.CustomerID != 0 {
		args = append(args, req.CustomerID)
		where += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if req.Mode != "" {
		args = append(args, req.Mode)
		where += fmt.Sprintf(" AND mode = $%d", len(args))
	}
	if req.Search != "" {
		args = append(args, "%"+req.Search+"%")
		where += fmt.Sprintf(` AND (job_number ILIKE $%[1]d OR booking_number ILIKE $%[1]d
			OR bl_number ILIKE $%[1]d OR vessel ILIKE $%[1]d OR commodity ILIKE $%[1]d)`, len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM shipments `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 100
	}
	query := fmt.Sprintf(`SELECT %s FROM shipments %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		shipmentColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, req.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *s)
	}
	return out, total, rows.Err()
}

func (r *repository) Update(ctx context.Context, s Shipment) (*Shipment, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE shipments
		SET job_number = $2, booking_number = $3, bl_number = $4, customer_id = $5,
			shipper = $6, consignee = $7, vessel = $8, voyage = $9, port_of_loading = $10,
			port_of_discharge = $11, etd = $12, eta = $13, mode = $14, commodity = $15,
			packages = $16, gross_weight = $17, volume = $18, container_number = $19,
			container_type = $20, freight = $21, insurance = $22, customs_duty = $23,
			handling = $24, documentation = $25, other_charges = $26, total_charges = $27,
			invoice_value = $28, currency = $29, invoice_id = $30, notes = $31,
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+shipmentColumns,
		s.ID, s.JobNumber, s.BookingNumber, s.BLNumber, s.CustomerID, s.Shipper,
		s.Consignee, s.Vessel, s.Voyage, s.PortOfLoading, s.PortOfDischarge, s.ETD,
		s.ETA, s.Mode, s.Commodity, s.Packages, s.GrossWeight, s.Volume,
		s.ContainerNumber, s.ContainerType, s.Charges.Freight, s.Charges.Insurance,
		s.Charges.CustomsDuty, s.Charges.Handling, s.Charges.Documentation,
		s.Charges.Other, s.TotalCharges, s.InvoiceValue, s.Currency, s.InvoiceID, s.Notes)
	updated, err := scanShipment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM shipments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanShipment(row pgx.Row) (*Shipment, error) {
	var s Shipment
	err := row.Scan(&s.ID, &s.Direction, &s.JobNumber, &s.BookingNumber, &s.BLNumber,
		&s.CustomerID, &s.Shipper, &s.Consignee, &s.Vessel, &s.Voyage, &s.PortOfLoading,
		&s.PortOfDischarge, &s.ETD, &s.ETA, &s.Mode, &s.Commodity, &s.Packages,
		&s.GrossWeight, &s.Volume, &s.ContainerNumber, &s.ContainerType,
		&s.Charges.Freight, &s.Charges.Insurance, &s.Charges.CustomsDuty,
		&s.Charges.Handling, &s.Charges.Documentation, &s.Charges.Other,
		&s.TotalCharges, &s.InvoiceValue, &s.Currency, &s.InvoiceID, &s.Notes,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
