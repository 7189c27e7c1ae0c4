package shipments

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/freightdesk/freightdesk/internal/invoices"
)

// InvoiceSyncPort folds a shipment's charges into its linked invoice. The
// invoice service implements it.
type InvoiceSyncPort interface {
	SyncShipmentCharge(ctx context.Context, charge invoices.ShipmentCharge) (*invoices.Invoice, error)
}

// SaveOutcome reports a shipment write together with the result of the
// follow-up invoice sync. The shipment write and the invoice write are
// separate operations: when the sync fails the shipment is still saved, and
// SyncError says so instead of the failure being silently dropped.
type SaveOutcome struct {
	Shipment  *Shipment         `json:"shipment"`
	Invoice   *invoices.Invoice `json:"invoice,omitempty"`
	SyncError string            `json:"sync_error,omitempty"`
}

// Service handles shipment business logic.
type Service struct {
	repo   RepositoryPort
	sync   InvoiceSyncPort
	logger *slog.Logger
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, sync InvoiceSyncPort, logger *slog.Logger) *Service {
	return &Service{repo: repo, sync: sync, logger: logger}
}

// Create stores a new shipment with server-computed total charges, then syncs
// the linked invoice if one is set.
func (s *Service) Create(ctx context.Context, req CreateShipmentRequest, createdBy int64) (*SaveOutcome, error) {
	shipment := Shipment{
		Direction:       req.Direction,
		JobNumber:       req.JobNumber,
		BookingNumber:   req.BookingNumber,
		BLNumber:        req.BLNumber,
		CustomerID:      req.CustomerID,
		Shipper:         req.Shipper,
		Consignee:       req.Consignee,
		Vessel:          req.Vessel,
		Voyage:          req.Voyage,
		PortOfLoading:   req.PortOfLoading,
		PortOfDischarge: req.PortOfDischarge,
		ETD:             req.ETD,
		ETA:             req.ETA,
		Mode:            req.Mode,
		Commodity:       req.Commodity,
		Packages:        req.Packages,
		GrossWeight:     req.GrossWeight,
		Volume:          req.Volume,
		ContainerNumber: req.ContainerNumber,
		ContainerType:   req.ContainerType,
		Charges:         Charges(req.Charges),
		InvoiceValue:    req.InvoiceValue,
		Currency:        req.Currency,
		InvoiceID:       req.InvoiceID,
		Notes:           req.Notes,
		CreatedBy:       createdBy,
	}
	shipment.TotalCharges = shipment.Charges.Sum()

	created, err := s.repo.Create(ctx, shipment)
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}
	return s.withSync(ctx, created), nil
}

// Update applies edits, recomputes total charges and re-syncs the linked
// invoice. Because sync lines are keyed by the shipment reference, a re-save
// replaces the shipment's previous contribution on the invoice.
func (s *Service) Update(ctx context.Context, id int64, req UpdateShipmentRequest) (*SaveOutcome, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	applyUpdate(existing, req)
	existing.TotalCharges = existing.Charges.Sum()

	updated, err := s.repo.Update(ctx, *existing)
	if err != nil {
		return nil, fmt.Errorf("update shipment: %w", err)
	}
	return s.withSync(ctx, updated), nil
}

// Get returns a single shipment.
func (s *Service) Get(ctx context.Context, id int64) (*Shipment, error) {
	return s.repo.Get(ctx, id)
}

// List returns shipments matching the filter.
func (s *Service) List(ctx context.Context, req ListShipmentsRequest) ([]Shipment, int, error) {
	return s.repo.List(ctx, req)
}

// Delete removes a shipment. Any invoice line it produced stays on the
// invoice; removing billed charges is an invoicing decision, not a side
// effect of deleting the job file.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) withSync(ctx context.Context, shipment *Shipment) *SaveOutcome {
	outcome := &SaveOutcome{Shipment: shipment}
	if shipment.InvoiceID == nil {
		return outcome
	}
	inv, err := s.sync.SyncShipmentCharge(ctx, invoices.ShipmentCharge{
		InvoiceID:    *shipment.InvoiceID,
		Reference:    shipment.Reference(),
		Direction:    string(shipment.Direction),
		Mode:         shipment.Mode,
		Currency:     shipment.Currency,
		TotalCharges: shipment.TotalCharges,
		InvoiceValue: shipment.InvoiceValue,
	})
	if err != nil {
		s.logger.Error("invoice sync failed",
			slog.Int64("shipment_id", shipment.ID),
			slog.Int64("invoice_id", *shipment.InvoiceID),
			slog.Any("error", err))
		outcome.SyncError = err.Error()
		return outcome
	}
	outcome.Invoice = inv
	return outcome
}

func applyUpdate(s *Shipment, req UpdateShipmentRequest) {
	if req.JobNumber != nil {
		s.JobNumber = *req.JobNumber
	}
	if req.BookingNumber != nil {
		s.BookingNumber = *req.BookingNumber
	}
	if req.BLNumber != nil {
		s.BLNumber = *req.BLNumber
	}
	if req.CustomerID != nil {
		s.CustomerID = *req.CustomerID
	}
	if req.Shipper != nil {
		s.Shipper = *req.Shipper
	}
	if req.Consignee != nil {
		s.Consignee = *req.Consignee
	}
	if req.Vessel != nil {
		s.Vessel = *req.Vessel
	}
	if req.Voyage != nil {
		s.Voyage = *req.Voyage
	}
	if req.PortOfLoading != nil {
		s.PortOfLoading = *req.PortOfLoading
	}
	if req.PortOfDischarge != nil {
		s.PortOfDischarge = *req.PortOfDischarge
	}
	if req.ETD != nil {
		s.ETD = req.ETD
	}
	if req.ETA != nil {
		s.ETA = req.ETA
	}
	if req.Mode != nil {
		s.Mode = *req.Mode
	}
	if req.Commodity != nil {
		s.Commodity = *req.Commodity
	}
	if req.Packages != nil {
		s.Packages = *req.Packages
	}
	if req.GrossWeight != nil {
		s.GrossWeight = *req.GrossWeight
	}
	if req.Volume != nil {
		s.Volume = *req.Volume
	}
	if req.ContainerNumber != nil {
		s.ContainerNumber = *req.ContainerNumber
	}
	if req.ContainerType != nil {
		s.ContainerType = *req.ContainerType
	}
	if req.Charges != nil {
		s.Charges = Charges(*req.Charges)
	}
	if req.InvoiceValue != nil {
		s.InvoiceValue = *req.InvoiceValue
	}
	if req.Currency != nil {
		s.Currency = *req.Currency
	}
	if req.InvoiceID != nil {
		s.InvoiceID = req.InvoiceID
	}
	if req.Notes != nil {
		s.Notes = *req.Notes
	}
}
