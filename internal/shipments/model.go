package shipments

import (
	"time"

	"github.com/freightdesk/freightdesk/internal/fx"
)

// Direction distinguishes import and export jobs.
type Direction string

const (
	DirectionImport Direction = "import"
	DirectionExport Direction = "export"
)

// Charges groups the billable cost heads of a shipment.
type Charges struct {
	Freight       float64 `json:"freight"`
	Insurance     float64 `json:"insurance"`
	CustomsDuty   float64 `json:"customs_duty"`
	Handling      float64 `json:"handling"`
	Documentation float64 `json:"documentation"`
	Other         float64 `json:"other"`
}

// Sum adds up all charge heads.
func (c Charges) Sum() float64 {
	return fx.Round2(c.Freight + c.Insurance + c.CustomsDuty + c.Handling + c.Documentation + c.Other)
}

// Shipment is an import or export job file. TotalCharges is always the stored
// sum of the charge heads, recomputed on every write.
type Shipment struct {
	ID              int64      `json:"id"`
	Direction       Direction  `json:"direction"`
	JobNumber       string     `json:"job_number,omitempty"`
	BookingNumber   string     `json:"booking_number,omitempty"`
	BLNumber        string     `json:"bl_number,omitempty"`
	CustomerID      int64      `json:"customer_id"`
	Shipper         string     `json:"shipper,omitempty"`
	Consignee       string     `json:"consignee,omitempty"`
	Vessel          string     `json:"vessel,omitempty"`
	Voyage          string     `json:"voyage,omitempty"`
	PortOfLoading   string     `json:"port_of_loading,omitempty"`
	PortOfDischarge string     `json:"port_of_discharge,omitempty"`
	ETD             *time.Time `json:"etd,omitempty"`
	ETA             *time.Time `json:"eta,omitempty"`
	Mode            string     `json:"mode"`
	Commodity       string     `json:"commodity,omitempty"`
	Packages        int        `json:"packages"`
	GrossWeight     float64    `json:"gross_weight"`
	Volume          float64    `json:"volume"`
	ContainerNumber string     `json:"container_number,omitempty"`
	ContainerType   string     `json:"container_type,omitempty"`
	Charges         Charges    `json:"charges"`
	TotalCharges    float64    `json:"total_charges"`
	InvoiceValue    float64    `json:"invoice_value"`
	Currency        string     `json:"currency"`
	InvoiceID       *int64     `json:"invoice_id,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CreatedBy       int64      `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Reference returns the identifier used on invoice lines: job number first,
// then booking number, then B/L number.
func (s *Shipment) Reference() string {
	switch {
	case s.JobNumber != "":
		return s.JobNumber
	case s.BookingNumber != "":
		return s.BookingNumber
	default:
		return s.BLNumber
	}
}
