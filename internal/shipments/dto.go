package shipments

import "time"

// ChargesInput carries the charge heads from the form. TotalCharges is never
// accepted from the client; it is recomputed from these fields.
type ChargesInput struct {
	Freight       float64 `json:"freight" validate:"gte=0"`
	Insurance     float64 `json:"insurance" validate:"gte=0"`
	CustomsDuty   float64 `json:"customs_duty" validate:"gte=0"`
	Handling      float64 `json:"handling" validate:"gte=0"`
	Documentation float64 `json:"documentation" validate:"gte=0"`
	Other         float64 `json:"other" validate:"gte=0"`
}

// CreateShipmentRequest creates an import or export job file.
type CreateShipmentRequest struct {
	Direction       Direction    `json:"direction" validate:"required,oneof=import export"`
	JobNumber       string       `json:"job_number" validate:"max=50"`
	BookingNumber   string       `json:"booking_number" validate:"max=50"`
	BLNumber        string       `json:"bl_number" validate:"max=50"`
	CustomerID      int64        `json:"customer_id" validate:"required,gt=0"`
	Shipper         string       `json:"shipper" validate:"max=200"`
	Consignee       string       `json:"consignee" validate:"max=200"`
	Vessel          string       `json:"vessel" validate:"max=100"`
	Voyage          string       `json:"voyage" validate:"max=50"`
	PortOfLoading   string       `json:"port_of_loading" validate:"max=100"`
	PortOfDischarge string       `json:"port_of_discharge" validate:"max=100"`
	ETD             *time.Time   `json:"etd,omitempty"`
	ETA             *time.Time   `json:"eta,omitempty"`
	Mode            string       `json:"mode" validate:"required,oneof=sea air land"`
	Commodity       string       `json:"commodity" validate:"max=500"`
	Packages        int          `json:"packages" validate:"gte=0"`
	GrossWeight     float64      `json:"gross_weight" validate:"gte=0"`
	Volume          float64      `json:"volume" validate:"gte=0"`
	ContainerNumber string       `json:"container_number" validate:"max=50"`
	ContainerType   string       `json:"container_type" validate:"max=20"`
	Charges         ChargesInput `json:"charges"`
	InvoiceValue    float64      `json:"invoice_value" validate:"gte=0"`
	Currency        string       `json:"currency" validate:"required,len=3"`
	InvoiceID       *int64       `json:"invoice_id,omitempty" validate:"omitempty,gt=0"`
	Notes           string       `json:"notes"`
}

// UpdateShipmentRequest edits a job file.
type UpdateShipmentRequest struct {
	JobNumber       *string       `json:"job_number,omitempty" validate:"omitempty,max=50"`
	BookingNumber   *string       `json:"booking_number,omitempty" validate:"omitempty,max=50"`
	BLNumber        *string       `json:"bl_number,omitempty" validate:"omitempty,max=50"`
	CustomerID      *int64        `json:"customer_id,omitempty" validate:"omitempty,gt=0"`
	Shipper         *string       `json:"shipper,omitempty" validate:"omitempty,max=200"`
	Consignee       *string       `json:"consignee,omitempty" validate:"omitempty,max=200"`
	Vessel          *string       `json:"vessel,omitempty" validate:"omitempty,max=100"`
	Voyage          *string       `json:"voyage,omitempty" validate:"omitempty,max=50"`
	PortOfLoading   *string       `json:"port_of_loading,omitempty" validate:"omitempty,max=100"`
	PortOfDischarge *string       `json:"port_of_discharge,omitempty" validate:"omitempty,max=100"`
	ETD             *time.Time    `json:"etd,omitempty"`
	ETA             *time.Time    `json:"eta,omitempty"`
	Mode            *string       `json:"mode,omitempty" validate:"omitempty,oneof=sea air land"`
	Commodity       *string       `json:"commodity,omitempty" validate:"omitempty,max=500"`
	Packages        *int          `json:"packages,omitempty" validate:"omitempty,gte=0"`
	GrossWeight     *float64      `json:"gross_weight,omitempty" validate:"omitempty,gte=0"`
	Volume          *float64      `json:"volume,omitempty" validate:"omitempty,gte=0"`
	ContainerNumber *string       `json:"container_number,omitempty" validate:"omitempty,max=50"`
	ContainerType   *string       `json:"container_type,omitempty" validate:"omitempty,max=20"`
	Charges         *ChargesInput `json:"charges,omitempty"`
	InvoiceValue    *float64      `json:"invoice_value,omitempty" validate:"omitempty,gte=0"`
	Currency        *string       `json:"currency,omitempty" validate:"omitempty,len=3"`
	InvoiceID       *int64        `json:"invoice_id,omitempty"`
	Notes           *string       `json:"notes,omitempty"`
}

// ListShipmentsRequest filters the shipment listing. Search matches job,
// booking and B/L numbers plus vessel and commodity.
type ListShipmentsRequest struct {
	Direction  Direction `json:"direction"`
	CustomerID int64     `json:"customer_id"`
	Mode       string    `json:"mode"`
	Search     string    `json:"search"`
	Limit      int       `json:"limit" validate:"gte=0,lte=1000"`
	Offset     int       `json:"offset" validate:"gte=0"`
}
