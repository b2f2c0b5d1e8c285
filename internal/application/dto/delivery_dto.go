package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDeliveryNoteRequest entrada para crear una nota de entrega.
type CreateDeliveryNoteRequest struct {
	SupplierID           int64           `json:"supplier_id" validate:"required"`
	ProcurementRequestID int64           `json:"procurement_request_id" validate:"required"`
	TotalAmount          decimal.Decimal `json:"total_amount" validate:"required"`
	Notes                string          `json:"notes" validate:"omitempty"`
}

// UpdateDeliveryStatusRequest entrada para cambiar el estado de una entrega.
type UpdateDeliveryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_transit delivered confirmed"`
}

// DeliveryNoteResponse salida de una nota de entrega.
type DeliveryNoteResponse struct {
	ID                   int64           `json:"id"`
	Number               string          `json:"number"`
	SupplierID           int64           `json:"supplier_id"`
	ProcurementRequestID int64           `json:"procurement_request_id"`
	CreatedBy            int64           `json:"created_by"`
	Status               string          `json:"status"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	Notes                string          `json:"notes,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}
