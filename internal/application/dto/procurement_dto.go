package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProcurementRequest entrada para crear una solicitud de compra.
type CreateProcurementRequest struct {
	SupplierID  int64           `json:"supplier_id" validate:"required"`
	TotalAmount decimal.Decimal `json:"total_amount" validate:"required"`
	Notes       string          `json:"notes" validate:"omitempty"`
}

// UpdateProcurementStatusRequest entrada para cambiar el estado de una solicitud.
type UpdateProcurementStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft submitted confirmed fulfilled cancelled"`
}

// ProcurementResponse salida de una solicitud de compra.
type ProcurementResponse struct {
	ID          int64           `json:"id"`
	Number      string          `json:"number"`
	SupplierID  int64           `json:"supplier_id"`
	RequestedBy int64           `json:"requested_by"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
