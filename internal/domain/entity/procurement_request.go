package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una solicitud de compra (YCMS).
const (
	ProcurementStatusDraft     = "draft"
	ProcurementStatusSubmitted = "submitted"
	ProcurementStatusConfirmed = "confirmed"
	ProcurementStatusFulfilled = "fulfilled"
	ProcurementStatusCancelled = "cancelled"
)

// ValidProcurementStatus indica si el estado pertenece al vocabulario cerrado.
func ValidProcurementStatus(s string) bool {
	switch s {
	case ProcurementStatusDraft, ProcurementStatusSubmitted, ProcurementStatusConfirmed,
		ProcurementStatusFulfilled, ProcurementStatusCancelled:
		return true
	}
	return false
}

// ProcurementRequest solicitud de compra dirigida a un proveedor.
// SupplierID es el ancla de alcance por tenant: un usuario supplier solo ve
// y modifica solicitudes de su propio proveedor.
type ProcurementRequest struct {
	ID          int64
	Number      string // generado, prefijo YCMS-
	SupplierID  int64
	RequestedBy int64
	Status      string
	TotalAmount decimal.Decimal
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
