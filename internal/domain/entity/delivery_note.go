package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una nota de entrega.
const (
	DeliveryStatusPending   = "pending"
	DeliveryStatusInTransit = "in_transit"
	DeliveryStatusDelivered = "delivered"
	DeliveryStatusConfirmed = "confirmed"
)

// ValidDeliveryStatus indica si el estado pertenece al vocabulario cerrado.
func ValidDeliveryStatus(s string) bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusInTransit, DeliveryStatusDelivered, DeliveryStatusConfirmed:
		return true
	}
	return false
}

// DeliveryNote nota de entrega asociada a una solicitud de compra.
// Igual que ProcurementRequest, SupplierID ancla el alcance por tenant.
type DeliveryNote struct {
	ID                   int64
	Number               string // generado, prefijo DN-
	SupplierID           int64
	ProcurementRequestID int64
	CreatedBy            int64
	Status               string
	TotalAmount          decimal.Decimal
	Notes                string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
