package repository

import "github.com/aladdin-chain/ycms-api/internal/domain/entity"

// DeliveryNoteRepository puerto de persistencia para notas de entrega.
type DeliveryNoteRepository interface {
	Create(note *entity.DeliveryNote) error
	GetByID(id int64) (*entity.DeliveryNote, error)
	Update(note *entity.DeliveryNote) error
	List(limit, offset int) ([]*entity.DeliveryNote, error)
	ListBySupplier(supplierID int64, limit, offset int) ([]*entity.DeliveryNote, error)
}
