package repository

import "github.com/aladdin-chain/ycms-api/internal/domain/entity"

// ProcurementRequestRepository puerto de persistencia para solicitudes de compra.
type ProcurementRequestRepository interface {
	Create(req *entity.ProcurementRequest) error
	GetByID(id int64) (*entity.ProcurementRequest, error)
	Update(req *entity.ProcurementRequest) error
	List(limit, offset int) ([]*entity.ProcurementRequest, error)
	ListBySupplier(supplierID int64, limit, offset int) ([]*entity.ProcurementRequest, error)
}
