package repository

import (
	"time"

	"github.com/aladdin-chain/ycms-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
//
// GetByID devuelve también filas tombstone (la guarda de borrado necesita
// detectarlas); GetByCode y List excluyen eliminados. Los predicados
// ExistsBy* excluyen el id indicado para poder validar updates contra el
// propio registro (excludeID = 0 en creación).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	GetByCode(code string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(limit, offset int) ([]*entity.Supplier, error)
	ListActive(limit, offset int) ([]*entity.Supplier, error)
	ExistsByCode(code string, excludeID int64) (bool, error)
	ExistsByEmail(email string, excludeID int64) (bool, error)
	ExistsByTaxCode(taxCode string, excludeID int64) (bool, error)
	// HasActiveUsers predicado de la guarda de borrado: usuarios de tipo
	// supplier, activos, que referencian este proveedor.
	HasActiveUsers(supplierID int64) (bool, error)
	SoftDelete(id int64, deletedBy *int64, deletedAt time.Time) error
}
