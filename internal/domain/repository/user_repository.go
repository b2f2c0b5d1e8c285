package repository

import "github.com/aladdin-chain/ycms-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las consultas por email reciben el email ya normalizado en minúsculas.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	ListActive(limit, offset int) ([]*entity.User, error)
	ListBySupplier(supplierID int64, limit, offset int) ([]*entity.User, error)
	ExistsByEmail(email string, excludeID int64) (bool, error)
}
