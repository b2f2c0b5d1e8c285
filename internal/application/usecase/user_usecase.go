package usecase

import (
	"strings"
	"time"

	"github.com/aladdin-chain/ycms-api/internal/application/auth"
	"github.com/aladdin-chain/ycms-api/internal/application/dto"
	"github.com/aladdin-chain/ycms-api/internal/domain"
	"github.com/aladdin-chain/ycms-api/internal/domain/entity"
	"github.com/aladdin-chain/ycms-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo         repository.UserRepository
	supplierRepo repository.SupplierRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(repo repository.UserRepository, supplierRepo repository.SupplierRepository) *UserUseCase {
	return &UserUseCase{repo: repo, supplierRepo: supplierRepo}
}

// Create crea un usuario. Valida la combinación (user_type, role, supplier_id)
// completa antes de persistir y verifica que el proveedor referenciado exista
// y no esté eliminado.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	exists, err := uc.repo.ExistsByEmail(email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		UserType:     entity.UserType(in.UserType),
		Role:         entity.Role(in.Role),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PhoneNumber:  in.PhoneNumber,
		SupplierID:   in.SupplierID,
		IsActive:     true,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if user.SupplierID != nil {
		if err := uc.ensureSupplierUsable(*user.SupplierID); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios con paginación; activeOnly limita a usuarios activos.
// Un actor de tipo supplier solo ve los usuarios de su propio proveedor.
func (uc *UserUseCase) List(actor *entity.User, page dto.PageRequest, activeOnly bool) ([]*dto.UserResponse, error) {
	page.DefaultPage()

	var (
		users []*entity.User
		err   error
	)
	switch {
	case actor.UserType == entity.UserTypeSupplier:
		users, err = uc.repo.ListBySupplier(*actor.SupplierID, page.Limit, page.Offset)
	case activeOnly:
		users, err = uc.repo.ListActive(page.Limit, page.Offset)
	default:
		users, err = uc.repo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// UpdateProfile actualiza los campos de perfil (nombre, teléfono).
func (uc *UserUseCase) UpdateProfile(id int64, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.FirstName != "" {
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}
	if in.PhoneNumber != "" {
		user.PhoneNumber = in.PhoneNumber
	}
	user.UpdatedAt = time.Now()

	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// UpdateRole cambia rol, tipo y proveedor de un usuario. Solo un actor con
// gestión global de tenants puede hacerlo; la combinación RESULTANTE se
// valida completa, no la anterior.
func (uc *UserUseCase) UpdateRole(actor *entity.User, id int64, in dto.UpdateUserRoleRequest) (*dto.UserResponse, error) {
	if !actor.ManagesAllTenants() {
		return nil, domain.ErrForbidden
	}

	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	user.UserType = entity.UserType(in.UserType)
	user.Role = entity.Role(in.Role)
	user.SupplierID = in.SupplierID
	user.UpdatedAt = time.Now()

	if err := user.Validate(); err != nil {
		return nil, err
	}
	if user.SupplierID != nil {
		if err := uc.ensureSupplierUsable(*user.SupplierID); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Activate marca un usuario como activo. Transición de estado explícita.
func (uc *UserUseCase) Activate(id int64) (*dto.UserResponse, error) {
	return uc.setActive(id, true)
}

// Deactivate marca un usuario como inactivo. No es un borrado: el registro
// permanece y el usuario deja de poder autenticarse.
func (uc *UserUseCase) Deactivate(id int64) (*dto.UserResponse, error) {
	return uc.setActive(id, false)
}

func (uc *UserUseCase) setActive(id int64, active bool) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.IsActive = active
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

func (uc *UserUseCase) ensureSupplierUsable(supplierID int64) error {
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return err
	}
	if supplier == nil || supplier.IsDeleted {
		return domain.ErrSupplierNotFound
	}
	return nil
}
