package usecase

import (
	"time"

	"github.com/aladdin-chain/ycms-api/internal/application/dto"
	"github.com/aladdin-chain/ycms-api/internal/domain"
	"github.com/aladdin-chain/ycms-api/internal/domain/entity"
	"github.com/aladdin-chain/ycms-api/internal/domain/repository"
)

// SupplierUseCase aplica reglas de negocio para proveedores: unicidad de
// código/email/código fiscal, normalización del código y borrado lógico
// guardado por usuarios activos.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso con el puerto de persistencia.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor tras verificar unicidad de code, email y tax_code.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest, createdBy *int64) (*dto.SupplierResponse, error) {
	now := time.Now()
	supplier := &entity.Supplier{
		Code:          entity.NormalizeSupplierCode(in.Code),
		Name:          in.Name,
		NameEN:        in.NameEN,
		TaxCode:       in.TaxCode,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		ContactPerson: in.ContactPerson,
		ContactPhone:  in.ContactPhone,
		ContactEmail:  in.ContactEmail,
		Description:   in.Description,
		IsActive:      true,
		Audit:         entity.Audit{CreatedBy: createdBy, UpdatedBy: createdBy},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := supplier.Validate(); err != nil {
		return nil, err
	}

	if err := uc.checkUniqueness(supplier.Code, supplier.Email, supplier.TaxCode, 0); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID (incluye tombstones para que el caller
// distinga "eliminado" de "inexistente" dentro del mismo tenant).
func (uc *SupplierUseCase) GetByID(id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	return toSupplierResponse(supplier), nil
}

// GetByCode obtiene un proveedor por código normalizado (excluye eliminados).
func (uc *SupplierUseCase) GetByCode(code string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByCode(entity.NormalizeSupplierCode(code))
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores no eliminados; activeOnly limita a activos.
func (uc *SupplierUseCase) List(page dto.PageRequest, activeOnly bool) ([]*dto.SupplierResponse, error) {
	page.DefaultPage()

	var (
		suppliers []*entity.Supplier
		err       error
	)
	if activeOnly {
		suppliers, err = uc.repo.ListActive(page.Limit, page.Offset)
	} else {
		suppliers, err = uc.repo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// Update actualiza un proveedor. La unicidad se verifica excluyendo el propio
// registro; el código se normaliza antes de validar.
func (uc *SupplierUseCase) Update(id int64, in dto.UpdateSupplierRequest, updatedBy *int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	if supplier.IsDeleted {
		return nil, domain.ErrSupplierDeleted
	}

	if in.Code != nil {
		supplier.Code = entity.NormalizeSupplierCode(*in.Code)
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.NameEN != nil {
		supplier.NameEN = *in.NameEN
	}
	if in.TaxCode != nil {
		supplier.TaxCode = in.TaxCode
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	if in.ContactPerson != nil {
		supplier.ContactPerson = *in.ContactPerson
	}
	if in.ContactPhone != nil {
		supplier.ContactPhone = *in.ContactPhone
	}
	if in.ContactEmail != nil {
		supplier.ContactEmail = *in.ContactEmail
	}
	if in.Description != nil {
		supplier.Description = *in.Description
	}
	if in.IsActive != nil {
		supplier.IsActive = *in.IsActive
	}
	supplier.UpdatedBy = updatedBy
	supplier.UpdatedAt = time.Now()

	if err := supplier.Validate(); err != nil {
		return nil, err
	}
	if err := uc.checkUniqueness(supplier.Code, supplier.Email, supplier.TaxCode, id); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete aplica borrado lógico. Se rechaza si el proveedor ya está eliminado
// (mismo rechazo en llamadas repetidas) o si aún tiene usuarios supplier
// activos que lo referencian. Nunca borra físicamente.
func (uc *SupplierUseCase) Delete(id int64, deletedBy *int64) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrSupplierNotFound
	}

	hasUsers, err := uc.repo.HasActiveUsers(id)
	if err != nil {
		return err
	}
	if err := supplier.CanBeDeleted(hasUsers); err != nil {
		return err
	}

	return uc.repo.SoftDelete(id, deletedBy, time.Now())
}

// Activate marca un proveedor como activo.
func (uc *SupplierUseCase) Activate(id int64, updatedBy *int64) (*dto.SupplierResponse, error) {
	active := true
	return uc.Update(id, dto.UpdateSupplierRequest{IsActive: &active}, updatedBy)
}

// Deactivate marca un proveedor como inactivo (sin tombstone).
func (uc *SupplierUseCase) Deactivate(id int64, updatedBy *int64) (*dto.SupplierResponse, error) {
	active := false
	return uc.Update(id, dto.UpdateSupplierRequest{IsActive: &active}, updatedBy)
}

func (uc *SupplierUseCase) checkUniqueness(code, email string, taxCode *string, excludeID int64) error {
	exists, err := uc.repo.ExistsByCode(code, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrCodeAlreadyExists
	}

	exists, err = uc.repo.ExistsByEmail(email, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrEmailAlreadyExists
	}

	if taxCode != nil && *taxCode != "" {
		exists, err = uc.repo.ExistsByTaxCode(*taxCode, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrTaxCodeAlreadyExists
		}
	}
	return nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:            s.ID,
		Code:          s.Code,
		Name:          s.Name,
		NameEN:        s.NameEN,
		TaxCode:       s.TaxCode,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		ContactPerson: s.ContactPerson,
		ContactPhone:  s.ContactPhone,
		ContactEmail:  s.ContactEmail,
		Description:   s.Description,
		IsActive:      s.IsActive,
		IsDeleted:     s.IsDeleted,
		DeletedAt:     s.DeletedAt,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
