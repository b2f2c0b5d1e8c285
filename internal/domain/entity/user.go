package entity

import (
	"time"

	"github.com/aladdin-chain/ycms-api/internal/domain"
)

// UserType clasifica al usuario según su tenant: personal interno de Aladdin
// o personal de un proveedor.
type UserType string

const (
	UserTypeAladdin  UserType = "aladdin"
	UserTypeSupplier UserType = "supplier"
)

// Valid indica si el tipo de usuario es uno de los dos valores conocidos.
func (t UserType) Valid() bool {
	return t == UserTypeAladdin || t == UserTypeSupplier
}

// Role rol del usuario. El vocabulario es cerrado: cinco roles, sin jerarquía
// implícita entre ellos.
type Role string

const (
	RoleSuperAdmin    Role = "super_admin"
	RoleAladdinAdmin  Role = "aladdin_admin"
	RoleAladdinStaff  Role = "aladdin_staff"
	RoleSupplierAdmin Role = "supplier_admin"
	RoleSupplierStaff Role = "supplier_staff"
)

// Roles todos los roles válidos, en orden de privilegio descendente.
var Roles = []Role{RoleSuperAdmin, RoleAladdinAdmin, RoleAladdinStaff, RoleSupplierAdmin, RoleSupplierStaff}

// Valid indica si el rol pertenece al vocabulario cerrado.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAladdinAdmin, RoleAladdinStaff, RoleSupplierAdmin, RoleSupplierStaff:
		return true
	}
	return false
}

// CompatibleWith indica si el rol es válido para el tipo de usuario dado:
// los roles aladdin_* y super_admin solo para user_type=aladdin, los roles
// supplier_* solo para user_type=supplier.
func (r Role) CompatibleWith(t UserType) bool {
	switch r {
	case RoleSuperAdmin, RoleAladdinAdmin, RoleAladdinStaff:
		return t == UserTypeAladdin
	case RoleSupplierAdmin, RoleSupplierStaff:
		return t == UserTypeSupplier
	}
	return false
}

// User representa un usuario del sistema YCMS.
type User struct {
	ID           int64
	Email        string // único, comparaciones en minúsculas
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	UserType     UserType
	Role         Role
	FirstName    string
	LastName     string
	PhoneNumber  string
	SupplierID   *int64 // presente sii UserType == supplier
	IsActive     bool
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombre completo del usuario.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Validate verifica las invariantes de la combinación resultante
// (user_type, role, supplier_id). Se debe invocar en cada creación y en cada
// actualización que toque cualquiera de los tres campos.
func (u *User) Validate() error {
	if !u.UserType.Valid() {
		return domain.ErrInvalidInput
	}
	if !u.Role.Valid() {
		return domain.ErrInvalidInput
	}
	if !u.Role.CompatibleWith(u.UserType) {
		return domain.ErrRoleTypeMismatch
	}
	if u.UserType == UserTypeSupplier && u.SupplierID == nil {
		return domain.ErrSupplierIDRequired
	}
	if u.UserType == UserTypeAladdin && u.SupplierID != nil {
		return domain.ErrSupplierIDNotAllowed
	}
	return nil
}

// ManagesAllTenants indica si el usuario administra todos los tenants
// (super_admin o aladdin_admin). Habilita, entre otras cosas, la gestión de
// roles y supplier_id de otros usuarios.
func (u *User) ManagesAllTenants() bool {
	return u.Role == RoleSuperAdmin || u.Role == RoleAladdinAdmin
}

// MayOriginateProcurementRequest indica si el usuario puede originar
// solicitudes de compra (YCMS). Solo personal de Aladdin.
func (u *User) MayOriginateProcurementRequest() bool {
	switch u.Role {
	case RoleSuperAdmin, RoleAladdinAdmin, RoleAladdinStaff:
		return true
	}
	return false
}

// MayOriginateDeliveryNote indica si el usuario puede originar notas de
// entrega. Personal de Aladdin y admins de proveedor.
func (u *User) MayOriginateDeliveryNote() bool {
	switch u.Role {
	case RoleSuperAdmin, RoleAladdinAdmin, RoleAladdinStaff, RoleSupplierAdmin:
		return true
	}
	return false
}

// MayManageSupplierScope indica si el usuario puede gestionar documentos del
// proveedor indicado: administradores globales siempre, usuarios supplier
// solo sobre su propio proveedor.
func (u *User) MayManageSupplierScope(supplierID int64) bool {
	if u.ManagesAllTenants() {
		return true
	}
	if u.UserType == UserTypeSupplier && u.SupplierID != nil && *u.SupplierID == supplierID {
		return u.Role == RoleSupplierAdmin || u.Role == RoleSupplierStaff
	}
	return false
}
