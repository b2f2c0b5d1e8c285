package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aladdin-chain/ycms-api/internal/domain/authz"
	"github.com/aladdin-chain/ycms-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Guard de alcance por tenant
// ──────────────────────────────────────────────────────────────────────────────

func aladdinUser(role entity.Role) *entity.User {
	return &entity.User{
		ID:       1,
		UserType: entity.UserTypeAladdin,
		Role:     role,
		IsActive: true,
	}
}

func supplierUser(role entity.Role, supplierID int64) *entity.User {
	return &entity.User{
		ID:         2,
		UserType:   entity.UserTypeSupplier,
		Role:       role,
		SupplierID: &supplierID,
		IsActive:   true,
	}
}

func TestCanAccessSupplier_AdminsGlobalesAccedenATodo(t *testing.T) {
	assert.True(t, authz.CanAccessSupplier(aladdinUser(entity.RoleSuperAdmin), 42))
	assert.True(t, authz.CanAccessSupplier(aladdinUser(entity.RoleAladdinAdmin), 42))
}

func TestCanAccessSupplier_SupplierSoloSuPropioProveedor(t *testing.T) {
	admin := supplierUser(entity.RoleSupplierAdmin, 7)
	staff := supplierUser(entity.RoleSupplierStaff, 7)

	assert.True(t, authz.CanAccessSupplier(admin, 7), "supplier_admin accede a su proveedor")
	assert.True(t, authz.CanAccessSupplier(staff, 7), "supplier_staff accede a su proveedor")

	assert.False(t, authz.CanAccessSupplier(admin, 8),
		"supplier_admin NO accede a otro proveedor aunque sea admin de su tenant")
	assert.False(t, authz.CanAccessSupplier(staff, 8))
}

func TestCanAccessSupplier_SupplierSinSupplierIDDenegado(t *testing.T) {
	// Estado corrupto (la invariante lo impide, pero el guard no debe
	// romperse si llega).
	u := &entity.User{ID: 3, UserType: entity.UserTypeSupplier, Role: entity.RoleSupplierAdmin, IsActive: true}
	assert.False(t, authz.CanAccessSupplier(u, 7))
}

func TestCanAccessSupplier_AladdinStaffVisibilidadGlobal(t *testing.T) {
	staff := aladdinUser(entity.RoleAladdinStaff)
	assert.True(t, authz.CanAccessSupplier(staff, 7))
	assert.True(t, authz.CanAccessSupplier(staff, 999),
		"aladdin_staff tiene visibilidad sobre cualquier proveedor")
}

// El guard es ortogonal a la tabla de permisos: supplier_admin tiene la
// capacidad update sobre procurement_requests y aun así se le deniega la fila
// de otro proveedor.
func TestCanAccessSupplier_OrtogonalALaTabla(t *testing.T) {
	p := authz.NewPolicy()
	actor := supplierUser(entity.RoleSupplierAdmin, 7)

	assert.True(t, p.Allow(actor.Role, authz.ResourceProcurementRequests, authz.ActionUpdate),
		"la tabla concede la capacidad")
	assert.False(t, authz.CanAccessSupplier(actor, 8),
		"el guard deniega la fila concreta de otro tenant")
}
