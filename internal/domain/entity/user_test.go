package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aladdin-chain/ycms-api/internal/domain"
	"github.com/aladdin-chain/ycms-api/internal/domain/entity"
)

func ptr(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Invariantes de la combinación (user_type, role, supplier_id)
// ──────────────────────────────────────────────────────────────────────────────

func TestUserValidate_CombinacionesValidas(t *testing.T) {
	cases := []struct {
		name string
		user entity.User
	}{
		{"super_admin aladdin", entity.User{UserType: entity.UserTypeAladdin, Role: entity.RoleSuperAdmin}},
		{"aladdin_admin", entity.User{UserType: entity.UserTypeAladdin, Role: entity.RoleAladdinAdmin}},
		{"aladdin_staff", entity.User{UserType: entity.UserTypeAladdin, Role: entity.RoleAladdinStaff}},
		{"supplier_admin con proveedor", entity.User{UserType: entity.UserTypeSupplier, Role: entity.RoleSupplierAdmin, SupplierID: ptr(1)}},
		{"supplier_staff con proveedor", entity.User{UserType: entity.UserTypeSupplier, Role: entity.RoleSupplierStaff, SupplierID: ptr(9)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, tc.user.Validate())
		})
	}
}

func TestUserValidate_RolIncompatibleConTipo(t *testing.T) {
	// Rol supplier_* con tipo aladdin.
	u := entity.User{UserType: entity.UserTypeAladdin, Role: entity.RoleSupplierAdmin}
	assert.ErrorIs(t, u.Validate(), domain.ErrRoleTypeMismatch)

	// Rol aladdin_* con tipo supplier.
	u = entity.User{UserType: entity.UserTypeSupplier, Role: entity.RoleAladdinStaff, SupplierID: ptr(1)}
	assert.ErrorIs(t, u.Validate(), domain.ErrRoleTypeMismatch)

	// super_admin nunca es de tipo supplier.
	u = entity.User{UserType: entity.UserTypeSupplier, Role: entity.RoleSuperAdmin, SupplierID: ptr(1)}
	assert.ErrorIs(t, u.Validate(), domain.ErrRoleTypeMismatch)
}

func TestUserValidate_SupplierIDObligatorioParaSupplier(t *testing.T) {
	u := entity.User{UserType: entity.UserTypeSupplier, Role: entity.RoleSupplierStaff}
	assert.ErrorIs(t, u.Validate(), domain.ErrSupplierIDRequired,
		"un usuario supplier sin supplier_id es inválido")
}

func TestUserValidate_SupplierIDProhibidoParaAladdin(t *testing.T) {
	u := entity.User{UserType: entity.UserTypeAladdin, Role: entity.RoleAladdinAdmin, SupplierID: ptr(5)}
	assert.ErrorIs(t, u.Validate(), domain.ErrSupplierIDNotAllowed,
		"un usuario aladdin con supplier_id es inválido")
}

func TestUserValidate_VocabularioCerrado(t *testing.T) {
	u := entity.User{UserType: entity.UserType("customer"), Role: entity.RoleSuperAdmin}
	assert.ErrorIs(t, u.Validate(), domain.ErrInvalidInput)

	// Roles del vocabulario antiguo (admin, user) no son válidos.
	u = entity.User{UserType: entity.UserTypeAladdin, Role: entity.Role("admin")}
	assert.ErrorIs(t, u.Validate(), domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Predicados de capacidad
// ──────────────────────────────────────────────────────────────────────────────

func TestManagesAllTenants(t *testing.T) {
	assert.True(t, (&entity.User{Role: entity.RoleSuperAdmin}).ManagesAllTenants())
	assert.True(t, (&entity.User{Role: entity.RoleAladdinAdmin}).ManagesAllTenants())
	assert.False(t, (&entity.User{Role: entity.RoleAladdinStaff}).ManagesAllTenants())
	assert.False(t, (&entity.User{Role: entity.RoleSupplierAdmin}).ManagesAllTenants(),
		"supplier_admin administra su tenant, no todos")
}

func TestMayOriginateProcurementRequest_SoloAladdin(t *testing.T) {
	assert.True(t, (&entity.User{Role: entity.RoleSuperAdmin}).MayOriginateProcurementRequest())
	assert.True(t, (&entity.User{Role: entity.RoleAladdinAdmin}).MayOriginateProcurementRequest())
	assert.True(t, (&entity.User{Role: entity.RoleAladdinStaff}).MayOriginateProcurementRequest())
	assert.False(t, (&entity.User{Role: entity.RoleSupplierAdmin}).MayOriginateProcurementRequest())
	assert.False(t, (&entity.User{Role: entity.RoleSupplierStaff}).MayOriginateProcurementRequest())
}

func TestMayOriginateDeliveryNote(t *testing.T) {
	assert.True(t, (&entity.User{Role: entity.RoleSupplierAdmin}).MayOriginateDeliveryNote())
	assert.False(t, (&entity.User{Role: entity.RoleSupplierStaff}).MayOriginateDeliveryNote(),
		"supplier_staff solo actualiza estado, no origina")
}

func TestMayManageSupplierScope(t *testing.T) {
	assert.True(t, (&entity.User{Role: entity.RoleAladdinAdmin, UserType: entity.UserTypeAladdin}).MayManageSupplierScope(3))

	own := &entity.User{Role: entity.RoleSupplierAdmin, UserType: entity.UserTypeSupplier, SupplierID: ptr(3)}
	assert.True(t, own.MayManageSupplierScope(3))
	assert.False(t, own.MayManageSupplierScope(4))

	assert.False(t, (&entity.User{Role: entity.RoleAladdinStaff, UserType: entity.UserTypeAladdin}).MayManageSupplierScope(3),
		"aladdin_staff lee pero no gestiona el alcance de un proveedor")
}
