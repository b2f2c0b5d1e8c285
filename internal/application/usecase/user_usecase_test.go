package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aladdin-chain/ycms-api/internal/application/dto"
	"github.com/aladdin-chain/ycms-api/internal/application/usecase"
	"github.com/aladdin-chain/ycms-api/internal/domain"
	"github.com/aladdin-chain/ycms-api/internal/domain/entity"
)

func buildUserUC(t *testing.T) (*usecase.UserUseCase, *fakeUserRepo, *fakeSupplierRepo, int64) {
	t.Helper()
	userRepo := newFakeUserRepo()
	supplierRepo := newFakeSupplierRepo()
	uc := usecase.NewUserUseCase(userRepo, supplierRepo)

	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	s, err := supplierUC.Create(createSupplierInput("SUP001", "sup@p.example.com"), nil)
	require.NoError(t, err)
	return uc, userRepo, supplierRepo, s.ID
}

func createUserInput(email, userType, role string, supplierID *int64) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Email:      email,
		Password:   "password-123",
		UserType:   userType,
		Role:       role,
		FirstName:  "Nombre",
		LastName:   "Apellido",
		SupplierID: supplierID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación de usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCreate_EmailEnMinusculas(t *testing.T) {
	uc, _, _, _ := buildUserUC(t)

	out, err := uc.Create(createUserInput("  Admin@Aladdin.Example.COM ", "aladdin", "aladdin_staff", nil))
	require.NoError(t, err)
	assert.Equal(t, "admin@aladdin.example.com", out.Email)
	assert.True(t, out.IsActive)
	assert.False(t, out.IsVerified)
}

func TestUserCreate_EmailDuplicadoConflicto(t *testing.T) {
	uc, _, _, _ := buildUserUC(t)

	_, err := uc.Create(createUserInput("uno@aladdin.example.com", "aladdin", "aladdin_staff", nil))
	require.NoError(t, err)

	// Mismo email con distinta capitalización.
	_, err = uc.Create(createUserInput("UNO@aladdin.example.com", "aladdin", "aladdin_admin", nil))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserCreate_CombinacionInvalidaRechazada(t *testing.T) {
	uc, _, _, supplierID := buildUserUC(t)

	// Rol supplier con tipo aladdin.
	_, err := uc.Create(createUserInput("a@x.example.com", "aladdin", "supplier_admin", nil))
	assert.ErrorIs(t, err, domain.ErrRoleTypeMismatch)

	// Usuario supplier sin supplier_id.
	_, err = uc.Create(createUserInput("b@x.example.com", "supplier", "supplier_staff", nil))
	assert.ErrorIs(t, err, domain.ErrSupplierIDRequired)

	// Usuario aladdin con supplier_id.
	_, err = uc.Create(createUserInput("c@x.example.com", "aladdin", "aladdin_admin", &supplierID))
	assert.ErrorIs(t, err, domain.ErrSupplierIDNotAllowed)
}

func TestUserCreate_ProveedorInexistenteRechazado(t *testing.T) {
	uc, _, _, _ := buildUserUC(t)

	ghost := int64(9999)
	_, err := uc.Create(createUserInput("d@x.example.com", "supplier", "supplier_admin", &ghost))
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}

func TestUserCreate_ProveedorEliminadoRechazado(t *testing.T) {
	uc, _, supplierRepo, supplierID := buildUserUC(t)

	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	require.NoError(t, supplierUC.Delete(supplierID, nil))

	_, err := uc.Create(createUserInput("e@x.example.com", "supplier", "supplier_admin", &supplierID))
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound,
		"un proveedor eliminado no puede recibir nuevos usuarios")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambio de rol: solo administración global, validación de la combinación
// resultante
// ──────────────────────────────────────────────────────────────────────────────

func TestUserUpdateRole_RequiereGestionGlobal(t *testing.T) {
	uc, _, _, supplierID := buildUserUC(t)

	created, err := uc.Create(createUserInput("staff@aladdin.example.com", "aladdin", "aladdin_staff", nil))
	require.NoError(t, err)

	// aladdin_staff no gestiona tenants.
	staffActor := &entity.User{ID: 50, UserType: entity.UserTypeAladdin, Role: entity.RoleAladdinStaff, IsActive: true}
	_, err = uc.UpdateRole(staffActor, created.ID, dto.UpdateUserRoleRequest{
		UserType: "supplier", Role: "supplier_admin", SupplierID: &supplierID,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// supplier_admin tampoco, ni siquiera sobre usuarios de su tenant.
	supplierActor := &entity.User{ID: 51, UserType: entity.UserTypeSupplier, Role: entity.RoleSupplierAdmin, SupplierID: &supplierID, IsActive: true}
	_, err = uc.UpdateRole(supplierActor, created.ID, dto.UpdateUserRoleRequest{
		UserType: "supplier", Role: "supplier_staff", SupplierID: &supplierID,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserUpdateRole_ValidaCombinacionResultante(t *testing.T) {
	uc, _, _, supplierID := buildUserUC(t)

	created, err := uc.Create(createUserInput("staff@aladdin.example.com", "aladdin", "aladdin_staff", nil))
	require.NoError(t, err)

	admin := &entity.User{ID: 1, UserType: entity.UserTypeAladdin, Role: entity.RoleSuperAdmin, IsActive: true}

	// Cambio a supplier sin supplier_id: combinación resultante inválida.
	_, err = uc.UpdateRole(admin, created.ID, dto.UpdateUserRoleRequest{
		UserType: "supplier", Role: "supplier_admin",
	})
	assert.ErrorIs(t, err, domain.ErrSupplierIDRequired)

	// Cambio completo y coherente: ok.
	out, err := uc.UpdateRole(admin, created.ID, dto.UpdateUserRoleRequest{
		UserType: "supplier", Role: "supplier_admin", SupplierID: &supplierID,
	})
	require.NoError(t, err)
	assert.Equal(t, "supplier_admin", out.Role)
	require.NotNil(t, out.SupplierID)
	assert.Equal(t, supplierID, *out.SupplierID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados acotados por tenant
// ──────────────────────────────────────────────────────────────────────────────

func TestUserList_SupplierSoloVeSuTenant(t *testing.T) {
	uc, _, supplierRepo, supplierID := buildUserUC(t)

	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	other, err := supplierUC.Create(createSupplierInput("SUP002", "dos@p.example.com"), nil)
	require.NoError(t, err)

	_, err = uc.Create(createUserInput("a@s1.example.com", "supplier", "supplier_admin", &supplierID))
	require.NoError(t, err)
	_, err = uc.Create(createUserInput("b@s2.example.com", "supplier", "supplier_staff", &other.ID))
	require.NoError(t, err)
	_, err = uc.Create(createUserInput("c@aladdin.example.com", "aladdin", "aladdin_staff", nil))
	require.NoError(t, err)

	actor := &entity.User{ID: 99, UserType: entity.UserTypeSupplier, Role: entity.RoleSupplierAdmin, SupplierID: &supplierID, IsActive: true}
	out, err := uc.List(actor, dto.PageRequest{}, false)
	require.NoError(t, err)

	require.Len(t, out, 1, "un actor supplier solo ve los usuarios de su proveedor")
	assert.Equal(t, "a@s1.example.com", out[0].Email)
}

func TestUserDeactivate_Transicion(t *testing.T) {
	uc, _, _, _ := buildUserUC(t)

	created, err := uc.Create(createUserInput("x@aladdin.example.com", "aladdin", "aladdin_staff", nil))
	require.NoError(t, err)

	out, err := uc.Deactivate(created.ID)
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	out, err = uc.Activate(created.ID)
	require.NoError(t, err)
	assert.True(t, out.IsActive)
}
