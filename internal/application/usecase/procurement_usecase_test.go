package usecase_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aladdin-chain/ycms-api/internal/application/dto"
	"github.com/aladdin-chain/ycms-api/internal/application/usecase"
	"github.com/aladdin-chain/ycms-api/internal/domain"
	"github.com/aladdin-chain/ycms-api/internal/domain/entity"
)

func buildProcurementUC(t *testing.T) (*usecase.ProcurementUseCase, *fakeProcurementRepo, int64) {
	t.Helper()
	procRepo := newFakeProcurementRepo()
	supplierRepo := newFakeSupplierRepo()
	uc := usecase.NewProcurementUseCase(procRepo, supplierRepo)

	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	s, err := supplierUC.Create(createSupplierInput("SUP001", "sup@p.example.com"), nil)
	require.NoError(t, err)
	return uc, procRepo, s.ID
}

func aladdinActor(role entity.Role) *entity.User {
	return &entity.User{ID: 1, UserType: entity.UserTypeAladdin, Role: role, IsActive: true}
}

func supplierActor(role entity.Role, supplierID int64) *entity.User {
	return &entity.User{ID: 2, UserType: entity.UserTypeSupplier, Role: role, SupplierID: &supplierID, IsActive: true}
}

// ──────────────────────────────────────────────────────────────────────────────
// Origen de solicitudes: solo personal de Aladdin
// ──────────────────────────────────────────────────────────────────────────────

func TestProcurementCreate_AladdinStaffPuede(t *testing.T) {
	uc, _, supplierID := buildProcurementUC(t)

	out, err := uc.Create(aladdinActor(entity.RoleAladdinStaff), dto.CreateProcurementRequest{
		SupplierID:  supplierID,
		TotalAmount: decimal.NewFromFloat(1500.50),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProcurementStatusDraft, out.Status)
	assert.True(t, strings.HasPrefix(out.Number, "YCMS-"), "el número generado lleva prefijo YCMS-")
	assert.Len(t, out.Number, len("YCMS-")+8)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromFloat(1500.50)))
}

func TestProcurementCreate_SupplierNoPuedeOriginar(t *testing.T) {
	uc, _, supplierID := buildProcurementUC(t)

	// Ni siquiera el admin del propio proveedor destino.
	_, err := uc.Create(supplierActor(entity.RoleSupplierAdmin, supplierID), dto.CreateProcurementRequest{
		SupplierID:  supplierID,
		TotalAmount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProcurementCreate_ProveedorInexistente(t *testing.T) {
	uc, _, _ := buildProcurementUC(t)

	_, err := uc.Create(aladdinActor(entity.RoleSuperAdmin), dto.CreateProcurementRequest{
		SupplierID:  9999,
		TotalAmount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}

func TestProcurementCreate_NumerosUnicos(t *testing.T) {
	uc, _, supplierID := buildProcurementUC(t)

	first, err := uc.Create(aladdinActor(entity.RoleSuperAdmin), dto.CreateProcurementRequest{SupplierID: supplierID})
	require.NoError(t, err)
	second, err := uc.Create(aladdinActor(entity.RoleSuperAdmin), dto.CreateProcurementRequest{SupplierID: supplierID})
	require.NoError(t, err)

	assert.NotEqual(t, first.Number, second.Number)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura y estado: alcance por tenant sobre la fila
// ──────────────────────────────────────────────────────────────────────────────

func TestProcurementGetByID_OtroTenantFueraDeAlcance(t *testing.T) {
	uc, _, supplierID := buildProcurementUC(t)

	created, err := uc.Create(aladdinActor(entity.RoleSuperAdmin), dto.CreateProcurementRequest{SupplierID: supplierID})
	require.NoError(t, err)

	// Actor de otro proveedor: la capacidad read la tiene, la fila no.
	_, err = uc.GetByID(supplierActor(entity.RoleSupplierAdmin, supplierID+1), created.ID)
	assert.ErrorIs(t, err, domain.ErrSupplierScope)

	// El propio proveedor sí.
	out, err := uc.GetByID(supplierActor(entity.RoleSupplierStaff, supplierID), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)
}

func TestProcurementUpdateStatus_EstadoInvalido(t *testing.T) {
	uc, _, supplierID := buildProcurementUC(t)

	created, err := uc.Create(aladdinActor(entity.RoleSuperAdmin), dto.CreateProcurementRequest{SupplierID: supplierID})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(aladdinActor(entity.RoleSuperAdmin), created.ID, dto.UpdateProcurementStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "estado fuera del vocabulario cerrado")
}

func TestProcurementUpdateStatus_FueraDeAlcance(t *testing.T) {
	uc, _, supplierID := buildProcurementUC(t)

	created, err := uc.Create(aladdinActor(entity.RoleSuperAdmin), dto.CreateProcurementRequest{SupplierID: supplierID})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(supplierActor(entity.RoleSupplierAdmin, supplierID+1), created.ID, dto.UpdateProcurementStatusRequest{Status: entity.ProcurementStatusConfirmed})
	assert.ErrorIs(t, err, domain.ErrSupplierScope)

	out, err := uc.UpdateStatus(supplierActor(entity.RoleSupplierAdmin, supplierID), created.ID, dto.UpdateProcurementStatusRequest{Status: entity.ProcurementStatusConfirmed})
	require.NoError(t, err)
	assert.Equal(t, entity.ProcurementStatusConfirmed, out.Status)
}

func TestProcurementList_SupplierAcotadoASuTenant(t *testing.T) {
	uc, _, supplierID := buildProcurementUC(t)

	_, err := uc.Create(aladdinActor(entity.RoleSuperAdmin), dto.CreateProcurementRequest{SupplierID: supplierID})
	require.NoError(t, err)

	out, err := uc.List(supplierActor(entity.RoleSupplierStaff, supplierID), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out, 1)

	out, err = uc.List(supplierActor(entity.RoleSupplierStaff, supplierID+1), dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, out, "un supplier de otro tenant no ve solicitudes ajenas")
}
