package authz

import "github.com/aladdin-chain/ycms-api/internal/domain/entity"

// Resource categoría de objeto de negocio sobre la que se autoriza.
type Resource string

const (
	ResourceUsers               Resource = "users"
	ResourceSuppliers           Resource = "suppliers"
	ResourceProducts            Resource = "products"
	ResourceRestaurants         Resource = "restaurants"
	ResourceProcurementRequests Resource = "procurement_requests"
	ResourceDeliveryNotes       Resource = "delivery_notes"
)

// Action acción CRUD sobre un recurso.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type rule struct {
	role     entity.Role
	resource Resource
	action   Action
}

// Policy tabla estática de permisos (rol, recurso, acción). Se construye una
// sola vez en el arranque y es de solo lectura después: segura para uso
// concurrente sin locks. La ausencia de una tripleta es una denegación, no un
// error.
type Policy struct {
	rules map[rule]struct{}
}

// NewPolicy construye la tabla de permisos de YCMS.
//
// Resumen por rol:
//   - super_admin: acceso total a todo.
//   - aladdin_admin: gestiona master data y YCMS; sobre usuarios solo read/update.
//   - aladdin_staff: crea YCMS, consulta master data, confirma entregas.
//   - supplier_admin: gestiona YCMS y notas de entrega de su proveedor.
//   - supplier_staff: consulta YCMS, actualiza estado de entrega.
func NewPolicy() *Policy {
	p := &Policy{rules: make(map[rule]struct{})}

	allActions := []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete}
	allResources := []Resource{
		ResourceUsers, ResourceSuppliers, ResourceProducts,
		ResourceRestaurants, ResourceProcurementRequests, ResourceDeliveryNotes,
	}

	// super_admin: todo.
	for _, res := range allResources {
		for _, act := range allActions {
			p.add(entity.RoleSuperAdmin, res, act)
		}
	}

	// aladdin_admin: CRUD completo salvo sobre usuarios (solo read/update).
	for _, res := range []Resource{
		ResourceSuppliers, ResourceProducts, ResourceRestaurants,
		ResourceProcurementRequests, ResourceDeliveryNotes,
	} {
		for _, act := range allActions {
			p.add(entity.RoleAladdinAdmin, res, act)
		}
	}
	p.add(entity.RoleAladdinAdmin, ResourceUsers, ActionRead)
	p.add(entity.RoleAladdinAdmin, ResourceUsers, ActionUpdate)

	// aladdin_staff: consulta master data, crea YCMS, confirma entregas.
	p.add(entity.RoleAladdinStaff, ResourceSuppliers, ActionRead)
	p.add(entity.RoleAladdinStaff, ResourceProducts, ActionRead)
	p.add(entity.RoleAladdinStaff, ResourceRestaurants, ActionRead)
	p.add(entity.RoleAladdinStaff, ResourceProcurementRequests, ActionCreate)
	p.add(entity.RoleAladdinStaff, ResourceProcurementRequests, ActionRead)
	p.add(entity.RoleAladdinStaff, ResourceDeliveryNotes, ActionCreate)
	p.add(entity.RoleAladdinStaff, ResourceDeliveryNotes, ActionRead)
	p.add(entity.RoleAladdinStaff, ResourceDeliveryNotes, ActionUpdate)

	// supplier_admin: gestiona YCMS y entregas de su proveedor.
	p.add(entity.RoleSupplierAdmin, ResourceUsers, ActionRead)
	p.add(entity.RoleSupplierAdmin, ResourceProducts, ActionRead)
	p.add(entity.RoleSupplierAdmin, ResourceProcurementRequests, ActionRead)
	p.add(entity.RoleSupplierAdmin, ResourceProcurementRequests, ActionUpdate)
	p.add(entity.RoleSupplierAdmin, ResourceDeliveryNotes, ActionCreate)
	p.add(entity.RoleSupplierAdmin, ResourceDeliveryNotes, ActionRead)
	p.add(entity.RoleSupplierAdmin, ResourceDeliveryNotes, ActionUpdate)

	// supplier_staff: consulta y actualiza estado de entrega.
	p.add(entity.RoleSupplierStaff, ResourceProducts, ActionRead)
	p.add(entity.RoleSupplierStaff, ResourceProcurementRequests, ActionRead)
	p.add(entity.RoleSupplierStaff, ResourceDeliveryNotes, ActionRead)
	p.add(entity.RoleSupplierStaff, ResourceDeliveryNotes, ActionUpdate)

	return p
}

func (p *Policy) add(role entity.Role, res Resource, act Action) {
	p.rules[rule{role: role, resource: res, action: act}] = struct{}{}
}

// Allow responde si la tripleta (rol, recurso, acción) está permitida.
// Búsqueda exacta: sin wildcards y sin jerarquía entre acciones (update no
// implica read). Una combinación desconocida devuelve false, nunca error.
func (p *Policy) Allow(role entity.Role, resource Resource, action Action) bool {
	_, ok := p.rules[rule{role: role, resource: resource, action: action}]
	return ok
}

// Len cantidad de reglas cargadas (para logging en el arranque).
func (p *Policy) Len() int {
	return len(p.rules)
}
