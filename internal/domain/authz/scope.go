package authz

import "github.com/aladdin-chain/ycms-api/internal/domain/entity"

// CanAccessSupplier responde si el usuario puede acceder a datos del proveedor
// indicado. Es ortogonal a la tabla de permisos: un rol puede tener la
// capacidad (por ejemplo update sobre procurement_requests) y aun así ser
// denegado sobre una fila concreta de otro proveedor. Las reglas se evalúan
// en este orden fijo, gana la primera que aplique:
//
//  1. super_admin y aladdin_admin: acceso global.
//  2. usuarios de tipo supplier: solo su propio proveedor, sin importar si
//     son admin o staff dentro del tenant.
//  3. aladdin_staff: visibilidad global de lectura (regla de negocio
//     confirmada; ver check de acceso a proveedores del producto).
//  4. todo lo demás: denegado.
func CanAccessSupplier(u *entity.User, supplierID int64) bool {
	if u.Role == entity.RoleSuperAdmin || u.Role == entity.RoleAladdinAdmin {
		return true
	}

	if u.UserType == entity.UserTypeSupplier {
		return u.SupplierID != nil && *u.SupplierID == supplierID
	}

	if u.Role == entity.RoleAladdinStaff {
		return true
	}

	return false
}
