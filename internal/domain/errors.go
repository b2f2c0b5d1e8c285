package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Las variantes de denegación son terminales: quien las recibe debe cortar el
// procesamiento y devolverlas sin degradar ni reintentar.
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrSupplierNotFound = errors.New("proveedor no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")

	// Autenticación y autorización.
	ErrUnauthenticated = errors.New("credenciales ausentes, inválidas o expiradas")
	ErrInactiveUser    = errors.New("usuario inactivo")
	ErrForbidden       = errors.New("permisos insuficientes para el rol")
	ErrSupplierScope   = errors.New("fuera del alcance del proveedor")

	// Conflictos del modelo de datos.
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")
	ErrCodeAlreadyExists    = errors.New("el código de proveedor ya existe")
	ErrTaxCodeAlreadyExists = errors.New("el código fiscal ya existe")
	ErrRoleTypeMismatch     = errors.New("rol incompatible con el tipo de usuario")
	ErrSupplierIDRequired   = errors.New("supplier_id es obligatorio para usuarios de tipo supplier")
	ErrSupplierIDNotAllowed = errors.New("supplier_id debe ser nulo para usuarios de tipo aladdin")
	ErrSupplierDeleted      = errors.New("el proveedor ya fue eliminado")
	ErrSupplierHasUsers     = errors.New("el proveedor tiene usuarios activos asociados")
	ErrInvalidSupplierCode  = errors.New("código de proveedor inválido")
	ErrConflict             = errors.New("conflicto con el estado actual")
)
