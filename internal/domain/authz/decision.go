package authz

import "github.com/aladdin-chain/ycms-api/internal/domain"

// DenialReason motivo de una denegación de autorización.
type DenialReason string

const (
	DenyUnauthenticated DenialReason = "unauthenticated"
	DenyInactive        DenialReason = "inactive_user"
	DenyRole            DenialReason = "insufficient_role_permission"
	DenyScope           DenialReason = "supplier_scope_violation"
)

// Decision resultado de una evaluación de autorización. Se usa un tipo de
// resultado explícito en lugar de errores lanzados desde helpers: la capa de
// transporte decide cómo traducir una denegación a HTTP.
type Decision struct {
	Allowed bool
	Reason  DenialReason
}

// Allow decisión afirmativa.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny decisión negativa con motivo.
func Deny(reason DenialReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Err traduce la denegación al error centinela de dominio correspondiente.
// Una decisión afirmativa devuelve nil.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case DenyUnauthenticated:
		return domain.ErrUnauthenticated
	case DenyInactive:
		return domain.ErrInactiveUser
	case DenyScope:
		return domain.ErrSupplierScope
	default:
		return domain.ErrForbidden
	}
}
