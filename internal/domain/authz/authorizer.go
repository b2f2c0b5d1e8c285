package authz

import (
	"context"

	"github.com/aladdin-chain/ycms-api/internal/domain/entity"
	"github.com/aladdin-chain/ycms-api/pkg/logger"
)

// Authenticator es el contrato mínimo que necesita el Authorizer para resolver
// credenciales bearer a un snapshot fresco de usuario. Lo implementa
// *auth.AuthUseCase; la interfaz evita acoplar el dominio a la capa de
// aplicación.
//
// Resolve devuelve el usuario aunque esté inactivo (la distinción
// inactivo/no-autenticado la hace el Authorizer); devuelve error para tokens
// ausentes, malformados, expirados o que no resuelven a un usuario.
type Authenticator interface {
	Resolve(ctx context.Context, token string) (*entity.User, error)
}

// Authorizer fachada única de autorización: resuelve la identidad, evalúa la
// tabla de permisos y, si la operación apunta a un proveedor concreto, el
// alcance por tenant. Corta en la primera denegación. Sin estado mutable:
// seguro para uso concurrente.
type Authorizer struct {
	policy *Policy
	auth   Authenticator
	log    *logger.Logger
}

// NewAuthorizer construye la fachada con la tabla inmutable ya cargada.
func NewAuthorizer(policy *Policy, auth Authenticator, log *logger.Logger) *Authorizer {
	return &Authorizer{policy: policy, auth: auth, log: log}
}

// Policy expone la tabla (solo lectura) para listados filtrados por capacidad.
func (a *Authorizer) Policy() *Policy {
	return a.policy
}

// Authorize ejecuta la cadena completa de autorización para una petición:
//
//  1. Resolver credenciales a usuario. Falla -> denegación unauthenticated.
//  2. Usuario inactivo -> denegación inactive (distinta de la anterior).
//  3. Tabla de permisos sobre (rol, recurso, acción).
//  4. Si targetSupplierID no es nil, alcance por tenant.
//
// Toda denegación se audita con actor, rol, recurso, acción y proveedor
// objetivo; es el único efecto observable además del valor de retorno.
func (a *Authorizer) Authorize(ctx context.Context, token string, resource Resource, action Action, targetSupplierID *int64) (*entity.User, Decision) {
	user, err := a.auth.Resolve(ctx, token)
	if err != nil || user == nil {
		a.log.Warn().
			Str("resource", string(resource)).
			Str("action", string(action)).
			Str("reason", string(DenyUnauthenticated)).
			Msg("acceso denegado")
		return nil, Deny(DenyUnauthenticated)
	}

	if !user.IsActive {
		a.auditDenial(user, resource, action, targetSupplierID, DenyInactive)
		return nil, Deny(DenyInactive)
	}

	if !a.policy.Allow(user.Role, resource, action) {
		a.auditDenial(user, resource, action, targetSupplierID, DenyRole)
		return nil, Deny(DenyRole)
	}

	if targetSupplierID != nil && !CanAccessSupplier(user, *targetSupplierID) {
		a.auditDenial(user, resource, action, targetSupplierID, DenyScope)
		return nil, Deny(DenyScope)
	}

	return user, Allow()
}

func (a *Authorizer) auditDenial(u *entity.User, resource Resource, action Action, targetSupplierID *int64, reason DenialReason) {
	ev := a.log.Warn().
		Int64("actor_id", u.ID).
		Str("role", string(u.Role)).
		Str("resource", string(resource)).
		Str("action", string(action)).
		Str("reason", string(reason))
	if targetSupplierID != nil {
		ev = ev.Int64("target_supplier_id", *targetSupplierID)
	}
	ev.Msg("acceso denegado")
}
