package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aladdin-chain/ycms-api/internal/application/dto"
	"github.com/aladdin-chain/ycms-api/internal/domain/authz"
	"github.com/aladdin-chain/ycms-api/internal/domain/entity"
)

// LocalUser key del usuario resuelto en c.Locals (después de los middlewares).
const LocalUser = "current_user"

// bearerToken extrae el token del header Authorization (formato "Bearer <token>").
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Authenticate resuelve el bearer token a un snapshot fresco de usuario y lo
// deja en c.Locals. No evalúa permisos: para rutas que solo requieren
// identidad (perfil propio). Usuario inactivo -> 403, distinto del 401 de
// credenciales inválidas.
func Authenticate(auth authz.Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.Resolve(c.Context(), bearerToken(c))
		if err != nil || user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHENTICATED", Message: "token inválido o expirado",
			})
		}
		if !user.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "INACTIVE_USER", Message: "cuenta inactiva",
			})
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// Authorize ejecuta la fachada de autorización sobre (recurso, acción) sin
// proveedor objetivo. En caso de permiso deja el usuario en c.Locals.
func Authorize(az *authz.Authorizer, resource authz.Resource, action authz.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, decision := az.Authorize(c.Context(), bearerToken(c), resource, action, nil)
		if !decision.Allowed {
			return writeDecision(c, decision)
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// AuthorizeSupplierParam igual que Authorize, pero toma el parámetro de ruta
// :id como proveedor objetivo y añade el control de alcance por tenant.
// Debe usarse solo en rutas donde :id ES un supplier id.
func AuthorizeSupplierParam(az *authz.Authorizer, resource authz.Resource, action authz.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "id inválido",
			})
		}
		target := int64(id)
		user, decision := az.Authorize(c.Context(), bearerToken(c), resource, action, &target)
		if !decision.Allowed {
			return writeDecision(c, decision)
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// CurrentUser devuelve el usuario resuelto del contexto (tras los middlewares).
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// writeDecision traduce una denegación a HTTP. Una violación de alcance se
// responde como 404: para un actor de otro tenant debe ser indistinguible de
// un recurso inexistente.
func writeDecision(c *fiber.Ctx, d authz.Decision) error {
	switch d.Reason {
	case authz.DenyUnauthenticated:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHENTICATED", Message: "token inválido o expirado",
		})
	case authz.DenyInactive:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "INACTIVE_USER", Message: "cuenta inactiva",
		})
	case authz.DenyScope:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso no encontrado",
		})
	default:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "FORBIDDEN", Message: "permisos insuficientes",
		})
	}
}
