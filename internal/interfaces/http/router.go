package http

import (
	"github.com/gofiber/fiber/v2"

	appauth "github.com/aladdin-chain/ycms-api/internal/application/auth"
	"github.com/aladdin-chain/ycms-api/internal/application/usecase"
	"github.com/aladdin-chain/ycms-api/internal/domain/authz"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *appauth.AuthUseCase
	UserUC        *usecase.UserUseCase
	SupplierUC    *usecase.SupplierUseCase
	ProcurementUC *usecase.ProcurementUseCase
	DeliveryUC    *usecase.DeliveryUseCase
	Authorizer    *authz.Authorizer
}

// Router registra las rutas de la API. Cada ruta protegida declara el par
// (recurso, acción) que evalúa la fachada de autorización; las rutas de
// proveedor por :id pasan además el id como proveedor objetivo para el
// control de alcance por tenant.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")
	az := deps.Authorizer

	// Auth: login público, perfil propio solo con identidad (sin tabla de
	// permisos: cualquier usuario activo puede ver y editar su perfil).
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", Authenticate(deps.AuthUC), authHandler.Me)
	authGroup.Put("/me", Authenticate(deps.AuthUC), authHandler.UpdateMe)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", Authorize(az, authz.ResourceUsers, authz.ActionCreate), userHandler.Create)
	users.Get("/", Authorize(az, authz.ResourceUsers, authz.ActionRead), userHandler.List)
	users.Get("/:id", Authorize(az, authz.ResourceUsers, authz.ActionRead), userHandler.GetByID)
	users.Put("/:id/role", Authorize(az, authz.ResourceUsers, authz.ActionUpdate), userHandler.UpdateRole)
	users.Post("/:id/activate", Authorize(az, authz.ResourceUsers, authz.ActionUpdate), userHandler.Activate)
	users.Post("/:id/deactivate", Authorize(az, authz.ResourceUsers, authz.ActionUpdate), userHandler.Deactivate)

	// Suppliers: las rutas por :id llevan el guard de tenant sobre ese id.
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", Authorize(az, authz.ResourceSuppliers, authz.ActionCreate), supplierHandler.Create)
	suppliers.Get("/", Authorize(az, authz.ResourceSuppliers, authz.ActionRead), supplierHandler.List)
	suppliers.Get("/code/:code", Authorize(az, authz.ResourceSuppliers, authz.ActionRead), supplierHandler.GetByCode)
	suppliers.Get("/:id", AuthorizeSupplierParam(az, authz.ResourceSuppliers, authz.ActionRead), supplierHandler.GetByID)
	suppliers.Put("/:id", AuthorizeSupplierParam(az, authz.ResourceSuppliers, authz.ActionUpdate), supplierHandler.Update)
	suppliers.Delete("/:id", AuthorizeSupplierParam(az, authz.ResourceSuppliers, authz.ActionDelete), supplierHandler.Delete)
	suppliers.Post("/:id/activate", AuthorizeSupplierParam(az, authz.ResourceSuppliers, authz.ActionUpdate), supplierHandler.Activate)
	suppliers.Post("/:id/deactivate", AuthorizeSupplierParam(az, authz.ResourceSuppliers, authz.ActionUpdate), supplierHandler.Deactivate)

	// Procurement requests: el alcance por fila se verifica en el caso de uso
	// (el :id aquí es un id de solicitud, no de proveedor).
	procurement := api.Group("/procurement-requests")
	procurementHandler := NewProcurementHandler(deps.ProcurementUC)
	procurement.Post("/", Authorize(az, authz.ResourceProcurementRequests, authz.ActionCreate), procurementHandler.Create)
	procurement.Get("/", Authorize(az, authz.ResourceProcurementRequests, authz.ActionRead), procurementHandler.List)
	procurement.Get("/:id", Authorize(az, authz.ResourceProcurementRequests, authz.ActionRead), procurementHandler.GetByID)
	procurement.Put("/:id/status", Authorize(az, authz.ResourceProcurementRequests, authz.ActionUpdate), procurementHandler.UpdateStatus)

	// Delivery notes: mismo esquema que procurement.
	delivery := api.Group("/delivery-notes")
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	delivery.Post("/", Authorize(az, authz.ResourceDeliveryNotes, authz.ActionCreate), deliveryHandler.Create)
	delivery.Get("/", Authorize(az, authz.ResourceDeliveryNotes, authz.ActionRead), deliveryHandler.List)
	delivery.Get("/:id", Authorize(az, authz.ResourceDeliveryNotes, authz.ActionRead), deliveryHandler.GetByID)
	delivery.Put("/:id/status", Authorize(az, authz.ResourceDeliveryNotes, authz.ActionUpdate), deliveryHandler.UpdateStatus)
}
