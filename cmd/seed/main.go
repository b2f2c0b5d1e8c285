package main

import (
	"context"
	"strings"
	"time"

	appauth "github.com/aladdin-chain/ycms-api/internal/application/auth"
	"github.com/aladdin-chain/ycms-api/internal/domain/entity"
	"github.com/aladdin-chain/ycms-api/internal/infrastructure/postgres"
	"github.com/aladdin-chain/ycms-api/pkg/config"
	"github.com/aladdin-chain/ycms-api/pkg/logger"
)

// Seed inicial: crea el super admin (credenciales de SEED_ADMIN_EMAIL /
// SEED_ADMIN_PASSWORD) y un proveedor de demostración si no existen.
// Idempotente: re-ejecutarlo no duplica registros.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if cfg.Seed.AdminPassword == "" {
		log.Fatal().Msg("SEED_ADMIN_PASSWORD es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)

	email := strings.ToLower(strings.TrimSpace(cfg.Seed.AdminEmail))
	existing, err := userRepo.GetByEmail(email)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar super admin")
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("super admin ya existe, nada que hacer")
	} else {
		hash, err := appauth.HashPassword(cfg.Seed.AdminPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		now := time.Now()
		admin := &entity.User{
			Email:        email,
			PasswordHash: hash,
			UserType:     entity.UserTypeAladdin,
			Role:         entity.RoleSuperAdmin,
			FirstName:    "Super",
			LastName:     "Admin",
			IsActive:     true,
			IsVerified:   true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := admin.Validate(); err != nil {
			log.Fatal().Err(err).Msg("validar super admin")
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("crear super admin")
		}
		log.Info().Int64("id", admin.ID).Str("email", email).Msg("super admin creado")
	}

	demoCode := entity.NormalizeSupplierCode("SUP-DEMO-001")
	demo, err := supplierRepo.GetByCode(demoCode)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar proveedor demo")
	}
	if demo != nil {
		log.Info().Str("code", demoCode).Msg("proveedor demo ya existe, nada que hacer")
		return
	}

	now := time.Now()
	supplier := &entity.Supplier{
		Code:      demoCode,
		Name:      "Proveedor Demo",
		Email:     "demo-supplier@aladdin.example.com",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := supplier.Validate(); err != nil {
		log.Fatal().Err(err).Msg("validar proveedor demo")
	}
	if err := supplierRepo.Create(supplier); err != nil {
		log.Fatal().Err(err).Msg("crear proveedor demo")
	}
	log.Info().Int64("id", supplier.ID).Str("code", supplier.Code).Msg("proveedor demo creado")
}
