package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aladdin-chain/ycms-api/internal/domain"
	"github.com/aladdin-chain/ycms-api/internal/domain/entity"
	"github.com/aladdin-chain/ycms-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, code, name, name_en, tax_code, email, phone, address,
	contact_person, contact_phone, contact_email, description, is_active,
	is_deleted, deleted_at, deleted_by, created_by, updated_by, created_at, updated_at`

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

// Create persiste un nuevo proveedor y asigna el ID generado.
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (code, name, name_en, tax_code, email, phone, address,
			contact_person, contact_phone, contact_email, description, is_active,
			created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		s.Code, s.Name, s.NameEN, s.TaxCode, s.Email, s.Phone, s.Address,
		s.ContactPerson, s.ContactPhone, s.ContactEmail, s.Description, s.IsActive,
		s.CreatedBy, s.UpdatedBy, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeAlreadyExists
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID, incluyendo tombstones.
func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	return r.queryOne(query, id)
}

// GetByCode obtiene un proveedor por código, excluyendo eliminados.
func (r *SupplierRepo) GetByCode(code string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE code = $1 AND NOT is_deleted`
	return r.queryOne(query, code)
}

// Update actualiza un proveedor.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	query := `
		UPDATE suppliers SET code = $2, name = $3, name_en = $4, tax_code = $5, email = $6,
			phone = $7, address = $8, contact_person = $9, contact_phone = $10,
			contact_email = $11, description = $12, is_active = $13, updated_by = $14,
			updated_at = $15
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		s.ID, s.Code, s.Name, s.NameEN, s.TaxCode, s.Email,
		s.Phone, s.Address, s.ContactPerson, s.ContactPhone,
		s.ContactEmail, s.Description, s.IsActive, s.UpdatedBy, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeAlreadyExists
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// List lista proveedores no eliminados con paginación.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE NOT is_deleted
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryMany(query, limit, offset)
}

// ListActive lista proveedores activos no eliminados con paginación.
func (r *SupplierRepo) ListActive(limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE NOT is_deleted AND is_active
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryMany(query, limit, offset)
}

// ExistsByCode verifica si otro proveedor no eliminado (distinto de excludeID)
// usa el código. Los tombstones liberan su código.
func (r *SupplierRepo) ExistsByCode(code string, excludeID int64) (bool, error) {
	return r.exists(`SELECT EXISTS(SELECT 1 FROM suppliers WHERE code = $1 AND id <> $2 AND NOT is_deleted)`, code, excludeID)
}

// ExistsByEmail verifica si otro proveedor no eliminado (distinto de excludeID) usa el email.
func (r *SupplierRepo) ExistsByEmail(email string, excludeID int64) (bool, error) {
	return r.exists(`SELECT EXISTS(SELECT 1 FROM suppliers WHERE email = $1 AND id <> $2 AND NOT is_deleted)`, email, excludeID)
}

// ExistsByTaxCode verifica si otro proveedor no eliminado (distinto de excludeID) usa el código fiscal.
func (r *SupplierRepo) ExistsByTaxCode(taxCode string, excludeID int64) (bool, error) {
	return r.exists(`SELECT EXISTS(SELECT 1 FROM suppliers WHERE tax_code = $1 AND id <> $2 AND NOT is_deleted)`, taxCode, excludeID)
}

// HasActiveUsers predicado de la guarda de borrado: usuarios supplier activos
// que referencian este proveedor.
func (r *SupplierRepo) HasActiveUsers(supplierID int64) (bool, error) {
	return r.exists(
		`SELECT EXISTS(SELECT 1 FROM users WHERE supplier_id = $1 AND user_type = 'supplier' AND is_active)`,
		supplierID,
	)
}

// SoftDelete marca el proveedor como eliminado (tombstone), nunca borra la fila.
func (r *SupplierRepo) SoftDelete(id int64, deletedBy *int64, deletedAt time.Time) error {
	query := `
		UPDATE suppliers SET is_deleted = TRUE, deleted_at = $2, deleted_by = $3,
			is_active = FALSE, updated_at = $2
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, id, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("soft delete supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) exists(query string, args ...any) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(context.Background(), query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists supplier: %w", err)
	}
	return exists, nil
}

func (r *SupplierRepo) queryOne(query string, args ...any) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.Code, &s.Name, &s.NameEN, &s.TaxCode, &s.Email, &s.Phone, &s.Address,
		&s.ContactPerson, &s.ContactPhone, &s.ContactEmail, &s.Description, &s.IsActive,
		&s.IsDeleted, &s.DeletedAt, &s.DeletedBy, &s.CreatedBy, &s.UpdatedBy,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepo) queryMany(query string, args ...any) ([]*entity.Supplier, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(
			&s.ID, &s.Code, &s.Name, &s.NameEN, &s.TaxCode, &s.Email, &s.Phone, &s.Address,
			&s.ContactPerson, &s.ContactPhone, &s.ContactEmail, &s.Description, &s.IsActive,
			&s.IsDeleted, &s.DeletedAt, &s.DeletedBy, &s.CreatedBy, &s.UpdatedBy,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
