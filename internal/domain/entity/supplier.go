package entity

import (
	"strings"
	"time"

	"github.com/aladdin-chain/ycms-api/internal/domain"
)

// SupplierCodePrefix prefijo obligatorio del código de proveedor (VD: SUP001).
const SupplierCodePrefix = "SUP"

// SoftDelete estado de borrado lógico. El registro nunca se elimina
// físicamente: se marca como tombstone preservando la historia referencial.
type SoftDelete struct {
	IsDeleted bool
	DeletedAt *time.Time
	DeletedBy *int64
}

// Audit metadatos de auditoría de escritura.
type Audit struct {
	CreatedBy *int64
	UpdatedBy *int64
}

// Supplier representa un proveedor (nhà cung cấp) del sistema YCMS.
// Un Supplier es dueño de cero o más Users vía User.SupplierID; esa relación
// es la que inspecciona el control de alcance por tenant.
type Supplier struct {
	ID            int64
	Code          string // único, mayúsculas, prefijo SUP
	Name          string
	NameEN        string
	TaxCode       *string // único si está presente
	Email         string  // único
	Phone         string
	Address       string
	ContactPerson string
	ContactPhone  string
	ContactEmail  string
	Description   string
	IsActive      bool
	SoftDelete
	Audit
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeSupplierCode normaliza un código de proveedor: sin espacios y en
// mayúsculas. La normalización ocurre antes de validar y de persistir.
func NormalizeSupplierCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate verifica las reglas del proveedor sobre campos ya normalizados.
func (s *Supplier) Validate() error {
	if s.Code == "" || !strings.HasPrefix(s.Code, SupplierCodePrefix) {
		return domain.ErrInvalidSupplierCode
	}
	if s.Name == "" || s.Email == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// DisplayName nombre para mostrar con el código.
func (s *Supplier) DisplayName() string {
	return "[" + s.Code + "] " + s.Name
}

// CanBeDeleted evalúa la guarda de borrado. hasActiveUsers lo responde el
// almacén de identidad (usuarios supplier activos que referencian este
// proveedor). Repetir la llamada sobre un proveedor ya eliminado devuelve el
// mismo rechazo, nunca un estado distinto.
func (s *Supplier) CanBeDeleted(hasActiveUsers bool) error {
	if s.IsDeleted {
		return domain.ErrSupplierDeleted
	}
	if hasActiveUsers {
		return domain.ErrSupplierHasUsers
	}
	return nil
}

// MarkDeleted aplica el tombstone con el actor y el instante del borrado.
func (s *Supplier) MarkDeleted(deletedBy *int64, now time.Time) {
	s.IsDeleted = true
	s.DeletedAt = &now
	s.DeletedBy = deletedBy
	s.IsActive = false
	s.UpdatedAt = now
}
