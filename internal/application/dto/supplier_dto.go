package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Code          string  `json:"code" validate:"required,min=4,max=50"`
	Name          string  `json:"name" validate:"required,min=1,max=200"`
	NameEN        string  `json:"name_en" validate:"omitempty,max=200"`
	TaxCode       *string `json:"tax_code" validate:"omitempty,max=50"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone" validate:"omitempty,max=20"`
	Address       string  `json:"address" validate:"omitempty"`
	ContactPerson string  `json:"contact_person" validate:"omitempty,max=100"`
	ContactPhone  string  `json:"contact_phone" validate:"omitempty,max=20"`
	ContactEmail  string  `json:"contact_email" validate:"omitempty,email"`
	Description   string  `json:"description" validate:"omitempty"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor (campos opcionales).
type UpdateSupplierRequest struct {
	Code          *string `json:"code" validate:"omitempty,min=4,max=50"`
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	NameEN        *string `json:"name_en" validate:"omitempty,max=200"`
	TaxCode       *string `json:"tax_code" validate:"omitempty,max=50"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone" validate:"omitempty,max=20"`
	Address       *string `json:"address" validate:"omitempty"`
	ContactPerson *string `json:"contact_person" validate:"omitempty,max=100"`
	ContactPhone  *string `json:"contact_phone" validate:"omitempty,max=20"`
	ContactEmail  *string `json:"contact_email" validate:"omitempty,email"`
	Description   *string `json:"description" validate:"omitempty"`
	IsActive      *bool   `json:"is_active"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID            int64      `json:"id"`
	Code          string     `json:"code"`
	Name          string     `json:"name"`
	NameEN        string     `json:"name_en,omitempty"`
	TaxCode       *string    `json:"tax_code,omitempty"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	Address       string     `json:"address,omitempty"`
	ContactPerson string     `json:"contact_person,omitempty"`
	ContactPhone  string     `json:"contact_phone,omitempty"`
	ContactEmail  string     `json:"contact_email,omitempty"`
	Description   string     `json:"description,omitempty"`
	IsActive      bool       `json:"is_active"`
	IsDeleted     bool       `json:"is_deleted"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
