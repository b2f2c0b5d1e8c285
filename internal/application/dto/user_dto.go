package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	UserType    string `json:"user_type" validate:"required,oneof=aladdin supplier"`
	Role        string `json:"role" validate:"required,oneof=super_admin aladdin_admin aladdin_staff supplier_admin supplier_staff"`
	FirstName   string `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string `json:"last_name" validate:"required,min=1,max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	SupplierID  *int64 `json:"supplier_id" validate:"omitempty"`
}

// UpdateProfileRequest entrada para actualizar el perfil propio.
type UpdateProfileRequest struct {
	FirstName   string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName    string `json:"last_name" validate:"omitempty,min=1,max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
}

// UpdateUserRoleRequest entrada para cambiar rol/tipo/proveedor de un usuario.
// Solo un actor con capacidad de gestión global puede usarla; la combinación
// resultante se vuelve a validar completa.
type UpdateUserRoleRequest struct {
	UserType   string `json:"user_type" validate:"required,oneof=aladdin supplier"`
	Role       string `json:"role" validate:"required,oneof=super_admin aladdin_admin aladdin_staff supplier_admin supplier_staff"`
	SupplierID *int64 `json:"supplier_id" validate:"omitempty"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	UserType    string    `json:"user_type"`
	Role        string    `json:"role"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	SupplierID  *int64    `json:"supplier_id,omitempty"`
	IsActive    bool      `json:"is_active"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
