package model

import "time"

type RegisterUserRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=100"`
	Phone    string `json:"phone" validate:"required,max=20"`
	Address  string `json:"address" validate:"max=255"`
}

type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

type GetUserRequest struct {
	ID string `json:"id" validate:"required,max=100"`
}

type UpdateUserRequest struct {
	ID       string `json:"-" validate:"required,max=100"`
	FullName string `json:"full_name,omitempty" validate:"max=100"`
	Phone    string `json:"phone,omitempty" validate:"max=20"`
	Address  string `json:"address,omitempty" validate:"max=255"`
}

type ChangePasswordRequest struct {
	ID          string `json:"-" validate:"required,max=100"`
	OldPassword string `json:"old_password" validate:"required,max=100"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=100"`
}

type RegisterEwalletRequest struct {
	UserID   string `json:"-" validate:"required,max=100"`
	Provider string `json:"provider" validate:"required,oneof=dana ovo gopay"`
	Account  string `json:"account" validate:"required,max=100"`
}

type SetUserActiveRequest struct {
	UserID   string `json:"-" validate:"required,max=100"`
	AdminID  string `json:"-" validate:"required,max=100"`
	IsActive bool   `json:"is_active"`
	Reason   string `json:"reason" validate:"required,max=255"`
}

type UserResponse struct {
	ID        string            `json:"id"`
	FullName  string            `json:"full_name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone,omitempty"`
	Address   string            `json:"address,omitempty"`
	Role      string            `json:"role"`
	IsActive  bool              `json:"is_active"`
	Ewallets  map[string]string `json:"ewallets"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt *time.Time        `json:"updated_at,omitempty"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// Auth is the identity extracted from the bearer token by the middleware.
type Auth struct {
	UserID   string
	FullName string
	Email    string
	Role     string
}
