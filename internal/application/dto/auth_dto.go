package dto

import "time"

// RegisterRequest datos de registro de usuario.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse perfil expuesto por la API (nunca incluye el hash).
type UserResponse struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LoginResponse token emitido más el perfil.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
