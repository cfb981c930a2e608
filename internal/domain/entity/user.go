package entity

import "time"

// Roles válidos para UserProfile.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// UserProfile perfil de usuario del sistema. Role es la única señal de
// autorización y se lee del mismo almacén donde el usuario escribe: es
// consultivo, no una frontera de seguridad.
type UserProfile struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"displayName"`
	Role         string    `json:"role"` // admin | user
	PasswordHash string    `json:"-"`    // bcrypt hash, nunca sale del backend
	CreatedAt    time.Time `json:"createdAt"`
}
