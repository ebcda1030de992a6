package entity

import (
	"strings"
	"time"
)

// Roles válidos para User.
const (
	RoleManager  = "manager"  // encargado: realiza y consulta pedidos
	RoleWorker   = "worker"   // trabajador: solo lectura del catálogo
	RoleSupplier = "supplier" // comercial: gestiona el catálogo de productos
)

// MinPasswordLength longitud mínima de la contraseña en texto plano.
const MinPasswordLength = 8

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string // único, sensible a mayúsculas
	PasswordHash string // bcrypt; nunca texto plano después de persistir
	Role         string
	Image        string // URL del avatar (opcional)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole indica si role pertenece a la enumeración cerrada de roles.
func ValidRole(role string) bool {
	switch role {
	case RoleManager, RoleWorker, RoleSupplier:
		return true
	}
	return false
}

// Normalize recorta nombre y email y aplica el rol por defecto.
func (u *User) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)
	if u.Role == "" {
		u.Role = RoleWorker
	}
}
