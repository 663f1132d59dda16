package entity

import "time"

// User representa una cuenta de cliente. Nace inactiva con un código de
// confirmación de 6 dígitos válido por 10 minutos; confirmarla limpia el
// código y la expiración. No hay transición de vuelta a pendiente.
type User struct {
	ID                  string
	Name                string
	LastName            string
	Email               string
	PasswordHash        string // bcrypt, nunca plano después de persistir
	IsActive            bool
	ConfirmationCode    string     // vacío una vez confirmada
	ConfirmationExpires *time.Time // nil una vez confirmada
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
