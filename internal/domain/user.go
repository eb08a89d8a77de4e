package domain

// Tipos de usuario aceptados por el registro.
const (
	UserTypeTenant = "tenant"
	UserTypeOwner  = "owner"
)

type User struct {
	ID           int64  `json:"user_id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	UserType     string `json:"user_type"`
}

// ValidUserType reporta si el valor corresponde a un rol registrable.
func ValidUserType(t string) bool {
	return t == UserTypeTenant || t == UserTypeOwner
}
