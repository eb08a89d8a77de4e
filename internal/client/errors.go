package client

// Cada operación del gateway falla con su propio tipo, siempre cargando el
// mensaje que mandó el servidor. Los llamadores nunca miran códigos HTTP:
// el tipo del error ya dice qué operación falló y el mensaje es mostrable
// tal cual al usuario.

type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

type RegistrationError struct {
	Message string
}

func (e *RegistrationError) Error() string { return e.Message }

type LikeError struct {
	Message string
}

func (e *LikeError) Error() string { return e.Message }

type DashboardError struct {
	Message string
}

func (e *DashboardError) Error() string { return e.Message }
