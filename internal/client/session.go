package client

import (
	"context"
	"sync"
)

// UserType es el rol de la sesión activa.
type UserType string

const (
	UserTypeNone   UserType = "none"
	UserTypeTenant UserType = "tenant"
	UserTypeOwner  UserType = "owner"
)

// Session es la única verdad sobre quién usa la app en este momento.
// Invariante: UserID distinto de cero si y solo si UserType no es none.
type Session struct {
	UserID   int64
	UserType UserType
}

// Authenticated reporta si hay un usuario logueado.
func (s Session) Authenticated() bool {
	return s.UserType != UserTypeNone
}

// SessionState guarda la sesión en memoria y notifica cambios de forma
// síncrona. Cada Set incrementa una generación monotónica que los fetches
// en vuelo usan para descartar respuestas viejas.
//
// No hay transición de vuelta a none: el proceso asume una sesión por
// ejecución, igual que la página original asumía una por carga.
type SessionState struct {
	mu       sync.Mutex
	current  Session
	gen      uint64
	onChange func(ctx context.Context, s Session, gen uint64)
}

// NewSessionState arranca en {none, none}, generación cero.
func NewSessionState() *SessionState {
	return &SessionState{
		current: Session{UserType: UserTypeNone},
	}
}

// Current devuelve la sesión vigente.
func (s *SessionState) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Generation devuelve la generación vigente.
func (s *SessionState) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// OnChange registra el único observador; se invoca sincrónicamente dentro
// de Set, después de aplicar la mutación.
func (s *SessionState) OnChange(fn func(ctx context.Context, sess Session, gen uint64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Set aplica el resultado de una autenticación exitosa. Solo se llama con
// tenant u owner; cualquier otro rol se ignora y la sesión queda intacta.
func (s *SessionState) Set(ctx context.Context, userID int64, userType UserType) {
	if userType != UserTypeTenant && userType != UserTypeOwner {
		return
	}
	s.mu.Lock()
	s.current = Session{UserID: userID, UserType: userType}
	s.gen++
	sess, gen, fn := s.current, s.gen, s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(ctx, sess, gen)
	}
}
