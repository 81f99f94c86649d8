package movement

import (
	"sync"

	"github.com/usse-dev/almacen-api/internal/domain/entity"
)

// Sessions registra un Builder por sesión de operador. Dos operadores armando
// movimientos a la vez tienen builders totalmente independientes: el estado
// pendiente jamás se comparte entre sesiones.
type Sessions struct {
	mu       sync.Mutex
	cat      entity.Catalogos
	builders map[string]*Builder
}

// NewSessions construye el registro de sesiones.
func NewSessions(cat entity.Catalogos) *Sessions {
	return &Sessions{cat: cat, builders: make(map[string]*Builder)}
}

// Get devuelve el builder de la sesión, creándolo en idle la primera vez.
func (s *Sessions) Get(sessionID string) *Builder {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.builders[sessionID]
	if !ok {
		b = NewBuilder(s.cat)
		s.builders[sessionID] = b
	}
	return b
}

// Drop descarta el builder de una sesión (logout o expiración).
func (s *Sessions) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.builders, sessionID)
}
