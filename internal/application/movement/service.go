package movement

import "context"

// Service orquesta el builder por sesión y el aplicador transaccional.
// Es la fachada que consume la capa HTTP.
type Service struct {
	sessions *Sessions
	apply    *ApplyUseCase
}

// NewService construye el servicio.
func NewService(sessions *Sessions, apply *ApplyUseCase) *Service {
	return &Service{sessions: sessions, apply: apply}
}

// Iniciar abre el movimiento pendiente de la sesión.
func (s *Service) Iniciar(sessionID string, proyectoID *string, tipo, observaciones string) error {
	return s.sessions.Get(sessionID).Iniciar(proyectoID, tipo, observaciones)
}

// AgregarLinea anexa una línea validada al movimiento pendiente de la sesión.
func (s *Service) AgregarLinea(sessionID string, spec LineaSpec) error {
	return s.sessions.Get(sessionID).AgregarLinea(spec)
}

// EliminarLinea descarta una línea por posición.
func (s *Service) EliminarLinea(sessionID string, i int) error {
	return s.sessions.Get(sessionID).EliminarLinea(i)
}

// Cancelar descarta el movimiento pendiente.
func (s *Service) Cancelar(sessionID string) error {
	return s.sessions.Get(sessionID).Cancelar()
}

// Pendiente devuelve el estado del builder de la sesión para re-render de la UI.
func (s *Service) Pendiente(sessionID string) (tipo string, lineas []LineaSpec, abierto bool) {
	return s.sessions.Get(sessionID).Pendiente()
}

// Finalizar emite el lote y lo aplica atómicamente. Si la aplicación falla
// (fallo de almacenamiento, stock insuficiente, referencia desaparecida) el
// estado pendiente se restaura intacto para que el operador reintente sin
// volver a capturar las líneas.
func (s *Service) Finalizar(ctx context.Context, sessionID string) (string, error) {
	b := s.sessions.Get(sessionID)
	lote, err := b.Finalizar()
	if err != nil {
		return "", err
	}
	movID, err := s.apply.Aplicar(ctx, lote)
	if err != nil {
		if restoreErr := b.Restaurar(lote); restoreErr != nil {
			// El builder ya fue reabierto por otra petición de la sesión;
			// se pierde la restauración pero no la consistencia del ledger.
			return "", err
		}
		return "", err
	}
	return movID, nil
}
