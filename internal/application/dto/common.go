package dto

// ErrorResponse cuerpo de error HTTP. Detalles lista cada regla violada cuando
// el código es VALIDACION (la UI las muestra todas a la vez).
type ErrorResponse struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Detalles []string `json:"detalles,omitempty"`
}
