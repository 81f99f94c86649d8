package dto

// CrearProyectoRequest body para POST /api/proyectos. Los tres campos son
// obligatorios en el formulario de gestión.
type CrearProyectoRequest struct {
	CC         int    `json:"c_c" validate:"required,min=1"`
	NombreObra string `json:"nombre_obra" validate:"required"`
	Encargado  string `json:"encargado" validate:"required"`
}

// ProyectoResponse proyecto con su centro de costo.
type ProyectoResponse struct {
	ID         string `json:"id"`
	CC         int    `json:"c_c"`
	NombreObra string `json:"nombre_obra"`
	Encargado  string `json:"encargado"`
}
