package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/usse-dev/almacen-api/internal/application/dto"
	"github.com/usse-dev/almacen-api/internal/application/project"
	"github.com/usse-dev/almacen-api/pkg/validator"
)

// ProyectoHandler maneja las peticiones HTTP de proyectos (protegido).
type ProyectoHandler struct {
	uc *project.UseCase
}

// NewProyectoHandler construye el handler.
func NewProyectoHandler(uc *project.UseCase) *ProyectoHandler {
	return &ProyectoHandler{uc: uc}
}

// Crear godoc
// @Summary      Registrar proyecto
// @Tags         proyectos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProyectoRequest  true  "Datos del proyecto"
// @Success      201   {object}  dto.ProyectoResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/proyectos [post]
func (h *ProyectoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProyectoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	if detalles := validator.ValidateStruct(in); detalles != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "petición inválida", Detalles: detalles})
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar proyectos
// @Tags         proyectos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProyectoResponse
// @Router       /api/proyectos [get]
func (h *ProyectoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
