package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/usse-dev/almacen-api/internal/application/dto"
	"github.com/usse-dev/almacen-api/internal/application/movement"
	"github.com/usse-dev/almacen-api/pkg/validator"
)

// MovimientoHandler maneja el builder de movimientos de la sesión y su
// finalización atómica (protegido). Cada sesión de operador tiene a lo sumo un
// movimiento pendiente, seleccionado por el session_id del token.
type MovimientoHandler struct {
	svc *movement.Service
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(svc *movement.Service) *MovimientoHandler {
	return &MovimientoHandler{svc: svc}
}

// Iniciar godoc
// @Summary      Abrir un movimiento pendiente
// @Tags         builder
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IniciarMovimientoRequest  true  "Cabecera del movimiento"
// @Success      201   {object}  dto.BuilderEstadoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos/builder/iniciar [post]
func (h *MovimientoHandler) Iniciar(c *fiber.Ctx) error {
	var in dto.IniciarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	if detalles := validator.ValidateStruct(in); detalles != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "petición inválida", Detalles: detalles})
	}
	sessionID := GetSessionID(c)
	if err := h.svc.Iniciar(sessionID, in.ProyectoID, in.Tipo, in.Observaciones); err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.estado(sessionID))
}

// AgregarLinea godoc
// @Summary      Anexar una línea al movimiento pendiente
// @Tags         builder
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AgregarLineaRequest  true  "Línea del movimiento"
// @Success      201   {object}  dto.BuilderEstadoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movimientos/builder/lineas [post]
func (h *MovimientoHandler) AgregarLinea(c *fiber.Ctx) error {
	var in dto.AgregarLineaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	sessionID := GetSessionID(c)
	spec := movement.LineaSpec{
		EsArticuloNuevo: in.EsArticuloNuevo,
		NombreArticulo:  in.NombreArticulo,
		TipoArticulo:    in.TipoArticulo,
		Categoria:       in.Categoria,
		UnidadMedida:    in.UnidadMedida,
		PrecioUnitario:  in.PrecioUnitario,
		StockMinimo:     in.StockMinimo,
		EsCable:         in.EsCable,
		Cantidad:        in.Cantidad,
		NombrePunta:     in.NombrePunta,
		Longitud:        in.Longitud,
	}
	if err := h.svc.AgregarLinea(sessionID, spec); err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.estado(sessionID))
}

// EliminarLinea godoc
// @Summary      Descartar una línea del movimiento pendiente por posición
// @Tags         builder
// @Security     Bearer
// @Produce      json
// @Param        i    path  int  true  "Índice de la línea (base cero)"
// @Success      200  {object}  dto.BuilderEstadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimientos/builder/lineas/{i} [delete]
func (h *MovimientoHandler) EliminarLinea(c *fiber.Ctx) error {
	i, err := strconv.Atoi(c.Params("i"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INDICE_INVALIDO", Message: "el índice debe ser un entero"})
	}
	sessionID := GetSessionID(c)
	if err := h.svc.EliminarLinea(sessionID, i); err != nil {
		return responderError(c, err)
	}
	return c.JSON(h.estado(sessionID))
}

// Finalizar godoc
// @Summary      Registrar el movimiento pendiente de forma atómica
// @Tags         builder
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  map[string]string
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/movimientos/builder/finalizar [post]
func (h *MovimientoHandler) Finalizar(c *fiber.Ctx) error {
	movID, err := h.svc.Finalizar(c.Context(), GetSessionID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": movID})
}

// Cancelar godoc
// @Summary      Descartar el movimiento pendiente completo
// @Tags         builder
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BuilderEstadoResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movimientos/builder/cancelar [post]
func (h *MovimientoHandler) Cancelar(c *fiber.Ctx) error {
	sessionID := GetSessionID(c)
	if err := h.svc.Cancelar(sessionID); err != nil {
		return responderError(c, err)
	}
	return c.JSON(h.estado(sessionID))
}

// Pendiente godoc
// @Summary      Estado del movimiento pendiente de la sesión
// @Tags         builder
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BuilderEstadoResponse
// @Router       /api/movimientos/builder [get]
func (h *MovimientoHandler) Pendiente(c *fiber.Ctx) error {
	return c.JSON(h.estado(GetSessionID(c)))
}

func (h *MovimientoHandler) estado(sessionID string) dto.BuilderEstadoResponse {
	tipo, lineas, abierto := h.svc.Pendiente(sessionID)
	resp := dto.BuilderEstadoResponse{
		Abierto: abierto,
		Tipo:    tipo,
		Lineas:  make([]dto.LineaPendienteResponse, 0, len(lineas)),
	}
	for i, l := range lineas {
		linea := dto.LineaPendienteResponse{
			Indice:          i,
			EsArticuloNuevo: l.EsArticuloNuevo,
			NombreArticulo:  l.NombreArticulo,
			EsCable:         l.EsCable,
		}
		if l.EsCable {
			linea.NombrePunta = l.NombrePunta
			linea.Longitud = l.Longitud
		} else {
			linea.Cantidad = l.Cantidad
		}
		resp.Lineas = append(resp.Lineas, linea)
	}
	return resp
}
