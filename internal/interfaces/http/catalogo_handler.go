package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/usse-dev/almacen-api/internal/application/catalog"
	"github.com/usse-dev/almacen-api/internal/application/dto"
)

// CatalogoHandler superficie de consulta: inventario, puntas, catálogos
// cerrados y movimientos recientes (protegido).
type CatalogoHandler struct {
	uc *catalog.UseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *catalog.UseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// ListarArticulos godoc
// @Summary      Listar inventario
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Param        q          query  string  false  "Filtro por subcadena del nombre (sin acentos ni mayúsculas)"
// @Param        low_stock  query  bool    false  "Solo artículos bajo su stock mínimo"
// @Success      200  {array}  dto.ArticuloResponse
// @Router       /api/articulos [get]
func (h *CatalogoHandler) ListarArticulos(c *fiber.Ctx) error {
	q := c.Query("q")
	soloStockBajo := c.QueryBool("low_stock", false)
	out, err := h.uc.ListarArticulos(q, soloStockBajo)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// NombresArticulos godoc
// @Summary      Nombres del catálogo de artículos
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Param        cables  query  bool  false  "Solo artículos de tipo cable"
// @Success      200  {array}  string
// @Router       /api/articulos/nombres [get]
func (h *CatalogoHandler) NombresArticulos(c *fiber.Ctx) error {
	soloCables := c.QueryBool("cables", false)
	out, err := h.uc.NombresArticulos(soloCables)
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		out = []string{}
	}
	return c.JSON(out)
}

// PuntasDeArticulo godoc
// @Summary      Puntas/carretes en stock de un artículo cable
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {array}   dto.PuntaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articulos/{id}/puntas [get]
func (h *CatalogoHandler) PuntasDeArticulo(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ID_FALTANTE", Message: "id es requerido"})
	}
	out, err := h.uc.PuntasDeArticulo(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Categorias godoc
// @Summary      Catálogo cerrado de categorías
// @Tags         catalogos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/categorias [get]
func (h *CatalogoHandler) Categorias(c *fiber.Ctx) error {
	return c.JSON(h.uc.Catalogos().Categorias)
}

// Unidades godoc
// @Summary      Catálogo cerrado de unidades de medida
// @Tags         catalogos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/unidades [get]
func (h *CatalogoHandler) Unidades(c *fiber.Ctx) error {
	return c.JSON(h.uc.Catalogos().Unidades)
}

// MovimientosRecientes godoc
// @Summary      Últimos movimientos con sus líneas resueltas
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Cantidad de movimientos"  default(20)
// @Success      200  {array}  dto.MovimientoResponse
// @Router       /api/movimientos [get]
func (h *CatalogoHandler) MovimientosRecientes(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit > 100 {
		limit = 100
	}
	out, err := h.uc.MovimientosRecientes(limit)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Movimiento godoc
// @Summary      Obtener movimiento por ID
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id} [get]
func (h *CatalogoHandler) Movimiento(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ID_FALTANTE", Message: "id es requerido"})
	}
	out, err := h.uc.Movimiento(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
