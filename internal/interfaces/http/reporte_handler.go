package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/usse-dev/almacen-api/internal/application/catalog"
	"github.com/usse-dev/almacen-api/internal/application/dto"
	"github.com/usse-dev/almacen-api/internal/application/project"
	"github.com/usse-dev/almacen-api/internal/infrastructure/excel"
	"github.com/usse-dev/almacen-api/internal/infrastructure/pdf"
)

// ReporteHandler genera los descargables: libro de inventario en xlsx y vale
// de movimiento en PDF (protegido).
type ReporteHandler struct {
	catalogUC  *catalog.UseCase
	proyectoUC *project.UseCase
	exporter   *excel.InventarioExporter
	valeGen    *pdf.MarotoValeGenerator
}

// NewReporteHandler construye el handler.
func NewReporteHandler(
	catalogUC *catalog.UseCase,
	proyectoUC *project.UseCase,
	exporter *excel.InventarioExporter,
	valeGen *pdf.MarotoValeGenerator,
) *ReporteHandler {
	return &ReporteHandler{catalogUC: catalogUC, proyectoUC: proyectoUC, exporter: exporter, valeGen: valeGen}
}

// Inventario godoc
// @Summary      Descargar el libro de inventario (xlsx)
// @Tags         reportes
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reportes/inventario.xlsx [get]
func (h *ReporteHandler) Inventario(c *fiber.Ctx) error {
	articulos, err := h.catalogUC.ListarArticulos("", false)
	if err != nil {
		return responderError(c, err)
	}
	stockBajo, err := h.catalogUC.ListarArticulos("", true)
	if err != nil {
		return responderError(c, err)
	}
	f, err := h.exporter.Generar(articulos, stockBajo)
	if err != nil {
		return responderError(c, err)
	}
	defer f.Close()

	nombre := "inventario_" + time.Now().Format("20060102") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	if err := f.Write(c.Response().BodyWriter()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNO", Message: err.Error()})
	}
	return nil
}

// Vale godoc
// @Summary      Descargar el vale PDF de un movimiento
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id}/vale.pdf [get]
func (h *ReporteHandler) Vale(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ID_FALTANTE", Message: "id es requerido"})
	}
	mov, err := h.catalogUC.Movimiento(id)
	if err != nil {
		return responderError(c, err)
	}
	var proyecto *dto.ProyectoResponse
	if mov.ProyectoID != nil {
		proyecto, err = h.proyectoUC.Obtener(*mov.ProyectoID)
		if err != nil {
			return responderError(c, err)
		}
	}
	pdfBytes, err := h.valeGen.GenerarVale(mov, proyecto)
	if err != nil {
		return responderError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="vale_`+id+`.pdf"`)
	return c.Send(pdfBytes)
}
