package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/usse-dev/almacen-api/internal/application/auth"
	"github.com/usse-dev/almacen-api/internal/application/catalog"
	"github.com/usse-dev/almacen-api/internal/application/movement"
	"github.com/usse-dev/almacen-api/internal/application/project"
	"github.com/usse-dev/almacen-api/internal/infrastructure/excel"
	"github.com/usse-dev/almacen-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	CatalogUC     *catalog.UseCase
	ProyectoUC    *project.UseCase
	MovimientoSvc *movement.Service
	Exporter      *excel.InventarioExporter
	ValeGen       *pdf.MarotoValeGenerator
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo e inventario (protegido)
	catalogoHandler := NewCatalogoHandler(deps.CatalogUC)
	articulos := protected.Group("/articulos")
	articulos.Get("/", catalogoHandler.ListarArticulos)
	articulos.Get("/nombres", catalogoHandler.NombresArticulos)
	articulos.Get("/:id/puntas", catalogoHandler.PuntasDeArticulo)
	protected.Get("/categorias", catalogoHandler.Categorias)
	protected.Get("/unidades", catalogoHandler.Unidades)

	// Proyectos (protegido)
	proyectoHandler := NewProyectoHandler(deps.ProyectoUC)
	proyectos := protected.Group("/proyectos")
	proyectos.Post("/", proyectoHandler.Crear)
	proyectos.Get("/", proyectoHandler.Listar)

	// Builder de movimientos por sesión (protegido). Las rutas del builder van
	// antes que /:id para que Fiber no capture "builder" como id.
	movimientoHandler := NewMovimientoHandler(deps.MovimientoSvc)
	movimientos := protected.Group("/movimientos")
	movimientos.Get("/builder", movimientoHandler.Pendiente)
	movimientos.Post("/builder/iniciar", movimientoHandler.Iniciar)
	movimientos.Post("/builder/lineas", movimientoHandler.AgregarLinea)
	movimientos.Delete("/builder/lineas/:i", movimientoHandler.EliminarLinea)
	movimientos.Post("/builder/finalizar", movimientoHandler.Finalizar)
	movimientos.Post("/builder/cancelar", movimientoHandler.Cancelar)

	// Ledger de movimientos (protegido)
	reporteHandler := NewReporteHandler(deps.CatalogUC, deps.ProyectoUC, deps.Exporter, deps.ValeGen)
	movimientos.Get("/", catalogoHandler.MovimientosRecientes)
	movimientos.Get("/:id", catalogoHandler.Movimiento)
	movimientos.Get("/:id/vale.pdf", reporteHandler.Vale)

	// Reportes (protegido)
	protected.Get("/reportes/inventario.xlsx", reporteHandler.Inventario)
}
