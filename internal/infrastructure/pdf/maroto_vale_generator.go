// Package pdf implementa la generación del vale de movimiento: el comprobante
// imprimible de una entrada o salida de almacén.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Almacén + tipo de movimiento  │  Folio + Fecha     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROYECTO: obra / centro de costo / encargado               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Artículo | Punta | Cantidad/Longitud | P.Unit       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  OBSERVACIONES                                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/usse-dev/almacen-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoValeGenerator genera el vale de movimiento usando Maroto v2.
type MarotoValeGenerator struct{}

// NewMarotoValeGenerator construye el generador.
func NewMarotoValeGenerator() *MarotoValeGenerator { return &MarotoValeGenerator{} }

// GenerarVale genera el PDF del vale y devuelve sus bytes.
// proyecto puede ser nil: movimientos sin atribución de costo.
func (g *MarotoValeGenerator) GenerarVale(mov *dto.MovimientoResponse, proyecto *dto.ProyectoResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Vale de movimiento de almacén", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(mov))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(proyectoRow(proyecto))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(mov.Lineas) {
		m.AddRows(r)
	}

	if mov.Observaciones != "" {
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(observacionesRow(mov.Observaciones))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: almacén + tipo (izq), folio + fecha (der).
func headerRow(mov *dto.MovimientoResponse) core.Row {
	titulo := "VALE DE " + strings.ToUpper(mov.Tipo)
	fecha := mov.FechaHora.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Almacén USSE", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Folio: "+mov.ID, props.Text{
				Size: 7, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// proyectoRow: atribución de costo del movimiento, o "sin proyecto".
func proyectoRow(proyecto *dto.ProyectoResponse) core.Row {
	detalle := "Sin proyecto asignado"
	if proyecto != nil {
		detalle = fmt.Sprintf("Obra: %s   |   C.C.: %d   |   Encargado: %s",
			proyecto.NombreObra, proyecto.CC, proyecto.Encargado)
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PROYECTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(detalle, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Artículo", 5, align.Left),
		h("Punta/Carrete", 3, align.Left),
		h("Cantidad", 2, align.Right),
		h("P. Unit.", 2, align.Right),
	)
}

// tableDetailRows: una fila por línea resuelta. Para cables la cantidad se
// muestra como longitud con su punta; para contables, como conteo de unidades.
func tableDetailRows(lineas []dto.LineaResueltaResponse) []core.Row {
	result := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		punta := "—"
		cantidad := l.Cantidad.StringFixed(0) + " " + l.UnidadMedida
		if l.EsCable {
			punta = l.NombrePunta
			cantidad = l.Longitud.StringFixed(2) + " " + l.UnidadMedida
		}
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				l.Articulo,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				punta,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				cantidad,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+l.PrecioUnitario.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// observacionesRow: notas libres del movimiento.
func observacionesRow(observaciones string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("OBSERVACIONES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(observaciones, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}
