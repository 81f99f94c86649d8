// Package excel genera el libro de inventario que antes era el dataframe de la
// pantalla "Inventario": una hoja con el catálogo completo y otra con los
// artículos bajo su stock mínimo.
package excel

import (
	"fmt"

	"github.com/usse-dev/almacen-api/internal/application/dto"
	"github.com/xuri/excelize/v2"
)

// InventarioExporter genera el reporte de inventario en formato xlsx.
type InventarioExporter struct{}

// NewInventarioExporter construye el exportador.
func NewInventarioExporter() *InventarioExporter { return &InventarioExporter{} }

// Generar arma el libro con las hojas Inventario y Stock Bajo.
// El caller es dueño del archivo y debe cerrarlo tras escribirlo.
func (e *InventarioExporter) Generar(articulos, stockBajo []*dto.ArticuloResponse) (*excelize.File, error) {
	f := excelize.NewFile()

	const hojaInventario = "Inventario"
	if err := f.SetSheetName("Sheet1", hojaInventario); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}
	if err := escribirHoja(f, hojaInventario, articulos); err != nil {
		return nil, err
	}

	const hojaStockBajo = "Stock Bajo"
	if _, err := f.NewSheet(hojaStockBajo); err != nil {
		return nil, fmt.Errorf("crear hoja: %w", err)
	}
	if err := escribirHoja(f, hojaStockBajo, stockBajo); err != nil {
		return nil, err
	}

	return f, nil
}

func escribirHoja(f *excelize.File, hoja string, articulos []*dto.ArticuloResponse) error {
	encabezados := []string{"Nombre", "Tipo", "Categoría", "Unidad", "Cantidad en stock", "Stock mínimo", "Precio unitario", "Es cable"}
	for i, h := range encabezados {
		celda, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(hoja, celda, h); err != nil {
			return fmt.Errorf("escribir encabezado: %w", err)
		}
	}
	for i, a := range articulos {
		fila := i + 2
		valores := []interface{}{
			a.Nombre,
			a.Tipo,
			a.Categoria,
			a.UnidadMedida,
			a.CantidadEnStock.InexactFloat64(),
			a.StockMinimo.InexactFloat64(),
			a.PrecioUnitario.InexactFloat64(),
			a.EsCable,
		}
		for j, v := range valores {
			celda, _ := excelize.CoordinatesToCellName(j+1, fila)
			if err := f.SetCellValue(hoja, celda, v); err != nil {
				return fmt.Errorf("escribir fila %d: %w", fila, err)
			}
		}
	}
	return nil
}
