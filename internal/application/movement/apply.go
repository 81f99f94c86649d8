package movement

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/usse-dev/almacen-api/internal/domain"
	"github.com/usse-dev/almacen-api/internal/domain/entity"
	"github.com/usse-dev/almacen-api/internal/domain/repository"
)

// ApplyUseCase persiste un lote finalizado: una cabecera en movimientos, un
// detalle por línea y las mutaciones de artículos/puntas que cada línea implica,
// todo dentro de una sola transacción (Commit/Rollback vía TxRunner). Las filas
// de artículo se bloquean con SELECT FOR UPDATE antes de mutar stock.
type ApplyUseCase struct {
	txRunner TxRunner
}

// NewApplyUseCase construye el caso de uso.
func NewApplyUseCase(txRunner TxRunner) *ApplyUseCase {
	return &ApplyUseCase{txRunner: txRunner}
}

// Aplicar persiste el lote y devuelve el id del movimiento creado.
// Cualquier error deja la base exactamente como estaba (rollback del lote completo).
func (uc *ApplyUseCase) Aplicar(ctx context.Context, lote *Lote) (string, error) {
	if lote == nil || len(lote.Lineas) == 0 {
		return "", domain.ErrMovimientoVacio
	}
	if !entity.TipoMovimientoValido(lote.Tipo) {
		return "", domain.ErrEntradaInvalida
	}

	now := time.Now()
	movID := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(
		artRepo repository.ArticuloRepository,
		puntaRepo repository.PuntaRepository,
		proyRepo repository.ProyectoRepository,
		movRepo repository.MovimientoRepository,
	) error {
		if lote.ProyectoID != nil {
			proyecto, err := proyRepo.GetByID(*lote.ProyectoID)
			if err != nil {
				return err
			}
			if proyecto == nil {
				return domain.ErrNoEncontrado
			}
		}
		mov := &entity.Movimiento{
			ID:            movID,
			ProyectoID:    lote.ProyectoID,
			Tipo:          lote.Tipo,
			FechaHora:     now,
			Observaciones: lote.Observaciones,
		}
		if err := movRepo.CreateMovimiento(mov); err != nil {
			return err
		}
		for _, linea := range lote.Lineas {
			if err := uc.aplicarLinea(artRepo, puntaRepo, movRepo, movID, lote.Tipo, linea, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return movID, nil
}

func (uc *ApplyUseCase) aplicarLinea(
	artRepo repository.ArticuloRepository,
	puntaRepo repository.PuntaRepository,
	movRepo repository.MovimientoRepository,
	movID, tipo string,
	linea LineaSpec,
	now time.Time,
) error {
	if linea.EsArticuloNuevo {
		// El builder ya rechaza artículos nuevos en salidas; aquí es invariante.
		if tipo != entity.MovimientoEntrada {
			return domain.ErrEntradaInvalida
		}
		return uc.crearArticulo(artRepo, puntaRepo, movRepo, movID, linea, now)
	}

	articulo, err := artRepo.GetByNombreForUpdate(strings.TrimSpace(linea.NombreArticulo))
	if err != nil {
		return err
	}
	if articulo == nil {
		return domain.ErrNoEncontrado
	}
	// El flag del artículo manda sobre el de la línea: si difieren, la línea se
	// capturó contra un catálogo desactualizado.
	if articulo.EsCable != linea.EsCable {
		return domain.ErrEntradaInvalida
	}

	if articulo.EsCable {
		if tipo == entity.MovimientoEntrada {
			return uc.entradaCable(artRepo, puntaRepo, movRepo, movID, articulo, linea, now)
		}
		return uc.salidaCable(artRepo, puntaRepo, movRepo, movID, articulo, linea)
	}
	if tipo == entity.MovimientoEntrada {
		return uc.entradaContable(artRepo, movRepo, movID, articulo, linea)
	}
	return uc.salidaContable(artRepo, movRepo, movID, articulo, linea)
}

// crearArticulo da de alta el artículo con su stock inicial: la longitud de la
// primera punta para cables, la cantidad capturada para contables.
func (uc *ApplyUseCase) crearArticulo(
	artRepo repository.ArticuloRepository,
	puntaRepo repository.PuntaRepository,
	movRepo repository.MovimientoRepository,
	movID string,
	linea LineaSpec,
	now time.Time,
) error {
	articulo := &entity.Articulo{
		ID:             uuid.New().String(),
		Nombre:         strings.TrimSpace(linea.NombreArticulo),
		Tipo:           linea.TipoArticulo,
		Categoria:      linea.Categoria,
		UnidadMedida:   linea.UnidadMedida,
		PrecioUnitario: linea.PrecioUnitario,
		StockMinimo:    linea.StockMinimo,
		EsCable:        linea.EsCable,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var puntaID *string
	var cantidad decimal.Decimal
	if linea.EsCable {
		articulo.CantidadEnStock = linea.Longitud
		cantidad = linea.Longitud
	} else {
		articulo.CantidadEnStock = linea.Cantidad
		cantidad = linea.Cantidad
	}
	if err := artRepo.Create(articulo); err != nil {
		return err
	}
	if linea.EsCable {
		punta := &entity.Punta{
			ID:         uuid.New().String(),
			ArticuloID: articulo.ID,
			Nombre:     strings.TrimSpace(linea.NombrePunta),
			Longitud:   linea.Longitud,
			CreatedAt:  now,
		}
		if err := puntaRepo.Create(punta); err != nil {
			return err
		}
		puntaID = &punta.ID
	}
	return movRepo.CreateDetalle(&entity.DetalleMovimiento{
		ID:             uuid.New().String(),
		MovimientoID:   movID,
		ArticuloID:     articulo.ID,
		Cantidad:       cantidad,
		PrecioUnitario: linea.PrecioUnitario,
		PuntaID:        puntaID,
	})
}

// entradaCable crea una punta nueva bajo el artículo existente: las puntas no se
// fusionan, cada tramo es una sub-unidad direccionable.
func (uc *ApplyUseCase) entradaCable(
	artRepo repository.ArticuloRepository,
	puntaRepo repository.PuntaRepository,
	movRepo repository.MovimientoRepository,
	movID string,
	articulo *entity.Articulo,
	linea LineaSpec,
	now time.Time,
) error {
	etiqueta := strings.TrimSpace(linea.NombrePunta)
	// La etiqueta direcciona la punta en salidas: no puede repetirse mientras la
	// anterior siga viva. Se reporta como violación de regla, no como 409 seco,
	// y el pendiente se restaura para que el operador corrija la etiqueta.
	existente, err := puntaRepo.GetByArticuloYNombreForUpdate(articulo.ID, etiqueta)
	if err != nil {
		return err
	}
	if existente != nil {
		return domain.NewValidationError([]string{
			"la etiqueta de punta '" + etiqueta + "' ya existe para el artículo '" + articulo.Nombre + "'",
		})
	}
	punta := &entity.Punta{
		ID:         uuid.New().String(),
		ArticuloID: articulo.ID,
		Nombre:     etiqueta,
		Longitud:   linea.Longitud,
		CreatedAt:  now,
	}
	if err := puntaRepo.Create(punta); err != nil {
		return err
	}
	if err := artRepo.UpdateStock(articulo.ID, articulo.CantidadEnStock.Add(linea.Longitud)); err != nil {
		return err
	}
	return movRepo.CreateDetalle(&entity.DetalleMovimiento{
		ID:             uuid.New().String(),
		MovimientoID:   movID,
		ArticuloID:     articulo.ID,
		Cantidad:       linea.Longitud,
		PrecioUnitario: articulo.PrecioUnitario,
		PuntaID:        &punta.ID,
	})
}

// salidaCable consume longitud de la punta etiquetada: la reduce, o la elimina
// si se consume exacta. Consumir más de lo que la punta tiene es rechazo del lote.
func (uc *ApplyUseCase) salidaCable(
	artRepo repository.ArticuloRepository,
	puntaRepo repository.PuntaRepository,
	movRepo repository.MovimientoRepository,
	movID string,
	articulo *entity.Articulo,
	linea LineaSpec,
) error {
	punta, err := puntaRepo.GetByArticuloYNombreForUpdate(articulo.ID, strings.TrimSpace(linea.NombrePunta))
	if err != nil {
		return err
	}
	if punta == nil {
		return domain.ErrNoEncontrado
	}
	if linea.Longitud.GreaterThan(punta.Longitud) {
		return domain.ErrStockInsuficiente
	}
	restante := punta.Longitud.Sub(linea.Longitud)
	if restante.IsZero() {
		if err := puntaRepo.Delete(punta.ID); err != nil {
			return err
		}
	} else {
		if err := puntaRepo.UpdateLongitud(punta.ID, restante); err != nil {
			return err
		}
	}
	if err := artRepo.UpdateStock(articulo.ID, articulo.CantidadEnStock.Sub(linea.Longitud)); err != nil {
		return err
	}
	return movRepo.CreateDetalle(&entity.DetalleMovimiento{
		ID:             uuid.New().String(),
		MovimientoID:   movID,
		ArticuloID:     articulo.ID,
		Cantidad:       linea.Longitud,
		PrecioUnitario: articulo.PrecioUnitario,
		PuntaID:        &punta.ID,
	})
}

func (uc *ApplyUseCase) entradaContable(
	artRepo repository.ArticuloRepository,
	movRepo repository.MovimientoRepository,
	movID string,
	articulo *entity.Articulo,
	linea LineaSpec,
) error {
	if err := artRepo.UpdateStock(articulo.ID, articulo.CantidadEnStock.Add(linea.Cantidad)); err != nil {
		return err
	}
	return movRepo.CreateDetalle(&entity.DetalleMovimiento{
		ID:             uuid.New().String(),
		MovimientoID:   movID,
		ArticuloID:     articulo.ID,
		Cantidad:       linea.Cantidad,
		PrecioUnitario: articulo.PrecioUnitario,
	})
}

func (uc *ApplyUseCase) salidaContable(
	artRepo repository.ArticuloRepository,
	movRepo repository.MovimientoRepository,
	movID string,
	articulo *entity.Articulo,
	linea LineaSpec,
) error {
	if articulo.CantidadEnStock.LessThan(linea.Cantidad) {
		return domain.ErrStockInsuficiente
	}
	if err := artRepo.UpdateStock(articulo.ID, articulo.CantidadEnStock.Sub(linea.Cantidad)); err != nil {
		return err
	}
	return movRepo.CreateDetalle(&entity.DetalleMovimiento{
		ID:             uuid.New().String(),
		MovimientoID:   movID,
		ArticuloID:     articulo.ID,
		Cantidad:       linea.Cantidad,
		PrecioUnitario: articulo.PrecioUnitario,
	})
}
