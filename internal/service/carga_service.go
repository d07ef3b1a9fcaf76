package service

import (
	"context"
	"time"

	"github.com/Cesar-andres10/bodega-proyecto/internal/dto"
	"github.com/Cesar-andres10/bodega-proyecto/internal/importer"
	"github.com/Cesar-andres10/bodega-proyecto/internal/model"
	"github.com/Cesar-andres10/bodega-proyecto/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// generacionKey is the redis counter that versions the búsqueda cache. Every
// snapshot replacement bumps it, so cached lookups from the previous snapshot
// stop matching without an explicit purge.
const generacionKey = "stock:generacion"

// CargaService reconciles an uploaded snapshot against the stored one: it
// derives a vendido movement per row and replaces the snapshot atomically.
type CargaService interface {
	Cargar(ctx context.Context, filas []importer.Fila) (*dto.CargaResponse, error)
}

type cargaService struct {
	repo repository.ProductoRepository
	rdb  *redis.Client
	hoy  func() string
}

func NewCargaService(repo repository.ProductoRepository, rdb *redis.Client) CargaService {
	return &cargaService{
		repo: repo,
		rdb:  rdb,
		hoy:  func() string { return time.Now().Format("2006-01-02") },
	}
}

func (s *cargaService) Cargar(ctx context.Context, filas []importer.Fila) (*dto.CargaResponse, error) {
	anterior, err := s.repo.StockPorClave(ctx)
	if err != nil {
		return nil, err
	}

	fecha := s.hoy()
	productos := make([]model.Producto, 0, len(filas))
	movimientos := make([]model.MovimientoStock, 0, len(filas))
	totalVendido := 0

	for _, f := range filas {
		clave := model.ClaveProducto{Sku: f.Sku, Talla: f.Talla}
		stockAnterior := anterior[clave] // default 0 for never-seen keys
		vendido := model.VendidoEntre(stockAnterior, f.Stock)
		totalVendido += vendido

		movimientos = append(movimientos, model.MovimientoStock{
			Fecha:         fecha,
			Sku:           f.Sku,
			Talla:         f.Talla,
			StockAnterior: stockAnterior,
			StockActual:   f.Stock,
			Vendido:       vendido,
		})
		productos = append(productos, model.Producto{
			Sku:       f.Sku,
			Modelo:    f.Modelo,
			Categoria: f.Categoria,
			Talla:     f.Talla,
			Stock:     f.Stock,
			Ean:       f.Ean,
			Precio:    f.Precio,
		})
	}

	if err := s.repo.ReemplazarSnapshot(ctx, productos, movimientos); err != nil {
		return nil, err
	}

	s.invalidarCache(ctx)

	log.Info().
		Str("fecha", fecha).
		Int("filas", len(filas)).
		Int("total_vendido", totalVendido).
		Msg("snapshot reemplazado")

	return &dto.CargaResponse{
		Fecha:           fecha,
		FilasProcesadas: len(filas),
		TotalVendido:    totalVendido,
	}, nil
}

// invalidarCache bumps the cache generation. Best effort: a missing or
// failing redis never fails an upload.
func (s *cargaService) invalidarCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Incr(ctx, generacionKey).Err(); err != nil {
		log.Warn().Err(err).Msg("no se pudo invalidar el cache de búsqueda")
	}
}
