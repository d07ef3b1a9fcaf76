package service

import (
	"context"
	"sort"

	"github.com/Cesar-andres10/bodega-proyecto/internal/model"
	"github.com/Cesar-andres10/bodega-proyecto/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── In-memory ProductoRepository stub ────────────────────────────────────────

type stubProductoRepo struct {
	snapshot    []model.Producto
	movimientos []model.MovimientoStock
	reemplazos  int
}

func newStubProductoRepo() *stubProductoRepo { return &stubProductoRepo{} }

func (r *stubProductoRepo) FindByEan(_ context.Context, ean string) (*model.Producto, error) {
	for i := range r.snapshot {
		if r.snapshot[i].Ean == ean {
			return &r.snapshot[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) FindBySku(_ context.Context, sku string) (*model.Producto, error) {
	for i := range r.snapshot {
		if r.snapshot[i].Sku == sku {
			return &r.snapshot[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) ListBySku(_ context.Context, sku string) ([]model.Producto, error) {
	var result []model.Producto
	for _, p := range r.snapshot {
		if p.Sku == sku {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Talla < result[j].Talla })
	return result, nil
}

func (r *stubProductoRepo) StockPorClave(_ context.Context) (map[model.ClaveProducto]int, error) {
	porClave := make(map[model.ClaveProducto]int, len(r.snapshot))
	for i := range r.snapshot {
		porClave[r.snapshot[i].Clave()] = r.snapshot[i].Stock
	}
	return porClave, nil
}

func (r *stubProductoRepo) ReemplazarSnapshot(_ context.Context, productos []model.Producto, movimientos []model.MovimientoStock) error {
	r.snapshot = productos
	r.movimientos = append(r.movimientos, movimientos...)
	r.reemplazos++
	return nil
}

func (r *stubProductoRepo) ListarSnapshot(_ context.Context) ([]model.Producto, error) {
	return r.snapshot, nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── In-memory MovimientoStockRepository stub ─────────────────────────────────

type stubMovimientoRepo struct {
	movimientos []model.MovimientoStock
}

func (r *stubMovimientoRepo) ListarPorFecha(_ context.Context, fecha string, soloVendidos bool) ([]model.MovimientoStock, error) {
	var result []model.MovimientoStock
	for _, m := range r.movimientos {
		if m.Fecha != fecha {
			continue
		}
		if soloVendidos && m.Vendido <= 0 {
			continue
		}
		result = append(result, m)
	}
	return result, nil
}

var _ repository.MovimientoStockRepository = (*stubMovimientoRepo)(nil)

// ── Helpers ───────────────────────────────────────────────────────────────────

func seedProducto(repo *stubProductoRepo, sku, talla string, stock int, ean string) {
	repo.snapshot = append(repo.snapshot, model.Producto{
		ID:        uuid.New(),
		Sku:       sku,
		Modelo:    "Modelo " + sku,
		Categoria: "TEST",
		Talla:     talla,
		Stock:     stock,
		Ean:       ean,
	})
}
