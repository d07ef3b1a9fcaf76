package repository

import (
	"context"

	"github.com/Cesar-andres10/bodega-proyecto/internal/model"

	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for the stock snapshot.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductoRepository interface {
	// FindByEan returns some snapshot row with that scannable code; which row
	// "first" is when the code repeats is implementation-defined.
	FindByEan(ctx context.Context, ean string) (*model.Producto, error)
	FindBySku(ctx context.Context, sku string) (*model.Producto, error)
	// ListBySku returns every talla variant of a SKU, ordered by talla for a
	// stable presentation.
	ListBySku(ctx context.Context, sku string) ([]model.Producto, error)
	// StockPorClave loads the full current snapshot as a (sku,talla) → stock map.
	StockPorClave(ctx context.Context) (map[model.ClaveProducto]int, error)
	// ReemplazarSnapshot swaps the whole snapshot and appends the movement log
	// for one upload inside a single transaction: readers observe either the
	// old snapshot or the new one, never a partially rebuilt table.
	ReemplazarSnapshot(ctx context.Context, productos []model.Producto, movimientos []model.MovimientoStock) error
	ListarSnapshot(ctx context.Context) ([]model.Producto, error)
	// DB exposes the underlying *gorm.DB for health checks.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) FindByEan(ctx context.Context, ean string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("ean = ?", ean).First(&p).Error
	return &p, err
}

func (r *productoRepo) FindBySku(ctx context.Context, sku string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&p).Error
	return &p, err
}

func (r *productoRepo) ListBySku(ctx context.Context, sku string) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Where("sku = ?", sku).Order("talla ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) StockPorClave(ctx context.Context) (map[model.ClaveProducto]int, error) {
	var filas []model.Producto
	if err := r.db.WithContext(ctx).Select("sku", "talla", "stock").Find(&filas).Error; err != nil {
		return nil, err
	}
	porClave := make(map[model.ClaveProducto]int, len(filas))
	for i := range filas {
		porClave[filas[i].Clave()] = filas[i].Stock
	}
	return porClave, nil
}

func (r *productoRepo) ReemplazarSnapshot(ctx context.Context, productos []model.Producto, movimientos []model.MovimientoStock) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Producto{}).Error; err != nil {
			return err
		}
		if len(movimientos) > 0 {
			if err := tx.Create(&movimientos).Error; err != nil {
				return err
			}
		}
		if len(productos) > 0 {
			if err := tx.Create(&productos).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *productoRepo) ListarSnapshot(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Order("sku ASC, talla ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
