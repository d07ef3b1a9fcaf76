package repository

import (
	"context"

	"github.com/Cesar-andres10/bodega-proyecto/internal/model"

	"gorm.io/gorm"
)

// MovimientoStockRepository reads the append-only movement log. Writes happen
// exclusively through ProductoRepository.ReemplazarSnapshot, inside the same
// transaction as the snapshot swap.
type MovimientoStockRepository interface {
	// ListarPorFecha returns movements whose fecha matches the literal date
	// string; with soloVendidos, rows with vendido = 0 are excluded.
	ListarPorFecha(ctx context.Context, fecha string, soloVendidos bool) ([]model.MovimientoStock, error)
}

type movimientoStockRepo struct{ db *gorm.DB }

func NewMovimientoStockRepository(db *gorm.DB) MovimientoStockRepository {
	return &movimientoStockRepo{db: db}
}

func (r *movimientoStockRepo) ListarPorFecha(ctx context.Context, fecha string, soloVendidos bool) ([]model.MovimientoStock, error) {
	q := r.db.WithContext(ctx).Where("fecha = ?", fecha)
	if soloVendidos {
		q = q.Where("vendido > 0")
	}
	var movimientos []model.MovimientoStock
	err := q.Order("sku ASC, talla ASC").Find(&movimientos).Error
	return movimientos, err
}
