package model

import (
	"time"

	"github.com/google/uuid"
)

// MovimientoStock registra la diferencia de stock de un (sku, talla) entre la
// carga anterior y la nueva. Se escribe un movimiento por cada fila del
// archivo subido, incluso cuando Vendido es 0.
//
// Vendido = max(StockAnterior - StockActual, 0). The clamp is deliberate:
// a restock never produces a negative movement, it is recorded as zero.
// Downstream reporting relies on never seeing negative sales.
type MovimientoStock struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Fecha         string    `gorm:"not null;index" json:"fecha"` // "2006-01-02", compared literally
	Sku           string    `gorm:"not null;index" json:"sku"`
	Talla         string    `gorm:"not null" json:"talla"`
	StockAnterior int       `gorm:"not null" json:"stock_anterior"`
	StockActual   int       `gorm:"not null" json:"stock_actual"`
	Vendido       int       `gorm:"not null" json:"vendido"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName overrides GORM's pluralization (movimiento_stocks → historial_movimientos).
func (MovimientoStock) TableName() string { return "historial_movimientos" }

// VendidoEntre computes the sold quantity for a snapshot transition.
func VendidoEntre(anterior, actual int) int {
	if v := anterior - actual; v > 0 {
		return v
	}
	return 0
}
