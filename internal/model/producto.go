package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is one row of the current stock snapshot, keyed by (sku, talla).
// The whole table is replaced (delete-all + insert-all) on every upload;
// rows are never updated in place.
type Producto struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Sku       string          `gorm:"not null;index;uniqueIndex:idx_sku_talla" json:"sku"`
	Modelo    string          `gorm:"not null" json:"modelo"`
	Categoria string          `gorm:"not null" json:"categoria"`
	Talla     string          `gorm:"not null;uniqueIndex:idx_sku_talla" json:"talla"`
	Stock     int             `gorm:"not null;default:0" json:"stock"`
	Ean       string          `gorm:"index" json:"ean"`
	Precio    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"precio"`
	CreatedAt time.Time       `json:"created_at"`
}

// TableName overrides GORM's pluralization (productos → stock_productos).
func (Producto) TableName() string { return "stock_productos" }

// ClaveProducto identifies a snapshot row across uploads.
type ClaveProducto struct {
	Sku   string
	Talla string
}

func (p *Producto) Clave() ClaveProducto { return ClaveProducto{Sku: p.Sku, Talla: p.Talla} }

// Colores del semáforo de stock por talla.
const (
	ColorVerde    = "verde"
	ColorAmarillo = "amarillo"
	ColorRojo     = "rojo"
)

// ColorStock classifies a quantity into the traffic-light status shown in the
// lookup view: ≥6 verde, 3–5 amarillo, anything below (including 0) rojo.
func ColorStock(stock int) string {
	switch {
	case stock >= 6:
		return ColorVerde
	case stock >= 3:
		return ColorAmarillo
	default:
		return ColorRojo
	}
}
