package dto

import "github.com/shopspring/decimal"

// BuscarRequest carries the form field of POST /buscar.
type BuscarRequest struct {
	Codigo string `form:"codigo" validate:"required"`
}

// TallaStock is one size variant with its traffic-light classification.
type TallaStock struct {
	Talla string `json:"talla"`
	Stock int    `json:"stock"`
	Color string `json:"color"` // verde | amarillo | rojo
}

// BusquedaResponse is the lookup result: product identity, total stock across
// tallas, and the per-talla breakdown in a stable order.
type BusquedaResponse struct {
	Sku        string          `json:"sku"`
	Modelo     string          `json:"modelo"`
	Categoria  string          `json:"categoria"`
	Precio     decimal.Decimal `json:"precio"`
	StockTotal int             `json:"stock_total"`
	Tallas     []TallaStock    `json:"tallas"`
}
