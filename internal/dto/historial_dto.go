package dto

// MovimientoDTO is one movement row of the daily report.
type MovimientoDTO struct {
	Sku           string `json:"sku"`
	Talla         string `json:"talla"`
	StockAnterior int    `json:"stock_anterior"`
	StockActual   int    `json:"stock_actual"`
	Vendido       int    `json:"vendido"`
}

// HistorialResponse lists today's movements with vendido > 0 and their sum.
type HistorialResponse struct {
	Fecha        string          `json:"fecha"`
	Movimientos  []MovimientoDTO `json:"movimientos"`
	TotalVendido int             `json:"total_vendido"`
}
