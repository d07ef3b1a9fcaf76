package service

import (
	"context"
	"time"

	"github.com/Cesar-andres10/bodega-proyecto/internal/dto"
	"github.com/Cesar-andres10/bodega-proyecto/internal/repository"
)

// HistorialService reports the movements of the current date.
type HistorialService interface {
	DelDia(ctx context.Context) (*dto.HistorialResponse, error)
}

type historialService struct {
	repo repository.MovimientoStockRepository
	hoy  func() string
}

func NewHistorialService(repo repository.MovimientoStockRepository) HistorialService {
	return &historialService{
		repo: repo,
		hoy:  func() string { return time.Now().Format("2006-01-02") },
	}
}

// DelDia returns today's movements with vendido > 0 and their sum. Dates are
// compared as literal strings; there is no cross-day aggregation.
func (s *historialService) DelDia(ctx context.Context) (*dto.HistorialResponse, error) {
	fecha := s.hoy()
	movimientos, err := s.repo.ListarPorFecha(ctx, fecha, true)
	if err != nil {
		return nil, err
	}

	lista := make([]dto.MovimientoDTO, 0, len(movimientos))
	total := 0
	for _, m := range movimientos {
		lista = append(lista, dto.MovimientoDTO{
			Sku:           m.Sku,
			Talla:         m.Talla,
			StockAnterior: m.StockAnterior,
			StockActual:   m.StockActual,
			Vendido:       m.Vendido,
		})
		total += m.Vendido
	}

	return &dto.HistorialResponse{
		Fecha:        fecha,
		Movimientos:  lista,
		TotalVendido: total,
	}, nil
}
