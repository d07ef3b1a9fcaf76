package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Cesar-andres10/bodega-proyecto/internal/dto"
	"github.com/Cesar-andres10/bodega-proyecto/internal/model"
	"github.com/Cesar-andres10/bodega-proyecto/internal/repository"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const busquedaCacheTTL = 4 * time.Hour

// BusquedaService resolves a scanned or typed code to a product with its
// per-talla stock breakdown.
type BusquedaService interface {
	Buscar(ctx context.Context, codigo string) (*dto.BusquedaResponse, error)
}

type busquedaService struct {
	repo repository.ProductoRepository
	rdb  *redis.Client
}

func NewBusquedaService(repo repository.ProductoRepository, rdb *redis.Client) BusquedaService {
	return &busquedaService{repo: repo, rdb: rdb}
}

// Buscar matches the code against EAN first, then falls back to SKU. The hit
// anchors the SKU; every talla variant of that SKU is returned with its
// semáforo color and the total stock across them.
func (s *busquedaService) Buscar(ctx context.Context, codigo string) (*dto.BusquedaResponse, error) {
	codigo = strings.TrimSpace(codigo)

	cacheKey, cached := s.probarCache(ctx, codigo)
	if cached != nil {
		return cached, nil
	}

	producto, err := s.repo.FindByEan(ctx, codigo)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		producto, err = s.repo.FindBySku(ctx, codigo)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductoNoEncontrado
		}
		if err != nil {
			return nil, err
		}
	}

	variantes, err := s.repo.ListBySku(ctx, producto.Sku)
	if err != nil {
		return nil, err
	}

	tallas := make([]dto.TallaStock, 0, len(variantes))
	total := 0
	for _, v := range variantes {
		tallas = append(tallas, dto.TallaStock{
			Talla: v.Talla,
			Stock: v.Stock,
			Color: model.ColorStock(v.Stock),
		})
		total += v.Stock
	}

	resp := &dto.BusquedaResponse{
		Sku:        producto.Sku,
		Modelo:     producto.Modelo,
		Categoria:  producto.Categoria,
		Precio:     producto.Precio,
		StockTotal: total,
		Tallas:     tallas,
	}

	s.guardarCache(ctx, cacheKey, resp)
	return resp, nil
}

// probarCache returns the generation-scoped cache key and, when present, the
// cached response. Any redis problem degrades to a plain DB lookup.
func (s *busquedaService) probarCache(ctx context.Context, codigo string) (string, *dto.BusquedaResponse) {
	if s.rdb == nil {
		return "", nil
	}
	gen, err := s.rdb.Get(ctx, generacionKey).Int64()
	if err != nil {
		gen = 0
	}
	key := fmt.Sprintf("busqueda:%d:%s", gen, codigo)

	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return key, nil
	}
	var resp dto.BusquedaResponse
	if json.Unmarshal(b, &resp) != nil {
		return key, nil
	}
	return key, &resp
}

func (s *busquedaService) guardarCache(ctx context.Context, key string, resp *dto.BusquedaResponse) {
	if s.rdb == nil || key == "" {
		return
	}
	if b, err := json.Marshal(resp); err == nil {
		_ = s.rdb.Set(ctx, key, b, busquedaCacheTTL).Err()
	}
}
