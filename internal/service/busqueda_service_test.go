package service

import (
	"context"
	"testing"

	"github.com/Cesar-andres10/bodega-proyecto/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuscarPorEan(t *testing.T) {
	repo := newStubProductoRepo()
	seedProducto(repo, "A1", "M", 10, "7791234567890")
	seedProducto(repo, "A1", "L", 4, "7791234567891")
	svc := NewBusquedaService(repo, nil)

	resp, err := svc.Buscar(context.Background(), "7791234567890")
	require.NoError(t, err)

	assert.Equal(t, "A1", resp.Sku)
	assert.Equal(t, "Modelo A1", resp.Modelo)
	assert.Equal(t, 14, resp.StockTotal)
	require.Len(t, resp.Tallas, 2)
}

func TestBuscarFallbackPorSku(t *testing.T) {
	repo := newStubProductoRepo()
	seedProducto(repo, "A1", "M", 10, "7791234567890")
	svc := NewBusquedaService(repo, nil)

	resp, err := svc.Buscar(context.Background(), "A1")
	require.NoError(t, err)
	assert.Equal(t, "A1", resp.Sku)
}

func TestBuscarParidadEanSku(t *testing.T) {
	repo := newStubProductoRepo()
	seedProducto(repo, "A1", "M", 10, "7791234567890")
	seedProducto(repo, "A1", "L", 4, "7791234567891")
	svc := NewBusquedaService(repo, nil)

	porEan, err := svc.Buscar(context.Background(), "7791234567890")
	require.NoError(t, err)
	porSku, err := svc.Buscar(context.Background(), "A1")
	require.NoError(t, err)

	// Both paths resolve to the same product and identical data.
	assert.Equal(t, porEan, porSku)
}

func TestBuscarNoEncontrado(t *testing.T) {
	repo := newStubProductoRepo()
	seedProducto(repo, "A1", "M", 10, "7791234567890")
	svc := NewBusquedaService(repo, nil)

	_, err := svc.Buscar(context.Background(), "000")
	assert.ErrorIs(t, err, ErrProductoNoEncontrado)
}

func TestBuscarSemaforo(t *testing.T) {
	repo := newStubProductoRepo()
	seedProducto(repo, "A1", "S", 6, "1")
	seedProducto(repo, "A1", "M", 5, "2")
	seedProducto(repo, "A1", "L", 3, "3")
	seedProducto(repo, "A1", "XL", 2, "4")
	seedProducto(repo, "A1", "XXL", 0, "5")
	svc := NewBusquedaService(repo, nil)

	resp, err := svc.Buscar(context.Background(), "A1")
	require.NoError(t, err)
	require.Len(t, resp.Tallas, 5)

	colores := make(map[string]string, len(resp.Tallas))
	for _, ts := range resp.Tallas {
		colores[ts.Talla] = ts.Color
	}
	assert.Equal(t, model.ColorVerde, colores["S"])     // 6
	assert.Equal(t, model.ColorAmarillo, colores["M"])  // 5
	assert.Equal(t, model.ColorAmarillo, colores["L"])  // 3
	assert.Equal(t, model.ColorRojo, colores["XL"])     // 2
	assert.Equal(t, model.ColorRojo, colores["XXL"])    // 0
	assert.Equal(t, 6+5+3+2+0, resp.StockTotal)
}

func TestBuscarRecortaCodigo(t *testing.T) {
	repo := newStubProductoRepo()
	seedProducto(repo, "A1", "M", 10, "7791234567890")
	svc := NewBusquedaService(repo, nil)

	resp, err := svc.Buscar(context.Background(), "  7791234567890  ")
	require.NoError(t, err)
	assert.Equal(t, "A1", resp.Sku)
}
