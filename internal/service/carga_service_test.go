package service

import (
	"context"
	"testing"

	"github.com/Cesar-andres10/bodega-proyecto/internal/importer"
	"github.com/Cesar-andres10/bodega-proyecto/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fechaFija = "2026-08-30"

func newCargaServiceFija(repo *stubProductoRepo) *cargaService {
	return &cargaService{
		repo: repo,
		hoy:  func() string { return fechaFija },
	}
}

func fila(sku, talla string, stock int) importer.Fila {
	return importer.Fila{
		Sku:       sku,
		Modelo:    "Modelo " + sku,
		Categoria: "TEST",
		Talla:     talla,
		Stock:     stock,
		Ean:       "779" + sku + talla,
		Precio:    decimal.NewFromInt(1000),
	}
}

func TestCargaVendidoDescuenta(t *testing.T) {
	repo := newStubProductoRepo()
	seedProducto(repo, "A1", "M", 10, "7791")
	svc := newCargaServiceFija(repo)

	resp, err := svc.Cargar(context.Background(), []importer.Fila{fila("A1", "M", 7)})
	require.NoError(t, err)

	require.Len(t, repo.movimientos, 1)
	m := repo.movimientos[0]
	assert.Equal(t, fechaFija, m.Fecha)
	assert.Equal(t, 10, m.StockAnterior)
	assert.Equal(t, 7, m.StockActual)
	assert.Equal(t, 3, m.Vendido)

	require.Len(t, repo.snapshot, 1)
	assert.Equal(t, 7, repo.snapshot[0].Stock)
	assert.Equal(t, 3, resp.TotalVendido)
	assert.Equal(t, 1, resp.FilasProcesadas)
}

func TestCargaClaveNuncaVista(t *testing.T) {
	repo := newStubProductoRepo()
	svc := newCargaServiceFija(repo)

	// Previous quantity defaults to 0 for a (sku, talla) never seen before:
	// an initial upload produces vendido = 0 on every row.
	_, err := svc.Cargar(context.Background(), []importer.Fila{fila("N1", "S", 5)})
	require.NoError(t, err)

	require.Len(t, repo.movimientos, 1)
	assert.Equal(t, 0, repo.movimientos[0].StockAnterior)
	assert.Equal(t, 0, repo.movimientos[0].Vendido)
}

func TestCargaIdenticaVendidoCero(t *testing.T) {
	repo := newStubProductoRepo()
	svc := newCargaServiceFija(repo)

	filas := []importer.Fila{fila("A1", "M", 10), fila("A1", "L", 4)}
	_, err := svc.Cargar(context.Background(), filas)
	require.NoError(t, err)

	resp, err := svc.Cargar(context.Background(), filas)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalVendido)

	// Both uploads wrote their movements; the second batch is all zeros.
	require.Len(t, repo.movimientos, 4)
	for _, m := range repo.movimientos[2:] {
		assert.Equal(t, 0, m.Vendido)
	}
}

func TestCargaReposicionNoNegativa(t *testing.T) {
	repo := newStubProductoRepo()
	seedProducto(repo, "A1", "M", 5, "7791")
	svc := newCargaServiceFija(repo)

	// Restock 5 → 20: the clamp records zero movement, never a negative sale.
	resp, err := svc.Cargar(context.Background(), []importer.Fila{fila("A1", "M", 20)})
	require.NoError(t, err)

	require.Len(t, repo.movimientos, 1)
	assert.Equal(t, 0, repo.movimientos[0].Vendido)
	assert.Equal(t, 0, resp.TotalVendido)
	assert.Equal(t, 20, repo.snapshot[0].Stock)
}

func TestCargaMovimientoAunSinVenta(t *testing.T) {
	repo := newStubProductoRepo()
	seedProducto(repo, "A1", "M", 10, "7791")
	svc := newCargaServiceFija(repo)

	_, err := svc.Cargar(context.Background(), []importer.Fila{
		fila("A1", "M", 10), // unchanged
		fila("A1", "L", 2),  // new key
	})
	require.NoError(t, err)

	// One movement per uploaded row, even when vendido is zero.
	assert.Len(t, repo.movimientos, 2)
}

func TestCargaReemplazaSnapshotCompleto(t *testing.T) {
	repo := newStubProductoRepo()
	seedProducto(repo, "VIEJO", "M", 9, "7700")
	svc := newCargaServiceFija(repo)

	_, err := svc.Cargar(context.Background(), []importer.Fila{fila("NUEVO", "L", 1)})
	require.NoError(t, err)

	// The snapshot is fully replaced, not merged: the old key is gone.
	require.Len(t, repo.snapshot, 1)
	assert.Equal(t, "NUEVO", repo.snapshot[0].Sku)
	assert.Equal(t, 1, repo.reemplazos)
}

func TestCargaVacia(t *testing.T) {
	repo := newStubProductoRepo()
	seedProducto(repo, "A1", "M", 10, "7791")
	svc := newCargaServiceFija(repo)

	// An upload with zero data rows still replaces the snapshot with nothing.
	resp, err := svc.Cargar(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, repo.snapshot)
	assert.Empty(t, repo.movimientos)
	assert.Equal(t, 0, resp.FilasProcesadas)
}

func TestCargaSinRedisNoFalla(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewCargaService(repo, nil) // nil redis — invalidation is best effort

	_, err := svc.Cargar(context.Background(), []importer.Fila{fila("A1", "M", 1)})
	require.NoError(t, err)
}

func TestCargaOrdenDeFilasPreservado(t *testing.T) {
	repo := newStubProductoRepo()
	svc := newCargaServiceFija(repo)

	_, err := svc.Cargar(context.Background(), []importer.Fila{
		fila("Z9", "M", 1),
		fila("A1", "M", 2),
		fila("M5", "S", 3),
	})
	require.NoError(t, err)

	require.Len(t, repo.movimientos, 3)
	assert.Equal(t, "Z9", repo.movimientos[0].Sku)
	assert.Equal(t, "A1", repo.movimientos[1].Sku)
	assert.Equal(t, "M5", repo.movimientos[2].Sku)
}

func TestCargaEscenarioCompleto(t *testing.T) {
	repo := newStubProductoRepo()
	svc := newCargaServiceFija(repo)

	// Day 1: initial snapshot.
	_, err := svc.Cargar(context.Background(), []importer.Fila{
		fila("A1", "M", 10),
		fila("A1", "L", 6),
		fila("B2", "U", 3),
	})
	require.NoError(t, err)

	// Day 2 upload: A1/M sold 3, A1/L restocked, B2/U dropped from the file,
	// C3/M appears new.
	resp, err := svc.Cargar(context.Background(), []importer.Fila{
		fila("A1", "M", 7),
		fila("A1", "L", 12),
		fila("C3", "M", 5),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalVendido)

	// B2/U is simply gone from the snapshot — no movement is written for
	// keys absent from the uploaded file.
	claves, err := repo.StockPorClave(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, claves, model.ClaveProducto{Sku: "B2", Talla: "U"})
	assert.Len(t, claves, 3)
}
