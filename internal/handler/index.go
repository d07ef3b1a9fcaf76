package handler

import (
	"net/http"

	"github.com/Cesar-andres10/bodega-proyecto/internal/repository"

	"github.com/gin-gonic/gin"
)

// paginaInicio is the static landing page: upload and search forms plus a
// link to the daily report. No core interaction happens here.
const paginaInicio = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <title>Bodega — control de stock</title>
</head>
<body>
  <h1>Bodega — control de stock</h1>

  <h2>Cargar Excel</h2>
  <form action="/cargar_excel" method="post" enctype="multipart/form-data">
    <input type="password" name="clave" placeholder="Clave" required>
    <input type="file" name="archivo" accept=".xlsx" required>
    <button type="submit">Cargar</button>
  </form>

  <h2>Buscar producto</h2>
  <form action="/buscar" method="post">
    <input type="text" name="codigo" placeholder="EAN o SKU" autofocus required>
    <button type="submit">Buscar</button>
  </form>

  <p><a href="/historial">Historial del día</a> · <a href="/snapshot">Snapshot actual</a></p>
</body>
</html>`

// Index serves the landing page.
func Index() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(paginaInicio))
	}
}

// SnapshotHandler exposes the current snapshot read-only, for the landing
// page and for spot checks after an upload.
type SnapshotHandler struct{ repo repository.ProductoRepository }

func NewSnapshotHandler(repo repository.ProductoRepository) *SnapshotHandler {
	return &SnapshotHandler{repo: repo}
}

// Listar godoc
// @Summary Snapshot de stock vigente
// @Tags snapshot
// @Produce json
// @Success 200 {array} model.Producto
// @Router /snapshot [get]
func (h *SnapshotHandler) Listar(c *gin.Context) {
	productos, err := h.repo.ListarSnapshot(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, productos)
}
