package handler

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Cesar-andres10/bodega-proyecto/internal/apierror"
	"github.com/Cesar-andres10/bodega-proyecto/internal/config"
	"github.com/Cesar-andres10/bodega-proyecto/internal/importer"
	"github.com/Cesar-andres10/bodega-proyecto/internal/service"

	"github.com/gin-gonic/gin"
)

// CargaHandler serves POST /cargar_excel: clave check, file intake,
// normalization, and the snapshot reconciliation.
type CargaHandler struct {
	cfg *config.Config
	nrm *importer.Normalizador
	svc service.CargaService
}

func NewCargaHandler(cfg *config.Config, nrm *importer.Normalizador, svc service.CargaService) *CargaHandler {
	return &CargaHandler{cfg: cfg, nrm: nrm, svc: svc}
}

// CargarExcel godoc
// @Summary Carga un snapshot de stock desde un archivo Excel
// @Tags carga
// @Accept mpfd
// @Param clave formData string true "Clave de carga"
// @Param archivo formData file true "Archivo .xlsx"
// @Success 303
// @Failure 401 {object} apierror.APIError
// @Failure 400 {object} apierror.APIError
// @Router /cargar_excel [post]
func (h *CargaHandler) CargarExcel(c *gin.Context) {
	// The clave gate runs before the file is read or the store is touched.
	clave := c.PostForm("clave")
	if subtle.ConstantTimeCompare([]byte(clave), []byte(h.cfg.ClaveStock)) != 1 {
		c.JSON(http.StatusUnauthorized, apierror.New(service.ErrClaveInvalida.Error()))
		return
	}

	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(service.ErrArchivoFaltante.Error()))
		return
	}
	if fileHeader.Size > h.cfg.MaxUploadMB<<20 {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New("Archivo demasiado grande"))
		return
	}

	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("bodega_carga_%d_%s", time.Now().UnixNano(), filepath.Base(fileHeader.Filename)))
	if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
		c.Error(err)
		return
	}
	defer os.Remove(tempPath)

	filas, err := h.nrm.LeerArchivo(tempPath)
	if err != nil {
		var colErr *importer.ColumnaFaltanteError
		if errors.As(err, &colErr) {
			c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{colErr.Campo: "required"}))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el Excel"))
		return
	}

	resp, err := h.svc.Cargar(c.Request.Context(), filas)
	if err != nil {
		c.Error(err)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, resp)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
