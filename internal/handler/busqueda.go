package handler

import (
	"errors"
	"net/http"

	"github.com/Cesar-andres10/bodega-proyecto/internal/apierror"
	"github.com/Cesar-andres10/bodega-proyecto/internal/dto"
	"github.com/Cesar-andres10/bodega-proyecto/internal/service"

	"github.com/gin-gonic/gin"
)

type BusquedaHandler struct{ svc service.BusquedaService }

func NewBusquedaHandler(svc service.BusquedaService) *BusquedaHandler {
	return &BusquedaHandler{svc: svc}
}

// Buscar godoc
// @Summary Busca un producto por EAN o SKU y devuelve su stock por talla
// @Tags busqueda
// @Accept mpfd
// @Produce json
// @Param codigo formData string true "Codigo escaneado o tipeado"
// @Success 200 {object} dto.BusquedaResponse
// @Failure 404 {object} apierror.APIError
// @Router /buscar [post]
func (h *BusquedaHandler) Buscar(c *gin.Context) {
	var req dto.BuscarRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Buscar(c.Request.Context(), req.Codigo)
	if err != nil {
		if errors.Is(err, service.ErrProductoNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
