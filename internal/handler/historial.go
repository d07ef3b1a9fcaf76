package handler

import (
	"net/http"

	"github.com/Cesar-andres10/bodega-proyecto/internal/service"

	"github.com/gin-gonic/gin"
)

type HistorialHandler struct{ svc service.HistorialService }

func NewHistorialHandler(svc service.HistorialService) *HistorialHandler {
	return &HistorialHandler{svc: svc}
}

// DelDia godoc
// @Summary Movimientos con ventas del dia actual y su total
// @Tags historial
// @Produce json
// @Success 200 {object} dto.HistorialResponse
// @Router /historial [get]
func (h *HistorialHandler) DelDia(c *gin.Context) {
	resp, err := h.svc.DelDia(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
