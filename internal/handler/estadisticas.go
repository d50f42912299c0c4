package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Juan-204/evc-backend/internal/apierror"
	"github.com/Juan-204/evc-backend/internal/repository"
)

// EstadisticasHandler serves the aggregate queries behind the charts tab.
type EstadisticasHandler struct{ repo repository.EstadisticasRepository }

func NewEstadisticasHandler(repo repository.EstadisticasRepository) *EstadisticasHandler {
	return &EstadisticasHandler{repo: repo}
}

// AnimalesPorEspecie godoc
// @Summary      Total de animales ingresados por especie
// @Tags         estadisticas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.EspecieCantidad
// @Router       /v1/estadisticas/animales-por-especie [get]
func (h *EstadisticasHandler) AnimalesPorEspecie(c *gin.Context) {
	resp, err := h.repo.AnimalesPorEspecie(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular estadisticas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstadisticasHandler) DecomisosPorEspecie(c *gin.Context) {
	resp, err := h.repo.DecomisosPorEspecie(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular estadisticas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// The per-establecimiento aggregates share the query parameter handling.
func establecimientoID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Query("establecimiento_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("establecimiento_id invalido"))
		return 0, false
	}
	return uint(id), true
}

func (h *EstadisticasHandler) AnimalesPorEstablecimiento(c *gin.Context) {
	id, ok := establecimientoID(c)
	if !ok {
		return
	}
	resp, err := h.repo.AnimalesPorEspecieEstablecimiento(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular estadisticas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstadisticasHandler) DistribucionSexo(c *gin.Context) {
	id, ok := establecimientoID(c)
	if !ok {
		return
	}
	resp, err := h.repo.DistribucionSexo(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular estadisticas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstadisticasHandler) PesoPromedio(c *gin.Context) {
	id, ok := establecimientoID(c)
	if !ok {
		return
	}
	resp, err := h.repo.PesoPromedio(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular estadisticas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstadisticasHandler) EvolucionIngresos(c *gin.Context) {
	id, ok := establecimientoID(c)
	if !ok {
		return
	}
	resp, err := h.repo.EvolucionIngresos(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular estadisticas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
