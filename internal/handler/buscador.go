package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Juan-204/evc-backend/internal/apierror"
	"github.com/Juan-204/evc-backend/internal/dto"
	"github.com/Juan-204/evc-backend/internal/repository"
)

// BuscadorHandler serves the animal search and availability lookups backing
// the desktop search form and the manifest line selector. Pure reads, so it
// talks to the repository directly.
type BuscadorHandler struct{ repo repository.AnimalRepository }

func NewBuscadorHandler(repo repository.AnimalRepository) *BuscadorHandler {
	return &BuscadorHandler{repo: repo}
}

// Buscar godoc
// @Summary      Buscar animales por coincidencia parcial
// @Description  Busca por id, número de animal, número de tiquete o guía de movilización.
// @Tags         animales
// @Produce      json
// @Security     BearerAuth
// @Param        q query string true "Término de búsqueda"
// @Success      200 {array} dto.AnimalBusquedaResponse
// @Router       /v1/animales/buscar [get]
func (h *BuscadorHandler) Buscar(c *gin.Context) {
	termino := c.Query("q")
	if termino == "" {
		c.JSON(http.StatusBadRequest, apierror.New("q requerido"))
		return
	}
	animales, err := h.repo.Buscar(c.Request.Context(), termino)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar animales"))
		return
	}

	resp := make([]dto.AnimalBusquedaResponse, 0, len(animales))
	for _, a := range animales {
		row := dto.AnimalBusquedaResponse{
			ID:               a.ID,
			NumeroAnimal:     a.NumeroAnimal,
			NumeroTiquete:    a.NumeroTiquete,
			GuiaMovilizacion: a.GuiaMovilizacion,
			Especie:          a.Especie,
			Peso:             a.Peso,
			FechaIngreso:     a.FechaIngreso.Format("2006-01-02"),
		}
		if a.FechaGuiaICA != nil {
			row.FechaGuiaICA = a.FechaGuiaICA.Format("2006-01-02")
		}
		resp = append(resp, row)
	}
	c.JSON(http.StatusOK, resp)
}

// Disponibles godoc
// @Summary      Animales despachables para una marca diferencial y fecha
// @Description  Lista los animales ingresados para el establecimiento de la marca en esa fecha que siguen sin despachar.
// @Tags         animales
// @Produce      json
// @Security     BearerAuth
// @Param        marca_diferencial query string true "Marca diferencial del establecimiento"
// @Param        fecha             query string true "Fecha YYYY-MM-DD"
// @Success      200 {array} dto.AnimalDisponibleResponse
// @Router       /v1/animales/disponibles [get]
func (h *BuscadorHandler) Disponibles(c *gin.Context) {
	marca := c.Query("marca_diferencial")
	if marca == "" {
		c.JSON(http.StatusBadRequest, apierror.New("marca_diferencial requerida"))
		return
	}
	fecha, err := time.Parse("2006-01-02", c.Query("fecha"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("fecha invalida"))
		return
	}
	resp, err := h.repo.Disponibles(c.Request.Context(), marca, fecha)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar animales disponibles"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
