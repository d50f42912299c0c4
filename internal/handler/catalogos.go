package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Juan-204/evc-backend/internal/apierror"
	"github.com/Juan-204/evc-backend/internal/dto"
	"github.com/Juan-204/evc-backend/internal/repository"
)

// CatalogosHandler serves the selector lists for the intake and dispatch
// forms: plantas, vehículos, conductores and establecimientos.
type CatalogosHandler struct{ repo repository.CatalogoRepository }

func NewCatalogosHandler(repo repository.CatalogoRepository) *CatalogosHandler {
	return &CatalogosHandler{repo: repo}
}

func (h *CatalogosHandler) Plantas(c *gin.Context) {
	plantas, err := h.repo.Plantas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar plantas"))
		return
	}
	resp := make([]dto.PlantaResponse, 0, len(plantas))
	for _, p := range plantas {
		resp = append(resp, dto.PlantaResponse{ID: p.ID, Nombre: p.Nombre})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogosHandler) Vehiculos(c *gin.Context) {
	vehiculos, err := h.repo.Vehiculos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar vehiculos"))
		return
	}
	resp := make([]dto.VehiculoResponse, 0, len(vehiculos))
	for _, v := range vehiculos {
		resp = append(resp, dto.VehiculoResponse{
			ID:                v.ID,
			Placa:             v.Placa,
			TipoVehiculo:      v.TipoVehiculo,
			TipoRefrigeracion: v.TipoRefrigeracion,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogosHandler) Conductores(c *gin.Context) {
	conductores, err := h.repo.Conductores(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar conductores"))
		return
	}
	resp := make([]dto.ConductorResponse, 0, len(conductores))
	for _, co := range conductores {
		resp = append(resp, dto.ConductorResponse{
			ID:           co.ID,
			Nombre:       co.Nombre,
			NumeroCedula: co.NumeroCedula,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogosHandler) Establecimientos(c *gin.Context) {
	establecimientos, err := h.repo.Establecimientos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar establecimientos"))
		return
	}
	resp := make([]dto.EstablecimientoResponse, 0, len(establecimientos))
	for _, e := range establecimientos {
		resp = append(resp, dto.EstablecimientoResponse{
			ID:                    e.ID,
			NombreEstablecimiento: e.NombreEstablecimiento,
			MarcaDiferencial:      e.MarcaDiferencial,
		})
	}
	c.JSON(http.StatusOK, resp)
}
