package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Juan-204/evc-backend/internal/apierror"
	"github.com/Juan-204/evc-backend/internal/dto"
	"github.com/Juan-204/evc-backend/internal/middleware"
	"github.com/Juan-204/evc-backend/internal/service"
)

type IngresosHandler struct{ svc service.IngresoService }

func NewIngresosHandler(svc service.IngresoService) *IngresosHandler {
	return &IngresosHandler{svc: svc}
}

// Registrar godoc
// @Summary      Registrar un ingreso de animales
// @Description  Registra el lote completo de animales de una fecha. Si el usuario ya tiene un ingreso para esa fecha, el lote se agrega al existente.
// @Tags         ingresos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarIngresoRequest true "Lote de animales"
// @Success      201  {object} dto.RegistrarIngresoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/ingresos [post]
func (h *IngresosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarIngresoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token invalido"))
		return
	}

	resp, err := h.svc.RegistrarIngreso(c.Request.Context(), usuarioID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// PorFecha godoc
// @Summary      Ingreso de una fecha con todos sus animales
// @Tags         ingresos
// @Produce      json
// @Security     BearerAuth
// @Param        fecha query string true "Fecha YYYY-MM-DD"
// @Success      200 {object} dto.IngresoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/ingresos [get]
func (h *IngresosHandler) PorFecha(c *gin.Context) {
	fecha := c.Query("fecha")
	if fecha == "" {
		c.JSON(http.StatusBadRequest, apierror.New("fecha requerida"))
		return
	}
	resp, err := h.svc.ObtenerPorFecha(c.Request.Context(), fecha)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("No hay ingreso para esa fecha"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
