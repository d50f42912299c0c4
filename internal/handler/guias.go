package handler

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Juan-204/evc-backend/internal/apierror"
	"github.com/Juan-204/evc-backend/internal/dto"
	"github.com/Juan-204/evc-backend/internal/service"
)

type GuiasHandler struct{ svc service.GuiaService }

func NewGuiasHandler(svc service.GuiaService) *GuiasHandler { return &GuiasHandler{svc: svc} }

// GuardarGuia godoc
// @Summary      Registrar una guía de transporte
// @Description  Crea la guía completa en una transacción: pareja vehículo-conductor, encabezado, detalles y decomisos. Al confirmar genera el PDF del manifiesto.
// @Tags         guias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.GuardarGuiaRequest true "Guía completa"
// @Success      201  {object} dto.GuardarGuiaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/guias [post]
func (h *GuiasHandler) GuardarGuia(c *gin.Context) {
	var req dto.GuardarGuiaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GuardarGuia(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GenerarPDF godoc
// @Summary      Regenerar el PDF de una guía existente
// @Tags         guias
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  int true "ID de la guía"
// @Param        destino query int true "ID del establecimiento destino"
// @Success      200 {object} map[string]string
// @Failure      400 {object} apierror.APIError
// @Router       /v1/guias/{id}/pdf [post]
func (h *GuiasHandler) GenerarPDF(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	destino, err := strconv.ParseUint(c.Query("destino"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("destino invalido"))
		return
	}
	ruta, err := h.svc.GenerarPDF(c.Request.Context(), uint(id), uint(destino))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pdf_ruta": ruta})
}

// DescargarPDF godoc
// @Summary      Descargar el PDF de una guía
// @Description  Sirve el archivo almacenado en reportes_pdf, regenerándolo desde la guía confirmada si no existe.
// @Tags         guias
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id      path  int true "ID de la guía"
// @Param        destino query int true "ID del establecimiento destino"
// @Success      200 {file} file
// @Failure      400 {object} apierror.APIError
// @Router       /v1/guias/{id}/pdf [get]
func (h *GuiasHandler) DescargarPDF(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	destino, err := strconv.ParseUint(c.Query("destino"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("destino invalido"))
		return
	}
	ruta, err := h.svc.DescargarPDF(c.Request.Context(), uint(id), uint(destino))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.FileAttachment(ruta, filepath.Base(ruta))
}

// Listar godoc
// @Summary      Listar guías por establecimiento destino
// @Tags         guias
// @Produce      json
// @Security     BearerAuth
// @Param        establecimiento_id query int true "ID del establecimiento"
// @Success      200 {array} dto.GuiaListItem
// @Router       /v1/guias [get]
func (h *GuiasHandler) Listar(c *gin.Context) {
	establecimiento, err := strconv.ParseUint(c.Query("establecimiento_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("establecimiento_id invalido"))
		return
	}
	resp, err := h.svc.ListPorEstablecimiento(c.Request.Context(), uint(establecimiento))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Animales godoc
// @Summary      Animales asociados a una guía
// @Tags         guias
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID de la guía"
// @Success      200 {array} dto.AnimalGuiaResponse
// @Router       /v1/guias/{id}/animales [get]
func (h *GuiasHandler) Animales(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.AnimalesPorGuia(c.Request.Context(), uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
