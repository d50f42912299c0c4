package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juan-204/evc-backend/internal/dto"
	"github.com/Juan-204/evc-backend/internal/handler"
	"github.com/Juan-204/evc-backend/internal/middleware"
	"github.com/Juan-204/evc-backend/internal/service"
)

// stubIngresoSvc records the user id the handler resolved from the token.
type stubIngresoSvc struct {
	llamadas int
	idUser   uuid.UUID
}

func (s *stubIngresoSvc) RegistrarIngreso(_ context.Context, idUser uuid.UUID, _ dto.RegistrarIngresoRequest) (*dto.RegistrarIngresoResponse, error) {
	s.llamadas++
	s.idUser = idUser
	return &dto.RegistrarIngresoResponse{IDIngreso: 1, Animales: 1}, nil
}

func (s *stubIngresoSvc) ObtenerPorFecha(_ context.Context, _ string) (*dto.IngresoResponse, error) {
	return nil, nil
}

var _ service.IngresoService = (*stubIngresoSvc)(nil)

func ingresoPayload(t *testing.T) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"fecha":     "2026-03-10",
		"id_planta": 1,
		"animales": []map[string]any{{
			"numero_animal":     101,
			"peso":              250.5,
			"numero_tiquete":    7,
			"sexo":              "Macho",
			"guia_movilizacion": "GM-100",
			"fecha_ingreso":     "2026-03-10",
			"especie":           "Bovino",
			"destino":           1,
			"numero_corral":     2,
		}},
	})
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// registrarConUserID runs POST /v1/ingresos with the given user_id claim
// already set, the way JWTAuth would leave it.
func registrarConUserID(t *testing.T, svc *stubIngresoSvc, userID string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewIngresosHandler(svc)
	r.POST("/v1/ingresos", func(c *gin.Context) {
		c.Set(middleware.ClaimsKey, &middleware.JWTClaims{UserID: userID, Username: "operario1", Rol: "operario"})
	}, h.Registrar)

	req := httptest.NewRequest(http.MethodPost, "/v1/ingresos", ingresoPayload(t))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegistrar_UserIDInvalidoRechazado(t *testing.T) {
	svc := &stubIngresoSvc{}
	w := registrarConUserID(t, svc, "no-es-un-uuid")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, svc.llamadas, "nothing registered under a bogus user id")
}

func TestRegistrar_UserIDValido(t *testing.T) {
	id := uuid.New()
	svc := &stubIngresoSvc{}
	w := registrarConUserID(t, svc, id.String())

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, svc.llamadas)
	assert.Equal(t, id, svc.idUser)
}
