//go:build integration

package e2e

// e2e_test.go
// End-to-end integration tests using real Postgres via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// These tests:
//   - Full cycle: login → ingreso → animales disponibles → guia → PDF on disk
//   - A guia with a decomiso on an "A" line is rejected and nothing persists
//   - Re-registering an ingreso on the same date appends to the existing one

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/crypto/bcrypt"

	"github.com/Juan-204/evc-backend/internal/config"
	"github.com/Juan-204/evc-backend/internal/infra"
	"github.com/Juan-204/evc-backend/internal/router"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server  *httptest.Server
	token   string // admin JWT
	engine  *gin.Engine
	pdfDir  string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("evc_test"),
		tcPostgres.WithUsername("evc"),
		tcPostgres.WithPassword("evc"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		DatabaseURL:        pgURL,
		PDFStoragePath:     t.TempDir(),
		PlantaEmail:        "emp.varias@caicedonia-valle.gov.co",
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	// Seed admin user
	hash, err := bcrypt.GenerateFromPassword([]byte("evc2026"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Exec(`
		INSERT INTO usuarios (id, username, nombre, password_hash, rol, activo, created_at, updated_at)
		VALUES (gen_random_uuid(), 'admin@e2e.test', 'Admin E2E', ?, 'administrador', true, NOW(), NOW())`,
		string(hash)).Error)

	// Seed the catalogs the forms select from
	require.NoError(t, db.Exec(`INSERT INTO planta (id, nombre, telefono, direccion) VALUES (1, 'Planta Caicedonia', '000-0000', 'Km 1')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO departamento (id, nombre_departamento) VALUES (1, 'Valle del Cauca')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO municipio (id, id_departamento, nombre_municipios) VALUES (1, 1, 'Caicedonia')`).Error)
	require.NoError(t, db.Exec(`
		INSERT INTO establecimiento (id, id_municipio, nombre_dueno, nombre_establecimiento, direccion, marca_diferencial)
		VALUES (1, 1, 'Juan Gomez', 'Carnes La 14', 'Calle 10 # 4-20', 'L14')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO vehiculo (id, placa, tipo_vehiculo, tipo_refrigeracion) VALUES (1, 'ABC123', 'Furgon', 'Frio')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO conductores (id, nombre, numero_cedula, telefono) VALUES (1, 'Pedro Perez', '1094000000', '300-0000')`).Error)

	r := router.New(cfg, db)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"username": "admin@e2e.test", "password": "evc2026"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{
		server: srv,
		token:  loginBody.AccessToken,
		engine: r,
		pdfDir: cfg.PDFStoragePath,
	}
}

func registrarIngreso(t *testing.T, env *testEnv, fecha string, numeros ...int) {
	t.Helper()
	animales := make([]map[string]any, 0, len(numeros))
	for _, n := range numeros {
		animales = append(animales, map[string]any{
			"numero_animal":     n,
			"peso":              420.5,
			"numero_tiquete":    1000 + n,
			"sexo":              "Macho",
			"guia_movilizacion": "GM-001",
			"fecha_ingreso":     fecha,
			"especie":           "Bovino",
			"destino":           1,
			"numero_corral":     2,
		})
	}
	resp := do(t, env.server, "POST", "/v1/ingresos",
		jsonBody(t, map[string]any{"fecha": fecha, "id_planta": 1, "animales": animales}),
		env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

type disponible struct {
	NumeroAnimal     int  `json:"numero_animal"`
	IDIngresoDetalle uint `json:"id_ingreso_detalle"`
	IDAnimal         uint `json:"id_animal"`
}

func animalesDisponibles(t *testing.T, env *testEnv, fecha string) []disponible {
	t.Helper()
	resp := do(t, env.server, "GET",
		fmt.Sprintf("/v1/animales/disponibles?marca_diferencial=L14&fecha=%s", fecha), nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out []disponible
	decodeJSON(t, resp, &out)
	return out
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_FullGuiaCycle(t *testing.T) {
	env := setupTestEnv(t)
	fecha := "2026-03-10"

	registrarIngreso(t, env, fecha, 1, 2)

	disponibles := animalesDisponibles(t, env, fecha)
	require.Len(t, disponibles, 2)

	linea := func(d disponible) map[string]any {
		return map[string]any{
			"id_ingreso_detalle":   d.IDIngresoDetalle,
			"id_animal":            d.IDAnimal,
			"carne_octavos":        8,
			"viseras_blancas":      1,
			"viseras_rojas":        1,
			"cabezas":              1,
			"temperatura_promedio": 3.5,
			"dictamen":             "A",
		}
	}
	lineaAC := linea(disponibles[1])
	lineaAC["dictamen"] = "AC"
	lineaAC["decomisos"] = []map[string]any{{
		"id_animal": disponibles[1].IDAnimal,
		"producto":  "Higado",
		"cantidad":  1,
		"motivo":    "Fasciola",
		"fecha":     fecha,
	}}

	guiaResp := do(t, env.server, "POST", "/v1/guias",
		jsonBody(t, map[string]any{
			"fecha":           fecha,
			"id_planta":       1,
			"id_destino":      1,
			"id_vehiculo":     1,
			"id_conductores":  1,
			"guia_transporte": []map[string]any{linea(disponibles[0]), lineaAC},
		}), env.token)
	require.Equal(t, http.StatusCreated, guiaResp.StatusCode)

	var guia struct {
		ID          uint   `json:"id"`
		Detalles    int    `json:"detalles"`
		Decomisos   int    `json:"decomisos"`
		PDFGenerado bool   `json:"pdf_generado"`
		PDFRuta     string `json:"pdf_ruta"`
	}
	decodeJSON(t, guiaResp, &guia)
	assert.Equal(t, 2, guia.Detalles)
	assert.Equal(t, 1, guia.Decomisos)

	// The manifest document lands in the reports directory
	require.True(t, guia.PDFGenerado)
	assert.Equal(t, filepath.Join(env.pdfDir, fmt.Sprintf("guia_transporte_%d.pdf", guia.ID)), guia.PDFRuta)
	info, err := os.Stat(guia.PDFRuta)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// The guia shows up in the per-establecimiento listing with its animals
	listResp := do(t, env.server, "GET", "/v1/guias?establecimiento_id=1", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var items []struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, listResp, &items)
	require.Len(t, items, 1)
	assert.Equal(t, guia.ID, items[0].ID)

	animResp := do(t, env.server, "GET", fmt.Sprintf("/v1/guias/%d/animales", guia.ID), nil, env.token)
	require.Equal(t, http.StatusOK, animResp.StatusCode)
	var animales []struct {
		NumeroAnimal int `json:"numero_animal"`
	}
	decodeJSON(t, animResp, &animales)
	assert.Len(t, animales, 2)

	// The stored manifest can be downloaded back
	dlResp := do(t, env.server, "GET", fmt.Sprintf("/v1/guias/%d/pdf?destino=1", guia.ID), nil, env.token)
	require.Equal(t, http.StatusOK, dlResp.StatusCode)
	dlBody, err := io.ReadAll(dlResp.Body)
	require.NoError(t, err)
	dlResp.Body.Close()
	assert.Equal(t, info.Size(), int64(len(dlBody)))
}

func TestE2E_DecomisoEnLineaAprobadaRechazado(t *testing.T) {
	env := setupTestEnv(t)
	fecha := "2026-03-10"

	registrarIngreso(t, env, fecha, 1)
	disponibles := animalesDisponibles(t, env, fecha)
	require.Len(t, disponibles, 1)

	guiaResp := do(t, env.server, "POST", "/v1/guias",
		jsonBody(t, map[string]any{
			"fecha":          fecha,
			"id_planta":      1,
			"id_destino":     1,
			"id_vehiculo":    1,
			"id_conductores": 1,
			"guia_transporte": []map[string]any{{
				"id_ingreso_detalle":   disponibles[0].IDIngresoDetalle,
				"id_animal":            disponibles[0].IDAnimal,
				"carne_octavos":        8,
				"viseras_blancas":      1,
				"viseras_rojas":        1,
				"cabezas":              1,
				"temperatura_promedio": 3.5,
				"dictamen":             "A",
				"decomisos": []map[string]any{{
					"id_animal": disponibles[0].IDAnimal,
					"producto":  "Pulmon",
					"cantidad":  1,
					"motivo":    "Congestion",
					"fecha":     fecha,
				}},
			}},
		}), env.token)
	require.Equal(t, http.StatusBadRequest, guiaResp.StatusCode)
	guiaResp.Body.Close()

	// Nothing was committed
	listResp := do(t, env.server, "GET", "/v1/guias?establecimiento_id=1", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var items []any
	decodeJSON(t, listResp, &items)
	assert.Empty(t, items)
}

func TestE2E_IngresoMismaFechaAgrega(t *testing.T) {
	env := setupTestEnv(t)
	fecha := "2026-03-10"

	registrarIngreso(t, env, fecha, 1, 2)
	registrarIngreso(t, env, fecha, 3)

	// One ingreso with three animals, all still dispatchable
	getResp := do(t, env.server, "GET", "/v1/ingresos?fecha="+fecha, nil, env.token)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var ingreso struct {
		IDIngreso uint `json:"id_ingreso"`
		Detalles  []struct {
			NumeroAnimal int `json:"numero_animal"`
		} `json:"detalles"`
	}
	decodeJSON(t, getResp, &ingreso)
	assert.Len(t, ingreso.Detalles, 3)

	disponibles := animalesDisponibles(t, env, fecha)
	assert.Len(t, disponibles, 3)
}
