package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"asistencia-backend/config"
	"asistencia-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t     *testing.T
	app   *fiber.App
	token string
}

func newClient(t *testing.T) *apiClient {
	t.Helper()
	cfg := &config.Config{
		AppEnv:             "test",
		APIPrefix:          "/api",
		JWTSecret:          "routes-secret",
		JWTExpiresIn:       time.Hour,
		RequestTimeout:     5 * time.Second,
		CORSAllowedOrigins: []string{"*"},
	}
	return &apiClient{t: t, app: NewApp(testutil.NewDB(t), cfg)}
}

func (c *apiClient) do(method, path string, body any) (int, map[string]any) {
	c.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if c.token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}

	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(c.t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func (c *apiClient) login() {
	c.t.Helper()
	status, body := c.do(fiber.MethodPost, "/api/auth/login", fiber.Map{
		"email":    testutil.AdminEmail,
		"password": testutil.AdminPassword,
	})
	require.Equal(c.t, fiber.StatusOK, status, body)
	c.token = body["token"].(string)
}

func dataMap(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "data: %v", body)
	return data
}

func TestEndToEnd_RecordAndReport(t *testing.T) {
	c := newClient(t)
	c.login()

	// 1. Empresa
	status, body := c.do(fiber.MethodPost, "/api/empresas", fiber.Map{"nombre": "Acme", "rut": "76.000.000-1"})
	require.Equal(t, fiber.StatusCreated, status, body)
	empresa := dataMap(t, body)
	assert.Equal(t, true, empresa["activo"])
	empresaID := empresa["id"].(float64)

	// 2. Empleado
	status, body = c.do(fiber.MethodPost, "/api/empleados", fiber.Map{
		"empresa_id":      empresaID,
		"nombre_completo": "Juan Pérez",
		"rut":             "11.111.111-1",
		"fecha_ingreso":   "2023-05-01",
	})
	require.Equal(t, fiber.StatusCreated, status, body)
	empleado := dataMap(t, body)
	assert.Equal(t, "Acme", empleado["empresa_nombre"])
	empleadoID := empleado["id"].(float64)

	// 3. Asistencia por código de tipo
	status, body = c.do(fiber.MethodPost, "/api/asistencias", fiber.Map{
		"empleado_id": empleadoID,
		"fecha":       "2024-01-01",
		"tipo_codigo": "PRESENTE",
		"hora":        "08:00",
	})
	require.Equal(t, fiber.StatusCreated, status, body)
	asistencia := dataMap(t, body)
	assert.Equal(t, "08:00:00", asistencia["hora"])
	assert.Equal(t, "PRESENTE", asistencia["tipo_codigo"])
	assert.Equal(t, "Acme", asistencia["empresa_nombre"])

	// 4. Duplicado
	status, body = c.do(fiber.MethodPost, "/api/asistencias", fiber.Map{
		"empleado_id": empleadoID,
		"fecha":       "2024-01-01",
		"tipo_codigo": "PRESENTE",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Ya existe un registro de asistencia para ese empleado, fecha y tipo.", body["message"])

	status, body = c.do(fiber.MethodGet, "/api/asistencias?empresaId=todas", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 1)

	// 5. Reporte
	status, body = c.do(fiber.MethodPost, "/api/reportes", fiber.Map{
		"empresaId":   "todas",
		"empleadoId":  nil,
		"fechaInicio": "2024-01-01",
		"fechaFin":    "2024-01-31",
	})
	require.Equal(t, fiber.StatusOK, status, body)
	reporte := dataMap(t, body)
	assert.Equal(t, float64(1), reporte["empleados"])
	assert.Equal(t, float64(1), reporte["asistencias"])
	assert.Equal(t, float64(0), reporte["inasistencias"])
	assert.Equal(t, float64(8), reporte["horasTotales"])

	resultados := reporte["resultados"].([]any)
	require.Len(t, resultados, 1)
	fila := resultados[0].(map[string]any)
	assert.Equal(t, "Acme", fila["empresa"])
	assert.Equal(t, "Juan Pérez", fila["empleado"])
	assert.Equal(t, "08:00:00", fila["entrada"])
	assert.Nil(t, fila["salida"])
	assert.Equal(t, float64(8), fila["horas"])

	// empresaId numérico en string
	status, body = c.do(fiber.MethodPost, "/api/reportes", fiber.Map{
		"empresaId":   "9999",
		"fechaInicio": "2024-01-01",
		"fechaFin":    "2024-01-31",
	})
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, float64(0), dataMap(t, body)["asistencias"])
}

func TestLogin_FailuresLookTheSame(t *testing.T) {
	c := newClient(t)

	unknownStatus, unknownBody := c.do(fiber.MethodPost, "/api/auth/login", fiber.Map{"email": "nadie@test.cl", "password": "x"})
	wrongStatus, wrongBody := c.do(fiber.MethodPost, "/api/auth/login", fiber.Map{"email": testutil.AdminEmail, "password": "x"})

	assert.Equal(t, fiber.StatusUnauthorized, unknownStatus)
	assert.Equal(t, unknownStatus, wrongStatus)
	assert.Equal(t, unknownBody, wrongBody)
	assert.Equal(t, "Credenciales inválidas.", wrongBody["message"])

	status, body := c.do(fiber.MethodPost, "/api/auth/login", fiber.Map{"email": testutil.AdminEmail})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["ok"])
}

func TestLogin_ResponseShapeAndMe(t *testing.T) {
	c := newClient(t)

	status, body := c.do(fiber.MethodPost, "/api/auth/login", fiber.Map{
		"email":    testutil.AdminEmail,
		"password": testutil.AdminPassword,
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	data := dataMap(t, body)
	assert.Equal(t, body["token"], data["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, testutil.AdminEmail, user["email"])
	assert.Equal(t, "Administrador", user["rol"])
	assert.NotContains(t, user, "password_hash")

	c.token = body["token"].(string)
	status, body = c.do(fiber.MethodGet, "/api/auth/me", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, testutil.AdminEmail, dataMap(t, body)["email"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	c := newClient(t)

	for _, path := range []string{"/api/empresas", "/api/empleados", "/api/asistencias", "/api/catalogos/comunas", "/api/auth/me"} {
		status, body := c.do(fiber.MethodGet, path, nil)
		assert.Equal(t, fiber.StatusUnauthorized, status, path)
		assert.Equal(t, false, body["ok"], path)
	}

	status, _ := c.do(fiber.MethodPost, "/api/reportes", fiber.Map{})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestPublicRoutes(t *testing.T) {
	c := newClient(t)

	status, body := c.do(fiber.MethodGet, "/api/health", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["ok"])

	status, _ = c.do(fiber.MethodGet, "/metrics", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, body = c.do(fiber.MethodGet, "/api/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Ruta no encontrada.", body["message"])
}

func TestEmpresaRoutes(t *testing.T) {
	c := newClient(t)
	c.login()

	status, body := c.do(fiber.MethodPost, "/api/empresas", fiber.Map{"nombre": "Acme"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NotEmpty(t, body["errors"])

	status, body = c.do(fiber.MethodPost, "/api/empresas", fiber.Map{"nombre": "Acme", "rut": "76.000.000-1", "giro": "Retail"})
	require.Equal(t, fiber.StatusCreated, status, body)
	id := int(dataMap(t, body)["id"].(float64))
	path := "/api/empresas/" + itoa(id)

	status, body = c.do(fiber.MethodPost, "/api/empresas", fiber.Map{"nombre": "Acme", "rut": "76.999.999-9"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Ya existe una empresa con ese nombre o RUT.", body["message"])

	status, body = c.do(fiber.MethodPut, path, fiber.Map{})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Empresa no encontrada o sin cambios.", body["message"])

	status, body = c.do(fiber.MethodPut, path, fiber.Map{"giro": nil, "telefono": "2222"})
	require.Equal(t, fiber.StatusOK, status, body)
	empresa := dataMap(t, body)
	assert.Nil(t, empresa["giro"])
	assert.Equal(t, "2222", empresa["telefono"])
	assert.Equal(t, "Acme", empresa["nombre"])

	status, _ = c.do(fiber.MethodPut, "/api/empresas/9999", fiber.Map{"telefono": "1"})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = c.do(fiber.MethodGet, "/api/empresas/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = c.do(fiber.MethodDelete, path, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, body = c.do(fiber.MethodGet, "/api/empresas", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, body["data"])

	status, body = c.do(fiber.MethodGet, "/api/empresas?incluirInactivas=true", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 1)

	status, body = c.do(fiber.MethodGet, path, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, dataMap(t, body)["activo"])

	status, _ = c.do(fiber.MethodDelete, "/api/empresas/9999", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestEmpleadoRoutes(t *testing.T) {
	c := newClient(t)
	c.login()

	_, body := c.do(fiber.MethodPost, "/api/empresas", fiber.Map{"nombre": "Acme", "rut": "76.000.000-1"})
	empresaID := dataMap(t, body)["id"].(float64)

	status, body := c.do(fiber.MethodPost, "/api/empleados", fiber.Map{"empresa_id": empresaID, "nombre_completo": "Ana", "rut": "1-1", "fecha_ingreso": "01-01-2024"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NotEmpty(t, body["errors"])

	status, body = c.do(fiber.MethodPost, "/api/empleados", fiber.Map{"empresa_id": empresaID, "nombre_completo": "Ana", "rut": "1-1"})
	require.Equal(t, fiber.StatusCreated, status, body)
	id := int(dataMap(t, body)["id"].(float64))

	status, body = c.do(fiber.MethodPost, "/api/empleados", fiber.Map{"empresa_id": empresaID, "nombre_completo": "Otra", "rut": "1-1"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Ya existe un empleado con ese RUT.", body["message"])

	for _, q := range []string{"", "?empresaId=todas", "?empresa_id=" + itoa(int(empresaID)), "?comunaId=&estadoCivilId=todos"} {
		status, body = c.do(fiber.MethodGet, "/api/empleados"+q, nil)
		require.Equal(t, fiber.StatusOK, status, q)
		assert.Len(t, body["data"], 1, q)
	}

	status, _ = c.do(fiber.MethodGet, "/api/empleados?empresaId=abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = c.do(fiber.MethodPut, "/api/empleados/"+itoa(id), fiber.Map{"cargo": "Contadora"})
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, "Contadora", dataMap(t, body)["cargo"])

	status, _ = c.do(fiber.MethodDelete, "/api/empleados/"+itoa(id), nil)
	require.Equal(t, fiber.StatusOK, status)
	status, body = c.do(fiber.MethodGet, "/api/empleados", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, body["data"])
}

func TestAsistenciaRoutes_ValidationAndLifecycle(t *testing.T) {
	c := newClient(t)
	c.login()

	_, body := c.do(fiber.MethodPost, "/api/empresas", fiber.Map{"nombre": "Acme", "rut": "76.000.000-1"})
	empresaID := int(dataMap(t, body)["id"].(float64))
	_, body = c.do(fiber.MethodPost, "/api/empleados", fiber.Map{"empresa_id": empresaID, "nombre_completo": "Ana", "rut": "1-1"})
	empleadoID := dataMap(t, body)["id"].(float64)

	tests := map[string]fiber.Map{
		"sin empleado":     {"fecha": "2024-01-01", "tipo_codigo": "PRESENTE"},
		"sin fecha":        {"empleado_id": empleadoID, "tipo_codigo": "PRESENTE"},
		"fecha inválida":   {"empleado_id": empleadoID, "fecha": "2024-13-01", "tipo_codigo": "PRESENTE"},
		"hora inválida":    {"empleado_id": empleadoID, "fecha": "2024-01-01", "tipo_codigo": "PRESENTE", "hora": "8am"},
		"sin tipo":         {"empleado_id": empleadoID, "fecha": "2024-01-01"},
		"tipo inexistente": {"empleado_id": empleadoID, "fecha": "2024-01-01", "tipo_codigo": "NO_EXISTE"},
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			status, body := c.do(fiber.MethodPost, "/api/asistencias", payload)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, false, body["ok"])
		})
	}

	status, body := c.do(fiber.MethodPost, "/api/asistencias", fiber.Map{"empleado_id": empleadoID, "fecha": "2024-01-01", "tipo_codigo": "ausente"})
	require.Equal(t, fiber.StatusCreated, status, body)
	id := itoa(int(dataMap(t, body)["id"].(float64)))

	status, body = c.do(fiber.MethodPut, "/api/asistencias/"+id, fiber.Map{"empleado_id": empleadoID, "fecha": "2024-01-02", "tipo_codigo": "PRESENTE", "hora": "09:15"})
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, "2024-01-02", dataMap(t, body)["fecha"])
	assert.Equal(t, "09:15:00", dataMap(t, body)["hora"])

	status, _ = c.do(fiber.MethodPut, "/api/asistencias/9999", fiber.Map{"empleado_id": empleadoID, "fecha": "2024-01-02", "tipo_codigo": "PRESENTE"})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, body = c.do(fiber.MethodGet, "/api/asistencias/empleado/"+itoa(int(empleadoID))+"?desde=2024-01-01&hasta=2024-01-31", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 1)

	status, body = c.do(fiber.MethodGet, "/api/asistencias/empresa/"+itoa(empresaID), nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 1)

	status, _ = c.do(fiber.MethodGet, "/api/asistencias?desde=ayer", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = c.do(fiber.MethodDelete, "/api/asistencias/"+id, nil)
	require.Equal(t, fiber.StatusOK, status)
	status, _ = c.do(fiber.MethodGet, "/api/asistencias/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _ = c.do(fiber.MethodDelete, "/api/asistencias/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestUnknownReferencesAreRejected(t *testing.T) {
	c := newClient(t)
	c.login()

	_, body := c.do(fiber.MethodPost, "/api/empresas", fiber.Map{"nombre": "Acme", "rut": "76.000.000-1"})
	empresaID := dataMap(t, body)["id"].(float64)
	_, body = c.do(fiber.MethodPost, "/api/empleados", fiber.Map{"empresa_id": empresaID, "nombre_completo": "Ana", "rut": "1-1"})
	empleadoID := dataMap(t, body)["id"].(float64)

	const msgAsistencia = "El empleado o tipo de asistencia indicado no existe."
	const msgEmpleado = "La empresa, comuna o estado civil indicado no existe."

	tests := []struct {
		name    string
		method  string
		path    string
		payload fiber.Map
		message string
	}{
		{"asistencia con empleado inexistente", fiber.MethodPost, "/api/asistencias", fiber.Map{"empleado_id": 999, "fecha": "2024-01-03", "tipo_codigo": "PRESENTE"}, msgAsistencia},
		{"asistencia con tipo inexistente", fiber.MethodPost, "/api/asistencias", fiber.Map{"empleado_id": empleadoID, "fecha": "2024-01-03", "tipo_id": 999}, msgAsistencia},
		{"empleado con empresa inexistente", fiber.MethodPost, "/api/empleados", fiber.Map{"empresa_id": 999, "nombre_completo": "Beto", "rut": "2-2"}, msgEmpleado},
		{"empleado con comuna inexistente", fiber.MethodPut, "/api/empleados/" + itoa(int(empleadoID)), fiber.Map{"comuna_id": 999}, msgEmpleado},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := c.do(tt.method, tt.path, tt.payload)
			assert.Equal(t, fiber.StatusBadRequest, status, body)
			assert.Equal(t, tt.message, body["message"])
		})
	}

	// Ninguna fila huérfana quedó escrita
	status, body := c.do(fiber.MethodGet, "/api/asistencias", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, body["data"])

	status, body = c.do(fiber.MethodGet, "/api/empleados?incluirInactivos=true", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 1)

	status, body = c.do(fiber.MethodGet, "/api/empleados/"+itoa(int(empleadoID)), nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Nil(t, dataMap(t, body)["comuna_id"])
}

func TestReporteRoutes_Validation(t *testing.T) {
	c := newClient(t)
	c.login()

	tests := map[string]fiber.Map{
		"sin fechas":       {"empresaId": "todas"},
		"fecha inválida":   {"fechaInicio": "2024/01/01", "fechaFin": "2024-01-31"},
		"rango invertido":  {"fechaInicio": "2024-02-01", "fechaFin": "2024-01-01"},
		"empresa inválida": {"empresaId": "acme", "fechaInicio": "2024-01-01", "fechaFin": "2024-01-31"},
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			status, body := c.do(fiber.MethodPost, "/api/reportes", payload)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, false, body["ok"])
		})
	}

	for _, path := range []string{"/api/reportes/empleados-estado-civil", "/api/reportes/empleados-comuna?empresaId=todas"} {
		status, body := c.do(fiber.MethodGet, path, nil)
		require.Equal(t, fiber.StatusOK, status, path)
		assert.NotNil(t, body["data"], path)
	}
}

func TestCatalogoRoutes(t *testing.T) {
	c := newClient(t)
	c.login()

	status, body := c.do(fiber.MethodGet, "/api/catalogos/tipos-asistencia", nil)
	require.Equal(t, fiber.StatusOK, status)
	tipos := body["data"].([]any)
	codigos := make([]string, 0, len(tipos))
	for _, tp := range tipos {
		codigos = append(codigos, tp.(map[string]any)["codigo"].(string))
	}
	assert.Contains(t, codigos, "PRESENTE")
	assert.Contains(t, codigos, "AUSENTE")

	for _, path := range []string{"/api/catalogos/empresas", "/api/catalogos/estados-civiles", "/api/catalogos/comunas"} {
		status, _ := c.do(fiber.MethodGet, path, nil)
		assert.Equal(t, fiber.StatusOK, status, path)
	}
}

func itoa(n int) string { return strconv.Itoa(n) }
