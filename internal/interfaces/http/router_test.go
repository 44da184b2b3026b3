package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jhoicas/demo-api/docs"
	"github.com/jhoicas/demo-api/internal/application/chaos"
	"github.com/jhoicas/demo-api/internal/application/usecase"
	"github.com/jhoicas/demo-api/internal/domain/entity"
	"github.com/jhoicas/demo-api/internal/domain/repository"
	"github.com/jhoicas/demo-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/demo-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/demo-api/internal/interfaces/http"
	"github.com/jhoicas/demo-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma el servicio extendido sobre el store en memoria con la semilla.
func buildTestApp(t *testing.T, policy chaos.Policy) *fiber.App {
	t.Helper()
	log := logger.Nop()
	store := memory.NewSeeded()

	app := apphttp.NewApp(apphttp.AppOptions{Name: "demo-api-test", Log: log})
	apphttp.Router(app, apphttp.RouterDeps{
		StatusUC:    usecase.NewStatusUseCase(store, false, policy, "demo-api", "test"),
		UserUC:      usecase.NewUserUseCase(store, nil, policy, log),
		ProductUC:   usecase.NewProductUseCase(store.ProductRepository(), policy),
		OrderUC:     usecase.NewOrderUseCase(store, policy),
		AnalyticsUC: usecase.NewAnalyticsUseCase(store, policy, infrapdf.NewMarotoPDFGenerator(), "demo-api", "test"),
		Log:         log,
	})
	return app
}

// ── Store caído ──

var errStoreDown = errors.New("dial tcp 10.0.0.5:5432: connection refused")

// brokenStore falla todas las lecturas y escrituras como lo haría una base inalcanzable.
type brokenStore struct{ err error }

var (
	_ repository.UserRepository      = brokenStore{}
	_ repository.ProductRepository   = brokenProducts{}
	_ repository.AnalyticsRepository = brokenStore{}
)

func (b brokenStore) Create(context.Context, *entity.User) error { return b.err }
func (b brokenStore) GetByID(context.Context, int64) (*entity.User, error) {
	return nil, b.err
}
func (b brokenStore) List(context.Context, string) ([]*entity.User, error) { return nil, b.err }

func (b brokenStore) CountUsers(context.Context) (int64, error)    { return 0, b.err }
func (b brokenStore) CountProducts(context.Context) (int64, error) { return 0, b.err }
func (b brokenStore) CountOrders(context.Context) (int64, error)   { return 0, b.err }
func (b brokenStore) CountOrdersSince(context.Context, time.Time) (int64, error) {
	return 0, b.err
}

type brokenProducts struct{ err error }

func (b brokenProducts) List(context.Context, repository.ProductFilter) ([]*entity.Product, error) {
	return nil, b.err
}

// buildBrokenApp arma el servicio con usuarios, productos y analítica sobre un store que falla.
func buildBrokenApp(t *testing.T, err error, log *logger.Logger) *fiber.App {
	t.Helper()
	store := memory.NewSeeded()
	broken := brokenStore{err: err}

	app := apphttp.NewApp(apphttp.AppOptions{Name: "demo-api-test", Log: log})
	apphttp.Router(app, apphttp.RouterDeps{
		StatusUC:    usecase.NewStatusUseCase(store, false, chaos.Off{}, "demo-api", "test"),
		UserUC:      usecase.NewUserUseCase(broken, nil, chaos.Off{}, log),
		ProductUC:   usecase.NewProductUseCase(brokenProducts{err: err}, chaos.Off{}),
		OrderUC:     usecase.NewOrderUseCase(store, chaos.Off{}),
		AnalyticsUC: usecase.NewAnalyticsUseCase(broken, chaos.Off{}, nil, "demo-api", "test"),
		Log:         log,
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Health / slow
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth_SiempreOKConClaves(t *testing.T) {
	app := buildTestApp(t, chaos.Always{})

	resp := doRequest(t, app, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	for _, k := range []string{"status", "service", "timestamp", "version", "database", "redis"} {
		assert.Contains(t, body, k)
	}
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "connected", body["database"])
	assert.Equal(t, "disconnected", body["redis"], "sin cliente de caché se reporta disconnected")
}

func TestSlowEndpoint_SinLatencia(t *testing.T) {
	app := buildTestApp(t, chaos.Off{})

	resp := doRequest(t, app, http.MethodGet, "/api/slow-endpoint", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.Equal(t, "This endpoint is intentionally slow", body["message"])
	assert.EqualValues(t, 0, body["delay_seconds"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Users
// ──────────────────────────────────────────────────────────────────────────────

func TestUsers_ListaSemilla(t *testing.T) {
	app := buildTestApp(t, chaos.Off{})

	resp := doRequest(t, app, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	users := decode[[]map[string]any](t, resp)
	require.Len(t, users, 4)
	assert.Equal(t, "John Doe", users[0]["name"])
	assert.Equal(t, "admin", users[0]["role"])
	assert.Contains(t, users[0], "last_login")
}

func TestUsers_FiltroPorRolExacto(t *testing.T) {
	app := buildTestApp(t, chaos.Off{})

	users := decode[[]map[string]any](t, doRequest(t, app, http.MethodGet, "/api/users?role=admin", nil))
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0]["role"])

	none := decode[[]map[string]any](t, doRequest(t, app, http.MethodGet, "/api/users?role=adm", nil))
	assert.Empty(t, none, "el filtro de rol no es por substring")
}

func TestUsers_FallaSimulada(t *testing.T) {
	app := buildTestApp(t, chaos.Always{})

	resp := doRequest(t, app, http.MethodGet, "/api/users", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, "Database connection failed", body["error"])
}

func TestUsers_CrearAsignaIDsNuevos(t *testing.T) {
	app := buildTestApp(t, chaos.Off{})

	seen := map[float64]bool{}
	for _, email := range []string{"a@example.com", "b@example.com"} {
		resp := doRequest(t, app, http.MethodPost, "/api/users", map[string]string{"name": "Nuevo", "email": email})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		body := decode[map[string]any](t, resp)
		assert.Equal(t, "User created successfully", body["message"])

		id := body["id"].(float64)
		assert.Greater(t, id, float64(4), "los IDs de la semilla no se reutilizan")
		assert.False(t, seen[id])
		seen[id] = true
	}

	users := decode[[]map[string]any](t, doRequest(t, app, http.MethodGet, "/api/users?role=user", nil))
	assert.Len(t, users, 4, "role por defecto: user")
}

func TestUsers_CrearErroresDevuelven400(t *testing.T) {
	app := buildTestApp(t, chaos.Off{})

	cases := []struct {
		name string
		body any
		want string
	}{
		{"sin email", map[string]string{"name": "X"}, "email is required"},
		{"sin nombre", map[string]string{"email": "x@example.com"}, "name is required"},
		{"email duplicado", map[string]string{"name": "J", "email": "john@example.com"}, "email already registered"},
		{"json malformado", `{"name":`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, app, http.MethodPost, "/api/users", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decode[map[string]any](t, resp)
			assert.NotEmpty(t, body["error"])
			if tc.want != "" {
				assert.Contains(t, body["error"], tc.want)
			}
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_BandaDePrecioInclusiva(t *testing.T) {
	app := buildTestApp(t, chaos.Off{})

	resp := doRequest(t, app, http.MethodGet, "/api/products?min_price=100&max_price=200", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	products := decode[[]map[string]any](t, resp)
	require.NotEmpty(t, products)
	names := make([]string, 0, len(products))
	for _, p := range products {
		price := p["price"].(float64)
		assert.GreaterOrEqual(t, price, 100.0)
		assert.LessOrEqual(t, price, 200.0)
		names = append(names, p["name"].(string))
	}
	assert.Contains(t, names, "Mechanical Keyboard", "el límite inferior es inclusivo")
}

func TestProducts_CategoriaSubstringSinMayusculas(t *testing.T) {
	app := buildTestApp(t, chaos.Off{})

	products := decode[[]map[string]any](t, doRequest(t, app, http.MethodGet, "/api/products?category=electr", nil))
	require.Len(t, products, 3)
	for _, p := range products {
		assert.Equal(t, "Electronics", p["category"])
	}
}

func TestProducts_PrecioNoNumerico(t *testing.T) {
	app := buildTestApp(t, chaos.Off{})

	resp := doRequest(t, app, http.MethodGet, "/api/products?min_price=abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProducts_ServicioNoDisponible(t *testing.T) {
	app := buildTestApp(t, chaos.Always{})

	resp := doRequest(t, app, http.MethodGet, "/api/products", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, "Product service unavailable", body["error"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Orders
// ──────────────────────────────────────────────────────────────────────────────

func TestOrders_CrearConfirmada(t *testing.T) {
	app := buildTestApp(t, chaos.Off{})

	resp := doRequest(t, app, http.MethodPost, "/api/orders", `{"userId": 2, "total": 59.98}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	order := decode[map[string]any](t, resp)
	assert.Equal(t, "confirmed", order["status"])
	assert.EqualValues(t, 2, order["user_id"])
	assert.InDelta(t, 59.98, order["total"], 1e-9)
	assert.Contains(t, order, "created_at")
}

func TestOrders_UsuarioInexistente(t *testing.T) {
	app := buildTestApp(t, chaos.Off{})

	resp := doRequest(t, app, http.MethodPost, "/api/orders", `{"userId": 9999, "total": 10}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, "User not found", body["error"])
}

func TestOrders_FallaDePago(t *testing.T) {
	app := buildTestApp(t, chaos.Always{})

	resp := doRequest(t, app, http.MethodPost, "/api/orders", `{"userId": 1, "total": 10}`)
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, "Payment processing failed", body["error"])
}

func TestOrders_BodyIncompleto(t *testing.T) {
	app := buildTestApp(t, chaos.Off{})

	resp := doRequest(t, app, http.MethodPost, "/api/orders", `{"total": 10}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Analytics
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalytics_ConteosMonotonos(t *testing.T) {
	app := buildTestApp(t, chaos.Off{})

	before := decode[map[string]any](t, doRequest(t, app, http.MethodGet, "/api/analytics", nil))
	assert.EqualValues(t, 4, before["total_users"])
	assert.EqualValues(t, 6, before["total_products"])

	resp := doRequest(t, app, http.MethodPost, "/api/orders", `{"userId": 1, "total": 5}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	after := decode[map[string]any](t, doRequest(t, app, http.MethodGet, "/api/analytics", nil))
	assert.GreaterOrEqual(t, after["total_orders"].(float64), before["total_orders"].(float64)+1)
	assert.GreaterOrEqual(t, after["recent_orders"].(float64), before["recent_orders"].(float64)+1)
	assert.Contains(t, after, "generated_at")
}

func TestAnalytics_ReportePDF(t *testing.T) {
	app := buildTestApp(t, chaos.Off{})

	resp := doRequest(t, app, http.MethodGet, "/api/analytics/report.pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Docs, errores y middlewares
// ──────────────────────────────────────────────────────────────────────────────

func TestDocsSpec_DevuelveOpenAPI(t *testing.T) {
	app := buildTestApp(t, chaos.Off{})

	resp := doRequest(t, app, http.MethodGet, "/api/docs/spec", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := decode[map[string]any](t, resp)
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/users")
}

func TestRutaInexistente_404JSON(t *testing.T) {
	app := buildTestApp(t, chaos.Off{})

	resp := doRequest(t, app, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, "Not found", body["error"])
}

func TestPanic_500Generico(t *testing.T) {
	app := apphttp.NewApp(apphttp.AppOptions{Name: "panic", Log: logger.Nop()})
	app.Get("/boom", func(*fiber.Ctx) error { panic("boom") })

	resp := doRequest(t, app, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, "Internal server error", body["error"])
}

func TestRequestLogger_EcoDelRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "info", Out: &buf})
	app := apphttp.NewApp(apphttp.AppOptions{Name: "log", Log: log})
	apphttp.MinimalRouter(app, "demo-api")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/api/health", line["path"])
	assert.EqualValues(t, 200, line["status"])
	assert.Equal(t, "req-123", line["request_id"])
	assert.Contains(t, line, "timestamp")
}

func TestRequestLogger_GeneraRequestID(t *testing.T) {
	app := apphttp.NewApp(apphttp.AppOptions{Name: "log", Log: logger.Nop()})
	apphttp.MinimalRouter(app, "demo-api")

	resp := doRequest(t, app, http.MethodGet, "/api/users", nil)
	assert.Len(t, resp.Header.Get(apphttp.HeaderRequestID), 36, "UUID canónico")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallas reales del store
// ──────────────────────────────────────────────────────────────────────────────

func TestStoreCaido_500GenericoSinDetalle(t *testing.T) {
	app := buildBrokenApp(t, errStoreDown, logger.Nop())

	for _, target := range []string{"/api/users", "/api/products", "/api/analytics", "/api/users?role=admin"} {
		t.Run(target, func(t *testing.T) {
			resp := doRequest(t, app, http.MethodGet, target, nil)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			body := decode[map[string]any](t, resp)
			assert.Equal(t, "Internal server error", body["error"])
			assert.Equal(t, "INTERNAL", body["code"])
			assert.NotContains(t, body["error"], "10.0.0.5")
		})
	}
}

func TestStoreCaido_ContextoCanceladoTambien500(t *testing.T) {
	app := buildBrokenApp(t, context.Canceled, logger.Nop())

	resp := doRequest(t, app, http.MethodGet, "/api/users", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, "Internal server error", body["error"])
}

func TestStoreCaido_LogLlevaRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "info", Out: &buf})
	app := buildBrokenApp(t, errStoreDown, log)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-err-1")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var found map[string]any
	for _, raw := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var line map[string]any
		require.NoError(t, json.Unmarshal(raw, &line))
		if line["message"] == "error interno" {
			found = line
		}
	}
	require.NotNil(t, found, "se esperaba una línea de error interno")
	assert.Equal(t, "req-err-1", found["request_id"])
	assert.Equal(t, "/api/products", found["path"])
	assert.Contains(t, found["error"], "connection refused")
}

// ──────────────────────────────────────────────────────────────────────────────
// Servicio mínimo
// ──────────────────────────────────────────────────────────────────────────────

func TestMinimal_HealthYUsuariosEstaticos(t *testing.T) {
	app := apphttp.NewApp(apphttp.AppOptions{Name: "minimal", Log: logger.Nop()})
	apphttp.MinimalRouter(app, "demo-api")

	health := decode[map[string]any](t, doRequest(t, app, http.MethodGet, "/api/health", nil))
	assert.Equal(t, map[string]any{"status": "healthy", "service": "demo-api"}, health)

	users := decode[[]map[string]any](t, doRequest(t, app, http.MethodGet, "/api/users", nil))
	require.Len(t, users, 2)
	assert.Equal(t, "John Doe", users[0]["name"])
	assert.Equal(t, "Jane Smith", users[1]["name"])

	resp := doRequest(t, app, http.MethodGet, "/api/products", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
