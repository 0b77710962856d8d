package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/department-dto/internal/config"
	"github.com/spec-kit/department-dto/internal/events"
	"github.com/spec-kit/department-dto/internal/observability"
	"github.com/spec-kit/department-dto/internal/service"
)

type envelope struct {
	Data  map[string]any `json:"data"`
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func newTestApp(t *testing.T) (*fiber.App, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	events.SubscribeMetrics(dispatcher, metrics)

	svc := service.NewDepartmentService(service.DepartmentDependencies{
		Logger:     logger,
		Metrics:    metrics,
		Dispatcher: dispatcher,
	})
	cfg := config.Config{
		App:     config.AppConfig{Name: "department-dto", Version: "test", RequestTimeoutSeconds: 5},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	return NewApp(cfg, logger, metrics, svc), logs
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return resp.StatusCode, env, string(raw)
}

func TestDepartmentJSONEndpoint(t *testing.T) {
	app, logs := newTestApp(t)

	status, env, _ := do(t, app, "POST", "/departments/json", `{"name":"IT","head_name":"Miller"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, `{"name":"IT","head":{"name":"Miller"}}`, env.Data["json"])

	status, env, _ = do(t, app, "POST", "/departments/json", `{"name":"IT"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, `{"name":"IT","head":null}`, env.Data["json"])

	assert.Equal(t, 1, logs.FilterMessage(`Created department JSON for (departmentName=IT, employeeName=null): {"name":"IT","head":null}`).Len())
}

func TestDepartmentJSONEndpointValidation(t *testing.T) {
	app, _ := newTestApp(t)

	status, env, _ := do(t, app, "POST", "/departments/json", `{"head_name":"Miller"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "is required", env.Error.Details["name"])

	status, env, _ = do(t, app, "POST", "/departments/json", `not json`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
}

func TestMatchesEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	status, env, _ := do(t, app, "POST", "/departments/json/matches",
		`{"json":"{\"name\":\"IT\",\"head\":null}","other_json":" {\"name\":\"IT\",\"head\":null} "}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, env.Data["matches"])

	status, env, _ = do(t, app, "POST", "/departments/json/matches",
		`{"json":"{\"name\":\"IT\",\"head\":null}","other_json":"{\"name\":\"HR\",\"head\":null}"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, env.Data["matches"])

	status, env, _ = do(t, app, "POST", "/departments/json/matches", `{"json":"invalidJson","other_json":"invalidJson"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "PARSE_FAILED", env.Error.Code)
}

func TestDescribeEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	status, env, _ := do(t, app, "POST", "/departments/describe", `{"name":"IT"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "The head of IT department is Unknown", env.Data["description"])
}

func TestHealthAndUnknownRoute(t *testing.T) {
	app, _ := newTestApp(t)

	status, _, body := do(t, app, "GET", "/health/live", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"status":"alive"`)

	status, env, _ := do(t, app, "GET", "/nope", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	status, _, _ := do(t, app, "POST", "/departments/json", `{"name":"IT","head_name":"Miller"}`)
	require.Equal(t, fiber.StatusOK, status)

	status, _, body := do(t, app, "GET", "/metrics", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `department_dto_operations_total{operation="department_json",outcome="success"} 1`)
	assert.Contains(t, body, `department_dto_events_total{type="department.json_created"} 1`)
}

func TestMetricsUseRouteTemplates(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/random-a1", "/random-b2", "/departments/random-c3"} {
		status, _, _ := do(t, app, "GET", path, "")
		require.Equal(t, fiber.StatusNotFound, status)
	}
	status, _, _ := do(t, app, "POST", "/departments/json/matches", `{"json":"x","other_json":"x"}`)
	require.Equal(t, fiber.StatusBadRequest, status)

	_, _, body := do(t, app, "GET", "/metrics", "")
	assert.NotContains(t, body, "random-")
	assert.Contains(t, body, `department_dto_http_errors_total{code="PARSE_FAILED",method="POST",path="/departments/json/matches"} 1`)
}
