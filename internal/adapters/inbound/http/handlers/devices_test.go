package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/architeacher/device-registry/internal/adapters/inbound/http/handlers"
	"github.com/architeacher/device-registry/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/device-registry/internal/adapters/repos"
	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/architeacher/device-registry/internal/infrastructure"
	"github.com/architeacher/device-registry/internal/services"
	"github.com/architeacher/device-registry/internal/usecases"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/architeacher/device-registry/pkg/metrics/noop"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type DeviceHandlerTestSuite struct {
	suite.Suite

	keydb  *miniredis.Miniredis
	store  *repos.MemoryStore
	router http.Handler
}

func TestDeviceHandlerTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DeviceHandlerTestSuite))
}

func (s *DeviceHandlerTestSuite) SetupTest() {
	s.keydb = miniredis.RunT(s.T())
	s.store = repos.NewMemoryStore()

	log := logger.NewTestLogger()
	client := infrastructure.NewKeyDBClientFromRedis(redis.NewClient(&redis.Options{Addr: s.keydb.Addr()}), time.Hour, log)
	cache := repos.NewDevicesCache(client)

	registry := services.NewDeviceRegistry(s.store, cache, log, noop.NewMetricsClient())
	health := services.NewHealthService(time.Second,
		services.Dependency{Name: "store", Pinger: s.store, Critical: true},
		services.Dependency{Name: "keydb", Pinger: cache},
	)

	app := usecases.NewApplication(registry, health, log, infrastructure.NewNoopTracerProvider(), noop.NewMetricsClient())
	s.router = newRouter(app, log)
}

func newRouter(app *usecases.Application, log logger.Logger) http.Handler {
	devices := handlers.NewDeviceHandler(app, log, 1024)
	health := handlers.NewHealthHandler(app)

	router := chi.NewRouter()
	router.Use(middleware.RequestTracking())
	router.Get("/v1/liveness", health.LivenessCheck)
	router.Get("/v1/readiness", health.ReadinessCheck)
	router.Get("/v1/health", health.HealthCheck)
	router.Get("/v1/devices", devices.ListDevices)
	router.Post("/v1/devices", devices.CreateDevice)
	router.Options("/v1/devices", devices.OptionsDevices)
	router.Get("/v1/devices/{id}", devices.GetDevice)
	router.Put("/v1/devices/{id}", devices.ReplaceDevice)
	router.Patch("/v1/devices/{id}", devices.PatchDevice)
	router.Delete("/v1/devices/{id}", devices.DeleteDevice)
	router.Options("/v1/devices/{id}", devices.OptionsDevice)

	return router
}

func (s *DeviceHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.TraceIDHeader, "trace-test")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	return rec
}

func (s *DeviceHandlerTestSuite) create(name, brand, state string) handlers.DeviceResponse {
	body := `{"name":"` + name + `","brand":"` + brand + `"`
	if state != "" {
		body += `,"state":"` + state + `"`
	}
	body += `}`

	rec := s.do(http.MethodPost, "/v1/devices", body)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var device handlers.DeviceResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &device))

	return device
}

func (s *DeviceHandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) handlers.ErrorResponse {
	var body handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func (s *DeviceHandlerTestSuite) TestCreateDevice() {
	rec := s.do(http.MethodPost, "/v1/devices", `{"name":"iPhone 15 Pro","brand":"Apple"}`)

	s.Require().Equal(http.StatusCreated, rec.Code)

	var device handlers.DeviceResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &device))

	s.Require().Equal("iPhone 15 Pro", device.Name)
	s.Require().Equal("Apple", device.Brand)
	s.Require().Equal("available", device.State)
	s.Require().False(device.CreatedAt.IsZero())
	s.Require().Equal("/v1/devices/"+device.ID, rec.Header().Get("Location"))
}

func (s *DeviceHandlerTestSuite) TestCreateDevice_Rejections() {
	cases := []struct {
		name         string
		body         string
		expectedCode string
	}{
		{name: "malformed json", body: `{"name":`, expectedCode: "INVALID_JSON"},
		{name: "unknown field", body: `{"name":"a","brand":"b","color":"red"}`, expectedCode: "INVALID_JSON"},
		{name: "trailing data", body: `{"name":"a","brand":"b"}{}`, expectedCode: "INVALID_JSON"},
		{name: "missing name", body: `{"brand":"Apple"}`, expectedCode: "VALIDATION_ERROR"},
		{name: "blank brand", body: `{"name":"Pixel","brand":"   "}`, expectedCode: "VALIDATION_ERROR"},
		{name: "name too long", body: `{"name":"` + strings.Repeat("x", 256) + `","brand":"b"}`, expectedCode: "VALIDATION_ERROR"},
		{name: "unknown state", body: `{"name":"a","brand":"b","state":"broken"}`, expectedCode: "VALIDATION_ERROR"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.do(http.MethodPost, "/v1/devices", tc.body)

			s.Require().Equal(http.StatusBadRequest, rec.Code)

			body := s.decodeError(rec)
			s.Require().Equal(tc.expectedCode, body.Code)
			s.Require().Equal("/v1/devices", body.Path)
			s.Require().Equal(http.MethodPost, body.Method)
			s.Require().Equal("trace-test", body.TraceID)
		})
	}
}

func (s *DeviceHandlerTestSuite) TestCreateDevice_ValidationDetails() {
	rec := s.do(http.MethodPost, "/v1/devices", `{"name":"","brand":""}`)

	s.Require().Equal(http.StatusBadRequest, rec.Code)

	body := s.decodeError(rec)
	s.Require().Len(body.Details, 2)
	s.Require().Equal("name", body.Details[0].Field)
	s.Require().Equal(model.ValidationCodeRequired, body.Details[0].Code)
}

func (s *DeviceHandlerTestSuite) TestCreateDevice_BodyTooLarge() {
	rec := s.do(http.MethodPost, "/v1/devices", `{"name":"`+strings.Repeat("x", 2048)+`","brand":"b"}`)

	s.Require().Equal(http.StatusRequestEntityTooLarge, rec.Code)
}

func (s *DeviceHandlerTestSuite) TestGetDevice() {
	created := s.create("Galaxy S24", "Samsung", "")

	rec := s.do(http.MethodGet, "/v1/devices/"+created.ID, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var device handlers.DeviceResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &device))
	s.Require().Equal(created.ID, device.ID)

	s.Require().True(s.keydb.Exists("device:"+created.ID), "read populates the device key")
}

func (s *DeviceHandlerTestSuite) TestGetDevice_Errors() {
	rec := s.do(http.MethodGet, "/v1/devices/not-a-uuid", "")
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().Equal("INVALID_ID", s.decodeError(rec).Code)

	rec = s.do(http.MethodGet, "/v1/devices/"+model.NewDeviceID().String(), "")
	s.Require().Equal(http.StatusNotFound, rec.Code)
	s.Require().Equal("NOT_FOUND", s.decodeError(rec).Code)
}

func (s *DeviceHandlerTestSuite) TestListDevices_Filters() {
	s.create("iPhone 15 Pro", "Apple", "in-use")
	s.create("MacBook Air", "Apple", "")
	s.create("Galaxy S24", "Samsung", "inactive")

	cases := []struct {
		name     string
		query    string
		expected int
	}{
		{name: "all", query: "", expected: 3},
		{name: "by brand", query: "?brand=Apple", expected: 2},
		{name: "by state", query: "?state=inactive", expected: 1},
		{name: "state any case", query: "?state=IN-USE", expected: 1},
		{name: "brand wins over state", query: "?brand=Samsung&state=available", expected: 1},
		{name: "unknown brand", query: "?brand=Nokia", expected: 0},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.do(http.MethodGet, "/v1/devices"+tc.query, "")
			s.Require().Equal(http.StatusOK, rec.Code)

			var devices []handlers.DeviceResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &devices))
			s.Require().Len(devices, tc.expected)
		})
	}
}

func (s *DeviceHandlerTestSuite) TestListDevices_InvalidState() {
	rec := s.do(http.MethodGet, "/v1/devices?state=lost", "")

	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().Equal("VALIDATION_ERROR", s.decodeError(rec).Code)
}

func (s *DeviceHandlerTestSuite) TestListDevices_EmptyIsArray() {
	rec := s.do(http.MethodGet, "/v1/devices", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Equal("[]", strings.TrimSpace(rec.Body.String()))
}

func (s *DeviceHandlerTestSuite) TestPatchDevice() {
	created := s.create("Pixel 8", "Google", "")

	rec := s.do(http.MethodPatch, "/v1/devices/"+created.ID, `{"state":"in-use"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var device handlers.DeviceResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &device))
	s.Require().Equal("in-use", device.State)
	s.Require().Equal("Pixel 8", device.Name)
	s.Require().Equal(created.CreatedAt.UTC(), device.CreatedAt.UTC())
}

func (s *DeviceHandlerTestSuite) TestPatchDevice_InUseFreezesIdentity() {
	created := s.create("Pixel 8", "Google", "in-use")

	cases := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{name: "rename", body: `{"name":"Pixel 9"}`, expectedStatus: http.StatusBadRequest},
		{name: "rebrand", body: `{"brand":"Alphabet"}`, expectedStatus: http.StatusBadRequest},
		{name: "same name still rejected", body: `{"name":"Pixel 8"}`, expectedStatus: http.StatusBadRequest},
		{name: "state only allowed", body: `{"state":"inactive"}`, expectedStatus: http.StatusOK},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.do(http.MethodPatch, "/v1/devices/"+created.ID, tc.body)
			s.Require().Equal(tc.expectedStatus, rec.Code, rec.Body.String())

			if tc.expectedStatus == http.StatusBadRequest {
				s.Require().Equal("INVALID_TRANSITION", s.decodeError(rec).Code)
			}
		})
	}
}

func (s *DeviceHandlerTestSuite) TestReplaceDevice() {
	created := s.create("Pixel 8", "Google", "")

	rec := s.do(http.MethodPut, "/v1/devices/"+created.ID, `{"name":"Pixel 8a","brand":"Google","state":"inactive"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var device handlers.DeviceResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &device))
	s.Require().Equal("Pixel 8a", device.Name)
	s.Require().Equal("inactive", device.State)

	rec = s.do(http.MethodPut, "/v1/devices/"+created.ID, `{"name":"Pixel 8a","brand":"Google"}`)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().Equal("VALIDATION_ERROR", s.decodeError(rec).Code)
}

func (s *DeviceHandlerTestSuite) TestReplaceDevice_InUse() {
	created := s.create("Pixel 8", "Google", "in-use")

	rec := s.do(http.MethodPut, "/v1/devices/"+created.ID, `{"name":"Pixel 8","brand":"Google","state":"available"}`)

	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().Equal("INVALID_TRANSITION", s.decodeError(rec).Code)
}

func (s *DeviceHandlerTestSuite) TestDeleteDevice() {
	created := s.create("Pixel 8", "Google", "")

	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/v1/devices/"+created.ID, "").Code)

	rec := s.do(http.MethodDelete, "/v1/devices/"+created.ID, "")
	s.Require().Equal(http.StatusNoContent, rec.Code)
	s.Require().Zero(rec.Body.Len())

	s.Require().Equal(http.StatusNotFound, s.do(http.MethodGet, "/v1/devices/"+created.ID, "").Code)
	s.Require().Equal(http.StatusNotFound, s.do(http.MethodDelete, "/v1/devices/"+created.ID, "").Code)
}

func (s *DeviceHandlerTestSuite) TestDeleteDevice_InUse() {
	created := s.create("Pixel 8", "Google", "in-use")

	rec := s.do(http.MethodDelete, "/v1/devices/"+created.ID, "")

	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().Equal("INVALID_TRANSITION", s.decodeError(rec).Code)
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/v1/devices/"+created.ID, "").Code)
}

func (s *DeviceHandlerTestSuite) TestWriteInvalidatesListings() {
	created := s.create("Pixel 8", "Google", "")

	rec := s.do(http.MethodGet, "/v1/devices?brand=Google", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().True(s.keydb.Exists("device:brand:Google"))

	rec = s.do(http.MethodPatch, "/v1/devices/"+created.ID, `{"brand":"Alphabet"}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().False(s.keydb.Exists("device:brand:Google"))

	var devices []handlers.DeviceResponse

	rec = s.do(http.MethodGet, "/v1/devices?brand=Google", "")
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &devices))
	s.Require().Empty(devices)

	rec = s.do(http.MethodGet, "/v1/devices?brand=Alphabet", "")
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &devices))
	s.Require().Len(devices, 1)
}

func (s *DeviceHandlerTestSuite) TestCacheOutageIsServedFromStore() {
	created := s.create("Pixel 8", "Google", "")

	s.keydb.Close()

	rec := s.do(http.MethodGet, "/v1/devices/"+created.ID, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/v1/health", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var report map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &report))
	s.Require().Equal("degraded", report["status"])
}

func (s *DeviceHandlerTestSuite) TestOptions() {
	rec := s.do(http.MethodOptions, "/v1/devices", "")
	s.Require().Equal(http.StatusNoContent, rec.Code)
	s.Require().Contains(rec.Header().Get("Allow"), "POST")

	rec = s.do(http.MethodOptions, "/v1/devices/"+model.NewDeviceID().String(), "")
	s.Require().Equal(http.StatusNoContent, rec.Code)
	s.Require().Contains(rec.Header().Get("Allow"), "PATCH")
}

func (s *DeviceHandlerTestSuite) TestHealthEndpoints() {
	rec := s.do(http.MethodGet, "/v1/liveness", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/v1/readiness", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/v1/health", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var report map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &report))
	s.Require().Equal("healthy", report["status"])
	s.Require().Contains(report["dependencies"], "store")
	s.Require().Contains(report["dependencies"], "keydb")
}

type downPinger struct{}

func (downPinger) Ping(context.Context) error {
	return model.ErrDatabaseConnection
}

func TestHealthHandler_StoreDown(t *testing.T) {
	t.Parallel()

	log := logger.NewTestLogger()
	health := services.NewHealthService(time.Second, services.Dependency{Name: "store", Pinger: downPinger{}, Critical: true})
	app := usecases.NewApplication(
		services.NewDeviceRegistry(repos.NewMemoryStore(), repos.NopCache{}, log, noop.NewMetricsClient()),
		health,
		log,
		infrastructure.NewNoopTracerProvider(),
		noop.NewMetricsClient(),
	)

	router := newRouter(app, log)

	for _, path := range []string{"/v1/readiness", "/v1/health"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/liveness", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}
