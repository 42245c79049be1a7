package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"alertacordon/config"
	"alertacordon/internal/delivery/http/middleware"
	"alertacordon/internal/delivery/http/router"
	"alertacordon/internal/delivery/http/router/handler"
	"alertacordon/internal/domain/constants"
	"alertacordon/internal/domain/entity"
	domainerrors "alertacordon/internal/domain/errors"
	"alertacordon/internal/domain/location"
	"alertacordon/internal/domain/service"
	"alertacordon/internal/infra/observability"
	mockService "alertacordon/internal/mocks/service"
	mockUsecase "alertacordon/internal/mocks/usecase"
	"alertacordon/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverMocks struct {
	report   *mockUsecase.MockReportUsecase
	alert    *mockUsecase.MockAlertUsecase
	location *mockUsecase.MockLocationUsecase
	admin    *mockUsecase.MockAdminUsecase
	qr       *mockService.MockQRCodeService
	token    *mockService.MockTokenService
}

func newTestServer(t *testing.T) (*serverMocks, http.Handler) {
	t.Helper()

	m := &serverMocks{
		report:   mockUsecase.NewMockReportUsecase(t),
		alert:    mockUsecase.NewMockAlertUsecase(t),
		location: mockUsecase.NewMockLocationUsecase(t),
		admin:    mockUsecase.NewMockAdminUsecase(t),
		qr:       mockService.NewMockQRCodeService(t),
		token:    mockService.NewMockTokenService(t),
	}

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.HTTP.PublicURL = "https://alertacordon.uy/"
	logger := slog.New(slog.DiscardHandler)

	registry := observability.NewRegistry()
	observability.NewMetrics(registry)

	e := NewEcho(HTTPParams{
		Config:          cfg,
		Logger:          logger,
		ErrorMiddleware: middleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			ReportHandler: handler.NewReportHandler(handler.ReportHandlerParams{
				ReportUC: m.report,
				AlertUC:  m.alert,
				Logger:   logger,
			}),
			LocationHandler: handler.NewLocationHandler(m.location),
			QRCodeHandler:   handler.NewQRCodeHandler(m.qr, cfg),
			AdminHandler:    handler.NewAdminHandler(m.admin),
			AuthMiddleware:  middleware.NewAuthMiddleware(m.token),
			Registry:        registry,
		},
	})

	return m, e
}

func expectAdminToken(m *serverMocks) {
	m.token.EXPECT().ValidateToken("admin-token").Return(&service.Claims{
		Roles:            []string{constants.RoleAdmin},
		RegisteredClaims: jwt.RegisteredClaims{Subject: "moderadora"},
	}, nil)
}

var createdAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleReport(id int64) *entity.Report {
	return &entity.Report{
		ID:             id,
		Location:       "cordón",
		Description:    "arrebato de celular",
		Category:       "robo",
		Latitude:       -34.9033,
		Longitude:      -56.1646,
		LocationSource: string(location.SourceExact),
		IsAnonymous:    true,
		CreatedAt:      createdAt,
	}
}

func TestServerRoutes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		headers    map[string]string
		setup      func(m *serverMocks)
		wantStatus int
		check      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:    "create report",
			method:  http.MethodPost,
			target:  "/api/reports",
			body:    `{"location":"cordón","description":"arrebato de celular","category":"robo"}`,
			headers: map[string]string{"X-Request-Id": "req-1"},
			setup: func(m *serverMocks) {
				m.report.EXPECT().
					CreateReport(mock.Anything, &usecase.CreateReportInput{
						Location:    "cordón",
						Description: "arrebato de celular",
						Category:    "robo",
						RequestID:   "req-1",
					}).
					Return(sampleReport(7), nil)
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := decodeObject(t, rec)
				assert.Equal(t, true, body["success"])
				assert.Equal(t, "🚨 Alerta enviada! Reporte #7 registrado. Los vecinos están más seguros gracias a vos.", body["message"])
				assert.Equal(t, float64(7), body["data"].(map[string]any)["id"])
				assert.Equal(t, "req-1", rec.Header().Get("X-Request-Id"))
			},
		},
		{
			name:   "create report missing fields",
			method: http.MethodPost,
			target: "/api/reports",
			body:   `{"location":"  ","description":""}`,
			setup: func(m *serverMocks) {
				m.report.EXPECT().CreateReport(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrMissingReportFields)
			},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "Faltan ubicación o descripción.", decodeObject(t, rec)["message"])
			},
		},
		{
			name:   "create report storage failure",
			method: http.MethodPost,
			target: "/api/reports",
			body:   `{"location":"cordón","description":"x"}`,
			setup: func(m *serverMocks) {
				m.report.EXPECT().CreateReport(mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrReportCreationFailed.WrapMessage("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := decodeObject(t, rec)
				assert.Equal(t, "Ups, algo falló. Intentá de nuevo.", body["message"])
				assert.NotContains(t, rec.Body.String(), "connection refused")
			},
		},
		{
			name:       "create report malformed body",
			method:     http.MethodPost,
			target:     "/api/reports",
			body:       `{"location":`,
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))
			},
		},
		{
			name:       "create report oversized description",
			method:     http.MethodPost,
			target:     "/api/reports",
			body:       `{"location":"cordón","description":"` + strings.Repeat("a", 2001) + `"}`,
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "description: max=2000")
			},
		},
		{
			name:   "list reports",
			method: http.MethodGet,
			target: "/api/reports?limit=5",
			setup: func(m *serverMocks) {
				m.report.EXPECT().ListLatestReports(mock.Anything, 5).Return([]*entity.Report{sampleReport(2), sampleReport(1)}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var reports []map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reports))
				require.Len(t, reports, 2)
				assert.Equal(t, float64(2), reports[0]["id"])
				assert.NotContains(t, reports[0], "hidden")
			},
		},
		{
			name:   "list reports degrades to empty",
			method: http.MethodGet,
			target: "/api/reports?limit=abc",
			setup: func(m *serverMocks) {
				m.report.EXPECT().ListLatestReports(mock.Anything, 0).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `[]`, rec.Body.String())
			},
		},
		{
			name:   "map",
			method: http.MethodGet,
			target: "/api/reports/map?days=7",
			setup: func(m *serverMocks) {
				fc := geojson.NewFeatureCollection()
				feature := geojson.NewFeature(orb.Point{-56.1646, -34.9033})
				feature.Properties["category"] = "robo"
				fc.Append(feature)
				m.report.EXPECT().ListReportsForMap(mock.Anything, 7).Return(fc, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				fc, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
				require.NoError(t, err)
				require.Len(t, fc.Features, 1)
				assert.Equal(t, "robo", fc.Features[0].Properties.MustString("category"))
			},
		},
		{
			name:       "nearby with invalid coordinates",
			method:     http.MethodGet,
			target:     "/api/reports/nearby?lat=north&lng=-56.1",
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "INVALID_COORDINATES", errorCode(t, rec))
			},
		},
		{
			name:   "nearby",
			method: http.MethodGet,
			target: "/api/reports/nearby?lat=-34.9&lng=-56.16&radius=500",
			setup: func(m *serverMocks) {
				m.report.EXPECT().
					FindNearbyReports(mock.Anything, &usecase.NearbyQuery{Latitude: -34.9, Longitude: -56.16, RadiusMeters: 500}).
					Return([]*entity.Report{sampleReport(3)}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				data := decodeObject(t, rec)["data"].([]any)
				assert.Len(t, data, 1)
			},
		},
		{
			name:       "categories",
			method:     http.MethodGet,
			target:     "/api/categories",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				data := decodeObject(t, rec)["data"].([]any)
				require.Len(t, data, 8)
				first := data[0].(map[string]any)
				assert.Equal(t, "robo", first["value"])
				assert.Equal(t, "#ef4444", first["hex"])
			},
		},
		{
			name:   "resolve location",
			method: http.MethodGet,
			target: "/api/locations/resolve?q=cord%C3%B3n",
			setup: func(m *serverMocks) {
				m.location.EXPECT().ResolveLocation(mock.Anything, "cordón").Return(&usecase.ResolvedLocation{
					Coordinates: entity.Coordinates{Latitude: -34.9033, Longitude: -56.1646},
					Source:      location.SourceExact,
				})
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				data := decodeObject(t, rec)["data"].(map[string]any)
				assert.Equal(t, "exact", data["source"])
			},
		},
		{
			name:   "qr code",
			method: http.MethodGet,
			target: "/api/qrcode",
			setup: func(m *serverMocks) {
				m.qr.EXPECT().GenerateURLCode("https://alertacordon.uy/").Return([]byte("\x89PNG"), nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
				assert.Equal(t, "\x89PNG", rec.Body.String())
			},
		},
		{
			name:   "admin login",
			method: http.MethodPost,
			target: "/api/admin/login",
			body:   `{"username":"moderadora","password":"s3cr3t-pass"}`,
			setup: func(m *serverMocks) {
				m.admin.EXPECT().Login(mock.Anything, "moderadora", "s3cr3t-pass").Return(&usecase.AdminSession{
					AccessToken: "admin-token",
					ExpiresAt:   createdAt.Add(12 * time.Hour),
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				data := decodeObject(t, rec)["data"].(map[string]any)
				assert.Equal(t, "admin-token", data["access_token"])
			},
		},
		{
			name:   "admin login wrong password",
			method: http.MethodPost,
			target: "/api/admin/login",
			body:   `{"username":"moderadora","password":"nope"}`,
			setup: func(m *serverMocks) {
				m.admin.EXPECT().Login(mock.Anything, "moderadora", "nope").Return(nil, domainerrors.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "admin login missing username",
			method:     http.MethodPost,
			target:     "/api/admin/login",
			body:       `{"password":"x"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "hide report requires token",
			method:     http.MethodDelete,
			target:     "/api/admin/reports/3",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "hide report",
			method:  http.MethodDelete,
			target:  "/api/admin/reports/3",
			headers: map[string]string{"Authorization": "Bearer admin-token"},
			setup: func(m *serverMocks) {
				expectAdminToken(m)
				m.report.EXPECT().HideReport(mock.Anything, int64(3)).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "hide unknown report",
			method:  http.MethodDelete,
			target:  "/api/admin/reports/404",
			headers: map[string]string{"Authorization": "Bearer admin-token"},
			setup: func(m *serverMocks) {
				expectAdminToken(m)
				m.report.EXPECT().HideReport(mock.Anything, int64(404)).Return(domainerrors.ErrReportNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:    "hide report bad id",
			method:  http.MethodDelete,
			target:  "/api/admin/reports/abc",
			headers: map[string]string{"Authorization": "Bearer admin-token"},
			setup: func(m *serverMocks) {
				expectAdminToken(m)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "dispatch report",
			method:  http.MethodPost,
			target:  "/api/admin/reports/3/dispatch",
			headers: map[string]string{"Authorization": "Bearer admin-token"},
			setup: func(m *serverMocks) {
				expectAdminToken(m)
				m.alert.EXPECT().DispatchReport(mock.Anything, int64(3)).Return(&usecase.DispatchResult{
					ReportID:  3,
					Delivered: []string{constants.ChannelTelegram},
					Failed:    []string{},
					Skipped:   []string{constants.ChannelX},
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				data := decodeObject(t, rec)["data"].(map[string]any)
				assert.Equal(t, []any{"telegram"}, data["delivered"])
			},
		},
		{
			name:       "health",
			method:     http.MethodGet,
			target:     "/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "metrics",
			method:     http.MethodGet,
			target:     "/metrics",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "go_goroutines")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, srv := newTestServer(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}

func decodeObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	errInfo, ok := decodeObject(t, rec)["error"].(map[string]any)
	require.True(t, ok)

	return errInfo["code"].(string)
}
