package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ufobeep/config"
	apimiddleware "ufobeep/internal/delivery/api/middleware"
	"ufobeep/internal/delivery/api/router/handler"
	"ufobeep/internal/delivery/api/validator"
	"ufobeep/internal/domain/constants"
	"ufobeep/internal/domain/entity"
	domainerrors "ufobeep/internal/domain/errors"
	"ufobeep/internal/errors"
	"ufobeep/internal/infra/auth"
	mockUC "ufobeep/internal/mocks/usecase"
	"ufobeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	echo        *echo.Echo
	fanout      *mockUC.MockFanoutUsecase
	witness     *mockUC.MockWitnessUsecase
	aggregation *mockUC.MockAggregationUsecase
	devices     *mockUC.MockDeviceLocationUsecase
	token       func(scopes ...string) string
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Witness: &config.WitnessConfig{ConfirmRatePerSecond: 0.001, ConfirmBurst: 2}}
	cfg.SecretKey.Internal = "router_test_secret_key_long_enough_for_hs256"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	f := &routerFixture{
		echo:        echo.New(),
		fanout:      mockUC.NewMockFanoutUsecase(t),
		witness:     mockUC.NewMockWitnessUsecase(t),
		aggregation: mockUC.NewMockAggregationUsecase(t),
		devices:     mockUC.NewMockDeviceLocationUsecase(t),
	}
	f.token = func(scopes ...string) string {
		token, err := tokenSvc.GenerateServiceToken("sighting-api", scopes, time.Minute)
		require.NoError(t, err)

		return token
	}

	f.echo.Validator = validator.New()
	f.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AlertHandler:   handler.NewAlertHandler(handler.AlertHandlerParams{FanoutUC: f.fanout, Logger: logger}),
		WitnessHandler: handler.NewWitnessHandler(handler.WitnessHandlerParams{WitnessUC: f.witness, AggregationUC: f.aggregation, Logger: logger}),
		DeviceHandler:  handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: f.devices, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{TokenSvc: tokenSvc, Logger: logger}),
		Config:         cfg,
	}).RegisterRoutes(f.echo)

	return f
}

func (f *routerFixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	req.RemoteAddr = "203.0.113.7:5000"

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_DispatchRequiresServiceToken(t *testing.T) {
	f := newRouterFixture(t)
	path := "/alerts/" + uuid.NewString() + "/dispatch"

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{name: "missing", token: "", status: http.StatusUnauthorized},
		{name: "garbage", token: "not-a-token", status: http.StatusUnauthorized},
		{name: "wrong scope", token: f.token(constants.ScopeAlertsRead), status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(http.MethodPost, path, "", tt.token)

			assert.Equal(t, tt.status, rec.Code)
			assert.NotNil(t, decode(t, rec).Error)
		})
	}
}

func TestRouter_DispatchAlert(t *testing.T) {
	f := newRouterFixture(t)
	sightingID := uuid.New()

	f.fanout.EXPECT().DispatchAlert(mock.Anything, sightingID, mock.MatchedBy(func(opts usecase.DispatchOptions) bool {
		return opts.EmergencyOverride && opts.DefaultRadiusKm != nil && *opts.DefaultRadiusKm == 2.5 &&
			opts.EscalationLevel == entity.EscalationUrgent
	})).Return(&entity.FanoutResult{SightingID: sightingID, TotalAlerted: 4, RadiusKmUsed: 3.75}, nil).Once()

	rec := f.do(http.MethodPost, "/alerts/"+sightingID.String()+"/dispatch",
		`{"default_radius_km":2.5,"emergency_override":true,"escalation_level":"urgent"}`,
		f.token(constants.ScopeAlertsDispatch))

	require.Equal(t, http.StatusAccepted, rec.Code)
	var result entity.FanoutResult
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &result))
	assert.Equal(t, 4, result.TotalAlerted)
}

func TestRouter_DispatchAlert_Errors(t *testing.T) {
	f := newRouterFixture(t)
	token := f.token(constants.ScopeAlertsDispatch)

	rec := f.do(http.MethodPost, "/alerts/not-a-uuid/dispatch", "", token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/alerts/"+uuid.NewString()+"/dispatch", `{"escalation_level":"apocalyptic"}`, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "escalation_level")

	unknown := uuid.New()
	f.fanout.EXPECT().DispatchAlert(mock.Anything, unknown, mock.Anything).Return(nil, domainerrors.ErrSightingNotFound).Once()
	rec = f.do(http.MethodPost, "/alerts/"+unknown.String()+"/dispatch", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SIGHTING_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestRouter_GetFanout(t *testing.T) {
	f := newRouterFixture(t)
	sightingID := uuid.New()

	f.fanout.EXPECT().GetFanout(mock.Anything, sightingID).
		Return(&usecase.FanoutHistory{SightingID: sightingID, TotalAlerted: 3, Delivered: 2, Pending: 1}, nil).Once()

	rec := f.do(http.MethodGet, "/alerts/"+sightingID.String()+"/fanout", "", f.token(constants.ScopeAlertsRead))

	require.Equal(t, http.StatusOK, rec.Code)
	var history usecase.FanoutHistory
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &history))
	assert.Equal(t, 1, history.Pending)
}

func TestRouter_ConfirmWitness(t *testing.T) {
	f := newRouterFixture(t)
	sightingID := uuid.New()

	f.witness.EXPECT().Confirm(mock.Anything, mock.MatchedBy(func(in usecase.ConfirmWitnessInput) bool {
		return in.SightingID == sightingID && in.DeviceID == "device-1" &&
			in.BearingDeg != nil && *in.BearingDeg == 45 &&
			*in.Location.Latitude == 47.6 && *in.Location.Longitude == -122.3 && *in.StillVisible
	})).Return(&entity.WitnessConfirmation{SightingID: sightingID, DeviceID: "device-1"}, nil).Once()

	rec := f.do(http.MethodPost, "/sightings/"+sightingID.String()+"/witness-confirm",
		`{"device_id":"device-1","location":{"latitude":47.6,"longitude":-122.3},"bearing_deg":45,"still_visible":true}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ConfirmWitness_Validation(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/sightings/"+uuid.NewString()+"/witness-confirm",
		`{"device_id":"","location":{"latitude":91,"longitude":0},"bearing_deg":360,"still_visible":true}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	details, _ := decode(t, rec).Error.Details.(string)
	assert.Contains(t, details, "device_id: required")
	assert.Contains(t, details, "latitude: lte=90")
	assert.Contains(t, details, "bearing_deg: lt=360")
}

func TestRouter_ConfirmWitness_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		detail string
	}{
		{name: "no location", body: `{"device_id":"d1","still_visible":true}`, detail: "location: required"},
		{name: "no longitude", body: `{"device_id":"d1","location":{"latitude":0},"still_visible":true}`, detail: "longitude: required"},
		{name: "no still_visible", body: `{"device_id":"d1","location":{"latitude":0,"longitude":0}}`, detail: "still_visible: required"},
		{name: "device id only", body: `{"device_id":"d1"}`, detail: "location: required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t)

			rec := f.do(http.MethodPost, "/sightings/"+uuid.NewString()+"/witness-confirm", tt.body, "")

			require.Equal(t, http.StatusBadRequest, rec.Code)
			details, _ := decode(t, rec).Error.Details.(string)
			assert.Contains(t, details, tt.detail)
		})
	}
}

func TestRouter_ConfirmWitness_RateLimitedPerIP(t *testing.T) {
	f := newRouterFixture(t)
	path := "/sightings/" + uuid.NewString() + "/witness-confirm"
	body := `{"device_id":"device-1","location":{"latitude":1,"longitude":1},"still_visible":false}`

	f.witness.EXPECT().Confirm(mock.Anything, mock.Anything).Return(&entity.WitnessConfirmation{}, nil).Twice()

	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, path, body, "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, path, body, "").Code)

	rec := f.do(http.MethodPost, path, body, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRouter_WitnessStatusNotFound(t *testing.T) {
	f := newRouterFixture(t)
	sightingID := uuid.New()

	f.witness.EXPECT().GetStatus(mock.Anything, sightingID, "device-9").Return(nil, domainerrors.ErrWitnessNotFound).Once()

	rec := f.do(http.MethodGet, "/sightings/"+sightingID.String()+"/witness-status/device-9", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "WITNESS_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestRouter_Aggregation(t *testing.T) {
	f := newRouterFixture(t)
	sightingID := uuid.New()

	f.aggregation.EXPECT().GetAggregation(mock.Anything, sightingID).Return(&entity.WitnessAggregation{
		SightingID:      sightingID,
		WitnessCount:    0,
		Witnesses:       []entity.WitnessConfirmation{},
		HeatMapData:     []entity.HeatMapCell{},
		EscalationLevel: entity.EscalationNormal,
	}, nil).Once()

	rec := f.do(http.MethodGet, "/sightings/"+sightingID.String()+"/witness-aggregation", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
	assert.NotContains(t, body, "triangulation")
	assert.NotContains(t, body, "consensus")
}

func TestRouter_HeatMapIsBareGeoJSON(t *testing.T) {
	f := newRouterFixture(t)
	sightingID := uuid.New()

	fc := geojson.NewFeatureCollection()
	feature := geojson.NewFeature(orb.Point{-122.3, 47.6})
	feature.Properties["witness_count"] = 2
	fc.Append(feature)
	f.aggregation.EXPECT().GetHeatMapGeoJSON(mock.Anything, sightingID).Return(fc, nil).Once()

	rec := f.do(http.MethodGet, "/sightings/"+sightingID.String()+"/witness-heatmap", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get(echo.HeaderContentType))

	decoded, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, decoded.Features, 1)
}

func TestRouter_DeviceRoutes(t *testing.T) {
	f := newRouterFixture(t)
	token := f.token(constants.ScopeDevicesWrite)

	f.devices.EXPECT().UpdateLocation(mock.Anything, mock.MatchedBy(func(in usecase.UpdateDeviceLocationInput) bool {
		return in.DeviceID == "device-1" && in.PushToken == "fcm" && in.AlertRadiusKm == 5
	})).Return(&entity.DeviceLocation{DeviceID: "device-1"}, nil).Once()
	f.devices.EXPECT().Deregister(mock.Anything, "device-1").Return(nil).Once()
	f.devices.EXPECT().Deregister(mock.Anything, "device-2").Return(domainerrors.ErrDeviceNotFound).Once()

	rec := f.do(http.MethodPut, "/devices/device-1/location",
		`{"latitude":47.6,"longitude":-122.3,"push_token":"fcm","alert_radius_km":5}`, token)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusOK, f.do(http.MethodDelete, "/devices/device-1", "", token).Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodDelete, "/devices/device-2", "", token).Code)

	assert.Equal(t, http.StatusForbidden, f.do(http.MethodDelete, "/devices/device-1", "", f.token(constants.ScopeAlertsRead)).Code)
}

func TestRouter_ServerErrorsHideDetails(t *testing.T) {
	f := newRouterFixture(t)
	sightingID := uuid.New()

	f.fanout.EXPECT().GetFanout(mock.Anything, sightingID).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("pq: relation missing"), "alert_fanouts")).Once()

	rec := f.do(http.MethodGet, "/alerts/"+sightingID.String()+"/fanout", "", f.token(constants.ScopeAlertsRead))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "relation missing")
}
