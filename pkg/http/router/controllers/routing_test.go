package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/navigatorx-weighting/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/http/usecases"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/util"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/weighting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRoutingService struct {
	lastRoute  usecases.RouteRequest
	lastMatrix usecases.MatrixRequest
	err        error
}

func (f *fakeRoutingService) ShortestPath(ctx context.Context, req usecases.RouteRequest) (*usecases.Route, error) {
	f.lastRoute = req
	if f.err != nil {
		return nil, f.err
	}
	return &usecases.Route{
		TravelTime:       26.4,
		Distance:         220,
		Weight:           246.4,
		Polyline:         "abc",
		Weighting:        "fastest+quiet",
		TraversalMode:    "edge_based",
		AppliedModifiers: []string{"quiet"},
		SkippedModifiers: []string{},
	}, nil
}

func (f *fakeRoutingService) ShortestPathMatrix(ctx context.Context, req usecases.MatrixRequest) ([]usecases.MatrixEntry, error) {
	f.lastMatrix = req
	if f.err != nil {
		return nil, f.err
	}
	entries := make([]usecases.MatrixEntry, 0, len(req.Destinations))
	for i := range req.Destinations {
		entries = append(entries, usecases.MatrixEntry{Index: i, Found: true, Distance: float64(i)})
	}
	return entries, nil
}

func (f *fakeRoutingService) Weightings() []string {
	return []string{"green", "quiet"}
}

func (f *fakeRoutingService) Profiles() []string {
	return []string{"car"}
}

func newTestRouter(svc RoutingService) *httprouter.Router {
	router := httprouter.New()
	New(svc, zap.NewNop()).Routes(helper.NewRouteGroup(router, "/api"))
	return router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestShortestPathQueryHints(t *testing.T) {
	svc := &fakeRoutingService{}
	router := newTestRouter(svc)

	rec := serve(router, http.MethodGet, "/api/computeRoutes?origin_lat=-7.76&origin_lon=110.37"+
		"&destination_lat=-7.76&destination_lon=110.372&custom_weightings=true&weighting_%23quiet%23factor=0.5"+
		"&edge_based=true", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, map[string]string{
		"custom_weightings":       "true",
		"weighting_#quiet#factor": "0.5",
		"edge_based":              "true",
	}, svc.lastRoute.Hints)
	assert.Equal(t, -7.76, svc.lastRoute.OriginLat)
	assert.Equal(t, 110.372, svc.lastRoute.DestinationLon)

	var resp struct {
		Data shortestPathResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 220.0, resp.Data.Dist)
	assert.Equal(t, "fastest+quiet", resp.Data.Weighting)
	assert.Equal(t, []string{"quiet"}, resp.Data.AppliedModifiers)
}

func TestShortestPathBadRequest(t *testing.T) {
	cases := []struct {
		name   string
		target string
	}{
		{name: "missing origin", target: "/api/computeRoutes?destination_lat=1&destination_lon=1"},
		{name: "not a float", target: "/api/computeRoutes?origin_lat=x&origin_lon=1&destination_lat=1&destination_lon=1"},
		{name: "latitude out of range", target: "/api/computeRoutes?origin_lat=91&origin_lon=1&destination_lat=1&destination_lon=1"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeRoutingService{}
			rec := serve(newTestRouter(svc), http.MethodGet, tt.target, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "bad_request", resp.Error.Code)
		})
	}
}

func TestShortestPathServiceErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "configuration error",
			err:        util.WrapErrorf(weighting.ErrConfiguration, util.ErrBadParamInput, "edge-based not supported"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "path not found",
			err:        util.WrapErrorf(usecases.ErrPathNotFound, util.ErrNotFound, "no path"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "internal",
			err:        util.WrapErrorf(nil, util.ErrInternalServerError, "storage missing"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "canceled",
			err:        context.Canceled,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeRoutingService{err: tt.err}
			rec := serve(newTestRouter(svc), http.MethodGet,
				"/api/computeRoutes?origin_lat=1&origin_lon=1&destination_lat=1&destination_lon=2", "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestShortestPathBody(t *testing.T) {
	svc := &fakeRoutingService{}
	rec := serve(newTestRouter(svc), http.MethodPost, "/api/computeRoutes", `{
		"origin": {"lat": -7.76, "lon": 110.37},
		"destination": {"lat": -7.76, "lon": 110.372},
		"profile": "car",
		"hints": {"custom_weightings": "true", "weighting_#green": "", "profile": "foot"}
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]string{
		"custom_weightings": "true",
		"weighting_#green":  "",
		"profile":           "car",
	}, svc.lastRoute.Hints)
}

func TestShortestPathBodyInvalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "malformed", body: `{"origin": `},
		{name: "unknown field", body: `{"source": {"lat": 1, "lon": 1}}`},
		{name: "bad weighting", body: `{"origin": {"lat": 1, "lon": 1}, "destination": {"lat": 1, "lon": 2}, "weighting": "scenic"}`},
		{name: "longitude out of range", body: `{"origin": {"lat": 1, "lon": 181}, "destination": {"lat": 1, "lon": 2}}`},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newTestRouter(&fakeRoutingService{}), http.MethodPost, "/api/computeRoutes", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestShortestPathMatrix(t *testing.T) {
	svc := &fakeRoutingService{}
	rec := serve(newTestRouter(svc), http.MethodPost, "/api/computeMatrix", `{
		"origin": {"lat": -7.76, "lon": 110.37},
		"destinations": [{"lat": -7.76, "lon": 110.372}, {"lat": -7.759, "lon": 110.371}],
		"weighting": "shortest"
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, svc.lastMatrix.Destinations, 2)
	assert.Equal(t, "shortest", svc.lastMatrix.Hints["weighting"])

	var resp struct {
		Data []matrixEntryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, 1, resp.Data[1].Destination)

	rec = serve(newTestRouter(svc), http.MethodPost, "/api/computeMatrix",
		`{"origin": {"lat": 1, "lon": 1}, "destinations": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWeightings(t *testing.T) {
	rec := serve(newTestRouter(&fakeRoutingService{}), http.MethodGet, "/api/weightings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data weightingsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"green", "quiet"}, resp.Data.Weightings)
	assert.Equal(t, []string{"car"}, resp.Data.Profiles)
}
