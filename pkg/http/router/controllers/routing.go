package controllers

import (
	"errors"
	"net/http"
	"strconv"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/navigatorx-weighting/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/navigatorx-weighting/pkg/http/usecases"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
	validator      *validator.Validate
	trans          ut.Translator
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	validate, trans := newValidator()
	return &routingAPI{
		routingService: routingService,
		log:            log,
		validator:      validate,
		trans:          trans,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/computeRoutes", api.shortestPath)
	group.POST("/computeRoutes", api.shortestPathBody)
	group.POST("/computeMatrix", api.shortestPathMatrix)
	group.GET("/weightings", api.weightings)
}

var coordinateParams = map[string]struct{}{
	"origin_lat":      {},
	"origin_lon":      {},
	"destination_lat": {},
	"destination_lon": {},
}

// shortestPath. GET /api/computeRoutes, every query key other than the four coordinates is a hint,
// e.g. custom_weightings=true&weighting_#green=&weighting_#green#factor=0.8&edge_based=true
func (api *routingAPI) shortestPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request shortestPathRequest
		err     error
	)

	query := r.URL.Query()

	request.OriginLat, err = strconv.ParseFloat(query.Get("origin_lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("origin_lat is required and must be a valid float"))
		return
	}
	request.OriginLon, err = strconv.ParseFloat(query.Get("origin_lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("origin_lon is required and must be a valid float"))
		return
	}
	request.DestinationLat, err = strconv.ParseFloat(query.Get("destination_lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("destination_lat is required and must be a valid float"))
		return
	}
	request.DestinationLon, err = strconv.ParseFloat(query.Get("destination_lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("destination_lon is required and must be a valid float"))
		return
	}
	if err := api.validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	request.Hints = make(map[string]string)
	for key, values := range query {
		if _, ok := coordinateParams[key]; ok || len(values) == 0 {
			continue
		}
		request.Hints[key] = values[0]
	}

	route, err := api.routingService.ShortestPath(r.Context(), usecases.RouteRequest{
		OriginLat:      request.OriginLat,
		OriginLon:      request.OriginLon,
		DestinationLat: request.DestinationLat,
		DestinationLon: request.DestinationLon,
		Hints:          request.Hints,
	})
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewShortestPathResponse(route)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// shortestPathBody. POST /api/computeRoutes
func (api *routingAPI) shortestPathBody(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request shortestPathBody
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	route, err := api.routingService.ShortestPath(r.Context(), usecases.RouteRequest{
		OriginLat:      request.Origin.Lat,
		OriginLon:      request.Origin.Lon,
		DestinationLat: request.Destination.Lat,
		DestinationLon: request.Destination.Lon,
		Hints:          mergeHints(request.Hints, request.Profile, request.Weighting),
	})
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewShortestPathResponse(route)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// shortestPathMatrix. POST /api/computeMatrix, one origin to many destinations
func (api *routingAPI) shortestPathMatrix(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request matrixRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	entries, err := api.routingService.ShortestPathMatrix(r.Context(), usecases.MatrixRequest{
		OriginLat:    request.Origin.Lat,
		OriginLon:    request.Origin.Lon,
		Destinations: toCoordinates(request.Destinations),
		Hints:        mergeHints(request.Hints, request.Profile, request.Weighting),
	})
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewMatrixResponse(entries)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) weightings(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	resp := weightingsResponse{
		Weightings: api.routingService.Weightings(),
		Profiles:   api.routingService.Profiles(),
	}
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": resp}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
