package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
)

func (api *API) routes() *httprouter.Router {
	router := httprouter.New()

	router.GET("/api/graph", api.getGraph)
	router.POST("/api/cities", api.addCity)
	router.DELETE("/api/cities/:name", api.removeCity)
	router.POST("/api/roads", api.addRoad)
	router.DELETE("/api/roads", api.removeRoad)
	router.PATCH("/api/roads/distance", api.setRoadDistance)
	router.POST("/api/roads/oneway", api.makeRoadOneWay)
	router.GET("/api/search", api.search)

	return router
}

func (api *API) getGraph(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	// Serve a snapshot so encoding never races an in-flight edit.
	resp := newGraphResponse(api.graphService.Snapshot())
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": resp}); err != nil {
		api.serverErrorResponse(w, r, err)
	}
}

func (api *API) addCity(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req addCityRequest
	if err := api.readJSON(r, &req); err != nil {
		api.badRequestResponse(w, r, err)
		return
	}
	if msgs := api.validateStruct(req); len(msgs) > 0 {
		api.badRequestResponse(w, r, errors.New(strings.Join(msgs, "; ")))
		return
	}

	if err := api.graphService.AddCity(req.Name, req.X, req.Y); err != nil {
		api.domainErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusCreated, envelope{"data": cityResponse(req)}); err != nil {
		api.serverErrorResponse(w, r, err)
	}
}

func (api *API) removeCity(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	name := p.ByName("name")
	if err := api.graphService.RemoveCity(name); err != nil {
		api.domainErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": envelope{"removed": name}}); err != nil {
		api.serverErrorResponse(w, r, err)
	}
}

func (api *API) addRoad(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req addRoadRequest
	if err := api.readJSON(r, &req); err != nil {
		api.badRequestResponse(w, r, err)
		return
	}
	if msgs := api.validateStruct(req); len(msgs) > 0 {
		api.badRequestResponse(w, r, errors.New(strings.Join(msgs, "; ")))
		return
	}

	if err := api.graphService.AddRoad(req.Source, req.Target, req.DistanceKm, req.OneWay); err != nil {
		api.domainErrorResponse(w, r, err)
		return
	}

	resp := roadResponse{Source: req.Source, Target: req.Target, DistanceKm: req.DistanceKm, OneWay: req.OneWay}
	if err := api.writeJSON(w, http.StatusCreated, envelope{"data": resp}); err != nil {
		api.serverErrorResponse(w, r, err)
	}
}

func (api *API) removeRoad(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	source, target := query.Get("source"), query.Get("target")
	if source == "" || target == "" {
		api.badRequestResponse(w, r, errors.New("source and target query parameters are required"))
		return
	}

	if err := api.graphService.RemoveRoad(source, target); err != nil {
		api.domainErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": envelope{"removed": source + "-" + target}}); err != nil {
		api.serverErrorResponse(w, r, err)
	}
}

func (api *API) setRoadDistance(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req setDistanceRequest
	if err := api.readJSON(r, &req); err != nil {
		api.badRequestResponse(w, r, err)
		return
	}
	if msgs := api.validateStruct(req); len(msgs) > 0 {
		api.badRequestResponse(w, r, errors.New(strings.Join(msgs, "; ")))
		return
	}

	if err := api.graphService.SetRoadDistance(req.Source, req.Target, req.DistanceKm); err != nil {
		api.domainErrorResponse(w, r, err)
		return
	}

	resp := roadResponse{Source: req.Source, Target: req.Target, DistanceKm: req.DistanceKm}
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": resp}); err != nil {
		api.serverErrorResponse(w, r, err)
	}
}

func (api *API) makeRoadOneWay(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req oneWayRequest
	if err := api.readJSON(r, &req); err != nil {
		api.badRequestResponse(w, r, err)
		return
	}
	if msgs := api.validateStruct(req); len(msgs) > 0 {
		api.badRequestResponse(w, r, errors.New(strings.Join(msgs, "; ")))
		return
	}

	if err := api.graphService.MakeRoadOneWay(req.Source, req.Target); err != nil {
		api.domainErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": envelope{"one_way": req.Source + "->" + req.Target}}); err != nil {
		api.serverErrorResponse(w, r, err)
	}
}

func (api *API) search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	source := query.Get("source")
	if source == "" {
		api.badRequestResponse(w, r, errors.New("source query parameter is required"))
		return
	}
	target := query.Get("target")

	earlyStop := false
	if v := query.Get("early_stop"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			api.badRequestResponse(w, r, errors.New("early_stop must be a boolean"))
			return
		}
		earlyStop = parsed
	}

	trace, res, err := api.pathService.FindShortestPath(source, target, earlyStop)
	if err != nil {
		api.domainErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": newSearchResponse(trace, res)}); err != nil {
		api.serverErrorResponse(w, r, err)
	}
}
