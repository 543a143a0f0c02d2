package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/ukrway/dorohy/core"
	"github.com/ukrway/dorohy/dijkstra"
)

// envelope wraps every response body, success and failure alike.
type envelope map[string]interface{}

func (api *API) writeJSON(w http.ResponseWriter, status int, data envelope) error {
	body, err := json.Marshal(data)
	if err != nil {
		return err
	}
	body = append(body, '\n')

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(body)

	return err
}

// readJSON decodes a request body into dst, rejecting unknown fields and
// trailing garbage so malformed edits fail loudly.
func (api *API) readJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("malformed JSON body: %w", err)
	}
	if dec.More() {
		return errors.New("body must contain a single JSON object")
	}

	return nil
}

func (api *API) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	err := api.writeJSON(w, status, envelope{"error": envelope{
		"code":    http.StatusText(status),
		"message": message,
	}})
	if err != nil {
		api.log.Error("write error response", zap.Error(err), zap.String("path", r.URL.Path))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *API) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (api *API) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("internal error", zap.Error(err), zap.String("path", r.URL.Path))
	api.errorResponse(w, r, http.StatusInternalServerError, "the server encountered a problem")
}

// domainErrorResponse maps core/dijkstra sentinel failures onto HTTP status
// codes: missing things are 404, duplicates are 409, invalid input is 400.
func (api *API) domainErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrVertexNotFound),
		errors.Is(err, core.ErrEdgeNotFound),
		errors.Is(err, dijkstra.ErrVertexNotFound):
		api.errorResponse(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, core.ErrDuplicateVertex),
		errors.Is(err, core.ErrDuplicateEdge):
		api.errorResponse(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, core.ErrBadWeight),
		errors.Is(err, core.ErrEmptyVertexID),
		errors.Is(err, dijkstra.ErrEmptySource):
		api.errorResponse(w, r, http.StatusBadRequest, err.Error())
	default:
		api.serverErrorResponse(w, r, err)
	}
}
