// Package restapi serves extraction results over HTTP. The daemon keeps the
// most recently fetched page markup as a snapshot; every request runs the
// extraction pipeline against that snapshot with a fresh reference instant.
package restapi

import (
	"net/http"
	"sync"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Koteneva2005-tech/sputnik/internal/app"
)

type RestAPI struct {
	*app.Application

	mu       sync.RWMutex
	snapshot string
	hasData  bool
}

// NewRestAPI creates a new RestAPI instance. It serves 503s until the first
// snapshot arrives.
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{Application: app}
}

// SetSnapshot stores the latest page markup for subsequent requests.
func (api *RestAPI) SetSnapshot(html string) {
	api.mu.Lock()
	defer api.mu.Unlock()
	api.snapshot = html
	api.hasData = true
}

// Snapshot returns the current page markup, and whether one exists yet.
func (api *RestAPI) Snapshot() (string, bool) {
	api.mu.RLock()
	defer api.mu.RUnlock()
	return api.snapshot, api.hasData
}

// Routes wires up the HTTP endpoints.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/trips.json", api.tripsHandler)
	router.HandlerFunc(http.MethodGet, "/trips/:filter", api.tripsForFilterHandler)
	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	return router
}
