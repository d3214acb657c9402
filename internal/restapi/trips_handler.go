package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Koteneva2005-tech/sputnik/internal/logging"
	"github.com/Koteneva2005-tech/sputnik/internal/timetable"
	"github.com/Koteneva2005-tech/sputnik/internal/utils"
)

func (api *RestAPI) tripsHandler(w http.ResponseWriter, r *http.Request) {
	api.serveTrips(w, r, utils.FilterParam(r))
}

func (api *RestAPI) tripsForFilterHandler(w http.ResponseWriter, r *http.Request) {
	api.serveTrips(w, r, utils.ExtractFilterFromParams(r))
}

func (api *RestAPI) serveTrips(w http.ResponseWriter, r *http.Request, filterValue string) {
	reqStart := time.Now()
	defer func() { tripsRequests.Observe(time.Since(reqStart).Seconds()) }()

	filter, err := timetable.ParseFilter(filterValue)
	if err != nil {
		fieldErrors := map[string][]string{
			"filter": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	html, ok := api.Snapshot()
	if !ok {
		api.unavailableResponse(w, r)
		return
	}

	envelope, stats, err := timetable.Extract(html, filter, time.Now())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	tripsExtracted.Add(float64(stats.Parsed))
	rowsSkipped.Add(float64(stats.Skipped))

	logging.LogOperation(api.Logger, "trips served",
		slog.String("filter", filter.String()),
		slog.Int("trips", len(envelope.Trips)),
		slog.Int("skipped", stats.Skipped))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		api.Logger.Error("failed to encode trips response", "error", err)
	}
}

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if _, ok := api.Snapshot(); !ok {
		status = "waiting for first snapshot"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(struct {
		Status string `json:"status"`
	}{Status: status})
	if err != nil {
		api.Logger.Error("failed to encode health response", "error", err)
	}
}
