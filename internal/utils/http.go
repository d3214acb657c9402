package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractFilterFromParams retrieves the :filter path parameter from the
// request context and removes file extensions like ".json".
func ExtractFilterFromParams(r *http.Request) string {
	params := httprouter.ParamsFromContext(r.Context())
	raw := params.ByName("filter")
	return strings.Split(raw, ".json")[0]
}

// FilterParam extracts the schedule filter from the query string, defaulting
// to "all" when absent.
func FilterParam(r *http.Request) string {
	if value := r.URL.Query().Get("filter"); value != "" {
		return value
	}
	return "all"
}
