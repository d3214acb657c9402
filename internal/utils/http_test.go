package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func requestWithFilterParam(value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/trips/"+value, nil)
	params := httprouter.Params{{Key: "filter", Value: value}}
	ctx := context.WithValue(r.Context(), httprouter.ParamsKey, params)
	return r.WithContext(ctx)
}

func TestExtractFilterFromParams(t *testing.T) {
	assert.Equal(t, "weekdays", ExtractFilterFromParams(requestWithFilterParam("weekdays")))
	assert.Equal(t, "weekdays", ExtractFilterFromParams(requestWithFilterParam("weekdays.json")))
}

func TestFilterParam(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/trips.json?filter=daily", nil)
	assert.Equal(t, "daily", FilterParam(r))

	r = httptest.NewRequest(http.MethodGet, "/trips.json", nil)
	assert.Equal(t, "all", FilterParam(r))
}
