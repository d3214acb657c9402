package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Koteneva2005-tech/sputnik/internal/models"
)

func sampleEnvelope() *models.Envelope {
	return &models.Envelope{
		RequestedAt: "2025-11-21T12:00:00",
		Filter:      "all",
		Trips: []models.Trip{
			{
				Time:         "04:10",
				From:         "Москва Ярославская",
				To:           "Болшево",
				Days:         models.DaysWeekdays,
				DaysLabel:    "будни",
				DepartureISO: "2025-11-22T04:10:00",
			},
		},
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "trips.json")

	require.NoError(t, writeJSON(path, sampleEnvelope()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Cyrillic stays readable, no \u escaping.
	assert.Contains(t, string(data), "Москва Ярославская")
	assert.Contains(t, string(data), `"requested_at": "2025-11-21T12:00:00"`)

	var decoded models.Envelope
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *sampleEnvelope(), decoded)
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	requestedAt := time.Date(2025, 11, 21, 12, 0, 0, 0, time.UTC)

	printSummary(&buf, sampleEnvelope(), requestedAt)

	out := buf.String()
	assert.Contains(t, out, "Request date: 2025-11-21 12:00:00")
	assert.Contains(t, out, "04:10")
	assert.Contains(t, out, "Москва Ярославская -> Болшево")
	assert.Contains(t, out, "будни")
}
