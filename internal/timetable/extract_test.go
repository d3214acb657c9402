package timetable

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Koteneva2005-tech/sputnik/internal/models"
)

const stationPage = `
<html><body>
<nav><a href="/">tutu.ru</a> <a href="/poezda/">Поезда</a></nav>
<div class="ads">Реклама: 30% на всё</div>
<table class="schedule">
  <tr><th>Время</th><th>Маршрут</th><th>Дни</th></tr>
  <tr><td>04:10</td><td>Москва Ярославская -> Болшево</td><td>(будни)</td></tr>
  <tr><td>04:37</td><td>Москва Ярославская -> Мытищи</td><td>(ежедневно)</td></tr>
  <tr><td>05:02</td><td>Москва Ярославская -> Пушкино № 6341</td><td>(по выходным)</td></tr>
  <tr><td>05:30</td><td>Москва Ярославская -> Александров</td><td>(кроме праздников)</td></tr>
  <tr><td>25:10</td><td>Москва Ярославская -> Фрязино</td><td>(будни)</td></tr>
  <tr><td>06:12</td><td>Москва Ярославская Щёлково</td><td>(будни)</td></tr>
</table>
</body></html>`

var refInstant = time.Date(2025, 11, 21, 12, 0, 0, 0, time.UTC)

func TestExtractAll(t *testing.T) {
	env, stats, err := Extract(stationPage, FilterAll, refInstant)
	require.NoError(t, err)

	assert.Equal(t, 6, stats.RowsFound)
	assert.Equal(t, 4, stats.Parsed)
	assert.Equal(t, 2, stats.Skipped)

	assert.Equal(t, "2025-11-21T12:00:00", env.RequestedAt)
	assert.Equal(t, "all", env.Filter)
	require.Len(t, env.Trips, 4)

	first := env.Trips[0]
	assert.Equal(t, "04:10", first.Time)
	assert.Equal(t, "Москва Ярославская", first.From)
	assert.Equal(t, "Болшево", first.To)
	assert.Equal(t, models.DaysWeekdays, first.Days)
	assert.Equal(t, "будни", first.DaysLabel)
	assert.Equal(t, "2025-11-22T04:10:00", first.DepartureISO)

	second := env.Trips[1]
	assert.Equal(t, models.DaysDaily, second.Days)
	assert.Equal(t, "2025-11-22T04:37:00", second.DepartureISO)

	third := env.Trips[2]
	assert.Equal(t, "6341", third.TrainNumber)
	assert.Equal(t, models.DaysWeekends, third.Days)

	fourth := env.Trips[3]
	assert.Equal(t, models.DaysUnknown, fourth.Days)
	assert.Equal(t, "кроме праздников", fourth.DaysLabel)
}

func TestExtractFilterIsOrderedSubset(t *testing.T) {
	all, _, err := Extract(stationPage, FilterAll, refInstant)
	require.NoError(t, err)

	weekdays, err := ParseFilter("будни")
	require.NoError(t, err)

	filtered, stats, err := Extract(stationPage, weekdays, refInstant)
	require.NoError(t, err)

	// Parsing is unaffected by the filter; only the output list shrinks.
	assert.Equal(t, 4, stats.Parsed)

	assert.Equal(t, "weekdays", filtered.Filter)
	require.Len(t, filtered.Trips, 1)
	for _, trip := range filtered.Trips {
		assert.Equal(t, models.DaysWeekdays, trip.Days)
	}

	// Strict subset preserving relative order of the unfiltered result.
	i := 0
	for _, trip := range all.Trips {
		if i < len(filtered.Trips) && trip == filtered.Trips[i] {
			i++
		}
	}
	assert.Equal(t, len(filtered.Trips), i)
}

func TestExtractFilterExcludesUnknown(t *testing.T) {
	for _, value := range []string{"daily", "weekdays", "weekends"} {
		filter, err := ParseFilter(value)
		require.NoError(t, err)

		env, _, err := Extract(stationPage, filter, refInstant)
		require.NoError(t, err)

		for _, trip := range env.Trips {
			assert.NotEqual(t, models.DaysUnknown, trip.Days, "filter %s surfaced an unknown-category trip", value)
		}
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	env, stats, err := Extract("<html><body><p>ничего</p></body></html>", FilterAll, refInstant)
	require.NoError(t, err)

	assert.Zero(t, stats.RowsFound)
	require.NotNil(t, env.Trips)
	assert.Empty(t, env.Trips)

	data, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"trips":[]`)
}

func TestExtractIsDeterministic(t *testing.T) {
	first, _, err := Extract(stationPage, FilterAll, refInstant)
	require.NoError(t, err)
	second, _, err := Extract(stationPage, FilterAll, refInstant)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, firstJSON, secondJSON)
}

func TestParseFilter(t *testing.T) {
	testCases := []struct {
		value string
		want  string
	}{
		{value: "all", want: "all"},
		{value: "", want: "all"},
		{value: "все", want: "all"},
		{value: "всё", want: "all"},
		{value: "daily", want: "daily"},
		{value: "ежедневно", want: "daily"},
		{value: "weekdays", want: "weekdays"},
		{value: "будни", want: "weekdays"},
		{value: "weekends", want: "weekends"},
		{value: "выходные", want: "weekends"},
		{value: " Weekdays ", want: "weekdays"},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			filter, err := ParseFilter(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, filter.String())
		})
	}
}

func TestParseFilterInvalid(t *testing.T) {
	for _, value := range []string{"unknown", "holidays", "weekday", "по будням"} {
		t.Run(value, func(t *testing.T) {
			_, err := ParseFilter(value)
			require.Error(t, err)

			var invalid *InvalidFilterError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, value, invalid.Value)
		})
	}
}

func TestExtractInvalidFilterZeroValue(t *testing.T) {
	// The zero filter matches nothing; callers are expected to go through
	// ParseFilter, which rejects unrecognized values before extraction.
	env, _, err := Extract(stationPage, Filter{}, refInstant)
	require.NoError(t, err)
	assert.Empty(t, env.Trips)
}
