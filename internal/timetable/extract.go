// Package timetable implements the extraction pipeline for the station page:
// semi-structured HTML in, normalized departure records out. The pipeline is
// pure — the reference instant is always an explicit argument, never read
// from the clock — so identical inputs always produce identical envelopes.
package timetable

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Koteneva2005-tech/sputnik/internal/models"
)

// Filter restricts extraction output to one day category, or passes every
// trip through. The zero value matches nothing; build one with ParseFilter.
type Filter struct {
	category models.DayCategory
	all      bool
}

// FilterAll passes every trip through, unknown-category ones included.
var FilterAll = Filter{all: true}

// InvalidFilterError reports a filter value outside the recognized set.
type InvalidFilterError struct {
	Value string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter %q: want all, daily, weekdays or weekends", e.Value)
}

// ParseFilter maps a caller-supplied filter value to a Filter. Canonical
// category names and the Russian spellings used on the page are both
// accepted. "unknown" is not a valid filter: unknown-category trips only ever
// surface under "all", so such a filter could never match anything.
func ParseFilter(value string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all", "все", "всё":
		return FilterAll, nil
	case "daily", "ежедневно":
		return Filter{category: models.DaysDaily}, nil
	case "weekdays", "будни":
		return Filter{category: models.DaysWeekdays}, nil
	case "weekends", "выходные":
		return Filter{category: models.DaysWeekends}, nil
	default:
		return Filter{}, &InvalidFilterError{Value: value}
	}
}

// Matches reports whether a trip with the given category passes the filter.
func (f Filter) Matches(category models.DayCategory) bool {
	return f.all || category == f.category
}

// String returns the canonical value recorded in the envelope: "all" or the
// category name.
func (f Filter) String() string {
	if f.all {
		return "all"
	}
	return string(f.category)
}

// Stats counts what happened to the page's rows during one run. Skipped rows
// are a diagnostic, not an error: a malformed row never fails the run.
type Stats struct {
	RowsFound int
	Parsed    int
	Skipped   int
}

// Extract runs the whole pipeline over one page: candidate rows are pulled
// out of the markup, parsed into trips, classified, resolved against
// requestedAt and filtered. Trips keep document order. A page with no
// matching rows yields an envelope with zero trips, not an error.
func Extract(htmlText string, filter Filter, requestedAt time.Time) (*models.Envelope, Stats, error) {
	var stats Stats

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, stats, fmt.Errorf("parsing document: %w", err)
	}

	trips := []models.Trip{}
	for _, row := range collectRows(doc) {
		stats.RowsFound++

		trip, err := parseRow(row)
		if err != nil {
			stats.Skipped++
			continue
		}

		trip.Days = classifyDays(trip.DaysLabel)

		departure, err := resolveDeparture(trip.Time, requestedAt)
		if err != nil {
			stats.Skipped++
			continue
		}
		trip.DepartureISO = departure.Format(models.TimeLayout)

		stats.Parsed++
		if filter.Matches(trip.Days) {
			trips = append(trips, trip)
		}
	}

	return models.NewEnvelope(requestedAt, filter.String(), trips), stats, nil
}
