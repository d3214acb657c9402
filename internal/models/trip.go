package models

// DayCategory classifies the calendar pattern a trip operates on. The set is
// closed: labels that match no known phrase are kept verbatim on the trip and
// categorized as DaysUnknown.
type DayCategory string

const (
	DaysDaily    DayCategory = "daily"
	DaysWeekdays DayCategory = "weekdays"
	DaysWeekends DayCategory = "weekends"
	DaysUnknown  DayCategory = "unknown"
)

// Trip is one scheduled departure extracted from the station page.
type Trip struct {
	// Time is the listed departure time of day, zero-padded "HH:MM".
	Time string `json:"time"`
	From string `json:"from"`
	To   string `json:"to"`
	// TrainNumber is an opaque identifier; empty when the page lists none.
	TrainNumber string      `json:"train_number,omitempty"`
	Days        DayCategory `json:"days"`
	// DaysLabel preserves the page's original wording, even when Days is
	// DaysUnknown.
	DaysLabel string `json:"days_label"`
	// DepartureISO is the absolute departure instant resolved against the
	// reference time, formatted with TimeLayout.
	DepartureISO string `json:"departure_iso"`
}
