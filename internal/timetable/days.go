package timetable

import (
	"strings"

	"github.com/Koteneva2005-tech/sputnik/internal/models"
)

// dayPhrases maps known schedule wordings to their canonical category.
// Matching is by lowercase substring, first hit wins; a newly observed
// wording is a single row here.
var dayPhrases = []struct {
	phrase   string
	category models.DayCategory
}{
	{"ежедневно", models.DaysDaily},
	{"каждый день", models.DaysDaily},
	{"будн", models.DaysWeekdays},
	{"рабочие дни", models.DaysWeekdays},
	{"выходн", models.DaysWeekends},
	{"сб и вс", models.DaysWeekends},
}

// classifyDays maps a raw days label to its canonical category. A label that
// matches no known phrase is DaysUnknown; the caller keeps the original label
// on the trip either way.
func classifyDays(label string) models.DayCategory {
	lower := strings.ToLower(label)
	for _, entry := range dayPhrases {
		if strings.Contains(lower, entry.phrase) {
			return entry.category
		}
	}
	return models.DaysUnknown
}
