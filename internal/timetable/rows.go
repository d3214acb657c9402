package timetable

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RawRow is one candidate schedule row: the whitespace-normalized text of a
// markup fragment that starts with a departure time token. Everything else on
// the page (navigation, ads, unrelated tables) is ignored at this stage.
type RawRow string

var leadingTimePattern = regexp.MustCompile(`^\d{1,2}:\d{2}(\s|$)`)

// collectRows walks the document and returns candidate rows in document
// order. Table rows are the primary shape; pages that render the schedule as
// a list or plain paragraphs are covered by a fallback pass. An empty result
// is valid: a page with no recognizable schedule simply has no departures.
func collectRows(doc *goquery.Document) []RawRow {
	rows := matchingRows(doc.Find("tr"), tableRowText)
	if len(rows) == 0 {
		rows = matchingRows(doc.Find("li, p"), func(s *goquery.Selection) string {
			return s.Text()
		})
	}
	return rows
}

func matchingRows(sel *goquery.Selection, text func(*goquery.Selection) string) []RawRow {
	var rows []RawRow
	sel.Each(func(_ int, s *goquery.Selection) {
		t := normalizeSpace(text(s))
		if leadingTimePattern.MatchString(t) {
			rows = append(rows, RawRow(t))
		}
	})
	return rows
}

// tableRowText joins cell texts with single spaces; goquery's Text would glue
// adjacent cells together.
func tableRowText(row *goquery.Selection) string {
	cells := row.Find("th, td")
	if cells.Length() == 0 {
		return row.Text()
	}

	parts := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		parts = append(parts, cell.Text())
	})
	return strings.Join(parts, " ")
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
