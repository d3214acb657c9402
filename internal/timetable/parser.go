package timetable

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Koteneva2005-tech/sputnik/internal/models"
)

var (
	clockPattern       = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	daysLabelPattern   = regexp.MustCompile(`\(([^()]+)\)$`)
	trainNumberPattern = regexp.MustCompile(`^№?(\d{3,6}[А-Яа-яA-Za-z]?)$`)
	routeSeparator     = regexp.MustCompile(`\s(?:->|→|—|–|-)\s`)
)

// parseRow extracts the typed fields from one raw row. A row must yield at
// least a valid time and both route endpoints; anything less is an error the
// caller counts and drops, never a failure of the run. The returned trip has
// Days and DepartureISO unset — the classifier and resolver fill those in.
func parseRow(row RawRow) (models.Trip, error) {
	text := strings.TrimSpace(string(row))
	lead, rest, _ := strings.Cut(text, " ")

	clock, err := parseClock(lead)
	if err != nil {
		return models.Trip{}, err
	}

	rest = strings.TrimSpace(rest)

	var label string
	if m := daysLabelPattern.FindStringSubmatch(rest); m != nil {
		label = strings.TrimSpace(m[1])
		rest = strings.TrimSpace(strings.TrimSuffix(rest, m[0]))
	}

	rest, trainNumber := extractTrainNumber(rest)

	loc := routeSeparator.FindStringIndex(rest)
	if loc == nil {
		return models.Trip{}, fmt.Errorf("no route separator in %q", rest)
	}
	from := strings.TrimSpace(rest[:loc[0]])
	to := strings.TrimSpace(rest[loc[1]:])
	if from == "" || to == "" {
		return models.Trip{}, fmt.Errorf("empty route endpoint in %q", rest)
	}

	return models.Trip{
		Time:        clock,
		From:        from,
		To:          to,
		TrainNumber: trainNumber,
		DaysLabel:   label,
	}, nil
}

// parseClock validates the leading token against HH:MM and zero-pads it.
func parseClock(token string) (string, error) {
	m := clockPattern.FindStringSubmatch(token)
	if m == nil {
		return "", fmt.Errorf("leading token %q is not a departure time", token)
	}

	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	if hh > 23 || mm > 59 {
		return "", fmt.Errorf("departure time %q out of range", token)
	}

	return fmt.Sprintf("%02d:%02d", hh, mm), nil
}

// extractTrainNumber pulls a train-number token out of the route text and
// returns the text without it. The page writes the number as "№ 6341",
// "№6341" or a bare numeric token; station names never consist of three or
// more digits alone, so a match is unambiguous. No number is not an error.
func extractTrainNumber(text string) (string, string) {
	tokens := strings.Fields(text)
	for i, tok := range tokens {
		if tok == "№" && i+1 < len(tokens) {
			if m := trainNumberPattern.FindStringSubmatch(tokens[i+1]); m != nil {
				return withoutTokens(tokens, i, i+2), m[1]
			}
			continue
		}
		if m := trainNumberPattern.FindStringSubmatch(tok); m != nil {
			return withoutTokens(tokens, i, i+1), m[1]
		}
	}
	return text, ""
}

func withoutTokens(tokens []string, from, to int) string {
	kept := make([]string, 0, len(tokens))
	kept = append(kept, tokens[:from]...)
	kept = append(kept, tokens[to:]...)
	return strings.Join(kept, " ")
}
