package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/Koteneva2005-tech/sputnik/internal/models"
)

// writeJSON stores the envelope as pretty-printed UTF-8 JSON, creating parent
// directories as needed. HTML escaping is off so Cyrillic text and route
// arrows survive verbatim.
func writeJSON(path string, envelope *models.Envelope) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(envelope); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}

// printSummary renders a short console report of the run: the request date
// and one line per trip.
func printSummary(w io.Writer, envelope *models.Envelope, requestedAt time.Time) {
	fmt.Fprintf(w, "Request date: %s\n", requestedAt.Format("2006-01-02 15:04:05"))

	tw := tabwriter.NewWriter(w, 5, 3, 3, ' ', 0)
	for _, trip := range envelope.Trips {
		fmt.Fprintf(tw, "%s\t%s -> %s\t%s\n", trip.Time, trip.From, trip.To, trip.DaysLabel)
	}
	tw.Flush()
}
