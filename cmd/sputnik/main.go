package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/Koteneva2005-tech/sputnik/internal/logging"
	"github.com/Koteneva2005-tech/sputnik/internal/source"
	"github.com/Koteneva2005-tech/sputnik/internal/timetable"
)

const (
	defaultURL      = "https://www.tutu.ru/station.php?nnst=45807"
	defaultHTMLPath = "data/station_45807.html"
	defaultJSONPath = "data/trips.json"
)

// config holds all the configuration settings for one extraction run. We
// read these in from command-line flags when the tool starts.
type config struct {
	htmlPath string
	url      string
	saveHTML string
	filter   string
	jsonOut  string
}

func main() {
	var cfg config

	flag.StringVar(&cfg.htmlPath, "html", defaultHTMLPath, "Path to a saved copy of the station page")
	flag.StringVar(&cfg.url, "url", defaultURL, "Download the page from this address; pass an empty string to use the local copy")
	flag.StringVar(&cfg.saveHTML, "save-html", "", "Where to save the downloaded page (defaults to the -html path)")
	flag.StringVar(&cfg.filter, "filter", "all", "Trip filter: all, daily/ежедневно, weekdays/будни or weekends/выходные")
	flag.StringVar(&cfg.jsonOut, "json-out", defaultJSONPath, "Path for the JSON result")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stderr, slog.LevelInfo)

	if err := run(cfg, logger); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	filter, err := timetable.ParseFilter(cfg.filter)
	if err != nil {
		return err
	}

	loader := source.NewLoader(logger)

	html, err := loadPage(cfg, loader)
	if err != nil {
		return err
	}

	requestedAt := time.Now()

	envelope, stats, err := timetable.Extract(html, filter, requestedAt)
	if err != nil {
		return err
	}

	logging.LogOperation(logger, "extraction complete",
		slog.Int("rows", stats.RowsFound),
		slog.Int("parsed", stats.Parsed),
		slog.Int("skipped", stats.Skipped),
		slog.String("filter", filter.String()))

	if err := writeJSON(cfg.jsonOut, envelope); err != nil {
		return err
	}

	printSummary(os.Stdout, envelope, requestedAt)
	return nil
}

// loadPage downloads the page when a URL is configured, keeping a local copy
// for later offline runs; otherwise it reads the existing copy.
func loadPage(cfg config, loader *source.Loader) (string, error) {
	if cfg.url == "" {
		return loader.ReadFile(cfg.htmlPath)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	html, err := loader.Fetch(ctx, cfg.url)
	if err != nil {
		return "", err
	}

	saveTarget := cfg.saveHTML
	if saveTarget == "" {
		saveTarget = cfg.htmlPath
	}
	if err := loader.Save(saveTarget, html); err != nil {
		return "", err
	}

	return html, nil
}
