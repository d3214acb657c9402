package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Koteneva2005-tech/sputnik/internal/app"
	"github.com/Koteneva2005-tech/sputnik/internal/logging"
	"github.com/Koteneva2005-tech/sputnik/internal/restapi"
	"github.com/Koteneva2005-tech/sputnik/internal/source"
)

const defaultURL = "https://www.tutu.ru/station.php?nnst=45807"

func main() {
	var cfg app.Config

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&cfg.StationURL, "url", defaultURL, "Station page address")
	flag.DurationVar(&cfg.Refresh, "refresh", 5*time.Minute, "How often to re-download the station page")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)
	loader := source.NewLoader(logger)

	application := &app.Application{
		Config: cfg,
		Logger: logger,
		Loader: loader,
	}
	api := restapi.NewRestAPI(application)

	go refreshSnapshots(application, api)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err := srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}

// refreshSnapshots downloads the page once at startup and then on every
// tick, so the API always serves the most recent copy it could get. A failed
// download keeps the previous snapshot.
func refreshSnapshots(application *app.Application, api *restapi.RestAPI) {
	refresh := func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		html, err := application.Loader.Fetch(ctx, application.Config.StationURL)
		if err != nil {
			logging.LogError(application.Logger, "failed to update page snapshot", err,
				slog.String("url", application.Config.StationURL))
			return
		}
		api.SetSnapshot(html)
	}

	refresh()

	ticker := time.NewTicker(application.Config.Refresh)
	for range ticker.C {
		refresh()
	}
}
