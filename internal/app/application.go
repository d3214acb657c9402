package app

import (
	"log/slog"
	"time"

	"github.com/Koteneva2005-tech/sputnik/internal/source"
)

// Application holds the dependencies for our HTTP handlers, helpers, and
// commands: the configuration, a logger and the page loader.
type Application struct {
	Config Config
	Logger *slog.Logger
	Loader *source.Loader
}

// Config holds all the configuration settings for our Application. We read
// these in from command-line flags when the Application starts.
type Config struct {
	Port       int
	Env        string
	StationURL string
	Refresh    time.Duration
}
