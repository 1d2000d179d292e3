package app

import (
	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/scaledash/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Config *domain.Config
}

// jsonToggler is implemented by loggers that can switch to JSON output.
type jsonToggler interface {
	SetJSON(enable bool)
}

// NewComponents creates a new Components struct and applies the logging
// settings from cfg to log.
func NewComponents(app *App, log ports.Logger, cfg *domain.Config) *Components {
	if t, ok := log.(jsonToggler); ok && cfg != nil {
		t.SetJSON(cfg.Log.JSON)
	}
	return &Components{
		App:    app,
		Logger: log,
		Config: cfg,
	}
}
