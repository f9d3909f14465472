package formhelper

import (
	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-formfield/pkg/fieldtypes"
)

// Option configures a Helper during construction.
type Option func(*Helper)

// WithLogger attaches a structured logger; registration and resolution
// events surface at debug level. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Helper) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithRegistry swaps the field type registry, letting callers share one
// registry across helpers.
func WithRegistry(registry *fieldtypes.Registry) Option {
	return func(h *Helper) {
		if registry != nil {
			h.types = registry
		}
	}
}

// WithThemeSelection wires a resolved go-theme selection so component
// class tokens flow into default field attributes.
func WithThemeSelection(selection *theme.Selection) Option {
	return func(h *Helper) {
		if selection != nil {
			h.theme = &themeDefaults{selection: selection}
		}
	}
}
