// context.go defines the Context interface for extension access to workdur
// internals.
//
// Extensions receive Context during Init(), not at construction, because
// they register before flags are parsed and the configuration is known.

package extension

import (
	"github.com/jpl-au/workdur/internal/config"
	"github.com/jpl-au/workdur/internal/service"
)

// Context provides extensions controlled access to workdur internals.
type Context interface {
	// Service returns the duration service built from the effective
	// configuration, command-line overrides included.
	Service() service.Service

	// Config returns the loaded configuration.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	svc service.Service
	cfg *config.Config
}

// NewContext creates a new extension context.
func NewContext(svc service.Service, cfg *config.Config) Context {
	return &extContext{
		svc: svc,
		cfg: cfg,
	}
}

// Service returns the duration service.
func (c *extContext) Service() service.Service {
	return c.svc
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}
