package router

import "github.com/dmitrymomot/keywork/core/response"

// Config holds router settings with environment variable support.
type Config struct {
	DisplayName      string `env:"ROUTER_DISPLAY_NAME" envDefault:"Keywork Router"`
	DisablePoweredBy bool   `env:"ROUTER_DISABLE_POWERED_BY" envDefault:"false"`
	Introspection    bool   `env:"ROUTER_INTROSPECTION" envDefault:"false"`
	CaseInsensitive  bool   `env:"ROUTER_CASE_INSENSITIVE" envDefault:"false"`
	ViewDocType      bool   `env:"ROUTER_VIEW_DOCTYPE" envDefault:"true"`
	BackgroundLimit  int    `env:"ROUTER_BACKGROUND_LIMIT" envDefault:"0"`
}

// NewFromConfig creates a Router from configuration.
// Additional options can override config values.
func NewFromConfig[E any](cfg Config, opts ...Option[E]) Router[E] {
	configOpts := []Option[E]{
		WithDisplayName[E](cfg.DisplayName),
		WithIntrospection[E](cfg.Introspection),
		WithRenderOptions[E](response.RenderOptions{DocType: cfg.ViewDocType}),
		WithBackgroundLimit[E](cfg.BackgroundLimit),
	}
	if cfg.DisablePoweredBy {
		configOpts = append(configOpts, WithPoweredBy[E](""))
	}
	if cfg.CaseInsensitive {
		configOpts = append(configOpts, WithCaseInsensitive[E]())
	}

	return New(append(configOpts, opts...)...)
}
