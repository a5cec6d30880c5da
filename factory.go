package response

import (
	"github.com/indigo-web/response/config"
	"github.com/indigo-web/response/http/status"
)

// Factory creates plain responses with the defaults taken from the config. It holds no
// state besides the config, so a single instance may be used concurrently.
type Factory struct {
	cfg *config.Config
}

// NewFactory returns a factory using the config. Nil config means config.Default().
func NewFactory(cfg *config.Config) Factory {
	if cfg == nil {
		cfg = config.Default()
	}

	return Factory{cfg: cfg}
}

// Create returns a new response. Options are applied on top of the config defaults.
func (f Factory) Create(opts ...Option) (*Response, error) {
	b := newBlueprint()
	b.protocol = f.cfg.Response.Protocol
	b.jsonOpts = f.cfg.Response.JSONOptions

	return build(b.apply(opts))
}

// CreateResponse returns a new response with the code and reason phrase. Everything
// else is left default.
func (f Factory) CreateResponse(code status.Code, reason string) (*Response, error) {
	return f.Create(Code(code), Reason(reason))
}

// JSON returns a JSON response, encoded with the configured flags unless the options
// say otherwise.
func (f Factory) JSON(data any, opts ...Option) (*Response, error) {
	defaults := []Option{Protocol(f.cfg.Response.Protocol), JSON(f.cfg.Response.JSONOptions)}
	return NewJSON(data, append(defaults, opts...)...)
}
