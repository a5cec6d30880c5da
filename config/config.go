package config

import (
	"github.com/indigo-web/response/internal/jsonenc"
)

type (
	Response struct {
		// Protocol is the protocol version responses are created with unless explicitly
		// overridden.
		Protocol string
		// JSONOptions are the encoder flags used for JSON bodies unless explicitly
		// overridden.
		JSONOptions jsonenc.Options
	}

	Render struct {
		// BufferSize is the initial capacity of the buffer the status line and headers are
		// rendered into. The buffer grows if needed.
		BufferSize int
		// ChunkSize is the maximal size of a single chunk written for bodies of unknown
		// size. Values below 16 are raised to 16.
		ChunkSize int
		// DefaultHeaders are included into every rendered response, unless the response
		// already has a header with the same name.
		DefaultHeaders map[string]string `test:"nullable"`
	}
)

// Config holds defaults used by the response factory and the renderer.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Response Response
	Render   Render
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Response: Response{
			Protocol:    "1.1",
			JSONOptions: jsonenc.Default,
		},
		Render: Render{
			BufferSize:     1024,
			ChunkSize:      16 * 1024,
			DefaultHeaders: make(map[string]string),
		},
	}
}
