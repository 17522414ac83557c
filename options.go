package reqgate

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// PathVarsFunc extracts route parameters from a request. The default reads
// gorilla/mux vars; override with [WithPathVars] for other routers.
type PathVarsFunc func(*http.Request) map[string]string

// ErrorHandler writes the rejection response for the collected failures.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, failures []SectionError)

// Option configures a gate middleware.
type Option func(*config)

type config struct {
	pathVars     PathVarsFunc
	maxBodyBytes int64
	logger       zerolog.Logger
	onError      ErrorHandler
}

const defaultMaxBodyBytes = 10 << 20 // 10 MiB

func defaultPathVars(r *http.Request) map[string]string {
	return mux.Vars(r)
}

func newConfig(opts []Option) *config {
	cfg := &config{
		pathVars:     defaultPathVars,
		maxBodyBytes: defaultMaxBodyBytes,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithPathVars sets the route-parameter source for the params section.
//
//	reqgate.WithPathVars(func(r *http.Request) map[string]string {
//	    return myRouterVars(r)
//	})
func WithPathVars(fn PathVarsFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.pathVars = fn
		}
	}
}

// WithMaxBodyBytes caps how many request-body bytes the gate reads when a
// body schema is configured. Bodies over the cap fail the body section.
// Default: 10 MiB.
func WithMaxBodyBytes(n int64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}

// WithLogger sets the logger for rejected requests. The gate logs one Warn
// event per rejection (method, path, failing section count) and is silent on
// accepted requests. Default: no logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithErrorHandler replaces the rejection writer. The handler owns the whole
// response; [WriteEnvelope] remains available for reuse inside it.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) {
		c.onError = h
	}
}
