// Package ops configures the operational HTTP server of the vote service:
// health checks, Prometheus metrics, pprof and a read-only leaderboard view. Every
// route except the health checks and metrics requires an admin bearer token.
package ops

import (
	"context"
	"errors"
	"fanvote/internal/config"
	"fanvote/pkg/controller"
	"fanvote/pkg/domain"
	"fanvote/pkg/leaderboard"
	"fanvote/pkg/logger"
	"fanvote/pkg/serrors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/go-faster/jx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	healthPath = "/healthz"
	readyPath  = "/readyz"

	defaultStandingsLimit = 10
	maxStandingsLimit     = 100
	defaultCheckTimeout   = 2 * time.Second
)

// Pinger is a dependency checked by the readiness check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Standings reads the leaderboard of an organization.
type Standings interface {
	Standings(ctx context.Context, orgID domain.OrganizationID, n int) ([]leaderboard.Entry, error)
}

// Options holds configuration for the ops server. It is typically created
// from a config.Config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// PublicKey verifies admin tokens. Without it the admin routes are not mounted.
	PublicKey string
	// CheckTimeout bounds each readiness check.
	CheckTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		PublicKey:         cfg.JWT.PublicKey,
	}
}

// Deps are the collaborators of the ops server.
type Deps struct {
	// Checks are pinged by the readiness check, keyed by name.
	Checks map[string]Pinger
	// Gatherer exposes the metrics. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
	// Standings backs the leaderboard route.
	Standings Standings
}

// NewHandler builds the routes of the ops server.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}
	if opts.CheckTimeout <= 0 {
		opts.CheckTimeout = defaultCheckTimeout
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+healthPath, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
			e.FieldStart("status")
			e.Str("ok")
		})
	})
	mux.Handle("GET "+readyPath, readiness(deps.Checks, opts.CheckTimeout))
	mux.Handle("GET "+opts.MetricsPath, promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))

	if opts.PublicKey != "" {
		auth, err := controller.NewBearerAuth(opts.PublicKey)
		if err != nil {
			return nil, fmt.Errorf("could not create bearer auth: %w", err)
		}

		mux.Handle(controller.PprofPrefix, auth.Middleware(controller.PprofMux()))
		if deps.Standings != nil {
			mux.Handle("GET /v1/organizations/{id}/standings", auth.Middleware(standings(deps.Standings)))
		}
	}

	return controller.WithLogger(mux, healthPath, readyPath), nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

// readiness pings every check concurrently and answers 503 when any fails.
func readiness(checks map[string]Pinger, timeout time.Duration) http.Handler {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		results := make([]error, len(names))
		var wg sync.WaitGroup
		for i, name := range names {
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(r.Context(), timeout)
				defer cancel()
				results[i] = checks[name].Ping(ctx)
			}()
		}
		wg.Wait()

		status, state := http.StatusOK, "ok"
		for i, err := range results {
			if err != nil {
				logger.Warn(r.Context(), "readiness check failed", zap.String("check", names[i]), zap.Error(err))
				status, state = http.StatusServiceUnavailable, "unavailable"
			}
		}

		writeJSON(w, status, func(e *jx.Encoder) {
			e.FieldStart("status")
			e.Str(state)
			e.FieldStart("checks")
			e.ObjStart()
			for i, name := range names {
				e.FieldStart(name)
				if results[i] != nil {
					e.Str(results[i].Error())
				} else {
					e.Str("ok")
				}
			}
			e.ObjEnd()
		})
	})
}

func standings(svc Standings) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID, err := domain.ParseOrganizationID(r.PathValue("id"))
		if err != nil {
			writeError(w, r, err)

			return
		}

		limit := defaultStandingsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err = strconv.Atoi(raw)
			if err != nil || limit <= 0 || limit > maxStandingsLimit {
				writeError(w, r, serrors.With(domain.ErrValidation, "limit must be between 1 and %d", maxStandingsLimit))

				return
			}
		}

		entries, err := svc.Standings(r.Context(), orgID, limit)
		if err != nil {
			writeError(w, r, err)

			return
		}

		writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
			e.FieldStart("organization_id")
			e.Str(orgID.String())
			e.FieldStart("standings")
			e.ArrStart()
			for _, entry := range entries {
				e.ObjStart()
				e.FieldStart("player_option_id")
				e.Str(entry.PlayerOptionID.String())
				e.FieldStart("votes")
				e.Int64(entry.Votes)
				e.ObjEnd()
			}
			e.ArrEnd()
		})
	})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	default:
		logger.Error(r.Context(), "error serving ops request", zap.Error(err))
	}

	msg := http.StatusText(status)
	if status != http.StatusInternalServerError {
		msg = err.Error()
	}
	writeJSON(w, status, func(e *jx.Encoder) {
		e.FieldStart("error")
		e.Str(msg)
	})
}

// writeJSON writes a JSON object whose fields are produced by fields.
func writeJSON(w http.ResponseWriter, status int, fields func(e *jx.Encoder)) {
	var e jx.Encoder
	e.ObjStart()
	fields(&e)
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
