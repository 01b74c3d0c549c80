// Package server exposes the projection engine over HTTP for form front ends.
package server

import (
	"bytes"
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/lifeplan/assetsim/internal/calculation"
	"github.com/lifeplan/assetsim/internal/config"
	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/lifeplan/assetsim/internal/output"
	"github.com/lifeplan/assetsim/internal/storage"
	"github.com/valyala/fasthttp"
)

const storageTimeout = 5 * time.Second

// Logger is the logging method set the server reports through.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ProjectionResponse wraps a projection with the inputs it was computed from.
type ProjectionResponse struct {
	StartYear  int                    `json:"startYear"`
	Parameters domain.InputParameters `json:"parameters"`
	SnapshotID string                 `json:"snapshotId,omitempty"`
	domain.Projection
}

// Server handles projection requests. Persister may be nil to disable saving.
type Server struct {
	Engine    *calculation.SimulationEngine
	Persister *storage.Persister
	Parser    *config.InputParser
	Locale    string
	Logger    Logger

	// CurrentYear supplies the default start year.
	CurrentYear func() int
}

// New creates a server around engine.
func New(engine *calculation.SimulationEngine, persister *storage.Persister, locale string, logger Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Server{
		Engine:      engine,
		Persister:   persister,
		Parser:      config.NewInputParser(),
		Locale:      locale,
		Logger:      logger,
		CurrentYear: calculation.CurrentYear,
	}
}

// Handler routes requests.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())
		switch {
		case path == "/healthz":
			ctx.SetContentType("text/plain; charset=utf-8")
			ctx.SetBodyString("ok")
		case path == "/api/projection":
			if !ctx.IsPost() {
				s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
				return
			}
			s.handleProjection(ctx)
		case path == "/api/households":
			if !ctx.IsGet() {
				s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
				return
			}
			s.handleListHouseholds(ctx)
		case strings.HasPrefix(path, "/api/households/"):
			if !ctx.IsGet() {
				s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
				return
			}
			s.handleRestoreHousehold(ctx, strings.TrimPrefix(path, "/api/households/"))
		default:
			s.writeError(ctx, fasthttp.StatusNotFound, "not found")
		}
	}
}

func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	params, err := s.parseParameters(ctx)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	args := ctx.QueryArgs()
	startYear := s.CurrentYear()
	if raw := args.Peek("startYear"); len(raw) > 0 {
		year, err := strconv.Atoi(string(raw))
		if err != nil || year <= 0 {
			s.writeError(ctx, fasthttp.StatusBadRequest, "startYear must be a positive integer")
			return
		}
		startYear = year
	}

	if strict, _ := strconv.ParseBool(string(args.Peek("strict"))); strict {
		if err := config.ValidateParameters(&params, startYear, &s.Engine.Rules); err != nil {
			s.writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
			return
		}
	}

	projection := s.Engine.RunProjection(&params, startYear)

	var snapshotID string
	if name := string(args.Peek("name")); name != "" && s.Persister != nil {
		storeCtx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		snapshotID = s.Persister.Persist(storeCtx, name, &params)
		cancel()
	}

	if format := string(args.Peek("format")); format != "" && output.NormalizeFormatName(format) != "json" {
		s.writeFormatted(ctx, projection, format)
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, ProjectionResponse{
		StartYear:  startYear,
		Parameters: params,
		SnapshotID: snapshotID,
		Projection: *projection,
	})
}

// parseParameters accepts a JSON object or a form-encoded body keyed by field names.
func (s *Server) parseParameters(ctx *fasthttp.RequestCtx) (domain.InputParameters, error) {
	contentType := string(ctx.Request.Header.ContentType())
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") || strings.HasPrefix(contentType, "multipart/form-data") {
		fields := map[string]string{}
		ctx.PostArgs().VisitAll(func(key, value []byte) {
			fields[string(key)] = string(value)
		})
		if form, err := ctx.MultipartForm(); err == nil {
			for k, v := range form.Value {
				if len(v) > 0 {
					fields[k] = v[0]
				}
			}
		}
		return s.Parser.ParseFields(fields), nil
	}

	body := bytes.TrimSpace(ctx.PostBody())
	if len(body) == 0 {
		return domain.InputParameters{}, nil
	}
	return s.Parser.Parse("json", body)
}

func (s *Server) writeFormatted(ctx *fasthttp.RequestCtx, projection *domain.Projection, format string) {
	f, err := output.NewFormatter(format, s.Locale)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	data, err := f.Format(projection)
	if err != nil {
		s.Logger.Errorf("format %s: %v", f.Name(), err)
		s.writeError(ctx, fasthttp.StatusInternalServerError, "could not render projection")
		return
	}
	ctx.SetContentType(contentTypeFor(f.Name()))
	ctx.SetBody(data)
}

func contentTypeFor(format string) string {
	switch format {
	case "html":
		return "text/html; charset=utf-8"
	case "csv", "detailed-csv":
		return "text/csv; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func (s *Server) handleListHouseholds(ctx *fasthttp.RequestCtx) {
	if s.Persister == nil {
		s.writeJSON(ctx, fasthttp.StatusOK, []string{})
		return
	}
	storeCtx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	names, err := s.Persister.Store.List(storeCtx)
	if err != nil {
		s.Logger.Warnf("list households: %v", err)
		s.writeError(ctx, fasthttp.StatusServiceUnavailable, "storage unavailable")
		return
	}
	if names == nil {
		names = []string{}
	}
	s.writeJSON(ctx, fasthttp.StatusOK, names)
}

func (s *Server) handleRestoreHousehold(ctx *fasthttp.RequestCtx, name string) {
	if s.Persister == nil {
		s.writeError(ctx, fasthttp.StatusNotFound, "storage disabled")
		return
	}
	storeCtx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	params, found := s.Persister.Restore(storeCtx, name)
	if !found {
		s.writeError(ctx, fasthttp.StatusNotFound, "household "+strconv.Quote(name)+" not found")
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, params)
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.Logger.Errorf("encode response: %v", err)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	s.writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}

// Serve accepts connections on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &fasthttp.Server{
		Handler:      s.Handler(),
		Name:         "assetsim",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		if err := srv.Shutdown(); err != nil && !errors.Is(err, net.ErrClosed) {
			return err
		}
		return nil
	}
}

// ListenAndServe listens on addr and serves until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.Logger.Infof("listening on %s", ln.Addr())
	return s.Serve(ctx, ln)
}
