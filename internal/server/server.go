// Package server exposes the employee form, its option sources and the demo
// cart over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goliatone/go-dynform/pkg/cart"
	"github.com/goliatone/go-dynform/pkg/employees"
	"github.com/goliatone/go-dynform/pkg/form"
	"github.com/goliatone/go-dynform/pkg/schema"
	"github.com/goliatone/go-dynform/pkg/validation"
)

const maxSchemaBytes = 1 << 20

// Option configures a Server.
type Option func(*Server)

// WithDirectory overrides the department and role tables.
func WithDirectory(dir *employees.Directory) Option {
	return func(s *Server) {
		if dir != nil {
			s.directory = dir
		}
	}
}

// WithEmployeeStore overrides the employee store.
func WithEmployeeStore(store *employees.Store) Option {
	return func(s *Server) {
		if store != nil {
			s.employees = store
		}
	}
}

// WithCartStore overrides the cart store.
func WithCartStore(store *cart.Store) Option {
	return func(s *Server) {
		if store != nil {
			s.cart = store
		}
	}
}

// WithLogger routes request diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRegistry registers metrics on registry instead of a private one.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(s *Server) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithFormOptions forwards options to the form builder used for submissions.
func WithFormOptions(opts ...form.Option) Option {
	return func(s *Server) {
		s.formOptions = append(s.formOptions, opts...)
	}
}

// Server validates submissions against a form schema before they reach the
// stores. Stores are shared across requests; every submission builds its own
// form state.
type Server struct {
	schema      schema.FormSchema
	directory   *employees.Directory
	employees   *employees.Store
	cart        *cart.Store
	logger      *slog.Logger
	registry    *prometheus.Registry
	formOptions []form.Option
	metrics     *metrics
}

// New constructs a Server for the employee form s.
func New(s schema.FormSchema, opts ...Option) (*Server, error) {
	srv := &Server{
		schema:    s,
		directory: employees.DefaultDirectory(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(srv)
		}
	}
	if srv.employees == nil {
		srv.employees = employees.NewStore(employees.Seed())
	}
	if srv.cart == nil {
		srv.cart = cart.NewStore()
	}

	// Fail fast on a schema the engine cannot build.
	if _, err := srv.newForm(); err != nil {
		return nil, err
	}

	m, err := newMetrics(srv.registry)
	if err != nil {
		return nil, err
	}
	srv.metrics = m
	return srv, nil
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/form", s.getForm)
		r.Post("/schema/validate", s.validateSchema)
		r.Get("/departments", s.listDepartments)
		r.Get("/roles", s.listRoles)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", s.listEmployees)
			r.Post("/", s.createEmployee)
			r.Get("/{id}", s.getEmployee)
			r.Put("/{id}", s.updateEmployee)
			r.Delete("/{id}", s.deleteEmployee)
		})

		r.Get("/products", s.listProducts)
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", s.getCart)
			r.Delete("/", s.clearCart)
			r.Post("/items", s.addCartItem)
			r.Patch("/items/{id}", s.updateCartItem)
			r.Delete("/items/{id}", s.removeCartItem)
		})
	})
	return r
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		s.logger.DebugContext(r.Context(), "request served",
			slog.String("method", r.Method),
			slog.String("route", route),
			slog.Int("status", status),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *Server) newForm() (*form.State, error) {
	opts := append([]form.Option{form.WithLogger(s.logger)}, s.formOptions...)
	return form.NewBuilder(opts...).Build(s.schema, s.directory.Resolver())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func (s *Server) getForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.schema)
}

// validateSchema lints a posted schema document. The Content-Type picks the
// decoder; anything other than YAML is treated as JSON.
func (s *Server) validateSchema(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSchemaBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	}
	name := "schema.json"
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		name = "schema.yaml"
	}

	result := validation.ValidateSchema(schema.SourceFromFS(name), raw)
	status := http.StatusOK
	if !result.Valid {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, result)
}

func (s *Server) listDepartments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.directory.Departments())
}

func (s *Server) listRoles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.directory.Roles())
}
