package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/rewind"
	"github.com/aretw0/rewind/pkg/history"
	"github.com/aretw0/rewind/pkg/ports"
	"github.com/aretw0/rewind/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Server serves the document API over a session manager of string values.
type Server struct {
	Manager *session.Manager[string]
	Streams *StreamManager
	Logger  *slog.Logger

	metricsPath    string
	metricsHandler http.Handler
}

// Option configures the Server.
type Option func(*Server)

// WithStreams enables GET /documents/{id}/events. The same StreamManager must
// be registered as hooks on the manager for events to flow.
func WithStreams(streams *StreamManager) Option {
	return func(s *Server) {
		s.Streams = streams
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics mounts a metrics handler (usually promhttp.Handler()) at path.
func WithMetrics(path string, handler http.Handler) Option {
	return func(s *Server) {
		s.metricsPath = path
		s.metricsHandler = handler
	}
}

// NewHandler creates a new HTTP handler for the manager.
func NewHandler(manager *session.Manager[string], opts ...Option) http.Handler {
	server := &Server{
		Manager: manager,
		Logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	if server.metricsHandler != nil {
		r.Handle(server.metricsPath, server.metricsHandler)
	}

	// Serve OpenAPI Spec
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write(spec)
	})

	// Serve Swagger UI
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerHTML))
	})

	handler := HandlerWithOptions(server, ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			writeError(w, http.StatusBadRequest, err.Error())
		},
	})
	return enableCORS(handler)
}

var _ ServerInterface = (*Server)(nil)

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Rewind API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
    });
  };
</script>
</body>
</html>
`

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListDocuments handles GET /documents.
func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Manager.List(r.Context())
	if err != nil {
		s.fail(w, "ListDocuments", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, ids)
}

// CreateDocument handles POST /documents.
func (s *Server) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var body CreateDocumentJSONRequestBody
	if !s.decode(w, r, &body) {
		return
	}
	if body.Value == nil {
		writeError(w, http.StatusBadRequest, "missing value")
		return
	}
	var id string
	if body.Id != nil {
		id = strings.TrimSpace(*body.Id)
	}
	if id == "" {
		id = uuid.NewString()
	}

	h, err := s.Manager.Create(r.Context(), id, *body.Value)
	if err != nil {
		s.fail(w, "CreateDocument", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, mapDocument(id, h))
}

// GetDocument handles GET /documents/{id}.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request, id string) {
	h, err := s.Manager.Get(r.Context(), id)
	if err != nil {
		s.fail(w, "GetDocument", err)
		return
	}
	s.writeJSON(w, http.StatusOK, mapDocument(id, h))
}

// DeleteDocument handles DELETE /documents/{id}.
func (s *Server) DeleteDocument(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.Manager.Close(r.Context(), id); err != nil {
		s.fail(w, "DeleteDocument", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ApplyCommand handles POST /documents/{id}/{command}.
func (s *Server) ApplyCommand(w http.ResponseWriter, r *http.Request, id string, command string) {
	kind, err := history.ParseKind(command)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cmd := history.Command[string]{Kind: kind}
	if kind.TakesValue() {
		var body ApplyCommandJSONRequestBody
		if !s.decode(w, r, &body) {
			return
		}
		if body.Value == nil {
			writeError(w, http.StatusBadRequest, "missing value")
			return
		}
		cmd.Value = *body.Value
	}

	h, err := s.Manager.Dispatch(r.Context(), id, cmd)
	if err != nil {
		s.fail(w, "ApplyCommand", err)
		return
	}
	s.writeJSON(w, http.StatusOK, mapDocument(id, h))
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, Health{Status: "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	info := Info{
		App:     "rewind-http",
		Version: strings.TrimSpace(rewind.Version),
	}
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		info.ApiVersion = &swagger.Info.Version
	}
	s.writeJSON(w, http.StatusOK, info)
}

// -- Helpers --

func mapDocument(id string, h history.History[string]) Document {
	v := session.NewView(id, h)
	return Document{
		Id:      v.ID,
		Past:    v.Past,
		Present: v.Present,
		Future:  v.Future,
		CanUndo: v.CanUndo,
		CanRedo: v.CanRedo,
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		s.Logger.Warn("Invalid request body", "path", r.URL.Path, "error", err)
		return false
	}
	return true
}

// fail maps domain errors to status codes.
func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ports.ErrDocumentNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrDocumentExists),
		errors.Is(err, history.ErrNothingToUndo),
		errors.Is(err, history.ErrNothingToRedo):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, history.ErrUnknownCommand):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("%s error: %v", op, err))
		s.Logger.Error(op+" failed", "error", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Error{Error: msg})
}
