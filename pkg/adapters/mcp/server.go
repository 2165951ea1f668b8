package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/rewind"
	"github.com/aretw0/rewind/pkg/history"
	"github.com/aretw0/rewind/pkg/session"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// DocumentsURI lists every open document.
const DocumentsURI = "rewind://documents"

// DocumentArgs identifies a document.
type DocumentArgs struct {
	ID string `mapstructure:"id"`
}

// OpenArgs are the arguments of open_document.
type OpenArgs struct {
	ID    string `mapstructure:"id"`
	Value string `mapstructure:"value"`
}

// CommandArgs are the arguments of apply_command.
type CommandArgs struct {
	ID    string `mapstructure:"id"`
	Kind  string `mapstructure:"kind"`
	Value string `mapstructure:"value"`
}

// ListResponse is the result of list_documents.
type ListResponse struct {
	Documents []string `json:"documents" jsonschema_description:"IDs of the open documents"`
}

// ClosedResponse is the result of close_document.
type ClosedResponse struct {
	ID     string `json:"id"`
	Closed bool   `json:"closed"`
}

// Server exposes a session manager as an MCP Server.
type Server struct {
	manager   *session.Manager[string]
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(manager *session.Manager[string], logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		manager:   manager,
		logger:    logger,
		mcpServer: server.NewMCPServer("rewind-mcp", strings.TrimSpace(rewind.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
		return nil
	})

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: open_document
	openTool := mcp.NewTool("open_document",
		mcp.WithDescription("Open a document, creating it with the initial value if it does not exist. A new ID is generated when id is omitted."),
		mcp.WithString("id", mcp.Description("Document ID (optional)")),
		mcp.WithString("value", mcp.Description("Initial value for a new document")),
		mcp.WithOutputSchema[session.View[string]](),
	)
	s.mcpServer.AddTool(openTool, mcp.NewStructuredToolHandler(s.handleOpen))

	// TOOL: get_document
	getTool := mcp.NewTool("get_document",
		mcp.WithDescription("Get the undo trail, present value and redo trail of a document."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Document ID")),
		mcp.WithOutputSchema[session.View[string]](),
	)
	s.mcpServer.AddTool(getTool, mcp.NewStructuredToolHandler(s.handleGet))

	// TOOL: list_documents
	listTool := mcp.NewTool("list_documents",
		mcp.WithDescription("List the IDs of all open documents."),
		mcp.WithOutputSchema[ListResponse](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleList))

	// TOOL: apply_command
	applyTool := mcp.NewTool("apply_command",
		mcp.WithDescription("Apply set, replace, reset, undo or redo to a document."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Document ID")),
		mcp.WithString("kind", mcp.Required(),
			mcp.Description("Command kind"),
			mcp.Enum("set", "replace", "reset", "undo", "redo"),
		),
		mcp.WithString("value", mcp.Description("Value for set, replace and reset")),
		mcp.WithOutputSchema[session.View[string]](),
	)
	s.mcpServer.AddTool(applyTool, mcp.NewStructuredToolHandler(s.handleApply))

	// TOOL: close_document
	closeTool := mcp.NewTool("close_document",
		mcp.WithDescription("Close a document and discard its history."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Document ID")),
		mcp.WithOutputSchema[ClosedResponse](),
	)
	s.mcpServer.AddTool(closeTool, mcp.NewStructuredToolHandler(s.handleClose))
}

// decodeArgs maps raw tool arguments onto a typed struct.
func decodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func (s *Server) handleOpen(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (session.View[string], error) {
	var in OpenArgs
	if err := decodeArgs(args, &in); err != nil {
		return session.View[string]{}, err
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}

	h, err := s.manager.Open(ctx, in.ID, in.Value)
	if err != nil {
		return session.View[string]{}, fmt.Errorf("open failed: %w", err)
	}
	return session.NewView(in.ID, h), nil
}

func (s *Server) handleGet(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (session.View[string], error) {
	var in DocumentArgs
	if err := decodeArgs(args, &in); err != nil {
		return session.View[string]{}, err
	}

	h, err := s.manager.Get(ctx, in.ID)
	if err != nil {
		return session.View[string]{}, fmt.Errorf("get failed: %w", err)
	}
	return session.NewView(in.ID, h), nil
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (ListResponse, error) {
	ids, err := s.manager.List(ctx)
	if err != nil {
		return ListResponse{}, fmt.Errorf("list failed: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ListResponse{Documents: ids}, nil
}

func (s *Server) handleApply(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (session.View[string], error) {
	var in CommandArgs
	if err := decodeArgs(args, &in); err != nil {
		return session.View[string]{}, err
	}
	kind, err := history.ParseKind(in.Kind)
	if err != nil {
		return session.View[string]{}, err
	}

	h, err := s.manager.Dispatch(ctx, in.ID, history.Command[string]{Kind: kind, Value: in.Value})
	if err != nil {
		s.logger.Warn("MCP apply_command rejected", "document", in.ID, "kind", kind, "error", err)
		return session.View[string]{}, fmt.Errorf("%s failed: %w", kind, err)
	}
	return session.NewView(in.ID, h), nil
}

func (s *Server) handleClose(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (ClosedResponse, error) {
	var in DocumentArgs
	if err := decodeArgs(args, &in); err != nil {
		return ClosedResponse{}, err
	}
	if err := s.manager.Close(ctx, in.ID); err != nil {
		return ClosedResponse{}, fmt.Errorf("close failed: %w", err)
	}
	return ClosedResponse{ID: in.ID, Closed: true}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: rewind://documents
	s.mcpServer.AddResource(mcp.NewResource(DocumentsURI, "Open Documents",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ids, err := s.manager.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list documents: %w", err)
		}
		views := make([]session.View[string], 0, len(ids))
		for _, id := range ids {
			h, err := s.manager.Get(ctx, id)
			if err != nil {
				continue // closed concurrently
			}
			views = append(views, session.NewView(id, h))
		}
		return encodeResource(DocumentsURI, views)
	})
}

// encodeResource renders v as a single JSON resource.
func encodeResource(uri string, v any) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
