// Package mcpserver exposes the gateway operations as MCP tools over stdio or SSE.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/XavierBriggs/Janus/pkg/models"
)

const serverName = "janus"

// Gateway is the operation surface served by the tools
type Gateway interface {
	Call(ctx context.Context, name string, args map[string]any) models.Envelope
	Leagues() []models.LeagueID
	RateLimits() models.RateLimits
}

// Server wires gateway operations into an MCP server
type Server struct {
	mcp       *server.MCPServer
	gateway   Gateway
	version   string
	startedAt time.Time
	logger    *zap.Logger
}

// New creates the MCP server and registers every tool
func New(gw Gateway, version string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		mcp: server.NewMCPServer(
			serverName,
			version,
			server.WithToolCapabilities(true),
			server.WithRecovery(),
		),
		gateway:   gw,
		version:   version,
		startedAt: time.Now(),
		logger:    logger,
	}
	s.registerTools()
	return s
}

// MCP returns the underlying MCP server
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

func (s *Server) registerTools() {
	for _, tool := range toolDefinitions() {
		s.mcp.AddTool(tool, s.operationHandler(tool.Name))
	}

	s.mcp.AddTool(
		mcp.NewTool("health",
			mcp.WithDescription("Report gateway status, enabled leagues and the provider rate limit budget"),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			report := s.Health()
			text, _ := json.Marshal(report)
			return mcp.NewToolResultStructured(report, string(text)), nil
		},
	)
}

// operationHandler adapts a gateway operation to a tool handler.
// The envelope is returned as structured content with a JSON text fallback.
func (s *Server) operationHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		env := s.gateway.Call(ctx, name, req.GetArguments())

		text, err := json.Marshal(env)
		if err != nil {
			s.logger.Error("failed to encode envelope", zap.String("operation", name), zap.Error(err))
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}

		result := mcp.NewToolResultStructured(env, string(text))
		result.IsError = !env.IsSuccess()
		return result, nil
	}
}

// HealthReport is the payload of the health tool and endpoint
type HealthReport struct {
	Status     string            `json:"status"`
	Server     string            `json:"server"`
	Version    string            `json:"version"`
	Leagues    []models.LeagueID `json:"leagues"`
	Uptime     string            `json:"uptime"`
	RateLimits *RateLimitReport  `json:"rate_limits,omitempty"`
}

// RateLimitReport is the provider-reported budget, present once a reply carried it
type RateLimitReport struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetTime time.Time `json:"reset_time"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Health builds the current health report
func (s *Server) Health() HealthReport {
	report := HealthReport{
		Status:  "ok",
		Server:  serverName,
		Version: s.version,
		Leagues: s.gateway.Leagues(),
		Uptime:  time.Since(s.startedAt).Round(time.Second).String(),
	}

	if rl := s.gateway.RateLimits(); !rl.UpdatedAt.IsZero() {
		report.RateLimits = &RateLimitReport{
			Limit:     rl.Limit,
			Remaining: rl.Remaining,
			ResetTime: rl.ResetTime,
			UpdatedAt: rl.UpdatedAt,
		}
	}
	return report
}

// HealthHandler serves the health report as JSON
func (s *Server) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Health()); err != nil {
		s.logger.Warn("failed to write health response", zap.Error(err))
	}
}

// ServeStdio serves MCP over stdin/stdout until ctx is done or stdin closes.
// Logs must never go to stdout in this mode.
func (s *Server) ServeStdio(ctx context.Context) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(zap.NewStdLog(s.logger))

	s.logger.Info("serving MCP over stdio")
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}

// Handler returns the HTTP surface of SSE mode: the MCP endpoints, /health and /metrics
func (s *Server) Handler(sse *server.SSEServer) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/sse", sse.ServeHTTP)
	mux.HandleFunc("/message", sse.ServeHTTP)
	mux.HandleFunc("/health", s.HealthHandler)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// ServeSSE serves MCP over SSE on port until ctx is done
func (s *Server) ServeSSE(ctx context.Context, port int, publicURL string) error {
	if publicURL == "" {
		publicURL = fmt.Sprintf("http://localhost:%d", port)
	}

	sse := server.NewSSEServer(s.mcp, server.WithBaseURL(publicURL))
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(sse),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("serving MCP over SSE", zap.Int("port", port), zap.String("public_url", publicURL))
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("sse server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := sse.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("sse shutdown failed", zap.Error(err))
	}
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
