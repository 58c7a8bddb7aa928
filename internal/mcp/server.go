package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/roster/internal/domain/enrollment"
	"github.com/rpggio/roster/internal/domain/roster"
)

// ServerName identifies this server to MCP clients.
const ServerName = "mergington-roster"

// RosterService defines roster operations needed by MCP.
type RosterService interface {
	List(ctx context.Context) ([]roster.Activity, error)
	Get(ctx context.Context, name string) (*roster.Activity, error)
	SignUp(ctx context.Context, name, email string) (*roster.Activity, error)
	Unregister(ctx context.Context, name, email string) (*roster.Activity, error)
}

// EnrollmentService defines journal reads needed by MCP.
type EnrollmentService interface {
	Recent(ctx context.Context, opts enrollment.ListOptions) ([]enrollment.Event, error)
}

// Services contains all domain services needed by MCP.
// Enrollments is optional; without it the history tool is not offered.
type Services struct {
	Roster      RosterService
	Enrollments EnrollmentService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Version  string
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "0.1.0"
	}
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    ServerName,
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)
	registerRosterResource(server, cfg.Services.Roster)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
