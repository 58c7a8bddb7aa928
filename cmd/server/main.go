package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/roster/internal/config"
	"github.com/rpggio/roster/internal/domain/enrollment"
	"github.com/rpggio/roster/internal/domain/roster"
	"github.com/rpggio/roster/internal/mcp"
	"github.com/rpggio/roster/internal/memory"
	"github.com/rpggio/roster/internal/sqlite"
	"github.com/rpggio/roster/internal/tracing"
	"github.com/rpggio/roster/internal/transport"
)

var version = "dev"

func main() {
	os.Exit(serve())
}

// serve returns the process exit code. Deferred cleanup runs before main exits.
func serve() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	console := io.Writer(os.Stdout)
	if cfg.Transport.Mode == "stdio" {
		console = os.Stderr
	}
	logger, closeLog := newLogger(cfg.Log, console)
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "log file close: %v\n", err)
		}
	}()

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		return 1
	}
	return 0
}

// newLogger builds the process logger. Logs go to the configured file when
// it can be opened and to console otherwise. The returned func closes the file.
func newLogger(cfg config.LogConfig, console io.Writer) (*slog.Logger, func() error) {
	out := console
	closeLog := func() error { return nil }
	if cfg.Path != "" {
		fileWriter, file, err := newLogFileWriter(cfg.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			out = fileWriter
			closeLog = file.Close
		}
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Level),
	}))
	return logger, closeLog
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing.Endpoint, cfg.Tracing.ServiceName)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("tracing shutdown error", "error", err)
		}
	}()

	seed, err := config.LoadSeed(cfg.Roster.SeedPath)
	if err != nil {
		return err
	}
	store, err := memory.NewRosterStore(seed)
	if err != nil {
		return err
	}

	var (
		journal     roster.Journal
		enrollments *enrollment.Service
	)
	if cfg.DB.Path != "" {
		db, err := openJournal(cfg.DB.Path)
		if err != nil {
			return err
		}
		defer db.Close()
		enrollments = enrollment.NewService(sqlite.NewEnrollmentRepository(db), logger)
		journal = enrollments
	} else {
		logger.Info("enrollment journal disabled")
	}

	rosterSvc := roster.NewService(store, journal, logger)
	if err := rosterSvc.ReportParticipants(ctx); err != nil {
		return err
	}
	logger.Info("roster loaded", "activities", len(seed))

	mcpServices := mcp.Services{Roster: rosterSvc}
	if enrollments != nil {
		mcpServices.Enrollments = enrollments
	}
	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcpServices,
		Version:  version,
		Logger:   logger,
	})

	if cfg.Transport.Mode == "stdio" {
		return runStdioMode(ctx, logger, mcpServer)
	}

	routerCfg := transport.Config{
		Roster:    rosterSvc,
		StaticDir: cfg.Server.StaticDir,
		Logger:    logger,
	}
	if enrollments != nil {
		routerCfg.Enrollments = enrollments
	}
	if cfg.Transport.MCPEnabled {
		routerCfg.MCP = sdkmcp.NewStreamableHTTPHandler(
			func(*http.Request) *sdkmcp.Server { return mcpServer },
			&sdkmcp.StreamableHTTPOptions{
				Stateless:      false,
				SessionTimeout: 30 * time.Minute,
			},
		)
	}
	return runHTTPMode(ctx, logger, cfg.Server, transport.NewServer(routerCfg))
}

func openJournal(path string) (*sqlite.DB, error) {
	if err := ensureDBDir(path); err != nil {
		return nil, fmt.Errorf("prepare database path: %w", err)
	}
	db, err := sqlite.New(path)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func runStdioMode(ctx context.Context, logger *slog.Logger, mcpServer *sdkmcp.Server) error {
	logger.Info("starting stdio transport")

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}

func runHTTPMode(ctx context.Context, logger *slog.Logger, cfg config.ServerConfig, handler http.Handler) error {
	httpServer := transport.NewHTTPServer(transport.ServerConfig{
		Address:      cfg.Addr(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, handler)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
