package testserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/roster/internal/domain/enrollment"
	"github.com/rpggio/roster/internal/domain/roster"
	"github.com/rpggio/roster/internal/mcp"
	"github.com/rpggio/roster/internal/memory"
	"github.com/rpggio/roster/internal/sqlite"
	"github.com/rpggio/roster/internal/transport"
)

// TestServer runs the full HTTP stack over an in-memory roster and journal.
type TestServer struct {
	Server      *httptest.Server
	DB          *sqlite.DB
	Roster      *roster.Service
	Enrollments *enrollment.Service
}

// New starts a server seeded with seed, or the built-in activities when seed
// is empty.
func New(t *testing.T, seed ...roster.Activity) *TestServer {
	t.Helper()

	if len(seed) == 0 {
		seed = roster.DefaultSeed()
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	store, err := memory.NewRosterStore(seed)
	require.NoError(t, err)

	enrollmentSvc := enrollment.NewService(sqlite.NewEnrollmentRepository(db), nil)
	rosterSvc := roster.NewService(store, enrollmentSvc, nil)
	require.NoError(t, rosterSvc.ReportParticipants(context.Background()))

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{Roster: rosterSvc, Enrollments: enrollmentSvc},
	})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{SessionTimeout: time.Minute},
	)

	server := httptest.NewServer(transport.NewServer(transport.Config{
		Roster:      rosterSvc,
		Enrollments: enrollmentSvc,
		MCP:         mcpHandler,
	}))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{
		Server:      server,
		DB:          db,
		Roster:      rosterSvc,
		Enrollments: enrollmentSvc,
	}
}

// URL joins path onto the server base URL.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}
