package testserver_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/roster/internal/domain/roster"
	"github.com/rpggio/roster/internal/testserver"
	"github.com/rpggio/roster/internal/transport"
)

func request(t *testing.T, method, rawURL string, out any) int {
	t.Helper()
	req, err := http.NewRequest(method, rawURL, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func enrollURL(ts *testserver.TestServer, name, action, email string) string {
	return ts.URL("/activities/" + url.PathEscape(name) + "/" + action + "?email=" + url.QueryEscape(email))
}

func participants(t *testing.T, ts *testserver.TestServer, name string) []string {
	t.Helper()
	var activities map[string]roster.Activity
	require.Equal(t, http.StatusOK, request(t, http.MethodGet, ts.URL("/activities"), &activities))
	return activities[name].Participants
}

func TestEndToEnd_MathClubFillsToCapacity(t *testing.T) {
	ts := testserver.New(t, roster.Activity{
		Name:            "Math Club",
		Description:     "Solve problems and prepare for competitions",
		Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 2,
		Participants:    []string{"alice@mergington.edu"},
	})

	var msg transport.MessageResponse
	status := request(t, http.MethodPost, enrollURL(ts, "Math Club", "signup", "bob@mergington.edu"), &msg)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Signed up bob@mergington.edu for Math Club", msg.Message)

	got := participants(t, ts, "Math Club")
	require.Equal(t, []string{"alice@mergington.edu", "bob@mergington.edu"}, got)
	require.Len(t, got, 2)
}

func TestEndToEnd_HistoryFollowsChanges(t *testing.T) {
	ts := testserver.New(t)
	email := "history@mergington.edu"

	require.Equal(t, http.StatusOK, request(t, http.MethodPost, enrollURL(ts, "Art Club", "signup", email), nil))
	require.Equal(t, http.StatusBadRequest, request(t, http.MethodPost, enrollURL(ts, "Art Club", "signup", email), nil))
	require.Equal(t, http.StatusOK, request(t, http.MethodDelete, enrollURL(ts, "Art Club", "unregister", email), nil))

	var history transport.HistoryResponse
	status := request(t, http.MethodGet, ts.URL("/activities/"+url.PathEscape("Art Club")+"/history"), &history)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, history.Events, 2)
	require.Equal(t, "unregistered", string(history.Events[0].Type))
	require.Equal(t, "signed_up", string(history.Events[1].Type))
	for _, e := range history.Events {
		require.Equal(t, email, e.Email)
		require.NotEmpty(t, e.ID)
	}
}

func TestEndToEnd_ConcurrentSignupsAreNotLost(t *testing.T) {
	ts := testserver.New(t)
	const n = 20

	var wg sync.WaitGroup
	codes := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("student%02d@mergington.edu", i)
			req, err := http.NewRequest(http.MethodPost, enrollURL(ts, "Gym Class", "signup", email), nil)
			if err != nil {
				return
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return
			}
			resp.Body.Close()
			codes[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		require.Equal(t, http.StatusOK, code)
	}
	require.Len(t, participants(t, ts, "Gym Class"), 2+n)
}

func TestEndToEnd_ConcurrentDuplicateSignupAddsOnce(t *testing.T) {
	ts := testserver.New(t)
	const n = 10
	email := "same@mergington.edu"

	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req, err := http.NewRequest(http.MethodPost, enrollURL(ts, "Soccer Team", "signup", email), nil)
			if err != nil {
				return
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return
			}
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, ok)
	count := 0
	for _, p := range participants(t, ts, "Soccer Team") {
		if p == email {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestEndToEnd_MCPSharesRosterWithREST(t *testing.T) {
	ts := testserver.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &sdkmcp.StreamableClientTransport{Endpoint: ts.URL("/mcp")}, nil)
	require.NoError(t, err)
	defer session.Close()

	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "signup_for_activity",
		Arguments: map[string]any{"activity": "Drama Club", "email": "mcp@mergington.edu"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.Contains(t, participants(t, ts, "Drama Club"), "mcp@mergington.edu")

	history, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "list_enrollment_events",
		Arguments: map[string]any{"activity": "Drama Club"},
	})
	require.NoError(t, err)
	require.False(t, history.IsError)
	data, err := json.Marshal(history.StructuredContent)
	require.NoError(t, err)
	require.Contains(t, string(data), "mcp@mergington.edu")
}

func TestEndToEnd_ParticipantsGaugeReportedBeforeAnyChange(t *testing.T) {
	ts := testserver.New(t, roster.Activity{
		Name:            "Astronomy Society",
		Description:     "Observe the night sky",
		Schedule:        "Thursdays, 7:00 PM - 9:00 PM",
		MaxParticipants: 10,
		Participants:    []string{"luna@mergington.edu", "orion@mergington.edu"},
	})

	resp, err := http.Get(ts.URL("/metrics"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.Contains(t, string(body), `roster_activity_participants{activity="Astronomy Society"} 2`)
}
