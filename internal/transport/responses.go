package transport

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/rpggio/roster/internal/domain/enrollment"
	"github.com/rpggio/roster/internal/domain/roster"
)

// MessageResponse confirms a roster change.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HistoryResponse lists journal events for one activity, newest first.
type HistoryResponse struct {
	Events []enrollment.Event `json:"events"`
}

// activityMap encodes as a JSON object keyed by activity name, keeping roster
// order instead of the sorted key order encoding/json uses for maps.
type activityMap []roster.Activity

func (m activityMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, act := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(act.Name)
		if err != nil {
			return nil, err
		}
		if act.Participants == nil {
			act.Participants = []string{}
		}
		val, err := json.Marshal(act)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
