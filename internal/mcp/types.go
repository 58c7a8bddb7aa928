package mcp

import (
	"time"

	"github.com/rpggio/roster/internal/domain/enrollment"
	"github.com/rpggio/roster/internal/domain/roster"
)

type ListActivitiesInput struct{}

type ListActivitiesResult struct {
	Activities []ActivityResult `json:"activities" jsonschema:"activities in roster order"`
}

type ActivityInput struct {
	Name string `json:"name" jsonschema:"exact activity name, e.g. Chess Club"`
}

type EnrollmentInput struct {
	Activity string `json:"activity" jsonschema:"exact activity name"`
	Email    string `json:"email" jsonschema:"student email address"`
}

type EnrollmentResult struct {
	Message  string         `json:"message" jsonschema:"confirmation message"`
	Activity ActivityResult `json:"activity" jsonschema:"activity after the change"`
}

type ActivityResult struct {
	Name            string   `json:"name" jsonschema:"activity name"`
	Description     string   `json:"description" jsonschema:"activity description"`
	Schedule        string   `json:"schedule" jsonschema:"meeting schedule"`
	MaxParticipants int      `json:"max_participants" jsonschema:"advertised capacity"`
	Participants    []string `json:"participants" jsonschema:"participant emails in signup order"`
	SpotsLeft       int      `json:"spots_left" jsonschema:"remaining capacity, negative when over capacity"`
}

type ListEventsInput struct {
	Activity string `json:"activity" jsonschema:"exact activity name"`
	Email    string `json:"email,omitempty" jsonschema:"only events for this student"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of events (default and cap 200)"`
	Offset   int    `json:"offset,omitempty" jsonschema:"number of newest events to skip"`
}

type ListEventsResult struct {
	Events []EventResult `json:"events" jsonschema:"journal events, newest first"`
}

type EventResult struct {
	ID        string `json:"id"`
	Activity  string `json:"activity"`
	Email     string `json:"email"`
	Type      string `json:"type" jsonschema:"signed_up or unregistered"`
	CreatedAt string `json:"created_at" jsonschema:"RFC 3339 timestamp"`
}

func activityResult(a roster.Activity) ActivityResult {
	participants := a.Participants
	if participants == nil {
		participants = []string{}
	}
	return ActivityResult{
		Name:            a.Name,
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
		SpotsLeft:       a.SpotsLeft(),
	}
}

func eventResult(e enrollment.Event) EventResult {
	return EventResult{
		ID:        e.ID,
		Activity:  e.Activity,
		Email:     e.Email,
		Type:      string(e.Type),
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
