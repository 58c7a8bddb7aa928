package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `mergington-roster manages extracurricular activity signups for Mergington High School.

Core concepts:
- Activity: identified by its exact name ("Chess Club"). Has a description, schedule, max_participants and an ordered participant list.
- Participant: a student email. An email appears at most once per activity.
- Capacity is advisory: max_participants is reported but signups past it are accepted. spots_left goes negative in that case.

Workflow:
1) Call list_activities (or read roster://activities) to get exact activity names.
2) signup_for_activity / unregister_from_activity with activity + email.
3) list_enrollment_events shows the change history for an activity when the journal is enabled.

Errors carry a code: ACTIVITY_NOT_FOUND, ALREADY_REGISTERED, NOT_REGISTERED, INVALID_INPUT.

Docs: roster://guide
`

const activitiesURI = "roster://activities"

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "roster://guide",
		Name:        "guide",
		Title:       "Roster guide",
		Description: "How signups work, what each error code means, and how to recover.",
		Content: `# Mergington roster guide

## Names are exact

Activity names are case sensitive and must match ` + "`list_activities`" + ` output exactly, including spaces.

## Signing up

` + "`signup_for_activity(activity, email)`" + ` appends the email to the end of the participant list.

- ` + "`ALREADY_REGISTERED`" + `: the email is already on the list. Nothing changed.
- ` + "`ACTIVITY_NOT_FOUND`" + `: no activity has that name. Nothing changed.
- ` + "`INVALID_INPUT`" + `: the email was blank or only whitespace. The HTTP API answers the same case with 422.

Capacity is not enforced. Check ` + "`spots_left`" + ` before signing up if the student cares about a seat.

## Unregistering

` + "`unregister_from_activity(activity, email)`" + ` removes the email and keeps the order of everyone else.

- ` + "`NOT_REGISTERED`" + `: the email was not on the list. Nothing changed.

## History

` + "`list_enrollment_events(activity)`" + ` returns successful changes newest first. Use ` + "`email`" + ` to narrow to one student and ` + "`limit`" + `/` + "`offset`" + ` to page.
History is kept only when the server runs with a journal database.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}

func registerRosterResource(server *sdkmcp.Server, svc RosterService) {
	server.AddResource(&sdkmcp.Resource{
		URI:         activitiesURI,
		Name:        "activities",
		Title:       "Activities",
		Description: "Current roster of every activity as JSON",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
		uri := activitiesURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		activities, err := svc.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list activities: %w", err)
		}
		payload := ListActivitiesResult{Activities: make([]ActivityResult, 0, len(activities))}
		for _, act := range activities {
			payload.Activities = append(payload.Activities, activityResult(act))
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal activities: %w", err)
		}

		return &sdkmcp.ReadResourceResult{
			Contents: []*sdkmcp.ResourceContents{{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			}},
		}, nil
	})
}
