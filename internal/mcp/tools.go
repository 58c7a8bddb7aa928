package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/roster/internal/domain/enrollment"
	"github.com/rpggio/roster/internal/domain/roster"
)

func registerTools(server *sdkmcp.Server, services Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_activities",
		Description: "List every activity with its schedule, capacity and participants",
	}, listActivitiesHandler(services.Roster))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_activity",
		Description: "Get one activity by exact name",
	}, getActivityHandler(services.Roster))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "signup_for_activity",
		Description: "Sign a student up for an activity by email",
	}, signUpHandler(services.Roster))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "unregister_from_activity",
		Description: "Remove a student from an activity by email",
	}, unregisterHandler(services.Roster))

	if services.Enrollments != nil {
		sdkmcp.AddTool(server, &sdkmcp.Tool{
			Name:        "list_enrollment_events",
			Description: "List recent signups and unregistrations for an activity, newest first",
		}, listEventsHandler(services.Roster, services.Enrollments))
	}
}

func listActivitiesHandler(svc RosterService) sdkmcp.ToolHandlerFor[ListActivitiesInput, ListActivitiesResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListActivitiesInput) (*sdkmcp.CallToolResult, ListActivitiesResult, error) {
		activities, err := svc.List(ctx)
		if err != nil {
			return nil, ListActivitiesResult{}, toolError(err)
		}
		out := ListActivitiesResult{Activities: make([]ActivityResult, 0, len(activities))}
		for _, act := range activities {
			out.Activities = append(out.Activities, activityResult(act))
		}
		return nil, out, nil
	}
}

func getActivityHandler(svc RosterService) sdkmcp.ToolHandlerFor[ActivityInput, ActivityResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input ActivityInput) (*sdkmcp.CallToolResult, ActivityResult, error) {
		act, err := svc.Get(ctx, input.Name)
		if err != nil {
			return nil, ActivityResult{}, toolError(err)
		}
		return nil, activityResult(*act), nil
	}
}

func signUpHandler(svc RosterService) sdkmcp.ToolHandlerFor[EnrollmentInput, EnrollmentResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input EnrollmentInput) (*sdkmcp.CallToolResult, EnrollmentResult, error) {
		act, err := svc.SignUp(ctx, input.Activity, input.Email)
		if err != nil {
			return nil, EnrollmentResult{}, toolError(err)
		}
		return nil, EnrollmentResult{
			Message:  roster.SignupMessage(input.Email, input.Activity),
			Activity: activityResult(*act),
		}, nil
	}
}

func unregisterHandler(svc RosterService) sdkmcp.ToolHandlerFor[EnrollmentInput, EnrollmentResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input EnrollmentInput) (*sdkmcp.CallToolResult, EnrollmentResult, error) {
		act, err := svc.Unregister(ctx, input.Activity, input.Email)
		if err != nil {
			return nil, EnrollmentResult{}, toolError(err)
		}
		return nil, EnrollmentResult{
			Message:  roster.UnregisterMessage(input.Email, input.Activity),
			Activity: activityResult(*act),
		}, nil
	}
}

func listEventsHandler(rosterSvc RosterService, svc EnrollmentService) sdkmcp.ToolHandlerFor[ListEventsInput, ListEventsResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input ListEventsInput) (*sdkmcp.CallToolResult, ListEventsResult, error) {
		if _, err := rosterSvc.Get(ctx, input.Activity); err != nil {
			return nil, ListEventsResult{}, toolError(err)
		}
		events, err := svc.Recent(ctx, enrollment.ListOptions{
			Activity: input.Activity,
			Email:    input.Email,
			Limit:    input.Limit,
			Offset:   input.Offset,
		})
		if err != nil {
			return nil, ListEventsResult{}, toolError(err)
		}
		out := ListEventsResult{Events: make([]EventResult, 0, len(events))}
		for _, e := range events {
			out.Events = append(out.Events, eventResult(e))
		}
		return nil, out, nil
	}
}
