package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with gymtrack tools: schema, exercises, suggestion,
// history, progress and one rep max estimation.
// The main backend mounts it at /mcp, cmd/gymtrack_mcp serves it over stdio.
func NewServer(service contextService, version string) *mcp.Server {
	if version == "" {
		version = "dev"
	}

	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymtrack-context",
		Version: version,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_gymtrack_schema",
		Description: "Returns the DB schema of the gymtrack tables (exercise, workout_session, workout_session_exercise, gymtrack_settings): table names, columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercises",
		Description: "Returns all configured exercises with their training config (one rep max, rep range band, weight stack, rounding, volume level, max sets).",
	}, h.ListExercisesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_suggestion",
		Description: "Returns the suggested weight, rep range and number of sets for an exercise in the current training week, counting the sets already logged today. Arg: exercise_id.",
	}, h.GetSuggestionTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_history",
		Description: "Returns the saved sessions of an exercise in chronological order with the rolling estimated one rep max, suggested weight and sets per week. Arg: exercise_id.",
	}, h.GetHistoryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_progress",
		Description: "Returns the strength progress of an exercise over its last sessions: previous and current estimated one rep max, percent change and trend. Arg: exercise_id.",
	}, h.GetProgressTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "estimate_one_rm",
		Description: "Estimates the one rep max and the effective reps of a single set. Args: weight, reps (1 to 36).",
	}, h.EstimateOneRMTool())

	return s
}

// NewHTTPHandler serves the MCP server over streamable HTTP.
func NewHTTPHandler(s *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s
	}, nil)
}
