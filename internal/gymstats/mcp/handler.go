package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/gymtrack/internal/gymstats/exercises"
	"github.com/2beens/gymtrack/internal/gymstats/training"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

// NewHandler builds a handler with the given service.
func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// ExerciseInput is the input of the per exercise tools.
type ExerciseInput struct {
	ExerciseID int `json:"exercise_id" jsonschema:"Exercise id, see list_exercises"`
}

// OneRMInput is the input for estimate_one_rm.
type OneRMInput struct {
	Weight float64 `json:"weight" jsonschema:"Weight lifted"`
	Reps   int     `json:"reps" jsonschema:"Reps done, 1 to 36"`
}

// OneRMOutput is what estimate_one_rm returns.
type OneRMOutput struct {
	EstimatedOneRM float64            `json:"estimatedOneRM"`
	EffectiveReps  float64            `json:"effectiveReps"`
	RepRange       *training.RepRange `json:"repRange,omitempty"`
}

// GetSchemaTool returns the MCP tool handler for get_gymtrack_schema.
func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

// ListExercisesTool returns the MCP tool handler for list_exercises.
func (h *Handler) ListExercisesTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		list, err := h.service.ListExercises(ctx)
		if err != nil {
			return errorResult("Error listing exercises: " + err.Error()), nil, nil
		}
		if list == nil {
			list = []exercises.Exercise{}
		}
		return jsonResult(list), nil, nil
	}
}

// GetSuggestionTool returns the MCP tool handler for get_exercise_suggestion.
func (h *Handler) GetSuggestionTool() func(context.Context, *mcp.CallToolRequest, ExerciseInput) (*mcp.CallToolResult, any, error) {
	return exerciseTool(func(ctx context.Context, id int) (any, error) {
		return h.service.GetSuggestion(ctx, id)
	}, "Error getting suggestion: ")
}

// GetHistoryTool returns the MCP tool handler for get_exercise_history.
func (h *Handler) GetHistoryTool() func(context.Context, *mcp.CallToolRequest, ExerciseInput) (*mcp.CallToolResult, any, error) {
	return exerciseTool(func(ctx context.Context, id int) (any, error) {
		return h.service.GetHistory(ctx, id)
	}, "Error getting history: ")
}

// GetProgressTool returns the MCP tool handler for get_exercise_progress.
func (h *Handler) GetProgressTool() func(context.Context, *mcp.CallToolRequest, ExerciseInput) (*mcp.CallToolResult, any, error) {
	return exerciseTool(func(ctx context.Context, id int) (any, error) {
		return h.service.GetProgress(ctx, id)
	}, "Error getting progress: ")
}

// EstimateOneRMTool returns the MCP tool handler for estimate_one_rm. It needs no storage.
func (h *Handler) EstimateOneRMTool() func(context.Context, *mcp.CallToolRequest, OneRMInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in OneRMInput) (*mcp.CallToolResult, any, error) {
		if _, ok := training.NewPositiveFinite(in.Weight); !ok {
			return errorResult("Invalid weight: must be a positive number"), nil, nil
		}
		if in.Reps < 1 || in.Reps > training.MaxEstimableReps {
			return errorResult(fmt.Sprintf("Invalid reps: must be in [1, %d]", training.MaxEstimableReps)), nil, nil
		}

		out := OneRMOutput{
			EstimatedOneRM: training.EstimateOneRM(in.Weight, in.Reps),
			EffectiveReps:  training.EffectiveReps(in.Reps),
		}
		if repRange := training.EstimateRepRange(in.Weight, out.EstimatedOneRM); repRange.Max > 0 {
			out.RepRange = &repRange
		}
		return jsonResult(out), nil, nil
	}
}

func exerciseTool(
	get func(ctx context.Context, id int) (any, error),
	errPrefix string,
) func(context.Context, *mcp.CallToolRequest, ExerciseInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseInput) (*mcp.CallToolResult, any, error) {
		if in.ExerciseID <= 0 {
			return errorResult("Invalid exercise_id: must be a positive number"), nil, nil
		}
		v, err := get(ctx, in.ExerciseID)
		if errors.Is(err, exercises.ErrExerciseNotFound) {
			return errorResult(fmt.Sprintf("Exercise %d not found", in.ExerciseID)), nil, nil
		}
		if err != nil {
			return errorResult(errPrefix + err.Error()), nil, nil
		}
		return jsonResult(v), nil, nil
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
