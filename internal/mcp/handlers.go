package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Damoblinkz2/hnc-task-0/internal/config"
	"github.com/Damoblinkz2/hnc-task-0/internal/errors"
	"github.com/Damoblinkz2/hnc-task-0/internal/filter"
	"github.com/Damoblinkz2/hnc-task-0/internal/ops"
	"github.com/Damoblinkz2/hnc-task-0/internal/store"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	store store.Store
	cfg   *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(st store.Store, cfg *config.Config) *Handlers {
	return &Handlers{store: st, cfg: cfg}
}

// Request types for each tool

// StoreRequest represents the arguments for string_store.
type StoreRequest struct {
	Value string `json:"value"`
}

// FetchRequest represents the arguments for string_fetch.
type FetchRequest struct {
	Value string `json:"value"`
}

// ListRequest represents the arguments for string_list.
type ListRequest struct {
	IsPalindrome      *bool   `json:"is_palindrome,omitempty"`
	MinLength         *int    `json:"min_length,omitempty"`
	MaxLength         *int    `json:"max_length,omitempty"`
	WordCount         *int    `json:"word_count,omitempty"`
	ContainsCharacter *string `json:"contains_character,omitempty"`
}

// QueryRequest represents the arguments for string_query.
type QueryRequest struct {
	Query string `json:"query"`
}

// DeleteRequest represents the arguments for string_delete.
type DeleteRequest struct {
	Value string `json:"value"`
}

// Handler implementations

// HandleStore handles the string_store tool call.
func (h *Handlers) HandleStore(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[StoreRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidInput(err.Error())), nil
	}

	result, err := ops.Create(ctx, h.store, h.cfg, ops.CreateInput{Value: input.Value})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleFetch handles the string_fetch tool call.
func (h *Handlers) HandleFetch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FetchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidInput(err.Error())), nil
	}

	result, err := ops.Fetch(ctx, h.store, ops.FetchInput{Value: input.Value})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleList handles the string_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidInput(err.Error())), nil
	}

	result, err := ops.List(ctx, h.store, ops.ListInput{
		Criteria: filter.Criteria{
			IsPalindrome:      input.IsPalindrome,
			MinLength:         input.MinLength,
			MaxLength:         input.MaxLength,
			WordCount:         input.WordCount,
			ContainsCharacter: input.ContainsCharacter,
		},
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleQuery handles the string_query tool call.
func (h *Handlers) HandleQuery(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[QueryRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidInput(err.Error())), nil
	}

	result, err := ops.Query(ctx, h.store, ops.QueryInput{Query: input.Query})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDelete handles the string_delete tool call.
func (h *Handlers) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DeleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidInput(err.Error())), nil
	}

	result, err := ops.Delete(ctx, h.store, ops.DeleteInput{Value: input.Value})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// errorResult converts a service error into an MCP error payload.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if svcErr, ok := err.(*errors.ServiceError); ok {
		errorObj := map[string]any{
			"code":    svcErr.Code,
			"message": svcErr.Message,
			"status":  svcErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if svcErr.Status < 500 && svcErr.Details != nil {
			errorObj["details"] = svcErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult wraps data in a JSON tool result.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
