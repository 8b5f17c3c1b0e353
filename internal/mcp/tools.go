package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

var storeToolDef = mcp.NewTool("string_store",
	mcp.WithDescription("Analyze a string and store it. Fails if the exact value already exists."),
	mcp.WithString("value", mcp.Required(), mcp.Description("The string to analyze and store")),
)

var fetchToolDef = mcp.NewTool("string_fetch",
	mcp.WithDescription("Fetch a stored string and its analysis by exact value."),
	mcp.WithString("value", mcp.Required(), mcp.Description("The exact string value to fetch")),
)

var listToolDef = mcp.NewTool("string_list",
	mcp.WithDescription("List stored strings, optionally filtered by structured criteria."),
	mcp.WithBoolean("is_palindrome", mcp.Description("Keep only palindromes (true) or non-palindromes (false)")),
	mcp.WithNumber("min_length", mcp.Description("Minimum character count, inclusive")),
	mcp.WithNumber("max_length", mcp.Description("Maximum character count, inclusive")),
	mcp.WithNumber("word_count", mcp.Description("Exact word count")),
	mcp.WithString("contains_character", mcp.Description("Single character that must appear in the value (case-sensitive)")),
)

var queryToolDef = mcp.NewTool("string_query",
	mcp.WithDescription("Filter stored strings with a natural-language query, e.g. \"single word palindromic strings longer than 5 characters\"."),
	mcp.WithString("query", mcp.Required(), mcp.Description("The natural-language filter query")),
)

var deleteToolDef = mcp.NewTool("string_delete",
	mcp.WithDescription("Delete a stored string by exact value."),
	mcp.WithString("value", mcp.Required(), mcp.Description("The exact string value to delete")),
)
