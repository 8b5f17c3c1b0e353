package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/Damoblinkz2/hnc-task-0/internal/analysis"
	"github.com/Damoblinkz2/hnc-task-0/internal/config"
	"github.com/Damoblinkz2/hnc-task-0/internal/errors"
	"github.com/Damoblinkz2/hnc-task-0/internal/filter"
	"github.com/Damoblinkz2/hnc-task-0/internal/mcp"
	"github.com/Damoblinkz2/hnc-task-0/internal/ops"
	"github.com/Damoblinkz2/hnc-task-0/internal/store"
	"github.com/Damoblinkz2/hnc-task-0/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp() *cli.App {
	app := &cli.App{
		Name:    "stringlens",
		Usage:   "Analyze, store, and query strings",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "data-dir", Usage: "Data directory (default ~/.stringlens)"},
			&cli.StringFlag{Name: "backend", Usage: "Record store backend: json|sqlite (overrides config)"},
		},
		Commands: []*cli.Command{
			serveCmd(),
			mcpCmd(),
			analyzeCmd(),
			listCmd(),
			queryCmd(),
			deleteCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// resolveDataDir returns the data directory, creating it if needed.
func resolveDataDir(c *cli.Context) (string, error) {
	dir := c.String("data-dir")
	if dir == "" {
		dir = os.Getenv("STRINGLENS_DATA_DIR")
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".stringlens")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create data directory: %w", err)
	}
	return dir, nil
}

// openStore loads config and opens the record store for a command.
func openStore(c *cli.Context) (store.Store, *config.Config, error) {
	dir, err := resolveDataDir(c)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if backend := c.String("backend"); backend != "" {
		if backend != config.BackendJSON && backend != config.BackendSQLite {
			return nil, nil, fmt.Errorf("unknown backend %q (want json or sqlite)", backend)
		}
		cfg.Backend = backend
	}

	st, err := store.Open(dir, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}
	return st, cfg, nil
}

// serveCmd creates the serve command.
func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8080, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			st, cfg, err := openStore(c)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer st.Close()

			srv := web.NewServer(st, cfg, Version, c.String("bind"), c.Int("port"))
			if err := web.Run(srv); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return nil
		},
	}
}

// mcpCmd creates the mcp command.
func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Run the MCP server on stdio",
		Action: func(c *cli.Context) error {
			st, cfg, err := openStore(c)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer st.Close()

			if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
				fmt.Fprintf(os.Stderr, "warning: unknown tools in disabled_tools: %s\n", strings.Join(unknown, ", "))
			}

			if err := mcp.Run(st, cfg, Version); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return nil
		},
	}
}

// analyzeCmd creates the analyze command.
func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Analyze a string and store it",
		ArgsUsage: "<value>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "dry-run", Usage: "Print the analysis without storing"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidInput("value argument is required"))
			}
			value := c.Args().First()

			if c.Bool("dry-run") {
				props := analysis.Derive(value)
				return outputJSON(map[string]any{
					"value":      value,
					"properties": props,
				})
			}

			st, cfg, err := openStore(c)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer st.Close()

			output, err := ops.Create(context.Background(), st, cfg, ops.CreateInput{Value: value})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List stored strings, optionally filtered",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "palindrome", Usage: "Keep only palindromes"},
			&cli.IntFlag{Name: "min-length", Usage: "Minimum character count, inclusive"},
			&cli.IntFlag{Name: "max-length", Usage: "Maximum character count, inclusive"},
			&cli.IntFlag{Name: "word-count", Usage: "Exact word count"},
			&cli.StringFlag{Name: "contains", Usage: "Single character that must appear in the value"},
		},
		Action: func(c *cli.Context) error {
			st, _, err := openStore(c)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer st.Close()

			var criteria filter.Criteria
			if c.IsSet("palindrome") {
				v := c.Bool("palindrome")
				criteria.IsPalindrome = &v
			}
			if c.IsSet("min-length") {
				v := c.Int("min-length")
				criteria.MinLength = &v
			}
			if c.IsSet("max-length") {
				v := c.Int("max-length")
				criteria.MaxLength = &v
			}
			if c.IsSet("word-count") {
				v := c.Int("word-count")
				criteria.WordCount = &v
			}
			if c.IsSet("contains") {
				v := c.String("contains")
				criteria.ContainsCharacter = &v
			}

			output, err := ops.List(context.Background(), st, ops.ListInput{Criteria: criteria})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// queryCmd creates the query command.
func queryCmd() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Filter stored strings with a natural-language query",
		ArgsUsage: "<query>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidInput("query argument is required"))
			}

			st, _, err := openStore(c)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer st.Close()

			query := strings.Join(c.Args().Slice(), " ")
			output, err := ops.Query(context.Background(), st, ops.QueryInput{Query: query})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a stored string by exact value",
		ArgsUsage: "<value>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidInput("value argument is required"))
			}

			st, _, err := openStore(c)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer st.Close()

			output, err := ops.Delete(context.Background(), st, ops.DeleteInput{Value: c.Args().First()})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if svcErr, ok := err.(*errors.ServiceError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", svcErr.Code, svcErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
