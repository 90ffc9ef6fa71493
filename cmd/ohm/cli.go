package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/ohm/internal/config"
	"github.com/hpungsan/ohm/internal/logbook"
	"github.com/hpungsan/ohm/internal/mcp"
	"github.com/hpungsan/ohm/internal/menu"
)

// newCLIApp creates the CLI application. Running without a subcommand starts
// the interactive menu session on the given streams.
func newCLIApp(in io.Reader, out io.Writer, log *logbook.Logbook, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "ohm",
		Usage:   "Interactive helper for intro electrical-engineering formulas",
		Version: Version,
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return fmt.Errorf("unknown command %q", c.Args().First())
			}
			return menu.NewSession(in, out, log).Run()
		},
		Commands: []*cli.Command{
			logCmd(out, log),
			mcpCmd(log, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// logCmd creates the log command, which prints the saved calculation log.
func logCmd(out io.Writer, log *logbook.Logbook) *cli.Command {
	return &cli.Command{
		Name:  "log",
		Usage: "Print the saved calculation log",
		Action: func(_ *cli.Context) error {
			log.View(out)
			return nil
		},
	}
}

// mcpCmd creates the mcp command, which serves the formula tools over stdio.
func mcpCmd(log *logbook.Logbook, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Run the MCP server on stdio",
		Action: func(_ *cli.Context) error {
			if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
				fmt.Fprintf(os.Stderr, "warning: unknown disabled tools: %s\n", strings.Join(unknown, ", "))
			}
			return mcp.Run(log, cfg, Version)
		},
	}
}
