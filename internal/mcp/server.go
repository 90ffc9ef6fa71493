package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hpungsan/ohm/internal/config"
	"github.com/hpungsan/ohm/internal/logbook"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"divider_solve": {
		def:     dividerToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDivider },
	},
	"resistor_series": {
		def:     seriesToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSeries },
	},
	"resistor_parallel": {
		def:     parallelToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleParallel },
	},
	"reactance_solve": {
		def:     reactanceToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleReactance },
	},
	"resonance_solve": {
		def:     resonanceToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleResonance },
	},
	"rc_transient": {
		def:     rcToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRC },
	},
	"power_solve": {
		def:     powerToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandlePower },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with ohm tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(log *logbook.Logbook, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"ohm",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(log, cfg)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(log *logbook.Logbook, cfg *config.Config, version string) error {
	s := NewServer(log, cfg, version)
	return server.ServeStdio(s)
}
