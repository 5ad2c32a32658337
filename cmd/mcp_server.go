package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/wmkit/i3keep/internal/layout"
	"github.com/wmkit/i3keep/internal/model"
	"github.com/wmkit/i3keep/internal/ui"
	"github.com/wmkit/i3keep/internal/version"
	"github.com/wmkit/i3keep/internal/wm"
)

// mcpServer wraps the MCP server with the i3 client. Commands mutate
// live window-manager state, so tool calls are serialized.
type mcpServer struct {
	client   wm.Client
	clientMu sync.Mutex
	mcp      *mcpserver.MCPServer
}

// mcpConfig holds MCP server configuration.
type mcpConfig struct {
	Transport string
	Port      int
	Timeout   time.Duration
}

// newMCPServer creates and configures an MCP server with all i3keep tools.
func newMCPServer(cfg mcpConfig) (*mcpServer, error) {
	s := &mcpServer{
		client: wm.NewI3Msg(cfg.Timeout),
	}

	s.mcp = mcpserver.NewMCPServer(
		"i3keep",
		version.Version,
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg mcpConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_workspaces",
			mcp.WithDescription("List current i3 workspaces with their output, focused and visible flags"),
		),
		s.handleListWorkspaces,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_outputs",
			mcp.WithDescription("List i3 outputs with name, geometry and active flag"),
			mcp.WithBoolean("active", mcp.Description("Only include active outputs")),
		),
		s.handleListOutputs,
	)

	s.mcp.AddTool(
		mcp.NewTool("save_layout",
			mcp.WithDescription("Save the current workspace-to-output mapping to a file"),
			mcp.WithString("file", mcp.Description("Path to write the layout to"), mcp.Required()),
		),
		s.handleSaveLayout,
	)

	s.mcp.AddTool(
		mcp.NewTool("restore_layout",
			mcp.WithDescription("Restore a saved workspace-to-output mapping: move each workspace back to its recorded output (largest active output when gone) and restore focus"),
			mcp.WithString("file", mcp.Description("Path to a previously saved layout"), mcp.Required()),
		),
		s.handleRestoreLayout,
	)
}

// toolResult serializes v to YAML for an MCP text response.
func toolResult(v interface{}) *mcp.CallToolResult {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(string(b))
}

func (s *mcpServer) handleListWorkspaces(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.clientMu.Lock()
	defer s.clientMu.Unlock()

	workspaces, err := s.client.Workspaces()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolResult(workspaces), nil
}

func (s *mcpServer) handleListOutputs(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	activeOnly := boolParam(params, "active", false)

	s.clientMu.Lock()
	defer s.clientMu.Unlock()

	outputs, err := s.client.Outputs()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if activeOnly {
		filtered := outputs[:0]
		for _, out := range outputs {
			if out.Active {
				filtered = append(filtered, out)
			}
		}
		outputs = filtered
	}
	return toolResult(outputs), nil
}

// savedLayoutResult is the tool response for save_layout.
type savedLayoutResult struct {
	OK         bool   `yaml:"ok"`
	File       string `yaml:"file"`
	Workspaces int    `yaml:"workspaces"`
}

func (s *mcpServer) handleSaveLayout(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	path := stringParam(params, "file", "")
	if path == "" {
		return mcp.NewToolResultError("file parameter is required"), nil
	}

	s.clientMu.Lock()
	defer s.clientMu.Unlock()

	saved, err := layout.Snapshot(s.client)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := saved.Save(path); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return toolResult(savedLayoutResult{OK: true, File: path, Workspaces: len(saved.Workspaces)}), nil
}

// restoredLayoutResult is the tool response for restore_layout.
type restoredLayoutResult struct {
	OK      bool   `yaml:"ok"`
	File    string `yaml:"file"`
	Moved   int    `yaml:"moved"`
	Skipped int    `yaml:"skipped"`
}

func (s *mcpServer) handleRestoreLayout(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	path := stringParam(params, "file", "")
	if path == "" {
		return mcp.NewToolResultError("file parameter is required"), nil
	}

	s.clientMu.Lock()
	defer s.clientMu.Unlock()

	saved, err := model.Load(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sum, err := layout.Restore(s.client, saved, ui.New(ui.Quiet))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return toolResult(restoredLayoutResult{OK: true, File: path, Moved: sum.Moved, Skipped: sum.Skipped}), nil
}

// stringParam extracts a string argument with a default.
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// boolParam extracts a bool argument with a default.
func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}
