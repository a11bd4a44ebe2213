// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes daybook tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tmather/daybook/internal/index"
	"github.com/tmather/daybook/internal/journal"
	"github.com/tmather/daybook/internal/logbook"
	"github.com/tmather/daybook/internal/storage"
)

// Server wraps the MCP server with daybook tools.
type Server struct {
	mcp   *server.MCPServer
	store storage.Provider
	logs  *logbook.Store
	prov  *journal.Provisioner
	db    index.Searcher
}

// New creates a new MCP server with all daybook tools registered.
func New(store storage.Provider, logs *logbook.Store, prov *journal.Provisioner, db index.Searcher) *Server {
	s := &Server{store: store, logs: logs, prov: prov, db: db}

	s.mcp = server.NewMCPServer(
		"Daybook",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("log_activity",
		mcp.WithDescription("Record an activity in the daybook log. "+
			"Read the entry contract first via the get_log_contract tool or the "+
			"daybook://log-format resource."),
		mcp.WithString("type", mcp.Required(), mcp.Description("Activity type: meditated, ankied, eye-patch, workout, or custom")),
		mcp.WithString("duration", mcp.Description("Optional duration token, a number followed by h, m, or s (e.g. '30m')")),
		mcp.WithString("message", mcp.Description("Optional free-form note about the activity")),
		mcp.WithString("datetime", mcp.Description("Optional ISO 8601 timestamp; defaults to now")),
	), s.logActivity)

	s.mcp.AddTool(mcp.NewTool("today_summary",
		mcp.WithDescription("Summarize today's logged activities per type: count, total time, last message."),
		mcp.WithString("date", mcp.Description("Optional day to summarize (YYYY-MM-DD); defaults to today")),
	), s.todaySummary)

	s.mcp.AddTool(mcp.NewTool("journal_note",
		mcp.WithDescription("Return the path of a daily, weekly, or monthly journal note, "+
			"creating it from its template on first access."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Journal kind: daily, weekly, or monthly")),
		mcp.WithString("date", mcp.Description("Optional anchor date (YYYY-MM-DD); defaults to today")),
		mcp.WithString("offset", mcp.Description("Optional signed integer offset in periods (e.g. '-1' for yesterday's daily note)")),
	), s.journalNote)

	s.mcp.AddTool(mcp.NewTool("search_notes",
		mcp.WithDescription("Full-text search through notes, posts, and journal entries."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchNotes)

	s.mcp.AddTool(mcp.NewTool("read_note",
		mcp.WithDescription("Read the full content of a Markdown file under the daybook root."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the file (e.g. notes/ideas.md)")),
	), s.readNote)

	s.mcp.AddTool(mcp.NewTool("get_log_contract",
		mcp.WithDescription("Returns the canonical daybook log entry contract. "+
			"Call this before logging activities to ensure correct structure."),
	), s.getLogContract)

	// Resource: log entry contract.
	s.mcp.AddResource(
		mcp.NewResource("daybook://log-format", "Log Entry Contract",
			mcp.WithResourceDescription("Canonical log entry format that all submitted entries must follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readLogFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) logActivity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	typ, err := req.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var duration, message, datetime string
	if v, err := req.RequireString("duration"); err == nil {
		duration = v
	}
	if v, err := req.RequireString("message"); err == nil {
		message = v
	}
	if v, err := req.RequireString("datetime"); err == nil {
		datetime = v
	}

	entry, err := logbook.NewEntry(typ, datetime, duration, message)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.logs.Append(entry); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("logged: %s", entry.Type)), nil
}

func (s *Server) todaySummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day := time.Now()
	if v, err := req.RequireString("date"); err == nil && v != "" {
		parsed, err := logbook.ParseDatetime(v)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		day = parsed
	}

	entries, err := s.logs.LoadForDay(day)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(entries) == 0 {
		return mcp.NewToolResultText("no entries logged"), nil
	}
	out, _ := json.MarshalIndent(logbook.Summarize(entries), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) journalNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawKind, err := req.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	kind, err := journal.ParseKind(rawKind)
	if err != nil {
		return mcp.NewToolResultError("kind must be daily, weekly, or monthly"), nil
	}

	var anchor journal.Anchor
	if v, err := req.RequireString("date"); err == nil && v != "" {
		parsed, err := logbook.ParseDatetime(v)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		anchor.Date = &parsed
	}
	if v, err := req.RequireString("offset"); err == nil && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return mcp.NewToolResultError("offset must be a signed integer"), nil
		}
		anchor.Offset = &n
	}

	path, created, err := s.prov.GetOrCreate(kind, anchor)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if created {
		return mcp.NewToolResultText(fmt.Sprintf("created: %s", path)), nil
	}
	return mcp.NewToolResultText(path), nil
}

func (s *Server) searchNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.db.Search(query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(results) == 0 {
		return mcp.NewToolResultText("no matches"), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.store.Read(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) getLogContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(LogFormatContract), nil
}

func (s *Server) readLogFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "daybook://log-format",
			MIMEType: "text/markdown",
			Text:     LogFormatContract,
		},
	}, nil
}
