package mcpserver

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tmather/daybook/internal/index"
	"github.com/tmather/daybook/internal/journal"
	"github.com/tmather/daybook/internal/logbook"
	"github.com/tmather/daybook/internal/storage"
	"github.com/tmather/daybook/internal/template"
)

func testServer(t *testing.T) (*Server, storage.Provider) {
	t.Helper()

	store, err := storage.NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	dbFile, err := os.CreateTemp("", "daybook-mcp-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := index.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	engine := template.New(template.FileResolver(store))
	prov := journal.NewProvisioner(store, engine, false)
	logs := logbook.NewStore(store, nil)

	srv := New(store, logs, prov, db)
	return srv, store
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go doesn't expose a direct "call tool" test helper, so we call
	// the handler functions directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "log_activity":
		result, err = srv.logActivity(ctx, req)
	case "today_summary":
		result, err = srv.todaySummary(ctx, req)
	case "journal_note":
		result, err = srv.journalNote(ctx, req)
	case "search_notes":
		result, err = srv.searchNotes(ctx, req)
	case "read_note":
		result, err = srv.readNote(ctx, req)
	case "get_log_contract":
		result, err = srv.getLogContract(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestLogActivityAndSummary(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "log_activity", map[string]interface{}{
		"type": "workout", "duration": "30m", "message": "run",
	})
	if r.IsError {
		t.Fatalf("log_activity failed: %s", resultText(r))
	}
	if resultText(r) != "logged: workout" {
		t.Errorf("result = %q", resultText(r))
	}

	r = callTool(t, srv, "today_summary", map[string]interface{}{})
	text := resultText(r)
	if !strings.Contains(text, "workout") || !strings.Contains(text, "1800") {
		t.Errorf("summary = %q", text)
	}
}

func TestLogActivityRejectsBadEntry(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "log_activity", map[string]interface{}{"type": "napped"})
	if !r.IsError {
		t.Error("unknown type should be rejected")
	}

	r = callTool(t, srv, "log_activity", map[string]interface{}{
		"type": "workout", "duration": "1h30m",
	})
	if !r.IsError {
		t.Error("compound duration should be rejected")
	}
}

func TestTodaySummaryEmpty(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "today_summary", map[string]interface{}{})
	if resultText(r) != "no entries logged" {
		t.Errorf("result = %q", resultText(r))
	}
}

func TestJournalNote(t *testing.T) {
	srv, store := testServer(t)
	_ = store.Write("templates/daily-note-template.md", []byte("# {{date}}\n"))

	r := callTool(t, srv, "journal_note", map[string]interface{}{
		"kind": "daily", "date": "2024-01-17",
	})
	if r.IsError {
		t.Fatalf("journal_note failed: %s", resultText(r))
	}
	if resultText(r) != "created: journals/2024/1/17.md" {
		t.Errorf("result = %q", resultText(r))
	}

	// Second call returns the path without the created prefix.
	r = callTool(t, srv, "journal_note", map[string]interface{}{
		"kind": "daily", "date": "2024-01-17",
	})
	if resultText(r) != "journals/2024/1/17.md" {
		t.Errorf("result = %q", resultText(r))
	}
}

func TestJournalNoteBadKind(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "journal_note", map[string]interface{}{"kind": "yearly"})
	if !r.IsError {
		t.Error("unknown kind should be rejected")
	}
}

func TestReadNoteMissing(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "read_note", map[string]interface{}{"path": "nope.md"})
	if !r.IsError {
		t.Error("expected error for missing note")
	}
}

func TestSearchNotesEmptyIndex(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "search_notes", map[string]interface{}{"query": "anything"})
	if r.IsError {
		t.Fatalf("search failed: %s", resultText(r))
	}
	if resultText(r) != "no matches" {
		t.Errorf("result = %q", resultText(r))
	}
}

func TestGetLogContract(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "get_log_contract", map[string]interface{}{})
	if !strings.Contains(resultText(r), "Log Entry Contract") {
		t.Error("contract text missing")
	}
}
