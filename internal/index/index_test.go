package index

import (
	"os"
	"testing"
	"time"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "daybook-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM documents`).Scan(&count); err != nil {
		t.Fatalf("documents table missing: %v", err)
	}
}

func TestUpsertAndChecksums(t *testing.T) {
	db := testDB(t)
	doc := Document{
		Path:      "journals/2024/1/17.md",
		Title:     "Wed Jan 17 2024",
		Checksum:  "abc123",
		UpdatedAt: time.Now(),
	}
	if err := db.Upsert(doc, "# Wed Jan 17 2024\n\nwrote some Go"); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	checksums, err := db.AllChecksums()
	if err != nil {
		t.Fatalf("AllChecksums: %v", err)
	}
	if checksums["journals/2024/1/17.md"] != "abc123" {
		t.Errorf("checksum = %q", checksums["journals/2024/1/17.md"])
	}
}

func TestUpsertReplaces(t *testing.T) {
	db := testDB(t)
	doc := Document{Path: "a.md", Checksum: "1", UpdatedAt: time.Now()}
	_ = db.Upsert(doc, "one")
	doc.Checksum = "2"
	if err := db.Upsert(doc, "two"); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	checksums, _ := db.AllChecksums()
	if len(checksums) != 1 || checksums["a.md"] != "2" {
		t.Errorf("checksums = %v", checksums)
	}
}

func TestDelete(t *testing.T) {
	db := testDB(t)
	_ = db.Upsert(Document{Path: "del.md", Checksum: "x", UpdatedAt: time.Now()}, "body")

	if err := db.Delete("del.md"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	checksums, _ := db.AllChecksums()
	if _, ok := checksums["del.md"]; ok {
		t.Error("document not deleted")
	}
}

func TestSearchFallback(t *testing.T) {
	// Without the sqlite_fts5 tag this exercises the LIKE fallback; with
	// it, the FTS5 path.
	db := testDB(t)
	_ = db.Upsert(Document{Path: "notes/go.md", Title: "Go", Checksum: "1", UpdatedAt: time.Now()},
		"# Go\n\nlearning about goroutines")
	_ = db.Upsert(Document{Path: "notes/cooking.md", Title: "Cooking", Checksum: "2", UpdatedAt: time.Now()},
		"# Cooking\n\npasta recipes")

	results, err := db.Search("goroutines", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Path != "notes/go.md" {
		t.Errorf("path = %q", results[0].Path)
	}
}
