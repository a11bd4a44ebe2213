package logbook

import (
	"testing"
	"time"

	"github.com/tmather/daybook/internal/storage"
)

func testStore(t *testing.T) (*Store, storage.Provider) {
	t.Helper()
	fs, err := storage.NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return NewStore(fs, nil), fs
}

func TestAppendAndLoadForDay(t *testing.T) {
	s, _ := testStore(t)
	day := time.Date(2024, time.January, 17, 0, 0, 0, 0, time.Local)

	entries := []Entry{
		{Type: TypeWorkout, Datetime: day.Add(8 * time.Hour), Duration: "30m"},
		{Type: TypeWorkout, Datetime: day.Add(18 * time.Hour), Duration: "1h", Message: "good"},
		{Type: TypeMeditated, Datetime: day.Add(7 * time.Hour), Duration: "10m"},
		// Different day, same month: must be filtered out.
		{Type: TypeWorkout, Datetime: day.AddDate(0, 0, 1), Duration: "5m"},
	}
	for _, e := range entries {
		if err := s.Append(e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := s.LoadForDay(day)
	if err != nil {
		t.Fatalf("LoadForDay: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// File order is append order.
	if got[0].Duration != "30m" || got[1].Message != "good" || got[2].Type != TypeMeditated {
		t.Errorf("unexpected order: %+v", got)
	}
}

func TestLoadForDayMissingFile(t *testing.T) {
	s, _ := testStore(t)
	got, err := s.LoadForDay(time.Now())
	if err != nil {
		t.Fatalf("LoadForDay: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %d", len(got))
	}
}

func TestLoadForDayRestartable(t *testing.T) {
	s, _ := testStore(t)
	day := time.Date(2024, time.March, 3, 12, 0, 0, 0, time.Local)
	_ = s.Append(Entry{Type: TypeAnkied, Datetime: day})

	first, err := s.LoadForDay(day)
	if err != nil {
		t.Fatalf("LoadForDay: %v", err)
	}
	second, err := s.LoadForDay(day)
	if err != nil {
		t.Fatalf("LoadForDay (second): %v", err)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Errorf("lens = %d, %d, want 1, 1", len(first), len(second))
	}
}

func TestLoadForDaySkipsMalformedLines(t *testing.T) {
	s, fs := testStore(t)
	day := time.Date(2024, time.February, 2, 10, 0, 0, 0, time.Local)
	_ = s.Append(Entry{Type: TypeWorkout, Datetime: day, Duration: "15m"})
	_ = fs.Append("logs/2024-02.jsonl", []byte("{garbage\n"))
	_ = s.Append(Entry{Type: TypeWorkout, Datetime: day, Duration: "20m"})

	got, err := s.LoadForDay(day)
	if err != nil {
		t.Fatalf("LoadForDay: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestAppendForeignZoneMonthBoundary(t *testing.T) {
	s, fs := testStore(t)

	// Late on the last local day of January, expressed in a zone nine
	// hours ahead where the wall clock already reads February 1st. The
	// period file must follow the local month, or LoadForDay for that
	// day would never open the file the entry landed in.
	local := time.Date(2024, time.January, 31, 16, 30, 0, 0, time.Local)
	_, off := local.Zone()
	ahead := time.FixedZone("ahead", off+9*3600)
	if err := s.Append(Entry{Type: TypeWorkout, Datetime: local.In(ahead), Duration: "30m"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if !fs.Exists("logs/2024-01.jsonl") {
		t.Error("entry not stored under the local month's period file")
	}
	got, err := s.LoadForDay(local)
	if err != nil {
		t.Fatalf("LoadForDay: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Duration != "30m" {
		t.Errorf("entry = %+v", got[0])
	}
}

func TestAppendRejectsInvalidEntry(t *testing.T) {
	s, _ := testStore(t)
	err := s.Append(Entry{Type: TypeWorkout, Datetime: time.Now(), Duration: "10x"})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	got, _ := s.LoadForDay(time.Now())
	if len(got) != 0 {
		t.Errorf("nothing should have been persisted, got %d entries", len(got))
	}
}
