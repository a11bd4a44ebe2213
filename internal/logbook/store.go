package logbook

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/tmather/daybook/internal/storage"
)

// Store persists entries as an append-only line-delimited record store
// under logs/ in the root directory, one file per calendar month.
type Store struct {
	store  storage.Provider
	logger *slog.Logger
}

// NewStore creates a Store. A nil logger falls back to slog.Default.
func NewStore(store storage.Provider, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{store: store, logger: logger}
}

// periodPath returns the log file for the local calendar month containing
// t. The key is normalized to local time so that Append and LoadForDay
// agree on the file even when an entry carries a foreign zone offset.
func periodPath(t time.Time) string {
	return filepath.Join("logs", t.Local().Format("2006-01")+".jsonl")
}

// Append serializes the entry to a single self-contained JSON line and
// appends it to the current period file. Prior lines are never rewritten.
func (s *Store) Append(e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	line, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.store.Append(periodPath(e.Datetime), append(line, '\n'))
}

// LoadForDay returns all entries whose datetime falls on the given local
// calendar day, in file order. A missing period file yields an empty
// result; malformed lines are skipped with a warning.
func (s *Store) LoadForDay(day time.Time) ([]Entry, error) {
	data, err := s.store.Read(periodPath(day))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var out []Entry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			s.logger.Warn("logbook: skipping malformed record",
				slog.String("line", string(line)),
				slog.String("error", err.Error()))
			continue
		}
		if sameDay(e.Datetime, day) {
			out = append(out, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// sameDay reports whether a and b fall on the same local calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
