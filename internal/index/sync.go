package index

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/tmather/daybook/internal/storage"
)

// Sync walks the root directory and brings the index up to date:
//   - new/changed markdown files are re-indexed
//   - files removed from disk are deleted from the index
func Sync(db *DB, store storage.Provider, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	infos, err := store.List("")
	if err != nil {
		return err
	}

	checksums, err := db.AllChecksums()
	if err != nil {
		return err
	}

	disk := make(map[string]struct{}, len(infos))
	for _, info := range infos {
		disk[info.Path] = struct{}{}

		if checksums[info.Path] == info.Checksum {
			continue
		}

		data, err := store.Read(info.Path)
		if err != nil {
			logger.Warn("sync: read failed", slog.String("path", info.Path), slog.String("error", err.Error()))
			continue
		}
		if err := indexFile(db, info.Path, data); err != nil {
			logger.Warn("sync: index failed", slog.String("path", info.Path), slog.String("error", err.Error()))
		} else {
			logger.Debug("sync: indexed", slog.String("path", info.Path))
		}
	}

	// Remove stale entries.
	for p := range checksums {
		if _, ok := disk[p]; !ok {
			if err := db.Delete(p); err != nil {
				logger.Warn("sync: delete failed", slog.String("path", p), slog.String("error", err.Error()))
			} else {
				logger.Debug("sync: removed stale", slog.String("path", p))
			}
		}
	}

	return nil
}

// indexFile upserts a single markdown file into the index.
func indexFile(db *DB, path string, data []byte) error {
	body := string(data)
	return db.Upsert(Document{
		Path:      path,
		Title:     deriveTitle(body),
		Checksum:  sum(data),
		UpdatedAt: time.Now(),
	}, body)
}

// deriveTitle returns the first H1 heading, or empty string.
func deriveTitle(body string) string {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}

func sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
