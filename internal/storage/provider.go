// Package storage defines the file-system abstraction over the daybook
// root directory. All paths are relative to the root; the root is the sole
// owner of every note, journal, template, and log file.
package storage

import "time"

// FileInfo is a lightweight representation returned by list operations.
type FileInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Provider is the interface for root-directory file operations.
type Provider interface {
	// List walks dir (relative to root) and returns metadata for every .md file.
	List(dir string) ([]FileInfo, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Write atomically writes content to path, creating parent directories.
	Write(path string, content []byte) error
	// Append appends data to the file at path, creating it if absent.
	// The file is never rewritten in place.
	Append(path string, data []byte) error
	// Exists reports whether a file exists at path.
	Exists(path string) bool
	// Abs resolves path against the root, rejecting traversal outside it.
	Abs(path string) (string, error)
}
