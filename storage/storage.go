// Package storage implements snapshot storages: small key/value stores that
// hold one opaque blob per key and replace it in full on every write.
//
// Three backends are provided: [Dir] keeps one file per key, [SQLite] keeps a
// key/value table in a single database file and [Memory] keeps everything in
// process.
package storage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned by Get when nothing was ever stored under a key.
	ErrNotFound = errors.New("snapshot not found")
	// ErrUnavailable wraps any failure of the underlying medium (disk full,
	// permission denied, database locked...).
	ErrUnavailable = errors.New("storage unavailable")
)

// checkKey rejects keys that cannot be used as a file name.
func checkKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("storage key is required")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid storage key %q", key)
	}
	return nil
}
