package ecotrack

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// SnapshotVersion is the version of the snapshot layout written by this package.
//
// Version 1 is the unversioned layout of earlier releases (see migrate.go).
const SnapshotVersion = 2

// Snapshot is the persisted form of a State.
type Snapshot struct {
	Version int `json:"version"`
	// Revision changes on every save. It lets a writer notice that someone
	// else saved since it last read.
	Revision uuid.UUID `json:"revision"`
	State
}

// EncodeSnapshot serializes snap as indented JSON.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	snap.Version = SnapshotVersion
	snap.State = snap.State.normalized()
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("could not encode snapshot: %w", err)
	}
	return append(b, '\n'), nil
}

// DecodeSnapshot parses a snapshot. Legacy snapshots are migrated to the
// current layout, in which case migrated is true.
func DecodeSnapshot(data []byte) (snap Snapshot, migrated bool, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return Snapshot{}, false, fmt.Errorf("snapshot is not valid json: %w", err)
	}
	if _, ok := doc.(map[string]any); !ok {
		return Snapshot{}, false, fmt.Errorf("snapshot is not a json object")
	}

	if isLegacy(doc) {
		st, err := migrateLegacy(doc)
		if err != nil {
			return Snapshot{}, false, fmt.Errorf("could not migrate legacy snapshot: %w", err)
		}
		return Snapshot{Version: SnapshotVersion, State: st}, true, nil
	}

	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, false, fmt.Errorf("format error in snapshot: %w", err)
	}
	if snap.Version > SnapshotVersion {
		return Snapshot{}, false, fmt.Errorf("snapshot version %d is newer than supported version %d", snap.Version, SnapshotVersion)
	}
	snap.State = snap.State.normalized()
	return snap, false, nil
}

// peekRevision returns the revision of an encoded snapshot, or uuid.Nil.
func peekRevision(data []byte) uuid.UUID {
	var head struct {
		Revision uuid.UUID `json:"revision"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return uuid.Nil
	}
	return head.Revision
}
