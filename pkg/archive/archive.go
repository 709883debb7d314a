// Package archive keeps a local history of the messages muninn has
// hidden in or recovered from PNG files, backed by a pebble store keyed
// by ksuid so entries iterate in creation order.
package archive

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// Operation names for Entry.Operation.
const (
	OpEncode = "encode"
	OpDecode = "decode"
	OpRemove = "remove"
)

// Entry is one archived message operation.
type Entry struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	TypeCode  string    `json:"type_code"`
	Message   string    `json:"message"`
	Operation string    `json:"operation"`
	CreatedAt time.Time `json:"created_at"`
}

// Archive is a pebble-backed message history.
type Archive struct {
	db *pebble.DB
}

// Open opens (or creates) the archive at dir.
func Open(dir string) (*Archive, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	return &Archive{db: db}, nil
}

// Record stores an entry and returns its generated id. The id and
// creation time are assigned here, not by the caller.
func (a *Archive) Record(e Entry) (ksuid.KSUID, error) {
	id := ksuid.New()
	e.ID = id.String()
	e.CreatedAt = time.Now().UTC()

	data, err := json.Marshal(e)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("failed to marshal entry: %w", err)
	}
	if err := a.db.Set(id.Bytes(), data, pebble.NoSync); err != nil {
		return ksuid.Nil, fmt.Errorf("failed to store entry: %w", err)
	}
	return id, nil
}

// Get returns the entry stored under id.
func (a *Archive) Get(id ksuid.KSUID) (*Entry, error) {
	data, closer, err := a.db.Get(id.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to read entry %s: %w", id, err)
	}
	defer closer.Close()

	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entry %s: %w", id, err)
	}
	return &e, nil
}

// List returns all entries. KSUIDs sort chronologically at one-second
// precision, so a plain key scan yields creation order across runs;
// entries created within the same second carry no defined order.
func (a *Archive) List() ([]Entry, error) {
	iter, err := a.db.NewIter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate archive: %w", err)
	}
	defer iter.Close()

	var entries []Entry
	for iter.First(); iter.Valid(); iter.Next() {
		var e Entry
		if err := json.Unmarshal(iter.Value(), &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entry %x: %w", iter.Key(), err)
		}
		entries = append(entries, e)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("archive iteration failed: %w", err)
	}
	return entries, nil
}

// Delete removes the entry stored under id.
func (a *Archive) Delete(id ksuid.KSUID) error {
	return a.db.Delete(id.Bytes(), pebble.NoSync)
}

// Close closes the underlying store.
func (a *Archive) Close() error {
	return a.db.Close()
}
