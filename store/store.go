package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Record is implemented by every entity kept in a collection. Entities get it
// for free by embedding Meta.
type Record interface {
	GetID() string
	SetID(id string)
	SetCreatedAt(t time.Time)
	SetUpdatedAt(t time.Time)
}

// Meta carries the server-assigned fields common to all records.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

func (m *Meta) GetID() string            { return m.ID }
func (m *Meta) SetID(id string)          { m.ID = id }
func (m *Meta) SetCreatedAt(t time.Time) { m.CreatedAt = t }
func (m *Meta) SetUpdatedAt(t time.Time) { m.UpdatedAt = t }

// Collection is a named, ordered sequence of records persisted as a single
// JSON document. Every operation reads or rewrites the whole file; a mutex
// serializes access within this process. Two processes sharing a data
// directory still race (last write wins) — run exactly one.
type Collection[T Record] struct {
	name string
	path string
	mu   sync.Mutex
	log  *logrus.Entry
}

// Open prepares the collection backed by dir/<name>.json. If the file does
// not exist yet it is created with the given seed (nil seeds an empty
// collection). Seeding never runs for an existing file.
func Open[T Record](dir, name string, seed []T) (*Collection[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	c := &Collection[T]{
		name: name,
		path: filepath.Join(dir, name+".json"),
		log:  logrus.WithField("collection", name),
	}
	if _, err := os.Stat(c.path); errors.Is(err, os.ErrNotExist) {
		if seed == nil {
			seed = []T{}
		}
		if !c.writeLocked(seed) {
			return nil, fmt.Errorf("seed collection %s", name)
		}
	}
	return c, nil
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// ReadAll returns every record in insertion order. Read or decode failures
// are logged and degrade to an empty result; callers cannot distinguish
// "empty" from "unreadable" here.
func (c *Collection[T]) ReadAll() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLocked()
}

// WriteAll replaces the entire collection. Returns false on failure.
func (c *Collection[T]) WriteAll(records []T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeLocked(records)
}

// Find returns all records matching the predicate, in stored order.
func (c *Collection[T]) Find(match func(T) bool) []T {
	out := []T{}
	for _, rec := range c.ReadAll() {
		if match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// FindOne returns the first record matching the predicate.
func (c *Collection[T]) FindOne(match func(T) bool) (T, bool) {
	for _, rec := range c.ReadAll() {
		if match(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// FindByID returns the record with the given id.
func (c *Collection[T]) FindByID(id string) (T, bool) {
	return c.FindOne(func(rec T) bool { return rec.GetID() == id })
}

// Insert appends the record and persists the collection. An id is assigned
// only when the record has none; ids are immutable afterwards.
func (c *Collection[T]) Insert(rec T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rec.GetID() == "" {
		rec.SetID(uuid.NewString())
	}
	rec.SetCreatedAt(time.Now().UTC())
	records := append(c.readLocked(), rec)
	c.writeLocked(records)
	return rec
}

// Update applies the patch to the record with the given id, stamps the update
// time and persists. Returns the updated record, or false if no record has
// that id (the collection is left untouched).
func (c *Collection[T]) Update(id string, patch func(T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	records := c.readLocked()
	for _, rec := range records {
		if rec.GetID() == id {
			patch(rec)
			rec.SetID(id)
			rec.SetUpdatedAt(time.Now().UTC())
			c.writeLocked(records)
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Delete removes the first record with the given id and persists the
// remainder. Returns the removed record, or false if the id is unknown.
func (c *Collection[T]) Delete(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	records := c.readLocked()
	for i, rec := range records {
		if rec.GetID() == id {
			c.writeLocked(append(records[:i:i], records[i+1:]...))
			return rec, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) readLocked() []T {
	data, err := os.ReadFile(c.path)
	if err != nil {
		c.log.WithError(err).Error("Failed to read collection")
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		c.log.WithError(err).Error("Failed to decode collection")
		return []T{}
	}
	return records
}

// writeLocked rewrites the collection file. The write goes through a
// temporary file and a rename so a crash mid-write cannot leave a truncated
// document behind.
func (c *Collection[T]) writeLocked(records []T) bool {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		c.log.WithError(err).Error("Failed to encode collection")
		return false
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		c.log.WithError(err).Error("Failed to write collection")
		return false
	}
	if err := os.Rename(tmp, c.path); err != nil {
		c.log.WithError(err).Error("Failed to replace collection file")
		return false
	}
	return true
}
