// This file is part of the recidx project.
// Author: Kevin Eder
// Creation date: 18.10.2026
// License: MIT
// Use of this source code is governed by a MIT license that can be found in the LICENSE file
// at https://github.com/kesimo/recidx/blob/main/LICENSE

// Package recidx implements an in-memory record heap with two secondary indexes:
// a unique index by record id and a non-unique, case-insensitive index by last name.
// Every query reports the number of key comparisons its index performed.
package recidx

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/kesimo/recidx/internal/tree"
	"github.com/tidwall/match"
)

var (
	// ErrNotFound is returned when an id is not in the id index.
	ErrNotFound = errors.New("not found")

	// ErrOutOfRange is returned for a heap position outside the store.
	// It indicates a corrupted index and should never be seen.
	ErrOutOfRange = errors.New("position out of range")

	// ErrAlreadyDeleted is returned when deleting a record that is already deleted.
	ErrAlreadyDeleted = errors.New("already deleted")

	// ErrInvalidBackend is returned for an unknown Backend value.
	ErrInvalidBackend = errors.New("invalid backend")

	// ErrInvalidConfig is returned when a configuration cannot be parsed or is out of range.
	ErrInvalidConfig = errors.New("invalid config")
)

// maxByte is appended to a prefix to build the inclusive upper bound of a prefix scan.
const maxByte = "\xff"

// Engine is a record heap with an id index and a last name index.
// Engine is not safe for concurrent use, even queries update the comparison
// counters. Use Shared to serialize access from multiple goroutines.
type Engine struct {
	heap      *Store
	idIndex   tree.Index[int, int]      // id -> position
	lastIndex tree.Index[string, []int] // lowercase last name -> positions
	backend   Backend
	log       *slog.Logger
}

// Stats describes the engine state.
type Stats struct {
	Backend  Backend
	Records  int // heap size, deleted records included
	Live     int
	IDKeys   int
	LastKeys int // empty last name keys are kept after deletes
}

// New creates an empty engine.
func New(config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.applyDefaults()
	e := &Engine{
		heap:      NewStore(),
		idIndex:   newIndex[int, int](config),
		lastIndex: newIndex[string, []int](config),
		backend:   config.Backend,
		log:       config.logger().With("backend", string(config.Backend)),
	}
	return e, nil
}

// InsertRecord appends rec to the heap and registers it in both indexes.
// An id that is already indexed is silently remapped to the new position;
// the older record stays reachable by last name only.
func (e *Engine) InsertRecord(rec Record) int {
	pos := e.heap.Append(rec)
	if prev, ok := e.idIndex.Find(rec.ID); ok {
		e.log.Debug("duplicate id remapped", "id", rec.ID, "old", *prev, "new", pos)
	}
	e.idIndex.Insert(rec.ID, pos)
	key := strings.ToLower(rec.Last)
	if positions, ok := e.lastIndex.Find(key); ok {
		*positions = append(*positions, pos)
	} else {
		e.lastIndex.Insert(key, []int{pos})
	}
	return pos
}

// Delete tombstones the record with the given id and removes it from both indexes.
// The last name key is kept even when no position is left for it.
func (e *Engine) Delete(id int) error {
	ref, ok := e.idIndex.Find(id)
	if !ok {
		return fmt.Errorf("recidx: delete %d: %w", id, ErrNotFound)
	}
	pos := *ref
	rec, err := e.heap.Get(pos)
	if err != nil {
		e.log.Error("id index points outside the heap", "id", id, "error", err)
		return fmt.Errorf("recidx: delete %d: %w", id, err)
	}
	if rec.Deleted {
		return fmt.Errorf("recidx: delete %d: %w", id, ErrAlreadyDeleted)
	}
	if err := e.heap.MarkDeleted(pos); err != nil {
		return err
	}
	e.idIndex.Erase(id)
	if positions, ok := e.lastIndex.Find(strings.ToLower(rec.Last)); ok {
		*positions = slices.DeleteFunc(*positions, func(p int) bool {
			return p == pos
		})
	}
	return nil
}

// DeleteByID is Delete reduced to a success flag.
func (e *Engine) DeleteByID(id int) bool {
	if err := e.Delete(id); err != nil {
		e.log.Debug("delete failed", "id", id, "error", err)
		return false
	}
	return true
}

// FindByID returns the live record with the given id, or nil.
// The comparison count is reported for hits and misses.
func (e *Engine) FindByID(id int) (*Record, int) {
	e.idIndex.ResetMetrics()
	ref, ok := e.idIndex.Find(id)
	cmp := e.idIndex.Comparisons()
	if !ok {
		return nil, cmp
	}
	return e.live(*ref), cmp
}

// RangeByID returns the live records with lo <= id <= hi in ascending id order.
func (e *Engine) RangeByID(lo, hi int) ([]*Record, int) {
	e.idIndex.ResetMetrics()
	var out []*Record
	e.idIndex.RangeApply(lo, hi, func(_ int, pos *int) {
		if rec := e.live(*pos); rec != nil {
			out = append(out, rec)
		}
	})
	return out, e.idIndex.Comparisons()
}

// PrefixByLast returns the live records whose last name starts with prefix,
// ignoring case. Records are ordered by last name, then by insertion.
func (e *Engine) PrefixByLast(prefix string) ([]*Record, int) {
	p := strings.ToLower(prefix)
	e.lastIndex.ResetMetrics()
	var out []*Record
	e.lastIndex.RangeApply(p, p+maxByte, func(key string, positions *[]int) {
		// recheck, p+"\xff" only approximates the end of the prefix range
		if !strings.HasPrefix(key, p) {
			return
		}
		out = e.appendLive(out, *positions)
	})
	return out, e.lastIndex.Comparisons()
}

// MatchByLast returns the live records whose last name matches pattern, ignoring case.
// '*' matches any number of characters and '?' matches one character.
// Patterns without a leading '*' only scan the key range the pattern allows.
func (e *Engine) MatchByLast(pattern string) ([]*Record, int) {
	p := strings.ToLower(pattern)
	e.lastIndex.ResetMetrics()
	var out []*Record
	if p == "" {
		return out, 0
	}
	if p[0] == '*' {
		e.lastIndex.Ascend(func(key string, positions *[]int) bool {
			if match.Match(key, p) {
				out = e.appendLive(out, *positions)
			}
			return true
		})
		return out, e.lastIndex.Comparisons()
	}
	min, max := match.Allowable(p)
	e.lastIndex.RangeApply(min, max, func(key string, positions *[]int) {
		if match.Match(key, p) {
			out = e.appendLive(out, *positions)
		}
	})
	return out, e.lastIndex.Comparisons()
}

// Get returns the record at a heap position, deleted or not.
func (e *Engine) Get(pos int) (*Record, error) {
	return e.heap.Get(pos)
}

// Len returns the heap size, deleted records included.
func (e *Engine) Len() int {
	return e.heap.Len()
}

// Live returns the number of records that are not deleted.
func (e *Engine) Live() int {
	return e.heap.Live()
}

// Stats returns sizes of the heap and both indexes.
func (e *Engine) Stats() Stats {
	return Stats{
		Backend:  e.backend,
		Records:  e.heap.Len(),
		Live:     e.heap.Live(),
		IDKeys:   e.idIndex.Len(),
		LastKeys: e.lastIndex.Len(),
	}
}

// live resolves pos to a record that is in the heap and not deleted.
func (e *Engine) live(pos int) *Record {
	rec, err := e.heap.Get(pos)
	if err != nil {
		e.log.Error("index points outside the heap", "error", err)
		return nil
	}
	if rec.Deleted {
		return nil
	}
	return rec
}

func (e *Engine) appendLive(out []*Record, positions []int) []*Record {
	for _, pos := range positions {
		if rec := e.live(pos); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}
