// This file is part of the recidx project.
// Author: Kevin Eder
// Creation date: 19.10.2026
// License: MIT
// Use of this source code is governed by a MIT license that can be found in the LICENSE file
// at https://github.com/kesimo/recidx/blob/main/LICENSE

package recidx

import (
	"errors"
	"sync"
)

// ErrEngineClosed is returned by Shared after Close.
var ErrEngineClosed = errors.New("engine closed")

// Shared serializes access to an Engine from multiple goroutines.
// A plain mutex is used for reads as well, since every query writes the
// comparison counter of its index.
type Shared struct {
	mu     sync.Mutex // the gatekeeper for the engine
	engine *Engine
}

// NewShared creates an engine from config and wraps it.
func NewShared(config Config) (*Shared, error) {
	e, err := New(config)
	if err != nil {
		return nil, err
	}
	return &Shared{engine: e}, nil
}

// Do executes fn while holding the engine lock.
// The engine must not be retained after fn returns. Records returned by
// queries may be read after Do as long as no other goroutine deletes them.
func (s *Shared) Do(fn func(e *Engine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return ErrEngineClosed
	}
	return fn(s.engine)
}

// InsertRecord is a wrapper around Do with a single InsertRecord call.
func (s *Shared) InsertRecord(rec Record) (pos int, err error) {
	err = s.Do(func(e *Engine) error {
		pos = e.InsertRecord(rec)
		return nil
	})
	return pos, err
}

// Delete is a wrapper around Do with a single Delete call.
func (s *Shared) Delete(id int) error {
	return s.Do(func(e *Engine) error {
		return e.Delete(id)
	})
}

// FindByID returns a copy of the live record with the given id.
// ErrNotFound is returned if there is none.
func (s *Shared) FindByID(id int) (rec Record, cmp int, err error) {
	err = s.Do(func(e *Engine) error {
		var r *Record
		r, cmp = e.FindByID(id)
		if r == nil {
			return ErrNotFound
		}
		rec = *r
		return nil
	})
	return rec, cmp, err
}

// Close releases the engine. Later calls return ErrEngineClosed.
func (s *Shared) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return ErrEngineClosed
	}
	s.engine = nil
	return nil
}
