// This file is part of the recidx project.
// Author: Kevin Eder
// Creation date: 18.10.2026
// License: MIT
// Use of this source code is governed by a MIT license that can be found in the LICENSE file
// at https://github.com/kesimo/recidx/blob/main/LICENSE

package recidx

import "fmt"

// Store is an append-only heap of records addressed by position.
// Positions are assigned in insertion order and never reused; records are
// only ever tombstoned, never moved or removed.
type Store struct {
	records []*Record
	live    int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append stores a copy of rec and returns its position.
func (s *Store) Append(rec Record) int {
	s.records = append(s.records, &rec)
	if !rec.Deleted {
		s.live++
	}
	return len(s.records) - 1
}

// Get returns the record at pos.
// The returned reference stays valid for the lifetime of the store.
func (s *Store) Get(pos int) (*Record, error) {
	if pos < 0 || pos >= len(s.records) {
		return nil, fmt.Errorf("%w: position %d, length %d", ErrOutOfRange, pos, len(s.records))
	}
	return s.records[pos], nil
}

// MarkDeleted tombstones the record at pos. Marking a deleted record again has no effect.
func (s *Store) MarkDeleted(pos int) error {
	rec, err := s.Get(pos)
	if err != nil {
		return err
	}
	if !rec.Deleted {
		rec.Deleted = true
		s.live--
	}
	return nil
}

// Len returns the number of stored records, deleted ones included.
func (s *Store) Len() int {
	return len(s.records)
}

// Live returns the number of records that are not deleted.
func (s *Store) Live() int {
	return s.live
}

// Ascend calls iter for every record in position order until iter returns false.
func (s *Store) Ascend(iter func(pos int, rec *Record) bool) {
	if iter == nil {
		return
	}
	for pos, rec := range s.records {
		if !iter(pos, rec) {
			return
		}
	}
}
