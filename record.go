// This file is part of the recidx project.
// Author: Kevin Eder
// Creation date: 18.10.2026
// License: MIT
// Use of this source code is governed by a MIT license that can be found in the LICENSE file
// at https://github.com/kesimo/recidx/blob/main/LICENSE

package recidx

import "fmt"

// Record is a single student row stored in the heap.
type Record struct {
	ID      int
	First   string
	Last    string
	Major   string
	GPA     float64
	Deleted bool // set by a logical delete, the record keeps its position
}

func (r *Record) String() string {
	s := fmt.Sprintf("%d %s %s", r.ID, r.First, r.Last)
	if r.Major != "" {
		s += " " + r.Major
	}
	if r.GPA != 0 {
		s += fmt.Sprintf(" %.2f", r.GPA)
	}
	if r.Deleted {
		s += " (deleted)"
	}
	return s
}
