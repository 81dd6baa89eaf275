// This file is part of the recidx project.
// Author: Kevin Eder
// Creation date: 19.10.2026
// License: MIT
// Use of this source code is governed by a MIT license that can be found in the LICENSE file
// at https://github.com/kesimo/recidx/blob/main/LICENSE

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kesimo/recidx"
)

// loadSeedFile inserts every row of a csv file into e.
func loadSeedFile(e *recidx.Engine, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()
	return loadSeed(e, f)
}

// loadSeed reads id,first,last[,major[,gpa]] rows. A first row whose id
// column is not a number is treated as a header and skipped.
func loadSeed(e *recidx.Engine, rd io.Reader) (int, error) {
	r := csv.NewReader(rd)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	n := 0
	for line := 1; ; line++ {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if len(fields) == 1 && strings.TrimSpace(fields[0]) == "" {
			continue
		}
		if len(fields) < 3 {
			return n, fmt.Errorf("line %d: want at least id,first,last, got %d fields", line, len(fields))
		}
		if len(fields) > 5 {
			fields = fields[:5]
		}
		rec, err := parseRecord(fields)
		if err != nil {
			if line == 1 {
				continue
			}
			return n, fmt.Errorf("line %d: %w", line, err)
		}
		e.InsertRecord(rec)
		n++
	}
}
