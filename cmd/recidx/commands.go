// This file is part of the recidx project.
// Author: Kevin Eder
// Creation date: 19.10.2026
// License: MIT
// Use of this source code is governed by a MIT license that can be found in the LICENSE file
// at https://github.com/kesimo/recidx/blob/main/LICENSE

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kesimo/recidx"
)

var errUsage = errors.New("usage")

const helpText = `commands:
  insert <id> <first> <last> [major] [gpa]
  delete <id>
  find <id>
  range <lo> <hi>
  prefix <last name prefix>
  match <last name pattern>   ('*' any characters, '?' one character)
  stats
  help
  exit`

// execute runs one shell command against e and writes its output to w.
// quit is true when the shell should stop.
func execute(e *recidx.Engine, w io.Writer, line string) (quit bool, err error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false, nil
	}
	args := parts[1:]
	switch cmd := strings.ToLower(parts[0]); cmd {
	case "insert", "add":
		return false, cmdInsert(e, w, args)
	case "delete", "del", "rm":
		return false, cmdDelete(e, w, args)
	case "find", "get":
		return false, cmdFind(e, w, args)
	case "range":
		return false, cmdRange(e, w, args)
	case "prefix":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: prefix <last name prefix>", errUsage)
		}
		recs, cmp := e.PrefixByLast(args[0])
		printRecords(w, recs, cmp)
		return false, nil
	case "match":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: match <last name pattern>", errUsage)
		}
		recs, cmp := e.MatchByLast(args[0])
		printRecords(w, recs, cmp)
		return false, nil
	case "stats":
		s := e.Stats()
		fmt.Fprintf(w, "backend=%s records=%d live=%d id_keys=%d last_keys=%d\n",
			s.Backend, s.Records, s.Live, s.IDKeys, s.LastKeys)
		return false, nil
	case "help":
		fmt.Fprintln(w, helpText)
		return false, nil
	case "exit", "quit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q, type 'help'", cmd)
	}
}

func cmdInsert(e *recidx.Engine, w io.Writer, args []string) error {
	if len(args) < 3 || len(args) > 5 {
		return fmt.Errorf("%w: insert <id> <first> <last> [major] [gpa]", errUsage)
	}
	rec, err := parseRecord(args)
	if err != nil {
		return err
	}
	pos := e.InsertRecord(rec)
	fmt.Fprintf(w, "inserted at position %d\n", pos)
	return nil
}

func cmdDelete(e *recidx.Engine, w io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: delete <id>", errUsage)
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := e.Delete(id); err != nil {
		return err
	}
	fmt.Fprintf(w, "deleted %d\n", id)
	return nil
}

func cmdFind(e *recidx.Engine, w io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: find <id>", errUsage)
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	rec, cmp := e.FindByID(id)
	if rec == nil {
		printRecords(w, nil, cmp)
		return nil
	}
	printRecords(w, []*recidx.Record{rec}, cmp)
	return nil
}

func cmdRange(e *recidx.Engine, w io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: range <lo> <hi>", errUsage)
	}
	lo, err := parseID(args[0])
	if err != nil {
		return err
	}
	hi, err := parseID(args[1])
	if err != nil {
		return err
	}
	recs, cmp := e.RangeByID(lo, hi)
	printRecords(w, recs, cmp)
	return nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("id must be an integer: %q", s)
	}
	return id, nil
}

// parseRecord builds a record from id, first, last and the optional major and gpa.
func parseRecord(fields []string) (recidx.Record, error) {
	id, err := parseID(strings.TrimSpace(fields[0]))
	if err != nil {
		return recidx.Record{}, err
	}
	rec := recidx.Record{
		ID:    id,
		First: strings.TrimSpace(fields[1]),
		Last:  strings.TrimSpace(fields[2]),
	}
	if len(fields) > 3 {
		rec.Major = strings.TrimSpace(fields[3])
	}
	if len(fields) > 4 && strings.TrimSpace(fields[4]) != "" {
		rec.GPA, err = strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
		if err != nil {
			return recidx.Record{}, fmt.Errorf("gpa must be a number: %q", fields[4])
		}
	}
	return rec, nil
}

func printRecords(w io.Writer, recs []*recidx.Record, cmp int) {
	for _, rec := range recs {
		fmt.Fprintln(w, rec)
	}
	fmt.Fprintf(w, "(%d records, %d comparisons)\n", len(recs), cmp)
}
