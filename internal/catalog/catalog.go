/*
	Package catalog provides a parser for the line-oriented data files of this module.

The format follows the one of the Unicode Character Database: one data item
per line, fields separated by semicolons, and an optional rest-of-line comment
introduced by '#'. Empty lines and comment lines are skipped.

	# name   ; gender
	Alice    ; f       # rest-of-line comment
	Bob      ; m
*/
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Record holds the content of a single data line.
type Record struct {
	LineNo  int      // line number within the input source, starting at 1
	Fields  []string // trimmed fields of the line
	Comment string   // rest-of-line comment, if any
}

func (rec *Record) String() string {
	return fmt.Sprintf("record[at %d %#v]", rec.LineNo, rec.Fields)
}

// Field gets field #i (1…n) from the current data item.
func (rec *Record) Field(i int) string {
	if i > 0 && i <= len(rec.Fields) {
		return rec.Fields[i-1]
	}
	return ""
}

// --- Line level scanner ----------------------------------------------------

// scanner is a type for a line-level scanner.
//
// The scanner operates by calling scanning steps in a chain. Each step tests
// the remainder of the line and either produces a record or hands over to a
// subsequent step.
type scanner struct {
	lines     *bufio.Scanner
	lineNo    int
	line      string
	Record    *Record // last record produced by scanner
	LastError error   // last error, if any
}

// scannerStep returns the next step in the chain, or nil to stop/accept.
type scannerStep func(*Record) (*Record, scannerStep)

// newScanner creates a scanner for an input reader.
func newScanner(inputReader io.Reader) (*scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	return &scanner{lines: bufio.NewScanner(inputReader)}, nil
}

// Parse iterates over each data line of the input and calls callback f on it.
func Parse(r io.Reader, f func(rec *Record)) error {
	sc, err := newScanner(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Record)
	}
	return sc.LastError
}

// Next is called to receive the next data record. Lines without data are
// skipped.
func (sc *scanner) Next() bool {
	for sc.lines.Scan() {
		sc.lineNo++
		sc.line = sc.lines.Text()
		rec := &Record{LineNo: sc.lineNo}
		var step scannerStep = sc.scanComment
		for step != nil && rec != nil {
			rec, step = step(rec)
		}
		if rec != nil {
			sc.Record = rec
			return true
		}
	}
	if err := sc.lines.Err(); err != nil {
		sc.LastError = fmt.Errorf("catalog line %d: %w", sc.lineNo+1, err)
	}
	return false
}

// scanComment splits off a rest-of-line comment.
func (sc *scanner) scanComment(rec *Record) (*Record, scannerStep) {
	if i := strings.IndexByte(sc.line, '#'); i >= 0 {
		rec.Comment = strings.TrimSpace(sc.line[i+1:])
		sc.line = sc.line[:i]
	}
	if strings.TrimSpace(sc.line) == "" {
		return nil, nil // no data on this line
	}
	return rec, sc.scanFields
}

// scanFields splits the data part of a line into fields.
func (sc *scanner) scanFields(rec *Record) (*Record, scannerStep) {
	for _, f := range strings.Split(sc.line, ";") {
		rec.Fields = append(rec.Fields, strings.TrimSpace(f))
	}
	return rec, nil
}
