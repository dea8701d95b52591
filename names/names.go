/*
Package names provides sources of person names for wording templates.

Templates may contain tags like {name}, {masculine_name2} or {feminine_name}
for which no value has been set by the caller. The wording engine pulls
names for them from a Source. Sources are effectively infinite: once every
suitable name has been handed out, they start over, in a new random order.

Two sources are provided: ListSource draws from an in-memory catalog (the
builtin catalogs are compiled into the binary), SQLSource from a table of a
sqlite database, which keeps track of drawn names across runs.

Name catalogs are line-oriented:

	# name ; gender (m|f, may be empty)
	Alice  ; f
	Adam   ; m

# License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package names

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wording/internal/catalog"
	"golang.org/x/text/language"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Gender selects names for a tag.
type Gender int8

// Genders. Any matches every name.
const (
	Any Gender = iota
	Masculine
	Feminine
)

func (g Gender) String() string {
	switch g {
	case Masculine:
		return "m"
	case Feminine:
		return "f"
	}
	return ""
}

// ParseGender reads "m"/"masculine" or "f"/"feminine". An empty string is Any.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Any, nil
	case "m", "masculine", "male":
		return Masculine, nil
	case "f", "feminine", "female":
		return Feminine, nil
	}
	return Any, fmt.Errorf("unknown gender %q", s)
}

// Matches is true if a name of gender g may be used for a request of gender
// want. Names without gender match every request.
func (g Gender) Matches(want Gender) bool {
	return want == Any || g == Any || g == want
}

// Source is a pull-based sequence of names.
type Source interface {
	Next(Gender) (string, error)
}

// ErrNoNames is returned by sources which have no name of the requested
// gender.
var ErrNoNames = errors.New("no names available")

// Entry is a name of a catalog.
type Entry struct {
	Name   string
	Gender Gender
}

// LoadEntries reads a name catalog.
func LoadEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	var failed error
	err := catalog.Parse(r, func(rec *catalog.Record) {
		if failed != nil {
			return
		}
		name := rec.Field(1)
		if name == "" {
			failed = fmt.Errorf("line %d: empty name", rec.LineNo)
			return
		}
		g, err := ParseGender(rec.Field(2))
		if err != nil {
			failed = fmt.Errorf("line %d: %w", rec.LineNo, err)
			return
		}
		entries = append(entries, Entry{Name: name, Gender: g})
	})
	if err != nil {
		return nil, err
	}
	if failed != nil {
		return nil, failed
	}
	T().Debugf("loaded %d names", len(entries))
	return entries, nil
}

//go:embed data/*.txt
var builtinData embed.FS

// Builtin returns the compiled-in catalog for a language. Languages without
// a catalog get the English one.
func Builtin(lang language.Tag) ([]Entry, error) {
	base, _ := lang.Base()
	f, err := builtinData.Open("data/" + base.String() + ".txt")
	if err != nil {
		T().Infof("no builtin names for %v, using English", lang)
		if f, err = builtinData.Open("data/en.txt"); err != nil {
			return nil, err
		}
	}
	defer f.Close()
	return LoadEntries(f)
}
