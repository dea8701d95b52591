/*
Package sheet assembles exercise sheets from a YAML description and renders
them as Markdown, HTML or LaTeX.

# License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sheet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wording/exercise"
	"gopkg.in/yaml.v3"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Spec describes a sheet.
//
//	title: Units and money
//	seed: week-12
//	items:
//	  - file: cube.yaml
//	    count: 2
//	  - problem: { id: fence, wording: ... }
type Spec struct {
	Title string `yaml:"title"`
	Seed  string `yaml:"seed,omitempty"`
	Salt  string `yaml:"salt,omitempty"`
	Items []Item `yaml:"items"`
}

// Item is one or more questions of the same problem. A problem is either
// given inline or read from a file, relative to the sheet's file.
type Item struct {
	File    string            `yaml:"file,omitempty"`
	Problem *exercise.Problem `yaml:"problem,omitempty"`
	Count   int               `yaml:"count,omitempty"`
}

// ErrInvalidSheet is returned for sheet descriptions which cannot be built.
var ErrInvalidSheet = errors.New("invalid sheet")

// Load reads a sheet description from a YAML file and loads the problem
// files it refers to.
func Load(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	defer f.Close()
	return Read(f, filepath.Dir(path))
}

// Read reads a sheet description. Problem files are looked up in dir.
func Read(r io.Reader, dir string) (*Spec, error) {
	spec := &Spec{}
	if err := yaml.NewDecoder(r).Decode(spec); err != nil {
		return nil, fmt.Errorf("failed to parse sheet: %w", err)
	}
	for i := range spec.Items {
		item := &spec.Items[i]
		switch {
		case item.Problem != nil && item.File != "":
			return nil, fmt.Errorf("%w: item %d has both problem and file", ErrInvalidSheet, i+1)
		case item.Problem != nil:
			if err := item.Problem.Validate(); err != nil {
				return nil, err
			}
		case item.File != "":
			path := item.File
			if !filepath.IsAbs(path) {
				path = filepath.Join(dir, path)
			}
			p, err := exercise.LoadProblemFile(path)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i+1, err)
			}
			item.Problem = p
		default:
			return nil, fmt.Errorf("%w: item %d has no problem", ErrInvalidSheet, i+1)
		}
		if item.Count < 0 {
			return nil, fmt.Errorf("%w: item %d has negative count", ErrInvalidSheet, i+1)
		}
		if item.Count == 0 {
			item.Count = 1
		}
	}
	return spec, nil
}

// Sheet is a list of generated questions.
type Sheet struct {
	Title     string
	Questions []*exercise.Question
}

// Build generates the questions of a sheet. Every question gets a seed of
// its own, derived from the sheet's seed and the question's position.
func Build(g *exercise.Generator, spec *Spec) (*Sheet, error) {
	s := &Sheet{Title: spec.Title}
	for i, item := range spec.Items {
		if item.Problem == nil {
			return nil, fmt.Errorf("%w: item %d has no problem", ErrInvalidSheet, i+1)
		}
		for n := 0; n < item.Count; n++ {
			seed := fmt.Sprintf("%s/%d/%d", spec.Seed, i, n)
			q, err := g.Generate(item.Problem, seed, spec.Salt)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i+1, err)
			}
			s.Questions = append(s.Questions, q)
		}
	}
	T().Infof("sheet %q: %d questions", s.Title, len(s.Questions))
	return s, nil
}
