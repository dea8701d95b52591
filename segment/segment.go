/*
Package segment splits wording templates into words.

Wording templates are tokenized on whitespace only: placeholders are always
whole words, and a placeholder never spans a space. Segmenter provides an
interface similar to bufio.Scanner for stepping through the words of a
sentence:

	segmenter := segment.NewSegmenter()
	segmenter.Init(strings.NewReader("I have {nb1} {capacity_unit} of water."))
	for segmenter.Next() {
	  // do something with segmenter.Text() or segmenter.Bytes()
	}

Segmenters are short-lived and requested for every step of the wording
pipeline, therefore they are pooled. Most clients will simply call Words.

# License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package segment

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// A Segmenter reads code-points from an io.RuneReader and splits them into
// words, using runs of whitespace as boundaries. Whitespace is never part
// of a segment.
type Segmenter struct {
	reader        io.RuneReader // where we get the next runes from
	buffer        *bytes.Buffer // collects the runes of the active segment
	activeSegment []byte        // the most recent segment
	maxSegmentLen int           // maximum length allowed for segments, 0 for none
	pos           int64         // current position in text
	start         int64         // start position of the active segment
	err           error
	atEOF         bool
}

// MaxSegmentSize is the default maximum size of a single word.
const MaxSegmentSize = 64 * 1024
const startBufSize = 256 // Size of initial allocation for buffer.

// ErrTooLong flags a buffer overflow.
// ErrNotInitialized is returned if a segmenters Next-function is called without
// first setting an input source.
var (
	ErrTooLong        = errors.New("segmenter: word too long for buffer")
	ErrNotInitialized = errors.New("segmenter not initialized; must call Init(...) first")
)

// NewSegmenter creates a new Segmenter. Before using it, clients will have to
// call Init(...), i.e. initialize it for a rune reader.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Init initializes a Segmenter with an io.RuneReader to read from.
// s is either a newly created segmenter to be initialized, or we may
// re-initializes a segmenter already in use. Init resets the maximum
// segment length to MaxSegmentSize.
func (s *Segmenter) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	s.reader = reader
	if s.buffer == nil {
		s.buffer = bytes.NewBuffer(make([]byte, 0, startBufSize))
	} else {
		s.buffer.Reset()
	}
	s.maxSegmentLen = MaxSegmentSize
	s.activeSegment = nil
	s.pos, s.start = 0, 0
	s.err = nil
	s.atEOF = false
}

// SetMaxSegmentLen limits the size of a single word to n bytes. Words
// exceeding the limit stop the segmenter with ErrTooLong. n <= 0 removes
// the limit. Call it after Init.
func (s *Segmenter) SetMaxSegmentLen(n int) {
	if n < 0 {
		n = 0
	}
	s.maxSegmentLen = n
}

// Err returns the first non-EOF error that was encountered by the
// Segmenter.
func (s *Segmenter) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Next advances the Segmenter to the next word, which will then be available
// through the Bytes() or Text() method. It returns false when the segmenting
// stops, either by reaching the end of the input or an error.
// After Next() returns false, the Err() method will return any error
// that occurred during scanning, except for io.EOF.
func (s *Segmenter) Next() bool {
	if s.reader == nil {
		s.setErr(ErrNotInitialized)
		return false
	}
	s.buffer.Reset()
	s.activeSegment = nil
	for !s.atEOF {
		r, sz, err := s.reader.ReadRune()
		if err != nil {
			s.atEOF = true
			if err != io.EOF {
				CT().Errorf("segmenter: ReadRune() error: %s", err)
				s.setErr(err)
				return false
			}
			break
		}
		s.pos += int64(sz)
		if unicode.IsSpace(r) {
			if s.buffer.Len() > 0 {
				break
			}
			continue
		}
		if s.buffer.Len() == 0 {
			s.start = s.pos - int64(sz)
		}
		if s.maxSegmentLen > 0 && s.buffer.Len()+sz > s.maxSegmentLen {
			s.setErr(ErrTooLong)
			return false
		}
		s.buffer.WriteRune(r)
	}
	if s.buffer.Len() == 0 {
		return false
	}
	s.activeSegment = s.buffer.Bytes()
	return true
}

// Bytes returns the most recent word generated by a call to Next().
// The underlying array may point to data that will be overwritten by a
// subsequent call to Next(). No allocation is performed.
func (s *Segmenter) Bytes() []byte {
	return s.activeSegment
}

// Text returns the most recent word generated by a call to Next()
// as a newly allocated string holding its bytes.
func (s *Segmenter) Text() string {
	return string(s.activeSegment)
}

// Position returns the byte offset of the most recent word within the input.
func (s *Segmenter) Position() int64 {
	return s.start
}

// setErr() records the first error encountered.
func (s *Segmenter) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}

// --- Convenience -----------------------------------------------------------

// Words splits a sentence into its whitespace-delimited words, dropping the
// whitespace. It is the equivalent of strings.Fields, performed by a pooled
// Segmenter. Words are not limited in size.
func Words(sentence string) []string {
	seg := borrowSegmenter()
	defer seg.release()
	seg.Init(strings.NewReader(sentence))
	seg.SetMaxSegmentLen(0)
	words := make([]string, 0, 16)
	for seg.Next() {
		words = append(words, seg.Text())
	}
	if seg.Err() != nil {
		CT().Errorf("segmenter stopped: %v", seg.Err())
	}
	return words
}

// Join re-assembles words into a sentence, separating them by single spaces.
func Join(words []string) string {
	return strings.Join(words, " ")
}
