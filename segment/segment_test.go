package segment

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWhitespace1(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	seg.Init(strings.NewReader("Hello World!"))
	n := 0
	for seg.Next() {
		t.Logf("segment = '%s' at %d", seg.Text(), seg.Position())
		n++
	}
	if n != 2 {
		t.Errorf("Expected 2 segments, have %d", n)
	}
}

func TestWhitespace2(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	seg.Init(strings.NewReader("\tI have   {nb1}\n{capacity_unit} of water.  "))
	var words []string
	for seg.Next() {
		words = append(words, seg.Text())
	}
	expected := []string{"I", "have", "{nb1}", "{capacity_unit}", "of", "water."}
	if strings.Join(words, "|") != strings.Join(expected, "|") {
		t.Errorf("Expected %v, have %v", expected, words)
	}
}

func TestPositions(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	seg.Init(strings.NewReader("a  bc é d"))
	positions := []int64{}
	for seg.Next() {
		positions = append(positions, seg.Position())
	}
	if fmt.Sprint(positions) != "[0 3 6 9]" {
		t.Errorf("Expected positions [0 3 6 9], have %v", positions)
	}
}

func TestNotInitialized(t *testing.T) {
	seg := NewSegmenter()
	if seg.Next() {
		t.Fatalf("uninitialized segmenter should not produce segments")
	}
	if seg.Err() != ErrNotInitialized {
		t.Errorf("Expected ErrNotInitialized, have %v", seg.Err())
	}
}

func TestReInit(t *testing.T) {
	seg := NewSegmenter()
	seg.Init(strings.NewReader("one two"))
	seg.Next()
	seg.Init(strings.NewReader("three"))
	if !seg.Next() || seg.Text() != "three" {
		t.Errorf("Expected re-initialized segmenter to read 'three', have %q", seg.Text())
	}
	if seg.Next() {
		t.Errorf("Expected end of input after 'three'")
	}
}

func TestWordsMatchesFields(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, s := range []string{
		"",
		"   ",
		"X |hint:length_unit|",
		"Calculate the volume of a cube whose side's length is {nb1} {length_unit=cm}.",
		"\u00a0non-breaking\u00a0space and\ttabs",
	} {
		w := Words(s)
		f := strings.Fields(s)
		if strings.Join(w, "|") != strings.Join(f, "|") {
			t.Errorf("Words(%q) = %v, expected %v", s, w, f)
		}
	}
}

func TestMaxSegmentLen(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	long := strings.Repeat("x", MaxSegmentSize+1)
	seg := NewSegmenter()
	seg.Init(strings.NewReader("a " + long + " b"))
	for seg.Next() {
	}
	if seg.Err() != ErrTooLong {
		t.Errorf("Expected ErrTooLong, have %v", seg.Err())
	}
	seg.Init(strings.NewReader("a " + long + " b"))
	seg.SetMaxSegmentLen(0)
	n := 0
	for seg.Next() {
		n++
	}
	if n != 3 || seg.Err() != nil {
		t.Errorf("Expected 3 segments without limit, have %d (err=%v)", n, seg.Err())
	}
	seg.Init(strings.NewReader(long))
	if seg.maxSegmentLen != MaxSegmentSize {
		t.Errorf("Expected Init to restore default limit, have %d", seg.maxSegmentLen)
	}
}

func TestWordsLongWord(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := "x {a=b} " + strings.Repeat("y", 70*1024) + " tail {nb1}."
	w := Words(s)
	f := strings.Fields(s)
	if strings.Join(w, "|") != strings.Join(f, "|") {
		t.Errorf("Expected %d words like strings.Fields, have %d", len(f), len(w))
	}
}

func ExampleWords() {
	words := Words("I have {nb1} {capacity_unit} of water.")
	fmt.Println(len(words))
	fmt.Println(Join(words[2:4]))
	// Output:
	// 6
	// {nb1} {capacity_unit}
}
