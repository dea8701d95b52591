package wording

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	values := map[string]string{"a": "x", "nb1": "2", "name": "Anna"}
	for i, x := range []struct {
		in, out string
	}{
		{"{a} {{b}}", "x {b}"},
		{"{name} has {nb1} apples.", "Anna has 2 apples."},
		{`\begin{{center}} {a} \end{{center}}`, `\begin{center} x \end{center}`},
		{"{{{a}}}", "{x}"},
		{"no tags", "no tags"},
	} {
		out, err := Format(x.in, values)
		if err != nil {
			t.Errorf("test #%d: %v", i, err)
			continue
		}
		if out != x.out {
			t.Errorf("test #%d: expected %q, have %q", i, x.out, out)
		}
	}
}

func TestFormatErrors(t *testing.T) {
	_, err := Format("{c}", map[string]string{})
	var mae *MissingAttributeError
	if !errors.Is(err, ErrFormat) || !errors.As(err, &mae) || mae.Name != "c" {
		t.Errorf("expected format error for missing c, have %v", err)
	}
	for _, s := range []string{"{a", "a}", "{a}}"} {
		if _, err := Format(s, map[string]string{"a": "x"}); !errors.Is(err, ErrFormat) {
			t.Errorf("expected format error for %q, have %v", s, err)
		}
	}
}

func TestExtractTags(t *testing.T) {
	for i, x := range []struct {
		in   string
		tags []string
	}{
		{"{name} has {nb1} and ({nb2}), {name} again.", []string{"name", "nb1", "nb2"}},
		{`\begin{center} {nb1} \end{center}`, []string{"nb1"}},
		{`\begin{tabular}{cc} {a} & {b} \end{tabular}`, []string{"a", "b"}},
		{`\SI{2}{cm} {x}`, []string{"x"}},
		{`\frac{{nb1}}{2}`, []string{"nb1"}},
		{"{center} {multicols} {3} {a-b} {_ok}", []string{"_ok"}},
		{"{center}{nb1} {3}{a}", []string{"nb1", "a"}},
		{`\begin{tabular}{cc}{x}`, []string{}},
		{"<name> is not curly", []string{}},
	} {
		tags := extractTags(x.in)
		if diff := cmp.Diff(x.tags, tags); diff != "" {
			t.Errorf("test #%d: tags mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestEscapeStructural(t *testing.T) {
	for i, x := range []struct {
		in, out string
	}{
		{"{nb1} plain", "{nb1} plain"},
		{`\begin{center} {nb1} \end{center}`, `\begin{{center}} {nb1} \end{{center}}`},
		{`\frac{{nb1}}{2}`, `\frac{{{nb1}}}{{2}}`},
		{`\SI{2}{cm}`, `\SI{{2}}{{cm}}`},
		{"{center}{nb1}", "{{center}}{nb1}"},
	} {
		if out := escapeStructural(x.in); out != x.out {
			t.Errorf("test #%d: expected %q, have %q", i, x.out, out)
		}
	}
}

func TestEscapedSentenceFormatsLiterally(t *testing.T) {
	sentence := `\begin{center} {nb1} \end{center}`
	out, err := Format(escapeStructural(sentence), map[string]string{"nb1": "5"})
	if err != nil {
		t.Fatal(err)
	}
	if out != `\begin{center} 5 \end{center}` {
		t.Errorf("unexpected output %q", out)
	}
}
