package tag

import (
	"fmt"
	"testing"
)

func TestIsWrapped(t *testing.T) {
	for i, x := range []struct {
		word          string
		braces, extra Braces
		wrapped       bool
		punct         bool
	}{
		{"{nb1}", Curly, None, true, false},
		{"{nb1}.", Curly, None, false, true},
		{"{nb1}?", Curly, None, false, true},
		{"{nb1}..", Curly, None, false, false},
		{"{nb1", Curly, None, false, false},
		{"nb1}", Curly, None, false, false},
		{"abc{nb1}", Curly, None, false, false},
		{"{nb1})", Curly, None, false, false},
		{"<name>", Angle, None, true, false},
		{"<name>,", Angle, None, false, true},
		{"({nb1})", Curly, Parens, true, false},
		{"({nb1}):", Curly, Parens, false, true},
		{"[{nb1}]", Curly, Brackets, true, false},
		{"[{nb1}]", Curly, Parens, false, false},
		{"|hint:cm|", Pipes, None, true, false},
		{"|", Pipes, None, false, false},
		{"{}", Curly, None, true, false},
	} {
		if IsWrapped(x.word, x.braces, x.extra) != x.wrapped {
			t.Errorf("test #%d: expected IsWrapped(%q) to be %v", i, x.word, x.wrapped)
		}
		if IsWrappedPunct(x.word, x.braces, x.extra) != x.punct {
			t.Errorf("test #%d: expected IsWrappedPunct(%q) to be %v", i, x.word, x.punct)
		}
		if IsWrappedAny(x.word, x.braces, x.extra) != (x.wrapped || x.punct) {
			t.Errorf("test #%d: IsWrappedAny(%q) is not the union of both variants", i, x.word)
		}
		if x.wrapped && x.punct {
			t.Errorf("test #%d: wrapped and wrapped-with-punctuation are exclusive", i)
		}
	}
}

func TestUnwrapped(t *testing.T) {
	for _, x := range [][2]string{
		{"{nb1}", "nb1"},
		{"{nb1}.", "nb1"},
		{"{length_unit}!", "length_unit"},
		{"({nb1})", "{nb1}"},
		{"|hint:cm|", "hint:cm"},
		{"{}", ""},
		{"x", ""},
		{"", ""},
	} {
		if u := Unwrapped(x[0]); u != x[1] {
			t.Errorf("expected Unwrapped(%q) to be %q, is %q", x[0], x[1], u)
		}
	}
}

func TestWrapRoundTrip(t *testing.T) {
	for _, w := range []string{"{nb1}", "{length_unit2}", "{name}", "{}"} {
		if r := Wrap(Unwrapped(w), Curly); r != w {
			t.Errorf("expected Wrap(Unwrapped(%q)) to round-trip, is %q", w, r)
		}
	}
	if w := WrapWith("x", Curly, "", "]"); w != "{x]" {
		t.Errorf("expected override of closing brace, have %q", w)
	}
	if w := WrapWith("x", Curly, "<", ""); w != "<x}" {
		t.Errorf("expected override of opening brace, have %q", w)
	}
}

func TestContent(t *testing.T) {
	c, p, ok := Content("({length_unit=cm}).", Curly, Parens)
	if !ok || c != "length_unit=cm" || p != "." {
		t.Errorf("unexpected content %q / %q / %v", c, p, ok)
	}
	c, p, ok = Content("<nb2>", Angle, None)
	if !ok || c != "nb2" || p != "" {
		t.Errorf("unexpected content %q / %q / %v", c, p, ok)
	}
	if _, _, ok = Content("{nb2}", Angle, None); ok {
		t.Errorf("curly tag must not be taken for an angle tag")
	}
}

func TestUnitTags(t *testing.T) {
	for _, x := range []struct {
		word        string
		unit, unitN bool
	}{
		{"{length_unit}", true, false},
		{"{length_unit},", true, false},
		{"{area_unit2}", false, true},
		{"{area_unit2}.", false, true},
		{"{area_unit22}", false, false},
		{"{unit}", false, false},
		{"length_unit", false, false},
		{"({length_unit})", false, false},
	} {
		if IsUnit(x.word) != x.unit {
			t.Errorf("expected IsUnit(%q) to be %v", x.word, x.unit)
		}
		if IsUnitN(x.word) != x.unitN {
			t.Errorf("expected IsUnitN(%q) to be %v", x.word, x.unitN)
		}
	}
}

func ExampleContent() {
	for _, w := range []string{"{nb1}", "{area_unit=cm}.", "apples"} {
		c, p, ok := Content(w, Curly, None)
		fmt.Printf("%q %q %v\n", c, p, ok)
	}
	// Output:
	// "nb1" "" true
	// "area_unit=cm" "." true
	// "" "" false
}
