package wording

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wording/names"
	"github.com/npillmayer/wording/quantity"
	"golang.org/x/text/language"
)

func TestNameTag(t *testing.T) {
	for i, x := range []struct {
		content string
		gender  names.Gender
		ok      bool
	}{
		{"name", names.Any, true},
		{"name2", names.Any, true},
		{"masculine_name", names.Masculine, true},
		{"feminine_nameB", names.Feminine, true},
		{"name12", names.Any, false},
		{"names_count", names.Any, false},
		{"nb1", names.Any, false},
	} {
		g, ok := nameTag(x.content)
		if g != x.gender || ok != x.ok {
			t.Errorf("test #%d: expected (%v,%v) for %q, have (%v,%v)", i, x.gender, x.ok, x.content, g, ok)
		}
	}
}

func TestHandleValuelessNames(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	e := newTestEngine(t, quantity.Plain)
	obj := AttrsFrom(map[string]interface{}{"name2": "Zoe"})
	err := e.HandleValuelessNames(obj, "{name} meets {feminine_name}, {masculine_name1} and {name2}.")
	if err != nil {
		t.Fatal(err)
	}
	if !obj.Has("name") {
		t.Errorf("expected name to be set")
	}
	if v, _ := obj.Get("name2"); v != "Zoe" {
		t.Errorf("expected name2 not to be overwritten, is %v", v)
	}
	if v, _ := obj.Get("feminine_name"); v != "Anna" && v != "Dora" {
		t.Errorf("expected a feminine name, have %v", v)
	}
	if v, _ := obj.Get("masculine_name1"); v != "Carl" && v != "Emil" {
		t.Errorf("expected a masculine name, have %v", v)
	}
}

func TestHandleValuelessNamesWithoutSource(t *testing.T) {
	e := newTestEngine(t, quantity.Plain)
	e.Names = nil
	err := e.HandleValuelessNames(NewAttrs(), "Hello {name}!")
	if !errors.Is(err, ErrNoNameSource) {
		t.Errorf("expected ErrNoNameSource, have %v", err)
	}
	if err = e.HandleValuelessNames(NewAttrs(), "Hello you!"); err != nil {
		t.Errorf("expected no error for sentence without names, have %v", err)
	}
}

func TestHandleValuelessUnits(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	e := newTestEngine(t, quantity.Plain)
	obj := AttrsFrom(map[string]interface{}{"mass_unit": "g"})
	sentence := "{nb1} {area_unit} and {nb2} {capacity_unit}, ({nb3} {mass_unit}) <volume_unit2> {currency_unit}"
	if err := e.HandleValuelessUnits(obj, sentence); err != nil {
		t.Fatal(err)
	}
	lu, ok := obj.Get("length_unit")
	if !ok {
		t.Fatalf("expected length_unit to be set for area_unit")
	}
	if au, _ := obj.Get("area_unit"); au != lu {
		t.Errorf("expected area_unit = length_unit = %v, is %v", lu, au)
	}
	if !isCandidate(quantity.Length, lu) {
		t.Errorf("expected length_unit to be a length unit, is %v", lu)
	}
	if cu, _ := obj.Get("capacity_unit"); !isCandidate(quantity.Capacity, cu) {
		t.Errorf("expected capacity_unit to be a capacity unit, is %v", cu)
	}
	if mu, _ := obj.Get("mass_unit"); mu != "g" {
		t.Errorf("expected mass_unit to stay g, is %v", mu)
	}
	lu2, _ := obj.Get("length_unit2")
	if vu, _ := obj.Get("volume_unit2"); vu == nil || vu != lu2 {
		t.Errorf("expected volume_unit2 = length_unit2, have %v and %v", vu, lu2)
	}
	if c, _ := obj.Get("currency_unit"); c != "€" {
		t.Errorf("expected currency €, have %v", c)
	}
}

func TestAreaUnitUsesExistingLength(t *testing.T) {
	e := newTestEngine(t, quantity.Plain)
	obj := AttrsFrom(map[string]interface{}{"length_unit1": "dam"})
	if err := e.HandleValuelessUnits(obj, "A field of {nb1} {area_unit1}."); err != nil {
		t.Fatal(err)
	}
	if au, _ := obj.Get("area_unit1"); au != "dam" {
		t.Errorf("expected area_unit1 to be dam, is %v", au)
	}
}

func TestUnknownUnitKind(t *testing.T) {
	e := newTestEngine(t, quantity.Plain)
	err := e.HandleValuelessUnits(NewAttrs(), "It weighs {nb1} {weight_unit}.")
	if !errors.Is(err, ErrUnknownUnitKind) {
		t.Errorf("expected ErrUnknownUnitKind, have %v", err)
	}
	obj := AttrsFrom(map[string]interface{}{"weight_unit": "kg"})
	if err = e.HandleValuelessUnits(obj, "It weighs {nb1} {weight_unit}."); err != nil {
		t.Errorf("expected no error for a unit which is set, have %v", err)
	}
}

func isCandidate(k quantity.Kind, v interface{}) bool {
	for _, c := range quantity.DefaultCatalog.Candidates(k) {
		if c == v {
			return true
		}
	}
	return false
}

func TestValuelessNamesAreDistinct(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	printer := quantity.NewPrinter(language.English, quantity.Plain)
	for seed := int64(1); seed <= 200; seed++ {
		src := names.NewListSource(testNames, rand.New(rand.NewSource(seed)))
		e := NewEngine(src, rand.New(rand.NewSource(seed)), printer, "€")
		obj := NewAttrs()
		if err := e.HandleValuelessNames(obj, "{name} gives {feminine_name} an apple."); err != nil {
			t.Fatal(err)
		}
		n, _ := obj.Get("name")
		f, _ := obj.Get("feminine_name")
		if n == f {
			t.Fatalf("seed %d: expected different names, have %v twice", seed, n)
		}
	}
}
