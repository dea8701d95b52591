package wording

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/npillmayer/wording/names"
	"github.com/npillmayer/wording/quantity"
	"github.com/npillmayer/wording/tag"
	"golang.org/x/text/language"
)

// Engine resolves wording templates. It holds the sources of invented
// values: names, random unit choices and the currency. An Engine is not safe
// for concurrent use unless its Rand and Names are.
type Engine struct {
	Names    names.Source      // where names for {name} tags come from
	Rand     *rand.Rand        // random choice of units
	Units    *quantity.Catalog // candidate units per kind
	Printer  *quantity.Printer // renders numbers, units and quantities
	Currency string            // value of {currency_unit} tags
}

// NewEngine creates an engine. rnd and pr may be nil, in which case a
// time-seeded generator and an English plain-text printer are used.
func NewEngine(src names.Source, rnd *rand.Rand, pr *quantity.Printer, currency string) *Engine {
	e := &Engine{
		Names:    src,
		Rand:     rnd,
		Units:    quantity.DefaultCatalog,
		Printer:  pr,
		Currency: currency,
	}
	e.rand()
	e.printer()
	return e
}

func (e *Engine) rand() *rand.Rand {
	if e.Rand == nil {
		e.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e.Rand
}

func (e *Engine) printer() *quantity.Printer {
	if e.Printer == nil {
		e.Printer = quantity.NewPrinter(language.English, quantity.Plain)
	}
	return e.Printer
}

func (e *Engine) units() *quantity.Catalog {
	if e.Units == nil {
		e.Units = quantity.DefaultCatalog
	}
	return e.Units
}

// Wording is the result of processing a wording template.
type Wording struct {
	Sentence string            // rewritten template, ready for Format
	Format   map[string]string // value for every tag of Sentence
	Hint     string            // printed hint, empty if there is none
	Assigned map[string]interface{}
}

// Text fills the template with the format dictionary.
func (w *Wording) Text() (string, error) {
	return Format(w.Sentence, w.Format)
}

// pass is the state of one run of the pipeline.
type pass struct {
	obj      Attributes // the caller object
	rec      *recorder  // obj, recording values set while resolving tags
	prefix   string
	sentence string
	hint     string
	format   map[string]string
}

type step struct {
	name string
	run  func(*Engine, *pass) error
}

// pipeline lists the steps of SetupWordingFormat. Every step relies on the
// rewrites of the steps before it.
var pipeline = []step{
	{"cut off hint", (*Engine).stepCutOffHint},
	{"assign tag values", (*Engine).stepAttrValues},
	{"resolve valueless tags", (*Engine).stepValueless},
	{"resolve hint unit", (*Engine).stepHintUnit},
	{"merge number/unit pairs", (*Engine).stepMerge},
	{"render units", (*Engine).stepRenderUnits},
	{"build format dictionary", (*Engine).stepFormatDict},
	{"escape structural braces", (*Engine).stepEscape},
	{"resolve hint", (*Engine).stepHint},
}

// SetupWordingFormat processes the template stored in obj under
// prefix+"wording". It stores the rewritten template back under
// prefix+"wording", the format dictionary under prefix+"wording_format",
// and the hint under "hint". Values invented on the way are stored in obj as
// well; the ones set from the template are also reported in
// Wording.Assigned, unprinted.
//
// SetupWordingFormat must be called once per object.
func (e *Engine) SetupWordingFormat(obj Attributes, prefix string) (*Wording, error) {
	sentence, err := wordingOf(obj, prefix)
	if err != nil {
		return nil, err
	}
	p := &pass{obj: obj, rec: newRecorder(obj), prefix: prefix, sentence: sentence}
	for _, st := range pipeline {
		if err := st.run(e, p); err != nil {
			CT().Errorf("wording: %s: %v", st.name, err)
			return nil, err
		}
		CT().Debugf("wording: %-26s %q", st.name, p.sentence)
	}
	obj.Set(prefix+"wording", p.sentence)
	obj.Set(prefix+"wording_format", p.format)
	w := &Wording{
		Sentence: p.sentence,
		Format:   p.format,
		Assigned: p.rec.assigned,
	}
	if h, ok := obj.Get("hint"); ok && p.hint != "" {
		w.Hint = e.printer().Sprint(h)
	}
	return w, nil
}

// Render processes the template stored in obj under prefix+"wording" and
// returns the final text, post-processed.
func (e *Engine) Render(obj Attributes, prefix string) (string, error) {
	w, err := e.SetupWordingFormat(obj, prefix)
	if err != nil {
		return "", err
	}
	text, err := w.Text()
	if err != nil {
		return "", err
	}
	return e.PostProcess(text), nil
}

func wordingOf(obj Attributes, prefix string) (string, error) {
	v, ok := obj.Get(prefix + "wording")
	if !ok {
		return "", fmt.Errorf("%w: %s not set", ErrNoWording, prefix+"wording")
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is a %T", ErrNoWording, prefix+"wording", v)
	}
	return s, nil
}

// --- Steps -----------------------------------------------------------------

func (e *Engine) stepCutOffHint(p *pass) error {
	p.sentence, p.hint = CutOffHint(p.sentence)
	return nil
}

func (e *Engine) stepAttrValues(p *pass) error {
	sentence, values, err := ProcessAttrValues(p.sentence)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p.rec.Set(k, values[k])
	}
	p.sentence = sentence
	return nil
}

func (e *Engine) stepValueless(p *pass) error {
	if err := e.HandleValuelessNames(p.rec, p.sentence); err != nil {
		return err
	}
	return e.HandleValuelessUnits(p.rec, p.sentence)
}

// stepHintUnit gives a hint naming an area or volume unit the value of the
// length unit of the same suffix.
func (e *Engine) stepHintUnit(p *pass) error {
	if !strings.HasPrefix(p.hint, "area_unit") && !strings.HasPrefix(p.hint, "volume_unit") {
		return nil
	}
	lkey := "length_unit" + unitSuffix(p.hint)
	u, ok := p.obj.Get(lkey)
	if !ok {
		return fmt.Errorf("%w: display %s as hint while no %s has been defined already",
			ErrUndefinedHintUnit, p.hint, lkey)
	}
	p.rec.Set(p.hint, u)
	return nil
}

func (e *Engine) stepMerge(p *pass) error {
	sentence, err := e.mergeNbUnitPairs(p.obj, p.sentence)
	p.sentence = sentence
	return err
}

// stepRenderUnits replaces the values of all unit attributes by their
// printed form, with exponents applied. Merged quantities and currencies
// are already final.
func (e *Engine) stepRenderUnits(p *pass) error {
	for _, key := range p.obj.Keys() {
		if !tag.HasUnitSuffix(key) || strings.HasPrefix(key, "nb") || strings.HasPrefix(key, "currency") {
			continue
		}
		v, _ := p.obj.Get(key)
		u, err := quantity.UnitOf(v)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", key, err)
		}
		u.Exponent = unitExponent(key)
		p.obj.Set(key, e.printer().Unit(u))
	}
	return nil
}

func (e *Engine) stepFormatDict(p *pass) error {
	p.format = make(map[string]string)
	for _, t := range extractTags(p.sentence) {
		v, ok := p.obj.Get(t)
		if !ok {
			return missing(t)
		}
		p.format[t] = e.printer().Sprint(v)
	}
	return nil
}

func (e *Engine) stepEscape(p *pass) error {
	p.sentence = escapeStructural(p.sentence)
	return nil
}

// stepHint sets "hint" to the value of the attribute the hint names, or to
// the hint itself.
func (e *Engine) stepHint(p *pass) error {
	if p.hint == "" {
		return nil
	}
	if v, ok := p.obj.Get(p.hint); ok {
		p.obj.Set("hint", v)
	} else {
		p.obj.Set("hint", p.hint)
	}
	return nil
}
