package exercise

import (
	"fmt"
	"math/rand"

	"github.com/npillmayer/wording"
	"github.com/npillmayer/wording/names"
	"github.com/npillmayer/wording/quantity"
	"golang.org/x/text/language"
)

// Question is an instantiated problem.
type Question struct {
	ProblemID  string                 `json:"problem"`
	Seed       string                 `json:"seed"`
	Text       string                 `json:"text"`
	Hint       string                 `json:"hint,omitempty"`
	Answer     string                 `json:"answer,omitempty"`
	AnswerHint string                 `json:"answer_hint,omitempty"`
	Values     map[string]interface{} `json:"-"`
}

// Generator instantiates problems. The zero value generates plain English
// text with built-in English names.
type Generator struct {
	Printer  *quantity.Printer
	Units    *quantity.Catalog
	Currency string
	// Names is the catalog a fresh name source is built from for every
	// question. It defaults to the built-in names of the printer's language.
	Names []names.Entry
	// NameSource, if set, replaces the per-question source. Questions then
	// depend on the state of NameSource and are no longer reproducible.
	NameSource names.Source
}

func (g *Generator) printer() *quantity.Printer {
	if g.Printer == nil {
		g.Printer = quantity.NewPrinter(language.English, quantity.Plain)
	}
	return g.Printer
}

func (g *Generator) nameSource(rng *rand.Rand) (names.Source, error) {
	if g.NameSource != nil {
		return g.NameSource, nil
	}
	if g.Names == nil {
		entries, err := names.Builtin(g.printer().Tag)
		if err != nil {
			return nil, err
		}
		g.Names = entries
	}
	return names.NewListSource(g.Names, rand.New(rand.NewSource(rng.Int63()))), nil
}

// Generate instantiates problem p. The random choices depend on seed, the
// problem's ID and version, and salt only.
func (g *Generator) Generate(p *Problem, seed, salt string) (*Question, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(deriveSeed(seed, p.ID, p.Version, salt)))
	values, err := instantiate(p, rng)
	if err != nil {
		return nil, err
	}
	src, err := g.nameSource(rng)
	if err != nil {
		return nil, err
	}
	engine := &wording.Engine{
		Names:    src,
		Rand:     rand.New(rand.NewSource(rng.Int63())),
		Units:    g.Units,
		Printer:  g.printer(),
		Currency: g.Currency,
	}
	q := &Question{ProblemID: p.ID, Seed: seed, Values: values}
	obj := wording.AttrsFrom(values)
	obj.Set("wording", p.Wording)
	w, err := engine.SetupWordingFormat(obj, "")
	if err != nil {
		return nil, fmt.Errorf("problem %s: %w", p.ID, err)
	}
	if q.Text, err = w.Text(); err != nil {
		return nil, fmt.Errorf("problem %s: %w", p.ID, err)
	}
	q.Text = engine.PostProcess(q.Text)
	q.Hint = w.Hint
	if p.Answer == "" {
		return q, nil
	}
	ans := wording.AttrsFrom(values)
	for k, v := range w.Assigned {
		ans.Set(k, v)
	}
	ans.Set("answer_wording", p.Answer)
	aw, err := engine.SetupWordingFormat(ans, "answer_")
	if err != nil {
		return nil, fmt.Errorf("problem %s, answer: %w", p.ID, err)
	}
	if q.Answer, err = aw.Text(); err != nil {
		return nil, fmt.Errorf("problem %s, answer: %w", p.ID, err)
	}
	q.Answer = engine.PostProcess(q.Answer)
	q.AnswerHint = aw.Hint
	T().Debugf("exercise: %s (seed %q) => %q", p.ID, seed, q.Text)
	return q, nil
}

// instantiate draws every variable in name order, then evaluates the derived
// values. Derived values may refer to each other; they are evaluated on
// first use.
func instantiate(p *Problem, rng *rand.Rand) (map[string]interface{}, error) {
	values := make(map[string]interface{}, len(p.Variables)+len(p.Derived))
	for _, name := range sortedKeys(p.Variables) {
		v, err := generateVariable(rng, p.Variables[name])
		if err != nil {
			return nil, fmt.Errorf("problem %s, variable %s: %w", p.ID, name, err)
		}
		values[name] = v
	}
	visiting := make(map[string]bool)
	var lookup Lookup
	lookup = func(name string) (quantity.Number, error) {
		if v, ok := values[name]; ok {
			n, err := quantity.ToNumber(v)
			if err != nil {
				return n, fmt.Errorf("%w: %s is not numeric", ErrExpression, name)
			}
			return n, nil
		}
		src, ok := p.Derived[name]
		if !ok {
			return quantity.Number{}, fmt.Errorf("%w: unknown variable %s", ErrExpression, name)
		}
		if visiting[name] {
			return quantity.Number{}, fmt.Errorf("%w: %s depends on itself", ErrExpression, name)
		}
		visiting[name] = true
		n, err := Eval(src, lookup)
		if err != nil {
			return n, err
		}
		values[name] = n
		return n, nil
	}
	for _, name := range sortedKeys(p.Derived) {
		if _, err := lookup(name); err != nil {
			return nil, fmt.Errorf("problem %s, derived %s: %w", p.ID, name, err)
		}
	}
	return values, nil
}
