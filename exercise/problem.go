package exercise

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Problem is the definition of an exercise.
type Problem struct {
	ID        string              `yaml:"id" json:"id"`
	Version   string              `yaml:"version,omitempty" json:"version,omitempty"`
	Wording   string              `yaml:"wording" json:"wording"`
	Answer    string              `yaml:"answer,omitempty" json:"answer,omitempty"`
	Variables map[string]Variable `yaml:"variables,omitempty" json:"variables,omitempty"`
	Derived   map[string]string   `yaml:"derived,omitempty" json:"derived,omitempty"` // name -> expression
}

// Variable describes a random (or fixed) value of a problem.
type Variable struct {
	Kind      string                 `yaml:"kind,omitempty" json:"kind,omitempty"` // "scalar" (default) or "text"
	Generator map[string]interface{} `yaml:"generator,omitempty" json:"generator,omitempty"`
	Fixed     interface{}            `yaml:"fixed,omitempty" json:"fixed,omitempty"`
}

// Variable kinds.
const (
	KindScalar = "scalar"
	KindText   = "text"
)

// ErrInvalidProblem is returned for problem definitions which cannot be
// instantiated.
var ErrInvalidProblem = errors.New("invalid problem")

// LoadProblem reads a problem definition in YAML format.
func LoadProblem(r io.Reader) (*Problem, error) {
	p := &Problem{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		return nil, fmt.Errorf("failed to parse problem: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadProblemFile reads a problem definition from a YAML file.
func LoadProblemFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem: %w", err)
	}
	defer f.Close()
	return LoadProblem(f)
}

// Validate checks a problem definition for consistency.
func (p *Problem) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidProblem)
	}
	if p.Wording == "" {
		return fmt.Errorf("%w %s: missing wording", ErrInvalidProblem, p.ID)
	}
	for _, name := range sortedKeys(p.Variables) {
		v := p.Variables[name]
		switch v.Kind {
		case "", KindScalar, KindText:
		default:
			return fmt.Errorf("%w %s: variable %s has unknown kind %q", ErrInvalidProblem, p.ID, name, v.Kind)
		}
		if v.Fixed == nil && v.Generator == nil {
			return fmt.Errorf("%w %s: variable %s has neither generator nor fixed value", ErrInvalidProblem, p.ID, name)
		}
	}
	for name := range p.Derived {
		if _, ok := p.Variables[name]; ok {
			return fmt.Errorf("%w %s: %s is both variable and derived", ErrInvalidProblem, p.ID, name)
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
