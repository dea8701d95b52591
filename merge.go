package wording

import (
	"fmt"
	"strings"

	"github.com/npillmayer/wording/quantity"
	"github.com/npillmayer/wording/segment"
	"github.com/npillmayer/wording/tag"
)

// MergeNbUnitPairs merges number tags followed by a unit tag in the wording
// stored under prefix+"wording":
//
//	"I have {nb1} {capacity_unit} of water."  =>  "I have {nb1_capacity_unit} of water."
//
// The merged attribute is set to the printed quantity, e.g. "2 L".
func (e *Engine) MergeNbUnitPairs(obj Attributes, prefix string) error {
	sentence, err := wordingOf(obj, prefix)
	if err != nil {
		return err
	}
	merged, err := e.mergeNbUnitPairs(obj, sentence)
	if err != nil {
		return err
	}
	obj.Set(prefix+"wording", merged)
	return nil
}

func (e *Engine) mergeNbUnitPairs(obj Attributes, sentence string) (string, error) {
	words := segment.Words(sentence)
	out := make([]string, 0, len(words))
	changed := false
	for i := 0; i < len(words); i++ {
		w := words[i]
		if !isNumberTag(w) || i+1 == len(words) {
			out = append(out, w)
			continue
		}
		next := words[i+1]
		if !tag.IsUnit(next) && !tag.IsUnitN(next) {
			out = append(out, w)
			continue
		}
		n, u := tag.Unwrapped(w), tag.Unwrapped(next)
		q, err := e.quantityOf(obj, n, u)
		if err != nil {
			return sentence, err
		}
		key := n + "_" + u
		CT().Debugf("wording: merged %s = %q", key, q)
		obj.Set(key, q)
		out = append(out, tag.Wrap(key, tag.Curly)+tag.Punctuation(next))
		changed = true
		i++
	}
	if !changed {
		return sentence, nil
	}
	return segment.Join(out), nil
}

func isNumberTag(word string) bool {
	return tag.IsWrapped(word, tag.Curly, tag.None) && strings.HasPrefix(tag.Unwrapped(word), "nb")
}

// quantityOf prints the value of number attribute n with the unit of unit
// attribute u.
func (e *Engine) quantityOf(obj Attributes, n, u string) (string, error) {
	nv, ok := obj.Get(n)
	if !ok {
		return "", missing(n)
	}
	uv, ok := obj.Get(u)
	if !ok {
		return "", missing(u)
	}
	num, err := quantity.ToNumber(nv)
	if err != nil {
		return "", fmt.Errorf("attribute %q: %w", n, err)
	}
	unit, err := quantity.UnitOf(uv)
	if err != nil {
		return "", fmt.Errorf("attribute %q: %w", u, err)
	}
	unit.Exponent = unitExponent(u)
	return e.printer().Quantity(num, unit), nil
}

// unitExponent is 2 for area units, 3 for volume units and 1 otherwise.
func unitExponent(name string) int {
	switch {
	case strings.HasPrefix(name, "area"):
		return quantity.Area.Exponent()
	case strings.HasPrefix(name, "volume"):
		return quantity.Volume.Exponent()
	}
	return 1
}
