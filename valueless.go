package wording

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/wording/names"
	"github.com/npillmayer/wording/quantity"
	"github.com/npillmayer/wording/segment"
	"github.com/npillmayer/wording/tag"
)

// nameTags are the prefixes of name tags, gendered ones first.
var nameTags = []struct {
	prefix string
	gender names.Gender
}{
	{"masculine_name", names.Masculine},
	{"feminine_name", names.Feminine},
	{"name", names.Any},
}

// nameTag checks if a tag content is a name tag, optionally followed by a
// one-character suffix, and returns the gender to draw.
func nameTag(content string) (names.Gender, bool) {
	for _, t := range nameTags {
		if !strings.HasPrefix(content, t.prefix) {
			continue
		}
		if rest := content[len(t.prefix):]; utf8.RuneCountInString(rest) <= 1 {
			return t.gender, true
		}
		return names.Any, false
	}
	return names.Any, false
}

// HandleValuelessNames draws names for name tags of a sentence which have
// no value yet. Tags must be curly-braced; they may be followed by a
// punctuation mark.
func (e *Engine) HandleValuelessNames(obj Attributes, sentence string) error {
	for _, w := range segment.Words(sentence) {
		if !tag.IsWrappedAny(w, tag.Curly, tag.None) {
			continue
		}
		content, _, _ := tag.Content(w, tag.Curly, tag.None)
		if strings.Contains(content, "=") {
			continue
		}
		gender, ok := nameTag(content)
		if !ok || has(obj, content) {
			continue
		}
		if e.Names == nil {
			return fmt.Errorf("%w for tag %q", ErrNoNameSource, w)
		}
		name, err := e.Names.Next(gender)
		if err != nil {
			return fmt.Errorf("drawing name for %q: %w", content, err)
		}
		CT().Infof("wording: %s = %q", content, name)
		obj.Set(content, name)
	}
	return nil
}

// HandleValuelessUnits assigns units to unit tags of a sentence which have
// no value yet. Length, mass and capacity units are drawn at random from the
// engine's catalog, currency units are the engine's currency. Area and volume
// units are the length unit of the same suffix; if there is none, a length
// unit is drawn and assigned to both tags.
func (e *Engine) HandleValuelessUnits(obj Attributes, sentence string) error {
	var deferred []string
	for _, w := range segment.Words(sentence) {
		content, ok := unitTagContent(w)
		if !ok || has(obj, content) {
			continue
		}
		name := content[:strings.IndexByte(content, '_')]
		kind, ok := quantity.ParseKind(name)
		if !ok {
			return fmt.Errorf("%w: %q in tag %q", ErrUnknownUnitKind, name, w)
		}
		switch {
		case kind == quantity.Currency:
			obj.Set(content, e.Currency)
		case kind.Derived():
			if !contains(deferred, content) {
				deferred = append(deferred, content)
			}
		default:
			u, err := e.randomUnit(kind)
			if err != nil {
				return err
			}
			CT().Infof("wording: %s = %s", content, u)
			obj.Set(content, u)
		}
	}
	for _, content := range deferred {
		lkey := "length_unit" + unitSuffix(content)
		u, ok := obj.Get(lkey)
		if !ok {
			var err error
			if u, err = e.randomUnit(quantity.Length); err != nil {
				return err
			}
			CT().Infof("wording: %s = %s (for %s)", lkey, u, content)
			obj.Set(lkey, u)
		}
		obj.Set(content, u)
	}
	return nil
}

// unitTagContent returns the content of a valueless unit tag in any of the
// recognized styles.
func unitTagContent(word string) (string, bool) {
	for _, st := range valueTagStyles {
		content, _, ok := tag.Content(word, st.braces, st.extra)
		if ok && !strings.Contains(content, "=") && tag.HasUnitSuffix(content) {
			return content, true
		}
	}
	return "", false
}

// unitSuffix returns the part of a unit tag name following "_unit".
func unitSuffix(name string) string {
	i := strings.LastIndex(name, "_unit")
	if i < 0 {
		return ""
	}
	return name[i+len("_unit"):]
}

func (e *Engine) randomUnit(kind quantity.Kind) (string, error) {
	candidates := e.units().Candidates(kind)
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no %s units available", ErrUnknownUnitKind, kind)
	}
	return candidates[e.rand().Intn(len(candidates))], nil
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
