package wording

import (
	"fmt"
	"strings"

	"github.com/npillmayer/wording/segment"
	"github.com/npillmayer/wording/tag"
)

// tagStyle is a combination of braces and extra braces a tag may be
// written in.
type tagStyle struct {
	braces, extra tag.Braces
}

// valueTagStyles are the styles recognized for {key=value} tags and for
// valueless unit tags.
var valueTagStyles = []tagStyle{
	{tag.Curly, tag.None},
	{tag.Angle, tag.None},
	{tag.Curly, tag.Parens},
	{tag.Curly, tag.Brackets},
}

// derivedUnits are the unit tag prefixes which are powers of a length unit.
var derivedUnits = []string{"area_unit", "volume_unit"}

// ProcessAttrValues finds {key=value} tags in a sentence, rewrites them to
// {key} and returns the values found. Tags in angle braces or with extra
// parentheses or brackets are rewritten to plain curly tags; a trailing
// punctuation mark is kept.
//
// Declaring an area or volume unit also declares the length unit of the same
// suffix, if the sentence does not declare that one itself:
//
//	"I have {nb1} {area_unit1=cm}."  =>  "I have {nb1} {area_unit1}."
//	                                     area_unit1=cm, length_unit1=cm
func ProcessAttrValues(sentence string) (string, map[string]string, error) {
	values := make(map[string]string)
	words := segment.Words(sentence)
	changed := false
	for i, w := range words {
		content, punct, ok := keyValueContent(w)
		if !ok {
			continue
		}
		key, val, err := splitKeyValue(content)
		if err != nil {
			return sentence, nil, fmt.Errorf("%w: %q", err, w)
		}
		values[key] = val
		for _, d := range derivedUnits {
			if strings.HasPrefix(key, d) {
				lkey := "length_unit" + strings.TrimPrefix(key, d)
				if _, ok := values[lkey]; !ok {
					values[lkey] = val
				}
			}
		}
		words[i] = tag.Wrap(key, tag.Curly) + punct
		changed = true
	}
	if !changed {
		return sentence, values, nil
	}
	return segment.Join(words), values, nil
}

func keyValueContent(word string) (string, string, bool) {
	for _, st := range valueTagStyles {
		content, punct, ok := tag.Content(word, st.braces, st.extra)
		if ok && strings.Contains(content, "=") {
			return content, punct, true
		}
	}
	return "", "", false
}

func splitKeyValue(content string) (string, string, error) {
	if strings.Count(content, "=") > 1 {
		return "", "", fmt.Errorf("%w: more than one '='", ErrMalformedTag)
	}
	parts := strings.SplitN(content, "=", 2)
	if parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: empty key or value", ErrMalformedTag)
	}
	return parts[0], parts[1], nil
}
