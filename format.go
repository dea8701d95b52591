package wording

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// layoutKeywords are brace contents which look like tags but are names of
// typesetting environments.
var layoutKeywords = map[string]bool{
	"center":      true,
	"tabular":     true,
	"tikzpicture": true,
	"minipage":    true,
	"multicols":   true,
	"enumerate":   true,
	"itemize":     true,
	"array":       true,
	"flushleft":   true,
	"flushright":  true,
}

// braceGroup is an innermost pair of braces in a sentence.
type braceGroup struct {
	start, end int // s[start] is '{', s[end-1] is '}'
	content    string
	isTag      bool
}

// scanBraceGroups finds the innermost brace groups of a sentence and tells
// tags from structural groups. A group is a tag if its content is an
// identifier which is not a layout keyword, and it is not an argument of a
// control word. The arguments of a control word are the groups directly
// following it, one after the other (\SI{2}{cm}, \begin{tabular}{cc}).
func scanBraceGroups(s string) []braceGroup {
	var groups []braceGroup
	open, argsEnd := -1, -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			open = i
		case '}':
			if open < 0 {
				continue
			}
			g := braceGroup{start: open, end: i + 1, content: s[open+1 : i]}
			isArg := afterControlWord(s, open) || open == argsEnd
			if isArg {
				argsEnd = g.end
			}
			g.isTag = !isArg && isIdentifier(g.content) && !layoutKeywords[g.content]
			groups = append(groups, g)
			open = -1
		}
	}
	return groups
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// afterControlWord is true if position pos of s is preceded by a control
// word like \begin.
func afterControlWord(s string, pos int) bool {
	i := pos - 1
	for i >= 0 && ('a' <= s[i] && s[i] <= 'z' || 'A' <= s[i] && s[i] <= 'Z') {
		i--
	}
	return i >= 0 && i < pos-1 && s[i] == '\\'
}

// extractTags returns the identifiers of all tags of a sentence, in order of
// first appearance.
func extractTags(sentence string) []string {
	list := arraylist.New()
	for _, g := range scanBraceGroups(sentence) {
		if g.isTag && !list.Contains(g.content) {
			list.Add(g.content)
		}
	}
	tags := make([]string, 0, list.Size())
	for _, t := range list.Values() {
		tags = append(tags, t.(string))
	}
	return tags
}

// escapeStructural doubles every brace of a sentence which does not delimit
// a tag, so that Format will print it literally.
func escapeStructural(sentence string) string {
	delim := make(map[int]bool)
	for _, g := range scanBraceGroups(sentence) {
		if g.isTag {
			delim[g.start] = true
			delim[g.end-1] = true
		}
	}
	var b strings.Builder
	b.Grow(len(sentence) + 8)
	for i := 0; i < len(sentence); i++ {
		c := sentence[i]
		b.WriteByte(c)
		if (c == '{' || c == '}') && !delim[i] {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Format substitutes values for the {name} placeholders of a sentence.
// "{{" and "}}" stand for literal braces.
//
//	Format("{a} {{b}}", map[string]string{"a": "x"})  =>  "x {b}"
//
// A placeholder without a value and an unmatched brace are errors.
func Format(sentence string, values map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(sentence))
	for i := 0; i < len(sentence); i++ {
		c := sentence[i]
		switch {
		case c == '{' && i+1 < len(sentence) && sentence[i+1] == '{':
			b.WriteByte('{')
			i++
		case c == '}' && i+1 < len(sentence) && sentence[i+1] == '}':
			b.WriteByte('}')
			i++
		case c == '{':
			j := strings.IndexByte(sentence[i+1:], '}')
			if j < 0 {
				return "", fmt.Errorf("%w: unmatched '{' at position %d", ErrFormat, i)
			}
			name := sentence[i+1 : i+1+j]
			v, ok := values[name]
			if !ok {
				return "", fmt.Errorf("%w: %w", ErrFormat, missing(name))
			}
			b.WriteString(v)
			i += j + 1
		case c == '}':
			return "", fmt.Errorf("%w: single '}' at position %d", ErrFormat, i)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
