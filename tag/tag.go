package tag

import (
	"strings"
	"unicode/utf8"
)

// PunctuationMarks are the marks which may directly follow a tag.
const PunctuationMarks = ".,:;?!"

// Braces is a pair of opening and closing characters, e.g. "{}".
// The zero value None stands for "no braces".
type Braces string

// Braces in use by wording templates.
const (
	None     Braces = ""
	Curly    Braces = "{}"
	Angle    Braces = "<>"
	Pipes    Braces = "||"
	Parens   Braces = "()"
	Brackets Braces = "[]"
)

func (b Braces) open() string {
	if len(b) < 2 {
		return ""
	}
	return string(b[0])
}

func (b Braces) close() string {
	if len(b) < 2 {
		return ""
	}
	return string(b[1])
}

// IsPunctuation is true if r is one of PunctuationMarks.
func IsPunctuation(r rune) bool {
	return strings.ContainsRune(PunctuationMarks, r)
}

// Punctuation returns the trailing punctuation mark of word, or "" if word
// does not end with one.
func Punctuation(word string) string {
	if word == "" {
		return ""
	}
	if c := word[len(word)-1]; IsPunctuation(rune(c)) {
		return string(c)
	}
	return ""
}

// IsWrapped is true if word starts with the opening characters of extra and
// braces and ends with the closing characters of braces and extra, with no
// trailing punctuation.
//
//	IsWrapped("{nb1}", Curly, None)          => true
//	IsWrapped("({nb1})", Curly, Parens)      => true
//	IsWrapped("{nb1}.", Curly, None)         => false
func IsWrapped(word string, braces, extra Braces) bool {
	o := extra.open() + braces.open()
	c := braces.close() + extra.close()
	if len(word) < len(o)+len(c) {
		return false
	}
	return strings.HasPrefix(word, o) && strings.HasSuffix(word, c)
}

// IsWrappedPunct is true if word is wrapped and followed by exactly one
// punctuation mark. IsWrapped and IsWrappedPunct never hold both for the
// same word.
func IsWrappedPunct(word string, braces, extra Braces) bool {
	if Punctuation(word) == "" {
		return false
	}
	return IsWrapped(word[:len(word)-1], braces, extra)
}

// IsWrappedAny is the punctuation-agnostic variant: it holds if either
// IsWrapped or IsWrappedPunct holds.
func IsWrappedAny(word string, braces, extra Braces) bool {
	return IsWrapped(word, braces, extra) || IsWrappedPunct(word, braces, extra)
}

// Unwrapped strips one leading and one trailing character from word. If
// word ends with a punctuation mark, two trailing characters are stripped
// (closing brace and mark).
//
// Unwrapped does not check that word is actually wrapped.
func Unwrapped(word string) string {
	cut := 1
	if Punctuation(word) != "" {
		cut = 2
	}
	if len(word) < 1+cut {
		return ""
	}
	return word[1 : len(word)-cut]
}

// Wrap puts word between the two characters of braces.
func Wrap(word string, braces Braces) string {
	return braces.open() + word + braces.close()
}

// WrapWith is Wrap with either side overridden by a non-empty string.
func WrapWith(word string, braces Braces, open, close string) string {
	if open == "" {
		open = braces.open()
	}
	if close == "" {
		close = braces.close()
	}
	return open + word + close
}

// Content extracts the inner text of a tag wrapped in braces and extra.
// It returns the content, the trailing punctuation mark (if any) and
// whether word is such a tag at all.
//
//	Content("({length_unit=cm}).", Curly, Parens) => "length_unit=cm", ".", true
func Content(word string, braces, extra Braces) (content string, punct string, ok bool) {
	if !IsWrappedAny(word, braces, extra) {
		return "", "", false
	}
	core := word
	if IsWrappedPunct(word, braces, extra) {
		punct = word[len(word)-1:]
		core = word[:len(word)-1]
	}
	o := len(extra.open() + braces.open())
	c := len(braces.close() + extra.close())
	return core[o : len(core)-c], punct, true
}

// IsUnit is true for a (possibly punctuated) "{…_unit}" tag.
func IsUnit(word string) bool {
	if !IsWrappedAny(word, Curly, None) {
		return false
	}
	return strings.HasSuffix(Unwrapped(word), "_unit")
}

// IsUnitN is true for a (possibly punctuated) "{…_unitX}" tag, where X is a
// single character, as in "{area_unit2}".
func IsUnitN(word string) bool {
	if !IsWrappedAny(word, Curly, None) {
		return false
	}
	return HasUnitSuffixN(Unwrapped(word))
}

// HasUnitSuffix is true if name ends with "_unit" or "_unit" plus one
// character.
func HasUnitSuffix(name string) bool {
	return strings.HasSuffix(name, "_unit") || HasUnitSuffixN(name)
}

// HasUnitSuffixN is true if name ends with "_unit" plus one character.
func HasUnitSuffixN(name string) bool {
	_, size := utf8.DecodeLastRuneInString(name)
	if size == 0 {
		return false
	}
	return strings.HasSuffix(name[:len(name)-size], "_unit")
}
