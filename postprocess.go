package wording

import "regexp"

var digitSpaceWord = regexp.MustCompile(`(\p{Nd}) ([\p{L}\p{N}_]+)`)

// InsertNonBreakingSpaces replaces every space between a digit and a
// following word by nbsp, keeping numbers and their units together.
func InsertNonBreakingSpaces(sentence, nbsp string) string {
	return digitSpaceWord.ReplaceAllString(sentence, "${1}"+nbsp+"${2}")
}

// PostProcess applies cosmetic passes to a filled-in wording. The marker for
// non-breaking spaces depends on the engine's output style.
func (e *Engine) PostProcess(sentence string) string {
	return InsertNonBreakingSpaces(sentence, e.printer().Style.NonBreakingSpace())
}
