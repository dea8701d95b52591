package wording

import (
	"strings"

	"github.com/npillmayer/wording/segment"
	"github.com/npillmayer/wording/tag"
)

const hintPrefix = "hint:"

// CutOffHint removes a trailing hint block "|hint:…|" from a sentence and
// returns the rest of the sentence together with the hint's content.
//
// Only the last word of the sentence is inspected. If it is not a hint
// block with non-empty content, the sentence is returned unchanged and the
// hint is empty. Hint blocks in other positions are left as they are.
func CutOffHint(sentence string) (string, string) {
	words := segment.Words(sentence)
	if len(words) == 0 {
		return sentence, ""
	}
	last := words[len(words)-1]
	if !tag.IsWrapped(last, tag.Pipes, tag.None) {
		return sentence, ""
	}
	content := tag.Unwrapped(last)
	if !strings.HasPrefix(content, hintPrefix) || len(content) <= len(hintPrefix) {
		return sentence, ""
	}
	return segment.Join(words[:len(words)-1]), content[len(hintPrefix):]
}
