package sheet

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
)

// blank is the space left for an answer, escaped so Markdown does not read
// it as a thematic break.
var blank = strings.Repeat(`\_`, 10)

// Markdown writes the sheet as Markdown. With answers set, an answer key
// follows the questions.
func (s *Sheet) Markdown(w io.Writer, answers bool) error {
	var b bytes.Buffer
	if s.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", s.Title)
	}
	for i, q := range s.Questions {
		fmt.Fprintf(&b, "%d. %s\n\n   %s %s\n\n", i+1, q.Text, blank, q.Hint)
	}
	if answers {
		b.WriteString("## Answers\n\n")
		for i, q := range s.Questions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, answerOf(q.Answer))
		}
	}
	_, err := w.Write(b.Bytes())
	return err
}

// HTML writes the sheet as an HTML fragment, converted from its Markdown
// form.
func (s *Sheet) HTML(w io.Writer, answers bool) error {
	var md bytes.Buffer
	if err := s.Markdown(&md, answers); err != nil {
		return err
	}
	return goldmark.Convert(md.Bytes(), w)
}

// LaTeX writes the sheet as a LaTeX fragment. Questions are expected to be
// generated in LaTeX style, i.e. with siunitx macros for quantities.
func (s *Sheet) LaTeX(w io.Writer, answers bool) error {
	var b bytes.Buffer
	if s.Title != "" {
		fmt.Fprintf(&b, "\\section*{%s}\n\n", latexEscaper.Replace(s.Title))
	}
	b.WriteString("\\begin{enumerate}\n")
	for _, q := range s.Questions {
		fmt.Fprintf(&b, "\\item %s\n\n\\hfill\\underline{\\hspace{3cm}}~%s\n", q.Text, q.Hint)
	}
	b.WriteString("\\end{enumerate}\n")
	if answers {
		b.WriteString("\n\\subsection*{Answers}\n\n\\begin{enumerate}\n")
		for _, q := range s.Questions {
			fmt.Fprintf(&b, "\\item %s\n", answerOf(q.Answer))
		}
		b.WriteString("\\end{enumerate}\n")
	}
	_, err := w.Write(b.Bytes())
	return err
}

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`, `%`, `\%`, `$`, `\$`, `#`, `\#`, `_`, `\_`, `{`, `\{`, `}`, `\}`,
)

func answerOf(a string) string {
	if a == "" {
		return "–"
	}
	return a
}
