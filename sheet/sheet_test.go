package sheet

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wording/exercise"
	"github.com/npillmayer/wording/internal/testdata"
	"github.com/npillmayer/wording/quantity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func buildTestSheet(t *testing.T, style quantity.Style) *Sheet {
	spec, err := Load(testdata.Path("sheet.yaml"))
	require.NoError(t, err)
	g := &exercise.Generator{
		Printer:  quantity.NewPrinter(language.English, style),
		Currency: "€",
	}
	s, err := Build(g, spec)
	require.NoError(t, err)
	return s
}

func TestLoad(t *testing.T) {
	spec, err := Load(testdata.Path("sheet.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Units and money", spec.Title)
	require.Len(t, spec.Items, 3)
	assert.Equal(t, "cube-volume", spec.Items[0].Problem.ID)
	assert.Equal(t, 2, spec.Items[0].Count)
	assert.Equal(t, 1, spec.Items[1].Count)
	assert.Equal(t, "fence", spec.Items[2].Problem.ID)
}

func TestReadInvalid(t *testing.T) {
	_, err := Read(strings.NewReader("items:\n  - count: 2\n"), ".")
	assert.True(t, errors.Is(err, ErrInvalidSheet))
	_, err = Read(strings.NewReader("items:\n  - file: nowhere.yaml\n"), ".")
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	s := buildTestSheet(t, quantity.Plain)
	require.Len(t, s.Questions, 4)
	assert.NotEqual(t, s.Questions[0].Seed, s.Questions[1].Seed)
	fence := s.Questions[3]
	assert.Contains(t, fence.Text, "A fence is 12\u00a0m long.")
	assert.Equal(t, "m", fence.Hint)
	again := buildTestSheet(t, quantity.Plain)
	for i := range s.Questions {
		assert.Equal(t, s.Questions[i].Text, again.Questions[i].Text)
		assert.Equal(t, s.Questions[i].Answer, again.Questions[i].Answer)
	}
}

func TestMarkdown(t *testing.T) {
	s := buildTestSheet(t, quantity.Plain)
	var b bytes.Buffer
	require.NoError(t, s.Markdown(&b, false))
	md := b.String()
	assert.True(t, strings.HasPrefix(md, "# Units and money\n"))
	assert.Contains(t, md, "4. A fence is 12")
	assert.NotContains(t, md, "## Answers")
	b.Reset()
	require.NoError(t, s.Markdown(&b, true))
	assert.Contains(t, b.String(), "## Answers")
}

func TestHTML(t *testing.T) {
	s := buildTestSheet(t, quantity.Plain)
	var b bytes.Buffer
	require.NoError(t, s.HTML(&b, true))
	html := b.String()
	assert.Contains(t, html, "<h1>Units and money</h1>")
	assert.Contains(t, html, "<h2>Answers</h2>")
	assert.Equal(t, 2, strings.Count(html, "<ol>"))
	assert.NotContains(t, html, "<hr")
}

func TestLaTeX(t *testing.T) {
	s := buildTestSheet(t, quantity.LaTeX)
	var b bytes.Buffer
	require.NoError(t, s.LaTeX(&b, false))
	tex := b.String()
	assert.Contains(t, tex, `\section*{Units and money}`)
	assert.Equal(t, 4, strings.Count(tex, `\item `))
	assert.Contains(t, tex, `\SI{12}{m}`)
	assert.Contains(t, tex, `\end{enumerate}`)
}

func TestLaTeXEscapesTitle(t *testing.T) {
	s := &Sheet{Title: "Costs & 10% off"}
	var b bytes.Buffer
	require.NoError(t, s.LaTeX(&b, false))
	assert.Contains(t, b.String(), `\section*{Costs \& 10\% off}`)
}
