package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classcss/classcss"
)

func TestHighlightCSSNoColorsIsIdentity(t *testing.T) {
	css := ".element {\n  padding: 16px;\n}"
	assert.Equal(t, css, HighlightCSS(css, false))
}

func TestHighlightCSSKeepsStructure(t *testing.T) {
	css := ".element {\n  padding: 16px;\n  color: rgb(255, 255, 255);\n}"
	highlighted := HighlightCSS(css, true)

	// Styling may inject escape codes but never drops content or lines.
	assert.Equal(t, len(strings.Split(css, "\n")), len(strings.Split(highlighted, "\n")))
	for _, fragment := range []string{"padding", "16px", "color", "rgb(255, 255, 255)"} {
		assert.Contains(t, stripped(highlighted), fragment)
	}
}

func TestHighlightCSSCommentLine(t *testing.T) {
	comment := "/* No CSS styles were generated. Check your class names. */"
	highlighted := HighlightCSS(comment, true)
	assert.Contains(t, stripped(highlighted), "No CSS styles were generated")
}

// stripped removes ANSI escape sequences so assertions can check content.
func stripped(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestReporterPrintsCSSAndWarnings(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false, false)

	r.PrintResult(classcss.Result{
		CSS:      ".element {\n  padding: 16px;\n}",
		Warnings: []string{"some class names are unusually long"},
	})

	out := buf.String()
	assert.Contains(t, out, ".element {")
	assert.Contains(t, out, "Warning: some class names are unusually long")
}

func TestReporterPrintsError(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false, false)

	r.PrintResult(classcss.Result{Err: "input contains potentially unsafe content and cannot be converted"})

	out := buf.String()
	require.Contains(t, out, "Error:")
	assert.Contains(t, out, "unsafe content")
	assert.NotContains(t, out, ".element")
}

func TestReporterEmptyResultPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, false, false).PrintResult(classcss.Result{})
	assert.Empty(t, buf.String())
}

func TestReporterCacheStatus(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, false, false).PrintCacheStatus(classcss.CacheStatus{Size: 3, Capacity: 50})
	assert.Equal(t, "cache: 3/50 entries\n", buf.String())
}
