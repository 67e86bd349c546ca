package classcss

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCSSScenario(t *testing.T) {
	computed := map[string]string{
		"background-color": "rgb(59, 130, 246)",
		"color":            "rgb(255, 255, 255)",
		"padding":          "16px",
		"margin":           "0px",
		"display":          "block",
		"position":         "static",
		"opacity":          "1",
	}

	want := ".element {\n" +
		"  background-color: rgb(59, 130, 246);\n" +
		"  color: rgb(255, 255, 255);\n" +
		"  padding: 16px;\n" +
		"}"
	assert.Equal(t, want, formatCSS(computed))
}

func TestFormatCSSDefaultSuppression(t *testing.T) {
	tests := []struct {
		name     string
		property string
		value    string
		visible  bool
	}{
		{"margin default px", "margin", "0px", false},
		{"margin default bare zero", "margin", "0", false},
		{"margin non-default", "margin", "8px", true},
		{"font-weight numeric default", "font-weight", "400", false},
		{"font-weight keyword default", "font-weight", "normal", false},
		{"font-weight bold", "font-weight", "700", true},
		{"color black default", "color", "rgb(0, 0, 0)", false},
		{"color non-default", "color", "rgb(255, 0, 0)", true},
		{"background transparent default", "background-color", "rgba(0, 0, 0, 0)", false},
		{"opacity default", "opacity", "1", false},
		{"opacity non-default", "opacity", "0.5", true},
		{"display block default", "display", "block", false},
		{"display flex", "display", "flex", true},
		{"position static default", "position", "static", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			css := formatCSS(map[string]string{tt.property: tt.value})
			if tt.visible {
				assert.Contains(t, css, tt.property+": "+tt.value+";")
			} else {
				assert.Equal(t, noStylesSentinel, css)
			}
		})
	}
}

func TestFormatCSSDropsMeaninglessValues(t *testing.T) {
	css := formatCSS(map[string]string{
		"color":      "",
		"display":    "initial",
		"position":   "inherit",
		"font-size":  "unset",
		"margin-top": "4px",
	})
	assert.Equal(t, ".element {\n  margin-top: 4px;\n}", css)
}

func TestFormatCSSDropsUncuratedProperties(t *testing.T) {
	css := formatCSS(map[string]string{
		"-webkit-line-clamp":  "2",
		"scrollbar-gutter":    "stable",
		"text-emphasis-style": "dot",
	})
	assert.Equal(t, noStylesSentinel, css)
}

func TestFormatCSSSortsByFullLine(t *testing.T) {
	css := formatCSS(map[string]string{
		"padding":    "16px",
		"color":      "rgb(255, 255, 255)",
		"display":    "flex",
		"margin":     "8px",
		"gap":        "8px",
		"flex-wrap":  "wrap",
		"overflow-x": "auto",
	})

	lines := strings.Split(css, "\n")
	assert.Equal(t, ".element {", lines[0])
	assert.Equal(t, "}", lines[len(lines)-1])

	body := lines[1 : len(lines)-1]
	for i := 1; i < len(body); i++ {
		assert.LessOrEqual(t, body[i-1], body[i], "lines must be sorted")
	}
}

func TestFormatCSSEmptyMapYieldsSentinel(t *testing.T) {
	assert.Equal(t, noStylesSentinel, formatCSS(map[string]string{}))
	assert.Equal(t, noStylesSentinel, formatCSS(nil))
}
