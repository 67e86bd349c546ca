package render

import (
	"regexp"
	"strings"
)

var (
	declarationLine = regexp.MustCompile(`^(\s*)([a-zA-Z-]+)(:\s*)(.*?)(;?\s*)$`)
	commentLine     = regexp.MustCompile(`^\s*/\*.*\*/\s*$`)
)

// HighlightCSS colors a formatted CSS block line by line: selector and
// braces, property names, values, comments. When useColors is false the
// input is returned unchanged.
func HighlightCSS(css string, useColors bool) string {
	if !useColors {
		return css
	}
	lines := strings.Split(css, "\n")
	for i, line := range lines {
		lines[i] = highlightLine(line)
	}
	return strings.Join(lines, "\n")
}

func highlightLine(line string) string {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return line
	case commentLine.MatchString(line):
		return StyleComment.Render(line)
	case strings.HasSuffix(trimmed, "{") || trimmed == "}":
		return StyleSelector.Render(line)
	}
	m := declarationLine.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	return m[1] + StyleProperty.Render(m[2]) + m[3] + StyleValue.Render(m[4]) + m[5]
}
