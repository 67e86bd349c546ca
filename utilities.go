package classcss

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// UtilityResolver is a static, table-driven style oracle covering a
// practical subset of common utility classes. It exists so the pipeline
// works out of the box without a rendering engine; exact fidelity to any
// particular framework version is not a goal. Unknown tokens resolve to
// nothing and state/responsive variant prefixes are stripped, reporting
// the base declaration.
type UtilityResolver struct{}

// NewUtilityResolver returns the built-in static utility engine.
func NewUtilityResolver() *UtilityResolver {
	return &UtilityResolver{}
}

// Resolve maps each whitespace-separated token onto its declarations.
// Later tokens win on conflicting properties, mirroring how utility
// frameworks order their generated rules. It never fails.
func (r *UtilityResolver) Resolve(classes string) (map[string]string, error) {
	props := make(map[string]string)
	for _, token := range strings.Fields(classes) {
		for {
			loc := variantPrefixPattern.FindStringIndex(token)
			if loc == nil {
				break
			}
			token = token[loc[1]:]
		}
		resolveToken(token, props)
	}
	return props, nil
}

type prefixRule struct {
	prefix  string
	resolve func(rest string, props map[string]string) bool
}

// prefixRules dispatch dynamic utility families. Order matters: compound
// prefixes come before their shorter cousins, and an entry that fails to
// parse its suffix passes the token to the next matching entry.
var prefixRules = []prefixRule{
	{"min-w-", func(rest string, p map[string]string) bool { return setSize("min-width", "100vw", rest, p) }},
	{"min-h-", func(rest string, p map[string]string) bool { return setSize("min-height", "100vh", rest, p) }},
	{"max-w-", func(rest string, p map[string]string) bool { return setSize("max-width", "100vw", rest, p) }},
	{"max-h-", func(rest string, p map[string]string) bool { return setSize("max-height", "100vh", rest, p) }},
	{"grid-cols-", resolveGridColumns},
	{"grid-rows-", resolveGridRows},
	{"w-", func(rest string, p map[string]string) bool { return setSize("width", "100vw", rest, p) }},
	{"h-", func(rest string, p map[string]string) bool { return setSize("height", "100vh", rest, p) }},
	{"p-", spacingSetter("padding")},
	{"px-", axisSetter("padding-left", "padding-right")},
	{"py-", axisSetter("padding-top", "padding-bottom")},
	{"pt-", spacingSetter("padding-top")},
	{"pr-", spacingSetter("padding-right")},
	{"pb-", spacingSetter("padding-bottom")},
	{"pl-", spacingSetter("padding-left")},
	{"m-", spacingSetter("margin")},
	{"mx-", axisSetter("margin-left", "margin-right")},
	{"my-", axisSetter("margin-top", "margin-bottom")},
	{"mt-", spacingSetter("margin-top")},
	{"mr-", spacingSetter("margin-right")},
	{"mb-", spacingSetter("margin-bottom")},
	{"ml-", spacingSetter("margin-left")},
	{"gap-", spacingSetter("gap")},
	{"top-", spacingSetter("top")},
	{"right-", spacingSetter("right")},
	{"bottom-", spacingSetter("bottom")},
	{"left-", spacingSetter("left")},
	{"z-", resolveZIndex},
	{"order-", resolveOrder},
	{"opacity-", resolveOpacity},
	{"leading-", resolveLeading},
	{"text-", resolveText},
	{"bg-", resolveBackground},
	{"border-", resolveBorder},
}

func resolveToken(token string, props map[string]string) {
	if decls, ok := staticUtilities[token]; ok {
		for name, value := range decls {
			props[name] = value
		}
		return
	}
	for _, rule := range prefixRules {
		if rest, ok := strings.CutPrefix(token, rule.prefix); ok && rest != "" {
			if rule.resolve(rest, props) {
				return
			}
		}
	}
}

func spacingSetter(property string) func(string, map[string]string) bool {
	return func(rest string, props map[string]string) bool {
		value, ok := spacingValue(rest)
		if !ok {
			return false
		}
		props[property] = value
		return true
	}
}

func axisSetter(first, second string) func(string, map[string]string) bool {
	return func(rest string, props map[string]string) bool {
		value, ok := spacingValue(rest)
		if !ok {
			return false
		}
		props[first] = value
		props[second] = value
		return true
	}
}

// spacingValue maps a spacing-scale suffix onto a pixel length. The scale
// step is 4px, with "px" meaning one pixel and "auto" passed through.
func spacingValue(suffix string) (string, bool) {
	switch suffix {
	case "px":
		return "1px", true
	case "auto":
		return "auto", true
	case "full":
		return "100%", true
	}
	n, err := strconv.ParseFloat(suffix, 64)
	if err != nil || n < 0 {
		return "", false
	}
	return formatPixels(n * 4), true
}

func formatPixels(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%dpx", int(v))
	}
	return fmt.Sprintf("%gpx", v)
}

// setSize handles sizing suffixes: the spacing scale plus fractions,
// keywords, and the viewport unit for "screen".
func setSize(property, screen, suffix string, props map[string]string) bool {
	switch suffix {
	case "full":
		props[property] = "100%"
		return true
	case "screen":
		props[property] = screen
		return true
	case "auto":
		props[property] = "auto"
		return true
	case "min":
		props[property] = "min-content"
		return true
	case "max":
		props[property] = "max-content"
		return true
	case "fit":
		props[property] = "fit-content"
		return true
	case "none":
		if strings.HasPrefix(property, "max-") {
			props[property] = "none"
			return true
		}
		return false
	}
	if num, den, ok := strings.Cut(suffix, "/"); ok {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return false
		}
		props[property] = formatPercent(n / d * 100)
		return true
	}
	value, ok := spacingValue(suffix)
	if !ok {
		return false
	}
	props[property] = value
	return true
}

func formatPercent(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d%%", int(v))
	}
	return fmt.Sprintf("%s%%", strconv.FormatFloat(v, 'f', 6, 64))
}

func resolveZIndex(rest string, props map[string]string) bool {
	if rest == "auto" {
		props["z-index"] = "auto"
		return true
	}
	if _, err := strconv.Atoi(rest); err != nil {
		return false
	}
	props["z-index"] = rest
	return true
}

func resolveOrder(rest string, props map[string]string) bool {
	switch rest {
	case "first":
		props["order"] = "-9999"
		return true
	case "last":
		props["order"] = "9999"
		return true
	case "none":
		props["order"] = "0"
		return true
	}
	if _, err := strconv.Atoi(rest); err != nil {
		return false
	}
	props["order"] = rest
	return true
}

func resolveOpacity(rest string, props map[string]string) bool {
	n, err := strconv.ParseFloat(rest, 64)
	if err != nil || n < 0 || n > 100 {
		return false
	}
	props["opacity"] = strconv.FormatFloat(n/100, 'g', -1, 64)
	return true
}

var leadingScale = map[string]string{
	"none":    "1",
	"tight":   "1.25",
	"snug":    "1.375",
	"normal":  "1.5",
	"relaxed": "1.625",
	"loose":   "2",
}

func resolveLeading(rest string, props map[string]string) bool {
	if value, ok := leadingScale[rest]; ok {
		props["line-height"] = value
		return true
	}
	value, ok := spacingValue(rest)
	if !ok {
		return false
	}
	props["line-height"] = value
	return true
}

var fontSizes = map[string]string{
	"xs":   "12px",
	"sm":   "14px",
	"base": "16px",
	"lg":   "18px",
	"xl":   "20px",
	"2xl":  "24px",
	"3xl":  "30px",
	"4xl":  "36px",
	"5xl":  "48px",
	"6xl":  "60px",
	"7xl":  "72px",
	"8xl":  "96px",
	"9xl":  "128px",
}

// resolveText disambiguates the text- family: sizes, then colors.
// Alignment keywords live in the static table.
func resolveText(rest string, props map[string]string) bool {
	if size, ok := fontSizes[rest]; ok {
		props["font-size"] = size
		return true
	}
	color, ok := colorValue(rest)
	if !ok {
		return false
	}
	props["color"] = color
	return true
}

func resolveBackground(rest string, props map[string]string) bool {
	color, ok := colorValue(rest)
	if !ok {
		return false
	}
	props["background-color"] = color
	return true
}

// resolveBorder handles border-<width> and border-<color>; the bare
// "border" token and style keywords live in the static table.
func resolveBorder(rest string, props map[string]string) bool {
	if n, err := strconv.Atoi(rest); err == nil && n >= 0 {
		props["border-width"] = fmt.Sprintf("%dpx", n)
		props["border-style"] = "solid"
		return true
	}
	color, ok := colorValue(rest)
	if !ok {
		return false
	}
	props["border-color"] = color
	return true
}

func resolveGridColumns(rest string, props map[string]string) bool {
	return setGridTemplate("grid-template-columns", rest, props)
}

func resolveGridRows(rest string, props map[string]string) bool {
	return setGridTemplate("grid-template-rows", rest, props)
}

func setGridTemplate(property, rest string, props map[string]string) bool {
	if rest == "none" {
		props[property] = "none"
		return true
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return false
	}
	props[property] = fmt.Sprintf("repeat(%d, minmax(0, 1fr))", n)
	return true
}
