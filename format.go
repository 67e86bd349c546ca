package classcss

import (
	"fmt"
	"sort"
	"strings"
)

// noStylesSentinel is returned in place of an empty rule when no curated
// property survives filtering. Diagnostics compare against it verbatim.
const noStylesSentinel = "/* No CSS styles were generated. Check your class names. */"

// allowedProperties is the curated subset of computed properties worth
// showing to a reader: layout, box model, typography, color, flexbox,
// grid, and transform/animation. Everything else the resolver reports is
// dropped.
var allowedProperties = map[string]bool{
	// Layout
	"display":    true,
	"position":   true,
	"top":        true,
	"right":      true,
	"bottom":     true,
	"left":       true,
	"z-index":    true,
	"float":      true,
	"clear":      true,
	"visibility": true,
	"overflow":   true,
	"overflow-x": true,
	"overflow-y": true,
	"box-sizing": true,

	// Box model
	"width":          true,
	"height":         true,
	"min-width":      true,
	"min-height":     true,
	"max-width":      true,
	"max-height":     true,
	"margin":         true,
	"margin-top":     true,
	"margin-right":   true,
	"margin-bottom":  true,
	"margin-left":    true,
	"padding":        true,
	"padding-top":    true,
	"padding-right":  true,
	"padding-bottom": true,
	"padding-left":   true,
	"border":         true,
	"border-width":   true,
	"border-style":   true,
	"border-color":   true,
	"border-radius":  true,
	"box-shadow":     true,

	// Typography
	"font-family":     true,
	"font-size":       true,
	"font-style":      true,
	"font-weight":     true,
	"letter-spacing":  true,
	"line-height":     true,
	"text-align":      true,
	"text-decoration": true,
	"text-transform":  true,
	"white-space":     true,
	"vertical-align":  true,

	// Color
	"color":               true,
	"background-color":    true,
	"background-image":    true,
	"background-position": true,
	"background-repeat":   true,
	"background-size":     true,
	"opacity":             true,

	// Flexbox
	"flex":            true,
	"flex-basis":      true,
	"flex-direction":  true,
	"flex-grow":       true,
	"flex-shrink":     true,
	"flex-wrap":       true,
	"align-content":   true,
	"align-items":     true,
	"align-self":      true,
	"justify-content": true,
	"gap":             true,
	"order":           true,

	// Grid
	"grid-template-columns": true,
	"grid-template-rows":    true,
	"grid-column":           true,
	"grid-row":              true,

	// Transform / animation
	"transform":  true,
	"transition": true,
	"animation":  true,
	"cursor":     true,
}

// propertyDefaults lists known default values per property. A computed
// value equal to any of its defaults is suppressed from the output.
// Several properties carry multiple spellings because engines report
// defaults differently ("0px" vs "0", "400" vs "normal").
var propertyDefaults = map[string][]string{
	"display":    {"block", "inline"},
	"position":   {"static"},
	"top":        {"auto"},
	"right":      {"auto"},
	"bottom":     {"auto"},
	"left":       {"auto"},
	"z-index":    {"auto"},
	"float":      {"none"},
	"clear":      {"none"},
	"visibility": {"visible"},
	"overflow":   {"visible"},
	"overflow-x": {"visible"},
	"overflow-y": {"visible"},
	"box-sizing": {"content-box"},

	"width":          {"auto"},
	"height":         {"auto"},
	"min-width":      {"auto", "0px"},
	"min-height":     {"auto", "0px"},
	"max-width":      {"none"},
	"max-height":     {"none"},
	"margin":         {"0px", "0"},
	"margin-top":     {"0px", "0"},
	"margin-right":   {"0px", "0"},
	"margin-bottom":  {"0px", "0"},
	"margin-left":    {"0px", "0"},
	"padding":        {"0px", "0"},
	"padding-top":    {"0px", "0"},
	"padding-right":  {"0px", "0"},
	"padding-bottom": {"0px", "0"},
	"padding-left":   {"0px", "0"},
	"border":         {"none", "0px none rgb(0, 0, 0)"},
	"border-width":   {"0px", "0"},
	"border-style":   {"none"},
	"border-color":   {"rgb(0, 0, 0)"},
	"border-radius":  {"0px", "0"},
	"box-shadow":     {"none"},

	"font-size":       {"medium"},
	"font-style":      {"normal"},
	"font-weight":     {"400", "normal"},
	"letter-spacing":  {"normal"},
	"line-height":     {"normal"},
	"text-align":      {"start", "left"},
	"text-decoration": {"none", "none solid rgb(0, 0, 0)"},
	"text-transform":  {"none"},
	"white-space":     {"normal"},
	"vertical-align":  {"baseline"},

	"color":               {"rgb(0, 0, 0)", "#000000", "black"},
	"background-color":    {"rgba(0, 0, 0, 0)", "transparent"},
	"background-image":    {"none"},
	"background-position": {"0% 0%"},
	"background-repeat":   {"repeat"},
	"background-size":     {"auto"},
	"opacity":             {"1"},

	"flex":            {"0 1 auto"},
	"flex-basis":      {"auto"},
	"flex-direction":  {"row"},
	"flex-grow":       {"0"},
	"flex-shrink":     {"1"},
	"flex-wrap":       {"nowrap"},
	"align-content":   {"normal", "stretch"},
	"align-items":     {"normal", "stretch"},
	"align-self":      {"auto"},
	"justify-content": {"normal", "flex-start"},
	"gap":             {"normal", "0px"},
	"order":           {"0"},

	"grid-template-columns": {"none"},
	"grid-template-rows":    {"none"},
	"grid-column":           {"auto", "auto / auto"},
	"grid-row":              {"auto", "auto / auto"},

	"transform":  {"none"},
	"transition": {"none", "all 0s ease 0s"},
	"animation":  {"none", "none 0s ease 0s 1 normal none running"},
	"cursor":     {"auto"},
}

// formatCSS filters the computed property map down to meaningful
// declarations and renders them as a single .element rule. Lines are
// sorted lexicographically by the full rendered line, so equal property
// names tie-break on value ordering.
func formatCSS(computed map[string]string) string {
	lines := make([]string, 0, len(computed))
	for name, value := range computed {
		if !allowedProperties[name] {
			continue
		}
		if isDiscardedValue(value) || isDefaultValue(name, value) {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s: %s;", name, value))
	}
	if len(lines) == 0 {
		return noStylesSentinel
	}
	sort.Strings(lines)
	return ".element {\n" + strings.Join(lines, "\n") + "\n}"
}

// isDiscardedValue reports values carrying no information: empty strings
// and the CSS-wide keywords that defer to some other source.
func isDiscardedValue(value string) bool {
	switch value {
	case "", "initial", "inherit", "unset":
		return true
	}
	return false
}

func isDefaultValue(name, value string) bool {
	for _, def := range propertyDefaults[name] {
		if value == def {
			return true
		}
	}
	return false
}
