package classcss

import "strings"

// staticUtilities maps fixed-name utility classes onto their declarations.
var staticUtilities = map[string]map[string]string{
	// Display
	"block":        {"display": "block"},
	"inline-block": {"display": "inline-block"},
	"inline":       {"display": "inline"},
	"flex":         {"display": "flex"},
	"inline-flex":  {"display": "inline-flex"},
	"grid":         {"display": "grid"},
	"inline-grid":  {"display": "inline-grid"},
	"hidden":       {"display": "none"},

	// Position
	"static":   {"position": "static"},
	"relative": {"position": "relative"},
	"absolute": {"position": "absolute"},
	"fixed":    {"position": "fixed"},
	"sticky":   {"position": "sticky"},

	// Visibility and overflow
	"visible":          {"visibility": "visible"},
	"invisible":        {"visibility": "hidden"},
	"overflow-auto":    {"overflow": "auto"},
	"overflow-hidden":  {"overflow": "hidden"},
	"overflow-visible": {"overflow": "visible"},
	"overflow-scroll":  {"overflow": "scroll"},
	"overflow-x-auto":  {"overflow-x": "auto"},
	"overflow-y-auto":  {"overflow-y": "auto"},

	// Flexbox
	"flex-row":         {"flex-direction": "row"},
	"flex-row-reverse": {"flex-direction": "row-reverse"},
	"flex-col":         {"flex-direction": "column"},
	"flex-col-reverse": {"flex-direction": "column-reverse"},
	"flex-wrap":        {"flex-wrap": "wrap"},
	"flex-nowrap":      {"flex-wrap": "nowrap"},
	"flex-1":           {"flex": "1 1 0%"},
	"flex-auto":        {"flex": "1 1 auto"},
	"flex-initial":     {"flex": "0 1 auto"},
	"flex-none":        {"flex": "none"},
	"grow":             {"flex-grow": "1"},
	"grow-0":           {"flex-grow": "0"},
	"shrink":           {"flex-shrink": "1"},
	"shrink-0":         {"flex-shrink": "0"},
	"items-start":      {"align-items": "flex-start"},
	"items-center":     {"align-items": "center"},
	"items-end":        {"align-items": "flex-end"},
	"items-baseline":   {"align-items": "baseline"},
	"items-stretch":    {"align-items": "stretch"},
	"justify-start":    {"justify-content": "flex-start"},
	"justify-center":   {"justify-content": "center"},
	"justify-end":      {"justify-content": "flex-end"},
	"justify-between":  {"justify-content": "space-between"},
	"justify-around":   {"justify-content": "space-around"},
	"justify-evenly":   {"justify-content": "space-evenly"},
	"self-auto":        {"align-self": "auto"},
	"self-start":       {"align-self": "flex-start"},
	"self-center":      {"align-self": "center"},
	"self-end":         {"align-self": "flex-end"},
	"self-stretch":     {"align-self": "stretch"},

	// Typography
	"text-left":      {"text-align": "left"},
	"text-center":    {"text-align": "center"},
	"text-right":     {"text-align": "right"},
	"text-justify":   {"text-align": "justify"},
	"italic":         {"font-style": "italic"},
	"not-italic":     {"font-style": "normal"},
	"underline":      {"text-decoration": "underline"},
	"line-through":   {"text-decoration": "line-through"},
	"no-underline":   {"text-decoration": "none"},
	"uppercase":      {"text-transform": "uppercase"},
	"lowercase":      {"text-transform": "lowercase"},
	"capitalize":     {"text-transform": "capitalize"},
	"normal-case":    {"text-transform": "none"},
	"font-thin":      {"font-weight": "100"},
	"font-light":     {"font-weight": "300"},
	"font-normal":    {"font-weight": "400"},
	"font-medium":    {"font-weight": "500"},
	"font-semibold":  {"font-weight": "600"},
	"font-bold":      {"font-weight": "700"},
	"font-extrabold": {"font-weight": "800"},
	"font-black":     {"font-weight": "900"},
	"font-sans": {
		"font-family": `ui-sans-serif, system-ui, sans-serif`,
	},
	"font-serif": {
		"font-family": `ui-serif, Georgia, serif`,
	},
	"font-mono": {
		"font-family": `ui-monospace, SFMono-Regular, monospace`,
	},
	"tracking-tighter":    {"letter-spacing": "-0.05em"},
	"tracking-tight":      {"letter-spacing": "-0.025em"},
	"tracking-normal":     {"letter-spacing": "normal"},
	"tracking-wide":       {"letter-spacing": "0.025em"},
	"tracking-wider":      {"letter-spacing": "0.05em"},
	"tracking-widest":     {"letter-spacing": "0.1em"},
	"whitespace-normal":   {"white-space": "normal"},
	"whitespace-nowrap":   {"white-space": "nowrap"},
	"whitespace-pre":      {"white-space": "pre"},
	"whitespace-pre-wrap": {"white-space": "pre-wrap"},
	"align-baseline":      {"vertical-align": "baseline"},
	"align-top":           {"vertical-align": "top"},
	"align-middle":        {"vertical-align": "middle"},
	"align-bottom":        {"vertical-align": "bottom"},

	// Borders
	"border":        {"border-width": "1px", "border-style": "solid"},
	"border-solid":  {"border-style": "solid"},
	"border-dashed": {"border-style": "dashed"},
	"border-dotted": {"border-style": "dotted"},
	"border-none":   {"border-style": "none"},
	"rounded-none":  {"border-radius": "0px"},
	"rounded-sm":    {"border-radius": "2px"},
	"rounded":       {"border-radius": "4px"},
	"rounded-md":    {"border-radius": "6px"},
	"rounded-lg":    {"border-radius": "8px"},
	"rounded-xl":    {"border-radius": "12px"},
	"rounded-2xl":   {"border-radius": "16px"},
	"rounded-3xl":   {"border-radius": "24px"},
	"rounded-full":  {"border-radius": "9999px"},

	// Effects
	"shadow-sm":   {"box-shadow": "0 1px 2px 0 rgba(0, 0, 0, 0.05)"},
	"shadow":      {"box-shadow": "0 1px 3px 0 rgba(0, 0, 0, 0.1)"},
	"shadow-md":   {"box-shadow": "0 4px 6px -1px rgba(0, 0, 0, 0.1)"},
	"shadow-lg":   {"box-shadow": "0 10px 15px -3px rgba(0, 0, 0, 0.1)"},
	"shadow-xl":   {"box-shadow": "0 20px 25px -5px rgba(0, 0, 0, 0.1)"},
	"shadow-none": {"box-shadow": "none"},

	// Interaction
	"cursor-auto":        {"cursor": "auto"},
	"cursor-default":     {"cursor": "default"},
	"cursor-pointer":     {"cursor": "pointer"},
	"cursor-wait":        {"cursor": "wait"},
	"cursor-move":        {"cursor": "move"},
	"cursor-not-allowed": {"cursor": "not-allowed"},

	// Layout helpers
	"box-border":  {"box-sizing": "border-box"},
	"box-content": {"box-sizing": "content-box"},
	"float-left":  {"float": "left"},
	"float-right": {"float": "right"},
	"float-none":  {"float": "none"},
	"clear-left":  {"clear": "left"},
	"clear-right": {"clear": "right"},
	"clear-both":  {"clear": "both"},
	"clear-none":  {"clear": "none"},

	// Transitions
	"transition":      {"transition": "all 0.15s ease"},
	"transition-none": {"transition": "none"},
	"truncate": {
		"overflow":      "hidden",
		"text-overflow": "ellipsis",
		"white-space":   "nowrap",
	},
}

// colorPalette holds rgb values per family and shade.
var colorPalette = map[string]map[string]string{
	"gray": {
		"50": "rgb(249, 250, 251)", "100": "rgb(243, 244, 246)", "200": "rgb(229, 231, 235)",
		"300": "rgb(209, 213, 219)", "400": "rgb(156, 163, 175)", "500": "rgb(107, 114, 128)",
		"600": "rgb(75, 85, 99)", "700": "rgb(55, 65, 81)", "800": "rgb(31, 41, 55)",
		"900": "rgb(17, 24, 39)",
	},
	"red": {
		"50": "rgb(254, 242, 242)", "100": "rgb(254, 226, 226)", "200": "rgb(254, 202, 202)",
		"300": "rgb(252, 165, 165)", "400": "rgb(248, 113, 113)", "500": "rgb(239, 68, 68)",
		"600": "rgb(220, 38, 38)", "700": "rgb(185, 28, 28)", "800": "rgb(153, 27, 27)",
		"900": "rgb(127, 29, 29)",
	},
	"yellow": {
		"50": "rgb(254, 252, 232)", "100": "rgb(254, 249, 195)", "200": "rgb(254, 240, 138)",
		"300": "rgb(253, 224, 71)", "400": "rgb(250, 204, 21)", "500": "rgb(234, 179, 8)",
		"600": "rgb(202, 138, 4)", "700": "rgb(161, 98, 7)", "800": "rgb(133, 77, 14)",
		"900": "rgb(113, 63, 18)",
	},
	"green": {
		"50": "rgb(240, 253, 244)", "100": "rgb(220, 252, 231)", "200": "rgb(187, 247, 208)",
		"300": "rgb(134, 239, 172)", "400": "rgb(74, 222, 128)", "500": "rgb(34, 197, 94)",
		"600": "rgb(22, 163, 74)", "700": "rgb(21, 128, 61)", "800": "rgb(22, 101, 52)",
		"900": "rgb(20, 83, 45)",
	},
	"blue": {
		"50": "rgb(239, 246, 255)", "100": "rgb(219, 234, 254)", "200": "rgb(191, 219, 254)",
		"300": "rgb(147, 197, 253)", "400": "rgb(96, 165, 250)", "500": "rgb(59, 130, 246)",
		"600": "rgb(37, 99, 235)", "700": "rgb(29, 78, 216)", "800": "rgb(30, 64, 175)",
		"900": "rgb(30, 58, 138)",
	},
	"indigo": {
		"50": "rgb(238, 242, 255)", "100": "rgb(224, 231, 255)", "200": "rgb(199, 210, 254)",
		"300": "rgb(165, 180, 252)", "400": "rgb(129, 140, 248)", "500": "rgb(99, 102, 241)",
		"600": "rgb(79, 70, 229)", "700": "rgb(67, 56, 202)", "800": "rgb(55, 48, 163)",
		"900": "rgb(49, 46, 129)",
	},
	"purple": {
		"50": "rgb(250, 245, 255)", "100": "rgb(243, 232, 255)", "200": "rgb(233, 213, 255)",
		"300": "rgb(216, 180, 254)", "400": "rgb(192, 132, 252)", "500": "rgb(168, 85, 247)",
		"600": "rgb(147, 51, 234)", "700": "rgb(126, 34, 206)", "800": "rgb(107, 33, 168)",
		"900": "rgb(88, 28, 135)",
	},
	"pink": {
		"50": "rgb(253, 242, 248)", "100": "rgb(252, 231, 243)", "200": "rgb(251, 207, 232)",
		"300": "rgb(249, 168, 212)", "400": "rgb(244, 114, 182)", "500": "rgb(236, 72, 153)",
		"600": "rgb(219, 39, 119)", "700": "rgb(190, 24, 93)", "800": "rgb(157, 23, 77)",
		"900": "rgb(131, 24, 67)",
	},
}

// colorValue resolves a color suffix like "blue-500" or "white" to an rgb
// value string.
func colorValue(rest string) (string, bool) {
	switch rest {
	case "white":
		return "rgb(255, 255, 255)", true
	case "black":
		return "rgb(0, 0, 0)", true
	case "transparent":
		return "transparent", true
	case "current":
		return "currentColor", true
	}
	idx := strings.LastIndex(rest, "-")
	if idx <= 0 || idx == len(rest)-1 {
		return "", false
	}
	family, shade := rest[:idx], rest[idx+1:]
	shades, ok := colorPalette[family]
	if !ok {
		return "", false
	}
	value, ok := shades[shade]
	return value, ok
}

// PaletteColor exposes a single palette entry, mainly for callers building
// demo inputs. The empty string means the family/shade is unknown.
func PaletteColor(family, shade string) string {
	if shades, ok := colorPalette[family]; ok {
		return shades[shade]
	}
	return ""
}
