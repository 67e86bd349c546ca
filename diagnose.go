package classcss

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// longTokenLength is the length past which a class name is flagged
	// as unusually long.
	longTokenLength = 30
	// maxNamedUnrecognized caps how many unrecognized tokens are listed
	// by name before the warning switches to a count.
	maxNamedUnrecognized = 3
)

// Token shapes that look like plausible utility classes. These heuristics
// are advisory only: a token matching none of them still gets resolved,
// it just earns a warning.
var (
	// bg-blue-500, p-4, w-1/2, text-xl
	sizeSuffixPattern = regexp.MustCompile(`-(\d+(\.\d+)?|px|xs|sm|md|lg|xl|[2-9]xl|full|auto|screen|none)(/\d+)?$`)
	// hover:underline, md:flex, group-hover:opacity-50
	variantPrefixPattern = regexp.MustCompile(`^(hover|focus|active|disabled|first|last|odd|even|group-hover|group-focus|sm|md|lg|xl|2xl):`)
	// w-[137px], bg-[#1da1f2]
	arbitraryValuePattern = regexp.MustCompile(`\[[^\[\]]+\]$`)
	// flex, items-center, rounded — a known utility family name, bare or
	// followed by a dash
	utilityPrefixPattern = regexp.MustCompile(`^(bg|text|font|leading|tracking|p|px|py|pt|pr|pb|pl|m|mx|my|mt|mr|mb|ml|w|h|min-w|min-h|max-w|max-h|top|right|bottom|left|inset|z|flex|grid|grow|shrink|basis|order|col|row|items|justify|content|self|place|gap|space|block|inline|inline-block|inline-flex|hidden|static|relative|absolute|fixed|sticky|float|clear|overflow|visible|invisible|rounded|border|shadow|outline|ring|opacity|italic|not-italic|underline|line-through|no-underline|uppercase|lowercase|capitalize|normal-case|whitespace|align|list|cursor|select|transition|duration|ease|delay|animate|transform|scale|rotate|translate|skew|origin|container|truncate|antialiased)(-|$)`)
)

// diagnose inspects the sanitized input tokens and the formatted output
// and produces advisory warnings. The returned slice is always non-nil:
// an empty slice means diagnostics ran and found nothing, distinct from
// the nil "not evaluated" state on cached or failed results.
func diagnose(sanitized, css string) []string {
	warnings := make([]string, 0, 3)
	tokens := strings.Fields(sanitized)

	var unrecognized []string
	hasLong := false
	for _, token := range tokens {
		if !looksLikeUtility(token) {
			unrecognized = append(unrecognized, token)
		}
		if len(token) > longTokenLength {
			hasLong = true
		}
	}

	if n := len(unrecognized); n > 0 {
		if n <= maxNamedUnrecognized {
			warnings = append(warnings, fmt.Sprintf("unrecognized class names: %s", strings.Join(unrecognized, ", ")))
		} else {
			warnings = append(warnings, fmt.Sprintf("%d class names do not look like known utility classes", n))
		}
	}
	if css == noStylesSentinel && len(tokens) > 0 {
		warnings = append(warnings, "no CSS styles were generated for the given class names")
	}
	if hasLong {
		warnings = append(warnings, "some class names are unusually long")
	}
	return warnings
}

// looksLikeUtility reports whether a token has the shape of a utility
// class. Best effort: legitimate classes from unknown frameworks may still
// be flagged.
func looksLikeUtility(token string) bool {
	return sizeSuffixPattern.MatchString(token) ||
		variantPrefixPattern.MatchString(token) ||
		arbitraryValuePattern.MatchString(token) ||
		utilityPrefixPattern.MatchString(token)
}
