package classcss

import (
	"regexp"
	"strings"
)

const (
	// defaultMaxInputLength is the raw length limit applied when the
	// caller does not configure one.
	defaultMaxInputLength = 10000
	// maxSpecialCharacters bounds how many bracket/brace/parenthesis
	// characters an input may contain before it is rejected.
	maxSpecialCharacters = 10
)

// specialCharacters is the character class both counted by the density
// guard and stripped during sanitization.
const specialCharacters = "<>{}()[]"

var (
	// unsafePatterns match markup and script-injection sequences. Input
	// matching any of them is rejected before resolution is attempted.
	unsafePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<script`),
		regexp.MustCompile(`(?i)javascript:`),
		regexp.MustCompile(`(?i)vbscript:`),
		regexp.MustCompile(`(?i)data:text/html`),
		regexp.MustCompile(`(?i)\bon[a-z]+\s*=`),
		regexp.MustCompile(`(?i)<(iframe|object|embed)`),
	}

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// guardInput applies the length, unsafe-content, and special-character
// density checks in order. It returns a rejection message, or "" when the
// input may proceed to resolution. Emptiness is handled by the orchestrator
// before the guard runs; guard rejections are terminal and never cached.
func guardInput(raw string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = defaultMaxInputLength
	}
	if len(raw) > maxLength {
		return msgInputTooLong(maxLength)
	}
	for _, pattern := range unsafePatterns {
		if pattern.MatchString(raw) {
			return msgUnsafeContent
		}
	}
	if countSpecialCharacters(raw) > maxSpecialCharacters {
		return msgTooManySpecials
	}
	return ""
}

func countSpecialCharacters(s string) int {
	count := 0
	for _, r := range s {
		if strings.ContainsRune(specialCharacters, r) {
			count++
		}
	}
	return count
}

// sanitizeInput strips the special character class, collapses whitespace
// runs to single spaces, and trims. The sanitized string is what gets
// resolved; the cache key stays derived from the original trimmed input.
func sanitizeInput(raw string) string {
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(specialCharacters, r) {
			return -1
		}
		return r
	}, raw)
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(stripped, " "))
}
