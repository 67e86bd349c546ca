package classcss

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// SheetResolver answers class lookups from a project's own CSS files. At
// construction it globs the given patterns, lexes every matching sheet,
// and indexes class selectors to their declarations. Resolution then
// merges the declarations of each requested token in class order, later
// tokens winning on conflicts.
//
// Pseudo-class variants (.btn:hover) are ignored: the pipeline reports
// the resting state of an element, matching what a computed-style query
// against an idle element would return.
type SheetResolver struct {
	index map[string]map[string]string
	log   *zap.Logger
}

// NewSheetResolver builds a resolver from the CSS files matching the
// doublestar glob patterns. Files covered by a .gitignore in the current
// directory are skipped. Construction fails if a pattern is malformed or
// a matched file cannot be read; sheets that merely contain unparseable
// rules are indexed as far as the lexer gets.
func NewSheetResolver(patterns []string, log *zap.Logger) (*SheetResolver, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &SheetResolver{
		index: make(map[string]map[string]string),
		log:   log.Named("sheet-resolver"),
	}

	files, err := findSheets(patterns)
	if err != nil {
		return nil, err
	}
	matcher := loadGitIgnore()
	for _, file := range files {
		if matcher != nil && matcher.MatchesPath(file) {
			r.log.Debug("skipping ignored stylesheet", zap.String("file", file))
			continue
		}
		content, err := os.ReadFile(file) // #nosec G304 - path comes from caller-supplied patterns
		if err != nil {
			return nil, fmt.Errorf("read stylesheet %s: %w", file, err)
		}
		r.indexSheet(string(content))
		r.log.Debug("indexed stylesheet", zap.String("file", file))
	}
	r.log.Debug("stylesheet index built", zap.Int("classes", len(r.index)))
	return r, nil
}

// Resolve merges the indexed declarations of every known token in the
// class string. Unknown tokens contribute nothing. It never fails.
func (r *SheetResolver) Resolve(classes string) (map[string]string, error) {
	props := make(map[string]string)
	for _, token := range strings.Fields(classes) {
		for name, value := range r.index[token] {
			props[name] = value
		}
	}
	return props, nil
}

// Classes returns how many distinct class selectors are indexed.
func (r *SheetResolver) Classes() int {
	return len(r.index)
}

// findSheets expands the glob patterns and removes duplicates.
func findSheets(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		files = append(files, matches...)
	}

	seen := make(map[string]bool)
	unique := make([]string, 0, len(files))
	for _, f := range files {
		if !seen[f] {
			seen[f] = true
			unique = append(unique, f)
		}
	}
	return unique, nil
}

// loadGitIgnore loads .gitignore from the working directory, degrading
// gracefully when there is none.
func loadGitIgnore() *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(".gitignore")
	if err != nil {
		return nil
	}
	return gi
}

// indexSheet lexes one stylesheet and merges its class rules into the
// index. Within one sheet and across sheets, the last definition of a
// property wins, matching cascade order for equal specificity.
func (r *SheetResolver) indexSheet(content string) {
	lexer := css.NewLexer(parse.NewInputString(content))
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}
		if tt == css.DelimToken && len(text) > 0 && text[0] == '.' {
			r.indexClassRule(lexer)
		}
	}
}

// indexClassRule reads one rule starting at a '.' delimiter: the class
// names in the selector list, then the declaration block. Selectors
// carrying pseudo-classes are dropped from the rule.
func (r *SheetResolver) indexClassRule(lexer *css.Lexer) {
	tt, nameBytes := lexer.Next()
	if tt != css.IdentToken {
		return
	}

	classNames := []string{string(nameBytes)}
	pseudo := false

	for {
		tt, text := lexer.Next()
		switch {
		case tt == css.ErrorToken:
			return
		case tt == css.DelimToken && len(text) > 0 && text[0] == '.':
			tt2, name2 := lexer.Next()
			if tt2 == css.IdentToken {
				if pseudo && len(classNames) > 0 {
					// Replace the pseudo-qualified selector we dropped
					classNames[len(classNames)-1] = string(name2)
				} else {
					classNames = append(classNames, string(name2))
				}
				pseudo = false
			}
		case tt == css.ColonToken:
			pseudo = true
		case tt == css.CommaToken:
			if pseudo && len(classNames) > 0 {
				classNames = classNames[:len(classNames)-1]
			}
			pseudo = false
		case tt == css.LeftBraceToken:
			decls := extractDeclarations(lexer)
			if pseudo && len(classNames) > 0 {
				classNames = classNames[:len(classNames)-1]
			}
			for _, name := range classNames {
				class, ok := r.index[name]
				if !ok {
					class = make(map[string]string)
					r.index[name] = class
				}
				for prop, val := range decls {
					class[prop] = val
				}
			}
			return
		}
	}
}

// extractDeclarations reads property: value pairs until the closing brace.
func extractDeclarations(lexer *css.Lexer) map[string]string {
	props := make(map[string]string)

	var currentProp string
	var currentVal []string

	flush := func() {
		if currentProp != "" && len(currentVal) > 0 {
			props[currentProp] = strings.TrimSpace(strings.Join(currentVal, ""))
		}
		currentProp = ""
		currentVal = nil
	}

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken || tt == css.RightBraceToken {
			flush()
			return props
		}
		switch {
		case tt == css.CommentToken:
			continue
		case tt == css.IdentToken && currentProp == "":
			currentProp = string(text)
		case tt == css.ColonToken && currentProp != "":
			continue
		case tt == css.SemicolonToken:
			flush()
		case currentProp != "":
			currentVal = append(currentVal, string(text))
		}
	}
}
