package render

import (
	"fmt"
	"io"

	"github.com/classcss/classcss"
)

// Reporter writes conversion results to a terminal or pipe.
type Reporter struct {
	w         io.Writer
	useColors bool
	highlight bool
}

// NewReporter creates a reporter. highlight enables CSS syntax coloring
// on top of the basic color scheme; it has no effect when useColors is
// false.
func NewReporter(w io.Writer, useColors, highlight bool) *Reporter {
	return &Reporter{w: w, useColors: useColors, highlight: highlight}
}

// PrintResult writes one conversion result: the error or the css block,
// then any warnings.
func (r *Reporter) PrintResult(result classcss.Result) {
	if result.Err != "" {
		fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleError, "Error:", r.useColors), result.Err)
		return
	}
	if result.CSS != "" {
		css := result.CSS
		if r.highlight {
			css = HighlightCSS(css, r.useColors)
		}
		fmt.Fprintln(r.w, css)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleWarning, "Warning:", r.useColors), warning)
	}
}

// PrintCacheStatus writes the converter's cache occupancy.
func (r *Reporter) PrintCacheStatus(status classcss.CacheStatus) {
	fmt.Fprintf(r.w, "%s %d/%d entries\n", RenderStyle(StyleComment, "cache:", r.useColors), status.Size, status.Capacity)
}
