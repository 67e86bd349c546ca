package classcss

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// conversionCacheCapacity bounds the per-converter result cache.
const conversionCacheCapacity = 50

// defaultDebounceMs is informational: the pipeline performs no debouncing
// itself, callers driving interactive input are expected to.
const defaultDebounceMs = 300

// Config holds conversion settings accepted at construction.
type Config struct {
	// MaxInputLength is the raw input length limit. Zero means the
	// default of 10000 characters.
	MaxInputLength int
	// DebounceMs is carried for callers that debounce interactive input.
	// The pipeline itself ignores it.
	DebounceMs int
	// EnableSyntaxHighlighting is consumed by presentation layers such
	// as the CLI reporter. The pipeline itself ignores it.
	EnableSyntaxHighlighting bool
}

// DefaultConfig returns the standard conversion settings.
func DefaultConfig() Config {
	return Config{
		MaxInputLength:           defaultMaxInputLength,
		DebounceMs:               defaultDebounceMs,
		EnableSyntaxHighlighting: true,
	}
}

// Result is the sole output of a conversion. Failures are reported on Err,
// never as a returned error or panic.
type Result struct {
	// CSS is the formatted output, or "" when nothing applied or the
	// conversion failed.
	CSS string `json:"css"`
	// Err describes a total failure. When set, CSS is empty.
	Err string `json:"error,omitempty"`
	// Warnings holds advisory diagnostics. A nil slice means diagnostics
	// were not evaluated (empty input or failure); an empty slice means
	// they ran and found nothing. No omitempty: JSON keeps null and []
	// distinct for the same reason.
	Warnings []string `json:"warnings"`
}

// CacheStatus describes the conversion cache for introspection.
type CacheStatus struct {
	Size     int `json:"size"`
	Capacity int `json:"capacity"`
}

// Converter turns utility class strings into formatted CSS. Each Converter
// owns its own bounded result cache; construct one per logical session
// rather than sharing an instance across concurrent callers, since neither
// the converter nor its cache is synchronized.
type Converter struct {
	config   Config
	resolver Resolver
	cache    *cache[string, Result]
	log      *zap.Logger
}

// NewConverter builds a converter around the given resolver. A nil resolver
// falls back to the built-in static utility engine, and a nil logger
// disables logging.
func NewConverter(config Config, resolver Resolver, log *zap.Logger) *Converter {
	if config.MaxInputLength <= 0 {
		config.MaxInputLength = defaultMaxInputLength
	}
	if resolver == nil {
		resolver = NewUtilityResolver()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{
		config:   config,
		resolver: resolver,
		cache:    newCache[string, Result](conversionCacheCapacity),
		log:      log.Named("classcss"),
	}
}

// Convert runs the full pipeline: guard, cache lookup, sanitize, resolve,
// format, diagnose, cache store. The context expresses "latest input wins"
// cancellation: a canceled context still yields the computed Result, but
// the result is not committed to the cache, so a superseded conversion
// cannot poison state for fresher ones.
func (c *Converter) Convert(ctx context.Context, input string) Result {
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Guard. Trimmed-empty input is a valid "nothing to convert".
	key := strings.TrimSpace(input)
	if key == "" {
		return Result{}
	}
	if msg := guardInput(input, c.config.MaxInputLength); msg != "" {
		c.log.Debug("input rejected", zap.String("reason", msg), zap.Int("length", len(input)))
		return Result{Err: msg}
	}

	// 2. Cache lookup on the original trimmed input. Hits are returned
	// verbatim, warnings included, skipping resolution entirely.
	if cached, ok := c.cache.get(key); ok {
		c.log.Debug("cache hit", zap.String("key", key))
		return cached
	}

	// 3. Resolve the sanitized string through the style oracle.
	sanitized := sanitizeInput(input)
	computed, err := extract(c.resolver, sanitized)
	if err != nil {
		c.log.Debug("style resolution failed", zap.Error(err))
		return Result{Err: classifyError(err)}
	}

	// 4. Format and diagnose.
	css := formatCSS(computed)
	result := Result{
		CSS:      css,
		Warnings: diagnose(sanitized, css),
	}

	// 5. Commit, unless the caller already moved on. Only successful
	// results are cached; failures above always get retried.
	if ctx.Err() == nil {
		c.cache.set(key, result)
	} else {
		c.log.Debug("conversion superseded, result not cached", zap.String("key", key))
	}
	return result
}

// ResetCache drops every cached conversion result.
func (c *Converter) ResetCache() {
	c.cache.clear()
	c.log.Debug("conversion cache cleared")
}

// CacheStatus reports the current cache occupancy without mutating it.
func (c *Converter) CacheStatus() CacheStatus {
	return CacheStatus{Size: c.cache.len(), Capacity: conversionCacheCapacity}
}
