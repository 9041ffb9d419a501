package godelta

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Engine is the main comparison engine. It resolves the content type of its
// inputs once, flattens them to plain text, and computes (or fetches from
// cache) the change summary.
type Engine struct {
	cache          DiffCache
	extractors     map[string]Extractor
	contextWindow  int
	maxPreviewLen  int
	maxCompareLen  int
	semanticCounts bool
}

// Extractor is the interface for content extraction. Implementations flatten
// one kind of raw content (structured document, HTML, ...) into plain text
// and degrade gracefully on malformed input.
type Extractor interface {
	Extract(content string) (string, error)
	ContentType() string
}

// DiffCache is the interface for caching computed summaries.
type DiffCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// summaryVersion tags cached entries. Bump when the serialized DiffResult
// layout changes so stale entries are never decoded.
const summaryVersion = "v1"

// EngineOption is a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithCache sets the summary cache.
func WithCache(cache DiffCache) EngineOption {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithExtractor registers a content extractor.
func WithExtractor(ex Extractor) EngineOption {
	return func(e *Engine) {
		e.extractors[ex.ContentType()] = ex
	}
}

// WithContextWindow sets the per-side preview context window in bytes.
func WithContextWindow(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.contextWindow = n
		}
	}
}

// WithMaxPreviewLen sets the total preview length budget in bytes.
func WithMaxPreviewLen(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxPreviewLen = n
		}
	}
}

// WithMaxCompareLen caps how many bytes of each input are compared.
func WithMaxCompareLen(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxCompareLen = n
		}
	}
}

// WithSemanticCounts switches word counting from the prefix/suffix
// approximation to a full edit-distance diff.
func WithSemanticCounts() EngineOption {
	return func(e *Engine) {
		e.semanticCounts = true
	}
}

// NewEngine creates a new Engine with the given options.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		extractors:    make(map[string]Extractor),
		contextWindow: DefaultContextWindow,
		maxPreviewLen: DefaultMaxPreviewLen,
		maxCompareLen: DefaultMaxCompareLen,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Compare computes the change summary between two raw content values. It is
// total over its input domain: any pair of strings, including empty or
// malformed content, maps to a result rather than an error.
func (e *Engine) Compare(currentContent, previousContent string) *DiffResult {
	currentText := e.extractText(currentContent)
	previousText := e.extractText(previousContent)
	return e.CompareText(currentText, previousText)
}

// CompareText computes the change summary between two already-extracted
// plain-text values, consulting the cache when one is configured. Cache
// failures are treated as misses; output is identical with or without a
// cache.
func (e *Engine) CompareText(currentText, previousText string) *DiffResult {
	var key string
	if e.cache != nil {
		key = e.cacheKey(currentText, previousText)
		if cached, ok := e.cache.Get(key); ok {
			var result DiffResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return &result
			}
			// Undecodable entry; recompute and overwrite below.
		}
	}

	result := e.compute(currentText, previousText)

	if e.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = e.cache.Set(key, string(data)) // Ignore cache set errors
		}
	}

	return result
}

// cacheKey builds the cache key for a pair of extracted texts. Every setting
// that affects the computed summary is folded in, so two engines sharing a
// cache stay indistinguishable from two engines with private caches.
func (e *Engine) cacheKey(currentText, previousText string) string {
	return CacheKeyExtended(HashText(currentText), HashText(previousText), summaryVersion, e.configKey())
}

// configKey encodes the output-affecting engine settings as a key fragment.
func (e *Engine) configKey() string {
	mode := "trim"
	if e.semanticCounts {
		mode = "sem"
	}
	return fmt.Sprintf("%s-%d-%d-%d", mode, e.contextWindow, e.maxPreviewLen, e.maxCompareLen)
}

// compute runs the diff core with the engine's configured limits.
func (e *Engine) compute(currentText, previousText string) *DiffResult {
	lim := limits{
		contextWindow: e.contextWindow,
		maxPreviewLen: e.maxPreviewLen,
		maxCompareLen: e.maxCompareLen,
	}
	return diffText(currentText, previousText, lim, e.semanticCounts)
}

// extractText resolves the content's type and flattens it to plain text.
// Content with no registered extractor, and content whose extractor fails,
// is treated as a literal plain string.
func (e *Engine) extractText(content string) string {
	ct := DetectContentType(content)
	ex, ok := e.extractors[ct]
	if !ok {
		return content
	}
	text, err := ex.Extract(content)
	if err != nil {
		return content
	}
	return text
}

// DetectContentType classifies raw content by shape: a serialized rich-text
// document opens with a list delimiter, an HTML snapshot opens with a tag.
// Anything else is plain text. The classification happens once here so the
// diff core never has to guess the shape of its input.
func DetectContentType(content string) string {
	trimmed := strings.TrimSpace(content)
	switch {
	case strings.HasPrefix(trimmed, "["):
		return ContentTypeDocument
	case strings.HasPrefix(trimmed, "<"):
		return ContentTypeHTML
	default:
		return ContentTypePlain
	}
}

// ContextWindow returns the configured per-side context window.
func (e *Engine) ContextWindow() int {
	return e.contextWindow
}

// MaxPreviewLen returns the configured preview length budget.
func (e *Engine) MaxPreviewLen() int {
	return e.maxPreviewLen
}

// MaxCompareLen returns the configured input cap.
func (e *Engine) MaxCompareLen() int {
	return e.maxCompareLen
}

// SemanticCounts reports whether edit-distance word counting is enabled.
func (e *Engine) SemanticCounts() bool {
	return e.semanticCounts
}
