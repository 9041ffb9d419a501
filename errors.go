package godelta

import "fmt"

// ExtractError indicates a content extraction failure. The shipped
// extractors never fail (malformed input passes through as a literal
// string); this type exists for third-party Extractor implementations whose
// sources can genuinely error, such as a fetch from remote storage. The
// engine falls back to literal treatment on any extraction error.
type ExtractError struct {
	Message     string
	Cause       error
	ContentType string // The type of content that failed to extract
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract error (%s): %s: %v", e.ContentType, e.Message, e.Cause)
	}
	return fmt.Sprintf("extract error (%s): %s", e.ContentType, e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a cache operation failure. The engine treats cache
// failures as misses; this error is only visible to callers using a cache
// directly.
type CacheError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}
