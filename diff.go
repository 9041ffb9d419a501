package godelta

import (
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// limits bounds the work and output size of a single comparison.
type limits struct {
	contextWindow int // bytes of surrounding text kept on each side
	maxPreviewLen int // total preview budget in bytes
	maxCompareLen int // input cap in bytes
}

func defaultLimits() limits {
	return limits{
		contextWindow: DefaultContextWindow,
		maxPreviewLen: DefaultMaxPreviewLen,
		maxCompareLen: DefaultMaxCompareLen,
	}
}

// Diff computes the change summary between two plain-text versions using the
// default limits. It is a pure function: no I/O, no shared state, identical
// inputs always produce identical results.
//
// Word counts come from a longest-common prefix/suffix trim over
// whitespace-delimited tokens. The preview is computed at character level
// for tighter highlighting. See Engine for cached and configurable
// comparisons.
func Diff(currentText, previousText string) *DiffResult {
	return diffText(currentText, previousText, defaultLimits(), false)
}

func diffText(currentText, previousText string, lim limits, semantic bool) *DiffResult {
	currentText = clampHead(currentText, lim.maxCompareLen)
	previousText = clampHead(previousText, lim.maxCompareLen)

	result := &DiffResult{}
	if semantic {
		result.Added, result.Removed = semanticWordCounts(currentText, previousText)
	} else {
		result.Added, result.Removed = wordCounts(currentText, previousText)
	}
	result.Preview = buildPreview(currentText, previousText, lim)
	return result
}

// wordCounts computes added/removed counts by trimming the longest common
// token prefix and suffix. The suffix scan is bounded so it never crosses
// into the prefix region.
func wordCounts(currentText, previousText string) (added, removed int) {
	cur := strings.Fields(currentText)
	prev := strings.Fields(previousText)

	prefix := 0
	for prefix < len(cur) && prefix < len(prev) && cur[prefix] == prev[prefix] {
		prefix++
	}

	limit := min(len(cur), len(prev)) - prefix
	suffix := 0
	for suffix < limit && cur[len(cur)-1-suffix] == prev[len(prev)-1-suffix] {
		suffix++
	}

	return len(cur) - prefix - suffix, len(prev) - prefix - suffix
}

// buildPreview locates the changed region at character level and windows it
// with surrounding context.
//
// Priority: a non-empty added region in the current text wins; otherwise a
// non-empty removed region is quoted from the previous text; otherwise there
// is nothing to show and the preview is nil.
func buildPreview(currentText, previousText string, lim limits) *PreviewSnippet {
	prefix := commonPrefixLen(currentText, previousText)
	suffix := commonSuffixLen(currentText, previousText, min(len(currentText), len(previousText))-prefix)

	curEnd := len(currentText) - suffix
	prevEnd := len(previousText) - suffix

	switch {
	case curEnd > prefix:
		return windowRegion(currentText, prefix, curEnd, true, false, lim)
	case prevEnd > prefix:
		return windowRegion(previousText, prefix, prevEnd, false, true, lim)
	default:
		return nil
	}
}

// windowRegion builds a snippet for source[start:end] with bounded context.
// The three parts always remain a contiguous substring of source: before is
// trimmed from its left edge and after from its right edge only.
func windowRegion(source string, start, end int, isNew, isRemoved bool, lim limits) *PreviewSnippet {
	before := clampTail(source[:start], lim.contextWindow)
	after := clampHead(source[end:], lim.contextWindow)
	highlight := source[start:end]

	if len(before)+len(highlight)+len(after) > lim.maxPreviewLen {
		budget := lim.maxPreviewLen - len(highlight)
		if budget <= 0 {
			// The changed region alone blows the budget. Drop context and,
			// as a last resort, truncate the highlight itself.
			before, after = "", ""
			highlight = clampHead(highlight, lim.maxPreviewLen)
		} else {
			// Trim context symmetrically; unused budget on one side goes to
			// the other.
			half := budget / 2
			b := min(len(before), half)
			a := min(len(after), budget-b)
			b = min(len(before), budget-a)
			before = clampTail(before, b)
			after = clampHead(after, a)
		}
	}

	return &PreviewSnippet{
		BeforeContext:   before,
		HighlightedText: highlight,
		AfterContext:    after,
		IsNew:           isNew,
		IsRemoved:       isRemoved,
	}
}

// commonPrefixLen returns the byte length of the longest common prefix of a
// and b, advancing a whole rune at a time so a multi-byte character is never
// split.
func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) {
		ra, sa := utf8.DecodeRuneInString(a[n:])
		rb, sb := utf8.DecodeRuneInString(b[n:])
		if ra != rb || sa != sb {
			break
		}
		// Any invalid byte decodes as (RuneError, 1); distinct invalid
		// bytes must not count as common.
		if ra == utf8.RuneError && sa == 1 && a[n] != b[n] {
			break
		}
		n += sa
	}
	return n
}

// commonSuffixLen returns the byte length of the longest common suffix of a
// and b, capped at limit so the suffix never overlaps a previously computed
// prefix.
func commonSuffixLen(a, b string, limit int) int {
	n := 0
	for n < limit {
		ra, sa := utf8.DecodeLastRuneInString(a[:len(a)-n])
		rb, sb := utf8.DecodeLastRuneInString(b[:len(b)-n])
		if ra != rb || sa != sb || n+sa > limit {
			break
		}
		if ra == utf8.RuneError && sa == 1 && a[len(a)-n-1] != b[len(b)-n-1] {
			break
		}
		n += sa
	}
	return n
}

// clampHead returns a prefix of s at most maxBytes long, cut back to a
// grapheme cluster boundary so no visible character is split.
func clampHead(s string, maxBytes int) string {
	if maxBytes <= 0 {
		return ""
	}
	if len(s) <= maxBytes {
		return s
	}
	g := graphemes.FromString(s)
	end := 0
	for g.Next() {
		if g.End() > maxBytes {
			break
		}
		end = g.End()
	}
	return s[:end]
}

// clampTail returns a suffix of s at most maxBytes long, cut forward to a
// grapheme cluster boundary.
func clampTail(s string, maxBytes int) string {
	if maxBytes <= 0 {
		return ""
	}
	if len(s) <= maxBytes {
		return s
	}
	cut := len(s) - maxBytes
	g := graphemes.FromString(s)
	for g.Next() {
		if g.Start() >= cut {
			return s[g.Start():]
		}
	}
	return ""
}
