package godelta

// Content types recognized at the extraction boundary. DetectContentType
// classifies raw content exactly once so the diff core never has to guess
// the shape of its input.
const (
	// ContentTypePlain is unstructured plain text.
	ContentTypePlain = "plain"
	// ContentTypeDocument is a serialized rich-text document (a JSON array
	// of block nodes with paragraph/link/leaf children).
	ContentTypeDocument = "document"
	// ContentTypeHTML is an HTML page snapshot.
	ContentTypeHTML = "html"
)

// Defaults for the diff engine. All are overridable via Engine options.
const (
	// DefaultContextWindow is the maximum number of bytes of surrounding
	// text kept on each side of the highlighted region.
	DefaultContextWindow = 50

	// DefaultMaxPreviewLen is the maximum total length of a preview
	// (before + highlight + after). Context is trimmed first; the
	// highlighted region is only truncated as a last resort.
	DefaultMaxPreviewLen = 200

	// DefaultMaxCompareLen caps how much of each input is considered,
	// bounding the cost of the prefix/suffix scans on very large pages.
	DefaultMaxCompareLen = 100_000
)

// DiffResult summarizes the change between a previous and a current version
// of a piece of content. All fields are derived; nothing is persisted.
type DiffResult struct {
	// Added is the approximate count of added words (whitespace-delimited
	// tokens present in current but not covered by the common prefix/suffix).
	Added int `json:"added"`

	// Removed is the approximate count of removed words.
	Removed int `json:"removed"`

	// Preview is a short snippet highlighting the changed region, or nil
	// when no meaningful diff exists (identical or both-empty inputs).
	Preview *PreviewSnippet `json:"preview,omitempty"`
}

// HasChanges returns true if anything was added or removed.
func (d *DiffResult) HasChanges() bool {
	return d.Added > 0 || d.Removed > 0
}

// Net returns the net word delta (added minus removed).
func (d *DiffResult) Net() int {
	return d.Added - d.Removed
}

// PreviewSnippet is a display-ready excerpt around the changed region.
//
// BeforeContext + HighlightedText + AfterContext is always a contiguous
// substring of the current text (or of the previous text when IsRemoved is
// true). The engine returns raw context; callers apply ellipsis markers at
// render time.
type PreviewSnippet struct {
	BeforeContext   string `json:"beforeContext"`
	HighlightedText string `json:"highlightedText"`
	AfterContext    string `json:"afterContext"`

	// IsNew is true when the highlighted text was added in the current
	// version.
	IsNew bool `json:"isNew"`

	// IsRemoved is true when the highlighted text was deleted and nothing
	// replaced it; the snippet is then quoted from the previous text.
	IsRemoved bool `json:"isRemoved"`
}

// Node is one node of a structured rich-text document: a block (paragraph),
// an inline element (link), or a text leaf. Formatting attributes are not
// modeled; the diff only cares about text.
type Node struct {
	Type     string `json:"type,omitempty"`
	Text     string `json:"text,omitempty"`
	URL      string `json:"url,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// Node types with defined extraction semantics. Unknown types contribute no
// text.
const (
	NodeParagraph = "paragraph"
	NodeLink      = "link"
)
