package extractor

import (
	"encoding/json"
	"strings"

	"github.com/PageLabs/godelta"
)

// DocumentExtractor flattens serialized rich-text documents into plain text.
//
// A document is a JSON array of block nodes. Each block contributes one
// line; lines are joined with a newline. Inside a block, a text leaf
// contributes its text, a link contributes the concatenated text of its
// children, and any other node contributes nothing.
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor.
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// Extract flattens content to plain text. It never fails: content that does
// not parse as a document is returned unchanged, and malformed nodes degrade
// to an empty or partial string. The returned error is always nil and exists
// to satisfy the Extractor interface.
func (p *DocumentExtractor) Extract(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "[") {
		return content, nil
	}

	var blocks []Node
	if err := json.Unmarshal([]byte(trimmed), &blocks); err != nil {
		// Looked like a document but isn't one; treat as a literal string.
		return content, nil
	}

	return ExtractText(blocks), nil
}

// ContentType returns "document".
func (p *DocumentExtractor) ContentType() string {
	return godelta.ContentTypeDocument
}

// ExtractText flattens parsed blocks in document order, joining block lines
// with a newline.
func ExtractText(blocks []Node) string {
	lines := make([]string, 0, len(blocks))
	for _, block := range blocks {
		lines = append(lines, blockText(block))
	}
	return strings.Join(lines, "\n")
}

// blockText renders one block node as a single line.
func blockText(n Node) string {
	if len(n.Children) == 0 {
		return n.Text
	}

	var sb strings.Builder
	for _, child := range n.Children {
		sb.WriteString(inlineText(child))
	}
	return sb.String()
}

// inlineText renders an inline child: a text leaf is itself, a link is the
// concatenated text of its children, anything else contributes nothing.
func inlineText(n Node) string {
	if n.Type == godelta.NodeLink {
		var sb strings.Builder
		for _, child := range n.Children {
			sb.WriteString(child.Text)
		}
		return sb.String()
	}

	if len(n.Children) == 0 {
		return n.Text
	}

	return ""
}

// Verify DocumentExtractor implements Extractor
var _ Extractor = (*DocumentExtractor)(nil)
