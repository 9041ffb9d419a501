package godelta_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PageLabs/godelta"
	"github.com/PageLabs/godelta/cache"
	"github.com/PageLabs/godelta/extractor"
)

func buildText(words int) string {
	var sb strings.Builder
	for i := 0; i < words; i++ {
		fmt.Fprintf(&sb, "word%d ", i)
	}
	return sb.String()
}

func BenchmarkDiff_SmallEdit(b *testing.B) {
	previous := buildText(500)
	current := strings.Replace(previous, "word250", "changed250", 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		godelta.Diff(current, previous)
	}
}

func BenchmarkDiff_Identical(b *testing.B) {
	text := buildText(500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		godelta.Diff(text, text)
	}
}

func BenchmarkEngine_SemanticCounts(b *testing.B) {
	engine := godelta.NewEngine(godelta.WithSemanticCounts())
	previous := buildText(200)
	current := strings.Replace(previous, "word100", "changed100", 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.CompareText(current, previous)
	}
}

func BenchmarkEngine_CachedCompare(b *testing.B) {
	engine := godelta.NewEngine(godelta.WithCache(cache.NewInMemoryCache(0)))
	previous := buildText(500)
	current := strings.Replace(previous, "word250", "changed250", 1)

	engine.CompareText(current, previous) // Warm the cache

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.CompareText(current, previous)
	}
}

func BenchmarkDocumentExtract(b *testing.B) {
	ex := extractor.NewDocumentExtractor()
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < 50; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"type":"paragraph","children":[{"text":"paragraph %d with some content"}]}`, i)
	}
	sb.WriteString("]")
	content := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ex.Extract(content)
	}
}

func BenchmarkHTMLExtract(b *testing.B) {
	ex := extractor.NewHTMLExtractor()
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&sb, "<p>paragraph %d with some content</p>", i)
	}
	sb.WriteString("</body></html>")
	content := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ex.Extract(content)
	}
}

func BenchmarkCompareBatch(b *testing.B) {
	engine := godelta.NewEngine(godelta.WithCache(cache.NewInMemoryCache(0)))

	var pairs []godelta.Pair
	for i := 0; i < 20; i++ {
		text := buildText(100)
		pairs = append(pairs, godelta.Pair{
			Current:  text + fmt.Sprintf("extra%d", i),
			Previous: text,
		})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.CompareBatch(pairs)
	}
}
