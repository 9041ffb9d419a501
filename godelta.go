// Package godelta computes change summaries between two versions of a page's
// content.
//
// Godelta takes a current and a previous content snapshot (plain text, a
// serialized rich-text document, or HTML), flattens both to plain text, and
// produces a coarse added/removed word count plus a short preview snippet
// highlighting the changed region, suitable for an activity-feed card or a
// version-comparison view.
//
// Basic usage:
//
//	import (
//	    "github.com/PageLabs/godelta"
//	    "github.com/PageLabs/godelta/cache"
//	    "github.com/PageLabs/godelta/extractor"
//	)
//
//	func main() {
//	    e := godelta.NewEngine(
//	        godelta.WithExtractor(extractor.NewDocumentExtractor()),
//	        godelta.WithCache(cache.NewInMemoryCache(3600)),
//	    )
//
//	    result := e.Compare(currentContent, previousContent)
//	    fmt.Printf("+%d -%d\n", result.Added, result.Removed)
//	    if result.Preview != nil {
//	        fmt.Println(result.Preview.HighlightedText)
//	    }
//	}
package godelta
