// Package extractor provides content extraction implementations.
package extractor

import "github.com/PageLabs/godelta"

// Extractor is an alias to the main package interface.
type Extractor = godelta.Extractor

// Node is an alias to the main package type.
type Node = godelta.Node
