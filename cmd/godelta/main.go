// Command godelta summarizes the change between two versions of a content
// file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PageLabs/godelta"
	"github.com/PageLabs/godelta/extractor"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = godelta.Version
	commit    = godelta.GitCommit
	buildDate = godelta.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("godelta", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: godelta [flags] PREVIOUS CURRENT\n\n")
		fmt.Fprintf(stderr, "Compares two versions of a content file and prints a change summary.\n")
		fmt.Fprintf(stderr, "Use \"-\" for CURRENT to read it from stdin.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	// Flags
	contentType := fs.String("type", "auto", "Content type: auto, plain, document, html")
	contextWindow := fs.Int("context", godelta.DefaultContextWindow, "Preview context window per side, in bytes")
	maxPreview := fs.Int("max-preview", godelta.DefaultMaxPreviewLen, "Maximum total preview length in bytes")
	maxCompare := fs.Int("max-compare", godelta.DefaultMaxCompareLen, "Maximum bytes of each input to compare")
	semantic := fs.Bool("semantic", false, "Use edit-distance word counts instead of the prefix/suffix approximation")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")
	quiet := fs.Bool("quiet", false, "Print counts only, no preview")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", godelta.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("expected PREVIOUS and CURRENT arguments")
	}

	previous, err := readInput(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("reading previous version: %w", err)
	}
	current, err := readInput(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("reading current version: %w", err)
	}

	// Build engine
	opts := []godelta.EngineOption{
		godelta.WithExtractor(extractor.NewDocumentExtractor()),
		godelta.WithExtractor(extractor.NewHTMLExtractor()),
		godelta.WithContextWindow(*contextWindow),
		godelta.WithMaxPreviewLen(*maxPreview),
		godelta.WithMaxCompareLen(*maxCompare),
	}
	if *semantic {
		opts = append(opts, godelta.WithSemanticCounts())
	}
	engine := godelta.NewEngine(opts...)

	result, err := compare(engine, *contentType, current, previous)
	if err != nil {
		return err
	}

	if *jsonOutput {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printSummary(stdout, result, *quiet)
	return nil
}

// compare runs the comparison, honoring a forced content type.
func compare(engine *godelta.Engine, contentType, current, previous string) (*godelta.DiffResult, error) {
	switch contentType {
	case "auto":
		return engine.Compare(current, previous), nil
	case "plain":
		return engine.CompareText(current, previous), nil
	case "document":
		ex := extractor.NewDocumentExtractor()
		cur, _ := ex.Extract(current)
		prev, _ := ex.Extract(previous)
		return engine.CompareText(cur, prev), nil
	case "html":
		ex := extractor.NewHTMLExtractor()
		cur, _ := ex.Extract(current)
		prev, _ := ex.Extract(previous)
		return engine.CompareText(cur, prev), nil
	default:
		return nil, fmt.Errorf("unknown content type %q (want auto, plain, document, or html)", contentType)
	}
}

// readInput reads a file, or stdin when path is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path) // #nosec G304 - CLI tool reads user-specified files
	return string(data), err
}

// printSummary writes a human-readable summary. Ellipsis markers around the
// context windows are applied here, at render time.
func printSummary(w io.Writer, result *godelta.DiffResult, quiet bool) {
	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Added:   %d %s\n", result.Added, plural(result.Added, "word"))
	fmt.Fprintf(w, "  Removed: %d %s\n", result.Removed, plural(result.Removed, "word"))

	if quiet {
		return
	}

	if result.Preview == nil {
		fmt.Fprintf(w, "\nNo changes detected.\n")
		return
	}

	marker := "+"
	if result.Preview.IsRemoved {
		marker = "-"
	}

	var sb strings.Builder
	if result.Preview.BeforeContext != "" {
		sb.WriteString("…")
		sb.WriteString(result.Preview.BeforeContext)
	}
	sb.WriteString("[")
	sb.WriteString(result.Preview.HighlightedText)
	sb.WriteString("]")
	if result.Preview.AfterContext != "" {
		sb.WriteString(result.Preview.AfterContext)
		sb.WriteString("…")
	}

	fmt.Fprintf(w, "\nPreview:\n  %s %s\n", marker, sb.String())
}

// plural returns the singular or plural form of a counted noun.
func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
