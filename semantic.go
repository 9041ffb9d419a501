package godelta

import (
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// semanticWordCounts computes added/removed word counts with a full
// edit-distance diff instead of the prefix/suffix approximation. The cheap
// trim misattributes changes when a word moves and another is edited in the
// same text; this mode pays the extra cost to get those cases right.
//
// Words are mapped to synthetic lines so diffmatchpatch's line-mode
// optimization applies: each distinct word becomes one rune, and each rune
// in an insert/delete run is one word.
func semanticWordCounts(currentText, previousText string) (added, removed int) {
	curWords := strings.Fields(currentText)
	prevWords := strings.Fields(previousText)
	if len(curWords) == 0 || len(prevWords) == 0 {
		return len(curWords), len(prevWords)
	}

	prevDoc := strings.Join(prevWords, "\n") + "\n"
	curDoc := strings.Join(curWords, "\n") + "\n"

	dmp := diffmatchpatch.New()
	rPrev, rCur, _ := dmp.DiffLinesToRunes(prevDoc, curDoc)
	diffs := dmp.DiffMainRunes(rPrev, rCur, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += n
		case diffmatchpatch.DiffDelete:
			removed += n
		}
	}
	return added, removed
}
