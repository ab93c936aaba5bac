// Package diff shows how the normalizers rewrote duration text: the raw
// input against the text that was finally parsed.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines shown before/after changes.
// When equal sections exceed 2*contextLines, they're collapsed with "...".
const contextLines = 3

const (
	red   = "\033[31m"
	green = "\033[32m"
	reset = "\033[0m"
)

// Result holds diff output.
type Result struct {
	Old     string `json:"old"`     // old label
	New     string `json:"new"`     // new label
	Diff    string `json:"diff"`    // plain line diff text
	Inline  string `json:"inline"`  // single-line character diff
	Changed bool   `json:"changed"` // whether the contents differ
}

// Compute returns a diff between old and new content.
func Compute(oldContent, newContent, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	d := dmp.DiffMain(oldContent, newContent, false)
	d = dmp.DiffCleanupSemantic(d)

	return Result{
		Old:     oldLabel,
		New:     newLabel,
		Diff:    format(d),
		Inline:  inline(d, false),
		Changed: oldContent != newContent,
	}
}

// format converts diffs to unified-style text. Character diffs are folded
// back into whole old and new lines first.
func format(diffs []diffmatchpatch.Diff) string {
	dmp := diffmatchpatch.New()
	oldText, newText := dmp.DiffText1(diffs), dmp.DiffText2(diffs)

	var sb strings.Builder
	if oldText == newText {
		writeLines(&sb, "  ", oldText)
		return sb.String()
	}

	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	lineDiffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	for _, d := range lineDiffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writeLines(&sb, "- ", d.Text)
		case diffmatchpatch.DiffInsert:
			writeLines(&sb, "+ ", d.Text)
		case diffmatchpatch.DiffEqual:
			writeEqual(&sb, d.Text)
		}
	}
	return sb.String()
}

// writeLines prefixes each line of text.
func writeLines(sb *strings.Builder, prefix, text string) {
	// Trim trailing newline to avoid artefact empty string from Split
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return
	}
	for _, l := range strings.Split(text, "\n") {
		sb.WriteString(prefix + l + "\n")
	}
}

func writeEqual(sb *strings.Builder, text string) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) <= 2*contextLines {
		writeLines(sb, "  ", text)
		return
	}
	for i := range contextLines {
		sb.WriteString("  " + lines[i] + "\n")
	}
	sb.WriteString("  ...\n")
	for i := len(lines) - contextLines; i < len(lines); i++ {
		sb.WriteString("  " + lines[i] + "\n")
	}
}

// inline renders a character diff on one line: removed text as [-x-] and
// inserted text as {+x+}, or coloured without markers.
func inline(diffs []diffmatchpatch.Diff, colour bool) string {
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			if colour {
				b.WriteString(red + d.Text + reset)
			} else {
				b.WriteString("[-" + d.Text + "-]")
			}
		case diffmatchpatch.DiffInsert:
			if colour {
				b.WriteString(green + d.Text + reset)
			} else {
				b.WriteString("{+" + d.Text + "+}")
			}
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// Inline returns the single-line character diff of old against new.
func Inline(oldContent, newContent string, colour bool) string {
	dmp := diffmatchpatch.New()
	d := dmp.DiffCleanupSemantic(dmp.DiffMain(oldContent, newContent, false))
	return inline(d, colour)
}

// Colourise adds ANSI colours to diff output.
func Colourise(d string) string {
	var b strings.Builder
	for _, line := range strings.Split(d, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- "):
			b.WriteString(red + line + reset + "\n")
		case strings.HasPrefix(line, "+ "):
			b.WriteString(green + line + reset + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// Format returns the full diff with header.
func (r Result) Format(colour bool) string {
	header := fmt.Sprintf("--- %s\n+++ %s\n", r.Old, r.New)
	if colour {
		return header + Colourise(r.Diff)
	}
	return header + r.Diff
}
