package plaintext

import (
	"regexp"
	"strings"
)

// Terminator marks where a labeled value ends.
type Terminator int

const (
	// BlankLine ends a value at the next paragraph boundary.
	BlankLine Terminator = iota
	// LineBreak ends a value at the end of the line.
	LineBreak
)

var (
	blankLineRe = regexp.MustCompile(`\n[ \t]*\n`)
	lineBreakRe = regexp.MustCompile(`[ \t]*\n[ \t]*`)
)

// Label compiles a pattern that matches any of names followed by a colon
// at the start of a line. Matching is case-insensitive.
func Label(names ...string) *regexp.Regexp {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return regexp.MustCompile(`(?im)^[ \t]*(?:` + strings.Join(quoted, "|") + `):[ \t]*`)
}

// Heading compiles a pattern that matches a line consisting only of name,
// along with any blank lines that follow it. Matching is case-insensitive.
func Heading(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^[ \t]*` + regexp.QuoteMeta(name) + `[ \t]*\n(?:[ \t]*\n)*`)
}

// ExtractLabeled returns the text following the first match of label up to
// term, with the terminator itself excluded. A value that runs to the end
// of text is returned as is. ok is false when label does not occur.
func ExtractLabeled(text string, label *regexp.Regexp, term Terminator) (value string, ok bool) {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	loc := label.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	rest := text[loc[1]:]

	switch term {
	case LineBreak:
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			rest = rest[:i]
		}
	default:
		if loc := blankLineRe.FindStringIndex(rest); loc != nil {
			rest = rest[:loc[0]]
		}
	}
	return rest, true
}

// Collapse joins the lines of a multi-line value with single spaces.
func Collapse(s string) string {
	return strings.TrimSpace(lineBreakRe.ReplaceAllString(strings.ReplaceAll(s, "\r\n", "\n"), " "))
}

// Lines splits a multi-line value into trimmed, non-empty lines.
func Lines(s string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Field is a labeled value in plain text.
type Field struct {
	Label      *regexp.Regexp
	Terminator Terminator
}

// Value returns the field collapsed to a single line, or an empty string.
func (f Field) Value(text string) string {
	v, _ := ExtractLabeled(text, f.Label, f.Terminator)
	return Collapse(v)
}

// Lines returns the field split into trimmed non-empty lines.
func (f Field) Lines(text string) []string {
	v, _ := ExtractLabeled(text, f.Label, f.Terminator)
	return Lines(v)
}
