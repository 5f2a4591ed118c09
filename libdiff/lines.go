package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines compares two renderings line by line. Each line of the result is
// prefixed with "-" when only a has it, "+" when only b has it, and a space
// otherwise. Identical inputs give the empty string.
func Lines(a, b string) string {
	if a == b {
		return ""
	}
	dmp := diffpatch.New()
	ra, rb, lines := dmp.DiffLinesToRunes(withNL(a), withNL(b))
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(ra, rb, false), lines)
	out := &strings.Builder{}
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(line)
		}
	}
	return out.String()
}

func withNL(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
