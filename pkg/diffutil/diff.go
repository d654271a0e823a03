// Package diffutil computes line-based unified diffs for check mode.
package diffutil

import (
	"fmt"
	"strings"
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

// Op classifies a diff line.
type Op int

const (
	// OpContext is an unchanged line present in both versions.
	OpContext Op = iota

	// OpAdd is a line present only in the modified version.
	OpAdd

	// OpDelete is a line present only in the original version.
	OpDelete
)

// Line is one line of a hunk, without its +/-/space prefix.
type Line struct {
	Op      Op
	Content string
}

// Hunk is a contiguous group of changes with surrounding context.
type Hunk struct {
	OrigStart, OrigCount int
	ModStart, ModCount   int
	Lines                []Line
}

// Diff is a unified diff between two versions of a document.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// Generate returns the unified diff between original and modified, or nil
// when the contents are identical.
func Generate(path string, original, modified []byte) *Diff {
	orig := toLines(original)
	mod := toLines(modified)

	ops := diffOps(orig, mod)

	d := &Diff{Path: path, Hunks: groupHunks(ops)}
	if len(d.Hunks) == 0 {
		return nil
	}
	for _, h := range d.Hunks {
		for _, l := range h.Lines {
			switch l.Op {
			case OpAdd:
				d.Additions++
			case OpDelete:
				d.Deletions++
			}
		}
	}
	return d
}

// HasChanges reports whether the diff contains any hunks.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String renders the diff in unified format with ---/+++ headers.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)
	for _, h := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
			h.OrigStart, h.OrigCount, h.ModStart, h.ModCount)
		for _, l := range h.Lines {
			switch l.Op {
			case OpContext:
				fmt.Fprintf(&b, " %s\n", l.Content)
			case OpAdd:
				fmt.Fprintf(&b, "+%s\n", l.Content)
			case OpDelete:
				fmt.Fprintf(&b, "-%s\n", l.Content)
			}
		}
	}
	return b.String()
}

// toLines splits content into lines without a trailing empty element.
func toLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffOps walks both line slices against their LCS and emits the flat
// operation sequence.
func diffOps(orig, mod []string) []Line {
	lcs := longestCommonSubsequence(orig, mod)

	var ops []Line
	oi, mi, li := 0, 0, 0
	for oi < len(orig) || mi < len(mod) {
		if li < len(lcs) && oi < len(orig) && mi < len(mod) &&
			orig[oi] == lcs[li] && mod[mi] == lcs[li] {
			ops = append(ops, Line{Op: OpContext, Content: orig[oi]})
			oi++
			mi++
			li++
			continue
		}
		for oi < len(orig) && (li >= len(lcs) || orig[oi] != lcs[li]) {
			ops = append(ops, Line{Op: OpDelete, Content: orig[oi]})
			oi++
		}
		for mi < len(mod) && (li >= len(lcs) || mod[mi] != lcs[li]) {
			ops = append(ops, Line{Op: OpAdd, Content: mod[mi]})
			mi++
		}
	}
	return ops
}

// groupHunks clusters change runs that are within 2*contextLines of each
// other into hunks with context.
func groupHunks(ops []Line) []Hunk {
	type span struct{ start, end int }

	var spans []span
	open := -1
	for i, op := range ops {
		if op.Op != OpContext {
			if open < 0 {
				open = i
			}
			continue
		}
		if open >= 0 {
			spans = append(spans, span{open, i})
			open = -1
		}
	}
	if open >= 0 {
		spans = append(spans, span{open, len(ops)})
	}
	if len(spans) == 0 {
		return nil
	}

	var hunks []Hunk
	for i := 0; i < len(spans); {
		j := i + 1
		for j < len(spans) && spans[j].start-spans[j-1].end <= contextLines*2 {
			j++
		}
		hunks = append(hunks, buildHunk(ops, spans[i].start, spans[j-1].end))
		i = j
	}
	return hunks
}

// buildHunk expands a change span with context and computes the hunk
// header counts.
func buildHunk(ops []Line, changeStart, changeEnd int) Hunk {
	start := max(changeStart-contextLines, 0)
	end := min(changeEnd+contextLines, len(ops))

	h := Hunk{OrigStart: 1, ModStart: 1}
	for _, op := range ops[:start] {
		if op.Op != OpAdd {
			h.OrigStart++
		}
		if op.Op != OpDelete {
			h.ModStart++
		}
	}

	h.Lines = append(h.Lines, ops[start:end]...)
	for _, op := range h.Lines {
		if op.Op != OpAdd {
			h.OrigCount++
		}
		if op.Op != OpDelete {
			h.ModCount++
		}
	}
	return h
}

// longestCommonSubsequence computes the LCS of two line slices with the
// classic dynamic-programming table.
func longestCommonSubsequence(orig, mod []string) []string {
	if len(orig) == 0 || len(mod) == 0 {
		return nil
	}

	dp := make([][]int, len(orig)+1)
	for i := range dp {
		dp[i] = make([]int, len(mod)+1)
	}
	for i := 1; i <= len(orig); i++ {
		for j := 1; j <= len(mod); j++ {
			if orig[i-1] == mod[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	n := dp[len(orig)][len(mod)]
	if n == 0 {
		return nil
	}

	lcs := make([]string, n)
	i, j := len(orig), len(mod)
	for i > 0 && j > 0 {
		switch {
		case orig[i-1] == mod[j-1]:
			n--
			lcs[n] = orig[i-1]
			i--
			j--
		case dp[i-1][j] > dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	return lcs
}
