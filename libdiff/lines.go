package libdiff

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var ErrMismatch = errors.New("diff does not apply")

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) String() string {
	switch o {
	case Equal:
		return "equal"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

func (o Op) prefix() string {
	switch o {
	case Delete:
		return "- "
	case Insert:
		return "+ "
	default:
		return "  "
	}
}

type Line struct {
	Op   Op
	Text string
}

type Diff []Line

// Lines returns the line diff turning from into to.
func Lines(from, to string) Diff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(withNL(from), withNL(to))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res Diff
	for i := range diffs {
		d := &diffs[i]
		var op Op
		switch d.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		default:
			op = Equal
		}
		for _, ln := range split(d.Text) {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

func withNL(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Changed reports whether d has any insertions or deletions.
func (d Diff) Changed() bool {
	for _, ln := range d {
		if ln.Op != Equal {
			return true
		}
	}
	return false
}

// Counts returns the number of deleted and inserted lines.
func (d Diff) Counts() (deleted, inserted int) {
	for _, ln := range d {
		switch ln.Op {
		case Delete:
			deleted++
		case Insert:
			inserted++
		}
	}
	return
}

// Apply applies d to from, checking that the equal and deleted lines of d
// match from.
func (d Diff) Apply(from string) (string, error) {
	src := split(withNL(from))
	res := make([]string, 0, len(src))
	i := 0
	for j, ln := range d {
		if ln.Op == Insert {
			res = append(res, ln.Text)
			continue
		}
		if i >= len(src) {
			return "", fmt.Errorf("%w: line %d of diff is past the end of the text", ErrMismatch, j+1)
		}
		if src[i] != ln.Text {
			return "", fmt.Errorf("%w: line %d: got %q, expected %q", ErrMismatch, i+1, src[i], ln.Text)
		}
		if ln.Op == Equal {
			res = append(res, ln.Text)
		}
		i++
	}
	if i != len(src) {
		return "", fmt.Errorf("%w: %d trailing lines not covered", ErrMismatch, len(src)-i)
	}
	return strings.Join(res, "\n"), nil
}

func (d Diff) String() string {
	var buf strings.Builder
	d.Write(&buf, false)
	return buf.String()
}

// Write writes d one line at a time prefixed by "- ", "+ " or two spaces,
// coloring deletions red and insertions green when colors is set.
func (d Diff) Write(w io.Writer, colors bool) error {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	if colors {
		del.EnableColor()
		ins.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
	}
	for _, ln := range d {
		text := ln.Op.prefix() + ln.Text
		switch ln.Op {
		case Delete:
			text = del.Sprint(text)
		case Insert:
			text = ins.Sprint(text)
		}
		if _, err := io.WriteString(w, text+"\n"); err != nil {
			return err
		}
	}
	return nil
}
