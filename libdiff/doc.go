// Package libdiff computes line diffs of rendered documents and applies
// them. A trailing newline is not significant: texts are compared as
// sequences of lines.
package libdiff
