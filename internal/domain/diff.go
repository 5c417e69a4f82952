package domain

import (
	"github.com/pmezard/go-difflib/difflib"

	m "fastgen.dev/pkg/fastgen/internal/model"
)

const diffContextLines = 3

// bindingsDiff returns a unified diff between two versions of the bindings
// of job. Identical contents produce an empty diff.
func bindingsDiff(job m.Job, before, after []byte) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: string(job.Out) + " (before)",
		ToFile:   string(job.Out) + " (after)",
		Context:  diffContextLines,
	})
}
