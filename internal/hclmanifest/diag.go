package hclmanifest

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/buildplan/internal/manifest"
)

// posOf converts an HCL source range into a manifest position.
func posOf(r hcl.Range) manifest.Pos {
	return manifest.Pos{Filename: r.Filename, Line: r.Start.Line, Column: r.Start.Column}
}

// diagError folds HCL diagnostics into a single MalformedManifest error
// located at the first error's subject.
func diagError(diags hcl.Diagnostics, field string) error {
	errs := diags.Errs()
	if len(errs) == 0 {
		return nil
	}
	var first *hcl.Diagnostic
	for _, d := range diags {
		if d.Severity == hcl.DiagError {
			first = d
			break
		}
	}
	var pos manifest.Pos
	if first.Subject != nil {
		pos = posOf(*first.Subject)
	}
	msg := first.Summary
	if first.Detail != "" {
		msg = fmt.Sprintf("%s; %s", msg, strings.TrimSuffix(first.Detail, "."))
	}
	if extra := len(errs) - 1; extra > 0 {
		msg = fmt.Sprintf("%s (and %d more)", msg, extra)
	}
	return manifest.Malformedf(pos, field, "%s", msg)
}
