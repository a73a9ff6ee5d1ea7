package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/skillmeta/internal/errors"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes results, one block per subject in text mode or a single
// JSON array.
func (r *Reporter) Report(results ...*Result) error {
	if r.format == FormatJSON {
		if results == nil {
			results = []*Result{}
		}
		encoder := json.NewEncoder(r.out)
		encoder.SetIndent("", "  ")
		return errors.Wrap(encoder.Encode(results), "encoding JSON report")
	}

	failed := 0
	for _, result := range results {
		if result == nil {
			continue
		}
		if result.HasErrors() {
			failed++
		}
		r.reportText(result)
	}

	if len(results) > 1 {
		fmt.Fprintf(r.out, "%d skill(s) checked, %d failed\n", len(results), failed)
	}
	return nil
}

func (r *Reporter) reportText(result *Result) {
	errs := result.Errors()
	warnings := result.Warnings()

	if len(errs) == 0 {
		fmt.Fprintf(r.out, "%s %s\n", color.GreenString("[OK]"), result.Subject)
	} else {
		fmt.Fprintf(r.out, "%s %s\n", color.RedString("[FAIL]"), result.Subject)
	}

	for _, issue := range errs {
		r.printIssue(issue, color.FgRed)
	}
	for _, issue := range warnings {
		r.printIssue(issue, color.FgYellow)
	}
}

func (r *Reporter) printIssue(i Issue, c color.Attribute) {
	printer := color.New(c).SprintFunc()

	// Format:  • field: message (context) [value]
	var sb strings.Builder
	sb.WriteString("  • ")
	sb.WriteString(printer(i.Severity.String()))
	sb.WriteString(" ")

	if i.Field != "" {
		sb.WriteString(i.Field)
		sb.WriteString(": ")
	}
	sb.WriteString(i.Message)

	if len(i.Context) > 0 {
		ctxParts := make([]string, 0, len(i.Context))
		for k, v := range i.Context {
			ctxParts = append(ctxParts, fmt.Sprintf("%s=%s", k, v))
		}
		sort.Strings(ctxParts)
		sb.WriteString(" ")
		sb.WriteString(color.New(color.FgHiBlack).Sprintf("(%s)", strings.Join(ctxParts, ", ")))
	}

	if i.Value != nil {
		valStr := fmt.Sprintf("%v", i.Value)
		if len(valStr) > 50 {
			valStr = valStr[:47] + "..."
		}
		sb.WriteString(color.New(color.FgHiBlack).Sprintf(" [%s]", valStr))
	}

	fmt.Fprintln(r.out, sb.String())
}
