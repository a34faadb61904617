// Package report renders evaluation results as Markdown.
package report

import (
	"fmt"
	"io"
	"seoeval/internal/evaluator"
	"seoeval/pkg/domain"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
)

// Page is the issue bundle of one URL.
type Page struct {
	URLID  string
	Bundle domain.IssueBundle
}

// Failure is a URL that could not be evaluated.
type Failure struct {
	URLID string
	Err   string
}

// Report is the renderable view of an evaluation.
type Report struct {
	Config   domain.ScanConfig
	Pages    []Page
	Failures []Failure
}

// FromSummary builds a report of a finished run.
func FromSummary(s *evaluator.Summary) *Report {
	r := &Report{Config: s.Config}
	for _, o := range s.Outcomes {
		switch {
		case o.Err != nil:
			r.Failures = append(r.Failures, Failure{URLID: o.URLID, Err: o.Err.Error()})
		case o.Bundle != nil:
			r.Pages = append(r.Pages, Page{URLID: o.URLID, Bundle: *o.Bundle})
		}
	}

	return r
}

// FromIssues builds a report of stored issue bundles.
func FromIssues(cfg domain.ScanConfig, issues []domain.URLIssues) *Report {
	r := &Report{Config: cfg}
	for _, i := range issues {
		r.Pages = append(r.Pages, Page{URLID: i.URLID, Bundle: i.Bundle})
	}

	return r
}

// SeverityCounts returns the number of issues of each severity.
func (r *Report) SeverityCounts() map[domain.Severity]int {
	counts := map[domain.Severity]int{}
	for _, p := range r.Pages {
		for _, res := range categories(p.Bundle) {
			for _, issue := range res.Issues {
				counts[issue.Severity]++
			}
		}
	}

	return counts
}

func categories(b domain.IssueBundle) []domain.IssueResult {
	return []domain.IssueResult{b.Meta, b.Body, b.Social, b.Schema}
}

// WriteMarkdown renders r to w.
func WriteMarkdown(w io.Writer, r *Report) error {
	md := markdown.NewMarkdown(w)

	md.H1f("SEO report for %s", r.Config.Domain)
	md.PlainText("")

	counts := r.SeverityCounts()
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Domain", markdown.Code(r.Config.Domain)},
			{"Scan", markdown.Code(r.Config.DateOfScan)},
			{"Pages evaluated", strconv.Itoa(len(r.Pages))},
			{"Pages failed", strconv.Itoa(len(r.Failures))},
			{"Errors", strconv.Itoa(counts[domain.SeverityError])},
			{"Warnings", strconv.Itoa(counts[domain.SeverityWarning])},
			{"Notices", strconv.Itoa(counts[domain.SeverityInfo])},
		},
	})
	md.PlainText("")

	switch {
	case len(r.Failures) > 0:
		md.Cautionf("%d page(s) could not be evaluated.", len(r.Failures))
	case counts[domain.SeverityError] > 0:
		md.Warningf("%d error(s) found.", counts[domain.SeverityError])
	case len(r.Pages) == 0:
		md.Note("The scan has no pages.")
	case counts[domain.SeverityWarning]+counts[domain.SeverityInfo] == 0:
		md.Tip("No issues found.")
	default:
		md.Note("Only warnings and notices found.")
	}
	md.PlainText("")

	if len(r.Failures) > 0 {
		md.H2("Failures")
		md.PlainText("")
		items := make([]string, len(r.Failures))
		for i, f := range r.Failures {
			items[i] = fmt.Sprintf("%s: %s", markdown.Code(f.URLID), oneLine(f.Err))
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	if len(r.Pages) > 0 {
		md.H2("Pages")
		md.PlainText("")
	}
	for _, p := range r.Pages {
		md.H3(p.URLID)
		md.PlainText("")
		if p.Bundle.Count() == 0 {
			md.PlainText("No issues.")
			md.PlainText("")

			continue
		}

		var rows [][]string
		for _, res := range categories(p.Bundle) {
			for _, issue := range res.Issues {
				rows = append(rows, []string{
					string(res.Category),
					string(issue.Severity),
					markdown.Code(issue.Code),
					cell(issue.Message),
				})
			}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Category", "Severity", "Code", "Message"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if err := md.Build(); err != nil {
		return fmt.Errorf("could not write markdown report: %w", err)
	}

	return nil
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func cell(s string) string {
	return strings.ReplaceAll(oneLine(s), "|", `\|`)
}
