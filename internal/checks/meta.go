package checks

import (
	"context"
	"fmt"
	"net/url"
	"seoeval/pkg/domain"
	"strings"
	"unicode/utf8"
)

// CheckMeta checks the document metadata. A title or description is
// reported as duplicate when more than one page of the scan carries it, and
// the page itself when its visible text is shared with another page.
func (b *Baseline) CheckMeta(ctx context.Context,
	urlID string,
	meta domain.MetaData,
	dup *domain.DuplicateContext) (domain.IssueResult, error) {
	res := domain.IssueResult{Category: domain.CategoryMeta}
	if err := checkContext(ctx); err != nil {
		return res, err
	}

	title := strings.TrimSpace(meta.Title)
	switch n := utf8.RuneCountInString(title); {
	case n == 0:
		res.Add(CodeMissingTitle, domain.SeverityError, "page has no title")
	case n < b.options.TitleMinLength:
		res.Add(CodeTitleTooShort, domain.SeverityWarning,
			fmt.Sprintf("title is %d characters, shorter than %d", n, b.options.TitleMinLength))
	case n > b.options.TitleMaxLength:
		res.Add(CodeTitleTooLong, domain.SeverityWarning,
			fmt.Sprintf("title is %d characters, longer than %d", n, b.options.TitleMaxLength))
	}
	if title != "" {
		if pages := dup.PagesWithTitle(title); len(pages) > 1 {
			res.Add(CodeDuplicateTitle, domain.SeverityWarning,
				fmt.Sprintf("title is shared by %d pages", len(pages)))
		}
	}

	description := strings.TrimSpace(meta.Description)
	switch n := utf8.RuneCountInString(description); {
	case n == 0:
		res.Add(CodeMissingDescription, domain.SeverityWarning, "page has no meta description")
	case n < b.options.DescriptionMinLength:
		res.Add(CodeDescriptionTooShort, domain.SeverityInfo,
			fmt.Sprintf("description is %d characters, shorter than %d", n, b.options.DescriptionMinLength))
	case n > b.options.DescriptionMaxLength:
		res.Add(CodeDescriptionTooLong, domain.SeverityInfo,
			fmt.Sprintf("description is %d characters, longer than %d", n, b.options.DescriptionMaxLength))
	}
	if description != "" {
		if pages := dup.PagesWithDescription(description); len(pages) > 1 {
			res.Add(CodeDuplicateDescription, domain.SeverityWarning,
				fmt.Sprintf("description is shared by %d pages", len(pages)))
		}
	}

	if pages := dup.ContentDuplicatesOf(urlID); pages != nil {
		res.Add(CodeDuplicateContent, domain.SeverityWarning,
			fmt.Sprintf("content is shared by pages %s", strings.Join(pages, ", ")))
	}

	canonical := strings.TrimSpace(meta.Canonical)
	if canonical == "" {
		res.Add(CodeMissingCanonical, domain.SeverityWarning, "page has no canonical link")
	} else if u, err := url.Parse(canonical); err != nil || !u.IsAbs() {
		res.Add(CodeRelativeCanonical, domain.SeverityWarning,
			fmt.Sprintf("canonical %q is not an absolute URL", canonical))
	}

	if hasDirective(meta.Robots, "noindex") {
		res.Add(CodeNoindex, domain.SeverityWarning, "robots directives exclude the page from indexing")
	}

	if strings.TrimSpace(meta.Lang) == "" {
		res.Add(CodeMissingLang, domain.SeverityInfo, "document language is not declared")
	}

	return res, nil
}

// hasDirective reports whether the comma separated robots value contains
// directive, ignoring case.
func hasDirective(robots, directive string) bool {
	for _, d := range strings.Split(robots, ",") {
		if strings.EqualFold(strings.TrimSpace(d), directive) {
			return true
		}
	}

	return false
}
