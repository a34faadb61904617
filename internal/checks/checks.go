// Package checks implements the baseline SEO rule set used by the evaluator.
// Every check is independent and reads one category of the scan data of a
// single page; only the metadata check looks across pages, through the
// duplicate context of the scan.
package checks

import (
	"context"
	"fmt"
)

// Issue codes reported by the baseline checks.
const (
	CodeMissingTitle         = "missing_title"
	CodeTitleTooShort        = "title_too_short"
	CodeTitleTooLong         = "title_too_long"
	CodeDuplicateTitle       = "duplicate_title"
	CodeMissingDescription   = "missing_description"
	CodeDescriptionTooShort  = "description_too_short"
	CodeDescriptionTooLong   = "description_too_long"
	CodeDuplicateDescription = "duplicate_description"
	CodeDuplicateContent     = "duplicate_content"
	CodeMissingCanonical     = "missing_canonical"
	CodeRelativeCanonical    = "relative_canonical"
	CodeNoindex              = "noindex"
	CodeMissingLang          = "missing_lang"

	CodeEmptyBody       = "empty_body"
	CodeMissingH1       = "missing_h1"
	CodeMultipleH1      = "multiple_h1"
	CodeImageMissingAlt = "image_missing_alt"
	CodeThinContent     = "thin_content"
	CodeRedirect        = "redirect_status"
	CodeErrorStatus     = "error_status"

	CodeMissingOpenGraph   = "missing_open_graph_tag"
	CodeMissingTwitterCard = "missing_twitter_card"

	CodeMissingStructuredData = "missing_structured_data"
	CodeInvalidJSONLD         = "invalid_json_ld"
	CodeMissingSchemaContext  = "missing_schema_context"
	CodeMissingSchemaType     = "missing_schema_type"
)

// Options holds the thresholds of the baseline rules. Lengths are counted in
// characters.
type Options struct {
	TitleMinLength       int
	TitleMaxLength       int
	DescriptionMinLength int
	DescriptionMaxLength int
	// MinWords is the word count under which a page is reported as thin.
	MinWords int
}

// DefaultOptions returns commonly recommended thresholds.
func DefaultOptions() Options {
	return Options{
		TitleMinLength:       30,
		TitleMaxLength:       60,
		DescriptionMinLength: 70,
		DescriptionMaxLength: 160,
		MinWords:             300,
	}
}

// Baseline is the default rule set. It is stateless and safe for concurrent use.
type Baseline struct {
	options Options
}

// New returns the baseline checks with DefaultOptions.
func New() *Baseline {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions returns the baseline checks with custom thresholds.
func NewWithOptions(options Options) *Baseline {
	return &Baseline{options: options}
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("check aborted: %w", err)
	}

	return nil
}
