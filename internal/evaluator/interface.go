// Package evaluator runs the SEO evaluation of a crawled domain: it loads the
// scan results of a (domain, scan date) pair, checks every URL on the four
// content categories concurrently and stores one issue bundle per URL.
package evaluator

import (
	"context"
	"seoeval/pkg/domain"
)

// Evaluator is the evaluation surface used by the HTTP API, the background
// worker and the command line.
//
//go:generate mockgen -package mockevaluator -source=interface.go -destination=mock/mockevaluator.go *
type Evaluator interface {
	// Run evaluates every URL of the scan and waits for all of them. The
	// summary is returned even when some URLs failed, together with an error
	// matching ErrPartialFailure. A failure to load the scan returns a nil
	// summary and an error matching ErrFetch.
	Run(ctx context.Context, domainName, dateOfScan string) (*Summary, error)
	// Enqueue schedules a background Run. It reports false when an equivalent
	// job is already waiting or running.
	Enqueue(ctx context.Context, domainName, dateOfScan string) (bool, error)
	// Issues returns the stored issue bundles of a scan.
	Issues(ctx context.Context, domainName, dateOfScan string) ([]domain.URLIssues, error)
}

// Checker evaluates one category of a page. Checks report content problems as
// issues; an error means the input could not be evaluated at all. The
// Category of the returned result is filled in by the caller. urlID lets the
// metadata check locate its page in the duplicate context.
type Checker interface {
	CheckMeta(ctx context.Context,
		urlID string,
		meta domain.MetaData,
		dup *domain.DuplicateContext) (domain.IssueResult, error)
	CheckBody(ctx context.Context, body domain.BodyData) (domain.IssueResult, error)
	CheckSocial(ctx context.Context, social domain.SocialData) (domain.IssueResult, error)
	CheckSchema(ctx context.Context, schema domain.SchemaData) (domain.IssueResult, error)
}
