package evaluator

import "seoeval/pkg/serrors"

// Error kinds returned by Run. They can be matched with errors.Is.
var (
	// ErrFetch means the scan results or the duplicate context could not be
	// loaded. Nothing was written.
	ErrFetch = serrors.NewKind("FETCH_FAILED")
	// ErrCheck means at least one category check of a URL failed, so its
	// bundle was not stored.
	ErrCheck = serrors.NewKind("CHECK_FAILED")
	// ErrSink means the issue bundle of a URL could not be stored.
	ErrSink = serrors.NewKind("SINK_FAILED")
	// ErrPartialFailure means some URLs of a run failed while the others
	// completed.
	ErrPartialFailure = serrors.NewKind("PARTIAL_FAILURE")
)
