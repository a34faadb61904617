package evaluator

import (
	"errors"
	"seoeval/pkg/domain"
	"seoeval/pkg/serrors"
)

// URLOutcome is the result of evaluating one URL. Exactly one of Bundle and
// Err is set.
type URLOutcome struct {
	URLID string
	// Bundle is the stored issue bundle.
	Bundle *domain.IssueBundle
	// Err matches ErrCheck or ErrSink.
	Err error
}

// Summary lists the outcome of every URL of a run in url id order.
type Summary struct {
	Config   domain.ScanConfig
	Outcomes []URLOutcome
}

// Succeeded returns the ids of the URLs whose bundle was stored.
func (s *Summary) Succeeded() []string {
	var ids []string
	for _, o := range s.Outcomes {
		if o.Err == nil {
			ids = append(ids, o.URLID)
		}
	}

	return ids
}

// Failed returns the outcomes that carry an error.
func (s *Summary) Failed() []URLOutcome {
	var failed []URLOutcome
	for _, o := range s.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}

	return failed
}

// IssueCount returns the number of issues over all stored bundles.
func (s *Summary) IssueCount() int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Bundle != nil {
			n += o.Bundle.Count()
		}
	}

	return n
}

// Err joins the errors of the failed URLs under ErrPartialFailure, or
// returns nil when every URL succeeded.
func (s *Summary) Err() error {
	failed := s.Failed()
	if len(failed) == 0 {
		return nil
	}

	errs := make([]error, len(failed))
	for i, o := range failed {
		errs[i] = o.Err
	}

	return serrors.Wrap(ErrPartialFailure, errors.Join(errs...),
		"%d of %d urls failed for %s on %s",
		len(failed), len(s.Outcomes), s.Config.Domain, s.Config.DateOfScan)
}
