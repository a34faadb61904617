package storage

import (
	"context"
	"seoeval/pkg/domain"
)

// ScanResultStorage is the scan data source. Scans are addressed by the crawled
// domain and the scan date; every URL of a scan is keyed by its url id.
type ScanResultStorage interface {
	// ScanResults returns every URL of the scan. An unknown scan yields an empty
	// set and no error.
	ScanResults(ctx context.Context, domainName, dateOfScan string) (domain.ScanResultSet, error)
	// DuplicateContext returns the cross-page index of titles, descriptions and
	// content hashes of the scan.
	DuplicateContext(ctx context.Context, domainName, dateOfScan string) (*domain.DuplicateContext, error)
	// StoreScanResults inserts or replaces the given URLs of the scan.
	StoreScanResults(ctx context.Context, domainName, dateOfScan string, results domain.ScanResultSet) error
}

// IssueStorage is the issue sink.
type IssueStorage interface {
	// StoreIssues persists the bundle of cfg.URLID. Submitting the same
	// (domain, date, url id) again replaces the stored bundle.
	StoreIssues(ctx context.Context, cfg domain.ScanConfig, bundle domain.IssueBundle) error
	// Issues returns the stored bundles of a scan ordered by url id.
	// serrors.ErrNotFound is returned when the scan has none.
	Issues(ctx context.Context, domainName, dateOfScan string) ([]domain.URLIssues, error)
}
