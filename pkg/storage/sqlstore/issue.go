package sqlstore

import (
	"context"
	"fmt"
	"seoeval/pkg/domain"
	"seoeval/pkg/serrors"

	"github.com/doug-martin/goqu/v9"
)

// StoreIssues upserts the issue bundle of cfg.URLID.
func (s *Store) StoreIssues(ctx context.Context, cfg domain.ScanConfig, bundle domain.IssueBundle) error {
	if cfg.URLID == "" {
		return serrors.With(serrors.ErrBadRequest, "issue bundle for %s/%s has no url id", cfg.Domain, cfg.DateOfScan)
	}

	var row issueRow
	if err := row.FromDomain(cfg, bundle); err != nil {
		return err
	}

	_, err := s.Builder.Insert(issuesTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("domain, scan_date, url_id", goqu.Record{
			"meta_issues":   goqu.L("excluded.meta_issues"),
			"body_issues":   goqu.L("excluded.body_issues"),
			"social_issues": goqu.L("excluded.social_issues"),
			"schema_issues": goqu.L("excluded.schema_issues"),
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store issues of %s: %w", cfg.URLID, err)
	}

	return nil
}

// Issues returns the stored bundles of the scan ordered by url id.
func (s *Store) Issues(ctx context.Context, domainName, dateOfScan string) ([]domain.URLIssues, error) {
	var rows []issueRow
	if err := s.Builder.From(issuesTable).
		Select(issueColumns...).
		Where(
			goqu.I("domain").Eq(domainName),
			goqu.I("scan_date").Eq(dateOfScan),
		).
		Order(goqu.I("url_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch issues: %w", err)
	}
	if len(rows) == 0 {
		return nil, serrors.With(serrors.ErrNotFound, "no issues stored for %s on %s", domainName, dateOfScan)
	}

	out := make([]domain.URLIssues, 0, len(rows))
	for i := range rows {
		issues, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, issues)
	}

	return out, nil
}
