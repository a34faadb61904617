package sqlstore

import (
	"context"
	"fmt"
	"seoeval/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

// ScanResults returns every URL stored for the scan keyed by url id.
func (s *Store) ScanResults(ctx context.Context, domainName, dateOfScan string) (domain.ScanResultSet, error) {
	var rows []scanResultRow
	if err := s.Builder.From(scanResultsTable).
		Select(scanResultColumns...).
		Where(
			goqu.I("domain").Eq(domainName),
			goqu.I("scan_date").Eq(dateOfScan),
		).
		Order(goqu.I("url_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch scan results: %w", err)
	}

	set := make(domain.ScanResultSet, len(rows))
	for i := range rows {
		data, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		set[rows[i].URLID] = data
	}

	return set, nil
}

// DuplicateContext builds the duplicate index of the scan from the
// fingerprint columns written alongside the scan results.
func (s *Store) DuplicateContext(ctx context.Context, domainName, dateOfScan string) (*domain.DuplicateContext, error) {
	var rows []fingerprintRow
	if err := s.Builder.From(scanResultsTable).
		Select(fingerprintColumns...).
		Where(
			goqu.I("domain").Eq(domainName),
			goqu.I("scan_date").Eq(dateOfScan),
		).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch page fingerprints: %w", err)
	}

	fps := make([]domain.PageFingerprint, len(rows))
	for i, row := range rows {
		fps[i] = domain.PageFingerprint{
			URLID:       row.URLID,
			Title:       row.Title,
			Description: row.Description,
			ContentHash: row.ContentHash,
		}
	}

	return domain.NewDuplicateContext(fps), nil
}

// StoreScanResults upserts the given URLs of the scan in a single statement.
func (s *Store) StoreScanResults(ctx context.Context,
	domainName, dateOfScan string,
	results domain.ScanResultSet) error {
	if len(results) == 0 {
		return nil
	}

	ids := results.URLIDs()
	rows := make([]scanResultRow, len(ids))
	for i, id := range ids {
		if err := rows[i].FromDomain(domainName, dateOfScan, id, results[id]); err != nil {
			return err
		}
	}

	_, err := s.Builder.Insert(scanResultsTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("domain, scan_date, url_id", goqu.Record{
			"meta":         goqu.L("excluded.meta"),
			"body":         goqu.L("excluded.body"),
			"social":       goqu.L("excluded.social"),
			"schema":       goqu.L("excluded.schema"),
			"title":        goqu.L("excluded.title"),
			"description":  goqu.L("excluded.description"),
			"content_hash": goqu.L("excluded.content_hash"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store scan results: %w", err)
	}

	return nil
}
