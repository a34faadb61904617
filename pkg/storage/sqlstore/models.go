package sqlstore

import (
	"encoding/json"
	"fmt"
	"seoeval/pkg/domain"
)

// JSON columns are carried as strings so the same rows work for JSONB on
// PostgreSQL and TEXT on SQLite.

type scanResultRow struct {
	Domain   string `db:"domain"`
	ScanDate string `db:"scan_date"`
	URLID    string `db:"url_id"`

	Meta   string `db:"meta"`
	Body   string `db:"body"`
	Social string `db:"social"`
	Schema string `db:"schema"`

	Title       string `db:"title"`
	Description string `db:"description"`
	ContentHash string `db:"content_hash"`
}

type fingerprintRow struct {
	URLID       string `db:"url_id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	ContentHash string `db:"content_hash"`
}

type issueRow struct {
	Domain   string `db:"domain"`
	ScanDate string `db:"scan_date"`
	URLID    string `db:"url_id"`

	MetaIssues   string `db:"meta_issues"`
	BodyIssues   string `db:"body_issues"`
	SocialIssues string `db:"social_issues"`
	SchemaIssues string `db:"schema_issues"`
}

// Column lists of the reads. Timestamps are maintained by the database and
// never scanned.
var (
	scanResultColumns = []any{
		"domain", "scan_date", "url_id",
		"meta", "body", "social", "schema",
		"title", "description", "content_hash",
	}
	fingerprintColumns = []any{"url_id", "title", "description", "content_hash"}
	issueColumns       = []any{
		"domain", "scan_date", "url_id",
		"meta_issues", "body_issues", "social_issues", "schema_issues",
	}
)

func marshalString(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	return string(b), nil
}

func unmarshalString(s string, v any) error {
	if s == "" {
		return nil
	}

	return json.Unmarshal([]byte(s), v) //nolint: wrapcheck
}

func (r *scanResultRow) FromDomain(domainName, dateOfScan, urlID string, data domain.URLScanData) error {
	fp := data.Fingerprint(urlID)
	*r = scanResultRow{
		Domain:      domainName,
		ScanDate:    dateOfScan,
		URLID:       urlID,
		Title:       fp.Title,
		Description: fp.Description,
		ContentHash: fp.ContentHash,
	}

	var err error
	if r.Meta, err = marshalString(data.Meta); err != nil {
		return fmt.Errorf("could not marshal meta of %s: %w", urlID, err)
	}
	if r.Body, err = marshalString(data.Body); err != nil {
		return fmt.Errorf("could not marshal body of %s: %w", urlID, err)
	}
	if r.Social, err = marshalString(data.Social); err != nil {
		return fmt.Errorf("could not marshal social of %s: %w", urlID, err)
	}
	if r.Schema, err = marshalString(data.Schema); err != nil {
		return fmt.Errorf("could not marshal schema of %s: %w", urlID, err)
	}

	return nil
}

func (r *scanResultRow) ToDomain() (domain.URLScanData, error) {
	var data domain.URLScanData
	if err := unmarshalString(r.Meta, &data.Meta); err != nil {
		return data, fmt.Errorf("could not unmarshal meta of %s: %w", r.URLID, err)
	}
	if err := unmarshalString(r.Body, &data.Body); err != nil {
		return data, fmt.Errorf("could not unmarshal body of %s: %w", r.URLID, err)
	}
	if err := unmarshalString(r.Social, &data.Social); err != nil {
		return data, fmt.Errorf("could not unmarshal social of %s: %w", r.URLID, err)
	}
	if err := unmarshalString(r.Schema, &data.Schema); err != nil {
		return data, fmt.Errorf("could not unmarshal schema of %s: %w", r.URLID, err)
	}

	return data, nil
}

func (r *issueRow) FromDomain(cfg domain.ScanConfig, bundle domain.IssueBundle) error {
	*r = issueRow{
		Domain:   cfg.Domain,
		ScanDate: cfg.DateOfScan,
		URLID:    cfg.URLID,
	}

	var err error
	if r.MetaIssues, err = marshalString(bundle.Meta); err != nil {
		return fmt.Errorf("could not marshal meta issues: %w", err)
	}
	if r.BodyIssues, err = marshalString(bundle.Body); err != nil {
		return fmt.Errorf("could not marshal body issues: %w", err)
	}
	if r.SocialIssues, err = marshalString(bundle.Social); err != nil {
		return fmt.Errorf("could not marshal social issues: %w", err)
	}
	if r.SchemaIssues, err = marshalString(bundle.Schema); err != nil {
		return fmt.Errorf("could not marshal schema issues: %w", err)
	}

	return nil
}

func (r *issueRow) ToDomain() (domain.URLIssues, error) {
	out := domain.URLIssues{URLID: r.URLID}
	if err := unmarshalString(r.MetaIssues, &out.Bundle.Meta); err != nil {
		return out, fmt.Errorf("could not unmarshal meta issues of %s: %w", r.URLID, err)
	}
	if err := unmarshalString(r.BodyIssues, &out.Bundle.Body); err != nil {
		return out, fmt.Errorf("could not unmarshal body issues of %s: %w", r.URLID, err)
	}
	if err := unmarshalString(r.SocialIssues, &out.Bundle.Social); err != nil {
		return out, fmt.Errorf("could not unmarshal social issues of %s: %w", r.URLID, err)
	}
	if err := unmarshalString(r.SchemaIssues, &out.Bundle.Schema); err != nil {
		return out, fmt.Errorf("could not unmarshal schema issues of %s: %w", r.URLID, err)
	}

	return out, nil
}
