// Package importer loads crawler scan exports into the scan data source.
//
// An export is a YAML or JSON document:
//
//	domain: example.com
//	dateOfScan: "2024-05-01"
//	urls:
//	  home:
//	    meta: {title: Home, description: Welcome}
//	    body: {html: "<h1>Home</h1>", statusCode: 200}
//	    social: {openGraph: {"og:title": Home}}
//	    schema: {jsonLd: ['{"@context":"https://schema.org","@type":"WebSite"}']}
package importer

import (
	"context"
	"fmt"
	"io"
	"seoeval/internal/evaluator"
	"seoeval/pkg/domain"
	"seoeval/pkg/logger"
	"seoeval/pkg/serrors"
	"seoeval/pkg/storage"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Export is the decoded form of a scan export.
type Export struct {
	Domain     string               `yaml:"domain"`
	DateOfScan string               `yaml:"dateOfScan"`
	URLs       domain.ScanResultSet `yaml:"urls"`
}

// Decode parses an export. Unknown fields are rejected so typos in the
// export do not silently drop data.
func Decode(r io.Reader) (*Export, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var exp Export
	if err := dec.Decode(&exp); err != nil {
		if err == io.EOF { //nolint: errorlint
			return nil, serrors.With(serrors.ErrBadRequest, "scan export is empty")
		}

		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not decode scan export")
	}

	return &exp, nil
}

// Normalize canonicalizes the domain and validates the export.
func (e *Export) Normalize() error {
	name, err := evaluator.NormalizeDomain(e.Domain)
	if err != nil {
		return err
	}
	e.Domain = name

	e.DateOfScan = strings.TrimSpace(e.DateOfScan)
	if e.DateOfScan == "" {
		return serrors.With(serrors.ErrBadRequest, "dateOfScan is required")
	}
	if len(e.URLs) == 0 {
		return serrors.With(serrors.ErrBadRequest, "scan export has no urls")
	}
	for id := range e.URLs {
		if strings.TrimSpace(id) == "" {
			return serrors.With(serrors.ErrBadRequest, "scan export has an empty url id")
		}
	}

	return nil
}

// Importer writes exports to a scan data source.
type Importer struct {
	storage storage.ScanResultStorage
}

func New(strg storage.ScanResultStorage) *Importer {
	return &Importer{storage: strg}
}

// Import decodes an export from r and stores it. Stored URLs of the same
// scan are replaced; other URLs of the scan are kept.
func (i *Importer) Import(ctx context.Context, r io.Reader) (*Export, error) {
	exp, err := Decode(r)
	if err != nil {
		return nil, err
	}
	if err := exp.Normalize(); err != nil {
		return nil, err
	}

	if err := i.storage.StoreScanResults(ctx, exp.Domain, exp.DateOfScan, exp.URLs); err != nil {
		return nil, fmt.Errorf("could not store scan results: %w", err)
	}

	logger.Info(ctx, "scan imported",
		zap.String("domain", exp.Domain),
		zap.String("dateOfScan", exp.DateOfScan),
		zap.Int("urls", len(exp.URLs)))

	return exp, nil
}

// ImportAndEnqueue stores the export and enqueues its evaluation in one
// transaction of tx. It reports whether a new job was inserted; false means
// an evaluation of the scan was already pending.
func (i *Importer) ImportAndEnqueue(ctx context.Context,
	r io.Reader,
	tx storage.Transactor,
	maxAttempts int) (*Export, bool, error) {
	exp, err := Decode(r)
	if err != nil {
		return nil, false, err
	}
	if err := exp.Normalize(); err != nil {
		return nil, false, err
	}

	var added bool
	err = tx.WithTx(ctx, func(strg storage.AllStorage) error {
		if err := strg.StoreScanResults(ctx, exp.Domain, exp.DateOfScan, exp.URLs); err != nil {
			return fmt.Errorf("could not store scan results: %w", err)
		}

		added, err = strg.AddJob(ctx, evaluator.NewJobArgs(exp.Domain, exp.DateOfScan, maxAttempts), nil)
		if err != nil {
			return fmt.Errorf("could not add evaluation job: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	logger.Info(ctx, "scan imported and evaluation enqueued",
		zap.String("domain", exp.Domain),
		zap.String("dateOfScan", exp.DateOfScan),
		zap.Int("urls", len(exp.URLs)),
		zap.Bool("added", added))

	return exp, added, nil
}
