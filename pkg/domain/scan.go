package domain

import "sort"

// ScanConfig identifies the scan an evaluation works on and, when set, the URL
// within that scan. It is a value type: per-URL views are derived with ForURL
// and never share state with the run-level configuration.
type ScanConfig struct {
	// Domain is the crawled domain, e.g. "example.com".
	Domain string `json:"domain"`
	// DateOfScan identifies the crawl of Domain. It is treated as an opaque
	// identifier (usually a YYYY-MM-DD date).
	DateOfScan string `json:"dateOfScan"`
	// URLID is the scan result key of a single URL. Empty on the run-level config.
	URLID string `json:"urlId,omitempty"`
}

// ResolveConfig derives the run configuration for a domain and scan date.
// Inputs are passed through unchanged; validation belongs to the callers and
// to the scan data source.
func ResolveConfig(domain, dateOfScan string) ScanConfig {
	return ScanConfig{
		Domain:     domain,
		DateOfScan: dateOfScan,
	}
}

// ForURL returns a copy of the configuration scoped to urlID.
func (c ScanConfig) ForURL(urlID string) ScanConfig {
	c.URLID = urlID

	return c
}

// MetaData holds the document level metadata extracted from a page.
type MetaData struct {
	Title       string `json:"title,omitempty"       yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description"`
	Canonical   string `json:"canonical,omitempty"   yaml:"canonical"`
	Robots      string `json:"robots,omitempty"      yaml:"robots"`
	Lang        string `json:"lang,omitempty"        yaml:"lang"`
}

// BodyData holds the rendered body of a page.
type BodyData struct {
	// HTML is the raw HTML of the page body.
	HTML string `json:"html,omitempty" yaml:"html"`
	// WordCount is the number of visible words as counted by the crawler.
	// Zero means unknown, in which case checks count the words themselves.
	WordCount int `json:"wordCount,omitempty" yaml:"wordCount"`
	// StatusCode is the HTTP status the crawler received for the page.
	StatusCode int `json:"statusCode,omitempty" yaml:"statusCode"`
}

// SocialData holds the social sharing tags found on a page, keyed by the
// property/name attribute (e.g. "og:title", "twitter:card").
type SocialData struct {
	OpenGraph map[string]string `json:"openGraph,omitempty" yaml:"openGraph"`
	Twitter   map[string]string `json:"twitter,omitempty"   yaml:"twitter"`
}

// SchemaData holds the structured data blocks found on a page.
type SchemaData struct {
	// JSONLD contains the raw content of every application/ld+json script.
	JSONLD []string `json:"jsonLd,omitempty" yaml:"jsonLd"`
}

// URLScanData is everything the crawler captured for one URL, split by
// evaluation category.
type URLScanData struct {
	Meta   MetaData   `json:"meta"   yaml:"meta"`
	Body   BodyData   `json:"body"   yaml:"body"`
	Social SocialData `json:"social" yaml:"social"`
	Schema SchemaData `json:"schema" yaml:"schema"`
}

// ScanResultSet maps URL ids to their scan data for one domain and scan date.
type ScanResultSet map[string]URLScanData

// URLIDs returns the keys of the set in lexical order.
func (s ScanResultSet) URLIDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
