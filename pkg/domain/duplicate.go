package domain

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// PageFingerprint is the slice of a URL's scan data used for duplicate
// detection across a scan.
type PageFingerprint struct {
	URLID       string
	Title       string
	Description string
	// ContentHash is a digest of the page's visible text; empty when unknown.
	ContentHash string
}

// DuplicateContext indexes every page of one scan by title, description and
// content hash. It is built once per run and only read afterwards, so it is
// safe for concurrent use.
type DuplicateContext struct {
	titles       map[string][]string
	descriptions map[string][]string
	contents     map[string][]string
	// hashes maps every page of the scan to its content hash.
	hashes map[string]string
}

// NewDuplicateContext builds the index from the fingerprints of a scan.
// Titles and descriptions are compared after trimming, collapsing inner
// whitespace and Unicode case folding; empty values are not indexed.
func NewDuplicateContext(fingerprints []PageFingerprint) *DuplicateContext {
	d := &DuplicateContext{
		titles:       map[string][]string{},
		descriptions: map[string][]string{},
		contents:     map[string][]string{},
		hashes:       make(map[string]string, len(fingerprints)),
	}
	fold := cases.Fold()
	for _, fp := range fingerprints {
		d.hashes[fp.URLID] = fp.ContentHash
		if k := foldKey(fold, fp.Title); k != "" {
			d.titles[k] = append(d.titles[k], fp.URLID)
		}
		if k := foldKey(fold, fp.Description); k != "" {
			d.descriptions[k] = append(d.descriptions[k], fp.URLID)
		}
		if fp.ContentHash != "" {
			d.contents[fp.ContentHash] = append(d.contents[fp.ContentHash], fp.URLID)
		}
	}
	for _, idx := range []map[string][]string{d.titles, d.descriptions, d.contents} {
		for k := range idx {
			sort.Strings(idx[k])
		}
	}

	return d
}

func foldKey(fold cases.Caser, s string) string {
	return fold.String(strings.Join(strings.Fields(s), " "))
}

// PagesWithTitle returns the ids of every page of the scan carrying title.
func (d *DuplicateContext) PagesWithTitle(title string) []string {
	if d == nil {
		return nil
	}

	return d.titles[foldKey(cases.Fold(), title)]
}

// PagesWithDescription returns the ids of every page of the scan carrying
// description.
func (d *DuplicateContext) PagesWithDescription(description string) []string {
	if d == nil {
		return nil
	}

	return d.descriptions[foldKey(cases.Fold(), description)]
}

// PagesWithContent returns the ids of every page whose content hash is hash.
func (d *DuplicateContext) PagesWithContent(hash string) []string {
	if d == nil || hash == "" {
		return nil
	}

	return d.contents[hash]
}

// ContentDuplicatesOf returns the ids of every page sharing the visible text
// of urlID, urlID included. It returns nil when the page's content is unique
// or unknown.
func (d *DuplicateContext) ContentDuplicatesOf(urlID string) []string {
	if d == nil {
		return nil
	}
	if pages := d.PagesWithContent(d.hashes[urlID]); len(pages) > 1 {
		return pages
	}

	return nil
}

// Len returns the number of indexed pages.
func (d *DuplicateContext) Len() int {
	if d == nil {
		return 0
	}

	return len(d.hashes)
}
