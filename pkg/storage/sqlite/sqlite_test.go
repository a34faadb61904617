package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"seoeval/internal/checks"
	"seoeval/internal/evaluator"
	"seoeval/pkg/domain"
	"seoeval/pkg/serrors"
	"seoeval/pkg/storage/sqlite"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlite.SQLite {
	t.Helper()

	db, err := sqlite.Open(context.Background(), sqlite.Options{
		Path: filepath.Join(t.TempDir(), "nested", "seoeval.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := sqlite.Open(context.Background(), sqlite.Options{Path: "  "})
	require.Error(t, err)
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "seoeval.db")

	db, err := sqlite.Open(ctx, sqlite.Options{Path: path})
	require.NoError(t, err)
	require.NoError(t, db.StoreScanResults(ctx, "example.com", "2024-05-01", domain.ScanResultSet{
		"u1": {Meta: domain.MetaData{Title: "Home"}},
	}))
	require.NoError(t, db.Close())

	db, err = sqlite.Open(ctx, sqlite.Options{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	set, err := db.ScanResults(ctx, "example.com", "2024-05-01")
	require.NoError(t, err)
	require.Equal(t, "Home", set["u1"].Meta.Title)
}

func TestSQLite_ScanResults(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()

	in := domain.ScanResultSet{
		"u1": {
			Meta:   domain.MetaData{Title: "Home", Description: "It's the home page", Lang: "en"},
			Body:   domain.BodyData{HTML: "<h1>Hello</h1><p>world</p>", StatusCode: 200},
			Social: domain.SocialData{Twitter: map[string]string{"twitter:card": "summary"}},
			Schema: domain.SchemaData{JSONLD: []string{`{"@type":"Thing"}`}},
		},
		"u2": {Meta: domain.MetaData{Title: "About"}},
	}
	require.NoError(t, db.StoreScanResults(ctx, "example.com", "2024-05-01", in))
	require.NoError(t, db.StoreScanResults(ctx, "example.com", "2024-05-01", nil))

	out, err := db.ScanResults(ctx, "example.com", "2024-05-01")
	require.NoError(t, err)
	require.Equal(t, in, out)

	other, err := db.ScanResults(ctx, "example.com", "2024-06-01")
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestSQLite_DuplicateContext(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.StoreScanResults(ctx, "example.com", "2024-05-01", domain.ScanResultSet{
		"u1": {Meta: domain.MetaData{Title: "Same"}, Body: domain.BodyData{HTML: "<p>Body</p>"}},
		"u2": {Meta: domain.MetaData{Title: "same "}, Body: domain.BodyData{HTML: "<div>body</div>"}},
		"u3": {Meta: domain.MetaData{Title: "Different"}},
	}))

	dup, err := db.DuplicateContext(ctx, "example.com", "2024-05-01")
	require.NoError(t, err)
	require.Equal(t, []string{"u1", "u2"}, dup.PagesWithTitle("Same"))
	require.Equal(t, []string{"u3"}, dup.PagesWithTitle("different"))

	hash := domain.URLScanData{Body: domain.BodyData{HTML: "<p>Body</p>"}}.Fingerprint("u1").ContentHash
	require.Equal(t, []string{"u1", "u2"}, dup.PagesWithContent(hash))
}

func TestSQLite_Issues(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.Issues(ctx, "example.com", "2024-05-01")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	cfg := domain.ResolveConfig("example.com", "2024-05-01")
	for _, id := range []string{"u2", "u1"} {
		bundle := domain.IssueBundle{Meta: domain.IssueResult{Category: domain.CategoryMeta}}
		bundle.Meta.Add("missing_title", domain.SeverityError, "no title on "+id)
		require.NoError(t, db.StoreIssues(ctx, cfg.ForURL(id), bundle))
	}

	// resubmission replaces
	replaced := domain.IssueBundle{Body: domain.IssueResult{Category: domain.CategoryBody}}
	require.NoError(t, db.StoreIssues(ctx, cfg.ForURL("u2"), replaced))

	issues, err := db.Issues(ctx, "example.com", "2024-05-01")
	require.NoError(t, err)
	require.Len(t, issues, 2)
	require.Equal(t, "u1", issues[0].URLID)
	require.True(t, issues[0].Bundle.Meta.Has("missing_title"))
	require.Equal(t, "u2", issues[1].URLID)
	require.Equal(t, replaced, issues[1].Bundle)

	require.ErrorIs(t, db.StoreIssues(ctx, cfg, replaced), serrors.ErrBadRequest)
}

func TestSQLite_StoreIssues_Concurrent(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	cfg := domain.ResolveConfig("example.com", "2024-05-01")

	var wg sync.WaitGroup
	errs := make([]error, 50)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = db.StoreIssues(ctx, cfg.ForURL(fmt.Sprintf("u%02d", i)), domain.IssueBundle{})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	issues, err := db.Issues(ctx, "example.com", "2024-05-01")
	require.NoError(t, err)
	require.Len(t, issues, 50)
}

func TestSQLite_EvaluatorRun(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.StoreScanResults(ctx, "example.com", "2024-05-01", domain.ScanResultSet{
		"u1": {Meta: domain.MetaData{Title: ""}, Body: domain.BodyData{HTML: "<p>Same body</p>"}},
		"u2": {Meta: domain.MetaData{Title: ""}, Body: domain.BodyData{HTML: "<p>same  body</p>"}},
		"u3": {Meta: domain.MetaData{Title: "Contact"}, Body: domain.BodyData{HTML: "<p>Reach us</p>"}},
	}))

	ev := evaluator.New(db, checks.New(), evaluator.Options{Concurrency: 2})
	summary, err := ev.Run(ctx, "example.com", "2024-05-01")
	require.NoError(t, err)
	require.Equal(t, []string{"u1", "u2", "u3"}, summary.Succeeded())

	// a second run upserts every bundle, so updated_at is set on all rows
	_, err = ev.Run(ctx, "example.com", "2024-05-01")
	require.NoError(t, err)

	issues, err := ev.Issues(ctx, "example.com", "2024-05-01")
	require.NoError(t, err)
	require.Len(t, issues, 3)
	for _, u := range issues {
		require.Equal(t, u.URLID != "u3", u.Bundle.Meta.Has(checks.CodeDuplicateContent), "meta of %s", u.URLID)
		require.Equal(t, domain.CategoryBody, u.Bundle.Body.Category)
	}
}
