package importer_test

import (
	"context"
	"errors"
	"path/filepath"
	"seoeval/internal/evaluator"
	"seoeval/internal/importer"
	"seoeval/pkg/domain"
	"seoeval/pkg/serrors"
	"seoeval/pkg/storage"
	mockstorage "seoeval/pkg/storage/mock"
	"seoeval/pkg/storage/sqlite"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const yamlExport = `
domain: https://WWW.Example.com/
dateOfScan: " 2024-05-01 "
urls:
  home:
    meta:
      title: Home
      description: Welcome
      canonical: https://www.example.com/
    body:
      html: "<h1>Home</h1><p>hello</p>"
      statusCode: 200
    social:
      openGraph:
        "og:title": Home
      twitter:
        "twitter:card": summary
    schema:
      jsonLd:
        - '{"@context":"https://schema.org","@type":"WebSite"}'
  about:
    meta:
      title: About
`

const jsonExport = `{
  "domain": "example.org",
  "dateOfScan": "2024-06-01",
  "urls": {
    "u1": {"meta": {"title": "One"}, "body": {"html": "<p>x</p>", "wordCount": 1}}
  }
}`

func TestDecode_YAML(t *testing.T) {
	exp, err := importer.Decode(strings.NewReader(yamlExport))
	require.NoError(t, err)
	require.NoError(t, exp.Normalize())

	require.Equal(t, "www.example.com", exp.Domain)
	require.Equal(t, "2024-05-01", exp.DateOfScan)
	require.Equal(t, []string{"about", "home"}, exp.URLs.URLIDs())

	home := exp.URLs["home"]
	require.Equal(t, "Home", home.Meta.Title)
	require.Equal(t, 200, home.Body.StatusCode)
	require.Equal(t, "Home", home.Social.OpenGraph["og:title"])
	require.Equal(t, "summary", home.Social.Twitter["twitter:card"])
	require.Len(t, home.Schema.JSONLD, 1)
}

func TestDecode_JSON(t *testing.T) {
	exp, err := importer.Decode(strings.NewReader(jsonExport))
	require.NoError(t, err)
	require.NoError(t, exp.Normalize())

	require.Equal(t, "example.org", exp.Domain)
	require.Equal(t, 1, exp.URLs["u1"].Body.WordCount)
}

func TestDecode_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty":         "",
		"unknown field": "domain: example.com\ndateOfScan: d\nurlz: {}\n",
		"bad type":      "domain: example.com\ndateOfScan: d\nurls: [1, 2]\n",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := importer.Decode(strings.NewReader(doc))
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestExport_Normalize_Invalid(t *testing.T) {
	tests := map[string]importer.Export{
		"no domain": {DateOfScan: "d", URLs: domain.ScanResultSet{"u": {}}},
		"no date":   {Domain: "example.com", URLs: domain.ScanResultSet{"u": {}}},
		"no urls":   {Domain: "example.com", DateOfScan: "d"},
		"empty id":  {Domain: "example.com", DateOfScan: "d", URLs: domain.ScanResultSet{" ": {}}},
	}

	for name, exp := range tests {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, exp.Normalize(), serrors.ErrBadRequest)
		})
	}
}

func TestImport_StoresNormalizedScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockEvaluationStorage(ctrl)

	strg.EXPECT().StoreScanResults(gomock.Any(), "example.org", "2024-06-01", gomock.Len(1)).Return(nil)

	exp, err := importer.New(strg).Import(context.Background(), strings.NewReader(jsonExport))
	require.NoError(t, err)
	require.Equal(t, "example.org", exp.Domain)
}

func TestImport_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockEvaluationStorage(ctrl)

	boom := errors.New("disk full")
	strg.EXPECT().StoreScanResults(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)

	_, err := importer.New(strg).Import(context.Background(), strings.NewReader(jsonExport))
	require.ErrorIs(t, err, boom)
}

func TestImportAndEnqueue_StoresAndEnqueuesInOneTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)

	strg.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, cb func(storage.AllStorage) error) error {
			return cb(tx)
		})
	gomock.InOrder(
		tx.EXPECT().StoreScanResults(gomock.Any(), "example.org", "2024-06-01", gomock.Len(1)).Return(nil),
		tx.EXPECT().AddJob(gomock.Any(), evaluator.NewJobArgs("example.org", "2024-06-01", 3), nil).Return(true, nil),
	)

	exp, added, err := importer.New(strg).ImportAndEnqueue(context.Background(),
		strings.NewReader(jsonExport), strg, 3)
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, "2024-06-01", exp.DateOfScan)
}

func TestImportAndEnqueue_JobFailureFailsTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)

	var cbErr error
	strg.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, cb func(storage.AllStorage) error) error {
			cbErr = cb(tx)

			return cbErr
		})
	boom := errors.New("queue down")
	tx.EXPECT().StoreScanResults(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, boom)

	_, added, err := importer.New(strg).ImportAndEnqueue(context.Background(),
		strings.NewReader(jsonExport), strg, 0)
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, cbErr, boom)
	require.False(t, added)
}

func TestImportAndEnqueue_InvalidExportSkipsTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)

	_, _, err := importer.New(strg).ImportAndEnqueue(context.Background(),
		strings.NewReader("domain: example.com\n"), strg, 0)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestImport_IntoSQLite(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, sqlite.Options{Path: filepath.Join(t.TempDir(), "seoeval.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = importer.New(db).Import(ctx, strings.NewReader(yamlExport))
	require.NoError(t, err)

	set, err := db.ScanResults(ctx, "www.example.com", "2024-05-01")
	require.NoError(t, err)
	require.Equal(t, []string{"about", "home"}, set.URLIDs())
	require.Equal(t, "Welcome", set["home"].Meta.Description)
}
