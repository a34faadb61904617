package checks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"seoeval/pkg/domain"
	"strings"

	"github.com/go-faster/errors"
	"golang.org/x/net/html"
)

type bodyStats struct {
	h1          int
	imagesNoAlt int
}

// CheckBody checks the rendered page body: heading structure, image alt
// attributes, content length and the HTTP status the crawler received.
func (b *Baseline) CheckBody(ctx context.Context, body domain.BodyData) (domain.IssueResult, error) {
	res := domain.IssueResult{Category: domain.CategoryBody}
	if err := checkContext(ctx); err != nil {
		return res, err
	}

	switch code := body.StatusCode; {
	case code == 0, code == http.StatusOK:
	case code >= 300 && code < 400:
		res.Add(CodeRedirect, domain.SeverityWarning, fmt.Sprintf("page answered with redirect status %d", code))
	default:
		res.Add(CodeErrorStatus, domain.SeverityError, fmt.Sprintf("page answered with status %d", code))
	}

	if strings.TrimSpace(body.HTML) == "" {
		res.Add(CodeEmptyBody, domain.SeverityError, "page body is empty")

		return res, nil
	}

	stats, err := scanBody(body.HTML)
	if err != nil {
		return res, err
	}

	switch {
	case stats.h1 == 0:
		res.Add(CodeMissingH1, domain.SeverityWarning, "page has no h1 heading")
	case stats.h1 > 1:
		res.Add(CodeMultipleH1, domain.SeverityInfo, fmt.Sprintf("page has %d h1 headings", stats.h1))
	}
	if stats.imagesNoAlt > 0 {
		res.Add(CodeImageMissingAlt, domain.SeverityWarning,
			fmt.Sprintf("%d images have no alt attribute", stats.imagesNoAlt))
	}

	words := body.WordCount
	if words == 0 {
		words = len(strings.Fields(body.Text()))
	}
	if words < b.options.MinWords {
		res.Add(CodeThinContent, domain.SeverityWarning,
			fmt.Sprintf("page has %d words, fewer than %d", words, b.options.MinWords))
	}

	return res, nil
}

func scanBody(raw string) (bodyStats, error) {
	var stats bodyStats
	z := html.NewTokenizer(strings.NewReader(raw))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return stats, errors.Wrap(err, "tokenize body")
			}

			return stats, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			switch string(name) {
			case "h1":
				stats.h1++
			case "img":
				if !hasAttribute(z, hasAttr, "alt") {
					stats.imagesNoAlt++
				}
			}
		}
	}
}

func hasAttribute(z *html.Tokenizer, more bool, name string) bool {
	for more {
		var key []byte
		key, _, more = z.TagAttr()
		if string(key) == name {
			return true
		}
	}

	return false
}
