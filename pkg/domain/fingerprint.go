package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
)

// Text returns the visible text of the body with whitespace collapsed.
// Script, style and noscript contents are skipped.
func (b BodyData) Text() string {
	if b.HTML == "" {
		return ""
	}

	var sb strings.Builder
	skip := 0
	z := html.NewTokenizer(strings.NewReader(b.HTML))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				return ""
			}

			return strings.Join(strings.Fields(sb.String()), " ")
		case html.StartTagToken:
			if isHiddenElement(z) {
				skip++
			}
		case html.EndTagToken:
			if isHiddenElement(z) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
				sb.WriteByte(' ')
			}
		case html.SelfClosingTagToken, html.CommentToken, html.DoctypeToken:
		}
	}
}

func isHiddenElement(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch string(name) {
	case "script", "style", "noscript", "template":
		return true
	}

	return false
}

// Fingerprint reduces the scan data of urlID to the values used for
// duplicate detection.
func (d URLScanData) Fingerprint(urlID string) PageFingerprint {
	fp := PageFingerprint{
		URLID:       urlID,
		Title:       d.Meta.Title,
		Description: d.Meta.Description,
	}
	if text := d.Body.Text(); text != "" {
		sum := sha256.Sum256([]byte(cases.Fold().String(text)))
		fp.ContentHash = hex.EncodeToString(sum[:])
	}

	return fp
}
