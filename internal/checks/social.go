package checks

import (
	"context"
	"fmt"
	"seoeval/pkg/domain"
	"strings"
)

var requiredOpenGraph = []string{"og:title", "og:description", "og:image", "og:url"}

// CheckSocial checks that the Open Graph and Twitter card tags needed for a
// rich share preview are present.
func (b *Baseline) CheckSocial(ctx context.Context, social domain.SocialData) (domain.IssueResult, error) {
	res := domain.IssueResult{Category: domain.CategorySocial}
	if err := checkContext(ctx); err != nil {
		return res, err
	}

	for _, tag := range requiredOpenGraph {
		if strings.TrimSpace(social.OpenGraph[tag]) == "" {
			res.Add(CodeMissingOpenGraph, domain.SeverityWarning, fmt.Sprintf("%s tag is missing", tag))
		}
	}
	if strings.TrimSpace(social.Twitter["twitter:card"]) == "" {
		res.Add(CodeMissingTwitterCard, domain.SeverityInfo, "twitter:card tag is missing")
	}

	return res, nil
}
