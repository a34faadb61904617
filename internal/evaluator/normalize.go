package evaluator

import (
	"fmt"
	"net/url"
	"seoeval/pkg/serrors"
	"strings"

	"golang.org/x/net/idna"
)

// NormalizeDomain returns the canonical form of a user supplied domain, as
// scans are stored under it.
//
// The rules are:
//   - Accept a bare host or a full URL; scheme, credentials, port, path,
//     query and fragment are dropped
//   - Lower-case the host and remove a trailing dot
//   - Convert internationalized names to their ASCII (punycode) form
//
// Anything that does not yield a host is rejected with serrors.ErrBadRequest.
func NormalizeDomain(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", serrors.With(serrors.ErrBadRequest, "domain is required")
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid domain %q", raw)
	}

	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	if host == "" {
		return "", serrors.With(serrors.ErrBadRequest, "invalid domain %q", raw)
	}

	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, fmt.Errorf("idna: %w", err), "invalid domain %q", raw)
	}

	return ascii, nil
}
