package scanner

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// noWebsiteAnswers are the free-text replies treated as "this business has
// no website".
var noWebsiteAnswers = map[string]bool{
	"none":             true,
	"no":               true,
	"no website":       true,
	"n/a":              true,
	"na":               true,
	"don't have one":   true,
	"i don't have one": true,
}

// IsNoWebsite reports whether a discovery answer means the business has no
// website.
func IsNoWebsite(text string) bool {
	return noWebsiteAnswers[strings.ToLower(strings.TrimSpace(text))]
}

var urlPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?([a-zA-Z0-9-]+(?:\.[a-zA-Z]{2,})+)(?:/[^\s]*)?`)

// ExtractURL pulls the first URL-looking token out of free text. Returns ""
// when nothing matches.
func ExtractURL(text string) string {
	return urlPattern.FindString(text)
}

// NormalizeURL canonicalizes user input into a fetchable URL. Empty input
// and the no-website answers return ok=false, as does anything whose host
// has no dot. A schemeless URL gets https:// prepended; an explicit scheme
// is preserved as given.
func NormalizeURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || IsNoWebsite(raw) {
		return "", false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	host := u.Hostname()
	if !strings.Contains(host, ".") {
		return "", false
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String(), true
}

// RegistrableDomain returns the eTLD+1 for a normalized URL, falling back to
// the bare hostname when the public suffix list cannot resolve it.
func RegistrableDomain(normalized string) string {
	u, err := url.Parse(normalized)
	if err != nil {
		return ""
	}
	host := u.Hostname()
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return registrable
}
