package scanner

import (
	"context"
	"net/http"
	"net/url"
)

// checkSSL rewrites the target to https and reports whether the site answers
// over TLS. Server errors above 500 and any network failure count as
// invalid; a served error page under 500 still proves the certificate works.
func (s *Service) checkSSL(ctx context.Context, target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	u.Scheme = "https"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return false
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode < 500
}
