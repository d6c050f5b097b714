package scanner

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"leadfair/internal/domain"
)

// checkCrawlability probes robots.txt and sitemap.xml off the site origin.
// The two fetches run concurrently and a failed fetch just leaves its flag
// false; only a malformed origin fails the probe itself.
func (s *Service) checkCrawlability(ctx context.Context, target string) (*domain.CrawlResult, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, err
	}
	origin := u.Scheme + "://" + u.Host

	out := &domain.CrawlResult{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out.RobotsTxt = s.probeDocument(gctx, origin+"/robots.txt", "text")
		return nil
	})
	g.Go(func() error {
		out.SitemapXML = s.probeDocument(gctx, origin+"/sitemap.xml", "xml")
		return nil
	})
	_ = g.Wait()
	return out, nil
}

// probeDocument reports whether the URL serves a document of the wanted
// content type. A 200 with the wrong content type is usually a catch-all
// HTML page, which does not count.
func (s *Service) probeDocument(ctx context.Context, target, wantType string) bool {
	cctx, cancel := context.WithTimeout(ctx, crawlTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(cctx, http.MethodGet, target, nil)
	if err != nil {
		return false
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false
	}
	contentType := resp.Header.Get("Content-Type")
	return strings.Contains(contentType, wantType)
}
