package scanner

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"leadfair/internal/domain"
)

const (
	pageSpeedTimeout = 15 * time.Second
	htmlTimeout      = 8 * time.Second
	sslTimeout       = 5 * time.Second
	crawlTimeout     = 5 * time.Second
)

// Service runs the website scan fan-out: page-speed, HTML inspection, SSL
// probe, and crawlability probe, each isolated so one failure never aborts
// the others.
type Service struct {
	client       *http.Client
	pageSpeedKey string
	pageSpeedURL string
	log          *zap.Logger
}

func New(pageSpeedKey string, log *zap.Logger) *Service {
	return &Service{
		client:       &http.Client{},
		pageSpeedKey: pageSpeedKey,
		pageSpeedURL: "https://www.googleapis.com/pagespeedonline/v5/runPagespeed",
		log:          log,
	}
}

// Analyze scans rawURL and returns an aggregate result. It never returns an
// error: validation failures come back as status "skipped" and check
// failures as entries in the result's Errors list.
func (s *Service) Analyze(ctx context.Context, rawURL string) *domain.WebsiteAnalysis {
	normalized, ok := NormalizeURL(rawURL)
	if !ok {
		return &domain.WebsiteAnalysis{
			Status: domain.ScanSkipped,
			Errors: []string{"No valid URL provided"},
		}
	}

	s.log.Info("website scan started",
		zap.String("url", normalized),
		zap.String("domain", RegistrableDomain(normalized)))

	result := &domain.WebsiteAnalysis{URL: &normalized}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	fail := func(check string, err error) {
		mu.Lock()
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", check, err))
		mu.Unlock()
		s.log.Warn("scan check failed", zap.String("check", check), zap.Error(err))
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, pageSpeedTimeout)
		defer cancel()
		ps, err := s.checkPageSpeed(cctx, normalized)
		if err != nil {
			fail("pageSpeed", err)
			return
		}
		result.PageSpeed = ps
	}()
	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, htmlTimeout)
		defer cancel()
		html, err := s.checkHTML(cctx, normalized)
		if err != nil {
			fail("html", err)
			return
		}
		result.HTML = html
	}()
	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, sslTimeout)
		defer cancel()
		valid := s.checkSSL(cctx, normalized)
		result.SSLValid = &valid
	}()
	go func() {
		defer wg.Done()
		cctx, cancel := context.WithTimeout(ctx, 2*crawlTimeout)
		defer cancel()
		crawl, err := s.checkCrawlability(cctx, normalized)
		if err != nil {
			fail("crawlability", err)
			return
		}
		result.Crawl = crawl
	}()
	wg.Wait()

	result.Status = aggregateStatus(result)
	s.log.Info("website scan finished",
		zap.String("url", normalized),
		zap.String("status", string(result.Status)),
		zap.Int("errors", len(result.Errors)))
	return result
}

// aggregateStatus derives the scan outcome: success when something was
// collected and nothing failed, partial when both happened, error when no
// check produced data. An sslValid of false counts as no data.
func aggregateStatus(r *domain.WebsiteAnalysis) domain.ScanStatus {
	hasData := r.PageSpeed != nil || r.HTML != nil ||
		(r.SSLValid != nil && *r.SSLValid) ||
		(r.Crawl != nil && (r.Crawl.RobotsTxt || r.Crawl.SitemapXML))
	switch {
	case hasData && len(r.Errors) == 0:
		return domain.ScanSuccess
	case hasData:
		return domain.ScanPartial
	}
	return domain.ScanError
}
