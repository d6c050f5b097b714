package scanner

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"leadfair/internal/domain"
)

// checkHTML fetches the page and inspects its markup for the SEO elements
// the report cares about.
func (s *Service) checkHTML(ctx context.Context, target string) (*domain.HTMLResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "LeadFairAuditBot/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}

	out := &domain.HTMLResult{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		desc = strings.TrimSpace(desc)
		if desc != "" {
			out.MetaDescription = &desc
		}
	}

	doc.Find("h1").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			out.H1Tags = append(out.H1Tags, text)
		}
	})

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		out.ImageCount++
		if alt, ok := sel.Attr("alt"); !ok || strings.TrimSpace(alt) == "" {
			out.ImagesMissingAlt++
		}
	})

	out.HasStructuredData = doc.Find(`script[type="application/ld+json"]`).Length() > 0

	if canonical, ok := doc.Find(`link[rel="canonical"]`).Attr("href"); ok && canonical != "" {
		out.CanonicalURL = &canonical
	}

	out.HasOpenGraph = doc.Find(`meta[property="og:title"]`).Length() > 0

	return out, nil
}
