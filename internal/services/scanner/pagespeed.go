package scanner

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"

	"leadfair/internal/domain"
)

// pageSpeedResponse is the slice of the PageSpeed Insights payload we need.
type pageSpeedResponse struct {
	LighthouseResult struct {
		Categories map[string]struct {
			Score float64 `json:"score"`
		} `json:"categories"`
		Audits map[string]struct {
			Score        *float64 `json:"score"`
			DisplayValue string   `json:"displayValue"`
		} `json:"audits"`
	} `json:"lighthouseResult"`
}

// checkPageSpeed queries the PageSpeed Insights API for mobile performance,
// SEO, and accessibility. Without an API key the check is skipped (nil, nil)
// rather than treated as a failure.
func (s *Service) checkPageSpeed(ctx context.Context, target string) (*domain.PageSpeedResult, error) {
	if s.pageSpeedKey == "" {
		return nil, nil
	}

	q := url.Values{}
	q.Set("url", target)
	q.Set("strategy", "mobile")
	q.Set("key", s.pageSpeedKey)
	q["category"] = []string{"performance", "seo", "accessibility"}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.pageSpeedURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pagespeed API returned status %d", resp.StatusCode)
	}

	var payload pageSpeedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode pagespeed response: %w", err)
	}

	lr := payload.LighthouseResult
	category := func(name string) int {
		return int(math.Round(lr.Categories[name].Score * 100))
	}
	audit := func(name string) string {
		return lr.Audits[name].DisplayValue
	}
	mobileFriendly := false
	if viewport, ok := lr.Audits["viewport"]; ok && viewport.Score != nil && *viewport.Score == 1 {
		mobileFriendly = true
	}

	fid := audit("max-potential-fid")
	if fid == "" {
		fid = audit("first-input-delay")
	}

	return &domain.PageSpeedResult{
		Performance:    category("performance"),
		SEO:            category("seo"),
		Accessibility:  category("accessibility"),
		LCP:            audit("largest-contentful-paint"),
		FID:            fid,
		CLS:            audit("cumulative-layout-shift"),
		MobileFriendly: mobileFriendly,
	}, nil
}
