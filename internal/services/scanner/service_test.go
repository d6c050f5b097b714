package scanner

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const samplePage = `<!doctype html>
<html>
<head>
<title>Huntsville Plumbing Pros</title>
<meta name="description" content="Fast, friendly plumbing across Huntsville.">
<meta property="og:title" content="Huntsville Plumbing Pros">
<link rel="canonical" href="https://example.com/">
<script type="application/ld+json">{"@type":"LocalBusiness"}</script>
</head>
<body>
<h1>Plumbing done right</h1>
<img src="a.jpg" alt="A van">
<img src="b.jpg">
<img src="c.jpg" alt="  ">
</body>
</html>`

func testService(t *testing.T) *Service {
	t.Helper()
	return New("", zap.NewNop())
}

func TestAnalyzeSkipsInvalidURL(t *testing.T) {
	s := testService(t)
	for _, raw := range []string{"", "none", "localhost"} {
		res := s.Analyze(context.Background(), raw)
		assert.Equal(t, "skipped", string(res.Status), raw)
		assert.Equal(t, []string{"No valid URL provided"}, res.Errors, raw)
		assert.Nil(t, res.URL, raw)
	}
}

func TestAnalyzeExtractsHTMLSignals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	s := testService(t)
	res := s.Analyze(context.Background(), srv.URL)

	// The https probe cannot succeed against a plain-HTTP test server, but
	// an invalid certificate alone does not spoil a clean scan.
	assert.Equal(t, "success", string(res.Status))
	assert.Empty(t, res.Errors)
	require.NotNil(t, res.SSLValid)
	assert.False(t, *res.SSLValid)
	assert.Nil(t, res.PageSpeed) // no API key, check skipped

	require.NotNil(t, res.HTML)
	h := res.HTML
	assert.Equal(t, "Huntsville Plumbing Pros", h.Title)
	require.NotNil(t, h.MetaDescription)
	assert.Equal(t, "Fast, friendly plumbing across Huntsville.", *h.MetaDescription)
	assert.Equal(t, []string{"Plumbing done right"}, h.H1Tags)
	assert.Equal(t, 3, h.ImageCount)
	assert.Equal(t, 2, h.ImagesMissingAlt)
	assert.True(t, h.HasStructuredData)
	assert.True(t, h.HasOpenGraph)
	require.NotNil(t, h.CanonicalURL)
	assert.Equal(t, "https://example.com/", *h.CanonicalURL)

	require.NotNil(t, res.Crawl)
	assert.False(t, res.Crawl.RobotsTxt)
	assert.False(t, res.Crawl.SitemapXML)
}

func TestAnalyzeBareMarkupReportsMissingSignals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head></head><body><p>hi</p></body></html>`))
	}))
	defer srv.Close()

	s := testService(t)
	res := s.Analyze(context.Background(), srv.URL)

	require.NotNil(t, res.HTML)
	assert.Empty(t, res.HTML.Title)
	assert.Nil(t, res.HTML.MetaDescription)
	assert.Empty(t, res.HTML.H1Tags)
	assert.False(t, res.HTML.HasStructuredData)
	assert.Nil(t, res.HTML.CanonicalURL)
}

func TestAnalyzePartialWhenOneCheckFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/robots.txt":
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte("User-agent: *\n"))
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	s := testService(t)
	res := s.Analyze(context.Background(), srv.URL)

	assert.Equal(t, "partial", string(res.Status))
	require.NotNil(t, res.Crawl)
	assert.True(t, res.Crawl.RobotsTxt)
	assert.False(t, res.Crawl.SitemapXML)
	assert.Nil(t, res.HTML)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0], "html:")
}

func TestAnalyzeErrorWhenNothingReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	s := testService(t)
	res := s.Analyze(context.Background(), url)

	assert.Equal(t, "error", string(res.Status))
	assert.NotEmpty(t, res.Errors)
}

func TestCheckPageSpeedParsesLighthousePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "mobile", r.URL.Query().Get("strategy"))
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"lighthouseResult":{
			"categories":{"performance":{"score":0.92},"seo":{"score":0.81},"accessibility":{"score":0.77}},
			"audits":{
				"largest-contentful-paint":{"displayValue":"1.8 s"},
				"max-potential-fid":{"displayValue":"120 ms"},
				"cumulative-layout-shift":{"displayValue":"0.02"},
				"viewport":{"score":1}
			}}}`))
	}))
	defer srv.Close()

	s := New("k", zap.NewNop())
	s.pageSpeedURL = srv.URL

	ps, err := s.checkPageSpeed(context.Background(), "https://example.com/")
	require.NoError(t, err)
	require.NotNil(t, ps)
	assert.Equal(t, 92, ps.Performance)
	assert.Equal(t, 81, ps.SEO)
	assert.Equal(t, 77, ps.Accessibility)
	assert.Equal(t, "1.8 s", ps.LCP)
	assert.Equal(t, "120 ms", ps.FID)
	assert.Equal(t, "0.02", ps.CLS)
	assert.True(t, ps.MobileFriendly)
}

func TestCheckPageSpeedSkippedWithoutKey(t *testing.T) {
	s := testService(t)
	ps, err := s.checkPageSpeed(context.Background(), "https://example.com/")
	assert.NoError(t, err)
	assert.Nil(t, ps)
}
