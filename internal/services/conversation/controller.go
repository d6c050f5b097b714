// Package conversation owns the session-scoped state machine behind the chat
// audit: discovery extraction, the background scan handoff, phase derivation,
// and the lead-capture sequence.
package conversation

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"leadfair/internal/domain"
	"leadfair/internal/services/audit"
	"leadfair/internal/services/reports"
	"leadfair/internal/services/scanner"
)

// ScanTasks is the slice of the scan runner the controller needs.
type ScanTasks interface {
	Start(key, rawURL string) bool
	Started(key string) bool
	Done(key string) bool
	Result(key string) (*domain.WebsiteAnalysis, bool)
	Await(ctx context.Context, key string) (*domain.WebsiteAnalysis, bool)
	Drop(key string)
}

// Reporter produces the written audit report after lead capture.
type Reporter interface {
	GenerateVisibility(ctx context.Context, req reports.VisibilityReportRequest) (string, error)
}

// LeadRelay forwards a captured lead downstream. Relay failures must not
// reach the visitor, so implementations log and the controller ignores the
// returned error beyond logging.
type LeadRelay interface {
	Submit(ctx context.Context, lead domain.Lead, report string) error
}

// discovery turn positions. Turns past turnIndustry are strategic answers.
const (
	turnName = iota + 1
	turnWebsite
	turnCity
	turnIndustry
)

// minTurnsForCapture gates the pre-capture phase so the conversation cannot
// jump straight to the contact form.
const minTurnsForCapture = 5

// reportTimeout bounds the post-capture scan wait plus report generation.
const reportTimeout = 90 * time.Second

// Controller tracks one visitor's audit conversation. All exported methods
// are safe for concurrent use.
type Controller struct {
	ID string

	runner   ScanTasks
	reporter Reporter
	relay    LeadRelay
	audit    *audit.Audit
	log      *zap.Logger

	mu            sync.Mutex
	turns         int
	biz           domain.BusinessContext
	strategic     []string
	quiz          *Quiz
	scanTriggered bool
	leadCaptured  bool
	scores        *domain.ScoreResult
	report        string
	reportDone    chan struct{}
}

func NewController(id string, runner ScanTasks, reporter Reporter, relay LeadRelay, log *zap.Logger) *Controller {
	if id == "" {
		id = uuid.NewString()
	}
	return &Controller{
		ID:       id,
		runner:   runner,
		reporter: reporter,
		relay:    relay,
		audit:    audit.VisibilityAudit,
		quiz:     NewQuiz(audit.VisibilityAudit),
		log:      log.With(zap.String("session", id)),
	}
}

// Ingest records one user turn. The first four turns are positional
// discovery answers (name, website, city, industry); later turns accumulate
// as strategic context. A usable website URL on the website turn starts the
// background scan exactly once.
func (c *Controller) Ingest(text string) domain.ConversationPhase {
	text = strings.TrimSpace(text)

	c.mu.Lock()
	c.turns++
	switch c.turns {
	case turnName:
		c.biz.Name = text
	case turnWebsite:
		if scanner.IsNoWebsite(text) {
			c.biz.URL = domain.NoWebsite
		} else if url := scanner.ExtractURL(text); url != "" {
			c.biz.URL = url
		} else {
			c.biz.URL = text
		}
	case turnCity:
		c.biz.City = text
	case turnIndustry:
		c.biz.Industry = text
	default:
		if text != "" {
			c.strategic = append(c.strategic, text)
		}
	}
	url := c.biz.URL
	c.mu.Unlock()

	if _, ok := scanner.NormalizeURL(url); ok {
		c.triggerScan(url)
	}
	return c.Phase()
}

// triggerScan is one-shot per session: replaying or editing the website turn
// never starts a second scan.
func (c *Controller) triggerScan(url string) {
	c.mu.Lock()
	if c.scanTriggered {
		c.mu.Unlock()
		return
	}
	c.scanTriggered = true
	c.mu.Unlock()

	c.runner.Start(c.ID, url)
	c.log.Info("scan started", zap.String("url", url))
}

// SeedContext merges externally supplied discovery fields, keeping anything
// already extracted from the conversation.
func (c *Controller) SeedContext(biz domain.BusinessContext) {
	c.mu.Lock()
	if c.biz.Name == "" {
		c.biz.Name = biz.Name
	}
	if c.biz.URL == "" {
		c.biz.URL = biz.URL
	}
	if c.biz.City == "" {
		c.biz.City = biz.City
	}
	if c.biz.Industry == "" {
		c.biz.Industry = biz.Industry
	}
	c.mu.Unlock()
}

// Context returns a copy of the discovery snapshot so far.
func (c *Controller) Context() domain.BusinessContext {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.biz
}

// Quiz exposes the scored-question walker for this session.
func (c *Controller) Quiz() *Quiz { return c.quiz }

// Scan returns the finished analysis, or nil while the scan is pending or
// was never started.
func (c *Controller) Scan() *domain.WebsiteAnalysis {
	res, ok := c.runner.Result(c.ID)
	if !ok {
		return nil
	}
	return res
}

// Phase derives the conversation phase from current state. Order matters:
// a captured lead pins post-capture regardless of anything else, and
// pre-capture outranks discussion once the visitor has given enough.
func (c *Controller) Phase() domain.ConversationPhase {
	c.mu.Lock()
	captured := c.leadCaptured
	biz := c.biz
	strategic := len(c.strategic)
	turns := c.turns
	triggered := c.scanTriggered
	c.mu.Unlock()

	if captured {
		return domain.ConvPostCapture
	}

	basics := biz.Name != "" && biz.URL != "" && biz.City != "" && biz.Industry != ""
	scanDone := triggered && c.runner.Done(c.ID)
	noSite := biz.URL == domain.NoWebsite

	if basics && (scanDone || noSite) && strategic >= 1 && turns >= minTurnsForCapture {
		return domain.ConvPreCapture
	}
	if basics && c.scanHasData() {
		return domain.ConvDiscussion
	}
	if triggered && !scanDone {
		return domain.ConvScanning
	}
	return domain.ConvDiscovery
}

func (c *Controller) scanHasData() bool {
	res, ok := c.runner.Result(c.ID)
	if !ok {
		return false
	}
	return res.Status == domain.ScanSuccess || res.Status == domain.ScanPartial
}

// LeadOutcome is what SubmitLead can hand back immediately: scores are
// computed synchronously, the report arrives later via Report / ReportReady.
type LeadOutcome struct {
	Lead   domain.Lead
	Scores domain.ScoreResult
}

// SubmitLead captures the visitor's contact details and runs the close-out
// sequence. Scores are computed and the phase flips to post-capture before
// this returns; the scan wait, report generation, and lead relay continue in
// the background so a slow scan never blocks the results view.
func (c *Controller) SubmitLead(name, email, phone string) LeadOutcome {
	c.mu.Lock()
	scores := audit.CalculateScores(c.audit, c.quiz.Answers())
	c.scores = &scores
	c.leadCaptured = true
	c.report = ""
	c.reportDone = make(chan struct{})
	done := c.reportDone
	biz := c.biz
	c.mu.Unlock()

	lead := domain.Lead{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		Business:   biz,
		Scores:     &scores,
		CapturedAt: time.Now().UTC(),
	}

	go c.finish(lead, scores, done)
	return LeadOutcome{Lead: lead, Scores: scores}
}

// finish waits out the scan, generates the report, then relays the lead.
// Each step degrades independently: a failed report still relays the lead,
// a failed relay is logged and swallowed.
func (c *Controller) finish(lead domain.Lead, scores domain.ScoreResult, done chan struct{}) {
	defer close(done)

	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	scan, _ := c.runner.Await(ctx, c.ID)

	website := lead.Business.URL
	if website == domain.NoWebsite {
		website = ""
	}
	report, err := c.reporter.GenerateVisibility(ctx, reports.VisibilityReportRequest{
		BusinessName:    lead.Business.Name,
		City:            lead.Business.City,
		Industry:        lead.Business.Industry,
		WebsiteURL:      website,
		Scores:          scores,
		WeakQuestions:   scores.WeakQuestions,
		WebsiteAnalysis: scan,
	})
	if err != nil {
		c.log.Warn("report generation failed", zap.Error(err))
	} else {
		c.mu.Lock()
		c.report = report
		c.mu.Unlock()
	}

	if err := c.relay.Submit(ctx, lead, report); err != nil {
		c.log.Warn("lead relay failed", zap.Error(err))
	}
}

// Report returns the generated report, or "" while it is still pending.
func (c *Controller) Report() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.report, c.report != ""
}

// ReportReady closes once the post-capture sequence has run, successfully or
// not. It returns nil before SubmitLead has been called.
func (c *Controller) ReportReady() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reportDone
}

// Scores returns the result computed at lead capture, nil before then.
func (c *Controller) Scores() *domain.ScoreResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scores
}

// Close cancels any in-flight scan. Call on session teardown.
func (c *Controller) Close() {
	c.runner.Drop(c.ID)
}
