package domain

import (
	"encoding/json"
	"time"
)

// Core domain models shared across services. HTTP request/response shapes
// live with the handlers; keep these decoupled where helpful.

// QuestionKind is the input control a question renders as.
type QuestionKind string

const (
	KindText     QuestionKind = "text"
	KindTextarea QuestionKind = "textarea"
	KindSelect   QuestionKind = "select"
	KindRadio    QuestionKind = "radio"
	KindSlider   QuestionKind = "slider"
)

// QuestionPhase separates context-gathering from scored questions.
type QuestionPhase string

const (
	PhaseDiscovery  QuestionPhase = "discovery"
	PhaseAssessment QuestionPhase = "assessment"
)

// Option is one selectable answer. Value is a string or a number; scored
// options carry their 0-10 weight directly.
type Option struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

type Question struct {
	ID       string        `json:"id"`
	Phase    QuestionPhase `json:"phase"`
	Category string        `json:"category,omitempty"`
	Text     string        `json:"text"`
	Subtext  string        `json:"subtext,omitempty"`
	Kind     QuestionKind  `json:"type"`
	Options  []Option      `json:"options,omitempty"`
	Optional bool          `json:"-"` // questions are required unless marked
}

// Category groups assessment questions sharing a theme and a recommendation
// payload. Color and Actions are only populated for the visibility audit.
type Category struct {
	Key         string
	Name        string
	Description string
	Color       string
	Service     string
	ServiceDesc string
	Actions     []string
}

type CategoryScore struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Color       string   `json:"color,omitempty"`
	Score       float64  `json:"score"`
	Grade       string   `json:"grade"`
	Service     string   `json:"service"`
	ServiceDesc string   `json:"serviceDescription"`
	Actions     []string `json:"actions,omitempty"`
}

// WeakQuestion is an individual assessment answer at or below the weak
// threshold, annotated with its owning category.
type WeakQuestion struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	Score    float64 `json:"score"`
	Category string  `json:"category"`
}

type ScoreResult struct {
	Categories    []CategoryScore `json:"categories"`
	Overall       float64         `json:"overall"`
	OverallGrade  string          `json:"overallGrade"`
	WeakQuestions []WeakQuestion  `json:"weakQuestions,omitempty"`
}

// AnswerSet maps question id to the captured value (string or number).
type AnswerSet map[string]any

// ScanStatus is the aggregate outcome of a website scan.
type ScanStatus string

const (
	ScanSuccess ScanStatus = "success"
	ScanPartial ScanStatus = "partial"
	ScanSkipped ScanStatus = "skipped"
	ScanError   ScanStatus = "error"
)

type PageSpeedResult struct {
	Performance    int    `json:"performance"`
	SEO            int    `json:"seo"`
	Accessibility  int    `json:"accessibility"`
	LCP            string `json:"lcp,omitempty"`
	FID            string `json:"fid,omitempty"`
	CLS            string `json:"cls,omitempty"`
	MobileFriendly bool   `json:"mobileFriendly"`
}

type HTMLResult struct {
	Title             string   `json:"title"`
	MetaDescription   *string  `json:"metaDescription"`
	H1Tags            []string `json:"h1Tags"`
	ImagesMissingAlt  int      `json:"imagesMissingAlt"`
	ImageCount        int      `json:"imageCount"`
	HasStructuredData bool     `json:"hasStructuredData"`
	CanonicalURL      *string  `json:"canonicalUrl"`
	HasOpenGraph      bool     `json:"hasOpenGraph"`
}

type CrawlResult struct {
	RobotsTxt  bool `json:"robotsTxt"`
	SitemapXML bool `json:"sitemapXml"`
}

// WebsiteAnalysis is immutable once a scan returns it. Nil sub-results mean
// the corresponding check failed or was skipped; Errors carries one entry per
// failed check, keyed by check name.
type WebsiteAnalysis struct {
	Status    ScanStatus       `json:"status"`
	URL       *string          `json:"url"`
	PageSpeed *PageSpeedResult `json:"pageSpeed"`
	HTML      *HTMLResult      `json:"html"`
	SSLValid  *bool            `json:"sslValid"`
	Crawl     *CrawlResult     `json:"crawlability"`
	Errors    []string         `json:"errors"`
}

// ConversationPhase drives which handlers are active in the chat audit.
type ConversationPhase string

const (
	ConvDiscovery   ConversationPhase = "discovery"
	ConvScanning    ConversationPhase = "scanning"
	ConvDiscussion  ConversationPhase = "discussion"
	ConvPreCapture  ConversationPhase = "pre-capture"
	ConvPostCapture ConversationPhase = "post-capture"
)

// QuizPhase is the simpler form-variant progression.
type QuizPhase string

const (
	QuizQuestions QuizPhase = "questions"
	QuizCapture   QuizPhase = "capture"
	QuizResults   QuizPhase = "results"
)

// BusinessContext is the structured snapshot extracted during discovery.
type BusinessContext struct {
	Name     string `json:"name,omitempty"`
	URL      string `json:"url,omitempty"`
	City     string `json:"city,omitempty"`
	Industry string `json:"industry,omitempty"`
}

// NoWebsite is the sentinel stored in BusinessContext.URL when the user has
// no website.
const NoWebsite = "none"

// Snapshot is a visitor's saved audit state, keyed by session. Payload is
// the client's opaque JSON blob; the server never interprets it beyond
// storing and returning it.
type Snapshot struct {
	Key       string          `json:"key"`
	Payload   json.RawMessage `json:"payload"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Lead is captured contact info plus the audit snapshot at capture time.
// Created once, forwarded to the relay, never stored by this system.
type Lead struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Business   BusinessContext
	Scores     *ScoreResult
	CapturedAt time.Time
}
