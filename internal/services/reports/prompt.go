package reports

import (
	"fmt"
	"strings"

	"leadfair/internal/domain"
	"leadfair/internal/services/audit"
)

// Report request bodies. Field names mirror what the audit widgets send.

type VisibilityReportRequest struct {
	BusinessName    string                  `json:"businessName"`
	City            string                  `json:"city"`
	Industry        string                  `json:"industry"`
	WebsiteURL      string                  `json:"websiteUrl"`
	Scores          domain.ScoreResult      `json:"scores"`
	WeakQuestions   []domain.WeakQuestion   `json:"weakQuestions"`
	WebsiteAnalysis *domain.WebsiteAnalysis `json:"websiteAnalysis"`
}

type SecurityReportRequest struct {
	BusinessName  string             `json:"businessName"`
	Industry      string             `json:"industry"`
	TeamSize      string             `json:"teamSize"`
	BiggestFear   string             `json:"biggestFear"`
	Scores        domain.ScoreResult `json:"scores"`
	AnswerDetails string             `json:"answerDetails"`
}

type DiagnosticReportRequest struct {
	BusinessName  string             `json:"businessName"`
	Industry      string             `json:"industry"`
	TeamSize      string             `json:"teamSize"`
	Years         string             `json:"years"`
	Challenge     string             `json:"challenge"`
	Scores        domain.ScoreResult `json:"scores"`
	AnswerDetails string             `json:"answerDetails"`
}

func scoreLines(scores domain.ScoreResult) string {
	var b strings.Builder
	for _, c := range scores.Categories {
		fmt.Fprintf(&b, "- %s: %.1f/10 (grade %s)\n", c.Name, c.Score, c.Grade)
	}
	fmt.Fprintf(&b, "- Overall: %.1f/10 (grade %s)\n", scores.Overall, scores.OverallGrade)
	return b.String()
}

func weakLines(weak []domain.WeakQuestion) string {
	if len(weak) == 0 {
		return "None — no individual answer scored 3 or below.\n"
	}
	var b strings.Builder
	for _, w := range weak {
		fmt.Fprintf(&b, "- [%s] %s (scored %.0f/10)\n", w.Category, w.Text, w.Score)
		if rec := audit.VisibilityAudit.Recommendations[w.ID]; rec != "" {
			fmt.Fprintf(&b, "  Suggested fix: %s\n", rec)
		}
	}
	return b.String()
}

// ScanSummary renders a website analysis as plain text for prompt
// embedding. Absent SEO elements are called out as MISSING so the model
// addresses them directly.
func ScanSummary(a *domain.WebsiteAnalysis) string {
	if a == nil || a.Status == domain.ScanSkipped || a.Status == domain.ScanError {
		return ""
	}

	var b strings.Builder
	b.WriteString("WEBSITE SCAN RESULTS:\n")
	if a.URL != nil {
		fmt.Fprintf(&b, "URL: %s\n", *a.URL)
	}

	if ps := a.PageSpeed; ps != nil {
		fmt.Fprintf(&b, "Page speed (mobile): performance %d/100, SEO %d/100, accessibility %d/100\n",
			ps.Performance, ps.SEO, ps.Accessibility)
		if ps.LCP != "" || ps.CLS != "" {
			fmt.Fprintf(&b, "Core web vitals: LCP %s, FID %s, CLS %s\n", orUnknown(ps.LCP), orUnknown(ps.FID), orUnknown(ps.CLS))
		}
		fmt.Fprintf(&b, "Mobile friendly: %s\n", yesNo(ps.MobileFriendly))
	}

	if h := a.HTML; h != nil {
		if h.Title != "" {
			fmt.Fprintf(&b, "Page title: %q\n", h.Title)
		} else {
			b.WriteString("Page title: MISSING\n")
		}
		if h.MetaDescription != nil {
			fmt.Fprintf(&b, "Meta description: %q\n", *h.MetaDescription)
		} else {
			b.WriteString("Meta description: MISSING\n")
		}
		if len(h.H1Tags) > 0 {
			fmt.Fprintf(&b, "H1 headings: %s\n", strings.Join(h.H1Tags, "; "))
		} else {
			b.WriteString("H1 headings: MISSING\n")
		}
		if h.ImageCount > 0 {
			fmt.Fprintf(&b, "Images: %d total, %d missing alt text\n", h.ImageCount, h.ImagesMissingAlt)
		}
		if h.HasStructuredData {
			b.WriteString("Structured data (schema markup): present\n")
		} else {
			b.WriteString("Structured data (schema markup): MISSING\n")
		}
		if h.CanonicalURL != nil {
			fmt.Fprintf(&b, "Canonical URL: %s\n", *h.CanonicalURL)
		} else {
			b.WriteString("Canonical URL: MISSING\n")
		}
		if h.HasOpenGraph {
			b.WriteString("Open Graph tags: present\n")
		} else {
			b.WriteString("Open Graph tags: MISSING\n")
		}
	}

	if a.SSLValid != nil {
		fmt.Fprintf(&b, "SSL certificate: %s\n", validInvalid(*a.SSLValid))
	}
	if c := a.Crawl; c != nil {
		fmt.Fprintf(&b, "robots.txt: %s, sitemap.xml: %s\n", presentMissing(c.RobotsTxt), presentMissing(c.SitemapXML))
	}
	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func validInvalid(v bool) string {
	if v {
		return "valid"
	}
	return "INVALID"
}

func presentMissing(v bool) string {
	if v {
		return "present"
	}
	return "MISSING"
}

const reportVoice = `You write like a sharp, friendly consultant talking to a busy small-business owner: plain language, short paragraphs, no jargon, no hedging. Use markdown headers and bullet lists. Do not mention that you are an AI or that this text was generated.`

// BuildVisibilityPrompt assembles the visibility report prompt. The
// website-health section is omitted entirely when the business has no
// website or the scan produced nothing.
func BuildVisibilityPrompt(req VisibilityReportRequest) string {
	var b strings.Builder
	b.WriteString("Write a personalized online-visibility report for this local business.\n\n")
	fmt.Fprintf(&b, "BUSINESS: %s\n", req.BusinessName)
	fmt.Fprintf(&b, "CITY: %s\n", req.City)
	fmt.Fprintf(&b, "INDUSTRY: %s\n", req.Industry)
	if req.WebsiteURL != "" && req.WebsiteURL != domain.NoWebsite {
		fmt.Fprintf(&b, "WEBSITE: %s\n", req.WebsiteURL)
	} else {
		b.WriteString("WEBSITE: none — treat building a web presence as a core recommendation\n")
	}

	b.WriteString("\nAUDIT SCORES:\n")
	b.WriteString(scoreLines(req.Scores))

	b.WriteString("\nWEAKEST AREAS (answers scoring 3 or below):\n")
	b.WriteString(weakLines(req.WeakQuestions))

	if summary := ScanSummary(req.WebsiteAnalysis); summary != "" {
		b.WriteString("\n")
		b.WriteString(summary)
	}

	b.WriteString("\nStructure the report as: a two-sentence summary of where they stand, one section per audit category (lead with the grade, then what to fix first), and a short prioritized action plan for the next 30 days.\n")
	return b.String()
}

func BuildSecurityPrompt(req SecurityReportRequest) string {
	var b strings.Builder
	b.WriteString("Write a personalized security posture report for this small business.\n\n")
	fmt.Fprintf(&b, "BUSINESS: %s\n", req.BusinessName)
	fmt.Fprintf(&b, "INDUSTRY: %s\n", req.Industry)
	fmt.Fprintf(&b, "TEAM SIZE: %s\n", req.TeamSize)
	worry := strings.TrimSpace(req.BiggestFear)
	if worry == "" {
		worry = "not stated"
	}
	fmt.Fprintf(&b, "THEIR BIGGEST SECURITY WORRY: %s\n", worry)

	b.WriteString("\nCHECKUP SCORES:\n")
	b.WriteString(scoreLines(req.Scores))

	if req.AnswerDetails != "" {
		b.WriteString("\nTHEIR ANSWERS:\n")
		b.WriteString(req.AnswerDetails)
		b.WriteString("\n")
	}

	b.WriteString("\nOpen by addressing their stated worry directly. Then cover each category in score order, worst first. Close with the three changes that would most reduce their risk this month.\n")
	return b.String()
}

func BuildDiagnosticPrompt(req DiagnosticReportRequest) string {
	var b strings.Builder
	b.WriteString("Write a personalized business automation diagnostic report.\n\n")
	fmt.Fprintf(&b, "BUSINESS: %s\n", req.BusinessName)
	fmt.Fprintf(&b, "INDUSTRY: %s\n", req.Industry)
	fmt.Fprintf(&b, "TEAM SIZE: %s\n", req.TeamSize)
	fmt.Fprintf(&b, "YEARS IN BUSINESS: %s\n", req.Years)
	fmt.Fprintf(&b, "THEIR BIGGEST CHALLENGE: %s\n", req.Challenge)

	b.WriteString("\nDIAGNOSTIC SCORES:\n")
	b.WriteString(scoreLines(req.Scores))

	if req.AnswerDetails != "" {
		b.WriteString("\nTHEIR ANSWERS:\n")
		b.WriteString(req.AnswerDetails)
		b.WriteString("\n")
	}

	b.WriteString("\nConnect every recommendation back to their stated challenge. Cover each category, lead with the two lowest grades, and end with a week-one quick win.\n")
	return b.String()
}

// BuildChatSystemPrompt produces the system prompt for the conversational
// audit, varying by phase and conditionally embedding scan findings.
func BuildChatSystemPrompt(phase domain.ConversationPhase, ctx domain.BusinessContext, scan *domain.WebsiteAnalysis) string {
	var b strings.Builder
	b.WriteString("You are the LeadFair visibility assistant. You help local business owners understand how visible they are online — on Google, in AI search results, and in their local area. Keep replies to two or three sentences, warm and concrete. Ask exactly one question at a time.\n")

	if ctx.Name != "" {
		fmt.Fprintf(&b, "\nBusiness: %s", ctx.Name)
	}
	if ctx.City != "" {
		fmt.Fprintf(&b, "\nCity: %s", ctx.City)
	}
	if ctx.Industry != "" {
		fmt.Fprintf(&b, "\nIndustry: %s", ctx.Industry)
	}
	if ctx.URL != "" && ctx.URL != domain.NoWebsite {
		fmt.Fprintf(&b, "\nWebsite: %s", ctx.URL)
	}
	b.WriteString("\n")

	switch phase {
	case domain.ConvDiscovery:
		b.WriteString("\nYou are gathering context. Next you need, in order: business name, website URL (or confirmation they have none), city, industry. Acknowledge their answer briefly, then ask for the next missing item.\n")
	case domain.ConvScanning:
		b.WriteString("\nTheir website scan is running in the background. Keep the conversation moving with questions about how customers currently find them; never make them wait on the scan.\n")
	case domain.ConvDiscussion:
		b.WriteString("\nScan data is available. Discuss what it shows and ask one strategic question about their marketing at a time.\n")
	case domain.ConvPreCapture:
		b.WriteString("\nYou have what you need for a report. Offer to put together their full visibility report and invite them to leave contact details to receive it.\n")
	case domain.ConvPostCapture:
		b.WriteString("\nTheir report has been generated. Answer follow-up questions about it and suggest booking a call for anything hands-on.\n")
	}

	if summary := ScanSummary(scan); summary != "" {
		b.WriteString("\n")
		b.WriteString(summary)
	}
	return b.String()
}

// SystemVoice is appended to every report prompt.
func SystemVoice() string { return reportVoice }
