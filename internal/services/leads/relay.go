// Package leads forwards captured leads to the form relay service. Nothing
// is persisted here; a lost submission is logged and the visitor flow moves
// on regardless.
package leads

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"leadfair/internal/domain"
)

const submitTimeout = 15 * time.Second

// Relay posts leads to a formsubmit.co-style endpoint as multipart form
// data. The endpoint is addressed by the inbox email appended to the base
// URL.
type Relay struct {
	client  *http.Client
	baseURL string
	inbox   string
	log     *zap.Logger
}

func NewRelay(baseURL, inbox string, log *zap.Logger) *Relay {
	return &Relay{
		client:  &http.Client{Timeout: submitTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		inbox:   inbox,
		log:     log,
	}
}

// Submit forwards one lead. The returned error is for the caller's log
// only; lead delivery is best-effort and never surfaces to the visitor.
func (r *Relay) Submit(ctx context.Context, lead domain.Lead, report string) error {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := r.formFields(lead, report)
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return fmt.Errorf("encode lead form: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("encode lead form: %w", err)
	}

	url := r.baseURL + "/" + r.inbox
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("build lead request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit lead: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("submit lead: relay returned %s", resp.Status)
	}

	r.log.Info("lead relayed",
		zap.String("lead", lead.ID),
		zap.String("business", lead.Business.Name))
	return nil
}

type field struct {
	name  string
	value string
}

// formFields flattens the lead into the relay's flat key space. Per-category
// scores get score-{key} / grade-{key} pairs so the notification email stays
// readable as a table.
func (r *Relay) formFields(lead domain.Lead, report string) []field {
	website := lead.Business.URL
	if website == domain.NoWebsite {
		website = "no website"
	}

	fields := []field{
		{"name", lead.Name},
		{"email", lead.Email},
		{"phone", lead.Phone},
		{"business-name", lead.Business.Name},
		{"website-url", website},
		{"city", lead.Business.City},
		{"industry", lead.Business.Industry},
	}

	grade := ""
	if lead.Scores != nil {
		s := lead.Scores
		grade = s.OverallGrade
		fields = append(fields,
			field{"overall-score", fmt.Sprintf("%.1f", s.Overall)},
			field{"overall-grade", s.OverallGrade},
		)
		for _, c := range s.Categories {
			fields = append(fields,
				field{"score-" + c.Key, fmt.Sprintf("%.1f", c.Score)},
				field{"grade-" + c.Key, c.Grade},
			)
		}
		if len(s.WeakQuestions) > 0 {
			var weak []string
			for _, w := range s.WeakQuestions {
				weak = append(weak, fmt.Sprintf("%s (%.0f/10)", w.Text, w.Score))
			}
			fields = append(fields, field{"weak-areas", strings.Join(weak, "; ")})
		}
	}

	if report != "" {
		fields = append(fields, field{"report", report})
	}

	subject := fmt.Sprintf("Visibility Audit — %s", lead.Business.Name)
	if grade != "" {
		subject = fmt.Sprintf("Visibility Audit — %s (%s)", lead.Business.Name, grade)
	}
	fields = append(fields,
		field{"_subject", subject},
		field{"_captcha", "false"},
		field{"_template", "table"},
		field{"_cc", lead.Email},
	)
	return fields
}
