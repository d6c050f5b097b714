package reports

import (
	"context"

	"go.uber.org/zap"

	"leadfair/internal/domain"
)

// LLMClient is the minimal completion capability the report service needs.
// Stream yields a lazy, finite, non-restartable sequence of text deltas;
// the delta channel closing marks end of stream.
type LLMClient interface {
	Complete(ctx context.Context, system string, messages []domain.Message) (string, error)
	Stream(ctx context.Context, system string, messages []domain.Message) (<-chan string, <-chan error)
}

// Service builds prompts and proxies them to the completion API.
type Service struct {
	llm LLMClient
	log *zap.Logger
}

func New(llm LLMClient, log *zap.Logger) *Service {
	return &Service{llm: llm, log: log}
}

func (s *Service) generate(ctx context.Context, kind, prompt string) (string, error) {
	text, err := s.llm.Complete(ctx, SystemVoice(), []domain.Message{{Role: "user", Content: prompt}})
	if err != nil {
		s.log.Error("report generation failed", zap.String("kind", kind), zap.Error(err))
		return "", err
	}
	s.log.Info("report generated", zap.String("kind", kind), zap.Int("length", len(text)))
	return text, nil
}

func (s *Service) GenerateVisibility(ctx context.Context, req VisibilityReportRequest) (string, error) {
	return s.generate(ctx, "visibility", BuildVisibilityPrompt(req))
}

func (s *Service) GenerateSecurity(ctx context.Context, req SecurityReportRequest) (string, error) {
	return s.generate(ctx, "security", BuildSecurityPrompt(req))
}

func (s *Service) GenerateDiagnostic(ctx context.Context, req DiagnosticReportRequest) (string, error) {
	return s.generate(ctx, "diagnostic", BuildDiagnosticPrompt(req))
}

// ChatStream streams an assistant reply for the conversational audit. The
// returned channels follow the LLMClient.Stream contract.
func (s *Service) ChatStream(ctx context.Context, messages []domain.Message, bizCtx domain.BusinessContext, phase domain.ConversationPhase, scan *domain.WebsiteAnalysis) (<-chan string, <-chan error) {
	system := BuildChatSystemPrompt(phase, bizCtx, scan)
	return s.llm.Stream(ctx, system, messages)
}
