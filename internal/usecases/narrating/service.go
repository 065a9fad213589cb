package narrating

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/evidence"
	"github.com/vfg2006/revenue-intelligence-api/pkg/cache"
	"github.com/vfg2006/revenue-intelligence-api/pkg/metrics"
)

const (
	generatorExecutive = "executive_narrative"
	generatorAnalyst   = "analyst_answer"
	generatorAgent     = "agent_run"
)

type Narrator interface {
	ExecutiveNarrative(ctx context.Context, window domain.Window, filter domain.AccountFilter) (*domain.ExecutiveNarrative, error)
	Ask(ctx context.Context, window domain.Window, filter domain.AccountFilter, question string) (*domain.AnalystAnswer, error)
	RunAgent(ctx context.Context, window domain.Window, filter domain.AccountFilter, goal string) (*domain.AgentRun, error)
}

type Service struct {
	builder   evidence.Builder
	completer Completer
	cache     cache.Cache
	ttl       time.Duration
}

func NewService(cfg *config.Config, builder evidence.Builder, completer Completer, c cache.Cache) Narrator {
	return &Service{
		builder:   builder,
		completer: completer,
		cache:     c,
		ttl:       cfg.Cache.NarrativeTTL,
	}
}

// ExecutiveNarrative só retorna erro quando o pacote de evidências não pode ser montado;
// falhas do modelo viram a resposta padrão com Fallback=true
func (s *Service) ExecutiveNarrative(ctx context.Context, window domain.Window, filter domain.AccountFilter) (*domain.ExecutiveNarrative, error) {
	pack, packJSON, err := s.builder.Build(ctx, window, filter)
	if err != nil {
		return nil, err
	}

	raw, fallback := s.generate(ctx, generatorExecutive, ExecutivePrompt(pack, packJSON), executiveFallback, pack.PackID)
	return ParseExecutive(raw, fallback), nil
}

func (s *Service) Ask(ctx context.Context, window domain.Window, filter domain.AccountFilter, question string) (*domain.AnalystAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	pack, packJSON, err := s.builder.Build(ctx, window, filter)
	if err != nil {
		return nil, err
	}

	raw, fallback := s.generate(ctx, generatorAnalyst, AnalystPrompt(packJSON, question), analystFallback, pack.PackID, question)
	answer := ParseAnalyst(raw, fallback)
	answer.Question = question
	return answer, nil
}

func (s *Service) RunAgent(ctx context.Context, window domain.Window, filter domain.AccountFilter, goal string) (*domain.AgentRun, error) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return nil, ErrEmptyGoal
	}

	pack, packJSON, err := s.builder.Build(ctx, window, filter)
	if err != nil {
		return nil, err
	}

	raw, fallback := s.generate(ctx, generatorAgent, AgentPrompt(packJSON, goal), agentFallback, pack.PackID, goal)
	run := ParseAgent(raw, fallback)
	run.Goal = goal
	return run, nil
}

// generate chama o modelo com cache por (gerador, pacote, entrada). Respostas padrão
// não são guardadas para que uma nova tentativa chame o modelo de novo.
func (s *Service) generate(
	ctx context.Context,
	generator string,
	prompt string,
	fallback func(error) string,
	keyArgs ...any,
) (string, bool) {
	key := cache.Key(generator, keyArgs...)
	text, err := cache.Remember(s.cache, key, s.ttl, func() (string, error) {
		response, err := s.completer.Complete(ctx, prompt)
		if err != nil {
			metrics.CompletionCalls.WithLabelValues(generator, "error").Inc()
			return "", err
		}

		text := Normalize(response)
		if text == "" {
			metrics.CompletionCalls.WithLabelValues(generator, "empty").Inc()
			return "", ErrEmptyResponse
		}

		metrics.CompletionCalls.WithLabelValues(generator, "ok").Inc()
		return text, nil
	})
	if err != nil {
		log := logrus.WithField("generator", generator)
		if errors.Is(err, ErrEmptyResponse) {
			log.Warn("Modelo não retornou conteúdo, usando resposta padrão")
		} else {
			log.WithError(err).Error("Erro ao chamar o modelo, usando resposta padrão")
		}
		return Normalize(fallback(err)), true
	}

	return text, false
}

func ParseExecutive(raw string, fallback bool) *domain.ExecutiveNarrative {
	sections := ParseSections(raw, executivePattern, executiveSections, SectionExecutiveSummary)
	return &domain.ExecutiveNarrative{
		Headline:           sections[SectionHeadline],
		ExecutiveSummary:   sections[SectionExecutiveSummary],
		KeyRisks:           sections[SectionKeyRisks],
		RecommendedActions: sections[SectionRecommendedActions],
		Risks:              NumberedItems(sections[SectionKeyRisks]),
		Actions:            NumberedItems(sections[SectionRecommendedActions]),
		Raw:                raw,
		Fallback:           fallback,
	}
}

func ParseAnalyst(raw string, fallback bool) *domain.AnalystAnswer {
	sections := ParseSections(raw, analystPattern, analystSections, SectionAnswer)
	return &domain.AnalystAnswer{
		Answer:          sections[SectionAnswer],
		Evidence:        BulletItems(sections[SectionEvidence]),
		NextChecks:      BulletItems(sections[SectionNextChecks]),
		ConfidenceLevel: sections[SectionConfidence],
		Raw:             raw,
		Fallback:        fallback,
	}
}

func ParseAgent(raw string, fallback bool) *domain.AgentRun {
	sections := ParseSections(raw, agentPattern, agentSections, SectionAnswer)
	return &domain.AgentRun{
		Plan:            NumberedItems(sections[SectionPlan]),
		ReasoningChain:  StepItems(sections[SectionReasoningChain]),
		Answer:          sections[SectionAnswer],
		Evidence:        BulletItems(sections[SectionEvidence]),
		ConfidenceLevel: sections[SectionConfidence],
		Raw:             raw,
		Fallback:        fallback,
	}
}
