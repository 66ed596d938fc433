package analysis

import (
	"context"

	"github.com/apex/log"

	domain "github.com/Pan-Binghong/family-constellation/internal/domain/analysis"
)

type Service struct {
	prober    domain.Prober
	prompts   domain.PromptBuilder
	completer domain.Completer
}

func NewService(prober domain.Prober, prompts domain.PromptBuilder, completer domain.Completer) *Service {
	return &Service{prober: prober, prompts: prompts, completer: completer}
}

// Analyze probes the screenshot if any, builds the matching prompt and
// returns the model's answer.
func (s *Service) Analyze(ctx context.Context, req domain.Request) (string, error) {
	description := req.EffectiveDescription()

	tier := domain.TierBasic
	var probe *domain.Probe
	if req.HasScreenshot() {
		p := s.prober.Probe(req.Screenshot)
		probe = &p
		tier = domain.TierExtended
		if !p.Success {
			log.WithField("error", p.Error).Warn("screenshot could not be decoded, continuing with text only")
		}
	}

	prompt := s.prompts.Build(description, probe)

	entry := log.WithFields(log.Fields{
		"tier":        tier.String(),
		"description": len([]rune(description)),
		"prompt":      len([]rune(prompt)),
	})
	entry.Debug("requesting completion")

	answer, err := s.completer.Complete(ctx, tier, prompt)
	if err != nil {
		entry.WithError(err).Error("completion failed")
		return "", err
	}
	entry.WithField("answer", len([]rune(answer))).Info("analysis completed")
	return answer, nil
}

// ProbeScreenshot runs the screenshot check alone.
func (s *Service) ProbeScreenshot(payload string) domain.Probe {
	return s.prober.Probe(payload)
}
