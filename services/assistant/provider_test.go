package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRetriever struct {
	docs []string
	err  error
}

func (r *stubRetriever) Search(ctx context.Context, query string, k int) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.docs, nil
}

type stubLLM struct {
	reply   string
	err     error
	prompts []string
}

func (l *stubLLM) Generate(ctx context.Context, prompt string) (string, error) {
	l.prompts = append(l.prompts, prompt)
	if l.err != nil {
		return "", l.err
	}
	return l.reply, nil
}

func TestWindowMemoryKeepsLastK(t *testing.T) {
	mem := NewWindowMemory(3)
	mem.Add("q1", "a1")
	mem.Add("q2", "a2")
	mem.Add("q3", "a3")
	mem.Add("q4", "a4")

	history := mem.History()
	require.Len(t, history, 3)
	assert.Equal(t, "q2", history[0].Question)
	assert.Equal(t, "q4", history[2].Question)

	mem.Clear()
	assert.Empty(t, mem.History())
}

func TestRenderPrompt(t *testing.T) {
	history := []Exchange{{Question: "who treats heart issues?", Answer: "A cardiologist."}}
	docs := []string{"Doctor: Dr. Sudeep Kumar\nSpeciality: Cardiology"}

	prompt := RenderPrompt(hospitalPromptTemplate, history, docs, "when is he available?")

	assert.Contains(t, prompt, "Hospital and Doctor Assistant")
	assert.Contains(t, prompt, "Human: who treats heart issues?")
	assert.Contains(t, prompt, "Assistant: A cardiologist.")
	assert.Contains(t, prompt, "Doctor: Dr. Sudeep Kumar")
	assert.Contains(t, prompt, "Question: when is he available?")
}

func TestRAGProviderAnswerFeedsMemory(t *testing.T) {
	llm := &stubLLM{reply: "Dr. Sudeep Kumar works the morning shift."}
	provider := NewHospitalProvider(&stubRetriever{docs: []string{"Doctor: Dr. Sudeep Kumar"}}, llm)

	answer, err := provider.Answer(context.Background(), "when does Dr. Kumar work?")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sudeep Kumar works the morning shift.", answer)

	// The second turn carries the first exchange as history.
	_, err = provider.Answer(context.Background(), "and on weekends?")
	require.NoError(t, err)
	require.Len(t, llm.prompts, 2)
	assert.Contains(t, llm.prompts[1], "Human: when does Dr. Kumar work?")
	assert.Contains(t, llm.prompts[1], "Assistant: Dr. Sudeep Kumar works the morning shift.")
}

func TestRAGProviderRetrievalFailure(t *testing.T) {
	provider := NewPharmacyProvider(&stubRetriever{err: errors.New("index not ready")}, &stubLLM{})

	_, err := provider.Answer(context.Background(), "what treats fever?")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "pharmacy retrieval:"))
	assert.Empty(t, provider.memory.History())
}

func TestRAGProviderGenerationFailureLeavesMemoryAlone(t *testing.T) {
	provider := NewHospitalProvider(&stubRetriever{}, &stubLLM{err: errors.New("rate limited")})

	_, err := provider.Answer(context.Background(), "who is on call?")
	require.Error(t, err)
	assert.Empty(t, provider.memory.History())
}
