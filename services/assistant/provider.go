package assistant

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"medassist/utils"
)

// RAGProvider answers questions for one knowledge domain by retrieving the
// most relevant documents, rendering the domain persona prompt with the
// conversation window, and asking the LLM. Successful turns are recorded
// into the window memory.
type RAGProvider struct {
	name      string
	template  string
	retriever Retriever
	llm       LLM
	memory    *WindowMemory
	topK      int
}

func NewHospitalProvider(retriever Retriever, llm LLM) *RAGProvider {
	return &RAGProvider{
		name:      "hospital",
		template:  hospitalPromptTemplate,
		retriever: retriever,
		llm:       llm,
		memory:    NewWindowMemory(10),
		topK:      3,
	}
}

func NewPharmacyProvider(retriever Retriever, llm LLM) *RAGProvider {
	return &RAGProvider{
		name:      "pharmacy",
		template:  pharmacyPromptTemplate,
		retriever: retriever,
		llm:       llm,
		memory:    NewWindowMemory(10),
		topK:      3,
	}
}

func (p *RAGProvider) Answer(ctx context.Context, question string) (string, error) {
	docs, err := p.retriever.Search(ctx, question, p.topK)
	if err != nil {
		return "", fmt.Errorf("%s retrieval: %w", p.name, err)
	}
	if len(docs) == 0 {
		utils.GetLogger().Debug("no documents retrieved",
			zap.String("provider", p.name), zap.String("question", question))
	}

	prompt := RenderPrompt(p.template, p.memory.History(), docs, question)
	answer, err := p.llm.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%s generation: %w", p.name, err)
	}

	p.memory.Add(question, answer)
	return answer, nil
}
