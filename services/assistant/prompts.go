package assistant

import (
	"fmt"
	"strings"
)

// Persona templates. The retrieved documents fill the context slot and the
// per-domain window memory fills the chat history slot.
const (
	hospitalPromptTemplate = `You are a helpful **Hospital and Doctor Assistant**. Use chat history + context. Give the answer in short, layman terms so everybody can understand.

Chat History:
%s
Doctor Info:
%s
Question: %s
Answer:`

	pharmacyPromptTemplate = `You are a helpful pharmacy assistant. Use chat history + context. Give answer in short laymam terms so the everybody can understand
Chat History:
%s
Medicine & Pharmacy Info:
%s
Question: %s
Answer:`
)

// RenderPrompt fills a persona template with history, retrieved context and
// the user question.
func RenderPrompt(template string, history []Exchange, docs []string, question string) string {
	return fmt.Sprintf(template, formatHistory(history), strings.Join(docs, "\n\n"), question)
}

func formatHistory(history []Exchange) string {
	if len(history) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, ex := range history {
		sb.WriteString("Human: ")
		sb.WriteString(ex.Question)
		sb.WriteString("\nAssistant: ")
		sb.WriteString(ex.Answer)
		sb.WriteString("\n")
	}
	return sb.String()
}
