package llm

import (
	"fmt"
	"os"
	"strings"
)

const (
	stockIDPlaceholder    = "{stock_id}"
	signalJSONPlaceholder = "{signal_json}"
)

const defaultPromptSuffix = "\n\nStock: {stock_id}\n\nTechnical Indicators:\n```json\n{signal_json}\n```"

const defaultPromptText = "Analyze the technical indicator snapshot below and reply with a JSON object " +
	`containing "stock_id", "suggestion" and "reason". The suggestion must be one short ` +
	"actionable trading call; the reason must cite the indicators that drove it."

// PromptTemplate formats an analysis prompt with a stock id and the
// serialized signal record.
type PromptTemplate struct {
	text string
}

// LoadPromptTemplate reads a template file. Templates missing the
// {stock_id} or {signal_json} placeholders get a standard suffix
// appended that carries both.
func LoadPromptTemplate(path string) (*PromptTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompt template: %w", err)
	}
	return NewPromptTemplate(strings.TrimSpace(string(data))), nil
}

// NewPromptTemplate builds a template from raw text, appending the
// placeholder suffix when needed. Empty text falls back to a built-in
// analyst prompt.
func NewPromptTemplate(text string) *PromptTemplate {
	if text == "" {
		text = defaultPromptText
	}
	if !strings.Contains(text, stockIDPlaceholder) || !strings.Contains(text, signalJSONPlaceholder) {
		text += defaultPromptSuffix
	}
	return &PromptTemplate{text: text}
}

// Format substitutes both placeholders.
func (t *PromptTemplate) Format(stockID, signalJSON string) string {
	out := strings.ReplaceAll(t.text, stockIDPlaceholder, stockID)
	return strings.ReplaceAll(out, signalJSONPlaceholder, signalJSON)
}
