package ai

import (
	"context"
	"fmt"
	"time"
)

// Placeholder is a mock provider for development. It echoes the
// question inside a canned reply with a fenced query so the whole
// pipeline (extraction, execution, charting) can be exercised without
// a real model.
type Placeholder struct{}

var _ Provider = (*Placeholder)(nil)

func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

func (p *Placeholder) Name() string {
	return "placeholder"
}

func (p *Placeholder) Complete(ctx context.Context, system, user string) (string, error) {
	// Simulate network latency
	select {
	case <-time.After(500 * time.Millisecond):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	return fmt.Sprintf("You asked: %q\n\nHere is a starter query:\n"+
		"```sql\nSELECT CLAIM_NUMBER, CLM_STAT_CD, IND_PAID_LOSS\nFROM claim_facts\nLIMIT 50\n```\n"+
		"Configure a real AI provider (OpenAI, Anthropic, Gemini, Ollama, warehouse) to get actual assistance.", user), nil
}
