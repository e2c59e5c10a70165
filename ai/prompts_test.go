package ai

import (
	"strings"
	"testing"
)

func TestBuildSystemPrompt(t *testing.T) {
	schemaContext := "<tableName> dw.lr.claims </tableName>"
	got := BuildSystemPrompt(schemaContext)

	if strings.Contains(got, "{context}") {
		t.Error("placeholder was not substituted")
	}
	if !strings.Contains(got, schemaContext) {
		t.Error("schema context missing from system prompt")
	}
	if !strings.Contains(got, "named Nessie") {
		t.Error("persona instruction missing")
	}
	if !strings.Contains(got, "IND_RESERVE + IND_PAID_LOSS + MED_PAID_LOSS + MED_RESERVE + ALLOC_EXP - SUBRO_RECOVERY - SALVG_RECOVERY") {
		t.Error("total incurred formula missing")
	}
	if !strings.Contains(got, "limit the number of responses to 50") {
		t.Error("row limit rule missing")
	}
}

func TestEscapeLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"single quote", "O'Brien", "O''Brien"},
		{"backslash", `a\b`, `a\\b`},
		{"both", `it's a\b`, `it''s a\\b`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeLiteral(tt.in); got != tt.want {
				t.Errorf("EscapeLiteral(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
