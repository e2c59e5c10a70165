package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/elborak3000/nessie/config"
)

// fakeRunner records the statement and returns a canned cell.
type fakeRunner struct {
	cell string
	err  error
	stmt string
}

func (f *fakeRunner) QueryCell(ctx context.Context, sql string) (string, error) {
	f.stmt = sql
	return f.cell, f.err
}

func TestWarehouseComplete(t *testing.T) {
	runner := &fakeRunner{cell: "SELECT 1"}
	w := NewWarehouse(runner, config.WarehouseConfig{Function: "ai.complete", Model: "llama3-70b"})

	got, err := w.Complete(context.Background(), "you are Nessie", "count open claims")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "SELECT 1" {
		t.Errorf("reply = %q", got)
	}

	if !strings.HasPrefix(runner.stmt, "SELECT ai.complete(") {
		t.Errorf("statement = %q, want the configured function", runner.stmt)
	}
	if !strings.Contains(runner.stmt, "'llama3-70b'") {
		t.Errorf("statement = %q, want the model literal", runner.stmt)
	}
	if !strings.Contains(runner.stmt, "'count open claims'") {
		t.Errorf("statement = %q, want the user prompt literal", runner.stmt)
	}
}

// Prompt text is escaped only for transport: quotes and backslashes
// are doubled inside the statement literal.
func TestWarehouseCompleteEscapesLiterals(t *testing.T) {
	runner := &fakeRunner{cell: "ok"}
	w := NewWarehouse(runner, config.WarehouseConfig{})

	if _, err := w.Complete(context.Background(), `line\break`, "what's open?"); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if !strings.Contains(runner.stmt, "what''s open?") {
		t.Errorf("statement = %q, want doubled quote", runner.stmt)
	}
	if !strings.Contains(runner.stmt, `line\\break`) {
		t.Errorf("statement = %q, want doubled backslash", runner.stmt)
	}
}

func TestWarehouseCompleteDefaults(t *testing.T) {
	runner := &fakeRunner{cell: "ok"}
	w := NewWarehouse(runner, config.WarehouseConfig{})

	if _, err := w.Complete(context.Background(), "s", "u"); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if !strings.HasPrefix(runner.stmt, "SELECT ai.complete(") {
		t.Errorf("statement = %q, want default function", runner.stmt)
	}
	if !strings.Contains(runner.stmt, "'llama3-70b'") {
		t.Errorf("statement = %q, want default model", runner.stmt)
	}
}

func TestWarehouseCompleteWrapsRunnerError(t *testing.T) {
	inner := errors.New("connection reset")
	runner := &fakeRunner{err: inner}
	w := NewWarehouse(runner, config.WarehouseConfig{})

	_, err := w.Complete(context.Background(), "s", "u")
	if err == nil {
		t.Fatal("want error, got nil")
	}
	var invErr *InvocationError
	if !errors.As(err, &invErr) {
		t.Fatalf("error type = %T, want *InvocationError", err)
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is() cannot reach the runner error")
	}
}

func TestUnwrapEnvelope(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want string
	}{
		{
			name: "chat completion envelope",
			cell: `{"choices":[{"messages":"Here you go"}]}`,
			want: "Here you go",
		},
		{
			name: "plain text passes through",
			cell: "just a reply",
			want: "just a reply",
		},
		{
			name: "unrelated json passes through",
			cell: `{"result":"x"}`,
			want: `{"result":"x"}`,
		},
		{
			name: "empty choices passes through",
			cell: `{"choices":[]}`,
			want: `{"choices":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unwrapEnvelope(tt.cell); got != tt.want {
				t.Errorf("unwrapEnvelope(%q) = %q, want %q", tt.cell, got, tt.want)
			}
		})
	}
}

func TestNewProvider(t *testing.T) {
	t.Run("warehouse requires a runner", func(t *testing.T) {
		if _, err := NewProvider(config.AIConfig{Provider: "warehouse"}, nil); err == nil {
			t.Error("want error for nil runner, got nil")
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		if _, err := NewProvider(config.AIConfig{Provider: "cortex9000"}, nil); err == nil {
			t.Error("want error for unknown provider, got nil")
		}
	})

	t.Run("empty provider falls back to placeholder", func(t *testing.T) {
		p, err := NewProvider(config.AIConfig{}, nil)
		if err != nil {
			t.Fatalf("NewProvider() error = %v", err)
		}
		if p == nil {
			t.Fatal("NewProvider() returned nil provider")
		}
	})

	t.Run("openai requires a key", func(t *testing.T) {
		if _, err := NewProvider(config.AIConfig{Provider: "openai"}, nil); err == nil {
			t.Error("want error for missing API key, got nil")
		}
	})
}
