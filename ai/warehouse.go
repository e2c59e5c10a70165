// warehouse.go invokes the completion model through a SQL function on
// the same warehouse session that runs the generated queries.
//
// Some warehouses expose LLM completion as a SQL-callable function.
// The two messages are embedded as string literals, so EscapeLiteral
// is applied at this boundary — that is the only place the escaping
// contract lives; HTTP providers transmit the text untouched.
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elborak3000/nessie/config"
)

// SQLRunner executes a statement and returns the first cell of the
// first row. Satisfied by db.DB.
type SQLRunner interface {
	QueryCell(ctx context.Context, sql string) (string, error)
}

// Warehouse implements the Provider interface via an in-warehouse
// completion function.
type Warehouse struct {
	runner   SQLRunner
	function string
	model    string
}

var _ Provider = (*Warehouse)(nil)

// NewWarehouse creates an in-warehouse provider.
func NewWarehouse(runner SQLRunner, cfg config.WarehouseConfig) *Warehouse {
	function := cfg.Function
	if function == "" {
		function = "ai.complete"
	}
	model := cfg.Model
	if model == "" {
		model = "llama3-70b"
	}
	return &Warehouse{runner: runner, function: function, model: model}
}

func (w *Warehouse) Name() string {
	return fmt.Sprintf("Warehouse (%s via %s)", w.model, w.function)
}

func (w *Warehouse) Complete(ctx context.Context, system, user string) (string, error) {
	stmt := fmt.Sprintf(
		"SELECT %s('%s', '%s', '%s') AS response",
		w.function,
		EscapeLiteral(w.model),
		EscapeLiteral(system),
		EscapeLiteral(user),
	)

	cell, err := w.runner.QueryCell(ctx, stmt)
	if err != nil {
		return "", &InvocationError{Provider: w.Name(), Err: err}
	}

	return unwrapEnvelope(cell), nil
}

// unwrapEnvelope extracts the reply text when the function returns a
// chat-completion JSON envelope; anything else is taken as the literal
// reply.
func unwrapEnvelope(cell string) string {
	var envelope struct {
		Choices []struct {
			Messages string `json:"messages"`
		} `json:"choices"`
	}
	if err := json.Unmarshal([]byte(cell), &envelope); err == nil &&
		len(envelope.Choices) > 0 && envelope.Choices[0].Messages != "" {
		return envelope.Choices[0].Messages
	}
	return cell
}
