// pipeline.go orchestrates one conversation round:
// schema context → system prompt → model call → extraction →
// optional query execution → profiling → chart selection → append.
//
// Every failure along the way (schema lookup, model invocation, query
// execution) is converted into an assistant turn carrying the error's
// display text, so the conversation always advances and never loses
// state on a single bad round.
package chat

import (
	"context"

	"github.com/elborak3000/nessie/ai"
	"github.com/elborak3000/nessie/chart"
	"github.com/elborak3000/nessie/db"
)

// SchemaSource provides the grounding context for the configured table.
// Satisfied by db.ContextBuilder.
type SchemaSource interface {
	TableContext(ctx context.Context) (string, error)
}

// Executor runs an extracted query. Satisfied by db.DB. The query
// text is opaque here: it is executed verbatim, never validated.
type Executor interface {
	Execute(ctx context.Context, sql string) (*db.ResultSet, error)
}

// Pipeline wires the external collaborators for one conversation.
type Pipeline struct {
	Schema   SchemaSource
	Provider ai.Provider
	Executor Executor
	Profile  chart.Options // zero value means defaults
}

// Respond runs one full round and appends both the user turn and the
// resulting assistant turn. The returned error only reports misuse
// (user input while a round is pending); pipeline failures surface as
// the assistant turn itself.
func (p *Pipeline) Respond(ctx context.Context, conv *Conversation, question string) (Turn, error) {
	if _, err := conv.AppendUser(question); err != nil {
		return Turn{}, err
	}

	reply, results, table, plan, err := p.run(ctx, question)
	if err != nil {
		return conv.appendAssistant(err.Error(), nil, nil, nil, true), nil
	}
	return conv.appendAssistant(reply, results, table, plan, false), nil
}

// run produces the assistant turn parts for a question.
func (p *Pipeline) run(ctx context.Context, question string) (string, *db.ResultSet, *chart.Table, *chart.Plan, error) {
	// The schema lookup runs before any model call; a malformed
	// identifier fails the round here.
	schemaContext, err := p.Schema.TableContext(ctx)
	if err != nil {
		return "", nil, nil, nil, err
	}

	system := ai.BuildSystemPrompt(schemaContext)

	ai.LogRequest("Complete", p.Provider.Name(), map[string]string{
		"Question": question,
	})
	reply, err := p.Provider.Complete(ctx, system, question)
	ai.LogResponse("Complete", reply, err)
	if err != nil {
		return "", nil, nil, nil, err
	}

	// No fenced query is a valid outcome: the reply stands alone.
	ex := ExtractSQL(reply)
	if !ex.Found {
		return reply, nil, nil, nil, nil
	}

	results, err := p.Executor.Execute(ctx, ex.SQL)
	ai.LogQueryRound(ex.SQL, rowCount(results), err)
	if err != nil {
		return "", nil, nil, nil, err
	}

	table := chart.Profile(results.Columns, results.Rows, p.Profile)
	plan := chart.Choose(table)
	return reply, results, table, &plan, nil
}

func rowCount(rs *db.ResultSet) int {
	if rs == nil {
		return 0
	}
	return rs.RowCount
}
