// conversation.go owns the append-only turn log for one session.
//
// The conversation is single-owner and processed strictly
// sequentially: at most one pipeline round is in flight at a time, so
// the log needs no locking. It is passed explicitly through the
// pipeline rather than living in ambient global state.
package chat

import (
	"fmt"
	"time"

	"github.com/elborak3000/nessie/chart"
	"github.com/elborak3000/nessie/db"
	"github.com/google/uuid"
)

// State tracks whose turn it is.
type State int

const (
	AwaitingUser State = iota
	AwaitingAssistant
)

// Greeting is the synthetic assistant turn every conversation starts with.
const Greeting = `Hello! I'm Nessie, your dedicated data assistant here to help you navigate and analyze the vast seas of loss run data in our datalake. Whether you need to pull up specific data, understand trends, or dive deep into analytics, I'm here to guide you every step of the way.

How can I assist you today?`

// Conversation is the ordered, append-only turn log.
type Conversation struct {
	id    uuid.UUID
	turns []Turn
}

// New creates a conversation with the synthetic greeting already
// appended, leaving it in the AwaitingUser state.
func New() *Conversation {
	c := &Conversation{id: uuid.New()}
	c.append(Turn{Role: RoleAssistant, Content: Greeting})
	return c
}

// ID returns the conversation identifier.
func (c *Conversation) ID() uuid.UUID { return c.id }

// Len returns the number of turns in the log.
func (c *Conversation) Len() int { return len(c.turns) }

// State derives the current state from the last turn.
func (c *Conversation) State() State {
	if len(c.turns) == 0 || c.turns[len(c.turns)-1].Role == RoleAssistant {
		return AwaitingUser
	}
	return AwaitingAssistant
}

// Turns returns a copy of the log; appended turns are never mutated.
func (c *Conversation) Turns() []Turn {
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Last returns the most recent turn.
func (c *Conversation) Last() Turn {
	return c.turns[len(c.turns)-1]
}

// AppendUser appends a user turn. It fails if a pipeline round is
// still pending, which would break strict user/assistant alternation.
func (c *Conversation) AppendUser(content string) (Turn, error) {
	if c.State() != AwaitingUser {
		return Turn{}, fmt.Errorf("conversation is awaiting the assistant reply")
	}
	return c.append(Turn{Role: RoleUser, Content: content}), nil
}

// appendAssistant completes a round. Only the pipeline calls this.
func (c *Conversation) appendAssistant(content string, results *db.ResultSet, table *chart.Table, plan *chart.Plan, failed bool) Turn {
	return c.append(Turn{
		Role:    RoleAssistant,
		Content: content,
		Results: results,
		Table:   table,
		Chart:   plan,
		Failed:  failed,
	})
}

func (c *Conversation) append(t Turn) Turn {
	t.ID = uuid.New()
	t.At = time.Now()
	c.turns = append(c.turns, t)
	return t
}

// Render replays the whole log through the read-time view. It is
// pure: rendering twice yields identical output and never mutates a
// stored turn.
func (c *Conversation) Render() []RenderedTurn {
	out := make([]RenderedTurn, 0, len(c.turns))
	for _, t := range c.turns {
		out = append(out, t.Render())
	}
	return out
}
