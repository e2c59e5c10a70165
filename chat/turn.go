// Package chat holds the conversation turn log and the per-round
// response pipeline.
//
// Design decisions:
//   - Turns are immutable once appended; the raw model reply is stored
//     unsplit and splitting is a read-time derived view, so replaying
//     the log never mutates history.
//   - The per-turn shape (plain text vs. prose+SQL+results vs. error)
//     is a discriminated variant produced at render time, not ad hoc
//     flags on the stored turn.
package chat

import (
	"time"

	"github.com/elborak3000/nessie/chart"
	"github.com/elborak3000/nessie/db"
	"github.com/google/uuid"
)

// Role identifies the author of a turn. The transient system role is
// never stored in the log; it exists only as a value passed to the
// model call.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in the conversation log.
type Turn struct {
	ID      uuid.UUID
	Role    Role
	Content string // full raw reply text for assistant turns, unsplit
	At      time.Time

	// Present only on assistant turns whose reply contained an
	// executable query that ran successfully.
	Results *db.ResultSet
	Table   *chart.Table
	Chart   *chart.Plan

	// Failed marks an assistant turn carrying an error's display text.
	Failed bool
}

// RenderedKind discriminates the derived view of a turn.
type RenderedKind int

const (
	RenderedText RenderedKind = iota
	RenderedQuery
	RenderedError
)

// RenderedTurn is the read-time view of a turn, with the reply split
// around its fenced query when one is present.
type RenderedTurn struct {
	Role Role
	Kind RenderedKind

	// Text carries the whole content for RenderedText and RenderedError.
	Text string

	// RenderedQuery fields.
	Before  string
	SQL     string
	After   string
	Results *db.ResultSet
	Table   *chart.Table
	Chart   *chart.Plan
}

// Render derives the display view of the turn. It is pure: calling it
// any number of times yields the same result and never touches the
// stored content.
func (t Turn) Render() RenderedTurn {
	if t.Failed {
		return RenderedTurn{Role: t.Role, Kind: RenderedError, Text: t.Content}
	}
	if t.Role != RoleAssistant {
		return RenderedTurn{Role: t.Role, Kind: RenderedText, Text: t.Content}
	}

	ex := ExtractSQL(t.Content)
	if !ex.Found {
		return RenderedTurn{Role: t.Role, Kind: RenderedText, Text: t.Content}
	}
	return RenderedTurn{
		Role:    t.Role,
		Kind:    RenderedQuery,
		Before:  ex.Before,
		SQL:     ex.SQL,
		After:   ex.After,
		Results: t.Results,
		Table:   t.Table,
		Chart:   t.Chart,
	}
}
