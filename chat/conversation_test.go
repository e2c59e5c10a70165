package chat

import (
	"reflect"
	"testing"
)

func TestNewConversationStartsWithGreeting(t *testing.T) {
	c := New()

	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	first := c.Turns()[0]
	if first.Role != RoleAssistant {
		t.Errorf("first turn role = %q, want %q", first.Role, RoleAssistant)
	}
	if first.Content != Greeting {
		t.Errorf("first turn content = %q, want greeting", first.Content)
	}
	if c.State() != AwaitingUser {
		t.Errorf("State() = %v, want AwaitingUser", c.State())
	}
}

func TestConversationStateTransitions(t *testing.T) {
	c := New()

	if _, err := c.AppendUser("how many claims are open?"); err != nil {
		t.Fatalf("AppendUser() error = %v", err)
	}
	if c.State() != AwaitingAssistant {
		t.Fatalf("State() after user turn = %v, want AwaitingAssistant", c.State())
	}

	// A second user turn while the round is pending is rejected and
	// leaves the log untouched.
	before := c.Len()
	if _, err := c.AppendUser("and closed?"); err == nil {
		t.Error("AppendUser() while awaiting assistant: want error, got nil")
	}
	if c.Len() != before {
		t.Errorf("Len() = %d after rejected append, want %d", c.Len(), before)
	}

	c.appendAssistant("All clear.", nil, nil, nil, false)
	if c.State() != AwaitingUser {
		t.Errorf("State() after assistant turn = %v, want AwaitingUser", c.State())
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestConversationTurnsReturnsCopy(t *testing.T) {
	c := New()
	if _, err := c.AppendUser("hello"); err != nil {
		t.Fatalf("AppendUser() error = %v", err)
	}

	turns := c.Turns()
	turns[0].Content = "tampered"

	if c.Turns()[0].Content != Greeting {
		t.Error("mutating the returned slice changed the stored log")
	}
}

func TestConversationTurnIdentity(t *testing.T) {
	c := New()
	turn, err := c.AppendUser("hi")
	if err != nil {
		t.Fatalf("AppendUser() error = %v", err)
	}
	if turn.ID == c.Turns()[0].ID {
		t.Error("user turn reused the greeting turn's ID")
	}
	if turn.At.IsZero() {
		t.Error("appended turn has zero timestamp")
	}
}

// Rendering is a replay of immutable state, so repeated calls must
// agree exactly.
func TestConversationRenderIdempotent(t *testing.T) {
	c := New()
	if _, err := c.AppendUser("show totals by year"); err != nil {
		t.Fatalf("AppendUser() error = %v", err)
	}
	c.appendAssistant("Sure:\n```sql\nSELECT 1\n```\nEnjoy.", nil, nil, nil, false)

	first := c.Render()
	second := c.Render()
	if !reflect.DeepEqual(first, second) {
		t.Error("Render() results differ between calls")
	}
	if len(first) != 3 {
		t.Fatalf("Render() returned %d turns, want 3", len(first))
	}
	if first[2].Kind != RenderedQuery {
		t.Errorf("assistant turn kind = %v, want RenderedQuery", first[2].Kind)
	}
	if first[2].SQL != "SELECT 1" {
		t.Errorf("assistant turn SQL = %q, want %q", first[2].SQL, "SELECT 1")
	}
}

func TestTurnRenderVariants(t *testing.T) {
	tests := []struct {
		name string
		turn Turn
		kind RenderedKind
	}{
		{
			name: "user text",
			turn: Turn{Role: RoleUser, Content: "hi"},
			kind: RenderedText,
		},
		{
			name: "assistant without query",
			turn: Turn{Role: RoleAssistant, Content: "No query needed."},
			kind: RenderedText,
		},
		{
			name: "assistant with query",
			turn: Turn{Role: RoleAssistant, Content: "ok\n```sql\nSELECT 1\n```\n"},
			kind: RenderedQuery,
		},
		{
			name: "failed turn always renders as error",
			turn: Turn{Role: RoleAssistant, Content: "boom\n```sql\nSELECT 1\n```", Failed: true},
			kind: RenderedError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.turn.Render()
			if got.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.kind)
			}
			if got.Role != tt.turn.Role {
				t.Errorf("Role = %q, want %q", got.Role, tt.turn.Role)
			}
		})
	}
}
