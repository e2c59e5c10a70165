package chat

import "testing"

func TestExtractSQL(t *testing.T) {
	tests := []struct {
		name   string
		reply  string
		found  bool
		before string
		sql    string
		after  string
	}{
		{
			name:   "prose around fenced block",
			reply:  "Here you go:\n```sql\nSELECT 1\n```\nDone.",
			found:  true,
			before: "Here you go:\n",
			sql:    "SELECT 1",
			after:  "\nDone.",
		},
		{
			name:   "block closes the reply",
			reply:  "Answer:\n```sql\nSELECT COUNT(*) FROM claims\n```",
			found:  true,
			before: "Answer:\n",
			sql:    "SELECT COUNT(*) FROM claims",
			after:  "",
		},
		{
			name:   "block opens the reply",
			reply:  "```sql\nSELECT 1\n```\ntrailing",
			found:  true,
			before: "",
			sql:    "SELECT 1",
			after:  "\ntrailing",
		},
		{
			name:  "multiline query",
			reply: "```sql\nSELECT a,\n       b\nFROM t\n```",
			found: true,
			sql:   "SELECT a,\n       b\nFROM t",
		},
		{
			name:   "no fenced block",
			reply:  "Sorry, I can only answer questions about the loss run table.",
			found:  false,
			before: "Sorry, I can only answer questions about the loss run table.",
		},
		{
			name:   "wrong fence language ignored",
			reply:  "```python\nprint(1)\n```",
			found:  false,
			before: "```python\nprint(1)\n```",
		},
		{
			name:   "first of two blocks wins",
			reply:  "```sql\nSELECT 1\n```\nmid\n```sql\nSELECT 2\n```",
			found:  true,
			before: "",
			sql:    "SELECT 1",
			after:  "\nmid\n```sql\nSELECT 2\n```",
		},
		{
			name:   "empty reply",
			reply:  "",
			found:  false,
			before: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSQL(tt.reply)
			if got.Found != tt.found {
				t.Fatalf("Found = %v, want %v", got.Found, tt.found)
			}
			if got.Before != tt.before {
				t.Errorf("Before = %q, want %q", got.Before, tt.before)
			}
			if got.SQL != tt.sql {
				t.Errorf("SQL = %q, want %q", got.SQL, tt.sql)
			}
			if got.After != tt.after {
				t.Errorf("After = %q, want %q", got.After, tt.after)
			}
		})
	}
}

// A found extraction must reassemble into the original reply, so the
// stored turn and its rendered view never drift apart.
func TestExtractSQLRoundTrip(t *testing.T) {
	replies := []string{
		"Here you go:\n```sql\nSELECT 1\n```\nDone.",
		"```sql\nSELECT *\nFROM claims\nLIMIT 50\n```",
		"intro\n```sql\nSELECT 1\n```\n```sql\nSELECT 2\n```",
	}
	for _, reply := range replies {
		ex := ExtractSQL(reply)
		if !ex.Found {
			t.Fatalf("ExtractSQL(%q).Found = false", reply)
		}
		rebuilt := ex.Before + "```sql\n" + ex.SQL + "\n```" + ex.After
		if rebuilt != reply {
			t.Errorf("round trip = %q, want %q", rebuilt, reply)
		}
	}
}
