// extract.go isolates the fenced SQL block from a model reply.
package chat

import "regexp"

// sqlFence matches the first ```sql fenced block. Non-greedy so that
// with multiple blocks the first occurrence wins.
var sqlFence = regexp.MustCompile("(?s)```sql\n(.*?)\n```")

// Extraction is the split view of a reply: prose before the fenced
// query, the query itself, and prose after. When no fenced block is
// present, Found is false and the whole reply is Before.
type Extraction struct {
	Before string
	SQL    string
	After  string
	Found  bool
}

// ExtractSQL splits a raw reply around its first fenced SQL block.
// Absence of a block is a normal outcome, not an error. Slicing at
// the match end is safe even when the block closes the reply.
func ExtractSQL(reply string) Extraction {
	loc := sqlFence.FindStringSubmatchIndex(reply)
	if loc == nil {
		return Extraction{Before: reply}
	}
	return Extraction{
		Before: reply[:loc[0]],
		SQL:    reply[loc[2]:loc[3]],
		After:  reply[loc[1]:],
		Found:  true,
	}
}
