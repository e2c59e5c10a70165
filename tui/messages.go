// messages.go defines Bubble Tea messages used for async communication.
//
// The pipeline round runs in a background command; the UI never
// blocks while the model or the warehouse is working.
package tui

import "github.com/elborak3000/nessie/chat"

// RoundDoneMsg is sent when a pipeline round completes. Transcript is
// the freshly replayed rendered log; Err reports driver misuse only
// (pipeline failures arrive inside the transcript as error turns).
type RoundDoneMsg struct {
	Transcript []chat.RenderedTurn
	Err        error
}
