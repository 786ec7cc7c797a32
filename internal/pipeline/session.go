package pipeline

import "github.com/vikaskrsingh/finai-mitra/internal/classify"

// State is the orchestrator's position in the processing state machine.
type State int

const (
	StateIdle State = iota
	StateExtracting
	StateClassifying
	StatePrompting
	StateGenerating
	StateReady
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateExtracting:
		return "extracting"
	case StateClassifying:
		return "classifying"
	case StatePrompting:
		return "prompting"
	case StateGenerating:
		return "generating"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// QAExchange is one question asked over the current output, with its answer.
type QAExchange struct {
	Question string
	Answer   string
}

// Session holds the short-lived state of one user session. All fields are
// overwritten wholesale at the start of each run; nothing persists past the
// session except explicit exports (audio bytes, feedback).
type Session struct {
	State          State
	ExtractedText  string
	Classification classify.Result

	// ProcessedOutput is the live result shown to the user. CurrentSummary is
	// the grounding context for Q&A; it stays empty when the output is a
	// rejection or retry message, which keeps Q&A gated.
	ProcessedOutput string
	CurrentSummary  string

	LastQA *QAExchange
}

// reset discards all per-run state. Called before extraction even begins, so
// a failing run still clears the previous run's results.
func (s *Session) reset() {
	*s = Session{}
}
