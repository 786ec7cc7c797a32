package pipeline

import "errors"

var (
	// ErrNoInputProvided is returned when a run is requested with neither a
	// file nor pasted text.
	ErrNoInputProvided = errors.New("no input provided: upload a file or paste text to proceed")

	// ErrNoSummaryAvailable is returned when Q&A is attempted before any run
	// has produced an output to ground the answer on.
	ErrNoSummaryAvailable = errors.New("no summary available: process a document first")
)
