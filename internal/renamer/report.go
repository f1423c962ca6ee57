package renamer

import (
	"errors"
	"fmt"
	"os"
)

// Outcome records what happened to one manifest line.
type Outcome struct {
	Line   int
	From   string
	To     string
	Err    error
	Reason Reason
}

// OK reports whether the rename succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Message renders the outcome the way the CLI prints it.
func (o Outcome) Message() string {
	if o.Err != nil {
		return fmt.Sprintf("Error renaming %s: %v", o.From, o.Cause())
	}
	return fmt.Sprintf("%s renamed to %s", o.From, o.To)
}

// Cause strips the `rename <old> <new>:` wrapper the OS adds, leaving the
// errno text. It returns nil for successful outcomes.
func (o Outcome) Cause() error {
	var linkErr *os.LinkError
	if errors.As(o.Err, &linkErr) && linkErr.Err != nil {
		return linkErr.Err
	}
	return o.Err
}

// Report collects per-line outcomes of a run. It is returned even when the run
// fails after renames have started, so callers can still show what happened.
type Report struct {
	RunID           string
	Directory       string
	Manifest        string
	Reverse         bool
	Outcomes        []Outcome
	ManifestDeleted bool
}

// Renamed returns the number of successful renames.
func (r *Report) Renamed() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, o := range r.Outcomes {
		if o.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of failed renames.
func (r *Report) Failed() int {
	if r == nil {
		return 0
	}
	return len(r.Outcomes) - r.Renamed()
}
