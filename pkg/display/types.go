package display

import (
	"time"

	"github.com/arthur-debert/scfldr/pkg/materialize"
)

// RunResult is everything a command hands to the renderer after a
// materialization run.
type RunResult struct {
	// Command is the command that produced the result
	Command string

	// Root is the output directory the run targeted
	Root string

	// Outcomes lists every visited path in visit order
	Outcomes []materialize.Outcome

	// Summary aggregates the outcome counts
	Summary materialize.Summary

	// DryRun indicates nothing was written
	DryRun bool

	// Duration is the total run time
	Duration time.Duration
}
