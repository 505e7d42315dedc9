package style

import (
	"github.com/arthur-debert/scfldr/pkg/materialize"
	"github.com/pterm/pterm"
)

// ActionStyle returns the pterm style used for an outcome's action verb
func ActionStyle(action materialize.Action) *pterm.Style {
	switch action {
	case materialize.ActionCreated:
		return pterm.NewStyle(pterm.FgGreen)
	case materialize.ActionOverwritten:
		return pterm.NewStyle(pterm.FgYellow)
	case materialize.ActionAppended:
		return pterm.NewStyle(pterm.FgCyan)
	case materialize.ActionError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// ActionVerb returns the report column text for an action
func ActionVerb(action materialize.Action) string {
	switch action {
	case materialize.ActionCreated:
		return "created"
	case materialize.ActionSkipped:
		return "skipped"
	case materialize.ActionOverwritten:
		return "overwrote"
	case materialize.ActionAppended:
		return "appended"
	case materialize.ActionError:
		return "error"
	default:
		return string(action)
	}
}
