package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/scfldr/pkg/materialize"
	"github.com/arthur-debert/scfldr/pkg/style"
)

// Renderer turns run results and previews into terminal output
type Renderer struct {
	// actionWidth pads the action verb column so paths line up
	actionWidth int
}

// NewRenderer creates a renderer with the default column layout
func NewRenderer() *Renderer {
	return &Renderer{actionWidth: 10}
}

// RenderRunResult renders the complete per-path report with a summary
func (r *Renderer) RenderRunResult(result RunResult) string {
	var output strings.Builder

	headerText := result.Command
	if len(headerText) > 0 {
		headerText = strings.ToUpper(headerText[:1]) + headerText[1:]
	}
	if result.DryRun {
		headerText += " (dry run)"
	}
	output.WriteString(style.TitleStyle.Render(headerText) + "\n\n")

	for _, outcome := range result.Outcomes {
		output.WriteString(r.RenderOutcome(outcome) + "\n")
	}

	if len(result.Outcomes) > 0 {
		output.WriteString("\n")
	}
	output.WriteString(r.RenderSummary(result))

	return output.String()
}

// RenderOutcome renders a single outcome line: action, path, detail
func (r *Renderer) RenderOutcome(outcome materialize.Outcome) string {
	verb := style.ActionVerb(outcome.Action)
	padded := fmt.Sprintf("%-*s", r.actionWidth, verb)
	line := style.ActionStyle(outcome.Action).Sprint(padded) + style.PathStyle.Render(outcome.Path)

	detail := outcome.Message
	if outcome.Err != nil {
		detail = outcome.Err.Error()
	}
	if detail != "" {
		line += "  " + style.MutedStyle.Render(detail)
	}
	return line
}

// RenderSummary renders the aggregate counts line
func (r *Renderer) RenderSummary(result RunResult) string {
	s := result.Summary
	parts := []string{
		fmt.Sprintf("%d created", s.Created),
		fmt.Sprintf("%d skipped", s.Skipped),
	}
	if s.Overwritten > 0 {
		parts = append(parts, fmt.Sprintf("%d overwritten", s.Overwritten))
	}
	if s.Appended > 0 {
		parts = append(parts, fmt.Sprintf("%d appended", s.Appended))
	}
	if s.Errors > 0 {
		parts = append(parts, style.ErrorStyle.Render(fmt.Sprintf("%d errors", s.Errors)))
	}

	summary := strings.Join(parts, ", ")
	if result.Root != "" {
		summary += style.MutedStyle.Render(" in " + result.Root)
	}
	return summary
}
