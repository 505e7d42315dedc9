package display

import (
	"github.com/arthur-debert/scfldr/pkg/materialize"
	"github.com/arthur-debert/scfldr/pkg/style"
	"github.com/arthur-debert/scfldr/pkg/template"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// RenderTree renders preview entries as a tree rooted at rootLabel.
// Directories and files get distinct styling and append-mode files are
// marked, so a preview carries the same information a run report would.
func (r *Renderer) RenderTree(rootLabel string, entries []materialize.Entry) (string, error) {
	leveled := make(pterm.LeveledList, 0, len(entries))
	for _, entry := range entries {
		leveled = append(leveled, pterm.LeveledListItem{
			Level: entry.Depth,
			Text:  entryLabel(entry),
		})
	}

	root := putils.TreeFromLeveledList(leveled)
	root.Text = style.TitleStyle.Render(rootLabel)

	return pterm.DefaultTree.WithRoot(root).Srender()
}

func entryLabel(entry materialize.Entry) string {
	if entry.Kind == template.KindDirectory {
		return style.DirStyle.Render(entry.Name + "/")
	}
	label := style.FileStyle.Render(entry.Name)
	if entry.Mode == template.ModeAppend {
		label += style.MutedStyle.Render(" (append)")
	}
	return label
}
