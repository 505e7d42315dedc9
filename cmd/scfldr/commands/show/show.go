package show

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/scfldr/pkg/display"
	"github.com/arthur-debert/scfldr/pkg/filesystem"
	"github.com/arthur-debert/scfldr/pkg/logging"
	"github.com/arthur-debert/scfldr/pkg/materialize"
	"github.com/arthur-debert/scfldr/pkg/template"
	"github.com/spf13/cobra"
)

// NewCommand creates the show-structure command
func NewCommand() *cobra.Command {
	var templatePath string

	cmd := &cobra.Command{
		Use:     "show-structure",
		Aliases: []string{"show"},
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, templatePath)
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "template.yaml", "Path to the template file")

	return cmd
}

func run(cmd *cobra.Command, templatePath string) error {
	logger := logging.GetLogger("cli.show")

	root, err := template.Load(filesystem.NewOS(), templatePath)
	if err != nil {
		return err
	}
	logger.Debug().Str("template", templatePath).Msg("Template loaded")

	renderer := display.NewRenderer()
	display.ApplyFormat(display.DetectFormat(os.Stdout))

	label := filepath.Base(templatePath)
	tree, err := renderer.RenderTree(label, materialize.Preview(root))
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), tree)
	return nil
}
