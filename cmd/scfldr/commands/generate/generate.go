package generate

import (
	"fmt"
	"os"
	"time"

	"github.com/arthur-debert/scfldr/pkg/display"
	"github.com/arthur-debert/scfldr/pkg/filesystem"
	"github.com/arthur-debert/scfldr/pkg/logging"
	"github.com/arthur-debert/scfldr/pkg/materialize"
	"github.com/arthur-debert/scfldr/pkg/template"
	"github.com/spf13/cobra"
)

// NewCommand creates the generate-structure command
func NewCommand() *cobra.Command {
	var (
		templatePath string
		outputPath   string
		force        bool
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:     "generate-structure",
		Aliases: []string{"generate", "gen"},
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, templatePath, outputPath, force, dryRun)
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "template.yaml", "Path to the template file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", ".", "Output directory root")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files and allow a non-empty output directory")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the structure without writing anything")

	return cmd
}

func run(cmd *cobra.Command, templatePath, outputPath string, force, dryRun bool) error {
	logger := logging.GetLogger("cli.generate")
	start := time.Now()

	fs := filesystem.NewOS()
	root, err := template.Load(fs, templatePath)
	if err != nil {
		return err
	}
	logger.Debug().Str("template", templatePath).Msg("Template loaded")

	renderer := display.NewRenderer()
	display.ApplyFormat(display.DetectFormat(os.Stdout))

	if dryRun {
		tree, err := renderer.RenderTree(outputPath, materialize.Preview(root))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderRunResult(display.RunResult{
			Command: cmd.Name(),
			Root:    outputPath,
			DryRun:  true,
		}))
		fmt.Fprint(cmd.OutOrStdout(), tree)
		return nil
	}

	// The single --force flag opens both gates; the engine keeps them apart.
	m := materialize.New(fs, materialize.Options{
		Force:             force,
		AllowExistingRoot: force,
	})

	if err := m.CheckRoot(outputPath); err != nil {
		return err
	}

	outcomes, err := m.Materialize(root, outputPath)
	if err != nil {
		return err
	}

	result := display.RunResult{
		Command:  cmd.Name(),
		Root:     outputPath,
		Outcomes: outcomes,
		Summary:  materialize.Summarize(outcomes),
		Duration: time.Since(start),
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderRunResult(result))

	// Show the resulting structure, like the preview but post-run
	tree, err := renderer.RenderTree(outputPath, materialize.Preview(root))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), tree)

	logging.LogDuration(start, "generate-structure")
	return nil
}
