package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osalpekar/vision/internal/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the CircleCI config from its template",
	Long:  "Expand the build matrix and write the committed config next to the template. Running regenerate with no subcommand does the same thing.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

func registerGenerateCommand(root *cobra.Command) {
	root.AddCommand(generateCmd)

	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the rendered config instead of writing it")
}

func runGenerate() error {
	path, err := newGenerator().Run()
	if err != nil {
		return err
	}

	if path != "" {
		fmt.Printf("✓ Wrote %s\n", path)
	}
	return nil
}

func newGenerator() *generate.Generator {
	gen := generate.NewGenerator(configDir, releaseConfig, os.Stdout, dryRun)
	gen.Template = templateName
	gen.Output = outputName
	return gen
}
