package main

import (
	"github.com/spf13/cobra"

	"github.com/osalpekar/vision/internal/loader"
)

var (
	configDir         string
	releaseConfig     string
	templateName      string
	outputName        string
	dryRun            bool
	baseBranch        string
	longFormat        bool
	viewMode          string
	outputFormat      string
	matrixPrefix      string
	filterBranch      string
	withUpload        bool
	withSmokeTests    bool
	windowsLatestOnly bool
)

var rootCmd = &cobra.Command{
	Use:   "regenerate",
	Short: "Binary build matrix generator for CircleCI",
	Long:  "regenerate expands the binary build matrix and splices it into the committed CircleCI config from its template. Run with no subcommand to regenerate the config in place.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "dir", "d", "", "Directory holding the config template (default: discover the .circleci directory)")
	rootCmd.PersistentFlags().StringVarP(&releaseConfig, "config", "c", "", "Release config YAML overriding the default axes")
	rootCmd.PersistentFlags().StringVar(&templateName, "template", loader.TemplateName, "Template file name inside the config directory")
	rootCmd.PersistentFlags().StringVar(&outputName, "output", loader.OutputName, "Output file name inside the config directory")

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the rendered config instead of writing it")

	registerGenerateCommand(rootCmd)
	registerCheckCommand(rootCmd)
	registerValidateCommand(rootCmd)
	registerMatrixCommand(rootCmd)
}
