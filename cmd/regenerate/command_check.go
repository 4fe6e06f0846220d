package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/osalpekar/vision/internal/git"
	"github.com/osalpekar/vision/internal/loader"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the committed config matches its template",
	Long:  "Regenerate the config in memory and compare it against the committed file, exiting non-zero on drift. With --base, also report which generator inputs changed relative to that branch.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck()
	},
}

func registerCheckCommand(root *cobra.Command) {
	root.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&baseBranch, "base", "", "Base branch for reporting changed generator inputs")
}

func runCheck() error {
	if baseBranch != "" {
		if err := reportChangedInputs(); err != nil {
			return err
		}
	}

	if err := newGenerator().Check(); err != nil {
		return err
	}

	fmt.Printf("✓ %s matches its template\n", outputName)
	return nil
}

// reportChangedInputs lists the files under the config directory that
// changed relative to the base branch.
func reportChangedInputs() error {
	dir, err := loader.DiscoverDir(configDir, templateName)
	if err != nil {
		return err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	detector := git.NewChangeDetector(baseBranch, absDir)
	root, err := detector.RepoRoot()
	if err != nil {
		return err
	}

	rel, err := filepath.Rel(root, absDir)
	if err != nil {
		return fmt.Errorf("failed to relate %s to repository root: %w", absDir, err)
	}

	files, err := detector.ChangedFilesUnder(filepath.ToSlash(rel))
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Printf("□ No generator inputs changed since %s\n", baseBranch)
		return nil
	}

	fmt.Printf("□ Changed since %s:\n", baseBranch)
	for _, file := range files {
		fmt.Printf("  - %s\n", file)
	}
	return nil
}
