package git

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// ChangeDetector reports files changed relative to a base branch.
type ChangeDetector struct {
	baseBranch string
	dir        string // directory the git commands run in
}

// NewChangeDetector creates a detector running git inside dir. An empty
// base branch compares against main.
func NewChangeDetector(baseBranch, dir string) *ChangeDetector {
	if baseBranch == "" {
		baseBranch = "main"
	}
	return &ChangeDetector{
		baseBranch: baseBranch,
		dir:        dir,
	}
}

// ChangedFiles returns the union of uncommitted changes and commits not
// on the base branch, as repository-relative paths in sorted order.
func (cd *ChangeDetector) ChangedFiles() ([]string, error) {
	seen := make(map[string]bool)

	// Uncommitted work counts as a change too. These fail only outside
	// a repository, which the base comparison below reports anyway.
	for _, args := range [][]string{
		{"diff", "--name-only"},
		{"diff", "--cached", "--name-only"},
	} {
		if files, err := cd.git(args...); err == nil {
			for _, file := range files {
				seen[file] = true
			}
		}
	}

	committed, err := cd.committedAgainstBase()
	if err != nil {
		return nil, err
	}
	for _, file := range committed {
		seen[file] = true
	}

	result := make([]string, 0, len(seen))
	for file := range seen {
		result = append(result, file)
	}
	sort.Strings(result)
	return result, nil
}

// ChangedFilesUnder returns the changed files at or below the given
// repository-relative path.
func (cd *ChangeDetector) ChangedFilesUnder(path string) ([]string, error) {
	files, err := cd.ChangedFiles()
	if err != nil {
		return nil, err
	}

	path = strings.TrimSuffix(strings.TrimPrefix(path, "./"), "/")
	if path == "" || path == "." {
		return files, nil
	}

	result := make([]string, 0, len(files))
	for _, file := range files {
		if file == path || strings.HasPrefix(file, path+"/") {
			result = append(result, file)
		}
	}
	return result, nil
}

// RepoRoot returns the absolute path of the repository top level.
func (cd *ChangeDetector) RepoRoot() (string, error) {
	lines, err := cd.git("rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to locate repository root: %w", err)
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("failed to locate repository root")
	}
	return lines[0], nil
}

// committedAgainstBase diffs HEAD against the base branch. The local
// branch may be absent in CI checkouts, so origin/<base> and the merge
// base are tried before giving up.
func (cd *ChangeDetector) committedAgainstBase() ([]string, error) {
	if files, err := cd.git("diff", "--name-only", cd.baseBranch); err == nil {
		return files, nil
	}
	if files, err := cd.git("diff", "--name-only", "origin/"+cd.baseBranch); err == nil {
		return files, nil
	}

	for _, ref := range []string{cd.baseBranch, "origin/" + cd.baseBranch} {
		sha, err := cd.git("merge-base", "HEAD", ref)
		if err != nil || len(sha) == 0 {
			continue
		}
		if files, err := cd.git("diff", "--name-only", sha[0]); err == nil {
			return files, nil
		}
	}

	return nil, fmt.Errorf("no ref found for base branch %s", cd.baseBranch)
}

// git runs a git command and returns its non-empty output lines.
func (cd *ChangeDetector) git(args ...string) ([]string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = cd.dir
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}

	lines := make([]string, 0)
	for _, line := range strings.Split(string(output), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
