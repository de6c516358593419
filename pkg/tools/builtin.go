package tools

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// maxSearchMatches bounds fs.search output so a broad pattern does not flood
// the conversation.
const maxSearchMatches = 50

func builtinTools() []*Tool {
	return []*Tool{
		{
			Definition: Definition{
				Name:        "fs.read_file",
				Description: "Read a file from the workspace and return its contents.",
				ParametersSchema: `{"type":"object","properties":{` +
					`"path":{"type":"string","description":"File path relative to the workspace root"}},` +
					`"required":["path"]}`,
				Categories: []string{"filesystem"},
			},
			Run: runReadFile,
		},
		{
			Definition: Definition{
				Name:        "fs.write_file",
				Description: "Write content to a file in the workspace, creating parent directories as needed.",
				ParametersSchema: `{"type":"object","properties":{` +
					`"path":{"type":"string","description":"File path relative to the workspace root"},` +
					`"content":{"type":"string","description":"Full file content to write"}},` +
					`"required":["path","content"]}`,
				Categories: []string{"filesystem"},
			},
			Run: runWriteFile,
		},
		{
			Definition: Definition{
				Name:        "fs.list_dir",
				Description: "List the entries of a workspace directory.",
				ParametersSchema: `{"type":"object","properties":{` +
					`"path":{"type":"string","description":"Directory path relative to the workspace root (default: workspace root)"}}}`,
				Categories: []string{"filesystem"},
			},
			Run: runListDir,
		},
		{
			Definition: Definition{
				Name:        "fs.search",
				Description: "Search workspace files for a literal text pattern and return matching lines.",
				ParametersSchema: `{"type":"object","properties":{` +
					`"pattern":{"type":"string","description":"Literal text to search for"},` +
					`"path":{"type":"string","description":"Subdirectory to search (default: workspace root)"}},` +
					`"required":["pattern"]}`,
				Categories: []string{"filesystem"},
			},
			Run: runSearch,
		},
		{
			Definition: Definition{
				Name:        "shell.run",
				Description: "Run a shell command in the workspace and return its combined output.",
				ParametersSchema: `{"type":"object","properties":{` +
					`"command":{"type":"string","description":"Shell command line to execute"}},` +
					`"required":["command"]}`,
				Categories:           []string{"shell"},
				RequiresConfirmation: true,
			},
			Run: runShell,
		},
		{
			Definition: Definition{
				Name:             "git.status",
				Description:      "Show the git status of the workspace (porcelain format).",
				ParametersSchema: `{"type":"object","properties":{}}`,
				Categories:       []string{"git"},
			},
			Run: runGitStatus,
		},
		{
			Definition: Definition{
				Name:        "git.diff",
				Description: "Show uncommitted changes in the workspace, optionally limited to one path.",
				ParametersSchema: `{"type":"object","properties":{` +
					`"path":{"type":"string","description":"Limit the diff to this path"}}}`,
				Categories: []string{"git"},
			},
			Run: runGitDiff,
		},
	}
}

// resolveWorkspacePath joins rel onto the workspace root and rejects paths
// that escape it.
func resolveWorkspacePath(workspace, rel string) (string, error) {
	if workspace == "" {
		return "", errors.New("no workspace is assigned to this execution")
	}
	wsAbs, err := filepath.Abs(workspace)
	if err != nil {
		return "", fmt.Errorf("failed to resolve workspace path: %w", err)
	}

	p := rel
	if !filepath.IsAbs(p) {
		p = filepath.Join(wsAbs, p)
	}
	p = filepath.Clean(p)

	if p != wsAbs && !strings.HasPrefix(p, wsAbs+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the workspace", rel)
	}
	return p, nil
}

func runReadFile(_ context.Context, workspace string, args map[string]any) (string, error) {
	rel := StringArg(args, "path")
	if rel == "" {
		return "", errors.New("'path' is required")
	}
	path, err := resolveWorkspacePath(workspace, rel)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func runWriteFile(_ context.Context, workspace string, args map[string]any) (string, error) {
	rel := StringArg(args, "path")
	if rel == "" {
		return "", errors.New("'path' is required")
	}
	content, ok := args["content"].(string)
	if !ok {
		return "", errors.New("'content' is required")
	}
	path, err := resolveWorkspacePath(workspace, rel)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return fmt.Sprintf("Wrote %d bytes to %s", len(content), rel), nil
}

func runListDir(_ context.Context, workspace string, args map[string]any) (string, error) {
	rel := StringArg(args, "path")
	if rel == "" {
		rel = "."
	}
	path, err := resolveWorkspacePath(workspace, rel)
	if err != nil {
		return "", err
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, entry := range entries {
		if entry.IsDir() {
			sb.WriteString(entry.Name() + "/\n")
		} else {
			sb.WriteString(entry.Name() + "\n")
		}
	}
	if sb.Len() == 0 {
		return "(empty directory)", nil
	}
	return sb.String(), nil
}

func runSearch(ctx context.Context, workspace string, args map[string]any) (string, error) {
	pattern := StringArg(args, "pattern")
	if pattern == "" {
		return "", errors.New("'pattern' is required")
	}
	rel := StringArg(args, "path")
	if rel == "" {
		rel = "."
	}
	root, err := resolveWorkspacePath(workspace, rel)
	if err != nil {
		return "", err
	}

	type match struct {
		path string
		line int
		text string
	}
	var matches []match

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		if len(matches) >= maxSearchMatches {
			return filepath.SkipAll
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		data, err := os.ReadFile(path)
		if err != nil || !strings.Contains(string(data), pattern) {
			return nil
		}
		relPath, _ := filepath.Rel(workspace, path)
		for i, line := range strings.Split(string(data), "\n") {
			if strings.Contains(line, pattern) {
				matches = append(matches, match{path: relPath, line: i + 1, text: strings.TrimSpace(line)})
				if len(matches) >= maxSearchMatches {
					break
				}
			}
		}
		return nil
	})
	if walkErr != nil {
		return "", walkErr
	}

	if len(matches) == 0 {
		return fmt.Sprintf("No matches for %q", pattern), nil
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].path != matches[j].path {
			return matches[i].path < matches[j].path
		}
		return matches[i].line < matches[j].line
	})

	var sb strings.Builder
	for _, m := range matches {
		fmt.Fprintf(&sb, "%s:%d: %s\n", m.path, m.line, m.text)
	}
	if len(matches) == maxSearchMatches {
		fmt.Fprintf(&sb, "... (stopped at %d matches)\n", maxSearchMatches)
	}
	return sb.String(), nil
}

func runShell(ctx context.Context, workspace string, args map[string]any) (string, error) {
	command := StringArg(args, "command")
	if command == "" {
		return "", errors.New("'command' is required")
	}
	if workspace == "" {
		return "", errors.New("no workspace is assigned to this execution")
	}

	cmd := exec.CommandContext(ctx, "bash", "-c", command)
	cmd.Dir = workspace
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("command failed: %w, output: %s", err, string(output))
	}
	if len(output) == 0 {
		return "(no output)", nil
	}
	return string(output), nil
}

func runGitStatus(ctx context.Context, workspace string, _ map[string]any) (string, error) {
	return runGit(ctx, workspace, "status", "--porcelain=v1", "--branch")
}

func runGitDiff(ctx context.Context, workspace string, args map[string]any) (string, error) {
	gitArgs := []string{"diff"}
	if rel := StringArg(args, "path"); rel != "" {
		if _, err := resolveWorkspacePath(workspace, rel); err != nil {
			return "", err
		}
		gitArgs = append(gitArgs, "--", rel)
	}
	return runGit(ctx, workspace, gitArgs...)
}

func runGit(ctx context.Context, workspace string, args ...string) (string, error) {
	if workspace == "" {
		return "", errors.New("no workspace is assigned to this execution")
	}
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = workspace
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w, output: %s", args[0], err, string(output))
	}
	if len(output) == 0 {
		return "(clean)", nil
	}
	return string(output), nil
}
