// Package gate runs the inter-wave build and test commands in a story
// worktree and summarizes the outcome. The scheduler trusts the exit codes;
// nothing here interprets build or test text beyond best-effort counting.
package gate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"regexp"
	"strconv"

	"github.com/johnazariah/aura-sub009/pkg/config"
	"github.com/johnazariah/aura-sub009/pkg/models"
)

// maxGateOutput bounds the build and test output stored on the story.
const maxGateOutput = 16 * 1024

// Runner executes the configured gate commands.
type Runner struct {
	cfg *config.GateConfig
}

// NewRunner creates a gate runner for the given policy.
func NewRunner(cfg *config.GateConfig) *Runner {
	return &Runner{cfg: cfg}
}

// Run executes the build command, then the test command, inside the
// worktree. A gate with no commands configured passes trivially. The whole
// run is bounded by the configured timeout.
func (r *Runner) Run(ctx context.Context, worktreePath string, wave int) *models.GateResult {
	result := &models.GateResult{
		GateType: r.gateType(),
		Wave:     wave,
	}
	if !r.cfg.Enabled() {
		result.Passed = true
		return result
	}

	slog.Info("Running gate",
		"wave", wave,
		"gate_type", result.GateType,
		"worktree", worktreePath)

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	if r.cfg.BuildCommand != "" {
		output, err := runCommand(ctx, worktreePath, r.cfg.BuildCommand)
		result.BuildOutput = capOutput(output)
		if err != nil {
			result.Error, result.WasCancelled = r.phaseError(ctx, "build", err)
			slog.Warn("Gate build failed", "wave", wave, "error", result.Error)
			return result
		}
	}

	if r.cfg.TestCommand != "" {
		output, err := runCommand(ctx, worktreePath, r.cfg.TestCommand)
		result.TestOutput = capOutput(output)
		result.TestsPassed, result.TestsFailed = parseTestCounts(output)
		if err != nil {
			result.Error, result.WasCancelled = r.phaseError(ctx, "tests", err)
			slog.Warn("Gate tests failed",
				"wave", wave,
				"tests_passed", result.TestsPassed,
				"tests_failed", result.TestsFailed,
				"error", result.Error)
			return result
		}
	}

	result.Passed = true
	slog.Info("Gate passed",
		"wave", wave,
		"tests_passed", result.TestsPassed,
		"tests_failed", result.TestsFailed)
	return result
}

func (r *Runner) gateType() models.GateType {
	switch {
	case r.cfg.BuildCommand != "" && r.cfg.TestCommand != "":
		return models.GateTypeComposite
	case r.cfg.TestCommand != "":
		return models.GateTypeTest
	case r.cfg.BuildCommand != "":
		return models.GateTypeBuild
	default:
		return models.GateTypeComposite
	}
}

// phaseError renders a command failure, distinguishing caller cancellation
// from the gate's own deadline.
func (r *Runner) phaseError(ctx context.Context, phase string, err error) (msg string, cancelled bool) {
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		return phase + " cancelled", true
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Sprintf("%s timed out after %s", phase, r.cfg.Timeout), false
	default:
		return fmt.Sprintf("%s failed: %v", phase, err), false
	}
}

func runCommand(ctx context.Context, dir, command string) (string, error) {
	cmd := exec.CommandContext(ctx, "bash", "-c", command)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// capOutput bounds stored command output, keeping the tail where build and
// test failures are reported.
func capOutput(s string) string {
	if len(s) <= maxGateOutput {
		return s
	}
	return "[earlier output truncated]\n" + s[len(s)-maxGateOutput:]
}

var (
	goPassPattern      = regexp.MustCompile(`(?m)^\s*--- PASS: `)
	goFailPattern      = regexp.MustCompile(`(?m)^\s*--- FAIL: `)
	summaryPassedWords = regexp.MustCompile(`(\d+) passed`)
	summaryFailedWords = regexp.MustCompile(`(\d+) failed`)
	summaryPassedColon = regexp.MustCompile(`(?i)\bpassed:\s*(\d+)`)
	summaryFailedColon = regexp.MustCompile(`(?i)\bfailed:\s*(\d+)`)
)

// parseTestCounts extracts pass/fail totals from common test runner output:
// go test -v result lines, pytest/jest "N passed, M failed" summaries, and
// dotnet "Passed: N, Failed: M" summaries. Unrecognized formats leave both
// counts at zero; the verdict comes from the exit code either way.
func parseTestCounts(output string) (passed, failed int) {
	passed = len(goPassPattern.FindAllStringIndex(output, -1))
	failed = len(goFailPattern.FindAllStringIndex(output, -1))
	if passed > 0 || failed > 0 {
		return passed, failed
	}
	passed = lastCount(output, summaryPassedWords, summaryPassedColon)
	failed = lastCount(output, summaryFailedWords, summaryFailedColon)
	return passed, failed
}

// lastCount returns the captured number from the final match of the first
// pattern that matches at all. Summaries print last, so the last match wins.
func lastCount(output string, patterns ...*regexp.Regexp) int {
	for _, re := range patterns {
		matches := re.FindAllStringSubmatch(output, -1)
		if len(matches) == 0 {
			continue
		}
		n, err := strconv.Atoi(matches[len(matches)-1][1])
		if err != nil {
			continue
		}
		return n
	}
	return 0
}
