package gate

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/pkg/config"
	"github.com/johnazariah/aura-sub009/pkg/models"
)

func requireBash(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not installed")
	}
}

func gateConfig(build, test string, timeout time.Duration) *config.GateConfig {
	if timeout == 0 {
		timeout = time.Minute
	}
	return &config.GateConfig{
		BuildCommand: build,
		TestCommand:  test,
		Timeout:      timeout,
	}
}

func TestRun_DisabledGatePasses(t *testing.T) {
	runner := NewRunner(gateConfig("", "", 0))
	result := runner.Run(context.Background(), t.TempDir(), 1)
	assert.True(t, result.Passed)
	assert.Equal(t, models.GateTypeComposite, result.GateType)
	assert.Equal(t, 1, result.Wave)
	assert.Empty(t, result.Error)
}

func TestRun_BuildAndTestPass(t *testing.T) {
	requireBash(t)
	runner := NewRunner(gateConfig(
		"echo building widgets",
		"echo '3 passed in 0.12s'",
		0,
	))

	result := runner.Run(context.Background(), t.TempDir(), 2)
	assert.True(t, result.Passed)
	assert.Equal(t, models.GateTypeComposite, result.GateType)
	assert.Equal(t, 2, result.Wave)
	assert.Contains(t, result.BuildOutput, "building widgets")
	assert.Equal(t, 3, result.TestsPassed)
	assert.Equal(t, 0, result.TestsFailed)
	assert.False(t, result.WasCancelled)
	assert.Empty(t, result.Error)
}

func TestRun_BuildFailureSkipsTests(t *testing.T) {
	requireBash(t)
	runner := NewRunner(gateConfig(
		"echo 'undefined symbol: frobnicate' >&2; exit 1",
		"echo should-not-run",
		0,
	))

	result := runner.Run(context.Background(), t.TempDir(), 1)
	assert.False(t, result.Passed)
	assert.Contains(t, result.Error, "build failed")
	assert.Contains(t, result.BuildOutput, "undefined symbol")
	assert.Empty(t, result.TestOutput, "tests must not run after a failed build")
}

func TestRun_TestFailureCountsResults(t *testing.T) {
	requireBash(t)
	runner := NewRunner(gateConfig(
		"",
		`printf -- '--- PASS: TestAlpha\n--- PASS: TestBeta\n--- FAIL: TestGamma\nFAIL\n'; exit 1`,
		0,
	))

	result := runner.Run(context.Background(), t.TempDir(), 3)
	assert.False(t, result.Passed)
	assert.Equal(t, models.GateTypeTest, result.GateType)
	assert.Equal(t, 2, result.TestsPassed)
	assert.Equal(t, 1, result.TestsFailed)
	assert.Contains(t, result.Error, "tests failed")
	assert.False(t, result.WasCancelled)
}

func TestRun_TimeoutReportsError(t *testing.T) {
	requireBash(t)
	runner := NewRunner(gateConfig("", "sleep 10", 100*time.Millisecond))

	start := time.Now()
	result := runner.Run(context.Background(), t.TempDir(), 1)
	require.Less(t, time.Since(start), 5*time.Second)

	assert.False(t, result.Passed)
	assert.Contains(t, result.Error, "timed out")
	assert.False(t, result.WasCancelled, "deadline is not caller cancellation")
}

func TestRun_CancellationIsFlagged(t *testing.T) {
	requireBash(t)
	runner := NewRunner(gateConfig("", "sleep 10", 0))

	ctx, cancel := context.WithCancel(context.Background())
	timer := time.AfterFunc(50*time.Millisecond, cancel)
	defer timer.Stop()

	result := runner.Run(ctx, t.TempDir(), 1)
	assert.False(t, result.Passed)
	assert.True(t, result.WasCancelled)
	assert.Contains(t, result.Error, "cancelled")
}

func TestParseTestCounts(t *testing.T) {
	tests := []struct {
		name   string
		output string
		passed int
		failed int
	}{
		{
			name:   "go test verbose",
			output: "=== RUN   TestAlpha\n--- PASS: TestAlpha (0.00s)\n--- PASS: TestBeta (0.01s)\n--- FAIL: TestGamma (0.02s)\nFAIL\n",
			passed: 2,
			failed: 1,
		},
		{
			name:   "pytest summary",
			output: "collected 4 items\n\n==== 3 passed, 1 failed in 0.52s ====\n",
			passed: 3,
			failed: 1,
		},
		{
			name:   "jest summary",
			output: "Tests:       1 failed, 4 passed, 5 total\n",
			passed: 4,
			failed: 1,
		},
		{
			name:   "dotnet summary",
			output: "Failed!  - Failed:     2, Passed:    10, Skipped:     0, Total:    12\n",
			passed: 10,
			failed: 2,
		},
		{
			name:   "unrecognized output",
			output: "make: *** [test] Error 2\n",
			passed: 0,
			failed: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passed, failed := parseTestCounts(tt.output)
			assert.Equal(t, tt.passed, passed, "passed count")
			assert.Equal(t, tt.failed, failed, "failed count")
		})
	}
}

func TestCapOutput(t *testing.T) {
	short := "all good"
	assert.Equal(t, short, capOutput(short))

	long := strings.Repeat("x", maxGateOutput+100) + "THE-END"
	capped := capOutput(long)
	assert.True(t, strings.HasPrefix(capped, "[earlier output truncated]\n"))
	assert.True(t, strings.HasSuffix(capped, "THE-END"), "tail must survive truncation")
	assert.LessOrEqual(t, len(capped), maxGateOutput+len("[earlier output truncated]\n"))
}
