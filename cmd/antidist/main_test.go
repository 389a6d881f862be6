package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI runs the command with a background context and captures output.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"missing both", nil},
		{"missing iterations", []string{"-d", "3"}},
		{"dimension too small", []string{"-d", "1", "-i", "2"}},
		{"zero iterations", []string{"-d", "3", "-i", "0"}},
		{"unknown flag", []string{"-d", "3", "-i", "1", "--bogus"}},
		{"bad log level", []string{"-d", "3", "-i", "1", "--log-level", "loud"}},
		{"not a number", []string{"-d", "three", "-i", "1"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			code, stdout, stderr := runCLI(t, tc.args...)
			assert.Equal(t, exitUsage, code)
			assert.Empty(t, stdout)
			assert.NotEmpty(t, stderr)
		})
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "--help")
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "--dim")
	assert.Contains(t, stderr, "--iterations")
}

func TestRun_QubitTrials(t *testing.T) {
	t.Parallel()

	// Two random qubit states are never orthogonal, and the d=2 bound is 0,
	// so every trial reports false/false.
	code, stdout, stderr := runCLI(t, "-d", "2", "-i", "3", "--seed", "7")
	require.Equal(t, exitOK, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	for k, line := range lines {
		want := fmt.Sprintf("Iteration %d out of 3. Is antidistinguishable: false -- Is violated: false", k+1)
		assert.Equal(t, want, line)
	}

	assert.Contains(t, stderr, "seed=7")
	assert.Contains(t, stderr, "run=")
	assert.Contains(t, stderr, "trials=3")
	assert.Contains(t, stderr, "failures=0")
}

func TestRun_SeedReplays(t *testing.T) {
	t.Parallel()

	args := []string{"-d", "3", "-i", "4", "--seed", "12345", "--log-level", "error"}
	code1, out1, _ := runCLI(t, args...)
	code2, out2, _ := runCLI(t, args...)

	require.Equal(t, exitOK, code1)
	require.Equal(t, exitOK, code2)
	assert.Equal(t, out1, out2)
	assert.Equal(t, 4, strings.Count(out1, "\n"))
}

func TestRun_ShortCircuit(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "-d", "2", "-i", "2", "--seed", "3", "--short-circuit")
	require.Equal(t, exitOK, code)
	assert.Equal(t, 2, strings.Count(stdout, "Is antidistinguishable: skipped -- Is violated: false"))
	assert.Contains(t, stderr, "skipped=2")
}

func TestRun_TimeoutCountsFailures(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "-d", "3", "-i", "2", "--seed", "1", "--timeout", "1ns")
	require.Equal(t, exitOK, code, "failed trials do not change the exit code")
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "trial failed")
	assert.Contains(t, stderr, "failures=2")
}

func TestRun_Interrupted(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"-d", "3", "-i", "5", "--seed", "1"}, &stdout, &stderr)
	assert.Equal(t, exitInterrupted, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "interrupted")
}

func TestRun_DebugTracesSolver(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "-d", "3", "-i", "1", "--seed", "5", "--log-level", "debug")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, 1, strings.Count(stdout, "\n"))
	assert.Contains(t, stderr, "gap_bound=")
	assert.Contains(t, stderr, "newton_steps=")
	assert.Contains(t, stderr, "trial=1")

	_, _, quiet := runCLI(t, "-d", "3", "-i", "1", "--seed", "5")
	assert.NotContains(t, quiet, "gap_bound=")
}

func TestRun_RandomSetsHaveNoFailures(t *testing.T) {
	if testing.Short() {
		t.Skip("solves forty SDPs")
	}
	t.Parallel()

	for _, d := range []string{"4", "5"} {
		code, stdout, stderr := runCLI(t, "-d", d, "-i", "20", "--seed", "42")
		require.Equal(t, exitOK, code, stderr)
		assert.Equal(t, 20, strings.Count(stdout, "\n"), "d=%s", d)
		assert.Contains(t, stderr, "failures=0", "d=%s", d)
		assert.NotContains(t, stderr, "trial failed", "d=%s", d)
	}
}
