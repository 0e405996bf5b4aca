package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"boundedvalue/replay"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name               string
		args               []string
		filename           string
		isFloat, isVerbose bool
		expectErr          bool
	}{
		{name: "script only", args: []string{"gauge-replay", "a.gauge"}, filename: "a.gauge"},
		{name: "float", args: []string{"gauge-replay", "a.gauge", "float"}, filename: "a.gauge", isFloat: true},
		{name: "both", args: []string{"gauge-replay", "a.gauge", "verbose", "float"}, filename: "a.gauge", isFloat: true, isVerbose: true},
		{name: "missing script", args: []string{"gauge-replay"}, expectErr: true},
		{name: "unknown modifier", args: []string{"gauge-replay", "a.gauge", "fast"}, expectErr: true},
	} {
		t.Run(test.name, func(t *testing.T) {
			filename, isFloat, isVerbose, err := parseArgs(test.args)
			if test.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.filename, filename)
			assert.Equal(t, test.isFloat, isFloat)
			assert.Equal(t, test.isVerbose, isVerbose)
		})
	}
}

func TestRunHealthScript(t *testing.T) {
	t.Parallel()

	file, err := os.Open("testdata/health.gauge")
	require.NoError(t, err)
	defer file.Close()

	steps, err := replay.Parse(file)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, replayScript[int64](&out, steps, zap.NewNop()))

	expected := "line 2: new 0 100 50 -> (0, 100, 50)\n" +
		"line 3: add 10 -> (0, 100, 60)\n" +
		"line 4: expect 60 -> (0, 100, 60)\n" +
		"line 5: expect_percent 60 -> (0, 100, 60)\n" +
		"line 6: sub_percent 60 -> (0, 100, 0)\n" +
		"line 7: expect 0 -> (0, 100, 0)\n" +
		"line 8: to_max -> (0, 100, 100)\n" +
		"line 10: add_over_max 10 -> (0, 110, 110)\n" +
		"line 11: expect 110 -> (0, 110, 110)\n" +
		"line 12: set_max 80 -> (0, 80, 80)\n" +
		"line 13: expect 80 -> (0, 80, 80)\n" +
		"steps: 11, expectations: 5, peak: 110, trough: 0, final: (0, 80, 80)\n"
	assert.Equal(t, expected, out.String())
}

func TestRunReportsFailures(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	steps := []replay.Step{
		{Line: 1, Op: replay.OpNew, Args: []string{"0", "10"}},
		{Line: 2, Op: replay.OpExpect, Args: []string{"3"}},
	}
	err := replayScript[float64](&out, steps, zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, replay.ErrExpectationFailed)
	assert.Equal(t, "line 1: new 0 10 -> (0, 10, 10)\n", out.String())
}

func TestExecute(t *testing.T) {
	t.Parallel()

	t.Run("replays a script", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, execute([]string{"gauge-replay", "testdata/health.gauge", "float"}, &out))
		assert.Contains(t, out.String(), "line 10: add_over_max 10 -> (0, 110, 110)\n")
		assert.Contains(t, out.String(), "final: (0, 80, 80)\n")
	})

	t.Run("reports a missing script", func(t *testing.T) {
		var out bytes.Buffer
		err := execute([]string{"gauge-replay", "testdata/missing.gauge"}, &out)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Empty(t, out.String())
	})

	t.Run("reports bad usage", func(t *testing.T) {
		var out bytes.Buffer
		assert.Error(t, execute([]string{"gauge-replay"}, &out))
	})
}
