package main

// Use 'go run gauge-replay/gauge-replay.go <script> [float] [verbose]' to execute this file

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"boundedvalue/maths"
	"boundedvalue/panicrecovery"
	"boundedvalue/replay"
	"boundedvalue/slices"
)

var modifiers = []string{"float", "verbose"}

func main() {
	if err := execute(os.Args, os.Stdout); err != nil {
		outputErrorAndExit(err)
	}
}

// execute owns every deferred cleanup so main can exit once they have run.
func execute(args []string, w io.Writer) (err error) {
	filename, isFloat, isVerbose, err := parseArgs(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(isVerbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)
	defer panicrecovery.RecoverAndLog(logger, &err)

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("opening script: %w", err)
	}
	defer file.Close()

	steps, err := replay.Parse(file)
	if err != nil {
		return err
	}

	if isFloat {
		return replayScript[float64](w, steps, logger)
	}
	return replayScript[int64](w, steps, logger)
}

func parseArgs(args []string) (string, bool, bool, error) {
	if len(args) < 2 {
		return "", false, false, errors.New("missing args. Usage: [script] [float] [verbose]")
	}

	isFloat, isVerbose := false, false
	for _, arg := range args[2:] {
		if !slices.Contains(modifiers, arg) {
			return "", false, false, fmt.Errorf("unknown modifier %q. Usage: [script] [float] [verbose]", arg)
		}
		isFloat = isFloat || arg == "float"
		isVerbose = isVerbose || arg == "verbose"
	}

	return args[1], isFloat, isVerbose, nil
}

func newLogger(isVerbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	if !isVerbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return config.Build()
}

// replayScript prints every step as it was applied, then a summary of the whole script.
func replayScript[T maths.Number](w io.Writer, steps []replay.Step, logger *zap.Logger) error {
	results, err := replay.Run[T](steps, logger)
	for _, r := range results {
		fmt.Fprintln(w, r)
	}
	if err != nil {
		return err
	}

	summary := replay.Summarize(results)
	fmt.Fprintf(w, "steps: %d, expectations: %d, peak: %v, trough: %v, final: %s\n",
		summary.Steps, summary.Expectations, summary.Peak, summary.Trough, summary.Final)

	return nil
}

func outputErrorAndExit(err error) {
	fmt.Println(err)
	os.Exit(1)
}
