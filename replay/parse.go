package replay

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"boundedvalue/maps"
)

const (
	OpNew           = "new"
	OpSet           = "set"
	OpAdd           = "add"
	OpSub           = "sub"
	OpMul           = "mul"
	OpDiv           = "div"
	OpToMax         = "to_max"
	OpToMin         = "to_min"
	OpSetPercent    = "set_percent"
	OpAddPercent    = "add_percent"
	OpSubPercent    = "sub_percent"
	OpAddOverMax    = "add_over_max"
	OpSubUnderMin   = "sub_under_min"
	OpSetMin        = "set_min"
	OpSetMax        = "set_max"
	OpExpect        = "expect"
	OpExpectPercent = "expect_percent"
)

type arity struct {
	min, max int
}

var ops = map[string]arity{
	OpNew:           {2, 3},
	OpSet:           {1, 1},
	OpAdd:           {1, 1},
	OpSub:           {1, 1},
	OpMul:           {1, 1},
	OpDiv:           {1, 1},
	OpToMax:         {0, 0},
	OpToMin:         {0, 0},
	OpSetPercent:    {1, 1},
	OpAddPercent:    {1, 1},
	OpSubPercent:    {1, 1},
	OpAddOverMax:    {1, 1},
	OpSubUnderMin:   {1, 1},
	OpSetMin:        {1, 1},
	OpSetMax:        {1, 1},
	OpExpect:        {1, 1},
	OpExpectPercent: {1, 1},
}

var expectationOps = []string{OpExpect, OpExpectPercent}

// Step is one operation read from a script.
type Step struct {
	Line int
	Op   string
	Args []string
}

func (s Step) String() string {
	return strings.Join(append([]string{s.Op}, s.Args...), " ")
}

// Parse reads one step per line. Blank lines and lines starting with '#' are skipped.
// Only the operation name and argument count are checked here.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		step := Step{Line: lineNumber, Op: fields[0], Args: fields[1:]}
		if err := validate(step); err != nil {
			return nil, &StepError{Line: step.Line, Op: step.Op, Err: err}
		}
		steps = append(steps, step)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning script")
	}

	return steps, nil
}

func validate(step Step) error {
	a, ok := ops[step.Op]
	if !ok {
		return errors.Wrapf(ErrUnknownOp, "%q, expected one of %s", step.Op, strings.Join(maps.SortedKeys(ops), ", "))
	}
	if n := len(step.Args); n < a.min || n > a.max {
		return errors.Wrapf(ErrArity, "got %d, %s", n, a)
	}
	return nil
}

func (a arity) String() string {
	if a.min == a.max {
		return fmt.Sprintf("want %d", a.min)
	}
	return fmt.Sprintf("want %d to %d", a.min, a.max)
}
