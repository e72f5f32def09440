package replay

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pincecheck/internal/domain"
	"github.com/alexanderramin/pincecheck/internal/flow"
)

// Applier applies one action to a session.
type Applier interface {
	Apply(ctx context.Context, s *domain.Session, a flow.Action) (flow.Directive, error)
}

// StepResult records what one step produced.
type StepResult struct {
	Index     int
	Action    string
	Directive flow.Directive
}

// Result is the outcome of a replay.
type Result struct {
	Steps   []StepResult
	Session *domain.Session
}

// Final returns the directive of the last step.
func (r *Result) Final() flow.Directive {
	if len(r.Steps) == 0 {
		return flow.Directive{}
	}
	return r.Steps[len(r.Steps)-1].Directive
}

// Notices returns every notice emitted, in step order.
func (r *Result) Notices() []string {
	var out []string
	for _, st := range r.Steps {
		if st.Directive.Notice != "" {
			out = append(out, st.Directive.Notice)
		}
	}
	return out
}

// Run plays script against a fresh session. It stops at the first step that
// fails unexpectedly, succeeds when a failure was expected, or lands on a
// screen other than the one it expects. The partial result is returned
// alongside the error.
func Run(ctx context.Context, app Applier, script *Script) (*Result, error) {
	res := &Result{Session: domain.NewSession()}

	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		action, err := step.ToAction()
		if err != nil {
			return res, fmt.Errorf("step %d: %w", i+1, err)
		}

		d, err := app.Apply(ctx, res.Session, action)
		res.Steps = append(res.Steps, StepResult{Index: i + 1, Action: action.Name(), Directive: d})

		switch {
		case err != nil && !step.ExpectError:
			return res, fmt.Errorf("step %d (%s): %w", i+1, action.Name(), err)
		case err == nil && step.ExpectError:
			return res, fmt.Errorf("step %d (%s): expected an error, got screen %s", i+1, action.Name(), d.Screen)
		}
		if step.Expect != "" && flow.Screen(step.Expect) != d.Screen {
			return res, fmt.Errorf("step %d (%s): expected screen %s, got %s", i+1, action.Name(), step.Expect, d.Screen)
		}
	}
	return res, nil
}
