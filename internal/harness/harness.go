// Package harness provides a conformance testing framework for the
// chord engine.
//
// Scenarios are YAML files that script key transitions and state the
// chord lines the engine must emit for them. Each scenario runs
// against a fresh, real Engine wired to a recording sink; there is no
// simulation layer in between, so a passing scenario is evidence about
// engine behavior, not about the harness. The emitted transcript is
// additionally pinned by golden files (see RunWithGolden), which catch
// accidental changes to the canonical chord format itself.
package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/nshan651/clefd/internal/engine"
	"github.com/nshan651/clefd/internal/keysym"
	"github.com/nshan651/clefd/internal/testutil"
)

// Result captures a scenario execution.
type Result struct {
	ScenarioName string

	// Transcript holds the chord lines the engine emitted, in order.
	Transcript []string

	// Errors lists expectation mismatches. Empty means the scenario
	// passed.
	Errors []string
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool {
	return len(r.Errors) == 0
}

// AddError records an expectation mismatch.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// Run executes a scenario against a fresh engine and checks its
// emissions.
//
// Key names resolve through the default keysym table; a name the table
// cannot produce is a scenario bug and fails the run outright rather
// than recording a mismatch.
func Run(scenario *Scenario) (*Result, error) {
	table := keysym.Default()
	recorder := &testutil.Recorder{}

	opts := []engine.Option{
		// Suppress logs in tests
		engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	if scenario.Capacity > 0 {
		opts = append(opts, engine.WithCapacity(scenario.Capacity))
	}
	eng := engine.New(table, recorder, opts...)

	for i, step := range scenario.Steps {
		name, pressed := step.Press, true
		if name == "" {
			name, pressed = step.Release, false
		}

		code, ok := table.CodeForName(name)
		if !ok {
			return nil, fmt.Errorf("step %d: unknown key name %q", i, name)
		}
		eng.HandleEvent(engine.KeyEvent{Code: code, Pressed: pressed})
	}

	result := &Result{
		ScenarioName: scenario.Name,
		Transcript:   recorder.Lines(),
	}
	checkEmits(result, scenario.Emits)
	return result, nil
}

// checkEmits compares the transcript against the scenario's expected
// emissions, element by element.
func checkEmits(result *Result, want []string) {
	got := result.Transcript
	if len(got) != len(want) {
		result.AddError(fmt.Sprintf("emission count: expected %d, got %d", len(want), len(got)))
	}
	for i := 0; i < len(got) && i < len(want); i++ {
		if got[i] != want[i] {
			result.AddError(fmt.Sprintf("emission %d: expected %q, got %q", i, want[i], got[i]))
		}
	}
}
