package radial

import (
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`
steps:
  - {action: press, x: 200, y: 110}
  - {action: drag, fromX: 200, fromY: 110, toX: 390, toY: 200, frames: 6}
  - {action: wait, frames: 3}
  - {action: click, x: 20, y: 30}
`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if st := runner.steps[0]; st.Action != "press" || st.X != 200 || st.Y != 110 {
		t.Errorf("step 0 mismatch: %+v", st)
	}
	if st := runner.steps[1]; st.Action != "drag" || st.ToX != 390 || st.Frames != 6 {
		t.Errorf("step 1 mismatch: %+v", st)
	}
	if st := runner.steps[2]; st.Action != "wait" || st.Frames != 3 {
		t.Errorf("step 2 mismatch: %+v", st)
	}
}

func TestLoadTestScript_JSON(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 100, "y": 200}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st := runner.steps[0]; st.Action != "click" || st.X != 100 || st.Y != 200 {
		t.Errorf("step 0 mismatch: %+v", st)
	}
}

func TestLoadTestScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid", `not a script`, "parse test script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", "steps:\n  - {action: screenshot}\n", `unknown action "screenshot"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestRunnerStep_Click(t *testing.T) {
	tr, _, _, b := newTrackedDial(t)

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 200, "y": 200}]}`))
	if err != nil {
		t.Fatal(err)
	}
	tr.SetTestRunner(runner)

	// First step call: click queues press and release.
	runner.step(tr)
	if len(tr.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(tr.injectQueue))
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	tr.processInjectedInput()
	if tr.Focused() != b {
		t.Error("click should focus the dial")
	}
	tr.processInjectedInput()

	runner.step(tr)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerDrivesDial(t *testing.T) {
	tr, _, d, _ := newTrackedDial(t)
	runner, err := LoadTestScript([]byte(`
steps:
  - {action: press, x: 200, y: 110}
  - {action: move, x: 390, y: 200}
  - {action: release, x: 390, y: 200}
  - {action: wait, frames: 2}
`))
	if err != nil {
		t.Fatal(err)
	}
	tr.SetTestRunner(runner)

	for i := 0; i < 20 && !runner.Done(); i++ {
		tr.Update()
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	if d.Value() != 3 {
		t.Errorf("Value = %v, want 3", d.Value())
	}
	if d.Dragging() {
		t.Error("expected idle after scripted release")
	}
}
