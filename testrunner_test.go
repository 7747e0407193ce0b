package nodecanvas

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "drag", "fromX": 110, "fromY": 110, "toX": 200, "toY": 110, "frames": 4, "modifiers": ["shift"]},
			{"action": "screenshot", "label": "after-drag"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if st := runner.steps[3]; st.ToX != 200 || len(st.Modifiers) != 1 || st.Modifiers[0] != "shift" {
		t.Errorf("step 3 mismatch: %+v", st)
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty steps", `{"steps": []}`},
		{"unknown modifier", `{"steps": [{"action": "click", "modifiers": ["hyper"]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerStep_Click(t *testing.T) {
	c, _ := newTestCanvas()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 310, "y": 110}]}`))
	if err != nil {
		t.Fatal(err)
	}
	c.SetTestRunner(runner)

	// Frame 1: runner queues press+release, press is consumed.
	c.Update(nil)
	if !c.Process().Selection().IsSelected("b") {
		t.Error("press should select b")
	}
	if runner.Done() {
		t.Error("runner must wait for the release")
	}
	// Frame 2: release. Frame 3: runner notices the drained queue.
	c.Update(nil)
	c.Update(nil)
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStep_Screenshot(t *testing.T) {
	c, _ := newTestCanvas()
	var labels []string
	c.OnScreenshot = func(label string) { labels = append(labels, label) }
	runner, _ := LoadTestScript([]byte(`{"steps": [
		{"action": "screenshot", "label": "one"},
		{"action": "screenshot", "label": "two"}
	]}`))
	c.SetTestRunner(runner)
	c.Update(nil)
	c.Update(nil)
	if len(labels) != 2 || labels[0] != "one" || labels[1] != "two" {
		t.Errorf("labels = %v", labels)
	}
	if !runner.Done() {
		t.Error("runner should be done after the last step")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	c, _ := newTestCanvas()
	shots := 0
	c.OnScreenshot = func(string) { shots++ }
	runner, _ := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "after"}
	]}`))
	c.SetTestRunner(runner)
	for i := 0; i < 3; i++ {
		c.Update(nil)
	}
	if shots != 0 {
		t.Fatal("screenshot taken before the wait finished")
	}
	c.Update(nil)
	if shots != 1 {
		t.Errorf("shots = %d, want 1", shots)
	}
}

func TestRunnerStep_DragWithModifiers(t *testing.T) {
	c, _ := newTestCanvas()
	runner, _ := LoadTestScript([]byte(`{"steps": [
		{"action": "click", "x": 110, "y": 110},
		{"action": "click", "x": 310, "y": 110, "modifiers": ["ctrl"]},
		{"action": "drag", "fromX": 110, "fromY": 110, "toX": 140, "toY": 110, "frames": 3}
	]}`))
	c.SetTestRunner(runner)
	for i := 0; i < 20 && !runner.Done(); i++ {
		c.Update(nil)
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	if got := c.Node("a").Position(); got != (Vec2{130, 100}) {
		t.Errorf("a = %v, want (130,100)", got)
	}
	if got := c.Node("b").Position(); got != (Vec2{330, 100}) {
		t.Errorf("b = %v, want (330,100)", got)
	}
}

func TestRunnerStep_DoubleClickAndPan(t *testing.T) {
	c, _ := newTestCanvas()
	doubles := 0
	c.Process().OnDoubleClick = func(ClickContext) { doubles++ }
	runner, _ := LoadTestScript([]byte(`{"steps": [
		{"action": "doubleclick", "x": 510, "y": 110},
		{"action": "pan", "fromX": 400, "fromY": 400, "toX": 430, "toY": 400, "frames": 2}
	]}`))
	c.SetTestRunner(runner)
	for i := 0; i < 20 && !runner.Done(); i++ {
		c.Update(nil)
	}
	if doubles != 1 {
		t.Errorf("double clicks = %d, want 1", doubles)
	}
	if c.Shift != (Vec2{30, 0}) {
		t.Errorf("shift = %v, want (30,0)", c.Shift)
	}
}
