package ebitenhost

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/phanxgames/dragdrop"
)

var (
	// ErrInvalidScript is returned for input that is not a JSON object.
	ErrInvalidScript = errors.New("invalid JSON")
	// ErrNoSteps is returned when a script has no steps.
	ErrNoSteps = errors.New("no steps")
	// ErrUnknownAction is returned for a step whose action is not supported.
	ErrUnknownAction = errors.New("unknown action")
)

// testStep is a single action in a test script.
type testStep struct {
	action string
	button dragdrop.MouseButton
	x, y   float64
	fromX  float64
	fromY  float64
	toX    float64
	toY    float64
	from   float64
	to     float64
	frames int
}

// TestRunner sequences injected input across frames for scripted
// interaction tests. Attach it to a Host with SetTestRunner.
//
// A script is a JSON object with a "steps" array:
//
//	{"steps": [
//	  {"action": "click", "x": 40, "y": 40},
//	  {"action": "drag", "fromX": 40, "fromY": 40, "toX": 300, "toY": 60, "frames": 12},
//	  {"action": "drag", "button": "right", "fromX": 0, "fromY": 0, "toX": 10, "toY": 0},
//	  {"action": "pinch", "x": 200, "y": 200, "from": 100, "to": 200, "frames": 8},
//	  {"action": "key", "key": "Escape"},
//	  {"action": "wait", "frames": 30}
//	]}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready to
// be attached to a Host.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	if !gjson.ValidBytes(jsonData) {
		return nil, fmt.Errorf("parse test script: %w", ErrInvalidScript)
	}
	root := gjson.ParseBytes(jsonData)
	if !root.IsObject() {
		return nil, fmt.Errorf("parse test script: %w", ErrInvalidScript)
	}

	var steps []testStep
	var err error
	root.Get("steps").ForEach(func(_, v gjson.Result) bool {
		var st testStep
		st, err = parseStep(v, len(steps))
		if err != nil {
			return false
		}
		steps = append(steps, st)
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", ErrNoSteps)
	}
	return &TestRunner{steps: steps}, nil
}

func parseStep(v gjson.Result, index int) (testStep, error) {
	st := testStep{
		action: v.Get("action").String(),
		x:      v.Get("x").Float(),
		y:      v.Get("y").Float(),
		fromX:  v.Get("fromX").Float(),
		fromY:  v.Get("fromY").Float(),
		toX:    v.Get("toX").Float(),
		toY:    v.Get("toY").Float(),
		from:   v.Get("from").Float(),
		to:     v.Get("to").Float(),
		frames: int(v.Get("frames").Int()),
	}
	switch st.action {
	case "click", "wait", "pinch":
	case "drag":
		switch b := v.Get("button").String(); b {
		case "", "left":
			st.button = dragdrop.MouseButtonLeft
		case "right":
			st.button = dragdrop.MouseButtonRight
		case "middle":
			st.button = dragdrop.MouseButtonMiddle
		default:
			return st, fmt.Errorf("step %d: button %q: %w", index, b, ErrUnknownAction)
		}
	case "key":
		if k := v.Get("key").String(); k != dragdrop.KeyEscape {
			return st, fmt.Errorf("step %d: key %q: %w", index, k, ErrUnknownAction)
		}
	default:
		return st, fmt.Errorf("step %d: %q: %w", index, st.action, ErrUnknownAction)
	}
	return st, nil
}

// SetTestRunner attaches runner to the host. The runner is stepped from
// Update before input is read each frame.
func (h *Host) SetTestRunner(runner *TestRunner) {
	h.runner = runner
}

// Done reports whether every step of the script has been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(h *Host) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(h.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.action {
	case "click":
		h.InjectClick(st.x, st.y)
	case "drag":
		h.InjectButtonDrag(st.button, st.fromX, st.fromY, st.toX, st.toY, st.frames)
	case "pinch":
		h.InjectPinch(st.x, st.y, st.from, st.to, st.frames)
	case "key":
		h.InjectEscape()
	case "wait":
		if st.frames > 0 {
			r.waitCount = st.frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(h.injectQueue) == 0 {
		r.done = true
	}
}
