package crew

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// echoAgent returns its task name plus the sorted inputs it saw.
type echoAgent struct {
	name string
	seen []map[string]string
	err  error
}

func (a *echoAgent) Name() string { return a.name }

func (a *echoAgent) Perform(ctx context.Context, task Task, inputs map[string]string) (string, error) {
	a.seen = append(a.seen, inputs)
	if a.err != nil {
		return "", a.err
	}
	var parts []string
	for _, k := range task.Inputs {
		if v, ok := inputs[k]; ok {
			parts = append(parts, k+"="+v)
		}
	}
	return task.Name + "(" + strings.Join(parts, ",") + ")", nil
}

func TestNewValidates(t *testing.T) {
	a := &echoAgent{name: "a"}
	tests := []struct {
		name   string
		agents []Agent
		tasks  []Task
	}{
		{"length mismatch", []Agent{a}, nil},
		{"nil agent", []Agent{nil}, []Task{{Name: "t"}}},
		{"unnamed task", []Agent{a}, []Task{{}}},
		{"duplicate task", []Agent{a, a}, []Task{{Name: "t"}, {Name: "t"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.agents, tt.tasks); err == nil {
				t.Error("New() should fail")
			}
		})
	}
}

func TestKickoffEmpty(t *testing.T) {
	c, err := New(nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	out, err := c.Kickoff(context.Background(), map[string]string{"transcript": "x"})
	if err != nil {
		t.Fatalf("Kickoff() error = %v", err)
	}
	if len(out.TasksOutput) != 0 {
		t.Errorf("TasksOutput = %v, want empty", out.TasksOutput)
	}
}

func TestKickoffOrderAndSharedContext(t *testing.T) {
	sum := &echoAgent{name: "summarizer"}
	act := &echoAgent{name: "actions"}
	mail := &echoAgent{name: "drafter"}

	tasks := []Task{
		{Name: "summary", Inputs: []string{"transcript"}},
		{Name: "action_items", Inputs: []string{"transcript"}},
		{Name: "email_draft", Inputs: []string{"summary", "action_items", "missing"}},
	}
	c, err := New([]Agent{sum, act, mail}, tasks, WithVerbose(true))
	if err != nil {
		t.Fatal(err)
	}

	out, err := c.Kickoff(context.Background(), map[string]string{"transcript": "T"})
	if err != nil {
		t.Fatalf("Kickoff() error = %v", err)
	}

	want := []string{
		"summary(transcript=T)",
		"action_items(transcript=T)",
		"email_draft(summary=summary(transcript=T),action_items=action_items(transcript=T))",
	}
	if len(out.TasksOutput) != len(want) {
		t.Fatalf("got %d outputs, want %d", len(out.TasksOutput), len(want))
	}
	for i, o := range out.TasksOutput {
		if o.Index != i {
			t.Errorf("output %d has Index %d", i, o.Index)
		}
		if o.Raw != want[i] {
			t.Errorf("output %d = %q, want %q", i, o.Raw, want[i])
		}
	}
	if out.TasksOutput[2].Agent != "drafter" {
		t.Errorf("Agent = %q, want drafter", out.TasksOutput[2].Agent)
	}
}

func TestKickoffOnlyDeclaredInputsVisible(t *testing.T) {
	sum := &echoAgent{name: "summarizer"}
	act := &echoAgent{name: "actions"}

	tasks := []Task{
		{Name: "summary", Inputs: []string{"transcript"}},
		{Name: "action_items", Inputs: []string{"transcript"}},
	}
	c, _ := New([]Agent{sum, act}, tasks)
	if _, err := c.Kickoff(context.Background(), map[string]string{"transcript": "T", "secret": "s"}); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(act.seen[0], map[string]string{"transcript": "T"}) {
		t.Errorf("action task saw %v, want transcript only", act.seen[0])
	}
}

func TestKickoffFailFast(t *testing.T) {
	cause := errors.New("model refused")
	first := &echoAgent{name: "first"}
	broken := &echoAgent{name: "broken", err: cause}
	never := &echoAgent{name: "never"}

	tasks := []Task{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	c, _ := New([]Agent{first, broken, never}, tasks)

	out, err := c.Kickoff(context.Background(), nil)

	var te *TaskError
	if !errors.As(err, &te) {
		t.Fatalf("Kickoff() error = %v, want *TaskError", err)
	}
	if te.Index != 1 || te.Task != "b" {
		t.Errorf("TaskError = %+v, want index 1 task b", te)
	}
	if !errors.Is(err, cause) {
		t.Error("TaskError should unwrap to the agent error")
	}
	if len(out.TasksOutput) != 1 {
		t.Errorf("partial output has %d entries, want 1", len(out.TasksOutput))
	}
	if len(never.seen) != 0 {
		t.Error("task after the failure must not run")
	}
}

func TestKickoffCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := &echoAgent{name: "a"}
	c, _ := New([]Agent{a}, []Task{{Name: "t"}})

	_, err := c.Kickoff(ctx, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Kickoff() error = %v, want context.Canceled", err)
	}
	if len(a.seen) != 0 {
		t.Error("agent should not run on a cancelled context")
	}
}
